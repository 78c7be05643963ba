// Package validation checks untrusted contact form bodies against the
// accepted submission shape.
//
// Rules live as validator struct tags on model.ContactInput. Every violated
// field is reported, in the fixed order name, email, phone, subject, message.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/hseconsult/backend/internal/model"
)

// contactFields is the reporting order for field errors.
var contactFields = []string{"name", "email", "phone", "subject", "message"}

// Errors is returned when one or more fields fail their constraint.
type Errors struct {
	Fields []model.FieldError
}

func (e *Errors) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.Field+": "+f.Message)
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Validator validates contact form bodies. It is safe for concurrent use.
type Validator struct {
	v *validator.Validate
}

// New creates a Validator with the contact rules registered.
func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	// Registration only fails for an empty tag or nil func.
	_ = v.RegisterValidation("dotdomain", hasDottedDomain)
	return &Validator{v: v}
}

// ValidateContact turns an untyped body into a ContactInput. Unknown keys are
// dropped. On failure the returned error is *Errors.
func (val *Validator) ValidateContact(body map[string]any) (model.ContactInput, error) {
	var in model.ContactInput
	targets := map[string]*string{
		"name":    &in.Name,
		"email":   &in.Email,
		"phone":   &in.Phone,
		"subject": &in.Subject,
		"message": &in.Message,
	}

	typeErrs := make(map[string]string)
	for _, field := range contactFields {
		raw, ok := body[field]
		if !ok || raw == nil {
			typeErrs[field] = "is required"
			continue
		}
		s, ok := raw.(string)
		if !ok {
			typeErrs[field] = "must be a string"
			continue
		}
		*targets[field] = s
	}

	ruleErrs := make(map[string]string)
	if err := val.v.Struct(in); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return model.ContactInput{}, fmt.Errorf("validation: %w", err)
		}
		for _, fe := range verrs {
			if _, seen := ruleErrs[fe.Field()]; !seen {
				ruleErrs[fe.Field()] = messageFor(fe)
			}
		}
	}

	var out []model.FieldError
	for _, field := range contactFields {
		if msg, ok := typeErrs[field]; ok {
			out = append(out, model.FieldError{Field: field, Message: msg})
			continue
		}
		if msg, ok := ruleErrs[field]; ok {
			out = append(out, model.FieldError{Field: field, Message: msg})
		}
	}
	if len(out) > 0 {
		return model.ContactInput{}, &Errors{Fields: out}
	}
	return in, nil
}

func messageFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "min":
		return fmt.Sprintf("must be at least %s characters", fe.Param())
	case "email", "dotdomain":
		return "must be a valid email address"
	default:
		return "is invalid"
	}
}

// hasDottedDomain requires the part after the last "@" to contain a dot
// that is neither its first nor its last character.
func hasDottedDomain(fl validator.FieldLevel) bool {
	s := fl.Field().String()
	at := strings.LastIndex(s, "@")
	if at < 1 {
		return false
	}
	domain := s[at+1:]
	dot := strings.Index(domain, ".")
	return dot > 0 && dot < len(domain)-1
}
