package validation

import (
	"errors"
	"testing"

	"github.com/hseconsult/backend/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validBody() map[string]any {
	return map[string]any{
		"name":    "Jo",
		"email":   "jo@x.com",
		"phone":   "12345",
		"subject": "Hi",
		"message": "1234567890",
	}
}

func fieldErrors(t *testing.T, err error) []model.FieldError {
	t.Helper()
	var verr *Errors
	require.True(t, errors.As(err, &verr), "expected *validation.Errors, got %T (%v)", err, err)
	require.NotEmpty(t, verr.Fields)
	return verr.Fields
}

func fieldNames(errs []model.FieldError) []string {
	names := make([]string, 0, len(errs))
	for _, e := range errs {
		names = append(names, e.Field)
	}
	return names
}

func TestValidateContact_AcceptsMinimalValidBody(t *testing.T) {
	got, err := New().ValidateContact(validBody())
	require.NoError(t, err)

	assert.Equal(t, model.ContactInput{
		Name:    "Jo",
		Email:   "jo@x.com",
		Phone:   "12345",
		Subject: "Hi",
		Message: "1234567890",
	}, got)
}

func TestValidateContact_DropsUnknownFields(t *testing.T) {
	body := validBody()
	body["company"] = "Acme"
	body["id"] = float64(99)

	got, err := New().ValidateContact(body)
	require.NoError(t, err)
	assert.Equal(t, "Jo", got.Name)
}

func TestValidateContact_ShortName(t *testing.T) {
	body := validBody()
	body["name"] = "J"

	_, err := New().ValidateContact(body)
	errs := fieldErrors(t, err)

	require.Len(t, errs, 1)
	assert.Equal(t, "name", errs[0].Field)
	assert.Equal(t, "must be at least 2 characters", errs[0].Message)
}

func TestValidateContact_ReportsEveryInvalidField(t *testing.T) {
	body := map[string]any{
		"name":    "Jo",
		"email":   "bad-email",
		"phone":   "1",
		"subject": "",
		"message": "short",
	}

	_, err := New().ValidateContact(body)
	errs := fieldErrors(t, err)

	assert.Equal(t, []string{"email", "phone", "subject", "message"}, fieldNames(errs))
	assert.Equal(t, "must be a valid email address", errs[0].Message)
	assert.Equal(t, "must be at least 5 characters", errs[1].Message)
	assert.Equal(t, "must be at least 2 characters", errs[2].Message)
	assert.Equal(t, "must be at least 10 characters", errs[3].Message)
}

func TestValidateContact_DoesNotStopAtFirstError(t *testing.T) {
	body := validBody()
	body["name"] = "A"
	body["email"] = "not-an-email"

	_, err := New().ValidateContact(body)
	errs := fieldErrors(t, err)

	assert.Equal(t, []string{"name", "email"}, fieldNames(errs))
}

func TestValidateContact_MissingFields(t *testing.T) {
	for _, field := range contactFields {
		t.Run(field, func(t *testing.T) {
			body := validBody()
			delete(body, field)

			_, err := New().ValidateContact(body)
			errs := fieldErrors(t, err)

			require.Len(t, errs, 1)
			assert.Equal(t, field, errs[0].Field)
			assert.Equal(t, "is required", errs[0].Message)
		})
	}
}

func TestValidateContact_NilBody(t *testing.T) {
	_, err := New().ValidateContact(nil)
	errs := fieldErrors(t, err)

	assert.Equal(t, contactFields, fieldNames(errs))
}

func TestValidateContact_NonStringValue(t *testing.T) {
	body := validBody()
	body["phone"] = float64(123456)

	_, err := New().ValidateContact(body)
	errs := fieldErrors(t, err)

	require.Len(t, errs, 1)
	assert.Equal(t, "phone", errs[0].Field)
	assert.Equal(t, "must be a string", errs[0].Message)
}

func TestValidateContact_Email(t *testing.T) {
	tests := []struct {
		email string
		valid bool
	}{
		{"jo@x.com", true},
		{"first.last@mail.example.co.uk", true},
		{"user+tag@example.org", true},
		{"bad-email", false},
		{"jo@localhost", false},
		{"jo@.com", false},
		{"jo@x.", false},
		{"@x.com", false},
		{"jo x@x.com", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.email, func(t *testing.T) {
			body := validBody()
			body["email"] = tt.email

			_, err := New().ValidateContact(body)
			if tt.valid {
				assert.NoError(t, err)
				return
			}
			errs := fieldErrors(t, err)
			assert.Equal(t, []string{"email"}, fieldNames(errs))
		})
	}
}

func TestValidateContact_CountsCharactersNotBytes(t *testing.T) {
	body := validBody()
	body["name"] = "Ωé"
	body["message"] = "ééééééééé"

	_, err := New().ValidateContact(body)
	errs := fieldErrors(t, err)

	// name has two runes and passes; message has nine and fails.
	assert.Equal(t, []string{"message"}, fieldNames(errs))
}

func TestErrors_Error(t *testing.T) {
	err := &Errors{Fields: []model.FieldError{
		{Field: "name", Message: "must be at least 2 characters"},
		{Field: "email", Message: "must be a valid email address"},
	}}

	assert.Equal(t,
		"validation failed: name: must be at least 2 characters; email: must be a valid email address",
		err.Error())
}
