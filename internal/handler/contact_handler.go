package handler

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/hseconsult/backend/internal/model"
	"github.com/hseconsult/backend/internal/service"
	"github.com/hseconsult/backend/internal/validation"
)

const (
	defaultSubmitTimeout = 5 * time.Second
	defaultMaxBodyBytes  = 64 << 10
)

// ContactConfig bounds a single contact submission.
type ContactConfig struct {
	SubmitTimeout time.Duration
	MaxBodyBytes  int64
}

// ContactHandler handles contact form submissions.
type ContactHandler struct {
	contactService service.ContactService
	submitTimeout  time.Duration
	maxBodyBytes   int64
}

// NewContactHandler creates a ContactHandler with the given service.
// Zero config values fall back to 5s and 64 KiB.
func NewContactHandler(contactService service.ContactService, cfg ContactConfig) *ContactHandler {
	h := &ContactHandler{
		contactService: contactService,
		submitTimeout:  cfg.SubmitTimeout,
		maxBodyBytes:   cfg.MaxBodyBytes,
	}
	if h.submitTimeout <= 0 {
		h.submitTimeout = defaultSubmitTimeout
	}
	if h.maxBodyBytes <= 0 {
		h.maxBodyBytes = defaultMaxBodyBytes
	}
	return h
}

// submitResponse is the JSON body returned by POST /api/contact.
type submitResponse struct {
	Success      bool               `json:"success"`
	Message      string             `json:"message"`
	SubmissionID int64              `json:"submissionId,omitempty"`
	Errors       []model.FieldError `json:"errors,omitempty"`
}

// Submit handles POST /api/contact.
// 200 on success, 400 with field errors on invalid input, 500 with a generic
// message when the store fails.
func (h *ContactHandler) Submit(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxBodyBytes)

	var body map[string]any
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeJSON(w, http.StatusRequestEntityTooLarge, submitResponse{
				Message: "Request body too large",
			})
			return
		}
		writeJSON(w, http.StatusBadRequest, submitResponse{
			Message: "Invalid request body",
		})
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.submitTimeout)
	defer cancel()

	submission, err := h.contactService.Submit(ctx, body)
	if err != nil {
		var verr *validation.Errors
		if errors.As(err, &verr) {
			writeJSON(w, http.StatusBadRequest, submitResponse{
				Message: "Validation error",
				Errors:  verr.Fields,
			})
			return
		}

		slog.ErrorContext(r.Context(), "error processing contact submission",
			"request_id", RequestIDFromContext(r.Context()),
			"error", err,
		)
		writeJSON(w, http.StatusInternalServerError, submitResponse{
			Message: "Failed to process your request",
		})
		return
	}

	slog.InfoContext(r.Context(), "contact submission stored",
		"request_id", RequestIDFromContext(r.Context()),
		"submission_id", submission.ID,
	)
	writeJSON(w, http.StatusOK, submitResponse{
		Success:      true,
		Message:      "Contact submission received",
		SubmissionID: submission.ID,
	})
}
