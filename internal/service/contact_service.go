package service

import (
	"context"

	"github.com/hseconsult/backend/internal/model"
)

// ContactService defines the business logic for contact form submissions.
type ContactService interface {
	// Submit validates the untyped body and stores it. It returns a
	// *validation.Errors when any field is invalid, or an error matching
	// repository.ErrStorageFailure when the write fails. Nothing is stored
	// in either case.
	Submit(ctx context.Context, body map[string]any) (*model.ContactSubmission, error)

	// Get returns a stored submission, or repository.ErrNotFound.
	Get(ctx context.Context, id int64) (*model.ContactSubmission, error)
}
