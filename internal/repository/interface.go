package repository

import (
	"context"

	"github.com/hseconsult/backend/internal/model"
)

// DB は DB 接続の生存確認を行うインターフェース
type DB interface {
	Ping(ctx context.Context) error
}

// ContactRepository defines the persistence interface for contact submissions.
// It is defined here (in repository) to avoid an import cycle with service.
type ContactRepository interface {
	DB

	// Create assigns a new unique ID and creation timestamp, then stores the
	// submission. On failure it returns an error matching ErrStorageFailure
	// and no record.
	Create(ctx context.Context, in model.ContactInput) (*model.ContactSubmission, error)

	// FindByID returns ErrNotFound when no submission has the given ID.
	FindByID(ctx context.Context, id int64) (*model.ContactSubmission, error)
}
