package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/hseconsult/backend/internal/model"
	"github.com/jackc/pgx/v5"
)

const contactTable = "contact_submissions"

var contactColumns = []string{"name", "email", "phone", "subject", "message", "created_at"}

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// PgContactRepository is the PostgreSQL implementation of ContactRepository.
// IDs come from the table's BIGSERIAL sequence.
type PgContactRepository struct {
	db  Querier
	now func() time.Time
}

// NewPgContactRepository creates a PgContactRepository backed by the given pool.
func NewPgContactRepository(db Querier) *PgContactRepository {
	return &PgContactRepository{db: db, now: time.Now}
}

// Ensure PgContactRepository implements ContactRepository at compile time.
var _ ContactRepository = (*PgContactRepository)(nil)

// Create inserts a new contact_submissions row and returns it with the id
// from the RETURNING clause.
func (r *PgContactRepository) Create(ctx context.Context, in model.ContactInput) (*model.ContactSubmission, error) {
	// TIMESTAMPTZ keeps microseconds; truncate so the returned value matches a read-back.
	createdAt := r.now().UTC().Truncate(time.Microsecond)

	query, args, err := psql.Insert(contactTable).
		Columns(contactColumns...).
		Values(in.Name, in.Email, in.Phone, in.Subject, in.Message, createdAt).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: build insert: %w", ErrStorageFailure, err)
	}

	var id int64
	if err := r.db.QueryRow(ctx, query, args...).Scan(&id); err != nil {
		return nil, fmt.Errorf("%w: insert contact submission: %w", ErrStorageFailure, err)
	}

	return &model.ContactSubmission{
		ID:        id,
		Name:      in.Name,
		Email:     in.Email,
		Phone:     in.Phone,
		Subject:   in.Subject,
		Message:   in.Message,
		CreatedAt: createdAt,
	}, nil
}

// FindByID returns the submission with the given id.
func (r *PgContactRepository) FindByID(ctx context.Context, id int64) (*model.ContactSubmission, error) {
	query, args, err := psql.Select(append([]string{"id"}, contactColumns...)...).
		From(contactTable).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: build select: %w", ErrStorageFailure, err)
	}

	var s model.ContactSubmission
	err = r.db.QueryRow(ctx, query, args...).
		Scan(&s.ID, &s.Name, &s.Email, &s.Phone, &s.Subject, &s.Message, &s.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: select contact submission: %w", ErrStorageFailure, err)
	}
	s.CreatedAt = s.CreatedAt.UTC()
	return &s, nil
}

// Ping checks the database connection.
func (r *PgContactRepository) Ping(ctx context.Context) error {
	return r.db.Ping(ctx)
}
