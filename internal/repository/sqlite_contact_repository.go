package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/hseconsult/backend/internal/model"
	_ "github.com/mattn/go-sqlite3" // registers the sqlite3 driver
)

const sqliteSchema = `CREATE TABLE IF NOT EXISTS contact_submissions (
	id         INTEGER PRIMARY KEY AUTOINCREMENT,
	name       TEXT NOT NULL,
	email      TEXT NOT NULL,
	phone      TEXT NOT NULL,
	subject    TEXT NOT NULL,
	message    TEXT NOT NULL,
	created_at TEXT NOT NULL
)`

// SQLiteContactRepository stores submissions in a single SQLite file.
// AUTOINCREMENT guarantees ids are never reused, even after deletes.
type SQLiteContactRepository struct {
	db  *sql.DB
	now func() time.Time
}

var _ ContactRepository = (*SQLiteContactRepository)(nil)

// OpenSQLiteContactRepository opens (creating if needed) the database file at
// path and ensures the contact_submissions table exists.
func OpenSQLiteContactRepository(ctx context.Context, path string) (*SQLiteContactRepository, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("sqlite: mkdir: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", path+"?_busy_timeout=5000&_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("sqlite: open: %w", err)
	}
	// One writer at a time; SQLite serializes writes anyway.
	db.SetMaxOpenConns(1)

	if _, err := db.ExecContext(ctx, sqliteSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("sqlite: create table: %w", err)
	}
	return &SQLiteContactRepository{db: db, now: time.Now}, nil
}

// Create inserts a row and reads the id back from the driver.
func (r *SQLiteContactRepository) Create(ctx context.Context, in model.ContactInput) (*model.ContactSubmission, error) {
	createdAt := r.now().UTC()

	query, args, err := sq.Insert(contactTable).
		Columns(contactColumns...).
		Values(in.Name, in.Email, in.Phone, in.Subject, in.Message, createdAt.Format(time.RFC3339Nano)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: build insert: %w", ErrStorageFailure, err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: insert contact submission: %w", ErrStorageFailure, err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("%w: last insert id: %w", ErrStorageFailure, err)
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
func (r *SQLiteContactRepository) FindByID(ctx context.Context, id int64) (*model.ContactSubmission, error) {
	query, args, err := sq.Select(append([]string{"id"}, contactColumns...)...).
		From(contactTable).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: build select: %w", ErrStorageFailure, err)
	}

	var (
		s         model.ContactSubmission
		createdAt string
	)
	err = r.db.QueryRowContext(ctx, query, args...).
		Scan(&s.ID, &s.Name, &s.Email, &s.Phone, &s.Subject, &s.Message, &createdAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: select contact submission: %w", ErrStorageFailure, err)
	}

	s.CreatedAt, err = time.Parse(time.RFC3339Nano, createdAt)
	if err != nil {
		return nil, fmt.Errorf("%w: parse created_at %q: %w", ErrStorageFailure, createdAt, err)
	}
	return &s, nil
}

// Ping checks the database file is reachable.
func (r *SQLiteContactRepository) Ping(ctx context.Context) error {
	return r.db.PingContext(ctx)
}

// Close releases the underlying database handle.
func (r *SQLiteContactRepository) Close() error {
	return r.db.Close()
}
