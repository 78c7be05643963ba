package repository

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/hseconsult/backend/internal/model"
)

// MemoryContactRepository keeps submissions in process memory. IDs come from
// an atomic counter starting at 1 and are never reused.
type MemoryContactRepository struct {
	lastID atomic.Int64
	now    func() time.Time

	mu   sync.RWMutex
	rows map[int64]model.ContactSubmission
}

// NewMemoryContactRepository creates an empty in-memory repository.
func NewMemoryContactRepository() *MemoryContactRepository {
	return &MemoryContactRepository{
		now:  time.Now,
		rows: make(map[int64]model.ContactSubmission),
	}
}

var _ ContactRepository = (*MemoryContactRepository)(nil)

// Create stores a copy of the submission. A cancelled context is reported as
// a storage failure before any id is taken.
func (r *MemoryContactRepository) Create(ctx context.Context, in model.ContactInput) (*model.ContactSubmission, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrStorageFailure, err)
	}

	s := model.ContactSubmission{
		ID:        r.lastID.Add(1),
		Name:      in.Name,
		Email:     in.Email,
		Phone:     in.Phone,
		Subject:   in.Subject,
		Message:   in.Message,
		CreatedAt: r.now().UTC(),
	}

	r.mu.Lock()
	r.rows[s.ID] = s
	r.mu.Unlock()

	return &s, nil
}

// FindByID returns a copy of the stored submission.
func (r *MemoryContactRepository) FindByID(_ context.Context, id int64) (*model.ContactSubmission, error) {
	r.mu.RLock()
	s, ok := r.rows[id]
	r.mu.RUnlock()
	if !ok {
		return nil, ErrNotFound
	}
	return &s, nil
}

// Ping always succeeds.
func (r *MemoryContactRepository) Ping(context.Context) error {
	return nil
}

// Len returns the number of stored submissions.
func (r *MemoryContactRepository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.rows)
}
