package repository

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/hseconsult/backend/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleInput() model.ContactInput {
	return model.ContactInput{
		Name:    "Jo",
		Email:   "jo@x.com",
		Phone:   "12345",
		Subject: "Hi",
		Message: "1234567890",
	}
}

func TestMemoryContactRepository_CreateAndFind(t *testing.T) {
	repo := NewMemoryContactRepository()
	fixed := time.Date(2026, 3, 1, 9, 30, 0, 0, time.UTC)
	repo.now = func() time.Time { return fixed }

	got, err := repo.Create(context.Background(), sampleInput())
	require.NoError(t, err)

	assert.Equal(t, int64(1), got.ID)
	assert.Equal(t, fixed, got.CreatedAt)
	assert.Equal(t, "Jo", got.Name)
	assert.Equal(t, "jo@x.com", got.Email)
	assert.Equal(t, "12345", got.Phone)
	assert.Equal(t, "Hi", got.Subject)
	assert.Equal(t, "1234567890", got.Message)

	found, err := repo.FindByID(context.Background(), got.ID)
	require.NoError(t, err)
	assert.Equal(t, got, found)
}

func TestMemoryContactRepository_ReturnedRecordIsACopy(t *testing.T) {
	repo := NewMemoryContactRepository()

	got, err := repo.Create(context.Background(), sampleInput())
	require.NoError(t, err)
	got.Name = "changed"

	found, err := repo.FindByID(context.Background(), got.ID)
	require.NoError(t, err)
	assert.Equal(t, "Jo", found.Name)
}

func TestMemoryContactRepository_FindByID_NotFound(t *testing.T) {
	repo := NewMemoryContactRepository()

	_, err := repo.FindByID(context.Background(), 42)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryContactRepository_IDsAreSequential(t *testing.T) {
	repo := NewMemoryContactRepository()

	for want := int64(1); want <= 3; want++ {
		got, err := repo.Create(context.Background(), sampleInput())
		require.NoError(t, err)
		assert.Equal(t, want, got.ID)
	}
}

func TestMemoryContactRepository_ConcurrentCreateUniqueIDs(t *testing.T) {
	repo := NewMemoryContactRepository()
	const n = 200

	ids := make(chan int64, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s, err := repo.Create(context.Background(), sampleInput())
			if err != nil {
				t.Errorf("Create: %v", err)
				return
			}
			ids <- s.ID
		}()
	}
	wg.Wait()
	close(ids)

	seen := make(map[int64]bool, n)
	for id := range ids {
		assert.False(t, seen[id], "duplicate id %d", id)
		seen[id] = true
	}
	assert.Len(t, seen, n)
	assert.Equal(t, n, repo.Len())
}

func TestMemoryContactRepository_CancelledContext(t *testing.T) {
	repo := NewMemoryContactRepository()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	got, err := repo.Create(ctx, sampleInput())
	require.Error(t, err)
	assert.Nil(t, got)
	assert.True(t, errors.Is(err, ErrStorageFailure))
	assert.True(t, errors.Is(err, context.Canceled))
	assert.Equal(t, 0, repo.Len())

	// No id was consumed by the failed write.
	next, err := repo.Create(context.Background(), sampleInput())
	require.NoError(t, err)
	assert.Equal(t, int64(1), next.ID)
}

func TestMemoryContactRepository_Ping(t *testing.T) {
	assert.NoError(t, NewMemoryContactRepository().Ping(context.Background()))
}
