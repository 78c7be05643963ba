package repository

import "errors"

// ErrNotFound is returned when a requested record does not exist in the database.
var ErrNotFound = errors.New("not found")

// ErrStorageFailure marks errors caused by the persistence medium being
// unavailable or a write not completing. Callers match it with errors.Is.
var ErrStorageFailure = errors.New("storage failure")
