// Package persistence provides the two interchangeable storage backends: a
// JSON flat-file store and a Postgres mirror. The backend is picked once at
// startup; call sites only see the repo interfaces declared in internal/app.
package persistence

import (
	"errors"
	"fmt"
)

// ErrNotFound reports an update or delete referencing a missing identifier.
var ErrNotFound = errors.New("record not found")

// StorageError reports a persisted collection that exists but cannot be
// decoded. It is surfaced verbatim; there are no retries.
type StorageError struct {
	Source string
	Err    error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("malformed store %s: %s", e.Source, e.Err.Error())
}

func (e *StorageError) Unwrap() error {
	return e.Err
}
