package storage

import (
	"errors"
	"strings"

	"github.com/lib/pq"
)

// ErrNotFound is returned when an operation targets a row that does not
// exist. Delete operations never return it; they are idempotent.
var ErrNotFound = errors.New("record not found")

// ConflictError reports a unique-constraint violation (duplicate
// username or email). The driver's message is preserved so callers can
// surface it verbatim.
type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string {
	return e.Message
}

// IsConflict reports whether err is a unique-constraint violation.
func IsConflict(err error) bool {
	var ce *ConflictError
	return errors.As(err, &ce)
}

// WrapConstraint converts driver-specific unique-violation errors into
// ConflictError and leaves every other error untouched.
func WrapConstraint(err error) error {
	if err == nil {
		return nil
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		if pqErr.Code == "23505" {
			return &ConflictError{Message: pqErr.Message}
		}
		return err
	}
	// modernc.org/sqlite reports constraint failures in the error text.
	if strings.Contains(err.Error(), "UNIQUE constraint failed") {
		return &ConflictError{Message: err.Error()}
	}
	return err
}
