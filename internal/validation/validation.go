// Package validation holds the caller-side input checks that run
// before an operation reaches the store.
package validation

import (
	"fmt"
	"strings"
	"time"

	"github.com/zenhabits/zenhabits/internal/constants"
)

// Error is a user-input problem: a missing field, a malformed value.
// It is distinct from storage failures so the UI can show it inline.
type Error struct {
	Field   string
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func ValidateRegistration(username, email, password string) error {
	if strings.TrimSpace(username) == "" {
		return &Error{Field: "username", Message: "cannot be empty"}
	}
	if strings.TrimSpace(email) == "" {
		return &Error{Field: "email", Message: "cannot be empty"}
	}
	if !strings.Contains(email, "@") {
		return &Error{Field: "email", Message: "must be a valid email address"}
	}
	if password == "" {
		return &Error{Field: "password", Message: "cannot be empty"}
	}
	return nil
}

func ValidateLogin(username, password string) error {
	if strings.TrimSpace(username) == "" {
		return &Error{Field: "username", Message: "cannot be empty"}
	}
	if password == "" {
		return &Error{Field: "password", Message: "cannot be empty"}
	}
	return nil
}

func ValidateHabitTitle(title string) error {
	if strings.TrimSpace(title) == "" {
		return &Error{Field: "title", Message: "cannot be empty"}
	}
	return nil
}

// ValidateDate checks the YYYY-MM-DD format used for note keys.
func ValidateDate(date string) error {
	if _, err := time.Parse(constants.DateFormat, date); err != nil {
		return &Error{Field: "date", Message: fmt.Sprintf("invalid date %q (expected YYYY-MM-DD)", date)}
	}
	return nil
}
