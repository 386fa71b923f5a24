// Package session persists the current login between CLI invocations.
// The session is an explicit object handed to user-scoped operations;
// nothing reads ambient global state.
package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/zenhabits/zenhabits/internal/constants"
)

// ErrNoSession is returned when no user is logged in.
var ErrNoSession = errors.New("not logged in, run 'zenhabits login' first")

// Session identifies the logged-in user for the lifetime of a login.
type Session struct {
	Token     string    `json:"token"`
	UserID    int64     `json:"user_id"`
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"created_at"`
}

// Manager reads and writes the session file in the config directory.
type Manager struct {
	path string
}

// NewManager creates a session manager rooted next to the database
// file.
func NewManager(configDir string) *Manager {
	return &Manager{
		path: filepath.Join(configDir, constants.SessionFileName),
	}
}

// Begin starts a session for the given user and persists it.
func (m *Manager) Begin(userID int64, username string) (Session, error) {
	s := Session{
		Token:     uuid.New().String(),
		UserID:    userID,
		Username:  username,
		CreatedAt: time.Now(),
	}

	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return Session{}, fmt.Errorf("failed to encode session: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(m.path), 0700); err != nil {
		return Session{}, fmt.Errorf("failed to create config directory: %w", err)
	}
	if err := os.WriteFile(m.path, data, 0600); err != nil {
		return Session{}, fmt.Errorf("failed to write session file: %w", err)
	}

	return s, nil
}

// Current returns the persisted session, or ErrNoSession if none
// exists.
func (m *Manager) Current() (Session, error) {
	data, err := os.ReadFile(m.path)
	if err != nil {
		if os.IsNotExist(err) {
			return Session{}, ErrNoSession
		}
		return Session{}, fmt.Errorf("failed to read session file: %w", err)
	}

	var s Session
	if err := json.Unmarshal(data, &s); err != nil {
		return Session{}, fmt.Errorf("failed to decode session file: %w", err)
	}
	if s.Token == "" || s.UserID == 0 {
		return Session{}, ErrNoSession
	}

	return s, nil
}

// End removes the session file. Ending when no session exists is a
// no-op.
func (m *Manager) End() error {
	if err := os.Remove(m.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove session file: %w", err)
	}
	return nil
}
