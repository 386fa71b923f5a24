package session

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/zenhabits/zenhabits/internal/constants"
)

func TestSessionLifecycle(t *testing.T) {
	t.Run("begin then current", func(t *testing.T) {
		m := NewManager(t.TempDir())

		started, err := m.Begin(42, "alice")
		if err != nil {
			t.Fatalf("Begin() returned error: %v", err)
		}
		if started.Token == "" {
			t.Error("Begin() returned empty token")
		}

		current, err := m.Current()
		if err != nil {
			t.Fatalf("Current() returned error: %v", err)
		}
		if current.Token != started.Token || current.UserID != 42 || current.Username != "alice" {
			t.Errorf("Current() = %+v, want the started session", current)
		}
	})

	t.Run("no session", func(t *testing.T) {
		m := NewManager(t.TempDir())

		if _, err := m.Current(); !errors.Is(err, ErrNoSession) {
			t.Errorf("Current() with no session error = %v, want ErrNoSession", err)
		}
	})

	t.Run("begin replaces the previous session", func(t *testing.T) {
		m := NewManager(t.TempDir())

		if _, err := m.Begin(1, "alice"); err != nil {
			t.Fatalf("Begin() returned error: %v", err)
		}
		if _, err := m.Begin(2, "bob"); err != nil {
			t.Fatalf("second Begin() returned error: %v", err)
		}

		current, err := m.Current()
		if err != nil {
			t.Fatalf("Current() returned error: %v", err)
		}
		if current.UserID != 2 || current.Username != "bob" {
			t.Errorf("Current() = %+v, want bob's session", current)
		}
	})

	t.Run("end removes the session", func(t *testing.T) {
		m := NewManager(t.TempDir())

		if _, err := m.Begin(1, "alice"); err != nil {
			t.Fatalf("Begin() returned error: %v", err)
		}
		if err := m.End(); err != nil {
			t.Fatalf("End() returned error: %v", err)
		}
		if _, err := m.Current(); !errors.Is(err, ErrNoSession) {
			t.Errorf("Current() after End() error = %v, want ErrNoSession", err)
		}
	})

	t.Run("end is idempotent", func(t *testing.T) {
		m := NewManager(t.TempDir())

		if err := m.End(); err != nil {
			t.Errorf("End() with no session returned error: %v", err)
		}
	})

	t.Run("creates the config directory", func(t *testing.T) {
		dir := filepath.Join(t.TempDir(), "nested", "config")
		m := NewManager(dir)

		if _, err := m.Begin(1, "alice"); err != nil {
			t.Fatalf("Begin() returned error: %v", err)
		}
		if _, err := os.Stat(filepath.Join(dir, constants.SessionFileName)); err != nil {
			t.Errorf("session file not created: %v", err)
		}
	})
}

func TestCurrentRejectsCorruptFile(t *testing.T) {
	t.Run("invalid json", func(t *testing.T) {
		dir := t.TempDir()
		if err := os.WriteFile(filepath.Join(dir, constants.SessionFileName), []byte("{not json"), 0600); err != nil {
			t.Fatal(err)
		}

		if _, err := NewManager(dir).Current(); err == nil {
			t.Error("Current() accepted corrupt session file, want error")
		}
	})

	t.Run("empty fields", func(t *testing.T) {
		dir := t.TempDir()
		if err := os.WriteFile(filepath.Join(dir, constants.SessionFileName), []byte("{}"), 0600); err != nil {
			t.Fatal(err)
		}

		if _, err := NewManager(dir).Current(); !errors.Is(err, ErrNoSession) {
			t.Errorf("Current() with empty session error = %v, want ErrNoSession", err)
		}
	})
}
