package backup

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/zenhabits/zenhabits/internal/constants"
)

func setupManager(t *testing.T, content string) (*Manager, string) {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "test.db")
	if err := os.WriteFile(dbPath, []byte(content), 0600); err != nil {
		t.Fatal(err)
	}
	return NewManager(dbPath), dbPath
}

func TestCreateBackup(t *testing.T) {
	t.Run("copies the database", func(t *testing.T) {
		m, _ := setupManager(t, "database contents")

		path, err := m.CreateBackup()
		if err != nil {
			t.Fatalf("CreateBackup() returned error: %v", err)
		}

		data, err := os.ReadFile(path)
		if err != nil {
			t.Fatalf("failed to read backup: %v", err)
		}
		if string(data) != "database contents" {
			t.Errorf("backup contents = %q, want %q", data, "database contents")
		}
	})

	t.Run("missing database fails", func(t *testing.T) {
		m := NewManager(filepath.Join(t.TempDir(), "missing.db"))

		if _, err := m.CreateBackup(); err == nil {
			t.Error("CreateBackup() with missing database succeeded, want error")
		}
	})

	t.Run("same-second backups get unique names", func(t *testing.T) {
		m, _ := setupManager(t, "x")

		seen := map[string]bool{}
		for i := 0; i < 3; i++ {
			path, err := m.CreateBackup()
			if err != nil {
				t.Fatalf("CreateBackup() #%d returned error: %v", i+1, err)
			}
			if seen[path] {
				t.Errorf("CreateBackup() reused path %s", path)
			}
			seen[path] = true
		}
	})

	t.Run("rotates beyond the retention limit", func(t *testing.T) {
		m, _ := setupManager(t, "x")

		for i := 0; i < constants.MaxBackups+3; i++ {
			if _, err := m.CreateBackup(); err != nil {
				t.Fatalf("CreateBackup() #%d returned error: %v", i+1, err)
			}
		}

		backups, err := m.ListBackups()
		if err != nil {
			t.Fatalf("ListBackups() returned error: %v", err)
		}
		if len(backups) > constants.MaxBackups {
			t.Errorf("ListBackups() returned %d backups, want at most %d", len(backups), constants.MaxBackups)
		}
	})
}

func TestListBackups(t *testing.T) {
	t.Run("empty directory", func(t *testing.T) {
		m, _ := setupManager(t, "x")

		backups, err := m.ListBackups()
		if err != nil {
			t.Fatalf("ListBackups() returned error: %v", err)
		}
		if len(backups) != 0 {
			t.Errorf("ListBackups() returned %d backups, want 0", len(backups))
		}
	})

	t.Run("ignores unrelated files", func(t *testing.T) {
		m, _ := setupManager(t, "x")

		if _, err := m.CreateBackup(); err != nil {
			t.Fatalf("CreateBackup() returned error: %v", err)
		}
		if err := os.WriteFile(filepath.Join(m.GetBackupDir(), "notes.txt"), []byte("y"), 0600); err != nil {
			t.Fatal(err)
		}

		backups, err := m.ListBackups()
		if err != nil {
			t.Fatalf("ListBackups() returned error: %v", err)
		}
		if len(backups) != 1 {
			t.Errorf("ListBackups() returned %d backups, want 1", len(backups))
		}
	})
}

func TestRestoreBackup(t *testing.T) {
	t.Run("restores old contents and keeps a safety copy", func(t *testing.T) {
		m, dbPath := setupManager(t, "old contents")

		backupPath, err := m.CreateBackup()
		if err != nil {
			t.Fatalf("CreateBackup() returned error: %v", err)
		}

		if err := os.WriteFile(dbPath, []byte("new contents"), 0600); err != nil {
			t.Fatal(err)
		}

		if err := m.RestoreBackup(backupPath); err != nil {
			t.Fatalf("RestoreBackup() returned error: %v", err)
		}

		data, _ := os.ReadFile(dbPath)
		if string(data) != "old contents" {
			t.Errorf("restored contents = %q, want %q", data, "old contents")
		}

		safety, err := os.ReadFile(dbPath + ".pre-restore")
		if err != nil {
			t.Fatalf("safety copy missing: %v", err)
		}
		if string(safety) != "new contents" {
			t.Errorf("safety copy = %q, want %q", safety, "new contents")
		}
	})

	t.Run("missing backup fails", func(t *testing.T) {
		m, _ := setupManager(t, "x")

		if err := m.RestoreBackup(filepath.Join(m.GetBackupDir(), "nope.db")); err == nil {
			t.Error("RestoreBackup() with missing file succeeded, want error")
		}
	})
}
