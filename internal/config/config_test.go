package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/zenhabits/zenhabits/internal/constants"
)

func TestLoad(t *testing.T) {
	t.Run("missing file yields defaults", func(t *testing.T) {
		dir := t.TempDir()

		cfg, err := Load(dir)
		if err != nil {
			t.Fatalf("Load() returned error: %v", err)
		}
		if cfg.Storage.Type != "sqlite" {
			t.Errorf("cfg.Storage.Type = %q, want %q", cfg.Storage.Type, "sqlite")
		}
		want := filepath.Join(dir, constants.AppName+".db")
		if cfg.Storage.Path != want {
			t.Errorf("cfg.Storage.Path = %q, want %q", cfg.Storage.Path, want)
		}
		if cfg.Debug {
			t.Error("cfg.Debug = true, want false")
		}
	})

	t.Run("reads toml values", func(t *testing.T) {
		dir := t.TempDir()
		content := `
debug = true

[storage]
type = "postgres"
conn_string = "host=db.internal dbname=habits"
`
		if err := os.WriteFile(filepath.Join(dir, constants.ConfigFileName), []byte(content), 0600); err != nil {
			t.Fatal(err)
		}

		cfg, err := Load(dir)
		if err != nil {
			t.Fatalf("Load() returned error: %v", err)
		}
		if !cfg.Debug {
			t.Error("cfg.Debug = false, want true")
		}
		if cfg.Storage.Type != "postgres" {
			t.Errorf("cfg.Storage.Type = %q, want %q", cfg.Storage.Type, "postgres")
		}
		if cfg.Storage.ConnString != "host=db.internal dbname=habits" {
			t.Errorf("cfg.Storage.ConnString = %q", cfg.Storage.ConnString)
		}
	})

	t.Run("fills defaults for partial files", func(t *testing.T) {
		dir := t.TempDir()
		if err := os.WriteFile(filepath.Join(dir, constants.ConfigFileName), []byte("debug = true\n"), 0600); err != nil {
			t.Fatal(err)
		}

		cfg, err := Load(dir)
		if err != nil {
			t.Fatalf("Load() returned error: %v", err)
		}
		if cfg.Storage.Type != "sqlite" || cfg.Storage.Path == "" {
			t.Errorf("partial config lost storage defaults: %+v", cfg.Storage)
		}
	})

	t.Run("rejects malformed toml", func(t *testing.T) {
		dir := t.TempDir()
		if err := os.WriteFile(filepath.Join(dir, constants.ConfigFileName), []byte("[storage\ntype="), 0600); err != nil {
			t.Fatal(err)
		}

		if _, err := Load(dir); err == nil {
			t.Error("Load() accepted malformed toml, want error")
		}
	})
}

func TestSaveRoundTrip(t *testing.T) {
	dir := t.TempDir()

	in := Config{
		Storage: StorageConfig{
			Type: "sqlite",
			Path: "/tmp/custom.db",
		},
		Debug: true,
	}
	if err := Save(dir, in); err != nil {
		t.Fatalf("Save() returned error: %v", err)
	}

	out, err := Load(dir)
	if err != nil {
		t.Fatalf("Load() returned error: %v", err)
	}
	if out.Storage.Type != in.Storage.Type || out.Storage.Path != in.Storage.Path || out.Debug != in.Debug {
		t.Errorf("round trip mismatch: saved %+v, loaded %+v", in, out)
	}
}
