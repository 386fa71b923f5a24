package main

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/zenhabits/zenhabits/internal/cli"
	"github.com/zenhabits/zenhabits/internal/cli/backups"
	"github.com/zenhabits/zenhabits/internal/cli/system"
	"github.com/zenhabits/zenhabits/internal/config"
	"github.com/zenhabits/zenhabits/internal/constants"
	apperrors "github.com/zenhabits/zenhabits/internal/errors"
	"github.com/zenhabits/zenhabits/internal/keyring"
	"github.com/zenhabits/zenhabits/internal/logger"
	"github.com/zenhabits/zenhabits/internal/session"
	"github.com/zenhabits/zenhabits/internal/storage"
	"github.com/zenhabits/zenhabits/internal/storage/postgres"
	"github.com/zenhabits/zenhabits/internal/storage/sqlite"
	"github.com/zenhabits/zenhabits/internal/tracker"
)

var CLI struct {
	Version   kong.VersionFlag
	ConfigDir string `help:"Config directory (default: ~/.config/zenhabits)." type:"path"`
	Database  string `help:"Database file path or PostgreSQL connection string. For PostgreSQL, credentials must NOT be embedded; use the OS keyring instead."`
	Debug     bool   `help:"Enable debug logging."`

	Init     system.InitCmd    `cmd:"" help:"Initialize zenhabits storage."`
	Migrate  system.MigrateCmd `cmd:"" help:"Run database migrations."`
	Doctor   system.DoctorCmd  `cmd:"" help:"Run health checks and diagnostics."`
	Tui      system.TuiCmd     `cmd:"" help:"Launch the interactive dashboard." default:"1"`
	Register cli.RegisterCmd   `cmd:"" help:"Create a new account."`
	Login    cli.LoginCmd      `cmd:"" help:"Log in and start a session."`
	Logout   cli.LogoutCmd     `cmd:"" help:"End the current session."`
	Whoami   cli.WhoamiCmd     `cmd:"" help:"Show the current session."`
	Habit    cli.HabitCmd      `cmd:"" help:"Manage habits."`
	Note     cli.NoteCmd       `cmd:"" help:"Manage daily notes."`
	Backup   struct {
		Create  backups.BackupCreateCmd  `cmd:"" help:"Create a manual backup." default:"1"`
		List    backups.BackupListCmd    `cmd:"" help:"List available backups."`
		Restore backups.BackupRestoreCmd `cmd:"" help:"Restore from a backup."`
	} `cmd:"" help:"Manage database backups."`
	Keyring struct {
		Set    system.KeyringSetCmd    `cmd:"" help:"Store a PostgreSQL connection string in the OS keyring."`
		Get    system.KeyringGetCmd    `cmd:"" help:"Show the stored connection string."`
		Delete system.KeyringDeleteCmd `cmd:"" help:"Remove the stored connection string."`
	} `cmd:"" help:"Manage keyring credentials."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name(constants.AppName),
		kong.Description("Habit tracker with streaks and daily notes"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact:             true,
			NoExpandSubcommands: true,
		}),
		kong.Vars{"version": constants.Version},
	)

	configDir := CLI.ConfigDir
	if configDir == "" {
		base, err := os.UserConfigDir()
		if err != nil {
			apperrors.Fatalf("cannot determine config directory: %v", err)
		}
		configDir = filepath.Join(base, constants.AppName)
	}

	cfg, err := config.Load(configDir)
	if err != nil {
		apperrors.Fatal(err)
	}

	if err := logger.Init(logger.Config{Debug: CLI.Debug || cfg.Debug, ConfigDir: configDir}); err != nil {
		apperrors.Fatalf("failed to initialize logging: %v", err)
	}

	store, err := buildStore(configDir, cfg)
	if err != nil {
		apperrors.Fatal(err)
	}

	appCtx := &cli.Context{
		Store:     store,
		Tracker:   tracker.NewService(store),
		Sessions:  session.NewManager(configDir),
		ConfigDir: configDir,
	}

	if err := ctx.Run(appCtx); err != nil {
		apperrors.Fatal(err)
	}
}

// buildStore resolves the storage backend from the --database flag,
// the config file, and the OS keyring, in that order.
func buildStore(configDir string, cfg config.Config) (storage.Provider, error) {
	target := CLI.Database
	if target == "" {
		switch cfg.Storage.Type {
		case "postgres":
			target = cfg.Storage.ConnString
			if target == "" {
				connStr, err := keyring.GetConnectionString()
				if err != nil {
					if errors.Is(err, keyring.ErrNotFound) {
						return nil, errors.New("postgres storage configured but no connection string found; set one with 'zenhabits keyring set'")
					}
					return nil, err
				}
				// Keyring-sourced strings may carry credentials; the
				// keyring is the one sanctioned place for them.
				return postgres.New(connStr), nil
			}
		default:
			target = cfg.Storage.Path
			if target == "" {
				target = filepath.Join(configDir, constants.AppName+".db")
			}
		}
	}

	if strings.HasPrefix(target, "postgres://") || strings.HasPrefix(target, "postgresql://") || strings.Contains(target, "host=") {
		if _, err := postgres.ValidateConnString(target); err != nil {
			if errors.Is(err, postgres.ErrEmbeddedCredentials) {
				return nil, errors.New("PostgreSQL connection strings with embedded credentials are not allowed; store the full string in the OS keyring with 'zenhabits keyring set'")
			}
			return nil, err
		}
		return postgres.New(target), nil
	}

	return sqlite.NewStore(target), nil
}
