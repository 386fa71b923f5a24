package cli

import (
	"github.com/zenhabits/zenhabits/internal/backup"
	"github.com/zenhabits/zenhabits/internal/logger"
	"github.com/zenhabits/zenhabits/internal/session"
	"github.com/zenhabits/zenhabits/internal/storage"
	"github.com/zenhabits/zenhabits/internal/tracker"
)

// Context carries the wired application objects into every command.
type Context struct {
	Store     storage.Provider
	Tracker   *tracker.Service
	Sessions  *session.Manager
	ConfigDir string
}

// RequireSession returns the current session or a login-first error.
func (c *Context) RequireSession() (session.Session, error) {
	return c.Sessions.Current()
}

// PerformAutomaticBackup creates an automatic backup and silently handles errors
func (c *Context) PerformAutomaticBackup() {
	mgr := backup.NewManager(c.Store.GetConfigPath())
	_, err := mgr.CreateBackup()
	if err != nil {
		// Log warning but don't interrupt user workflow
		logger.Warn("Automatic backup failed", "error", err)
	}
}
