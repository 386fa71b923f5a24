package constants

// SessionState represents the current state of the TUI application
type SessionState int

const (
	AppName            = "zenhabits"
	DefaultKeyringUser = "database-connection"
	DefaultConfigPath  = "~/.config/zenhabits/zenhabits.db"
	Version            = "v0.2.0"

	// DateFormat is the standard date format used throughout the application (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// Backup constants
	MaxBackups       = 14
	BackupDirName    = "backups"
	BackupFilePrefix = "zenhabits-"
	BackupFileSuffix = ".db"

	// Session file name inside the config directory
	SessionFileName = "session.json"

	// Config file name inside the config directory
	ConfigFileName = "config.toml"

	// Session States
	StateHabits SessionState = iota
	StateAddHabit
	StateEditNote
	StateConfirmDelete
)
