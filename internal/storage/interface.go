package storage

import "github.com/zenhabits/zenhabits/internal/models"

// Provider is the persistence contract shared by the SQLite and
// PostgreSQL backends. All operations are synchronous writes against a
// single connection; the storage engine provides the only serialization
// guarantee, which is sufficient for a single-user desktop session.
type Provider interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	// Users
	CreateUser(username, email, password string) (int64, error)
	GetUser(username, password string) (models.User, error)

	// Habits
	GetHabits(userID int64) ([]models.Habit, error)
	AddHabit(userID int64, title string) (int64, error)
	UpdateHabit(habitID int64, completed bool, streak int) error
	DeleteHabit(habitID int64) error

	// Notes
	GetNote(userID int64, date string) (models.Note, error)
	SaveNote(userID int64, date, text string) error
	DeleteNote(userID int64, date string) error

	// Utils
	GetConfigPath() string
}
