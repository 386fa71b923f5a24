package tui

import (
	"errors"
	"testing"

	"github.com/zenhabits/zenhabits/internal/models"
	"github.com/zenhabits/zenhabits/internal/session"
	"github.com/zenhabits/zenhabits/internal/tracker"
)

// stubStore satisfies storage.Provider with canned habit data or a
// canned failure.
type stubStore struct {
	habits []models.Habit
	err    error
}

func (s *stubStore) Init() error  { return nil }
func (s *stubStore) Load() error  { return nil }
func (s *stubStore) Close() error { return nil }

func (s *stubStore) CreateUser(username, email, password string) (int64, error) { return 0, nil }
func (s *stubStore) GetUser(username, password string) (models.User, error) {
	return models.User{}, nil
}

func (s *stubStore) GetHabits(userID int64) ([]models.Habit, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.habits, nil
}
func (s *stubStore) AddHabit(userID int64, title string) (int64, error)          { return 0, nil }
func (s *stubStore) UpdateHabit(habitID int64, completed bool, streak int) error { return nil }
func (s *stubStore) DeleteHabit(habitID int64) error                             { return nil }

func (s *stubStore) GetNote(userID int64, date string) (models.Note, error) {
	return models.Note{}, nil
}
func (s *stubStore) SaveNote(userID int64, date, text string) error { return nil }
func (s *stubStore) DeleteNote(userID int64, date string) error     { return nil }

func (s *stubStore) GetConfigPath() string { return "" }

func TestNewModel(t *testing.T) {
	sess := session.Session{UserID: 1, Username: "alice"}

	t.Run("loads the habit list", func(t *testing.T) {
		store := &stubStore{habits: []models.Habit{
			{ID: 1, UserID: 1, Title: "read", Streak: 2, Completed: true},
			{ID: 2, UserID: 1, Title: "run"},
		}}

		m := NewModel(tracker.NewService(store), sess)
		if m.errMsg != "" {
			t.Errorf("errMsg = %q, want empty", m.errMsg)
		}
		if got := len(m.habitList.Habits()); got != 2 {
			t.Errorf("habit list has %d entries, want 2", got)
		}
	})

	t.Run("surfaces a failing store", func(t *testing.T) {
		store := &stubStore{err: errors.New("database locked")}

		m := NewModel(tracker.NewService(store), sess)
		if m.errMsg == "" {
			t.Error("errMsg is empty, want the load failure surfaced")
		}
		if got := len(m.habitList.Habits()); got != 0 {
			t.Errorf("habit list has %d entries, want 0", got)
		}
	})
}
