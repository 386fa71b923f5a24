package tracker

import (
	"errors"
	"fmt"

	"github.com/zenhabits/zenhabits/internal/logger"
	"github.com/zenhabits/zenhabits/internal/models"
	"github.com/zenhabits/zenhabits/internal/storage"
	"github.com/zenhabits/zenhabits/internal/validation"
)

// Service exposes the tracker operations over a storage provider. It is
// the single entry point UI layers (CLI and TUI) go through.
type Service struct {
	store storage.Provider
}

func NewService(store storage.Provider) *Service {
	return &Service{store: store}
}

// Register creates a new account. Validation failures are reported
// before the store is touched; duplicate usernames or emails come back
// as storage.ConflictError with the constraint message intact.
func (s *Service) Register(username, email, password string) (int64, error) {
	if err := validation.ValidateRegistration(username, email, password); err != nil {
		return 0, err
	}

	userID, err := s.store.CreateUser(username, email, password)
	if err != nil {
		return 0, err
	}

	logger.Info("Registered user", "username", username, "userID", userID)
	return userID, nil
}

// Login returns the matching user record, or storage.ErrNotFound when
// no account matches the username/password pair.
func (s *Service) Login(username, password string) (models.User, error) {
	if err := validation.ValidateLogin(username, password); err != nil {
		return models.User{}, err
	}
	return s.store.GetUser(username, password)
}

// ListHabits returns the user's habits in creation order.
func (s *Service) ListHabits(userID int64) ([]models.Habit, error) {
	return s.store.GetHabits(userID)
}

// AddHabit creates a habit starting at (completed=false, streak=0).
func (s *Service) AddHabit(userID int64, title string) (int64, error) {
	if err := validation.ValidateHabitTitle(title); err != nil {
		return 0, err
	}
	return s.store.AddHabit(userID, title)
}

// ToggleHabit flips a habit's completion state, adjusts the streak and
// persists the new pair. A missing habit id is a reportable failure,
// not a silent no-op: the user's action must not be discarded.
func (s *Service) ToggleHabit(habit models.Habit) (models.Habit, error) {
	completed, streak := Toggle(habit.Completed, habit.Streak)

	if err := s.store.UpdateHabit(habit.ID, completed, streak); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return models.Habit{}, fmt.Errorf("habit %d not found: %w", habit.ID, err)
		}
		return models.Habit{}, err
	}

	habit.Completed = completed
	habit.Streak = streak
	return habit, nil
}

// RemoveHabit deletes a habit. Removing an id that does not exist is a
// no-op.
func (s *Service) RemoveHabit(habitID int64) error {
	return s.store.DeleteHabit(habitID)
}

// GetNote returns the note for (userID, date), or storage.ErrNotFound.
func (s *Service) GetNote(userID int64, date string) (models.Note, error) {
	if err := validation.ValidateDate(date); err != nil {
		return models.Note{}, err
	}
	return s.store.GetNote(userID, date)
}

// SaveNote upserts the single note for (userID, date). Last write wins.
func (s *Service) SaveNote(userID int64, date, text string) error {
	if err := validation.ValidateDate(date); err != nil {
		return err
	}
	return s.store.SaveNote(userID, date, text)
}

// DeleteNote removes the note for (userID, date) if present.
func (s *Service) DeleteNote(userID int64, date string) error {
	if err := validation.ValidateDate(date); err != nil {
		return err
	}
	return s.store.DeleteNote(userID, date)
}
