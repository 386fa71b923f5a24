package sqlite

import (
	"fmt"

	"github.com/zenhabits/zenhabits/internal/models"
	"github.com/zenhabits/zenhabits/internal/storage"
)

// GetHabits returns the user's habits in creation order.
func (s *Store) GetHabits(userID int64) ([]models.Habit, error) {
	rows, err := s.db.Query(`
		SELECT id, user_id, title, streak, completed, created_at
		FROM habits WHERE user_id = ?
		ORDER BY id`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var habits []models.Habit
	for rows.Next() {
		var h models.Habit
		var createdAt string

		err := rows.Scan(&h.ID, &h.UserID, &h.Title, &h.Streak, &h.Completed, &createdAt)
		if err != nil {
			return nil, err
		}

		h.CreatedAt, err = parseTimestamp(createdAt)
		if err != nil {
			return nil, fmt.Errorf("failed to parse created_at for habit %d: %w", h.ID, err)
		}

		habits = append(habits, h)
	}

	return habits, rows.Err()
}

// AddHabit inserts a habit with the column defaults (streak 0, not
// completed). Duplicate titles per user are allowed.
func (s *Store) AddHabit(userID int64, title string) (int64, error) {
	result, err := s.db.Exec(`
		INSERT INTO habits (user_id, title) VALUES (?, ?)`,
		userID, title)
	if err != nil {
		return 0, err
	}
	return result.LastInsertId()
}

// UpdateHabit overwrites both the completed flag and the streak. The
// caller computes a valid pair; a missing habit id surfaces as
// storage.ErrNotFound rather than a silent no-op.
func (s *Store) UpdateHabit(habitID int64, completed bool, streak int) error {
	result, err := s.db.Exec(`
		UPDATE habits SET completed = ?, streak = ? WHERE id = ?`,
		completed, streak, habitID)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return storage.ErrNotFound
	}

	return nil
}

// DeleteHabit is idempotent: deleting a habit that does not exist is
// not an error.
func (s *Store) DeleteHabit(habitID int64) error {
	_, err := s.db.Exec(`DELETE FROM habits WHERE id = ?`, habitID)
	return err
}
