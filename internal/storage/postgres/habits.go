package postgres

import (
	"github.com/zenhabits/zenhabits/internal/models"
	"github.com/zenhabits/zenhabits/internal/storage"
)

// GetHabits returns the user's habits in creation order.
func (s *Store) GetHabits(userID int64) ([]models.Habit, error) {
	rows, err := s.db.Query(`
		SELECT id, user_id, title, streak, completed, created_at
		FROM habits WHERE user_id = $1
		ORDER BY id`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var habits []models.Habit
	for rows.Next() {
		var h models.Habit
		if err := rows.Scan(&h.ID, &h.UserID, &h.Title, &h.Streak, &h.Completed, &h.CreatedAt); err != nil {
			return nil, err
		}
		habits = append(habits, h)
	}

	return habits, rows.Err()
}

func (s *Store) AddHabit(userID int64, title string) (int64, error) {
	var id int64
	err := s.db.QueryRow(`
		INSERT INTO habits (user_id, title)
		VALUES ($1, $2)
		RETURNING id`,
		userID, title).Scan(&id)
	if err != nil {
		return 0, err
	}
	return id, nil
}

// UpdateHabit overwrites both fields; a missing id surfaces as
// storage.ErrNotFound.
func (s *Store) UpdateHabit(habitID int64, completed bool, streak int) error {
	result, err := s.db.Exec(`
		UPDATE habits SET completed = $1, streak = $2 WHERE id = $3`,
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

// DeleteHabit is idempotent.
func (s *Store) DeleteHabit(habitID int64) error {
	_, err := s.db.Exec(`DELETE FROM habits WHERE id = $1`, habitID)
	return err
}
