package postgres

import (
	"database/sql"
	"errors"

	"github.com/zenhabits/zenhabits/internal/models"
	"github.com/zenhabits/zenhabits/internal/storage"
)

func (s *Store) GetNote(userID int64, date string) (models.Note, error) {
	row := s.db.QueryRow(`
		SELECT id, user_id, date, text, created_at
		FROM notes WHERE user_id = $1 AND date = $2`,
		userID, date)

	var n models.Note
	err := row.Scan(&n.ID, &n.UserID, &n.Date, &n.Text, &n.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Note{}, storage.ErrNotFound
		}
		return models.Note{}, err
	}

	return n, nil
}

// SaveNote upserts the single note for (userID, date).
func (s *Store) SaveNote(userID int64, date, text string) error {
	_, err := s.db.Exec(`
		INSERT INTO notes (user_id, date, text)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id, date) DO UPDATE SET
			text = excluded.text`,
		userID, date, text)
	return err
}

// DeleteNote is idempotent.
func (s *Store) DeleteNote(userID int64, date string) error {
	_, err := s.db.Exec(`DELETE FROM notes WHERE user_id = $1 AND date = $2`, userID, date)
	return err
}
