package sqlite

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/zenhabits/zenhabits/internal/models"
	"github.com/zenhabits/zenhabits/internal/storage"
)

func (s *Store) GetNote(userID int64, date string) (models.Note, error) {
	row := s.db.QueryRow(`
		SELECT id, user_id, date, text, created_at
		FROM notes WHERE user_id = ? AND date = ?`,
		userID, date)

	var n models.Note
	var createdAt string

	err := row.Scan(&n.ID, &n.UserID, &n.Date, &n.Text, &createdAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Note{}, storage.ErrNotFound
		}
		return models.Note{}, err
	}

	n.CreatedAt, err = parseTimestamp(createdAt)
	if err != nil {
		return models.Note{}, fmt.Errorf("failed to parse created_at: %w", err)
	}

	return n, nil
}

// SaveNote upserts the single note for (userID, date). Last write wins;
// blank text is stored like any other value.
func (s *Store) SaveNote(userID int64, date, text string) error {
	_, err := s.db.Exec(`
		INSERT INTO notes (user_id, date, text)
		VALUES (?, ?, ?)
		ON CONFLICT(user_id, date) DO UPDATE SET
			text = excluded.text`,
		userID, date, text)
	return err
}

// DeleteNote is idempotent; a missing note is a no-op.
func (s *Store) DeleteNote(userID int64, date string) error {
	_, err := s.db.Exec(`DELETE FROM notes WHERE user_id = ? AND date = ?`, userID, date)
	return err
}
