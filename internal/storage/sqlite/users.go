package sqlite

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/zenhabits/zenhabits/internal/models"
	"github.com/zenhabits/zenhabits/internal/storage"
)

func (s *Store) CreateUser(username, email, password string) (int64, error) {
	result, err := s.db.Exec(`
		INSERT INTO users (username, email, password) VALUES (?, ?, ?)`,
		username, email, password)
	if err != nil {
		return 0, storage.WrapConstraint(err)
	}
	return result.LastInsertId()
}

// GetUser looks up an account by exact username and password match. The
// comparison is plain text; this is not a credential check suitable for
// anything networked.
func (s *Store) GetUser(username, password string) (models.User, error) {
	row := s.db.QueryRow(`
		SELECT id, username, email, password, created_at
		FROM users WHERE username = ? AND password = ?`,
		username, password)

	var u models.User
	var createdAt string

	err := row.Scan(&u.ID, &u.Username, &u.Email, &u.Password, &createdAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, storage.ErrNotFound
		}
		return models.User{}, err
	}

	u.CreatedAt, err = parseTimestamp(createdAt)
	if err != nil {
		return models.User{}, fmt.Errorf("failed to parse created_at: %w", err)
	}

	return u, nil
}
