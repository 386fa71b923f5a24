package postgres

import (
	"database/sql"
	"errors"

	"github.com/zenhabits/zenhabits/internal/models"
	"github.com/zenhabits/zenhabits/internal/storage"
)

func (s *Store) CreateUser(username, email, password string) (int64, error) {
	var id int64
	err := s.db.QueryRow(`
		INSERT INTO users (username, email, password)
		VALUES ($1, $2, $3)
		RETURNING id`,
		username, email, password).Scan(&id)
	if err != nil {
		return 0, storage.WrapConstraint(err)
	}
	return id, nil
}

// GetUser looks up an account by exact username and password match.
// Plain-text comparison, same caveat as the SQLite backend.
func (s *Store) GetUser(username, password string) (models.User, error) {
	row := s.db.QueryRow(`
		SELECT id, username, email, password, created_at
		FROM users WHERE username = $1 AND password = $2`,
		username, password)

	var u models.User
	err := row.Scan(&u.ID, &u.Username, &u.Email, &u.Password, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, storage.ErrNotFound
		}
		return models.User{}, err
	}

	return u, nil
}
