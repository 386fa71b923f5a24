package models

import "time"

// User is an account row. Passwords are stored and compared in plain
// text. This tool is a local single-user tracker, not an authentication
// system.
type User struct {
	ID        int64     `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Password  string    `json:"password"`
	CreatedAt time.Time `json:"created_at"`
}
