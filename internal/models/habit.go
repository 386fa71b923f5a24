package models

import "time"

// Habit is a single tracked habit. Completed and Streak evolve together
// through the toggle rule in the tracker package; the store persists
// whatever pair it is handed.
type Habit struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	Title     string    `json:"title"`
	Streak    int       `json:"streak"`
	Completed bool      `json:"completed"`
	CreatedAt time.Time `json:"created_at"`
}
