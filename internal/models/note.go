package models

import "time"

// Note is a free-text journal entry keyed by (UserID, Date). At most one
// note exists per user per calendar day; saves are last-write-wins.
type Note struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	Date      string    `json:"date"` // YYYY-MM-DD
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
}
