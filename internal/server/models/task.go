package models

import "time"

// Task statuses as stored in the tasks.status column.
const (
	StatusPending   = "pending"
	StatusCompleted = "completed"
)

// ValidStatus reports whether s is a known task status.
func ValidStatus(s string) bool {
	return s == StatusPending || s == StatusCompleted
}

type Task struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Status      string    `json:"status"`
	UserID      int64     `json:"user_id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
