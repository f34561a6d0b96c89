package domain

import "time"

// DefaultCategory is assigned to tasks created without an explicit category.
const DefaultCategory = "Общее"

// Task represents a user-owned scheduled activity worth a number of points.
type Task struct {
	ID                  int64      `json:"id"`
	UserID              string     `json:"-"`
	Title               string     `json:"title"`
	Time                string     `json:"time"`
	Points              int        `json:"points"`
	Category            string     `json:"category"`
	Completed           bool       `json:"completed"`
	CompletedAt         *time.Time `json:"completedAt,omitempty"`
	NotificationEnabled bool       `json:"notificationEnabled"`
}

// ToggleResult reports the outcome of a completion toggle.
type ToggleResult struct {
	// Updated is false when no task matched the id/owner pair.
	Updated bool
	// Points is the task's point value read inside the toggle transaction.
	Points int
}
