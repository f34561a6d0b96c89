package domain

import (
	"fmt"
	"time"
)

// User represents a player profile. The identifier is caller-supplied, not
// store-generated; the profile row is created lazily on first access.
type User struct {
	ID             string     `json:"id"`
	Username       string     `json:"username"`
	Points         int        `json:"points"`
	CurrentLevel   int        `json:"currentLevel"`
	StreakDays     int        `json:"streakDays"`
	LastActiveDate *time.Time `json:"lastActiveDate"`
}

// DefaultUsername derives the username used when a profile is bootstrapped.
func DefaultUsername(userID string) string {
	return fmt.Sprintf("user_%s", userID)
}

// Profile is a user together with their achievement set, as served to
// clients by the user endpoint.
type Profile struct {
	User
	Achievements []Achievement `json:"achievements"`
}
