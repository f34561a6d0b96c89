package repository

import (
	"context"

	"github.com/pr-poehali-dev/discipline-gaming-app/domain"
)

type UserRepository interface {
	// GetOrCreate reads the profile, inserting the default row first when
	// absent. The insert is conflict-tolerant so two concurrent first
	// requests cannot create duplicates.
	GetOrCreate(ctx context.Context, id string) (*domain.User, error)
}

type AchievementRepository interface {
	// EnsureDefaults inserts the six default achievement rows for the user,
	// ignoring any that already exist.
	EnsureDefaults(ctx context.Context, userID string) error
	ListByUser(ctx context.Context, userID string) ([]domain.Achievement, error)
}
