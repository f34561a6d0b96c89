package repository

import (
	"context"

	"github.com/pr-poehali-dev/discipline-gaming-app/domain"
)

// ProfileCache is a TTL-bounded read-through cache for assembled profiles.
// A miss is reported as domain.ErrUserNotFound.
type ProfileCache interface {
	Get(ctx context.Context, userID string) (*domain.Profile, error)
	Save(ctx context.Context, profile *domain.Profile) error
	// Invalidate drops the cached profile; callers invoke it whenever the
	// point balance changes outside the profile path.
	Invalidate(ctx context.Context, userID string) error
}
