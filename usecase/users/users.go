package users

import (
	"context"

	"go.uber.org/zap"

	"github.com/pr-poehali-dev/discipline-gaming-app/domain"
	"github.com/pr-poehali-dev/discipline-gaming-app/repository"
)

type UseCase struct {
	users        repository.UserRepository
	achievements repository.AchievementRepository
	tasks        repository.TaskRepository
	cache        repository.ProfileCache
	logger       *zap.Logger
}

func New(
	users repository.UserRepository,
	achievements repository.AchievementRepository,
	tasks repository.TaskRepository,
	cache repository.ProfileCache,
	logger *zap.Logger,
) *UseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UseCase{
		users:        users,
		achievements: achievements,
		tasks:        tasks,
		cache:        cache,
		logger:       logger,
	}
}

// GetProfile returns the user's profile plus achievement set, creating the
// default profile row and the six default achievements on first access.
func (uc *UseCase) GetProfile(ctx context.Context, userID string) (*domain.Profile, error) {
	if uc.cache != nil {
		cached, err := uc.cache.Get(ctx, userID)
		if err == nil {
			return cached, nil
		}
		if !domain.IsDomainError(err, domain.ErrCodeNotFound) {
			uc.logger.Warn("profile cache read failed",
				zap.String("user_id", userID), zap.Error(err))
		}
	}

	user, err := uc.users.GetOrCreate(ctx, userID)
	if err != nil {
		return nil, err
	}

	if err := uc.achievements.EnsureDefaults(ctx, userID); err != nil {
		return nil, err
	}
	achievements, err := uc.achievements.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	profile := &domain.Profile{
		User:         *user,
		Achievements: achievements,
	}

	if uc.cache != nil {
		if err := uc.cache.Save(ctx, profile); err != nil {
			uc.logger.Warn("profile cache write failed",
				zap.String("user_id", userID), zap.Error(err))
		}
	}
	return profile, nil
}

// SeedTasks inserts the given task descriptors for the user, skipping any
// that already exist. Rerunning the same seed is a no-op.
func (uc *UseCase) SeedTasks(ctx context.Context, userID string, tasks []domain.Task) (int, error) {
	inserted, err := uc.tasks.SeedDefaults(ctx, userID, tasks)
	if err != nil {
		return inserted, err
	}
	if inserted > 0 {
		uc.logger.Info("seeded default tasks",
			zap.String("user_id", userID), zap.Int("inserted", inserted))
	}
	return inserted, nil
}
