package tasks

import (
	"context"

	"go.uber.org/zap"

	"github.com/pr-poehali-dev/discipline-gaming-app/domain"
	"github.com/pr-poehali-dev/discipline-gaming-app/repository"
)

type UseCase struct {
	tasks  repository.TaskRepository
	cache  repository.ProfileCache
	logger *zap.Logger
}

func New(tasks repository.TaskRepository, cache repository.ProfileCache, logger *zap.Logger) *UseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UseCase{
		tasks:  tasks,
		cache:  cache,
		logger: logger,
	}
}

func (uc *UseCase) ListTasks(ctx context.Context, userID string) ([]domain.Task, error) {
	return uc.tasks.ListByUser(ctx, userID)
}

func (uc *UseCase) CreateTask(ctx context.Context, task *domain.Task) (*domain.Task, error) {
	return uc.tasks.Create(ctx, task)
}

// ToggleCompletion flips a task's completed flag and lets the store adjust
// the owner's balance atomically. The cached profile is stale afterwards,
// so it is dropped; cache failures never fail the request.
func (uc *UseCase) ToggleCompletion(ctx context.Context, userID string, taskID int64, completed bool) (*domain.ToggleResult, error) {
	result, err := uc.tasks.ToggleCompletion(ctx, userID, taskID, completed)
	if err != nil {
		return nil, err
	}

	if result.Updated && uc.cache != nil {
		if err := uc.cache.Invalidate(ctx, userID); err != nil {
			uc.logger.Warn("profile cache invalidation failed",
				zap.String("user_id", userID), zap.Error(err))
		}
	}
	return result, nil
}

func (uc *UseCase) OverwriteTask(ctx context.Context, task *domain.Task) error {
	return uc.tasks.Overwrite(ctx, task)
}

func (uc *UseCase) DeleteTask(ctx context.Context, userID string, taskID int64) error {
	return uc.tasks.Delete(ctx, userID, taskID)
}
