package repository

import (
	"context"

	"github.com/pr-poehali-dev/discipline-gaming-app/domain"
)

type TaskRepository interface {
	// ListByUser returns every task of the user ordered by scheduled time ascending.
	ListByUser(ctx context.Context, userID string) ([]domain.Task, error)
	Create(ctx context.Context, task *domain.Task) (*domain.Task, error)
	// Overwrite replaces every mutable task field with the given values,
	// scoped by id and owner. A non-matching pair affects zero rows and is
	// not an error.
	Overwrite(ctx context.Context, task *domain.Task) error
	// ToggleCompletion flips the completion flag and adjusts the owner's
	// point balance in one transaction. The balance never goes negative.
	ToggleCompletion(ctx context.Context, userID string, taskID int64, completed bool) (*domain.ToggleResult, error)
	// Delete removes the task scoped by id and owner; zero rows is success.
	Delete(ctx context.Context, userID string, taskID int64) error
	// SeedDefaults inserts the given tasks for the user, silently skipping
	// any that already exist. Returns the number actually inserted.
	SeedDefaults(ctx context.Context, userID string, tasks []domain.Task) (int, error)
}
