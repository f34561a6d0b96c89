package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/pr-poehali-dev/discipline-gaming-app/domain"
	"github.com/pr-poehali-dev/discipline-gaming-app/repository"
)

type taskRepository struct {
	pool *pgxpool.Pool
}

// NewTaskRepository returns a Postgres-backed implementation of TaskRepository.
func NewTaskRepository(pool *pgxpool.Pool) repository.TaskRepository {
	return &taskRepository{pool: pool}
}

func (r *taskRepository) ListByUser(ctx context.Context, userID string) ([]domain.Task, error) {
	const query = `
	SELECT id, user_id, title, time, points, category, completed, completed_at, notification_enabled
	FROM tasks
	WHERE user_id = $1
	ORDER BY time
	`
	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tasks []domain.Task
	for rows.Next() {
		task, err := scanTask(rows)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, *task)
	}
	return tasks, rows.Err()
}

func (r *taskRepository) Create(ctx context.Context, task *domain.Task) (*domain.Task, error) {
	if task == nil {
		return nil, domain.ErrInvalidPayload
	}
	if task.Category == "" {
		task.Category = domain.DefaultCategory
	}

	const query = `
	INSERT INTO tasks (user_id, title, time, points, category, notification_enabled)
	VALUES ($1, $2, $3, $4, $5, $6)
	RETURNING id
	`

	if err := r.pool.QueryRow(ctx, query,
		task.UserID,
		task.Title,
		task.Time,
		task.Points,
		task.Category,
		task.NotificationEnabled,
	).Scan(&task.ID); err != nil {
		if isUniqueViolation(err) {
			return nil, domain.ErrDuplicateTask
		}
		return nil, err
	}

	return task, nil
}

func (r *taskRepository) Overwrite(ctx context.Context, task *domain.Task) error {
	if task == nil {
		return domain.ErrInvalidPayload
	}

	// Every field is replaced with whatever the caller supplied; a
	// non-matching id/owner pair updates zero rows and reports success.
	const query = `
	UPDATE tasks
	SET title = $3,
		time = $4,
		points = $5,
		category = $6,
		notification_enabled = $7
	WHERE id = $1 AND user_id = $2
	`
	_, err := r.pool.Exec(ctx, query,
		task.ID,
		task.UserID,
		task.Title,
		task.Time,
		task.Points,
		task.Category,
		task.NotificationEnabled,
	)
	return err
}

func (r *taskRepository) ToggleCompletion(ctx context.Context, userID string, taskID int64, completed bool) (*domain.ToggleResult, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	// The task row is updated and its point value read back in one
	// statement; the follow-up balance update locks the user row, so
	// concurrent toggles for the same user serialize on it.
	const markQuery = `
	UPDATE tasks
	SET completed = $3,
		completed_at = CASE WHEN $3 THEN NOW() ELSE NULL END
	WHERE id = $1 AND user_id = $2
	RETURNING points
	`
	var points int
	if err := tx.QueryRow(ctx, markQuery, taskID, userID, completed).Scan(&points); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return &domain.ToggleResult{Updated: false}, nil
		}
		return nil, err
	}

	delta := points
	if !completed {
		delta = -points
	}

	const balanceQuery = `
	UPDATE users
	SET points = GREATEST(0, points + $2)
	WHERE id = $1
	`
	if _, err := tx.Exec(ctx, balanceQuery, userID, delta); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	return &domain.ToggleResult{Updated: true, Points: points}, nil
}

func (r *taskRepository) Delete(ctx context.Context, userID string, taskID int64) error {
	const query = `DELETE FROM tasks WHERE id = $1 AND user_id = $2`
	_, err := r.pool.Exec(ctx, query, taskID, userID)
	return err
}

func (r *taskRepository) SeedDefaults(ctx context.Context, userID string, tasks []domain.Task) (int, error) {
	const query = `
	INSERT INTO tasks (user_id, title, time, points, category, notification_enabled)
	VALUES ($1, $2, $3, $4, $5, $6)
	ON CONFLICT (user_id, title, time) DO NOTHING
	`
	inserted := 0
	for _, task := range tasks {
		if task.Category == "" {
			task.Category = domain.DefaultCategory
		}
		tag, err := r.pool.Exec(ctx, query,
			userID,
			task.Title,
			task.Time,
			task.Points,
			task.Category,
			task.NotificationEnabled,
		)
		if err != nil {
			return inserted, err
		}
		inserted += int(tag.RowsAffected())
	}
	return inserted, nil
}

func scanTask(row interface {
	Scan(dest ...interface{}) error
}) (*domain.Task, error) {
	var task domain.Task
	var completedAt *time.Time

	if err := row.Scan(
		&task.ID,
		&task.UserID,
		&task.Title,
		&task.Time,
		&task.Points,
		&task.Category,
		&task.Completed,
		&completedAt,
		&task.NotificationEnabled,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrTaskNotFound
		}
		return nil, err
	}

	task.CompletedAt = completedAt
	return &task, nil
}
