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

type userRepository struct {
	pool *pgxpool.Pool
}

// NewUserRepository instantiates a Postgres-backed user repository.
func NewUserRepository(pool *pgxpool.Pool) repository.UserRepository {
	return &userRepository{pool: pool}
}

func (r *userRepository) GetOrCreate(ctx context.Context, id string) (*domain.User, error) {
	// Insert-if-absent followed by a read, instead of a racy exists check.
	const insertQuery = `
	INSERT INTO users (id, username, points, current_level, streak_days)
	VALUES ($1, $2, 0, 1, 0)
	ON CONFLICT (id) DO NOTHING
	`
	if _, err := r.pool.Exec(ctx, insertQuery, id, domain.DefaultUsername(id)); err != nil {
		return nil, err
	}

	const selectQuery = `
	SELECT id, username, points, current_level, streak_days, last_active_date
	FROM users
	WHERE id = $1
	`
	row := r.pool.QueryRow(ctx, selectQuery, id)

	var user domain.User
	var lastActive *time.Time
	if err := row.Scan(&user.ID, &user.Username, &user.Points, &user.CurrentLevel, &user.StreakDays, &lastActive); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}

	user.LastActiveDate = lastActive
	return &user, nil
}
