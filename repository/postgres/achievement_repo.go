package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/pr-poehali-dev/discipline-gaming-app/domain"
	"github.com/pr-poehali-dev/discipline-gaming-app/repository"
)

type achievementRepository struct {
	pool *pgxpool.Pool
}

// NewAchievementRepository returns a Postgres-backed achievement repository.
func NewAchievementRepository(pool *pgxpool.Pool) repository.AchievementRepository {
	return &achievementRepository{pool: pool}
}

// EnsureDefaults inserts the six default rows unconditionally, relying on
// the (user_id, achievement_type) uniqueness constraint for idempotence
// under concurrent first requests.
func (r *achievementRepository) EnsureDefaults(ctx context.Context, userID string) error {
	const query = `
	INSERT INTO achievements (user_id, achievement_type, title, description)
	SELECT $1, t.type, t.title, t.description
	FROM unnest($2::text[], $3::text[], $4::text[]) AS t(type, title, description)
	ON CONFLICT (user_id, achievement_type) DO NOTHING
	`

	defaults := domain.DefaultAchievements(userID)
	types := make([]string, 0, len(defaults))
	titles := make([]string, 0, len(defaults))
	descriptions := make([]string, 0, len(defaults))
	for _, a := range defaults {
		types = append(types, string(a.Type))
		titles = append(titles, a.Title)
		descriptions = append(descriptions, a.Description)
	}

	_, err := r.pool.Exec(ctx, query, userID, types, titles, descriptions)
	return err
}

func (r *achievementRepository) ListByUser(ctx context.Context, userID string) ([]domain.Achievement, error) {
	const query = `
	SELECT user_id, achievement_type, title, description, unlocked
	FROM achievements
	WHERE user_id = $1
	ORDER BY id
	`
	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var achievements []domain.Achievement
	for rows.Next() {
		var a domain.Achievement
		if err := rows.Scan(&a.UserID, &a.Type, &a.Title, &a.Description, &a.Unlocked); err != nil {
			return nil, err
		}
		achievements = append(achievements, a)
	}
	return achievements, rows.Err()
}
