package handler

import (
	"context"
	"sort"

	"github.com/pr-poehali-dev/discipline-gaming-app/domain"
)

// In-memory stand-ins for the Postgres repositories, honoring the same
// contracts: ordered lists, owner scoping, floor-at-zero balances and
// conflict-skipping seeds.

type fakeTaskRepo struct {
	nextID   int64
	tasks    map[int64]*domain.Task
	balances map[string]int
}

func newFakeTaskRepo() *fakeTaskRepo {
	return &fakeTaskRepo{
		nextID:   1,
		tasks:    make(map[int64]*domain.Task),
		balances: make(map[string]int),
	}
}

func (r *fakeTaskRepo) ListByUser(ctx context.Context, userID string) ([]domain.Task, error) {
	var out []domain.Task
	for _, t := range r.tasks {
		if t.UserID == userID {
			out = append(out, *t)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Time < out[j].Time })
	return out, nil
}

func (r *fakeTaskRepo) Create(ctx context.Context, task *domain.Task) (*domain.Task, error) {
	if task.Category == "" {
		task.Category = domain.DefaultCategory
	}
	task.ID = r.nextID
	r.nextID++
	copied := *task
	r.tasks[copied.ID] = &copied
	return task, nil
}

func (r *fakeTaskRepo) Overwrite(ctx context.Context, task *domain.Task) error {
	existing, ok := r.tasks[task.ID]
	if !ok || existing.UserID != task.UserID {
		return nil
	}
	existing.Title = task.Title
	existing.Time = task.Time
	existing.Points = task.Points
	existing.Category = task.Category
	existing.NotificationEnabled = task.NotificationEnabled
	return nil
}

func (r *fakeTaskRepo) ToggleCompletion(ctx context.Context, userID string, taskID int64, completed bool) (*domain.ToggleResult, error) {
	task, ok := r.tasks[taskID]
	if !ok || task.UserID != userID {
		return &domain.ToggleResult{Updated: false}, nil
	}
	task.Completed = completed
	balance := r.balances[userID]
	if completed {
		balance += task.Points
	} else {
		balance -= task.Points
		if balance < 0 {
			balance = 0
		}
	}
	r.balances[userID] = balance
	return &domain.ToggleResult{Updated: true, Points: task.Points}, nil
}

func (r *fakeTaskRepo) Delete(ctx context.Context, userID string, taskID int64) error {
	if task, ok := r.tasks[taskID]; ok && task.UserID == userID {
		delete(r.tasks, taskID)
	}
	return nil
}

func (r *fakeTaskRepo) SeedDefaults(ctx context.Context, userID string, tasks []domain.Task) (int, error) {
	inserted := 0
	for _, task := range tasks {
		if r.hasDescriptor(userID, task.Title, task.Time) {
			continue
		}
		task.UserID = userID
		if _, err := r.Create(ctx, &task); err != nil {
			return inserted, err
		}
		inserted++
	}
	return inserted, nil
}

func (r *fakeTaskRepo) hasDescriptor(userID, title, timeOfDay string) bool {
	for _, t := range r.tasks {
		if t.UserID == userID && t.Title == title && t.Time == timeOfDay {
			return true
		}
	}
	return false
}

type fakeUserRepo struct {
	users map[string]*domain.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*domain.User)}
}

func (r *fakeUserRepo) GetOrCreate(ctx context.Context, id string) (*domain.User, error) {
	if user, ok := r.users[id]; ok {
		copied := *user
		return &copied, nil
	}
	user := &domain.User{
		ID:           id,
		Username:     domain.DefaultUsername(id),
		CurrentLevel: 1,
	}
	r.users[id] = user
	copied := *user
	return &copied, nil
}

type fakeAchievementRepo struct {
	rows map[string][]domain.Achievement
}

func newFakeAchievementRepo() *fakeAchievementRepo {
	return &fakeAchievementRepo{rows: make(map[string][]domain.Achievement)}
}

func (r *fakeAchievementRepo) EnsureDefaults(ctx context.Context, userID string) error {
	existing := make(map[domain.AchievementType]bool)
	for _, a := range r.rows[userID] {
		existing[a.Type] = true
	}
	for _, a := range domain.DefaultAchievements(userID) {
		if !existing[a.Type] {
			r.rows[userID] = append(r.rows[userID], a)
		}
	}
	return nil
}

func (r *fakeAchievementRepo) ListByUser(ctx context.Context, userID string) ([]domain.Achievement, error) {
	return append([]domain.Achievement(nil), r.rows[userID]...), nil
}
