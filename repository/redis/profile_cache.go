package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	redislib "github.com/redis/go-redis/v9"

	"github.com/pr-poehali-dev/discipline-gaming-app/domain"
	"github.com/pr-poehali-dev/discipline-gaming-app/repository"
)

type profileCache struct {
	client *redislib.Client
	prefix string
	ttl    time.Duration
}

// NewProfileCache creates a Redis-backed profile cache.
func NewProfileCache(client *redislib.Client, ttl time.Duration) repository.ProfileCache {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &profileCache{
		client: client,
		prefix: "profile:",
		ttl:    ttl,
	}
}

func (c *profileCache) Get(ctx context.Context, userID string) (*domain.Profile, error) {
	result, err := c.client.Get(ctx, c.key(userID)).Result()
	if err != nil {
		if err == redislib.Nil {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}

	var profile domain.Profile
	if err := json.Unmarshal([]byte(result), &profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

func (c *profileCache) Save(ctx context.Context, profile *domain.Profile) error {
	if profile == nil || profile.ID == "" {
		return domain.ErrInvalidPayload
	}

	payload, err := json.Marshal(profile)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, c.key(profile.ID), payload, c.ttl).Err()
}

func (c *profileCache) Invalidate(ctx context.Context, userID string) error {
	return c.client.Del(ctx, c.key(userID)).Err()
}

func (c *profileCache) key(userID string) string {
	return fmt.Sprintf("%s%s", c.prefix, userID)
}
