package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/KarpovAlexandrGo/taskboard/internal/entity"
)

const snapshotKey = "taskboard:snapshot"

type CacheRepository struct {
	client *redis.Client
}

func NewCacheRepository(addr, password string, db int) *CacheRepository {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	return &CacheRepository{client: client}
}

func (c *CacheRepository) SetSnapshot(ctx context.Context, snap entity.Snapshot, ttl time.Duration) error {
	data, err := json.Marshal(snap)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, snapshotKey, data, ttl).Err()
}

// GetSnapshot возвращает found=false, если кэш пуст
func (c *CacheRepository) GetSnapshot(ctx context.Context) (entity.Snapshot, bool, error) {
	data, err := c.client.Get(ctx, snapshotKey).Bytes()
	if errors.Is(err, redis.Nil) {
		return entity.Snapshot{}, false, nil
	} else if err != nil {
		return entity.Snapshot{}, false, err
	}

	var snap entity.Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return entity.Snapshot{}, false, err
	}
	for i := range snap.Tasks {
		if snap.Tasks[i].Tags == nil {
			snap.Tasks[i].Tags = []string{}
		}
	}
	return snap, true, nil
}

func (c *CacheRepository) Invalidate(ctx context.Context) error {
	return c.client.Del(ctx, snapshotKey).Err()
}

// Ping проверяет подключение к Redis
func (c *CacheRepository) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

func (c *CacheRepository) Close() error {
	return c.client.Close()
}

// NoopCache используется, когда Redis не настроен
type NoopCache struct{}

func (NoopCache) SetSnapshot(context.Context, entity.Snapshot, time.Duration) error { return nil }

func (NoopCache) GetSnapshot(context.Context) (entity.Snapshot, bool, error) {
	return entity.Snapshot{}, false, nil
}

func (NoopCache) Invalidate(context.Context) error { return nil }
