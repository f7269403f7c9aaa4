package usecase

import (
	"context"
	"time"

	"github.com/KarpovAlexandrGo/taskboard/internal/entity"
)

type SnapshotRepository interface {
	Load(ctx context.Context) (entity.Snapshot, bool, error)
	Save(ctx context.Context, snap entity.Snapshot) error
	Close() error
}

type CacheRepository interface {
	SetSnapshot(ctx context.Context, snap entity.Snapshot, ttl time.Duration) error
	GetSnapshot(ctx context.Context) (entity.Snapshot, bool, error)
	Invalidate(ctx context.Context) error
}
