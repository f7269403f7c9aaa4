package memory

import (
	"context"
	"sync"

	"github.com/KarpovAlexandrGo/taskboard/internal/entity"
)

// SnapshotRepository keeps the last saved snapshot in process memory.
type SnapshotRepository struct {
	mu   sync.RWMutex
	snap *entity.Snapshot
}

func NewSnapshotRepository() *SnapshotRepository {
	return &SnapshotRepository{}
}

func (r *SnapshotRepository) Load(_ context.Context) (entity.Snapshot, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.snap == nil {
		return entity.Snapshot{}, false, nil
	}
	return r.snap.Clone(), true, nil
}

func (r *SnapshotRepository) Save(_ context.Context, snap entity.Snapshot) error {
	c := snap.Clone()
	r.mu.Lock()
	defer r.mu.Unlock()
	r.snap = &c
	return nil
}

func (r *SnapshotRepository) Close() error { return nil }
