package sqlite

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/KarpovAlexandrGo/taskboard/internal/entity"
	"github.com/KarpovAlexandrGo/taskboard/pkg/logger"
)

// insertBatchSize keeps each INSERT under SQLite's bound-variable limit.
const insertBatchSize = 500

// SnapshotRepository persists the board in a local SQLite file through gorm.
type SnapshotRepository struct {
	db *gorm.DB
}

func NewSnapshotRepository(db *gorm.DB) *SnapshotRepository {
	return &SnapshotRepository{db: db}
}

func (r *SnapshotRepository) Load(ctx context.Context) (entity.Snapshot, bool, error) {
	db := r.db.WithContext(ctx)

	var state boardStateRecord
	err := db.First(&state, boardStateID).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return entity.Snapshot{}, false, nil
	case err != nil:
		logger.Log.WithFields(logrus.Fields{
			"method": "Load",
		}).WithError(err).Error("Failed to read board state")
		return entity.Snapshot{}, false, fmt.Errorf("find board state: %w", err)
	}

	var projects []projectRecord
	if err := db.Order("position ASC").Find(&projects).Error; err != nil {
		return entity.Snapshot{}, false, fmt.Errorf("list projects: %w", err)
	}
	var tasks []taskRecord
	if err := db.Order("position ASC").Find(&tasks).Error; err != nil {
		return entity.Snapshot{}, false, fmt.Errorf("list tasks: %w", err)
	}

	snap := entity.Snapshot{
		Projects:        make([]entity.Project, 0, len(projects)),
		Tasks:           make([]entity.Task, 0, len(tasks)),
		CurrentView:     entity.ViewMode(state.CurrentView),
		SelectedProject: state.SelectedProject,
		SearchQuery:     state.SearchQuery,
	}
	for _, p := range projects {
		snap.Projects = append(snap.Projects, p.toEntity())
	}
	for _, t := range tasks {
		snap.Tasks = append(snap.Tasks, t.toEntity())
	}
	return snap, true, nil
}

func (r *SnapshotRepository) Save(ctx context.Context, snap entity.Snapshot) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&taskRecord{}).Error; err != nil {
			return fmt.Errorf("clear tasks: %w", err)
		}
		if err := tx.Where("1 = 1").Delete(&projectRecord{}).Error; err != nil {
			return fmt.Errorf("clear projects: %w", err)
		}

		if len(snap.Projects) > 0 {
			projects := make([]projectRecord, 0, len(snap.Projects))
			for i, p := range snap.Projects {
				projects = append(projects, toProjectRecord(p, i))
			}
			if err := tx.CreateInBatches(&projects, insertBatchSize).Error; err != nil {
				return fmt.Errorf("create projects: %w", err)
			}
		}

		if len(snap.Tasks) > 0 {
			tasks := make([]taskRecord, 0, len(snap.Tasks))
			for i, t := range snap.Tasks {
				tasks = append(tasks, toTaskRecord(t, i))
			}
			if err := tx.CreateInBatches(&tasks, insertBatchSize).Error; err != nil {
				return fmt.Errorf("create tasks: %w", err)
			}
		}

		state := boardStateRecord{
			ID:              boardStateID,
			CurrentView:     string(snap.CurrentView),
			SelectedProject: snap.SelectedProject,
			SearchQuery:     snap.SearchQuery,
		}
		if err := tx.Save(&state).Error; err != nil {
			return fmt.Errorf("save board state: %w", err)
		}
		return nil
	})
	if err != nil {
		logger.Log.WithFields(logrus.Fields{
			"method":   "Save",
			"tasks":    len(snap.Tasks),
			"projects": len(snap.Projects),
		}).WithError(err).Error("Failed to save snapshot")
		return err
	}
	return nil
}

func (r *SnapshotRepository) Close() error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
