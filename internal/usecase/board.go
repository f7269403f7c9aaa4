package usecase

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/KarpovAlexandrGo/taskboard/internal/entity"
	"github.com/KarpovAlexandrGo/taskboard/internal/metrics"
	"github.com/KarpovAlexandrGo/taskboard/internal/security"
	"github.com/KarpovAlexandrGo/taskboard/internal/store"
	"github.com/KarpovAlexandrGo/taskboard/pkg/logger"
)

var (
	ErrTaskNotFound    = errors.New("task not found")
	ErrProjectNotFound = errors.New("project not found")
	// ErrPersistence means the change was applied in memory but could not be saved.
	ErrPersistence = errors.New("failed to persist board")
)

const defaultCacheTTL = 5 * time.Minute

type BoardUseCase interface {
	Load(ctx context.Context) error

	Tasks(ctx context.Context) []entity.Task
	FilteredTasks(ctx context.Context) []entity.Task
	Task(ctx context.Context, id string) (entity.Task, error)
	AddTask(ctx context.Context, in entity.TaskInput) (store.Result, error)
	UpdateTask(ctx context.Context, id string, patch entity.TaskPatch) (store.Result, error)
	DeleteTask(ctx context.Context, id string) (store.Result, error)
	ToggleTask(ctx context.Context, id string) (bool, error)

	Projects(ctx context.Context) []entity.Project
	Project(ctx context.Context, id string) (entity.Project, error)
	AddProject(ctx context.Context, in entity.ProjectInput) (store.Result, error)
	UpdateProject(ctx context.Context, id string, patch entity.ProjectPatch) (store.Result, error)
	DeleteProject(ctx context.Context, id string) (store.Result, error)

	Board(ctx context.Context) entity.BoardState
	SetCurrentView(ctx context.Context, view entity.ViewMode) (entity.BoardState, error)
	SetSelectedProject(ctx context.Context, id string) (entity.BoardState, error)
	SetSearchQuery(ctx context.Context, query string) (entity.BoardState, error)
}

type Options struct {
	CacheTTL            time.Duration
	SeedDefaultProjects bool
}

type BoardUseCaseImpl struct {
	store     *store.Store
	repo      SnapshotRepository
	cacheRepo CacheRepository
	metrics   *metrics.Collector
	opts      Options

	// persistMu keeps snapshot saves in mutation order.
	persistMu sync.Mutex
}

func NewBoardUseCase(s *store.Store, repo SnapshotRepository, cacheRepo CacheRepository, m *metrics.Collector, opts Options) *BoardUseCaseImpl {
	if m == nil {
		m = metrics.New(nil)
	}
	if opts.CacheTTL <= 0 {
		opts.CacheTTL = defaultCacheTTL
	}
	return &BoardUseCaseImpl{
		store:     s,
		repo:      repo,
		cacheRepo: cacheRepo,
		metrics:   m,
		opts:      opts,
	}
}

// Load заполняет стор из кэша, затем из репозитория, иначе создаёт доску по умолчанию
func (uc *BoardUseCaseImpl) Load(ctx context.Context) error {
	logger.Log.Info("Loading board")

	snap, found, err := uc.cacheRepo.GetSnapshot(ctx)
	if err != nil {
		logger.Log.WithError(err).Warn("Failed to read board from cache")
	}
	if found {
		logger.Log.Info("Board retrieved from cache")
		uc.apply(snap)
		return nil
	}

	snap, found, err = uc.repo.Load(ctx)
	if err != nil {
		logger.Log.WithError(err).Error("Failed to load board from repository")
		return fmt.Errorf("load board: %w", err)
	}
	if found {
		uc.apply(snap)
		if err := uc.cacheRepo.SetSnapshot(ctx, uc.store.Snapshot(), uc.opts.CacheTTL); err != nil {
			logger.Log.WithError(err).Error("Failed to set board in cache")
		}
		logger.Log.WithFields(logrus.Fields{
			"tasks":    len(snap.Tasks),
			"projects": len(snap.Projects),
		}).Info("Board loaded from repository")
		return nil
	}

	if !uc.opts.SeedDefaultProjects {
		logger.Log.Info("No saved board, starting empty")
		uc.metrics.SetSizes(0, len(uc.store.Projects()))
		return nil
	}

	uc.apply(entity.Snapshot{
		Projects:    store.DefaultProjects(security.NewID),
		CurrentView: entity.ViewToday,
	})
	if err := uc.persist(ctx); err != nil {
		return err
	}
	logger.Log.Info("Default board created")
	return nil
}

func (uc *BoardUseCaseImpl) apply(snap entity.Snapshot) {
	uc.store.Replace(snap)
	uc.store.RecountTasks()
	uc.metrics.SetSizes(len(uc.store.Tasks()), len(uc.store.Projects()))
}

// persist сохраняет текущий снимок и сбрасывает кэш
func (uc *BoardUseCaseImpl) persist(ctx context.Context) error {
	uc.persistMu.Lock()
	defer uc.persistMu.Unlock()

	snap := uc.store.Snapshot()
	uc.metrics.SetSizes(len(snap.Tasks), len(snap.Projects))

	if err := uc.repo.Save(ctx, snap); err != nil {
		uc.metrics.Persisted.WithLabelValues("error").Inc()
		logger.Log.WithFields(logrus.Fields{
			"tasks":    len(snap.Tasks),
			"projects": len(snap.Projects),
		}).WithError(err).Error("Failed to save board")
		return fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	uc.metrics.Persisted.WithLabelValues("ok").Inc()

	if err := uc.cacheRepo.Invalidate(ctx); err != nil {
		logger.Log.WithError(err).Error("Failed to invalidate cache")
	}
	return nil
}

// mutate записывает метрику, логирует результат и сохраняет доску после успешной операции
func (uc *BoardUseCaseImpl) mutate(ctx context.Context, op string, fields logrus.Fields, fn func() store.Result) (store.Result, error) {
	res := fn()
	outcome := outcomeOf(res)
	uc.metrics.Observe(op, outcome)

	entry := logger.Log.WithFields(fields).WithField("op", op)
	if !res.Success {
		entry.WithFields(logrus.Fields{
			"outcome": outcome,
			"reason":  res.Error,
		}).Warn("Operation rejected")
		return res, nil
	}

	if err := uc.persist(ctx); err != nil {
		return res, err
	}
	if res.ID != "" {
		entry = entry.WithField("id", res.ID)
	}
	entry.Info("Operation applied")
	return res, nil
}

func outcomeOf(res store.Result) string {
	err := res.Err()
	switch {
	case err == nil:
		return metrics.OutcomeSuccess
	case errors.Is(err, store.ErrValidation):
		return metrics.OutcomeValidation
	case errors.Is(err, store.ErrNotFound):
		return metrics.OutcomeNotFound
	case errors.Is(err, store.ErrRateLimited):
		return metrics.OutcomeRateLimited
	default:
		return metrics.OutcomeInternal
	}
}

func (uc *BoardUseCaseImpl) Tasks(_ context.Context) []entity.Task {
	return uc.store.Tasks()
}

func (uc *BoardUseCaseImpl) FilteredTasks(_ context.Context) []entity.Task {
	return uc.store.FilteredTasks()
}

func (uc *BoardUseCaseImpl) Task(_ context.Context, id string) (entity.Task, error) {
	t, ok := uc.store.Task(id)
	if !ok {
		return entity.Task{}, ErrTaskNotFound
	}
	return t, nil
}

func (uc *BoardUseCaseImpl) AddTask(ctx context.Context, in entity.TaskInput) (store.Result, error) {
	return uc.mutate(ctx, "add_task", logrus.Fields{"project_id": in.ProjectID}, func() store.Result {
		return uc.store.AddTask(in)
	})
}

func (uc *BoardUseCaseImpl) UpdateTask(ctx context.Context, id string, patch entity.TaskPatch) (store.Result, error) {
	return uc.mutate(ctx, "update_task", logrus.Fields{"task_id": id}, func() store.Result {
		return uc.store.UpdateTask(id, patch)
	})
}

func (uc *BoardUseCaseImpl) DeleteTask(ctx context.Context, id string) (store.Result, error) {
	return uc.mutate(ctx, "delete_task", logrus.Fields{"task_id": id}, func() store.Result {
		return uc.store.DeleteTask(id)
	})
}

func (uc *BoardUseCaseImpl) ToggleTask(ctx context.Context, id string) (bool, error) {
	ok := uc.store.ToggleTask(id)
	if !ok {
		uc.metrics.Observe("toggle_task", metrics.OutcomeNotFound)
		logger.Log.WithField("task_id", id).Warn("Toggle ignored, task not found")
		return false, nil
	}
	uc.metrics.Observe("toggle_task", metrics.OutcomeSuccess)
	if err := uc.persist(ctx); err != nil {
		return true, err
	}
	return true, nil
}

func (uc *BoardUseCaseImpl) Projects(_ context.Context) []entity.Project {
	return uc.store.Projects()
}

func (uc *BoardUseCaseImpl) Project(_ context.Context, id string) (entity.Project, error) {
	p, ok := uc.store.Project(id)
	if !ok {
		return entity.Project{}, ErrProjectNotFound
	}
	return p, nil
}

func (uc *BoardUseCaseImpl) AddProject(ctx context.Context, in entity.ProjectInput) (store.Result, error) {
	return uc.mutate(ctx, "add_project", logrus.Fields{"name": in.Name}, func() store.Result {
		return uc.store.AddProject(in)
	})
}

func (uc *BoardUseCaseImpl) UpdateProject(ctx context.Context, id string, patch entity.ProjectPatch) (store.Result, error) {
	return uc.mutate(ctx, "update_project", logrus.Fields{"project_id": id}, func() store.Result {
		return uc.store.UpdateProject(id, patch)
	})
}

func (uc *BoardUseCaseImpl) DeleteProject(ctx context.Context, id string) (store.Result, error) {
	return uc.mutate(ctx, "delete_project", logrus.Fields{"project_id": id}, func() store.Result {
		return uc.store.DeleteProject(id)
	})
}

func (uc *BoardUseCaseImpl) Board(_ context.Context) entity.BoardState {
	return entity.BoardState{
		CurrentView:     uc.store.CurrentView(),
		SelectedProject: uc.store.SelectedProject(),
		SearchQuery:     uc.store.SearchQuery(),
	}
}

func (uc *BoardUseCaseImpl) SetCurrentView(ctx context.Context, view entity.ViewMode) (entity.BoardState, error) {
	uc.store.SetCurrentView(view)
	return uc.Board(ctx), uc.persist(ctx)
}

func (uc *BoardUseCaseImpl) SetSelectedProject(ctx context.Context, id string) (entity.BoardState, error) {
	uc.store.SetSelectedProject(id)
	return uc.Board(ctx), uc.persist(ctx)
}

func (uc *BoardUseCaseImpl) SetSearchQuery(ctx context.Context, query string) (entity.BoardState, error) {
	uc.store.SetSearchQuery(query)
	return uc.Board(ctx), uc.persist(ctx)
}
