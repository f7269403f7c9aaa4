package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"

	controller "github.com/KarpovAlexandrGo/taskboard/internal/controller/http"
	"github.com/KarpovAlexandrGo/taskboard/internal/metrics"
	"github.com/KarpovAlexandrGo/taskboard/internal/repo/memory"
	"github.com/KarpovAlexandrGo/taskboard/internal/repo/postgres"
	"github.com/KarpovAlexandrGo/taskboard/internal/repo/redis"
	"github.com/KarpovAlexandrGo/taskboard/internal/repo/sqlite"
	"github.com/KarpovAlexandrGo/taskboard/internal/scheduler"
	"github.com/KarpovAlexandrGo/taskboard/internal/security"
	"github.com/KarpovAlexandrGo/taskboard/internal/store"
	"github.com/KarpovAlexandrGo/taskboard/internal/usecase"
	"github.com/KarpovAlexandrGo/taskboard/pkg/logger"
)

type App struct {
	Server    *http.Server
	wg        sync.WaitGroup
	repo      usecase.SnapshotRepository
	cacheRepo usecase.CacheRepository
	scheduler *scheduler.Scheduler
	board     usecase.BoardUseCase
}

func NewApp(cfg Config) (*App, error) {
	logger.SetLevel(cfg.LogLevel)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	// Инициализация репозиториев
	repo, err := openRepository(ctx, cfg)
	if err != nil {
		return nil, err
	}
	cacheRepo := initCache(ctx, cfg)
	a := &App{
		repo:      repo,
		cacheRepo: cacheRepo,
	}

	limiter := security.NewRateLimiter(cfg.RateLimitMax, cfg.RateLimitWindow)
	boardStore := store.New(store.WithRateLimiter(limiter))

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	collector := metrics.New(registry)

	// Инициализация use case
	board := usecase.NewBoardUseCase(boardStore, repo, cacheRepo, collector, usecase.Options{
		CacheTTL:            cfg.CacheTTL,
		SeedDefaultProjects: cfg.SeedDefaultProjects,
	})
	if err := board.Load(ctx); err != nil {
		a.close()
		return nil, err
	}

	sched := scheduler.New(time.Local)
	if _, err := sched.ScheduleLimiterSweep(cfg.LimiterSweepSpec, limiter); err != nil {
		a.close()
		return nil, err
	}

	router := setupRouter(controller.NewBoardHandler(board), registry)

	server := &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	a.Server = server
	a.scheduler = sched
	a.board = board
	return a, nil
}

func openRepository(ctx context.Context, cfg Config) (usecase.SnapshotRepository, error) {
	logger.Log.WithField("driver", cfg.StorageDriver).Info("Opening storage")

	switch cfg.StorageDriver {
	case DriverPostgres:
		pool, err := InitDB(ctx, cfg.PostgresDSN)
		if err != nil {
			return nil, err
		}
		if err := postgres.Migrate(ctx, pool); err != nil {
			pool.Close()
			return nil, err
		}
		return postgres.NewSnapshotRepository(pool), nil
	case DriverSQLite:
		db, err := sqlite.NewDB(cfg.SQLitePath)
		if err != nil {
			return nil, err
		}
		return sqlite.NewSnapshotRepository(db), nil
	case DriverMemory:
		return memory.NewSnapshotRepository(), nil
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.StorageDriver)
	}
}

// InitDB открывает пул соединений с Postgres и проверяет подключение.
func InitDB(ctx context.Context, dsn string) (*pgxpool.Pool, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	dbPool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to create pgx pool: %w", err)
	}

	if err := dbPool.Ping(ctx); err != nil {
		dbPool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	logger.Log.Info("Connected to database successfully")
	return dbPool, nil
}

// initCache подключает Redis; без адреса или при недоступности кэш отключен.
func initCache(ctx context.Context, cfg Config) usecase.CacheRepository {
	if cfg.RedisAddr == "" {
		logger.Log.Info("Redis is not configured, cache disabled")
		return redis.NoopCache{}
	}

	cacheRepo := redis.NewCacheRepository(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := cacheRepo.Ping(pingCtx); err != nil {
		logger.Log.WithFields(logrus.Fields{
			"addr": cfg.RedisAddr,
		}).WithError(err).Warn("Redis is unavailable, cache disabled")
		_ = cacheRepo.Close()
		return redis.NoopCache{}
	}

	logger.Log.WithField("addr", cfg.RedisAddr).Info("Connected to Redis successfully")
	return cacheRepo
}

func setupRouter(h *controller.BoardHandler, gatherer prometheus.Gatherer) *chi.Mux {
	router := chi.NewRouter()

	router.Use(
		middleware.RequestID,
		middleware.Logger,
		middleware.Recoverer,
		middleware.Heartbeat("/health"),
		middleware.Timeout(60*time.Second),
	)

	router.Route("/api/v1", h.RegisterRoutes)
	router.Handle("/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))

	router.Get("/ping", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("pong"))
	})

	return router
}

func (a *App) close() {
	if c, ok := a.cacheRepo.(interface{ Close() error }); ok {
		if err := c.Close(); err != nil {
			logger.Log.WithError(err).Error("Failed to close cache")
		}
	}
	if err := a.repo.Close(); err != nil {
		logger.Log.WithError(err).Error("Failed to close storage")
	}
}

func (a *App) Run() error {
	defer a.close()

	a.scheduler.Start()
	defer a.scheduler.Stop()

	serverCtx, serverStopCtx := context.WithCancel(context.Background())
	defer serverStopCtx()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGHUP, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)
	defer signal.Stop(sig)

	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		select {
		case <-sig:
		case <-serverCtx.Done():
			return
		}
		logger.Log.Info("Shutdown signal received")

		shutdownCtx, cancel := context.WithTimeout(serverCtx, 30*time.Second)
		defer cancel()

		if err := a.Server.Shutdown(shutdownCtx); err != nil {
			if errors.Is(err, context.DeadlineExceeded) {
				logger.Log.Error("Graceful shutdown timed out")
			}
			logger.Log.WithError(err).Error("HTTP server shutdown failed")
		}
	}()

	logger.Log.Info("Starting server on " + a.Server.Addr)
	if err := a.Server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		serverStopCtx()
		a.wg.Wait()
		return fmt.Errorf("server failed: %w", err)
	}

	a.wg.Wait()
	logger.Log.Info("Server stopped gracefully")
	return nil
}
