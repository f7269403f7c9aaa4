package scheduler

import (
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"

	"github.com/KarpovAlexandrGo/taskboard/internal/security"
	"github.com/KarpovAlexandrGo/taskboard/pkg/logger"
)

const DefaultSweepSpec = "@every 5m"

// Scheduler wraps cron-based background jobs.
type Scheduler struct {
	cron *cron.Cron
}

func New(loc *time.Location) *Scheduler {
	if loc == nil {
		loc = time.Local
	}
	return &Scheduler{
		cron: cron.New(cron.WithLocation(loc)),
	}
}

// Schedule registers job under a standard cron spec or an @every/@hourly descriptor.
func (s *Scheduler) Schedule(spec string, job func()) (cron.EntryID, error) {
	id, err := s.cron.AddFunc(spec, job)
	if err != nil {
		return 0, fmt.Errorf("invalid schedule %q: %w", spec, err)
	}
	return id, nil
}

// ScheduleLimiterSweep periodically drops rate limiter keys that went idle.
func (s *Scheduler) ScheduleLimiterSweep(spec string, limiter *security.RateLimiter) (cron.EntryID, error) {
	if spec == "" {
		spec = DefaultSweepSpec
	}
	return s.Schedule(spec, func() {
		SweepLimiter(limiter)
	})
}

func SweepLimiter(limiter *security.RateLimiter) int {
	removed := limiter.Sweep()
	logger.Log.WithFields(logrus.Fields{
		"removed": removed,
		"tracked": limiter.Keys(),
	}).Debug("Rate limiter swept")
	return removed
}

func (s *Scheduler) Entries() int {
	return len(s.cron.Entries())
}

func (s *Scheduler) Start() {
	s.cron.Start()
}

func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
}
