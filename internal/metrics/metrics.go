package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "taskboard"

// Outcome labels for Operations.
const (
	OutcomeSuccess     = "success"
	OutcomeValidation  = "validation_error"
	OutcomeNotFound    = "not_found"
	OutcomeRateLimited = "rate_limited"
	OutcomeInternal    = "internal_error"
)

type Collector struct {
	Operations *prometheus.CounterVec
	Tasks      prometheus.Gauge
	Projects   prometheus.Gauge
	Persisted  *prometheus.CounterVec
}

// New creates the collectors and registers them with reg.
func New(reg prometheus.Registerer) *Collector {
	c := &Collector{
		Operations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "operations_total",
			Help:      "Board operations by name and outcome.",
		}, []string{"op", "outcome"}),
		Tasks: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "tasks",
			Help:      "Tasks currently on the board.",
		}),
		Projects: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "projects",
			Help:      "Projects currently on the board.",
		}),
		Persisted: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "snapshot_saves_total",
			Help:      "Snapshot saves by result.",
		}, []string{"result"}),
	}
	if reg != nil {
		reg.MustRegister(c.Operations, c.Tasks, c.Projects, c.Persisted)
	}
	return c
}

func (c *Collector) Observe(op, outcome string) {
	c.Operations.WithLabelValues(op, outcome).Inc()
}

func (c *Collector) SetSizes(tasks, projects int) {
	c.Tasks.Set(float64(tasks))
	c.Projects.Set(float64(projects))
}
