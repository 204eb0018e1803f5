package colony

import (
	"errors"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	metricsNamespace = "aco"
	metricsSubsystem = "colony"

	outcomeValid   = "valid"
	outcomeInvalid = "invalid"
)

// Metrics holds the Prometheus collectors a Colony reports to.
// A nil *Metrics is valid and records nothing.
//
// Thread Safety: Safe for concurrent use.
type Metrics struct {
	antsReleased     prometheus.Counter
	solutions        *prometheus.CounterVec
	pheromoneUpdates prometheus.Counter
	bestObjective    prometheus.Gauge
	runDuration      prometheus.Histogram
}

// NewMetrics creates the colony collectors and registers them with reg.
// A nil reg means prometheus.DefaultRegisterer.
//
// Collectors:
//   - aco_colony_ants_released_total
//   - aco_colony_solutions_total{outcome="valid|invalid"}
//   - aco_colony_pheromone_updates_total
//   - aco_colony_best_objective
//   - aco_colony_run_duration_seconds
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	m := &Metrics{
		antsReleased: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: metricsSubsystem,
			Name:      "ants_released_total",
			Help:      "Total number of ant traversals.",
		}),
		solutions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: metricsSubsystem,
			Name:      "solutions_total",
			Help:      "Finished traversals by validity.",
		}, []string{"outcome"}),
		pheromoneUpdates: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: metricsSubsystem,
			Name:      "pheromone_updates_total",
			Help:      "Total number of reinforce-and-evaporate cycles.",
		}),
		bestObjective: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: metricsNamespace,
			Subsystem: metricsSubsystem,
			Name:      "best_objective",
			Help:      "Objective of the best solution of the latest run.",
		}),
		runDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Subsystem: metricsSubsystem,
			Name:      "run_duration_seconds",
			Help:      "Wall time of Colony.Run.",
			Buckets:   prometheus.ExponentialBuckets(0.001, 4, 10),
		}),
	}

	var errs []error
	for _, c := range []prometheus.Collector{
		m.antsReleased, m.solutions, m.pheromoneUpdates, m.bestObjective, m.runDuration,
	} {
		if err := reg.Register(c); err != nil {
			errs = append(errs, err)
		}
	}
	if err := errors.Join(errs...); err != nil {
		return nil, fmt.Errorf("NewMetrics: %w", err)
	}

	return m, nil
}

func (m *Metrics) antReleased() {
	if m == nil {
		return
	}
	m.antsReleased.Inc()
}

func (m *Metrics) solution(valid bool) {
	if m == nil {
		return
	}
	outcome := outcomeInvalid
	if valid {
		outcome = outcomeValid
	}
	m.solutions.WithLabelValues(outcome).Inc()
}

func (m *Metrics) pheromoneUpdated() {
	if m == nil {
		return
	}
	m.pheromoneUpdates.Inc()
}

func (m *Metrics) best(v float64) {
	if m == nil {
		return
	}
	m.bestObjective.Set(v)
}

func (m *Metrics) observeRun(seconds float64) {
	if m == nil {
		return
	}
	m.runDuration.Observe(seconds)
}
