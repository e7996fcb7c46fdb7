package telemetry

import (
	"fmt"
	"io"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"

	"github.com/katalvlaran/pancake/pancake"
	"github.com/katalvlaran/pancake/search"
)

const (
	namespace = "pancake"
	subsystem = "search"
)

// Collector holds the search metrics.
type Collector struct {
	gatherer    prometheus.Gatherer
	expanded    *prometheus.CounterVec
	pushed      *prometheus.CounterVec
	outcomes    *prometheus.CounterVec
	flips       *prometheus.HistogramVec
	maxFrontier *prometheus.GaugeVec
}

// NewCollector creates the metrics and registers them on reg.
func NewCollector(reg *prometheus.Registry) (*Collector, error) {
	c := &Collector{
		gatherer: reg,
		expanded: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "expanded_total",
			Help:      "States popped from the frontier and expanded.",
		}, []string{"strategy"}),
		pushed: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "pushed_total",
			Help:      "Frontier insertions, split into fresh entries and replacements.",
		}, []string{"strategy", "kind"}),
		outcomes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "outcomes_total",
			Help:      "Finished searches by terminal status.",
		}, []string{"strategy", "status"}),
		flips: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "solution_flips",
			Help:      "Number of flips in returned solutions.",
			Buckets:   prometheus.LinearBuckets(0, 2, 12),
		}, []string{"strategy"}),
		maxFrontier: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "max_frontier",
			Help:      "Largest live frontier size seen by the most recent search.",
		}, []string{"strategy"}),
	}

	for _, m := range []prometheus.Collector{c.expanded, c.pushed, c.outcomes, c.flips, c.maxFrontier} {
		if err := reg.Register(m); err != nil {
			return nil, fmt.Errorf("telemetry: register metric: %w", err)
		}
	}

	return c, nil
}

// Options returns search hooks that feed the collector for strategy.
func (c *Collector) Options(strategy search.Strategy) []search.Option {
	label := strategy.String()
	expanded := c.expanded.WithLabelValues(label)
	fresh := c.pushed.WithLabelValues(label, "fresh")
	replaced := c.pushed.WithLabelValues(label, "replace")

	return []search.Option{
		search.WithOnPush(func(_ *pancake.State, _ int, r bool) {
			if r {
				replaced.Inc()
				return
			}
			fresh.Inc()
		}),
		search.WithOnExpand(func(*pancake.State, int) error {
			expanded.Inc()
			return nil
		}),
	}
}

// Observe records a finished search. A nil outcome is ignored.
func (c *Collector) Observe(out *search.Outcome) {
	if out == nil {
		return
	}
	label := out.Strategy.String()
	c.outcomes.WithLabelValues(label, out.Status.String()).Inc()
	c.maxFrontier.WithLabelValues(label).Set(float64(out.MaxFrontier))
	if out.Solved() {
		c.flips.WithLabelValues(label).Observe(float64(out.Length()))
	}
}

// WriteText writes every gathered metric family in the Prometheus text
// exposition format, families sorted by name.
func (c *Collector) WriteText(w io.Writer) error {
	families, err := c.gatherer.Gather()
	if err != nil {
		return fmt.Errorf("telemetry: gather: %w", err)
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return fmt.Errorf("telemetry: write %s: %w", mf.GetName(), err)
		}
	}

	return nil
}
