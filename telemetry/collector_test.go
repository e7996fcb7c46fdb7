package telemetry_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pancake/pancake"
	"github.com/katalvlaran/pancake/search"
	"github.com/katalvlaran/pancake/telemetry"
)

func TestCollector_CountsMatchOutcome(t *testing.T) {
	reg := prometheus.NewRegistry()
	c, err := telemetry.NewCollector(reg)
	require.NoError(t, err)

	out, err := search.UniformCostSearch(pancake.Stack{3, 1, 4, 2, 5}, c.Options(search.UniformCost)...)
	require.NoError(t, err)
	c.Observe(out)

	n, err := testutil.GatherAndCount(reg, "pancake_search_outcomes_total")
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	mfs, err := reg.Gather()
	require.NoError(t, err)
	values := map[string]float64{}
	for _, mf := range mfs {
		for _, m := range mf.GetMetric() {
			key := mf.GetName()
			for _, lp := range m.GetLabel() {
				if lp.GetName() == "kind" || lp.GetName() == "status" {
					key += "/" + lp.GetValue()
				}
			}
			switch {
			case m.GetCounter() != nil:
				values[key] = m.GetCounter().GetValue()
			case m.GetGauge() != nil:
				values[key] = m.GetGauge().GetValue()
			case m.GetHistogram() != nil:
				values[key] = m.GetHistogram().GetSampleSum()
			}
		}
	}

	assert.Equal(t, float64(out.Expanded), values["pancake_search_expanded_total"])
	assert.Equal(t, float64(out.Replaced), values["pancake_search_pushed_total/replace"])
	assert.Equal(t, float64(out.Generated-out.Replaced-out.Dropped+1), values["pancake_search_pushed_total/fresh"])
	assert.Equal(t, float64(1), values["pancake_search_outcomes_total/succeeded"])
	assert.Equal(t, float64(out.MaxFrontier), values["pancake_search_max_frontier"])
	assert.Equal(t, float64(out.Length()), values["pancake_search_solution_flips"])
}

func TestCollector_FailedRunHasNoSolutionSample(t *testing.T) {
	reg := prometheus.NewRegistry()
	c, err := telemetry.NewCollector(reg)
	require.NoError(t, err)

	out, err := search.AStarSearch(pancake.Stack{1, 1}, c.Options(search.AStar)...)
	require.NoError(t, err)
	require.Equal(t, search.Failed, out.Status)
	c.Observe(out)
	c.Observe(nil)

	var buf bytes.Buffer
	require.NoError(t, c.WriteText(&buf))
	text := buf.String()
	assert.Contains(t, text, `pancake_search_outcomes_total{status="failed",strategy="astar"} 1`)
	assert.Contains(t, text, `pancake_search_expanded_total{strategy="astar"} 1`)
	assert.NotContains(t, text, "pancake_search_solution_flips_count")
}

func TestCollector_DoubleRegistration(t *testing.T) {
	reg := prometheus.NewRegistry()
	_, err := telemetry.NewCollector(reg)
	require.NoError(t, err)
	_, err = telemetry.NewCollector(reg)
	assert.Error(t, err)
}

func TestCollector_WriteTextExposition(t *testing.T) {
	reg := prometheus.NewRegistry()
	c, err := telemetry.NewCollector(reg)
	require.NoError(t, err)

	for _, st := range []search.Strategy{search.AStar, search.UniformCost} {
		out, err := search.Search(pancake.Stack{1, 2, 3}, st, c.Options(st)...)
		require.NoError(t, err)
		c.Observe(out)
	}

	var buf bytes.Buffer
	require.NoError(t, c.WriteText(&buf))
	text := buf.String()

	assert.Contains(t, text, "# TYPE pancake_search_expanded_total counter")
	assert.Contains(t, text, "# TYPE pancake_search_max_frontier gauge")
	assert.Contains(t, text, "# TYPE pancake_search_solution_flips histogram")
	assert.Contains(t, text, "# HELP pancake_search_outcomes_total Finished searches by terminal status.")
	assert.Contains(t, text, `pancake_search_solution_flips_bucket{strategy="ucs",le="2"} 1`)
	assert.Contains(t, text, `pancake_search_solution_flips_bucket{strategy="astar",le="+Inf"} 1`)
	assert.Contains(t, text, `pancake_search_solution_flips_count{strategy="ucs"} 1`)
	assert.Contains(t, text, `pancake_search_solution_flips_sum{strategy="astar"} 1`)

	// Families come out sorted by name.
	expanded := strings.Index(text, "# TYPE pancake_search_expanded_total")
	outcomes := strings.Index(text, "# TYPE pancake_search_outcomes_total")
	pushed := strings.Index(text, "# TYPE pancake_search_pushed_total")
	assert.Less(t, expanded, outcomes)
	assert.Less(t, outcomes, pushed)
}
