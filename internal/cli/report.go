package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/katalvlaran/pancake/internal/config"
	"github.com/katalvlaran/pancake/pancake"
	"github.com/katalvlaran/pancake/search"
)

// report is the serialisable result of one solve run.
type report struct {
	RunID     string `json:"run_id" toml:"run_id"`
	Strategy  string `json:"strategy" toml:"strategy"`
	Heuristic string `json:"heuristic" toml:"heuristic"`
	Initial   []int  `json:"initial" toml:"initial"`
	InitialH  int    `json:"initial_h" toml:"initial_h"`
	Status    string `json:"status" toml:"status"`
	Solved    bool   `json:"solved" toml:"solved"`
	Flips     []int  `json:"flips" toml:"flips"`
	Total     int    `json:"total_flips" toml:"total_flips"`
	Baseline  int    `json:"baseline_flips" toml:"baseline_flips"`
	Stats     stats  `json:"stats" toml:"stats"`
	Steps     []step `json:"steps" toml:"steps"`
}

type step struct {
	Index int   `json:"index" toml:"index"`
	Flip  int   `json:"flip" toml:"flip"`
	Stack []int `json:"stack" toml:"stack"`
	G     int   `json:"g" toml:"g"`
	H     int   `json:"h" toml:"h"`
}

type stats struct {
	Expanded    int `json:"expanded" toml:"expanded"`
	Generated   int `json:"generated" toml:"generated"`
	Replaced    int `json:"replaced" toml:"replaced"`
	Dropped     int `json:"dropped" toml:"dropped"`
	MaxFrontier int `json:"max_frontier" toml:"max_frontier"`
}

// newReport flattens an outcome; baseline is the naive flip count.
func newReport(runID, heuristic string, initial pancake.Stack, out *search.Outcome, baseline int) *report {
	r := &report{
		RunID:     runID,
		Strategy:  out.Strategy.String(),
		Heuristic: heuristic,
		Initial:   initial.Clone(),
		InitialH:  pancake.NewState(initial, config.Heuristic(heuristic)).H(),
		Status:    out.Status.String(),
		Solved:    out.Solved(),
		Flips:     []int{},
		Total:     out.Length(),
		Baseline:  baseline,
		Stats: stats{
			Expanded:    out.Expanded,
			Generated:   out.Generated,
			Replaced:    out.Replaced,
			Dropped:     out.Dropped,
			MaxFrontier: out.MaxFrontier,
		},
		Steps: []step{},
	}
	if !out.Solved() {
		return r
	}
	r.Flips = out.Flips()
	for i, st := range out.Path() {
		r.Steps = append(r.Steps, step{
			Index: i,
			Flip:  st.Flip(),
			Stack: st.Stack(),
			G:     st.G(),
			H:     st.H(),
		})
	}

	return r
}

// writeReport encodes r in the requested format.
func writeReport(w io.Writer, r *report, format string, draw bool) error {
	switch strings.ToLower(format) {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(r)
	case "toml":
		return toml.NewEncoder(w).Encode(r)
	case "text":
		writeText(newPainter(w), r, draw)
		return nil
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}

// unsolvedMessage explains a report without a solution. A search that is
// still running was cut short by the expansion limit; only a failed one
// exhausted its frontier.
func unsolvedMessage(status string) string {
	switch status {
	case search.Failed.String():
		return "No solution found."
	case search.Running.String():
		return "Search stopped: expansion limit reached."
	default:
		return "Search ended without a solution (" + status + ")."
	}
}

// writeText prints the step-by-step solution for humans. Heuristic values
// are shown only for A*, the one strategy that orders by them.
func writeText(p *painter, r *report, draw bool) {
	showH := r.Strategy == search.AStar.String()

	p.heading("Initial state:")
	if draw {
		p.drawStack(r.Initial)
	}
	p.field("Stack", fmt.Sprint(r.Initial))
	if showH {
		p.field("Heuristic value (forward cost)", r.InitialH)
	}

	if !r.Solved {
		fmt.Fprintln(p.w)
		fmt.Fprintln(p.w, p.failure.Render(unsolvedMessage(r.Status)))
		p.field("States expanded", r.Stats.Expanded)
		return
	}

	fmt.Fprintln(p.w)
	fmt.Fprintln(p.w, p.success.Render("Solution found!"))
	for _, s := range r.Steps {
		fmt.Fprintln(p.w)
		p.heading("Step %d:", s.Index)
		if draw {
			p.drawStack(s.Stack)
		}
		p.field("Stack", fmt.Sprint(s.Stack))
		if s.Index > 0 {
			p.field("Flip", s.Flip)
		}
		p.field("Flips performed (backward cost)", s.G)
		if showH {
			p.field("Heuristic value (forward cost)", s.H)
		}
	}
	fmt.Fprintln(p.w)
	p.field("Total number of flips", r.Total)
	p.field("Naive baseline flips", r.Baseline)
}
