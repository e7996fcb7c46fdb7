// Package search defines strategies, options, outcomes and sentinel errors
// for best-first search over pancake stacks.
package search

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/pancake/pancake"
)

// Sentinel errors for search execution.
var (
	// ErrUnknownStrategy is returned for a Strategy value or name that is not recognised.
	ErrUnknownStrategy = errors.New("search: unknown strategy")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("search: invalid option supplied")

	// ErrExpansionLimit is returned when WithMaxExpansions is exceeded before
	// the search terminates. The partial Outcome is still returned.
	ErrExpansionLimit = errors.New("search: expansion limit reached")

	// ErrInternal marks a broken driver invariant, such as popping an empty
	// frontier. It never results from caller input.
	ErrInternal = errors.New("search: internal invariant violated")
)

// Strategy selects the priority function used to order the frontier.
type Strategy int

const (
	// UniformCost orders the frontier by g, the flips taken so far.
	UniformCost Strategy = iota

	// AStar orders the frontier by f = g + h.
	AStar
)

// String returns the canonical short name of the strategy.
func (s Strategy) String() string {
	switch s {
	case UniformCost:
		return "ucs"
	case AStar:
		return "astar"
	default:
		return fmt.Sprintf("Strategy(%d)", int(s))
	}
}

// ParseStrategy maps a user-facing name to a Strategy.
// Accepted (case-insensitive): "ucs", "u", "uniform", "uniform-cost",
// "astar", "a", "a*".
func ParseStrategy(name string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "ucs", "u", "uniform", "uniform-cost":
		return UniformCost, nil
	case "astar", "a", "a*":
		return AStar, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
	}
}

func (s Strategy) valid() bool { return s == UniformCost || s == AStar }

// priority returns P(st) for the strategy.
func (s Strategy) priority(st *pancake.State) int {
	if s == AStar {
		return st.F()
	}

	return st.G()
}

// Status is the driver state: Running until a terminal Succeeded or Failed.
type Status int

const (
	// Running means the frontier may still hold work.
	Running Status = iota
	// Succeeded means a goal state was popped.
	Succeeded
	// Failed means the frontier was exhausted without reaching the goal.
	Failed
)

// String returns a lower-case status name.
func (s Status) String() string {
	switch s {
	case Running:
		return "running"
	case Succeeded:
		return "succeeded"
	case Failed:
		return "failed"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// ReplacePolicy decides what happens when a successor's stack is already
// waiting in the frontier.
type ReplacePolicy int

const (
	// ReplaceIfBetter swaps the frontier entry only when the new path is
	// strictly shorter (lower g).
	ReplaceIfBetter ReplacePolicy = iota

	// ReplaceAlways swaps the entry unconditionally: the last successor
	// generated for a stack wins, even when its path is longer.
	ReplaceAlways
)

// String returns the config name of the policy.
func (p ReplacePolicy) String() string {
	switch p {
	case ReplaceIfBetter:
		return "better"
	case ReplaceAlways:
		return "always"
	default:
		return fmt.Sprintf("ReplacePolicy(%d)", int(p))
	}
}

// ParseReplacePolicy maps "better" or "always" to a ReplacePolicy.
func ParseReplacePolicy(name string) (ReplacePolicy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "better", "if-better":
		return ReplaceIfBetter, nil
	case "always", "last-write":
		return ReplaceAlways, nil
	default:
		return 0, fmt.Errorf("%w: unknown replace policy %q", ErrOptionViolation, name)
	}
}

// Option configures search behavior via functional arguments.
// An invalid Option is recorded and surfaced as ErrOptionViolation when the
// search starts.
type Option func(*Options)

// Options holds parameters and callbacks for a search run.
type Options struct {
	// Ctx allows cancellation and deadlines; checked once per expansion.
	Ctx context.Context

	// Heuristic computes h for every state. Only AStar's ordering uses it,
	// but h is recorded on states for both strategies.
	Heuristic pancake.HeuristicFunc

	// Replace decides whether a frontier entry is superseded by a new path.
	Replace ReplacePolicy

	// MaxExpansions, if > 0, stops the search with ErrExpansionLimit after
	// that many expansions. 0 disables the limit.
	MaxExpansions int

	// OnPush is called whenever a state enters the frontier, either fresh or
	// replacing an older entry for the same stack.
	OnPush func(st *pancake.State, priority int, replaced bool)

	// OnPop is called for every state removed from the frontier, before the goal test.
	OnPop func(st *pancake.State)

	// OnExpand is called after a state is marked visited, with its successor
	// count. Returning an error aborts the search with that error.
	OnExpand func(st *pancake.State, successors int) error

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with:
//   - context.Background()
//   - the GAP heuristic (pancake.Gap)
//   - ReplaceIfBetter
//   - no expansion limit
//   - no-op hooks
func DefaultOptions() Options {
	return Options{
		Ctx:           context.Background(),
		Heuristic:     pancake.Gap,
		Replace:       ReplaceIfBetter,
		MaxExpansions: 0,
		OnPush:        func(*pancake.State, int, bool) {},
		OnPop:         func(*pancake.State) {},
		OnExpand:      func(*pancake.State, int) error { return nil },
	}
}

// WithContext sets a context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithHeuristic selects the heuristic; nil keeps the current one.
func WithHeuristic(h pancake.HeuristicFunc) Option {
	return func(o *Options) {
		if h != nil {
			o.Heuristic = h
		}
	}
}

// WithReplacePolicy selects how frontier collisions are resolved.
func WithReplacePolicy(p ReplacePolicy) Option {
	return func(o *Options) {
		if p != ReplaceIfBetter && p != ReplaceAlways {
			o.err = fmt.Errorf("%w: unknown replace policy %d", ErrOptionViolation, int(p))
			return
		}
		o.Replace = p
	}
}

// WithMaxExpansions caps the number of expansions.
//
//	n > 0: stop after n expansions with ErrExpansionLimit
//	n == 0: no limit
//	n < 0: invalid option → ErrOptionViolation
func WithMaxExpansions(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxExpansions cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxExpansions = n
	}
}

// Hooks registered more than once run in registration order.

// WithOnPush registers a callback for every frontier insertion.
func WithOnPush(fn func(st *pancake.State, priority int, replaced bool)) Option {
	return func(o *Options) {
		if fn == nil {
			return
		}
		prev := o.OnPush
		o.OnPush = func(st *pancake.State, priority int, replaced bool) {
			prev(st, priority, replaced)
			fn(st, priority, replaced)
		}
	}
}

// WithOnPop registers a callback for every frontier removal.
func WithOnPop(fn func(st *pancake.State)) Option {
	return func(o *Options) {
		if fn == nil {
			return
		}
		prev := o.OnPop
		o.OnPop = func(st *pancake.State) {
			prev(st)
			fn(st)
		}
	}
}

// WithOnExpand registers a callback run on each expansion; an error aborts
// the search and skips any callbacks registered after fn.
func WithOnExpand(fn func(st *pancake.State, successors int) error) Option {
	return func(o *Options) {
		if fn == nil {
			return
		}
		prev := o.OnExpand
		o.OnExpand = func(st *pancake.State, successors int) error {
			if err := prev(st, successors); err != nil {
				return err
			}
			return fn(st, successors)
		}
	}
}

// Outcome reports how a search ended and what it cost.
type Outcome struct {
	Strategy Strategy
	Status   Status

	// Goal is the terminal state when Status == Succeeded; nil otherwise.
	// The full solution is recovered by following Parent links.
	Goal *pancake.State

	Expanded    int // states popped, goal-tested and expanded
	Generated   int // successors produced
	Replaced    int // frontier entries superseded by a new path
	Dropped     int // successors discarded (visited, or not better than the frontier entry)
	MaxFrontier int // largest live frontier size observed
}

// Solved reports whether a goal state was found.
func (o *Outcome) Solved() bool { return o != nil && o.Status == Succeeded && o.Goal != nil }

// Path returns the states from the initial stack to the goal, or nil if unsolved.
func (o *Outcome) Path() []*pancake.State {
	if !o.Solved() {
		return nil
	}

	return o.Goal.Path()
}

// Flips returns the flip points of the solution, or nil if unsolved.
func (o *Outcome) Flips() []int {
	if !o.Solved() {
		return nil
	}

	return o.Goal.Flips()
}

// Length returns the number of flips in the solution, or -1 if unsolved.
func (o *Outcome) Length() int {
	if !o.Solved() {
		return -1
	}

	return o.Goal.G()
}
