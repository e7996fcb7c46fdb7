package search

import (
	"fmt"

	"github.com/emirpasic/gods/sets/hashset"

	"github.com/katalvlaran/pancake/frontier"
	"github.com/katalvlaran/pancake/pancake"
)

// Search runs strategy from initial until it succeeds, fails, or errors.
// The Outcome is returned even alongside an error so partial statistics
// stay available.
func Search(initial pancake.Stack, strategy Strategy, opts ...Option) (*Outcome, error) {
	s, err := NewStepper(initial, strategy, opts...)
	if err != nil {
		return nil, err
	}

	return s.Run()
}

// UniformCostSearch is Search with UniformCost.
func UniformCostSearch(initial pancake.Stack, opts ...Option) (*Outcome, error) {
	return Search(initial, UniformCost, opts...)
}

// AStarSearch is Search with AStar.
func AStarSearch(initial pancake.Stack, opts ...Option) (*Outcome, error) {
	return Search(initial, AStar, opts...)
}

// Stepper holds the mutable state of one search run.
type Stepper struct {
	strategy Strategy
	opts     Options
	open     *frontier.Frontier[string, *pancake.State]
	visited  *hashset.Set
	out      *Outcome
}

// NewStepper prepares a search from initial without expanding anything.
func NewStepper(initial pancake.Stack, strategy Strategy, opts ...Option) (*Stepper, error) {
	if !strategy.valid() {
		return nil, fmt.Errorf("%w: %v", ErrUnknownStrategy, strategy)
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	s := &Stepper{
		strategy: strategy,
		opts:     o,
		open:     frontier.New[string, *pancake.State](),
		visited:  hashset.New(),
		out:      &Outcome{Strategy: strategy, Status: Running},
	}
	root := pancake.NewState(initial, o.Heuristic)
	s.push(root, false)

	return s, nil
}

// Run steps until a terminal status or an error.
func (s *Stepper) Run() (*Outcome, error) {
	for {
		status, err := s.Step()
		if err != nil {
			return s.out, err
		}
		if status != Running {
			return s.out, nil
		}
	}
}

// Step performs one iteration of the driver: pop, goal test, expand.
// Once terminal, Step keeps returning the terminal status.
func (s *Stepper) Step() (Status, error) {
	if s.out.Status != Running {
		return s.out.Status, nil
	}

	select {
	case <-s.opts.Ctx.Done():
		return s.out.Status, s.opts.Ctx.Err()
	default:
	}

	if s.open.IsEmpty() {
		s.out.Status = Failed
		return Failed, nil
	}
	if s.opts.MaxExpansions > 0 && s.out.Expanded >= s.opts.MaxExpansions {
		return s.out.Status, fmt.Errorf("%w: %d expansions", ErrExpansionLimit, s.out.Expanded)
	}

	item, err := s.open.PopMin()
	if err != nil {
		return s.out.Status, fmt.Errorf("%w: %v", ErrInternal, err)
	}
	cur := item.Value
	s.opts.OnPop(cur)

	if cur.IsGoal() {
		s.out.Status = Succeeded
		s.out.Goal = cur
		return Succeeded, nil
	}

	s.visited.Add(cur.Key())
	s.out.Expanded++

	children := cur.Successors()
	s.out.Generated += len(children)
	if err := s.opts.OnExpand(cur, len(children)); err != nil {
		return s.out.Status, fmt.Errorf("search: OnExpand error at %v: %w", cur.Stack(), err)
	}

	for _, child := range children {
		s.relax(child)
	}

	return Running, nil
}

// relax applies step 5 of the driver to one successor.
func (s *Stepper) relax(child *pancake.State) {
	key := child.Key()
	if s.visited.Contains(key) {
		s.out.Dropped++
		return
	}

	old, _, queued := s.open.Get(key)
	if !queued {
		s.push(child, false)
		return
	}
	if s.opts.Replace == ReplaceIfBetter && child.G() >= old.G() {
		s.out.Dropped++
		return
	}
	s.push(child, true)
	s.out.Replaced++
}

func (s *Stepper) push(st *pancake.State, replace bool) {
	p := s.strategy.priority(st)
	s.open.Push(st.Key(), st, p)
	if n := s.open.Len(); n > s.out.MaxFrontier {
		s.out.MaxFrontier = n
	}
	s.opts.OnPush(st, p, replace)
}

// Status returns the current driver status.
func (s *Stepper) Status() Status { return s.out.Status }

// Outcome returns the live outcome; it is final once Status is terminal.
func (s *Stepper) Outcome() *Outcome { return s.out }

// FrontierLen returns the number of stacks waiting in the frontier.
func (s *Stepper) FrontierLen() int { return s.open.Len() }

// VisitedLen returns the number of stacks already expanded.
func (s *Stepper) VisitedLen() int { return s.visited.Size() }

// InFrontier reports whether stack is waiting in the frontier.
func (s *Stepper) InFrontier(stack pancake.Stack) bool { return s.open.Contains(pancake.Key(stack)) }

// Visited reports whether stack has been expanded.
func (s *Stepper) Visited(stack pancake.Stack) bool { return s.visited.Contains(pancake.Key(stack)) }
