package pancake

// State is one node of the flip graph: a stack plus its search bookkeeping.
//
// A State is immutable once built. Its heuristic value is computed at
// construction from the stack alone. Parent links always point toward the
// root, so following them from any state terminates.
type State struct {
	stack  Stack
	key    string
	parent *State
	flip   int // flip point that produced this state; 0 for the root
	g      int
	h      int
	hfn    HeuristicFunc
}

// NewState builds a root state (g=0, no parent) over a copy of s.
// A nil hfn selects Gap.
func NewState(s Stack, hfn HeuristicFunc) *State {
	if hfn == nil {
		hfn = Gap
	}
	st := s.Clone()

	return &State{
		stack: st,
		key:   Key(st),
		g:     0,
		h:     hfn(st),
		hfn:   hfn,
	}
}

// Stack returns a copy of the pancake arrangement.
func (s *State) Stack() Stack { return s.stack.Clone() }

// Len returns the number of pancakes.
func (s *State) Len() int { return len(s.stack) }

// Key returns the canonical identity of the state's stack.
func (s *State) Key() string { return s.key }

// Parent returns the state this one was expanded from, or nil for the root.
func (s *State) Parent() *State { return s.parent }

// Flip returns the flip point that produced this state, or 0 for the root.
func (s *State) Flip() int { return s.flip }

// G returns the number of flips from the root.
func (s *State) G() int { return s.g }

// H returns the heuristic estimate of flips left.
func (s *State) H() int { return s.h }

// F returns g + h.
func (s *State) F() int { return s.g + s.h }

// IsGoal reports whether the state's stack is strictly descending.
func (s *State) IsGoal() bool { return IsSorted(s.stack) }

// Child returns the state reached from s by flipping the top k pancakes.
func (s *State) Child(k int) *State {
	st := Flip(s.stack, k)

	return &State{
		stack:  st,
		key:    Key(st),
		parent: s,
		flip:   k,
		g:      s.g + 1,
		h:      s.hfn(st),
		hfn:    s.hfn,
	}
}

// Successors returns the N-1 children of s, one per flip point k = 2..N,
// in increasing k order.
func (s *State) Successors() []*State {
	n := len(s.stack)
	if n < 2 {
		return nil
	}
	out := make([]*State, 0, n-1)
	for k := 2; k <= n; k++ {
		out = append(out, s.Child(k))
	}

	return out
}

// Path returns the states from the root to s, inclusive.
func (s *State) Path() []*State {
	path := make([]*State, 0, s.g+1)
	for cur := s; cur != nil; cur = cur.parent {
		path = append(path, cur)
	}
	// reverse to get root → s
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}

// Flips returns the flip points applied from the root to reach s.
func (s *State) Flips() []int {
	flips := make([]int, s.g)
	for cur := s; cur != nil && cur.parent != nil; cur = cur.parent {
		flips[cur.g-1] = cur.flip
	}

	return flips
}

// IsGoal reports whether st holds the goal configuration.
func IsGoal(st *State) bool { return st.IsGoal() }

// Successors returns the children of st; see State.Successors.
func Successors(st *State) []*State { return st.Successors() }
