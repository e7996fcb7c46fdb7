package pancake

import "errors"

// Sentinel errors for stack validation and generation.
var (
	// ErrEmptyStack indicates a stack with no pancakes.
	ErrEmptyStack = errors.New("pancake: stack is empty")

	// ErrInvalidStack indicates a stack that is not a permutation of 1..N.
	ErrInvalidStack = errors.New("pancake: stack must be a permutation of 1..N")

	// ErrBadFlip indicates a flip point outside 2..N.
	ErrBadFlip = errors.New("pancake: flip point out of range")

	// ErrBadSize indicates a non-positive stack size.
	ErrBadSize = errors.New("pancake: size must be positive")
)

// Stack is an ordered pancake arrangement. Position 0 is the top.
type Stack []int

// HeuristicFunc estimates the number of flips left to reach the goal.
// Implementations must be pure functions of the stack.
type HeuristicFunc func(s Stack) int
