// Package pancake models the pancake-sorting state space: stacks of N
// distinct-sized pancakes, prefix-reversal flips between them, and the GAP
// heuristic used to guide informed search.
//
// What
//
//   - A Stack is a permutation of 1..N; position 0 is the top of the stack.
//   - Flip(stack, k) reverses the top k pancakes (2 ≤ k ≤ N).
//   - The goal configuration is the strictly descending permutation N, N-1, …, 1.
//   - A State wraps a Stack with its search bookkeeping: the parent state that
//     produced it, the flip count g, the heuristic value h, and the flip point
//     k used to reach it.
//
// Heuristics
//
//   - Gap counts adjacent pairs whose sizes differ by more than one. It only
//     looks at internal adjacency, so an ascending stack also scores 0.
//   - GapWithPlate adds the boundary term: the far end of the stack is treated
//     as resting on a plate of size 0, so a stack whose last pancake is not 1
//     costs one extra gap. GapWithPlate(s) == 0 iff s is the goal.
//
// Both heuristics are admissible and consistent: one flip changes at most one
// adjacency (none inside the stack when k = N), so h moves by at most one
// per step.
//
// Identity
//
//	Two states are the same graph node iff their stacks are equal. Key returns
//	a canonical string for use as a map key; g, h and parent do not take part.
//
// Complexity (N = stack size)
//
//   - Flip, Gap, IsGoal, Key: O(N)
//   - Successors: O(N²) (N-1 children, each an O(N) copy)
//
// Errors
//
//   - ErrEmptyStack    if Validate receives an empty stack.
//   - ErrInvalidStack  if Validate receives anything other than a permutation of 1..N.
//   - ErrBadFlip       if Apply meets a flip point outside 2..N.
//   - ErrBadSize       if Shuffled is asked for a non-positive size.
package pancake
