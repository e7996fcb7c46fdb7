package pancake

import (
	"encoding/binary"
	"fmt"
	"strconv"
	"strings"
)

// Flip returns a new stack equal to s with its first k elements reversed.
// The remainder is copied unchanged and s itself is never modified.
// Callers must keep 2 ≤ k ≤ len(s); k=1 is a no-op and is not a move.
func Flip(s Stack, k int) Stack {
	out := make(Stack, len(s))
	for i := 0; i < k; i++ {
		out[i] = s[k-1-i]
	}
	copy(out[k:], s[k:])

	return out
}

// Gap counts adjacent pairs (s[i], s[i+1]) whose sizes differ by more than one.
func Gap(s Stack) int {
	gaps := 0
	for i := 0; i+1 < len(s); i++ {
		if absDiff(s[i], s[i+1]) > 1 {
			gaps++
		}
	}

	return gaps
}

// GapWithPlate is Gap plus the boundary term for the bottom of the stack:
// the last pancake must be size 1 to sit directly on the plate.
func GapWithPlate(s Stack) int {
	gaps := Gap(s)
	if n := len(s); n > 0 && s[n-1] != 1 {
		gaps++
	}

	return gaps
}

// IsSorted reports whether s is strictly descending, N, N-1, …, 1.
// An empty stack is trivially sorted.
func IsSorted(s Stack) bool {
	n := len(s)
	for i, v := range s {
		if v != n-i {
			return false
		}
	}

	return true
}

// Key returns the canonical identity of s, usable as a map key.
// Equal stacks always yield equal keys.
func Key(s Stack) string {
	buf := make([]byte, 0, len(s))
	for _, v := range s {
		buf = binary.AppendUvarint(buf, uint64(v))
	}

	return string(buf)
}

// Clone returns an independent copy of s.
func (s Stack) Clone() Stack {
	out := make(Stack, len(s))
	copy(out, s)

	return out
}

// Equal reports whether s and o hold the same pancakes in the same order.
func (s Stack) Equal(o Stack) bool {
	if len(s) != len(o) {
		return false
	}
	for i := range s {
		if s[i] != o[i] {
			return false
		}
	}

	return true
}

// String renders s as "[3 1 2]".
func (s Stack) String() string {
	parts := make([]string, len(s))
	for i, v := range s {
		parts[i] = strconv.Itoa(v)
	}

	return "[" + strings.Join(parts, " ") + "]"
}

// Validate checks that s is a permutation of 1..len(s).
// Search itself does not re-validate; callers run this on untrusted input.
func Validate(s Stack) error {
	n := len(s)
	if n == 0 {
		return ErrEmptyStack
	}
	seen := make([]bool, n+1)
	for i, v := range s {
		if v < 1 || v > n {
			return fmt.Errorf("%w: size %d at position %d out of range 1..%d", ErrInvalidStack, v, i, n)
		}
		if seen[v] {
			return fmt.Errorf("%w: size %d appears more than once", ErrInvalidStack, v)
		}
		seen[v] = true
	}

	return nil
}

// Apply replays a flip sequence on s and returns the resulting stack.
// An out-of-range flip point yields ErrBadFlip.
func Apply(s Stack, flips []int) (Stack, error) {
	cur := s.Clone()
	for i, k := range flips {
		if k < 2 || k > len(cur) {
			return nil, fmt.Errorf("%w: flip %d at step %d outside 2..%d", ErrBadFlip, k, i, len(cur))
		}
		cur = Flip(cur, k)
	}

	return cur, nil
}

func absDiff(a, b int) int {
	if a > b {
		return a - b
	}

	return b - a
}
