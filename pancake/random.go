package pancake

import (
	"fmt"
	"math/rand"
)

// defaultSeed is used when callers pass seed==0 to NewRand.
const defaultSeed int64 = 1

// NewRand returns a deterministic *rand.Rand.
// seed==0 selects defaultSeed; any other value is used verbatim.
// The returned generator is not safe for concurrent use.
func NewRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = defaultSeed
	}

	return rand.New(rand.NewSource(seed))
}

// Sorted returns the goal stack of size n: n, n-1, …, 1.
func Sorted(n int) Stack {
	s := make(Stack, n)
	for i := range s {
		s[i] = n - i
	}

	return s
}

// Shuffled returns a uniformly random permutation of 1..n drawn from rng.
// A nil rng uses NewRand(0).
func Shuffled(n int, rng *rand.Rand) (Stack, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrBadSize, n)
	}
	if rng == nil {
		rng = NewRand(0)
	}
	s := make(Stack, n)
	for i := range s {
		s[i] = i + 1
	}
	rng.Shuffle(n, func(i, j int) { s[i], s[j] = s[j], s[i] })

	return s, nil
}
