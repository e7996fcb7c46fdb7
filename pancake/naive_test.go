package pancake_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pancake/pancake"
)

func TestNaive_SortsEveryPermutation(t *testing.T) {
	for n := 1; n <= 6; n++ {
		for _, s := range permutations(n) {
			flips := pancake.Naive(s)
			assert.LessOrEqual(t, len(flips), 2*(n-1))
			got, err := pancake.Apply(s, flips)
			require.NoError(t, err)
			assert.True(t, pancake.IsSorted(got), "%v via %v -> %v", s, flips, got)
		}
	}
}

func TestNaive_GoalNeedsNothing(t *testing.T) {
	assert.Empty(t, pancake.Naive(pancake.Sorted(7)))
}

func TestShuffled(t *testing.T) {
	s, err := pancake.Shuffled(10, pancake.NewRand(3))
	require.NoError(t, err)
	require.NoError(t, pancake.Validate(s))

	again, err := pancake.Shuffled(10, pancake.NewRand(3))
	require.NoError(t, err)
	assert.Equal(t, s, again, "same seed must give the same stack")

	_, err = pancake.Shuffled(0, nil)
	assert.ErrorIs(t, err, pancake.ErrBadSize)
}

func TestSorted(t *testing.T) {
	assert.Equal(t, pancake.Stack{4, 3, 2, 1}, pancake.Sorted(4))
	assert.Empty(t, pancake.Sorted(0))
}
