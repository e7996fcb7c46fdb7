package pancake_test

import (
	"fmt"

	"github.com/katalvlaran/pancake/pancake"
)

// ExampleFlip flips the top three pancakes of an ascending stack.
func ExampleFlip() {
	fmt.Println(pancake.Flip(pancake.Stack{1, 2, 3, 4}, 3))
	// Output:
	// [3 2 1 4]
}

// ExampleGap shows the internal-adjacency GAP count next to the plate variant.
func ExampleGap() {
	s := pancake.Stack{2, 4, 3, 1}
	fmt.Println(pancake.Gap(s), pancake.GapWithPlate(s))
	// Output:
	// 2 2
}

// ExampleState_Successors lists every child of a three-pancake stack.
func ExampleState_Successors() {
	root := pancake.NewState(pancake.Stack{1, 2, 3}, nil)
	for _, c := range root.Successors() {
		fmt.Println(c.Flip(), c.Stack(), c.G(), c.H())
	}
	// Output:
	// 2 [2 1 3] 1 1
	// 3 [3 2 1] 1 0
}
