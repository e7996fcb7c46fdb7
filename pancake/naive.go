package pancake

// Naive returns a flip sequence that sorts s without any search.
//
// It fixes the bottom of the stack one pancake at a time: position i must
// hold size N-i, so the right pancake is first flipped to the top (if it is
// not already there) and then flipped down into place. At most 2(N-1) flips
// are used, which makes it an upper bound for any optimal solver.
//
// Complexity: O(N²).
func Naive(s Stack) []int {
	cur := s.Clone()
	n := len(cur)
	flips := make([]int, 0, 2*n)
	for i := n - 1; i >= 1; i-- {
		want := n - i
		if cur[i] == want {
			continue
		}
		j := indexOf(cur, want)
		if j > 0 {
			cur = Flip(cur, j+1)
			flips = append(flips, j+1)
		}
		cur = Flip(cur, i+1)
		flips = append(flips, i+1)
	}

	return flips
}

func indexOf(s Stack, v int) int {
	for i, x := range s {
		if x == v {
			return i
		}
	}

	return -1
}
