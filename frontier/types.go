package frontier

import "errors"

// ErrEmptyFrontier is returned when popping from a frontier with no live entries.
var ErrEmptyFrontier = errors.New("frontier: pop from empty frontier")

// compactMinStale is the stale-entry count below which Compact is never
// triggered automatically.
const compactMinStale = 64

// entry is one heap slot. Stale entries stay in the heap until popped or compacted.
type entry[K comparable, V any] struct {
	key      K
	value    V
	priority int
	seq      uint64
	stale    bool
}

// Item is a popped frontier entry.
type Item[K comparable, V any] struct {
	Key      K
	Value    V
	Priority int
}
