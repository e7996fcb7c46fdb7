// Package frontier provides the open set for best-first search: a priority
// queue with insert-or-replace (decrease-key), constant-time membership, and
// minimum extraction.
//
// What
//
//   - Push(key, value, priority) inserts a fresh entry or atomically replaces
//     the live entry for key. At most one live entry exists per key.
//   - PopMin removes and returns the live entry with the lowest priority.
//     Ties are broken by insertion order (earliest first), so runs are
//     reproducible.
//   - Contains and Priority answer from a side index in O(1) expected time,
//     independent of the heap layout.
//
// How
//
//	The heap is github.com/emirpasic/gods/trees/binaryheap. Replacement uses
//	lazy deletion: the superseded entry is marked stale and dropped from the
//	index, and PopMin skips stale entries as it meets them. The index is only
//	updated after the heap accepted the new entry, so the two never disagree.
//	When stale entries outnumber live ones the heap is rebuilt (Compact).
//
// Complexity (n = live entries, s = stale entries)
//
//   - Push:     O(log(n+s)) amortised
//   - PopMin:   O(log(n+s)) amortised
//   - Contains: O(1) expected
//   - Len:      O(1)
//
// Errors
//
//   - ErrEmptyFrontier if PopMin or PeekMin is called with no live entries.
//
// Thread safety
//
//	A Frontier is owned by one search; it performs no locking.
package frontier
