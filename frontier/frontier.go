package frontier

import (
	"github.com/emirpasic/gods/trees/binaryheap"
)

// Frontier is a decrease-key priority queue keyed by K, holding values of type V.
// The zero value is not usable; call New.
type Frontier[K comparable, V any] struct {
	heap  *binaryheap.Heap
	index map[K]*entry[K, V]
	seq   uint64
	stale int
}

// New returns an empty Frontier.
func New[K comparable, V any]() *Frontier[K, V] {
	return &Frontier[K, V]{
		heap:  binaryheap.NewWith(compareEntries[K, V]),
		index: make(map[K]*entry[K, V]),
	}
}

// compareEntries orders by priority, then by insertion sequence.
func compareEntries[K comparable, V any](a, b interface{}) int {
	x := a.(*entry[K, V])
	y := b.(*entry[K, V])
	switch {
	case x.priority < y.priority:
		return -1
	case x.priority > y.priority:
		return 1
	case x.seq < y.seq:
		return -1
	case x.seq > y.seq:
		return 1
	}

	return 0
}

// Push inserts value under key at the given priority. If key already has a
// live entry it is replaced, whatever the old priority was; it reports
// whether a replacement happened.
func (f *Frontier[K, V]) Push(key K, value V, priority int) (replaced bool) {
	e := &entry[K, V]{key: key, value: value, priority: priority, seq: f.seq}
	f.seq++
	f.heap.Push(e)

	// heap accepted the entry; now retire the old one and publish the new one
	if old, ok := f.index[key]; ok {
		old.stale = true
		f.stale++
		replaced = true
	}
	f.index[key] = e

	if f.stale > compactMinStale && f.stale > len(f.index) {
		f.Compact()
	}

	return replaced
}

// PopMin removes and returns the live entry with the lowest priority.
func (f *Frontier[K, V]) PopMin() (Item[K, V], error) {
	for {
		raw, ok := f.heap.Pop()
		if !ok {
			return Item[K, V]{}, ErrEmptyFrontier
		}
		e := raw.(*entry[K, V])
		if e.stale {
			f.stale--
			continue
		}
		delete(f.index, e.key)

		return Item[K, V]{Key: e.key, Value: e.value, Priority: e.priority}, nil
	}
}

// PeekMin returns the live entry with the lowest priority without removing it.
// Stale entries met on the way are discarded.
func (f *Frontier[K, V]) PeekMin() (Item[K, V], error) {
	for {
		raw, ok := f.heap.Peek()
		if !ok {
			return Item[K, V]{}, ErrEmptyFrontier
		}
		e := raw.(*entry[K, V])
		if e.stale {
			f.heap.Pop()
			f.stale--
			continue
		}

		return Item[K, V]{Key: e.key, Value: e.value, Priority: e.priority}, nil
	}
}

// Contains reports whether key has a live entry.
func (f *Frontier[K, V]) Contains(key K) bool {
	_, ok := f.index[key]
	return ok
}

// Get returns the live value and priority stored under key.
func (f *Frontier[K, V]) Get(key K) (value V, priority int, ok bool) {
	e, ok := f.index[key]
	if !ok {
		return value, 0, false
	}

	return e.value, e.priority, true
}

// Priority returns the live priority stored under key.
func (f *Frontier[K, V]) Priority(key K) (int, bool) {
	e, ok := f.index[key]
	if !ok {
		return 0, false
	}

	return e.priority, true
}

// Len returns the number of live entries, one per distinct key.
func (f *Frontier[K, V]) Len() int { return len(f.index) }

// IsEmpty reports whether no live entries remain.
func (f *Frontier[K, V]) IsEmpty() bool { return len(f.index) == 0 }

// Stale returns the number of superseded entries still held by the heap.
func (f *Frontier[K, V]) Stale() int { return f.stale }

// Compact rebuilds the heap from live entries only.
func (f *Frontier[K, V]) Compact() {
	h := binaryheap.NewWith(compareEntries[K, V])
	for _, e := range f.index {
		h.Push(e)
	}
	f.heap = h
	f.stale = 0
}
