package pq

import "iter"

// LessFunc reports whether a has lower priority than b. The queue orders
// elements by the "greater is higher priority" convention: Pop/StrongPop
// return the element r of the shard examined for which Less(r, other) is
// false for every other resident element of that shard.
type LessFunc[T any] func(a, b T) bool

// Queue is a sharded, thread-safe relaxed priority queue.
//
// Push, Pop, StrongPop, Clear and PushAll are safe for concurrent use by
// multiple goroutines without external synchronization. Drain, Extend and
// IntoSortedSlice require the caller to hold exclusive access: no other
// goroutine may be concurrently operating on the queue while they run.
type Queue[T any] interface {
	// Push inserts t into a randomly chosen shard, re-sampling on lock
	// contention. It never reports failure; the queue is unbounded
	// subject to process memory.
	Push(t T)

	// Pop removes and returns an element from a randomly chosen shard.
	// ok is false iff that shard was empty at the moment it was locked,
	// not iff the whole queue is empty ("spurious None"): under
	// concurrent load Pop may return false while other shards hold
	// elements. Use StrongPop for a non-spurious result.
	Pop() (t T, ok bool)

	// StrongPop visits every shard in index order, blocking briefly on
	// each one's lock, and returns the first element found. It returns
	// false only after every shard has been locked and found empty. If
	// the queue is quiescent (no concurrent pushes) and non-empty,
	// StrongPop is guaranteed to return an element.
	StrongPop() (t T, ok bool)

	// Clear empties every shard. Shards are cleared independently, so a
	// push racing between two shard visits may survive.
	Clear()

	// Drain empties every shard into a single slice in unspecified
	// cross-shard order. Requires exclusive access.
	Drain() []T

	// Extend pushes every element of items. Requires exclusive access
	// (use PushAll from concurrent callers instead).
	Extend(items []T)

	// PushAll pushes every element of items through the concurrent Push
	// path; safe to call from any number of goroutines holding only
	// shared access to the queue.
	PushAll(items []T)

	// IntoSortedSlice drains the queue and returns its elements sorted
	// descending by Less. Requires exclusive access.
	IntoSortedSlice() []T

	// Len returns the total number of resident elements across all
	// shards. It is best-effort: each shard is briefly locked in turn,
	// so the result may be stale by the time it is returned under
	// concurrent mutation.
	Len() int

	// All returns an iterator that drains the queue, yielding its
	// elements in unspecified cross-shard order. Requires exclusive
	// access, like Drain.
	All() iter.Seq[T]

	// Clone deep-copies every shard's heap into a new, independently
	// lockable queue.
	Clone() Queue[T]

	// String renders every shard's resident elements for debugging.
	String() string
}
