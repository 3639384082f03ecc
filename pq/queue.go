package pq

import (
	"fmt"
	"iter"
	"sort"
	"strings"

	"github.com/ivbrk/stripedpq/internal/rng"
	"github.com/ivbrk/stripedpq/internal/util"
)

// stripedQueue is a sharded concurrent priority queue: N independent
// binary max-heaps ("shards"), each guarded by its own spinlock, with
// push/pop routed to a uniformly random shard.
//
// All methods are safe for concurrent use by multiple goroutines except
// where documented otherwise (Drain, Extend, IntoSortedSlice).
type stripedQueue[T any] struct {
	shards  []*shard[T]
	less    LessFunc[T]
	metrics Metrics
}

// New constructs a Queue from opt. Defaults:
//   - Queues <= 0   -> 4 * GOMAXPROCS
//   - nil Metrics   -> NoopMetrics
//
// New panics if opt.Less is nil.
func New[T any](opt Options[T]) Queue[T] {
	if opt.Less == nil {
		panic("pq: Options.Less must be non-nil")
	}
	if opt.Metrics == nil {
		opt.Metrics = NoopMetrics{}
	}

	n := opt.Queues
	if n <= 0 {
		n = util.ReasonableQueueCount()
	}
	if n < 1 {
		n = 1
	}

	shards := make([]*shard[T], n)
	for i := range shards {
		shards[i] = newShard[T](opt.Capacity, opt.Less, opt.Metrics)
	}

	return &stripedQueue[T]{shards: shards, less: opt.Less, metrics: opt.Metrics}
}

// NewWithCapacity constructs a Queue whose shards each pre-allocate room
// for capacity elements, with an automatic shard count.
func NewWithCapacity[T any](less LessFunc[T], capacity int) Queue[T] {
	return New[T](Options[T]{Less: less, Capacity: capacity})
}

// NewWithQueues constructs a Queue with a fixed shard count.
func NewWithQueues[T any](less LessFunc[T], queues int) Queue[T] {
	return New[T](Options[T]{Less: less, Queues: queues})
}

// NewWithCapacityAndQueues combines NewWithCapacity and NewWithQueues.
func NewWithCapacityAndQueues[T any](less LessFunc[T], capacity, queues int) Queue[T] {
	return New[T](Options[T]{Less: less, Capacity: capacity, Queues: queues})
}

// NewFromSlice constructs a Queue and pushes every element of items.
// Per the spec's bulk-ingestion policy, len(items) is applied as each
// shard's initial capacity uniformly (not divided across shards) — a
// deliberate over-allocation that favors avoiding heap growth during the
// initial ingest over minimizing memory.
func NewFromSlice[T any](less LessFunc[T], items []T) Queue[T] {
	q := New[T](Options[T]{Less: less, Capacity: len(items)})
	for _, t := range items {
		q.Push(t)
	}
	return q
}

// NewFromSeq constructs a Queue and pushes every element yielded by seq,
// applying sizeHint as each shard's initial capacity uniformly, as
// NewFromSlice does. Pass 0 if no useful size hint is available.
func NewFromSeq[T any](less LessFunc[T], seq iter.Seq[T], sizeHint int) Queue[T] {
	q := New[T](Options[T]{Less: less, Capacity: sizeHint})
	for t := range seq {
		q.Push(t)
	}
	return q
}

// Push samples a random shard and attempts tryPush; on contention it
// re-samples and emits a CPU hint rather than spinning on one shard, to
// spread load and avoid convoy formation.
func (q *stripedQueue[T]) Push(t T) {
	n := len(q.shards)
	i := rng.Intn(n)
	for !q.shards[i].tryPush(t) {
		q.metrics.Contended()
		i = rng.Intn(n)
		cpuRelax()
	}
	q.metrics.Pushed()
}

// Pop samples a random shard and attempts tryPop; on contention it
// re-samples. A returned ok=false means that shard was empty when
// locked, not that the queue as a whole is empty.
func (q *stripedQueue[T]) Pop() (T, bool) {
	n := len(q.shards)
	i := rng.Intn(n)
	for {
		t, found, locked := q.shards[i].tryPop()
		if locked {
			if found {
				q.metrics.Popped()
			} else {
				q.metrics.SpuriousNone()
			}
			return t, found
		}
		q.metrics.Contended()
		i = rng.Intn(n)
		cpuRelax()
	}
}

// StrongPop visits shards in index order, spinning on each one's lock,
// and returns the first element found. It never skips a contended shard.
func (q *stripedQueue[T]) StrongPop() (T, bool) {
	for _, s := range q.shards {
		if t, found := s.popBlocking(); found {
			q.metrics.Popped()
			return t, true
		}
	}
	var zero T
	return zero, false
}

// Clear clears every shard independently via a blocking acquire.
func (q *stripedQueue[T]) Clear() {
	for _, s := range q.shards {
		s.clear()
	}
}

// Drain empties every shard via take (no locking: requires exclusive
// access) and concatenates the results.
func (q *stripedQueue[T]) Drain() []T {
	var out []T
	for _, s := range q.shards {
		out = append(out, s.take()...)
	}
	return out
}

// Extend pushes every element of items. Requires exclusive access.
func (q *stripedQueue[T]) Extend(items []T) {
	for _, t := range items {
		q.Push(t)
	}
}

// PushAll pushes every element of items through the concurrent Push path.
func (q *stripedQueue[T]) PushAll(items []T) {
	for _, t := range items {
		q.Push(t)
	}
}

// IntoSortedSlice drains the queue and sorts its elements descending by
// Less. O(M log M) in the total element count M.
func (q *stripedQueue[T]) IntoSortedSlice() []T {
	items := q.Drain()
	less := q.less
	sort.Slice(items, func(i, j int) bool { return less(items[j], items[i]) })
	return items
}

// Len returns the total resident element count, briefly locking each
// shard in turn.
func (q *stripedQueue[T]) Len() int {
	total := 0
	for i, s := range q.shards {
		n := s.lenLocked()
		q.metrics.ShardLen(i, n)
		total += n
	}
	return total
}

// All returns an iterator that drains the queue (like Drain) and yields
// its elements in unspecified cross-shard order. Requires exclusive
// access.
func (q *stripedQueue[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, t := range q.Drain() {
			if !yield(t) {
				return
			}
		}
	}
}

// Clone deep-copies every shard's heap into a new queue with fresh,
// unlocked shard flags.
func (q *stripedQueue[T]) Clone() Queue[T] {
	clones := make([]*shard[T], len(q.shards))
	for i, s := range q.shards {
		clones[i] = s.clone()
	}
	return &stripedQueue[T]{shards: clones, less: q.less, metrics: q.metrics}
}

// String renders every shard's resident elements for debugging.
func (q *stripedQueue[T]) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, s := range q.shards {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "%v", s.snapshot())
	}
	sb.WriteByte(']')
	return sb.String()
}
