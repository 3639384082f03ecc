// Package pq provides a fast, generic, sharded concurrent priority queue.
//
// Design
//
//   - Concurrency: the queue is striped across N independent sub-heaps
//     ("shards"), each guarded by a one-bit atomic spinlock rather than a
//     mutex. push and pop pick a shard uniformly at random and retry on a
//     different shard if the chosen one is momentarily locked, instead of
//     waiting for it. This trades strict global ordering for much lower
//     contention under many concurrent producers/consumers.
//
//   - Storage: each shard keeps its elements in a binary max-heap ordered
//     by a caller-supplied Less function (see container/heap). No element
//     is ever migrated between shards once pushed.
//
//   - Relaxed pop: Pop returns the maximum of whichever shard it happens
//     to lock, which may be None ("spurious None") even though other
//     shards are non-empty. Callers that need a non-spurious result use
//     StrongPop, which visits every shard in turn and blocks briefly on
//     each one's lock.
//
//   - Exclusive operations: Drain bypasses shard locking entirely, and
//     Extend (which pushes through Push) and IntoSortedSlice are likewise
//     documented as exclusive-access; the caller must guarantee no other
//     goroutine is concurrently operating on the queue while calling them.
//
//   - Metrics: Options.Metrics receives Pushed/Popped/SpuriousNone/
//     Contended signals. By default NoopMetrics is used; plug the
//     metrics/prom adapter to export them to Prometheus.
//
// Basic usage
//
//	q := pq.New[int](pq.Options[int]{Less: func(a, b int) bool { return a < b }})
//	q.Push(5)
//	q.Push(3)
//	q.Push(8)
//	v, ok := q.Pop() // v may be 8, but is not guaranteed to be the global max
//
// Non-spurious draining under quiescence
//
//	q.Clear()
//	if _, ok := q.StrongPop(); !ok {
//	    // queue was empty and no concurrent pushes were racing
//	}
//
// Sorted extraction
//
//	sorted := q.IntoSortedSlice() // descending by Less
//
// Thread-safety & complexity
//
// Push, Pop, StrongPop, Clear and PushAll are safe for concurrent use by
// any number of goroutines. Drain, Extend and IntoSortedSlice require the
// caller to hold exclusive access to the queue. Typical push/pop cost is
// O(log n) per shard, amortized across re-sampling under contention.
package pq
