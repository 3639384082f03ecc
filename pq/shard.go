package pq

import (
	"sync/atomic"

	"github.com/ivbrk/stripedpq/internal/util"
)

// shard is a single binary max-heap guarded by a one-bit atomic spinlock.
//
// Lock discipline: acquire is a CompareAndSwap(false, true); Go's
// atomic.Bool.CompareAndSwap already gives the success case an acquire
// memory barrier (paired with the release Store on unlock), establishing
// happens-before between successive critical sections on the same shard.
// This corrects the source Rust implementation's release-on-success /
// relaxed-on-failure CAS, which the spec flags as a bug rather than a
// behavior to preserve.
type shard[T any] struct {
	locked atomic.Bool
	heap   *maxHeap[T]

	_          util.CacheLinePad
	contention util.PaddedAtomicUint64
	metrics    Metrics
}

func newShard[T any](capacity int, less LessFunc[T], metrics Metrics) *shard[T] {
	return &shard[T]{heap: newMaxHeap[T](capacity, less), metrics: metrics}
}

// tryAcquire attempts exactly one CAS; it never spins.
func (s *shard[T]) tryAcquire() bool {
	return s.locked.CompareAndSwap(false, true)
}

// acquireSpin spins, emitting a CPU hint, until the lock is acquired. Every
// failed attempt is both tallied locally (contentionCount) and reported to
// the queue's Metrics, so StrongPop/Clear/Clone/Len/String contend exactly
// as visibly as Push/Pop's re-sampling loop does.
func (s *shard[T]) acquireSpin() {
	for !s.tryAcquire() {
		s.contention.Add(1)
		s.metrics.Contended()
		cpuRelax()
	}
}

// contentionCount reports the number of failed acquireSpin attempts this
// shard has recorded, for tests and debug inspection.
func (s *shard[T]) contentionCount() uint64 {
	return s.contention.Load()
}

func (s *shard[T]) release() {
	s.locked.Store(false)
}

// tryPush attempts one CAS. On success it inserts t and returns true. On
// failure it returns false, giving ownership of t back to the caller: no
// spin, no retry, no duplication.
func (s *shard[T]) tryPush(t T) bool {
	if !s.tryAcquire() {
		return false
	}
	s.heap.push(t)
	s.release()
	return true
}

// tryPop attempts one CAS. locked reports whether it was acquired; found
// reports whether the shard's heap yielded an element (it may be
// legitimately empty).
func (s *shard[T]) tryPop() (t T, found, locked bool) {
	if !s.tryAcquire() {
		return t, false, false
	}
	t, found = s.heap.popMax()
	s.release()
	return t, found, true
}

// popBlocking spins until the lock is acquired, then pops.
func (s *shard[T]) popBlocking() (t T, found bool) {
	s.acquireSpin()
	t, found = s.heap.popMax()
	s.release()
	return t, found
}

// clear spins on the lock until acquired, then empties the heap.
func (s *shard[T]) clear() {
	s.acquireSpin()
	s.heap.clear()
	s.release()
}

// take replaces the shard's heap with a fresh, empty one of the same
// capacity and returns the old heap's resident elements, in unspecified
// order. Requires the caller to hold exclusive access to the owning
// queue: the lock is bypassed entirely, matching the source's
// `take(&mut self)`.
func (s *shard[T]) take() []T {
	old := s.heap
	s.heap = newMaxHeap[T](cap(old.items), old.less)
	return old.items
}

// clone spins on the lock until acquired, deep-copies the heap, releases,
// and returns a new shard with a fresh, unlocked flag.
func (s *shard[T]) clone() *shard[T] {
	s.acquireSpin()
	h := s.heap.clone()
	s.release()
	return &shard[T]{heap: h, metrics: s.metrics}
}

// snapshot spins on the lock until acquired and returns a copy of the
// resident elements, for debug formatting.
func (s *shard[T]) snapshot() []T {
	s.acquireSpin()
	out := s.heap.snapshot()
	s.release()
	return out
}

// lenLocked spins on the lock until acquired and returns the resident
// element count.
func (s *shard[T]) lenLocked() int {
	s.acquireSpin()
	n := s.heap.Len()
	s.release()
	return n
}
