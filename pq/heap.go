package pq

import "container/heap"

// maxHeap adapts a caller-supplied LessFunc to container/heap, giving
// "greater is higher priority" ordering: the root is always the element
// that the caller's Less never ranks below another resident element.
type maxHeap[T any] struct {
	items []T
	less  LessFunc[T]
}

func newMaxHeap[T any](capacity int, less LessFunc[T]) *maxHeap[T] {
	if capacity < 0 {
		capacity = 0
	}
	return &maxHeap[T]{items: make([]T, 0, capacity), less: less}
}

// Len implements heap.Interface.
func (h *maxHeap[T]) Len() int { return len(h.items) }

// Less implements heap.Interface, inverted so the heap's root is the
// maximum under the caller's Less rather than container/heap's usual
// minimum.
func (h *maxHeap[T]) Less(i, j int) bool { return h.less(h.items[j], h.items[i]) }

// Swap implements heap.Interface.
func (h *maxHeap[T]) Swap(i, j int) { h.items[i], h.items[j] = h.items[j], h.items[i] }

// Push implements heap.Interface; use push instead to also restore the
// heap invariant.
func (h *maxHeap[T]) Push(x any) { h.items = append(h.items, x.(T)) }

// Pop implements heap.Interface; use popMax instead to also restore the
// heap invariant and get an (T, bool) result.
func (h *maxHeap[T]) Pop() any {
	old := h.items
	n := len(old)
	x := old[n-1]
	h.items = old[:n-1]
	return x
}

// push inserts t, restoring the max-heap property in O(log n).
func (h *maxHeap[T]) push(t T) { heap.Push(h, t) }

// popMax removes and returns the maximum element, or ok=false if empty.
func (h *maxHeap[T]) popMax() (t T, ok bool) {
	if len(h.items) == 0 {
		return t, false
	}
	return heap.Pop(h).(T), true
}

// clear empties the heap, keeping its backing array.
func (h *maxHeap[T]) clear() { h.items = h.items[:0] }

// clone deep-copies the element slice (shallow-copies each T).
func (h *maxHeap[T]) clone() *maxHeap[T] {
	items := make([]T, len(h.items))
	copy(items, h.items)
	return &maxHeap[T]{items: items, less: h.less}
}

// snapshot returns a copy of the resident elements in heap (not sorted)
// order.
func (h *maxHeap[T]) snapshot() []T {
	out := make([]T, len(h.items))
	copy(out, h.items)
	return out
}
