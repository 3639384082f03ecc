package pq

import (
	"sort"
	"testing"
)

func intLess(a, b int) bool { return a < b }

// S1: default queue, push a handful of values, IntoSortedSlice must
// return them sorted descending.
func TestQueue_IntoSortedSlice_Descending(t *testing.T) {
	t.Parallel()

	q := New[int](Options[int]{Less: intLess})
	for _, v := range []int{5, 3, 8, 1, 9, 2} {
		q.Push(v)
	}

	got := q.IntoSortedSlice()
	want := []int{9, 8, 5, 3, 2, 1}
	if len(got) != len(want) {
		t.Fatalf("len = %d, want %d (%v)", len(got), len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("IntoSortedSlice() = %v, want %v", got, want)
		}
	}
}

// S2: a single-shard queue degenerates to a plain max-heap. Pop must
// strictly return the current maximum.
func TestQueue_SingleShard_StrictMax(t *testing.T) {
	t.Parallel()

	q := NewWithQueues[int](intLess, 1)
	for _, v := range []int{10, 20, 5} {
		q.Push(v)
	}

	for _, want := range []int{20, 10, 5} {
		got, ok := q.Pop()
		if !ok || got != want {
			t.Fatalf("Pop() = (%d, %v), want (%d, true)", got, ok, want)
		}
	}
	if _, ok := q.Pop(); ok {
		t.Fatal("Pop() on exhausted single-shard queue must return ok=false")
	}
}

// S3: StrongPop is exhaustive under quiescence — it drains a non-empty
// queue completely and then reports false exactly once.
func TestQueue_StrongPop_ExhaustsQuiescentQueue(t *testing.T) {
	t.Parallel()

	q := New[int](Options[int]{Less: intLess})
	q.Push(1)
	q.Push(2)

	seen := map[int]bool{}
	for i := 0; i < 2; i++ {
		v, ok := q.StrongPop()
		if !ok {
			t.Fatalf("StrongPop() #%d returned ok=false too early", i)
		}
		seen[v] = true
	}
	if !seen[1] || !seen[2] {
		t.Fatalf("StrongPop() results = %v, want {1, 2}", seen)
	}
	if _, ok := q.StrongPop(); ok {
		t.Fatal("StrongPop() on drained quiescent queue must return ok=false")
	}
}

// S6: drain on a multi-shard queue returns every pushed element exactly
// once, in any order, and leaves the queue empty.
func TestQueue_Drain(t *testing.T) {
	t.Parallel()

	q := NewWithQueues[int](intLess, 4)
	for _, v := range []int{1, 2, 3, 4} {
		q.Push(v)
	}

	got := q.Drain()
	sort.Ints(got)
	want := []int{1, 2, 3, 4}
	if len(got) != len(want) {
		t.Fatalf("Drain() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Drain() sorted = %v, want %v", got, want)
		}
	}

	if n := q.Len(); n != 0 {
		t.Fatalf("Len() after Drain() = %d, want 0", n)
	}
}

// Round-trip law: NewFromSlice(I) then IntoSortedSlice == I sorted
// descending.
func TestQueue_NewFromSlice_RoundTrip(t *testing.T) {
	t.Parallel()

	items := []int{7, 1, 4, 4, 9, -2, 0}
	q := NewFromSlice(intLess, items)

	got := q.IntoSortedSlice()
	want := append([]int(nil), items...)
	sort.Sort(sort.Reverse(sort.IntSlice(want)))

	if len(got) != len(want) {
		t.Fatalf("len = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
}

// extend_ref (PushAll) on an empty queue is observationally equivalent to
// constructing from the same slice.
func TestQueue_PushAll_EquivalentToFromSlice(t *testing.T) {
	t.Parallel()

	items := []int{3, 1, 4, 1, 5, 9, 2, 6}

	a := New[int](Options[int]{Less: intLess})
	a.PushAll(items)

	b := NewFromSlice(intLess, items)

	gotA, gotB := a.IntoSortedSlice(), b.IntoSortedSlice()
	if len(gotA) != len(gotB) {
		t.Fatalf("lengths differ: %d vs %d", len(gotA), len(gotB))
	}
	for i := range gotA {
		if gotA[i] != gotB[i] {
			t.Fatalf("PushAll result %v != NewFromSlice result %v", gotA, gotB)
		}
	}
}

// clear() followed by strong_pop() returns None absent concurrent pushes.
func TestQueue_ClearThenStrongPop(t *testing.T) {
	t.Parallel()

	q := New[int](Options[int]{Less: intLess})
	q.PushAll([]int{1, 2, 3, 4, 5})
	q.Clear()

	if _, ok := q.StrongPop(); ok {
		t.Fatal("StrongPop() after Clear() must return ok=false")
	}
}

// Boundary: empty queue, Pop returns ok=false, StrongPop deterministically
// returns ok=false.
func TestQueue_Empty(t *testing.T) {
	t.Parallel()

	q := New[int](Options[int]{Less: intLess})
	if _, ok := q.Pop(); ok {
		t.Fatal("Pop() on empty queue must return ok=false")
	}
	if _, ok := q.StrongPop(); ok {
		t.Fatal("StrongPop() on empty queue must return ok=false")
	}
	if n := q.Len(); n != 0 {
		t.Fatalf("Len() on empty queue = %d, want 0", n)
	}
}

// Very large N relative to few elements: StrongPop still finds elements
// even though Pop is likely to report spurious None.
func TestQueue_ManyShardsFewElements_StrongPopStillFinds(t *testing.T) {
	t.Parallel()

	q := NewWithQueues[int](intLess, 256)
	q.Push(42)

	v, ok := q.StrongPop()
	if !ok || v != 42 {
		t.Fatalf("StrongPop() = (%d, %v), want (42, true)", v, ok)
	}
}

// Clone deep-copies shards: mutating the clone must not affect the
// original.
func TestQueue_Clone_Independent(t *testing.T) {
	t.Parallel()

	q := NewWithQueues[int](intLess, 1)
	q.PushAll([]int{1, 2, 3})

	clone := q.Clone()
	clone.Push(100)

	if clone.Len() != 4 {
		t.Fatalf("clone.Len() = %d, want 4", clone.Len())
	}
	if q.Len() != 3 {
		t.Fatalf("original.Len() = %d, want 3 (unaffected by clone mutation)", q.Len())
	}
}

// All() drains the queue via the iterator, exactly like Drain.
func TestQueue_All_DrainsAndYieldsEverything(t *testing.T) {
	t.Parallel()

	q := NewWithQueues[int](intLess, 4)
	q.PushAll([]int{1, 2, 3, 4, 5})

	var got []int
	for v := range q.All() {
		got = append(got, v)
	}
	sort.Ints(got)

	want := []int{1, 2, 3, 4, 5}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("All() yielded %v, want %v", got, want)
		}
	}
	if n := q.Len(); n != 0 {
		t.Fatalf("Len() after All() = %d, want 0 (All drains)", n)
	}
}

// New panics without a Less function, mirroring the teacher's New()
// panicking on invalid configuration.
func TestNew_PanicsWithoutLess(t *testing.T) {
	t.Parallel()

	defer func() {
		if recover() == nil {
			t.Fatal("New() with nil Less must panic")
		}
	}()
	New[int](Options[int]{})
}

// String() renders a populated queue without panicking and returns a
// non-empty string.
func TestQueue_String(t *testing.T) {
	t.Parallel()

	q := NewWithQueues[int](intLess, 2)
	q.PushAll([]int{1, 2, 3})

	s := q.String()
	if s == "" {
		t.Fatal("String() must not be empty")
	}
}
