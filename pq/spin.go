package pq

// cpuRelax hints to the CPU that the current goroutine is spinning,
// without yielding the OS thread: the standard library exposes no
// portable PAUSE intrinsic, so a short, empty loop stands in for one.
// This is deliberately NOT runtime.Gosched — yielding the thread here
// would cost far more than the O(log n) critical section it is waiting
// on, per the spec this queue follows.
func cpuRelax() {
	for i := 0; i < 16; i++ {
	}
}
