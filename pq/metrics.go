package pq

// Metrics exposes observability hooks for a Queue's internal contention
// and throughput. A NoopMetrics implementation is used by default.
type Metrics interface {
	// Pushed is called once per successful Push.
	Pushed()
	// Popped is called once per Pop/StrongPop that returned an element.
	Popped()
	// SpuriousNone is called when Pop returns false because the shard it
	// happened to lock was empty, not because the queue is empty.
	SpuriousNone()
	// Contended is called once per failed CAS attempt encountered while
	// waiting for a shard's lock: once per re-sample in Push/Pop's
	// contended retry loop, and once per spin iteration in every
	// operation that blocks on a specific shard's lock (StrongPop,
	// Clear, Clone, Len, String).
	Contended()
	// ShardLen reports the resident element count of one shard, indexed
	// 0..N-1. Called by Len as it walks the shard array.
	ShardLen(shard int, n int)
}

// NoopMetrics is a Metrics implementation that does nothing.
type NoopMetrics struct{}

// Pushed ignores the call.
func (NoopMetrics) Pushed() {}

// Popped ignores the call.
func (NoopMetrics) Popped() {}

// SpuriousNone ignores the call.
func (NoopMetrics) SpuriousNone() {}

// Contended ignores the call.
func (NoopMetrics) Contended() {}

// ShardLen ignores the call.
func (NoopMetrics) ShardLen(int, int) {}
