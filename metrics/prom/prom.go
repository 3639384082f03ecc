// Package prom adapts pq.Metrics to Prometheus counters and gauges.
package prom

import (
	"strconv"

	"github.com/ivbrk/stripedpq/pq"
	"github.com/prometheus/client_golang/prometheus"
)

// Recorder implements pq.Metrics and exports Prometheus counters/gauges.
// Safe for concurrent use; all Prometheus metric types are goroutine-safe.
type Recorder struct {
	pushed       prometheus.Counter
	popped       prometheus.Counter
	spuriousNone prometheus.Counter
	contended    prometheus.Counter
	shardLen     *prometheus.GaugeVec
}

// New constructs a Prometheus metrics recorder.
//   - reg:         registry to register metrics with (nil => prometheus.DefaultRegisterer)
//   - ns, sub:      Prometheus namespace and subsystem
//   - constLabels:  static labels applied to all metrics (may be nil)
func New(reg prometheus.Registerer, ns, sub string, constLabels prometheus.Labels) *Recorder {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	r := &Recorder{
		pushed: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   ns,
			Subsystem:   sub,
			Name:        "pushed_total",
			Help:        "Elements successfully pushed",
			ConstLabels: constLabels,
		}),
		popped: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   ns,
			Subsystem:   sub,
			Name:        "popped_total",
			Help:        "Elements successfully popped (Pop or StrongPop)",
			ConstLabels: constLabels,
		}),
		spuriousNone: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   ns,
			Subsystem:   sub,
			Name:        "pop_spurious_none_total",
			Help:        "Pop calls that found their sampled shard empty",
			ConstLabels: constLabels,
		}),
		contended: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   ns,
			Subsystem:   sub,
			Name:        "lock_contended_total",
			Help:        "Failed CAS attempts while waiting for a shard lock",
			ConstLabels: constLabels,
		}),
		shardLen: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace:   ns,
				Subsystem:   sub,
				Name:        "shard_len",
				Help:        "Resident element count, by shard index",
				ConstLabels: constLabels,
			},
			[]string{"shard"},
		),
	}
	reg.MustRegister(r.pushed, r.popped, r.spuriousNone, r.contended, r.shardLen)
	return r
}

// Pushed increments the pushed counter.
func (r *Recorder) Pushed() { r.pushed.Inc() }

// Popped increments the popped counter.
func (r *Recorder) Popped() { r.popped.Inc() }

// SpuriousNone increments the spurious-None counter.
func (r *Recorder) SpuriousNone() { r.spuriousNone.Inc() }

// Contended increments the lock-contention counter.
func (r *Recorder) Contended() { r.contended.Inc() }

// ShardLen sets the gauge for one shard's resident element count.
func (r *Recorder) ShardLen(shard int, n int) {
	r.shardLen.WithLabelValues(strconv.Itoa(shard)).Set(float64(n))
}

// Compile-time check: ensure Recorder implements pq.Metrics.
var _ pq.Metrics = (*Recorder)(nil)
