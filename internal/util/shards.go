package util

import "runtime"

// ReasonableQueueCount picks the default shard ("subqueue") count: 4x the
// number of logical CPUs, per the striped queue's construction default.
// Unlike a hash-sharded map, shard selection here is by uniform random
// sampling rather than masking a hash, so there is no need to round the
// result to a power of two.
func ReasonableQueueCount() int {
	p := runtime.GOMAXPROCS(0)
	if p < 1 {
		p = 1
	}
	return 4 * p
}
