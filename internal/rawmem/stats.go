package rawmem

import "go.uber.org/atomic"

// stats is shared by every Buffer in the process.
var stats struct {
	allocations atomic.Int64
	releases    atomic.Int64
	failures    atomic.Int64
	bytes       atomic.Int64
}

// Stats is a snapshot of process-wide block accounting.
type Stats struct {
	Allocations int64 // Blocks handed out by Make
	Releases    int64 // Blocks dropped by Release
	Failures    int64 // Requests that failed with ErrAllocation
	BytesInUse  int64 // Bytes held by blocks not yet released
}

// BlocksInUse returns the number of blocks allocated but not yet released.
func (s Stats) BlocksInUse() int64 {
	return s.Allocations - s.Releases
}

// ReadStats returns the current process-wide counters.
func ReadStats() Stats {
	return Stats{
		Allocations: stats.allocations.Load(),
		Releases:    stats.releases.Load(),
		Failures:    stats.failures.Load(),
		BytesInUse:  stats.bytes.Load(),
	}
}
