package rawmem

import (
	"fmt"
	"math"
	"unsafe"

	"github.com/pkg/errors"
)

// ErrAllocation reports that a block request could not be satisfied.
var ErrAllocation = errors.New("rawmem: allocation failed")

// DefaultMaxBytes is the default upper bound of a single block (1 TiB, or
// half the address space on 32-bit platforms).
const DefaultMaxBytes = min(1<<40, math.MaxInt>>1)

// MaxBytes bounds the size of a single block. Requests above it fail with
// ErrAllocation instead of reaching the runtime, which would abort the
// process on exhaustion rather than return.
var MaxBytes = DefaultMaxBytes

// allocate returns the first slot of a fresh zeroed block of capacity slots.
// The block is typed memory so the garbage collector scans pointers held in
// its slots.
func allocate[T any](capacity int) (base unsafe.Pointer, err error) {
	if capacity == 0 {
		return nil, nil
	}
	size := SlotSize[T]()
	if capacity < 0 || (size > 0 && capacity > MaxBytes/size) {
		stats.failures.Inc()
		return nil, errors.Wrapf(ErrAllocation, "%d slots of %d bytes", capacity, size)
	}

	// make panics (recoverably) on lengths the runtime refuses outright.
	defer func() {
		if r := recover(); r != nil {
			stats.failures.Inc()
			base, err = nil, errors.Wrapf(ErrAllocation, "%d slots of %d bytes: %s", capacity, size, fmt.Sprint(r))
		}
	}()
	block := make([]T, capacity)

	stats.allocations.Inc()
	stats.bytes.Add(int64(capacity * size))
	return unsafe.Pointer(unsafe.SliceData(block)), nil
}

// release accounts for a dropped block of n bytes. The memory itself is
// reclaimed by the garbage collector once nothing references it.
func release(n int) {
	stats.releases.Inc()
	stats.bytes.Sub(int64(n))
}
