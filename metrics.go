package vector

import "github.com/pavanmanishd/vector/internal/rawmem"

// SlotSize returns the size in bytes of one element slot.
func (v *Vector[T]) SlotSize() int {
	return rawmem.SlotSize[T]()
}

// SizeInUse returns the number of bytes occupied by live elements.
func (v *Vector[T]) SizeInUse() int {
	return v.size * v.SlotSize()
}

// Reserved returns the number of bytes held by the vector's block.
func (v *Vector[T]) Reserved() int {
	return v.buf.Capacity() * v.SlotSize()
}

// Utilization returns the ratio of live elements to capacity (0.0 to 1.0).
// Returns 0.0 if the vector has no capacity.
func (v *Vector[T]) Utilization() float64 {
	capacity := v.buf.Capacity()
	if capacity == 0 {
		return 0
	}
	return float64(v.size) / float64(capacity)
}

// Metrics returns a snapshot of vector statistics.
func (v *Vector[T]) Metrics() Metrics {
	return Metrics{
		Size:        v.size,
		Capacity:    v.buf.Capacity(),
		SlotSize:    v.SlotSize(),
		SizeInUse:   v.SizeInUse(),
		Reserved:    v.Reserved(),
		Utilization: v.Utilization(),
	}
}

// Metrics contains statistical information about a vector.
type Metrics struct {
	Size        int     // Live elements
	Capacity    int     // Slots in the block
	SlotSize    int     // Bytes per slot
	SizeInUse   int     // Bytes occupied by live elements
	Reserved    int     // Bytes held by the block
	Utilization float64 // Ratio of live elements to capacity (0.0-1.0)
}

// MemStats is a snapshot of process-wide block accounting.
type MemStats = rawmem.Stats

// ReadMemStats returns block accounting shared by every vector in the
// process.
func ReadMemStats() MemStats {
	return rawmem.ReadStats()
}
