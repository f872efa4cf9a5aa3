// Package vector implements a growable array over raw typed memory.
package vector

import (
	"github.com/pkg/errors"

	"github.com/pavanmanishd/vector/internal/rawmem"
)

const (
	// GrowthFactor multiplies the capacity whenever an append or insert
	// needs one more slot than the vector has.
	GrowthFactor = 2
	// MinCapacity is the capacity of the first block grown from empty.
	MinCapacity = 1
)

var (
	// ErrAllocation is returned when a block request cannot be satisfied.
	ErrAllocation = rawmem.ErrAllocation
	// ErrNotCopyable is returned when a copy is requested for an element
	// type that implements NoCopier.
	ErrNotCopyable = errors.New("vector: element type is not copyable")
)

// Vector is a growable array of T. Slots [0, Size()) hold live values,
// slots [Size(), Capacity()) are unused.
//
// The zero Vector is empty and ready to use. A Vector must not be copied
// after first use; use Clone, Move or Swap instead. Not goroutine-safe.
type Vector[T any] struct {
	buf  rawmem.Buffer[T]
	size int
	ops  *elemOps[T]
}

// New returns an empty vector. It allocates no slots.
func New[T any]() *Vector[T] {
	return &Vector[T]{ops: opsFor[T]()}
}

// NewWithCapacity returns an empty vector with room for capacity elements.
// If capacity <= 0, no slots are allocated.
func NewWithCapacity[T any](capacity int) (*Vector[T], error) {
	v := New[T]()
	if capacity > 0 {
		if err := v.Reserve(capacity); err != nil {
			return nil, err
		}
	}
	return v, nil
}

// NewSized returns a vector of n default-constructed elements with
// Capacity() == n. If any construction fails, the elements built so far are
// destroyed and the error is returned.
func NewSized[T any](n int) (*Vector[T], error) {
	v := New[T]()
	if n <= 0 {
		return v, nil
	}
	buf, err := rawmem.Make[T](n)
	if err != nil {
		logAllocFailure(n, err)
		return nil, err
	}
	if err := v.ops.constructN(&buf, 0, n); err != nil {
		buf.Release()
		return nil, err
	}
	v.buf.Swap(&buf)
	v.size = n
	return v, nil
}

// Move returns a vector that owns src's elements and leaves src empty.
// No element is touched.
func Move[T any](src *Vector[T]) *Vector[T] {
	v := New[T]()
	v.Swap(src)
	return v
}

func (v *Vector[T]) elem() *elemOps[T] {
	if v.ops == nil {
		v.ops = opsFor[T]()
	}
	return v.ops
}

// Size returns the number of live elements.
func (v *Vector[T]) Size() int {
	return v.size
}

// Capacity returns the number of slots in the current block.
func (v *Vector[T]) Capacity() int {
	return v.buf.Capacity()
}

// Empty reports whether the vector holds no elements.
func (v *Vector[T]) Empty() bool {
	return v.size == 0
}

// At returns a pointer to element i, which must be in [0, Size()).
// The pointer is invalidated by any operation that reallocates or shifts
// the element.
func (v *Vector[T]) At(i int) *T {
	rawmem.Assert(i >= 0 && i < v.size, "vector: index out of range")
	return v.buf.Slot(i)
}

// Get returns a copy of element i, which must be in [0, Size()).
func (v *Vector[T]) Get(i int) T {
	return *v.At(i)
}

// Front returns a pointer to the first element. The vector must not be empty.
func (v *Vector[T]) Front() *T {
	return v.At(0)
}

// Back returns a pointer to the last element. The vector must not be empty.
func (v *Vector[T]) Back() *T {
	return v.At(v.size - 1)
}

// Swap exchanges contents with other in O(1).
func (v *Vector[T]) Swap(other *Vector[T]) {
	v.size, other.size = other.size, v.size
	v.buf.Swap(&other.buf)
}

// MoveAssign destroys v's elements and takes over rhs's elements, leaving
// rhs empty. Assigning a vector to itself does nothing.
func (v *Vector[T]) MoveAssign(rhs *Vector[T]) {
	if v == rhs {
		return
	}
	v.Clear()
	v.Swap(rhs)
}

// PopBack destroys the last element. It does nothing on an empty vector.
func (v *Vector[T]) PopBack() {
	if v.size == 0 {
		return
	}
	v.size--
	v.elem().destroy(v.buf.Slot(v.size))
}

// Clear destroys all elements and keeps the capacity.
func (v *Vector[T]) Clear() {
	v.elem().destroyN(&v.buf, 0, v.size)
	v.size = 0
}

// Release destroys all elements and drops the block. The vector is empty
// afterwards and may be reused.
func (v *Vector[T]) Release() {
	v.Clear()
	v.buf.Release()
}
