// Package rawmem owns blocks of element slots whose liveness is tracked by
// the caller. A Buffer never constructs, copies or destroys values; it only
// hands out slot addresses inside the block it owns.
package rawmem

import "unsafe"

// Buffer owns a block of Capacity() slots of T.
//
// Slots hold T's zero value until the owner places a value into them, and
// the owner must return them to the zero value (see Clear) once the value is
// destroyed. Which slots are live is unknown to the Buffer.
//
// A Buffer must not be copied: two copies would claim the same block.
// Ownership moves only through Swap.
type Buffer[T any] struct {
	base     unsafe.Pointer // first slot, nil when capacity == 0
	capacity int
}

// Make reserves a block of capacity slots. Zero capacity allocates nothing.
// An unsatisfiable request fails with an error matching ErrAllocation.
func Make[T any](capacity int) (Buffer[T], error) {
	base, err := allocate[T](capacity)
	if err != nil {
		return Buffer[T]{}, err
	}
	return Buffer[T]{base: base, capacity: capacity}, nil
}

// Release drops the block without touching its contents. Any value still
// placed in the block must have been destroyed by the owner beforehand.
// The Buffer is empty afterwards and may be reused through Swap.
func (b *Buffer[T]) Release() {
	if b.base != nil {
		release(b.capacity * SlotSize[T]())
	}
	b.base = nil
	b.capacity = 0
}

// Slot returns the address of slot i. The slot either holds a live value or
// is a valid target for placing one; i must be in [0, Capacity()).
func (b *Buffer[T]) Slot(i int) *T {
	Assert(i >= 0 && i < b.capacity, "rawmem: slot index out of range")
	return (*T)(unsafe.Add(b.base, uintptr(i)*unsafe.Sizeof(*new(T))))
}

// Offset returns the address n slots past the start of the block.
// n == Capacity() yields the one-past-end address, which may be compared
// but never dereferenced.
func (b *Buffer[T]) Offset(n int) unsafe.Pointer {
	Assert(n >= 0 && n <= b.capacity, "rawmem: offset out of range")
	if n == 0 {
		return b.base
	}
	return unsafe.Add(b.base, uintptr(n)*unsafe.Sizeof(*new(T)))
}

// View returns the n slots starting at from as a slice whose capacity equals
// its length. The slice aliases the block and is valid until the block is
// released or swapped away.
func (b *Buffer[T]) View(from, n int) []T {
	Assert(n >= 0 && from >= 0 && from+n <= b.capacity, "rawmem: view out of range")
	if n == 0 {
		return nil
	}
	return unsafe.Slice((*T)(b.Offset(from)), n)
}

// Clear returns n slots starting at from to the zero value so the block no
// longer keeps their referents reachable.
func (b *Buffer[T]) Clear(from, n int) {
	if n > 0 {
		clear(b.View(from, n))
	}
}

// Swap exchanges blocks and capacities with o.
func (b *Buffer[T]) Swap(o *Buffer[T]) {
	b.base, o.base = o.base, b.base
	b.capacity, o.capacity = o.capacity, b.capacity
}

// Capacity returns the number of slots in the block.
func (b *Buffer[T]) Capacity() int {
	return b.capacity
}

// SlotSize returns the size in bytes of one slot of T.
func SlotSize[T any]() int {
	var zero T
	return int(unsafe.Sizeof(zero))
}
