package vector

import "github.com/pavanmanishd/vector/internal/rawmem"

// Emplace inserts an element constructed by construct at position pos,
// shifting the elements at and after pos one slot right, and returns pos.
// pos must be in [0, Size()]; pos == Size() appends.
//
// At capacity the vector grows and the insert either completes or leaves the
// vector as it was. Otherwise the new value is built in a one-slot holder
// before the array is touched; if a later shift step fails the vector stays
// valid but may hold a mix of shifted and unshifted values. Pointers and
// positions at or after pos are invalidated.
func (v *Vector[T]) Emplace(pos int, construct func(*T) error) (int, error) {
	rawmem.Assert(pos >= 0 && pos <= v.size, "vector: insert position out of range")
	if pos == v.size {
		return pos, v.emplaceBack(construct)
	}
	if v.size == v.buf.Capacity() {
		return pos, v.growAt(pos, construct)
	}

	ops := v.elem()
	holder, err := rawmem.Make[T](1)
	if err != nil {
		logAllocFailure(1, err)
		return pos, err
	}
	defer holder.Release()
	value := holder.Slot(0)
	if err := ops.emplace(value, construct); err != nil {
		return pos, err
	}

	if err := ops.relocateInto(v.buf.Slot(v.size), v.buf.Slot(v.size-1)); err != nil {
		ops.destroy(value)
		return pos, err
	}
	v.size++

	for i := v.size - 2; i > pos; i-- {
		if err := ops.shiftAssign(v.buf.Slot(i), v.buf.Slot(i-1)); err != nil {
			ops.destroy(value)
			return pos, err
		}
	}
	err = ops.shiftAssign(v.buf.Slot(pos), value)
	ops.destroy(value)
	return pos, err
}

// Insert inserts a copy of value at pos. See Emplace.
func (v *Vector[T]) Insert(pos int, value T) (int, error) {
	ops := v.elem()
	return v.Emplace(pos, func(p *T) error { return ops.copyInto(p, &value) })
}

// InsertMove inserts a value moved out of *value at pos. See Emplace.
func (v *Vector[T]) InsertMove(pos int, value *T) (int, error) {
	ops := v.elem()
	return v.Emplace(pos, func(p *T) error { return ops.moveInto(p, value) })
}

// Erase removes the element at pos, which must be in [0, Size()), shifting
// the later elements one slot left, and returns pos, now the position of the
// element that followed the erased one. If a shift step fails the vector
// stays valid with its size unchanged. Pointers and positions at or after
// pos are invalidated.
func (v *Vector[T]) Erase(pos int) (int, error) {
	rawmem.Assert(pos >= 0 && pos < v.size, "vector: erase position out of range")
	ops := v.elem()
	for i := pos; i < v.size-1; i++ {
		if err := ops.shiftAssign(v.buf.Slot(i), v.buf.Slot(i+1)); err != nil {
			return pos, err
		}
	}
	v.size--
	ops.destroy(v.buf.Slot(v.size))
	return pos, nil
}
