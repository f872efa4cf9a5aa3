package vector

import "github.com/pavanmanishd/vector/internal/rawmem"

// Clone returns a deep copy of v with Capacity() == v.Size(). On failure no
// copy is returned and v is untouched. It fails with ErrNotCopyable for
// move-only element types.
func (v *Vector[T]) Clone() (*Vector[T], error) {
	ops := v.elem()
	if !ops.copyable {
		return nil, ErrNotCopyable
	}
	c := New[T]()
	if v.size == 0 {
		return c, nil
	}
	buf, err := rawmem.Make[T](v.size)
	if err != nil {
		logAllocFailure(v.size, err)
		return nil, err
	}
	if err := ops.copyN(&buf, 0, &v.buf, 0, v.size); err != nil {
		buf.Release()
		return nil, err
	}
	c.buf.Swap(&buf)
	c.size = v.size
	return c, nil
}

// Assign replaces v's contents with copies of rhs's elements.
//
// If rhs has more elements than v has capacity, a full copy is built first
// and swapped in, so a failure leaves v as it was. Otherwise the existing
// block is reused: extra elements are copy-constructed at the end or
// surplus ones destroyed, then the common prefix is copy-assigned element by
// element. A failure in that prefix loop leaves v with rhs's size and a mix
// of old and new values. Assigning a vector to itself does nothing.
func (v *Vector[T]) Assign(rhs *Vector[T]) error {
	if v == rhs {
		return nil
	}
	ops := v.elem()
	if !ops.copyable {
		return ErrNotCopyable
	}
	if rhs.size > v.buf.Capacity() {
		c, err := rhs.Clone()
		if err != nil {
			return err
		}
		v.Swap(c)
		c.Release()
		return nil
	}

	if v.size < rhs.size {
		if err := ops.copyN(&v.buf, v.size, &rhs.buf, v.size, rhs.size-v.size); err != nil {
			return err
		}
	} else {
		ops.destroyN(&v.buf, rhs.size, v.size-rhs.size)
	}
	common := min(v.size, rhs.size)
	v.size = rhs.size
	for i := 0; i < common; i++ {
		if err := ops.copyAssign(v.buf.Slot(i), rhs.buf.Slot(i)); err != nil {
			return err
		}
	}
	return nil
}
