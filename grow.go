package vector

import "github.com/pavanmanishd/vector/internal/rawmem"

// Reserve ensures Capacity() >= capacity. When it has to grow, the new block
// holds exactly capacity slots and every element is relocated into it; on
// failure the vector is left as it was. Growth invalidates all pointers and
// positions.
func (v *Vector[T]) Reserve(capacity int) error {
	if capacity <= v.buf.Capacity() {
		return nil
	}
	return v.reallocate(capacity)
}

// ShrinkToFit drops unused capacity. On failure the vector is left as it was.
func (v *Vector[T]) ShrinkToFit() error {
	switch {
	case v.size == v.buf.Capacity():
		return nil
	case v.size == 0:
		v.buf.Release()
		return nil
	}
	return v.reallocate(v.size)
}

// reallocate moves the elements into a fresh block of capacity slots.
func (v *Vector[T]) reallocate(capacity int) error {
	buf, err := rawmem.Make[T](capacity)
	if err != nil {
		logAllocFailure(capacity, err)
		return err
	}
	ops := v.elem()
	if err := ops.relocateN(&buf, 0, &v.buf, 0, v.size); err != nil {
		buf.Release()
		return err
	}
	old := v.buf.Capacity()
	ops.destroyN(&v.buf, 0, v.size)
	v.buf.Swap(&buf)
	buf.Release()
	logRealloc(old, capacity, v.size)
	return nil
}

// growAt moves the elements into a block of GrowthFactor times the capacity,
// leaving a gap at pos. The gap is constructed with fn before any existing
// element is touched, so a failing fn or relocation leaves the vector as it
// was.
func (v *Vector[T]) growAt(pos int, fn func(*T) error) error {
	old := v.buf.Capacity()
	capacity := max(MinCapacity, old*GrowthFactor)
	buf, err := rawmem.Make[T](capacity)
	if err != nil {
		logAllocFailure(capacity, err)
		return err
	}

	ops := v.elem()
	if err := ops.emplace(buf.Slot(pos), fn); err != nil {
		buf.Release()
		return err
	}
	if err := ops.relocateN(&buf, 0, &v.buf, 0, pos); err != nil {
		ops.destroy(buf.Slot(pos))
		buf.Release()
		return err
	}
	if err := ops.relocateN(&buf, pos+1, &v.buf, pos, v.size-pos); err != nil {
		ops.destroyN(&buf, 0, pos+1)
		buf.Release()
		return err
	}

	ops.destroyN(&v.buf, 0, v.size)
	v.buf.Swap(&buf)
	buf.Release()
	v.size++
	logRealloc(old, capacity, v.size)
	return nil
}

// Resize changes the size to n. Growing reserves exactly n slots if needed
// and default-constructs the new elements; if a construction fails the new
// elements are destroyed and the size is unchanged. Shrinking destroys the
// trailing elements.
func (v *Vector[T]) Resize(n int) error {
	rawmem.Assert(n >= 0, "vector: negative size")
	ops := v.elem()
	if n <= v.size {
		ops.destroyN(&v.buf, n, v.size-n)
		v.size = n
		return nil
	}
	if err := v.Reserve(n); err != nil {
		return err
	}
	if err := ops.constructN(&v.buf, v.size, n-v.size); err != nil {
		return err
	}
	v.size = n
	return nil
}

// PushBack appends a copy of value. It fails with ErrNotCopyable for
// move-only element types. At capacity the vector grows; the growth either
// completes or leaves the vector as it was.
func (v *Vector[T]) PushBack(value T) error {
	ops := v.elem()
	return v.emplaceBack(func(p *T) error { return ops.copyInto(p, &value) })
}

// PushBackMove appends a value moved out of *value.
func (v *Vector[T]) PushBackMove(value *T) error {
	ops := v.elem()
	return v.emplaceBack(func(p *T) error { return ops.moveInto(p, value) })
}

// EmplaceBack appends an element constructed in place by construct, which
// receives a zeroed slot. A nil construct default-constructs the element.
// It returns a pointer to the new element.
func (v *Vector[T]) EmplaceBack(construct func(*T) error) (*T, error) {
	if err := v.emplaceBack(construct); err != nil {
		return nil, err
	}
	return v.buf.Slot(v.size - 1), nil
}

func (v *Vector[T]) emplaceBack(fn func(*T) error) error {
	if v.size == v.buf.Capacity() {
		return v.growAt(v.size, fn)
	}
	if err := v.elem().emplace(v.buf.Slot(v.size), fn); err != nil {
		return err
	}
	v.size++
	return nil
}
