package vector

import "github.com/pavanmanishd/vector/internal/rawmem"

// Range operations over buffer slots. Each one either completes or leaves
// the destination slots it touched back in the zero state.

// constructN default-constructs the zeroed slots [from, from+n) of b.
func (o *elemOps[T]) constructN(b *rawmem.Buffer[T], from, n int) error {
	if !o.init {
		return nil
	}
	for i := 0; i < n; i++ {
		if err := o.construct(b.Slot(from + i)); err != nil {
			o.destroyN(b, from, i)
			return err
		}
	}
	return nil
}

// destroyN destroys the live values in [from, from+n) of b.
func (o *elemOps[T]) destroyN(b *rawmem.Buffer[T], from, n int) {
	if o.destroyer {
		for i := 0; i < n; i++ {
			any(b.Slot(from + i)).(Destroyer).Destroy()
		}
	}
	b.Clear(from, n)
}

// copyN copy-constructs n zeroed slots of dst from live slots of src.
func (o *elemOps[T]) copyN(dst *rawmem.Buffer[T], dstFrom int, src *rawmem.Buffer[T], srcFrom, n int) error {
	if !o.copyable {
		return ErrNotCopyable
	}
	if !o.copier {
		copy(dst.View(dstFrom, n), src.View(srcFrom, n))
		return nil
	}
	for i := 0; i < n; i++ {
		if err := o.copyInto(dst.Slot(dstFrom+i), src.Slot(srcFrom+i)); err != nil {
			o.destroyN(dst, dstFrom, i)
			return err
		}
	}
	return nil
}

// relocateN constructs n zeroed slots of dst from live slots of src, by move
// or copy per preferMove. The source values stay live (moved-from when moved)
// and remain the caller's to destroy.
func (o *elemOps[T]) relocateN(dst *rawmem.Buffer[T], dstFrom int, src *rawmem.Buffer[T], srcFrom, n int) error {
	if !o.preferMove {
		return o.copyN(dst, dstFrom, src, srcFrom, n)
	}
	if !o.mover && !o.tryMover {
		copy(dst.View(dstFrom, n), src.View(srcFrom, n))
		src.Clear(srcFrom, n)
		return nil
	}
	for i := 0; i < n; i++ {
		if err := o.moveInto(dst.Slot(dstFrom+i), src.Slot(srcFrom+i)); err != nil {
			o.destroyN(dst, dstFrom, i)
			return err
		}
	}
	return nil
}
