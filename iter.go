package vector

import (
	"fmt"
	"iter"
)

// All returns an iterator over positions and pointers to the live elements,
// front to back. Writing through a pointer updates the element. The
// iteration must not grow, insert into or erase from the vector.
func (v *Vector[T]) All() iter.Seq2[int, *T] {
	return func(yield func(int, *T) bool) {
		for i := 0; i < v.size; i++ {
			if !yield(i, v.buf.Slot(i)) {
				return
			}
		}
	}
}

// Backward is like All but walks from back to front.
func (v *Vector[T]) Backward() iter.Seq2[int, *T] {
	return func(yield func(int, *T) bool) {
		for i := v.size - 1; i >= 0; i-- {
			if !yield(i, v.buf.Slot(i)) {
				return
			}
		}
	}
}

// Values returns an iterator over copies of the live elements.
func (v *Vector[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < v.size; i++ {
			if !yield(*v.buf.Slot(i)) {
				return
			}
		}
	}
}

// Slice returns the live elements as a slice aliasing the vector's block,
// with cap equal to len. It is valid until the next operation that
// reallocates or shifts elements.
func (v *Vector[T]) Slice() []T {
	return v.buf.View(0, v.size)
}

// String formats the live elements like a slice.
func (v *Vector[T]) String() string {
	return fmt.Sprint(v.Slice())
}
