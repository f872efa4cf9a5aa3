package vector

import (
	"reflect"
	"sync"
)

// Element lifecycle hooks. An element type opts into each hook by
// implementing it on its pointer type; an absent hook falls back to plain Go
// value semantics. Hooks are detected once per element type.

// Initializer is implemented by element types whose default construction is
// more than the zero value. Init is called on a zeroed slot; when it fails the
// slot is reset to the zero value and is not considered live.
type Initializer interface {
	Init() error
}

// Copier is implemented by element types whose copy construction may do
// work or fail. CopyFrom is called on a zeroed slot.
type Copier[T any] interface {
	CopyFrom(src *T) error
}

// Assigner is implemented by element types with their own copy assignment.
// Without it, copy assignment copy-constructs a temporary, destroys the
// target and transfers the temporary into it.
type Assigner[T any] interface {
	AssignFrom(src *T) error
}

// Mover is implemented by element types whose move construction transfers
// ownership and cannot fail. MoveFrom is called on a zeroed slot and must
// leave src in a state Destroy accepts.
type Mover[T any] interface {
	MoveFrom(src *T)
}

// TryMover is implemented by element types whose move construction may fail.
// Mover takes precedence when a type implements both.
type TryMover[T any] interface {
	TryMoveFrom(src *T) error
}

// Destroyer is implemented by element types that release resources when
// they stop being live. Destroy must not fail and must accept the zero value
// and any moved-from state.
type Destroyer interface {
	Destroy()
}

// NoCopier marks an element type as move-only: it is neither copy
// constructible nor copy assignable.
type NoCopier interface {
	NoCopy()
}

// elemOps is the capability record of one element type. Values built in a
// temporary holder are transferred into their final slot bitwise; the
// holder is then discarded without Destroy.
type elemOps[T any] struct {
	init      bool
	copier    bool
	assigner  bool
	mover     bool
	tryMover  bool
	destroyer bool
	copyable  bool
	// moveNoFail holds when moves cannot fail: MoveFrom, or no move hook.
	moveNoFail bool
	// preferMove selects move over copy for relocation and shifting.
	preferMove bool
	// plain means no hooks at all, so relocation is a block copy.
	plain bool
}

var opsCache sync.Map // reflect.Type -> *elemOps[T]

func opsFor[T any]() *elemOps[T] {
	key := reflect.TypeFor[T]()
	if o, ok := opsCache.Load(key); ok {
		return o.(*elemOps[T])
	}
	o, _ := opsCache.LoadOrStore(key, newElemOps[T]())
	return o.(*elemOps[T])
}

func newElemOps[T any]() *elemOps[T] {
	var p any = (*T)(nil)
	o := &elemOps[T]{}
	_, o.init = p.(Initializer)
	_, o.copier = p.(Copier[T])
	_, o.assigner = p.(Assigner[T])
	_, o.mover = p.(Mover[T])
	_, o.tryMover = p.(TryMover[T])
	_, o.destroyer = p.(Destroyer)
	_, noCopy := p.(NoCopier)

	o.copyable = !noCopy
	o.moveNoFail = o.mover || !o.tryMover
	o.preferMove = o.moveNoFail || !o.copyable
	o.plain = !o.init && !o.copier && !o.assigner && !o.mover && !o.tryMover && !o.destroyer
	return o
}

// construct default-constructs the zeroed slot p.
func (o *elemOps[T]) construct(p *T) error {
	if !o.init {
		return nil
	}
	if err := any(p).(Initializer).Init(); err != nil {
		reset(p)
		return err
	}
	return nil
}

// emplace constructs the zeroed slot p with fn, or default-constructs it
// when fn is nil.
func (o *elemOps[T]) emplace(p *T, fn func(*T) error) error {
	if fn == nil {
		return o.construct(p)
	}
	if err := fn(p); err != nil {
		reset(p)
		return err
	}
	return nil
}

// copyInto copy-constructs the zeroed slot dst from src.
func (o *elemOps[T]) copyInto(dst, src *T) error {
	if !o.copyable {
		return ErrNotCopyable
	}
	if !o.copier {
		*dst = *src
		return nil
	}
	if err := any(dst).(Copier[T]).CopyFrom(src); err != nil {
		reset(dst)
		return err
	}
	return nil
}

// moveInto move-constructs the zeroed slot dst from src.
func (o *elemOps[T]) moveInto(dst, src *T) error {
	switch {
	case o.mover:
		any(dst).(Mover[T]).MoveFrom(src)
	case o.tryMover:
		if err := any(dst).(TryMover[T]).TryMoveFrom(src); err != nil {
			reset(dst)
			return err
		}
	default:
		*dst = *src
		reset(src)
	}
	return nil
}

// relocateInto constructs dst from src by move or copy per preferMove.
func (o *elemOps[T]) relocateInto(dst, src *T) error {
	if o.preferMove {
		return o.moveInto(dst, src)
	}
	return o.copyInto(dst, src)
}

// destroy ends the lifetime of the live value at p and zeroes the slot.
func (o *elemOps[T]) destroy(p *T) {
	if o.destroyer {
		any(p).(Destroyer).Destroy()
	}
	reset(p)
}

// copyAssign copy-assigns src over the live value dst. On failure dst keeps
// a valid value.
func (o *elemOps[T]) copyAssign(dst, src *T) error {
	if !o.copyable {
		return ErrNotCopyable
	}
	if o.assigner {
		return any(dst).(Assigner[T]).AssignFrom(src)
	}
	if !o.copier && !o.destroyer {
		*dst = *src
		return nil
	}
	var tmp T
	if err := o.copyInto(&tmp, src); err != nil {
		return err
	}
	o.destroy(dst)
	*dst = tmp
	return nil
}

// moveAssign move-assigns src over the live value dst. A failing move is
// built in a holder first so dst survives the failure.
func (o *elemOps[T]) moveAssign(dst, src *T) error {
	if o.tryMover && !o.mover {
		var tmp T
		if err := o.moveInto(&tmp, src); err != nil {
			return err
		}
		o.destroy(dst)
		*dst = tmp
		return nil
	}
	o.destroy(dst)
	return o.moveInto(dst, src)
}

// shiftAssign assigns src over dst by move or copy per preferMove.
func (o *elemOps[T]) shiftAssign(dst, src *T) error {
	if o.preferMove {
		return o.moveAssign(dst, src)
	}
	return o.copyAssign(dst, src)
}

func reset[T any](p *T) {
	var zero T
	*p = zero
}
