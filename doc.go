// Package vector implements a growable array built directly on raw typed
// memory instead of on Go's slice growth.
//
// # Overview
//
// A Vector owns one block of element slots plus a logical size. Slots below
// the size hold live elements; the rest are unused. The vector decides when
// elements are constructed, relocated and destroyed, which lets element
// types with fallible or resource-owning lifecycles live in it safely:
//
//   - Amortized O(1) append, with capacity doubling from 1
//   - Insert and erase at any position
//   - Explicit capacity control with Reserve and ShrinkToFit
//   - Rollback on failure for growth, Reserve, Clone and large Assign
//
// # Basic Usage
//
//	v := vector.New[int]()
//	defer v.Release()
//
//	for i := 0; i < 3; i++ {
//		if err := v.PushBack(i); err != nil {
//			return err
//		}
//	}
//	fmt.Println(v.Size(), v.Capacity()) // 3 4
//
//	for _, p := range v.All() {
//		*p *= 10 // elements are updated in place
//	}
//
// # Element Lifecycle
//
// Plain Go types need nothing: the zero value is the default, copies and
// moves are value assignments. A type may implement any of Initializer,
// Copier, Assigner, Mover, TryMover, Destroyer and NoCopier on its pointer
// type to take over the matching step. The hooks are detected once per
// element type.
//
// Relocation (growth, Reserve) and shifting (Insert, Erase) move elements
// when moves cannot fail or the type is move-only, and copy them otherwise,
// so a failing copy leaves the original elements untouched.
//
// # Failure Guarantees
//
// Errors from element hooks are returned unchanged. ErrAllocation reports a
// block that could not be obtained.
//
//   - Rolled back on failure: NewSized, Clone, Reserve, ShrinkToFit, and
//     PushBack, EmplaceBack, Emplace and Insert when they grow; Assign when
//     rhs does not fit in the current capacity
//   - Valid but possibly partially updated: Assign into existing capacity,
//     Emplace and Insert without growth, Erase
//   - Never fail: Move, MoveAssign, Swap, PopBack, Clear, Release
//
// # Invalidation
//
// Pointers from At, Front, Back, All and Slice are plain addresses into the
// block. Any operation that reallocates invalidates all of them; Insert,
// Emplace and Erase without growth invalidate those at or after the
// position; PopBack and shrinking Resize invalidate the removed tail.
// Nothing detects stale pointers.
//
// # Important Notes
//
//   - A Vector is not goroutine-safe
//   - A Vector must not be copied by value; use Clone, Move or Swap
//   - Out-of-range indexes are caller errors, checked only when built with
//     the vectordebug tag
//
// # Metrics and Monitoring
//
//	m := v.Metrics()
//	fmt.Printf("Utilization: %.2f%%\n", m.Utilization*100)
//
//	prometheus.MustRegister(vector.NewCollector())
package vector
