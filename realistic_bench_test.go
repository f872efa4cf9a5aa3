package vector

import (
	"testing"
)

// BenchmarkRealisticUsage compares the vector against builtin slices on
// common container workloads.
func BenchmarkRealisticUsage(b *testing.B) {

	// Test 1: Append many small values, then drop them
	b.Run("AppendClear/Vector", func(b *testing.B) {
		v := New[int64]()
		defer v.Release()
		b.ResetTimer()

		for i := 0; i < b.N; i++ {
			for j := 0; j < 100; j++ {
				_ = v.PushBack(int64(j))
			}
			// Clear keeps the block for the next round
			v.Clear()
		}
	})

	b.Run("AppendClear/Builtin", func(b *testing.B) {
		s := make([]int64, 0)
		b.ResetTimer()

		for i := 0; i < b.N; i++ {
			for j := 0; j < 100; j++ {
				s = append(s, int64(j))
			}
			s = s[:0]
		}
	})

	// Test 2: Struct values with in-place construction
	type TestStruct struct {
		ID   int64
		Data [56]byte // Total 64 bytes
	}

	b.Run("StructEmplace/Vector", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			v := New[TestStruct]()
			for j := 0; j < 50; j++ {
				p, _ := v.EmplaceBack(nil)
				p.ID = int64(j)
			}
			v.Release()
		}
	})

	b.Run("StructEmplace/Builtin", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			var s []TestStruct
			for j := 0; j < 50; j++ {
				s = append(s, TestStruct{ID: int64(j)})
			}
			_ = s
		}
	})

	// Test 3: Front insertion and erasure
	b.Run("FrontInsertErase/Vector", func(b *testing.B) {
		v := New[int]()
		defer v.Release()
		_ = v.Reserve(64)
		b.ResetTimer()

		for i := 0; i < b.N; i++ {
			for j := 0; j < 32; j++ {
				_, _ = v.Insert(0, j)
			}
			for v.Size() > 0 {
				_, _ = v.Erase(0)
			}
		}
	})

	b.Run("FrontInsertErase/Builtin", func(b *testing.B) {
		s := make([]int, 0, 64)
		b.ResetTimer()

		for i := 0; i < b.N; i++ {
			for j := 0; j < 32; j++ {
				s = append(s, 0)
				copy(s[1:], s)
				s[0] = j
			}
			for len(s) > 0 {
				s = append(s[:0], s[1:]...)
			}
		}
	})

	// Test 4: Presized construction
	b.Run("Presized/Vector", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			v, _ := NewWithCapacity[int](1000)
			for j := 0; j < 1000; j++ {
				_ = v.PushBack(j)
			}
			v.Release()
		}
	})

	b.Run("Presized/Builtin", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			s := make([]int, 0, 1000)
			for j := 0; j < 1000; j++ {
				s = append(s, j)
			}
			_ = s
		}
	})
}
