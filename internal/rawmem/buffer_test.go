package rawmem

import (
	"testing"
	"unsafe"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMake(t *testing.T) {
	tests := []struct {
		name     string
		capacity int
		nilBase  bool
	}{
		{"zero capacity", 0, true},
		{"single slot", 1, false},
		{"many slots", 1024, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := Make[int64](tt.capacity)
			require.NoError(t, err)
			defer b.Release()

			assert.Equal(t, tt.capacity, b.Capacity())
			assert.Equal(t, tt.nilBase, b.base == nil)
		})
	}
}

func TestMakeSlotsStartZeroed(t *testing.T) {
	b, err := Make[string](8)
	require.NoError(t, err)
	defer b.Release()

	for i := 0; i < b.Capacity(); i++ {
		require.Empty(t, *b.Slot(i))
	}
}

func TestMakeFailure(t *testing.T) {
	before := ReadStats()

	_, err := Make[int64](-1)
	require.Error(t, err)
	require.True(t, errors.Is(err, ErrAllocation))

	// Byte size overflows MaxBytes.
	_, err = Make[int64](MaxBytes/8 + 1)
	require.ErrorIs(t, err, ErrAllocation)

	after := ReadStats()
	assert.Equal(t, before.Failures+2, after.Failures)
	assert.Equal(t, before.Allocations, after.Allocations)
}

func TestMakeRespectsMaxBytes(t *testing.T) {
	old := MaxBytes
	MaxBytes = 64
	defer func() { MaxBytes = old }()

	b, err := Make[int64](8)
	require.NoError(t, err)
	b.Release()

	_, err = Make[int64](9)
	require.ErrorIs(t, err, ErrAllocation)
	require.Contains(t, err.Error(), "9 slots of 8 bytes")
}

func TestMakeZeroSizedSlots(t *testing.T) {
	b, err := Make[struct{}](1 << 20)
	require.NoError(t, err)
	defer b.Release()

	require.Equal(t, 1<<20, b.Capacity())
	require.Equal(t, unsafe.Pointer(b.Slot(0)), unsafe.Pointer(b.Slot(1<<20-1)))
}

func TestSlotAndOffset(t *testing.T) {
	b, err := Make[int32](4)
	require.NoError(t, err)
	defer b.Release()

	for i := 0; i < 4; i++ {
		*b.Slot(i) = int32(i * 10)
	}
	for i := 0; i < 4; i++ {
		require.Equal(t, int32(i*10), *b.Slot(i))
		require.Equal(t, unsafe.Pointer(b.Slot(i)), b.Offset(i))
	}

	end := uintptr(b.Offset(4))
	start := uintptr(b.Offset(0))
	assert.Equal(t, uintptr(4*SlotSize[int32]()), end-start)
}

func TestViewAndClear(t *testing.T) {
	b, err := Make[*int](4)
	require.NoError(t, err)
	defer b.Release()

	x := 7
	for i := 0; i < 4; i++ {
		*b.Slot(i) = &x
	}

	v := b.View(1, 2)
	require.Len(t, v, 2)
	require.Equal(t, 2, cap(v))
	require.Same(t, &x, v[0])

	b.Clear(1, 2)
	assert.Nil(t, *b.Slot(1))
	assert.Nil(t, *b.Slot(2))
	assert.Same(t, &x, *b.Slot(0))
	assert.Same(t, &x, *b.Slot(3))

	assert.Nil(t, b.View(4, 0))
	b.Clear(4, 0)
}

func TestSwap(t *testing.T) {
	a, err := Make[int](2)
	require.NoError(t, err)
	b, err := Make[int](5)
	require.NoError(t, err)

	*a.Slot(0) = 1
	*b.Slot(0) = 2
	aBase, bBase := a.base, b.base

	a.Swap(&b)
	assert.Equal(t, 5, a.Capacity())
	assert.Equal(t, 2, b.Capacity())
	assert.Equal(t, bBase, a.base)
	assert.Equal(t, aBase, b.base)
	assert.Equal(t, 2, *a.Slot(0))
	assert.Equal(t, 1, *b.Slot(0))

	var empty Buffer[int]
	a.Swap(&empty)
	assert.Equal(t, 0, a.Capacity())
	assert.Equal(t, 5, empty.Capacity())

	a.Release()
	b.Release()
	empty.Release()
}

func TestReleaseAccounting(t *testing.T) {
	before := ReadStats()

	b, err := Make[int64](16)
	require.NoError(t, err)

	mid := ReadStats()
	assert.Equal(t, before.Allocations+1, mid.Allocations)
	assert.Equal(t, before.BytesInUse+16*8, mid.BytesInUse)
	assert.Equal(t, before.BlocksInUse()+1, mid.BlocksInUse())

	b.Release()
	b.Release() // second release is a no-op

	after := ReadStats()
	assert.Equal(t, before.Releases+1, after.Releases)
	assert.Equal(t, before.BytesInUse, after.BytesInUse)
	assert.Equal(t, 0, b.Capacity())
}
