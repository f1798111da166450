package bitvec

import (
	"errors"
	"strings"
	"testing"

	"github.com/hupe1980/bitvec/alloc"
	"github.com/hupe1980/bitvec/resource"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestNextCapacity(t *testing.T) {
	tests := []struct {
		cur, need, ceiling, want int
	}{
		{0, 1, MaxCapacity, GrowthStep},
		{8, 9, MaxCapacity, 16},
		{16, 17, MaxCapacity, 32},
		{1024, 1025, MaxCapacity, 2048},
		{MidCapacity, MidCapacity + 1, MaxCapacity, MidCapacity + MidCapacity/2},
		{0, 1, 3, 3},
		{16, 17, 20, 20},
		{0, 40, MaxCapacity, 40},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, nextCapacity(tt.cur, tt.need, tt.ceiling), "cur=%d need=%d", tt.cur, tt.need)
	}
}

func TestPushBack(t *testing.T) {
	t.Run("Monotonic", func(t *testing.T) {
		v := New()
		for k := uint64(1); k <= 300; k++ {
			require.NoError(t, v.PushBack(true))
			assert.Equal(t, k, v.Size())
			assert.Equal(t, k, v.Count())
			assert.GreaterOrEqual(t, v.Capacity(), bytesFor(k))
		}
	})

	t.Run("GrowthSequence", func(t *testing.T) {
		v := New()
		caps := map[uint64]int{}
		for k := uint64(1); k <= 257; k++ {
			require.NoError(t, v.PushBack(k%2 == 0))
			caps[k] = v.Capacity()
		}
		assert.Equal(t, 8, caps[1])
		assert.Equal(t, 8, caps[64])
		assert.Equal(t, 16, caps[65])
		assert.Equal(t, 16, caps[128])
		assert.Equal(t, 32, caps[129])
		assert.Equal(t, 32, caps[256])
		assert.Equal(t, 64, caps[257])
	})

	t.Run("Ceiling", func(t *testing.T) {
		v := New(WithMaxSize(20))
		for range 20 {
			require.NoError(t, v.PushBack(true))
		}
		assert.Equal(t, 3, v.Capacity())

		err := v.PushBack(false)
		require.ErrorIs(t, err, ErrCapacityExceeded)

		var le *LengthError
		require.ErrorAs(t, err, &le)
		assert.Equal(t, uint64(21), le.Requested)
		assert.Equal(t, uint64(20), le.Max)

		assert.Equal(t, uint64(20), v.Size())
		back, err := v.Back()
		require.NoError(t, err)
		assert.True(t, back)
	})
}

func TestPopBack(t *testing.T) {
	v := mustParse(t, "1101")
	capBefore := v.Capacity()

	var got []bool
	for !v.Empty() {
		bit, err := v.PopBack()
		require.NoError(t, err)
		got = append(got, bit)
	}
	assert.Equal(t, []bool{true, false, true, true}, got)
	assert.Equal(t, capBefore, v.Capacity())

	_, err := v.PopBack()
	assert.ErrorIs(t, err, ErrEmptyContainer)
}

func TestReserve(t *testing.T) {
	t.Run("Grow", func(t *testing.T) {
		v := mustParse(t, "101")
		require.NoError(t, v.Reserve(5))
		assert.Equal(t, 6, v.Capacity())
		assert.Equal(t, "101", v.String())
	})

	t.Run("Zero", func(t *testing.T) {
		v := New()
		require.NoError(t, v.Reserve(0))
		assert.Equal(t, 0, v.Capacity())
	})

	t.Run("Negative", func(t *testing.T) {
		assert.ErrorIs(t, New().Reserve(-1), ErrInvalidLength)
	})

	t.Run("PastCeiling", func(t *testing.T) {
		v := New(WithMaxSize(16))
		require.NoError(t, v.Reserve(2))

		err := v.Reserve(1)
		require.ErrorIs(t, err, ErrCapacityExceeded)
		assert.Equal(t, 2, v.Capacity())

		assert.ErrorIs(t, New().Reserve(MaxCapacity+1), ErrCapacityExceeded)
	})
}

func TestResize(t *testing.T) {
	t.Run("GrowWithFill", func(t *testing.T) {
		v, err := NewSize(5)
		require.NoError(t, err)

		require.NoError(t, v.Resize(12, true))
		assert.Equal(t, "00000"+"1111111", v.String())
		assert.Equal(t, 2, v.Capacity())
	})

	t.Run("ShrinkThenGrowClearsTail", func(t *testing.T) {
		v := mustParse(t, "00000111")

		require.NoError(t, v.Resize(3, true))
		assert.Equal(t, "000", v.String())
		assert.Equal(t, 1, v.Capacity())

		require.NoError(t, v.Resize(10, false))
		assert.Equal(t, "0000000000", v.String())
		assert.Equal(t, uint64(0), v.Count())
	})

	t.Run("ExactCapacity", func(t *testing.T) {
		v := New()
		for range 9 {
			require.NoError(t, v.PushBack(true))
		}
		assert.Equal(t, 8, v.Capacity())

		require.NoError(t, v.Resize(9, false))
		assert.Equal(t, 2, v.Capacity())
		assert.Equal(t, strings.Repeat("1", 9), v.String())
	})

	t.Run("Zero", func(t *testing.T) {
		v := mustParse(t, "1111")
		require.NoError(t, v.Resize(0, true))
		assert.True(t, v.Empty())
		assert.Equal(t, 0, v.Capacity())
	})

	t.Run("TooLarge", func(t *testing.T) {
		v := mustParse(t, "1")
		assert.ErrorIs(t, v.Resize(MaxSize+1, false), ErrInvalidLength)
		assert.Equal(t, "1", v.String())
	})
}

func TestShrinkToFit(t *testing.T) {
	m := &BasicMetricsCollector{}
	v := New(WithMetrics(m))
	for range 70 {
		require.NoError(t, v.PushBack(true))
	}
	before := v.String()
	assert.Equal(t, 16, v.Capacity())

	require.NoError(t, v.ShrinkToFit())
	assert.Equal(t, 9, v.Capacity())
	shrinks := m.GetStats().ShrinkCount
	allocs := m.GetStats().AllocCount

	require.NoError(t, v.ShrinkToFit())
	assert.Equal(t, 9, v.Capacity())
	assert.Equal(t, shrinks, m.GetStats().ShrinkCount)
	assert.Equal(t, allocs, m.GetStats().AllocCount)
	assert.Equal(t, before, v.String())

	for range 70 {
		_, err := v.PopBack()
		require.NoError(t, err)
	}
	require.NoError(t, v.ShrinkToFit())
	assert.Equal(t, 0, v.Capacity())
}

func TestAllocationFailure(t *testing.T) {
	t.Run("PushBack", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		m := alloc.NewMockAllocator(ctrl)

		gomock.InOrder(
			m.EXPECT().Allocate(8).Return(make([]byte, 8), nil),
			m.EXPECT().Allocate(16).Return(nil, alloc.ErrOutOfMemory),
		)
		m.EXPECT().Deallocate(gomock.Any(), 8).Times(1)

		v := New(WithAllocator(m))
		for i := range 64 {
			require.NoError(t, v.PushBack(i%2 == 0))
		}
		before := v.String()

		err := v.PushBack(true)
		require.ErrorIs(t, err, ErrOutOfMemory)
		assert.Equal(t, uint64(64), v.Size())
		assert.Equal(t, 8, v.Capacity())
		assert.Equal(t, before, v.String())

		v.Clear()
	})

	t.Run("Resize", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		m := alloc.NewMockAllocator(ctrl)

		gomock.InOrder(
			m.EXPECT().Allocate(1).Return(make([]byte, 1), nil),
			m.EXPECT().Allocate(4).Return(nil, errors.Join(alloc.ErrOutOfMemory, errors.New("mapping refused"))),
		)
		m.EXPECT().Deallocate(gomock.Any(), 1).Times(1)

		v := mustParse(t, "101", WithAllocator(m))
		err := v.Resize(32, true)
		require.ErrorIs(t, err, ErrOutOfMemory)
		assert.Equal(t, "101", v.String())
		assert.Equal(t, 1, v.Capacity())

		v.Clear()
	})

	t.Run("Reserve", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		m := alloc.NewMockAllocator(ctrl)
		m.EXPECT().Allocate(10).Return(nil, alloc.ErrOutOfMemory)

		v := New(WithAllocator(m))
		require.ErrorIs(t, v.Reserve(10), ErrOutOfMemory)
		assert.Equal(t, 0, v.Capacity())
	})

	t.Run("ShortBuffer", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		m := alloc.NewMockAllocator(ctrl)
		m.EXPECT().Allocate(2).Return(make([]byte, 1), nil)
		m.EXPECT().Deallocate(gomock.Any(), 2).Times(1)

		_, err := NewSize(16, WithAllocator(m))
		assert.ErrorIs(t, err, ErrOutOfMemory)
	})

	t.Run("Limited", func(t *testing.T) {
		m := &BasicMetricsCollector{}
		la := alloc.NewLimited(nil, resource.NewController(resource.Config{MemoryLimitBytes: 20}))
		v := New(WithAllocator(la), WithMetrics(m))

		// Growing 8 -> 16 holds both buffers while copying.
		for range 64 {
			require.NoError(t, v.PushBack(true))
		}
		err := v.PushBack(true)
		require.ErrorIs(t, err, ErrOutOfMemory)
		assert.Equal(t, uint64(64), v.Size())
		assert.Equal(t, int64(1), m.GetStats().AllocErrors)

		v.Clear()
		assert.Equal(t, int64(0), la.Controller().MemoryUsage())
	})
}
