package bitvec

import (
	"slices"
	"testing"

	"github.com/RoaringBitmap/roaring/v2/roaring64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOnes(t *testing.T) {
	v := mustParse(t, "0100000110000000001")
	assert.Equal(t, []uint64{1, 7, 8, 18}, slices.Collect(v.Ones()))

	assert.Empty(t, slices.Collect(New().Ones()))

	// Stale bits past the end are not reported.
	_, err := v.PopBack()
	require.NoError(t, err)
	assert.Equal(t, []uint64{1, 7, 8}, slices.Collect(v.Ones()))
}

func TestForEach(t *testing.T) {
	v := mustParse(t, "1111")

	var seen []uint64
	v.ForEach(func(i uint64) bool {
		seen = append(seen, i)
		return i < 1
	})
	assert.Equal(t, []uint64{0, 1}, seen)
}

func TestRoaring(t *testing.T) {
	t.Run("RoundTrip", func(t *testing.T) {
		v := mustParse(t, "10010000000000000001011")

		rb := v.ToRoaring()
		assert.Equal(t, v.Count(), rb.GetCardinality())
		assert.True(t, rb.Contains(0))
		assert.True(t, rb.Contains(22))
		assert.False(t, rb.Contains(1))

		back, err := FromRoaring(rb, v.Size())
		require.NoError(t, err)
		assert.True(t, back.Equal(v))
	})

	t.Run("Empty", func(t *testing.T) {
		v, err := FromRoaring(roaring64.New(), 10)
		require.NoError(t, err)
		assert.Equal(t, uint64(10), v.Size())
		assert.True(t, v.None())
	})

	t.Run("OutOfRange", func(t *testing.T) {
		_, err := FromRoaring(roaring64.BitmapOf(3, 10), 10)
		require.ErrorIs(t, err, ErrIndexOutOfRange)
	})

	t.Run("IgnoresPattern", func(t *testing.T) {
		v, err := FromRoaring(roaring64.BitmapOf(2), 8, WithPattern(0xFF))
		require.NoError(t, err)
		assert.Equal(t, "00100000", v.String())
	})
}
