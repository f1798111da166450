package alloc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTracking(t *testing.T) {
	tr := NewTracking(nil)

	b1, err := tr.Allocate(10)
	require.NoError(t, err)
	b2, err := tr.Allocate(20)
	require.NoError(t, err)

	stats := tr.Stats()
	assert.Equal(t, uint64(2), stats.Allocs)
	assert.Equal(t, 2, stats.LiveBuffers)
	assert.Equal(t, int64(30), stats.LiveBytes)

	tr.Deallocate(b1, 10)
	tr.Deallocate(b2, 20)

	stats = tr.Stats()
	assert.Equal(t, uint64(2), stats.Frees)
	assert.Zero(t, stats.LiveBuffers)
	assert.Zero(t, stats.LiveBytes)
	assert.Equal(t, int64(30), stats.PeakBytes)
	assert.NoError(t, tr.Err())
}

func TestTracking_Misuse(t *testing.T) {
	t.Run("double free", func(t *testing.T) {
		tr := NewTracking(nil)
		buf, err := tr.Allocate(8)
		require.NoError(t, err)

		tr.Deallocate(buf, 8)
		tr.Deallocate(buf, 8)

		assert.ErrorIs(t, tr.Err(), ErrDoubleFree)
		assert.Equal(t, uint64(1), tr.Stats().Frees)
	})

	t.Run("foreign free", func(t *testing.T) {
		tr := NewTracking(nil)
		tr.Deallocate(make([]byte, 4), 4)
		assert.ErrorIs(t, tr.Err(), ErrForeignFree)
	})

	t.Run("size mismatch", func(t *testing.T) {
		tr := NewTracking(nil)
		buf, err := tr.Allocate(8)
		require.NoError(t, err)

		tr.Deallocate(buf, 4)
		assert.ErrorIs(t, tr.Err(), ErrSizeMismatch)
		assert.Zero(t, tr.Stats().LiveBytes)
	})

	t.Run("failure counted", func(t *testing.T) {
		tr := NewTracking(nil)
		_, err := tr.Allocate(-5)
		assert.ErrorIs(t, err, ErrOutOfMemory)
		assert.Equal(t, uint64(1), tr.Stats().Failures)
	})
}
