package resource

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestController_Memory(t *testing.T) {
	c := NewController(Config{MemoryLimitBytes: 100})

	require.NoError(t, c.TryAcquireMemory(50))
	assert.Equal(t, int64(50), c.MemoryUsage())
	assert.Equal(t, int64(50), c.MemoryAvailable())

	require.NoError(t, c.TryAcquireMemory(50))
	assert.Equal(t, int64(100), c.MemoryUsage())

	err := c.TryAcquireMemory(1)
	assert.ErrorIs(t, err, ErrMemoryLimitExceeded)
	assert.Equal(t, int64(100), c.MemoryUsage())

	c.ReleaseMemory(50)
	assert.Equal(t, int64(50), c.MemoryUsage())
	assert.Equal(t, int64(100), c.PeakMemoryUsage())

	require.NoError(t, c.TryAcquireMemory(1))
}

func TestController_Unlimited(t *testing.T) {
	c := NewController(Config{})

	require.NoError(t, c.TryAcquireMemory(1<<40))
	assert.Equal(t, int64(1<<40), c.MemoryUsage())
	assert.Equal(t, int64(-1), c.MemoryAvailable())
	assert.Equal(t, int64(0), c.MemoryLimit())

	c.ReleaseMemory(1 << 40)
	assert.Equal(t, int64(0), c.MemoryUsage())
}

func TestController_Nil(t *testing.T) {
	var c *Controller

	assert.NoError(t, c.TryAcquireMemory(10))
	assert.NoError(t, c.AcquireMemory(context.Background(), 10))
	c.ReleaseMemory(10)
	assert.Equal(t, int64(0), c.MemoryUsage())
	assert.Equal(t, int64(0), c.MemoryLimit())
	assert.Equal(t, int64(-1), c.MemoryAvailable())
}

func TestController_AcquireMemory(t *testing.T) {
	t.Run("larger than budget", func(t *testing.T) {
		c := NewController(Config{MemoryLimitBytes: 10})
		err := c.AcquireMemory(context.Background(), 11)
		assert.ErrorIs(t, err, ErrMemoryLimitExceeded)
	})

	t.Run("times out", func(t *testing.T) {
		c := NewController(Config{MemoryLimitBytes: 10})
		require.NoError(t, c.TryAcquireMemory(10))

		ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
		defer cancel()

		err := c.AcquireMemory(ctx, 5)
		assert.ErrorIs(t, err, ErrMemoryLimitExceeded)
		assert.ErrorIs(t, err, context.DeadlineExceeded)
	})

	t.Run("waits for release", func(t *testing.T) {
		c := NewController(Config{MemoryLimitBytes: 10})
		require.NoError(t, c.TryAcquireMemory(10))

		go func() {
			time.Sleep(10 * time.Millisecond)
			c.ReleaseMemory(10)
		}()

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		require.NoError(t, c.AcquireMemory(ctx, 5))
		assert.Equal(t, int64(5), c.MemoryUsage())
	})
}
