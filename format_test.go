package bitvec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	t.Run("RoundTrip", func(t *testing.T) {
		for _, s := range []string{"", "0", "1", "10110", "111100001111000011"} {
			v, err := Parse(s)
			require.NoError(t, err)
			assert.Equal(t, s, v.String())
			assert.Equal(t, uint64(len(s)), v.Size())
		}
	})

	t.Run("InvalidCharacter", func(t *testing.T) {
		_, err := Parse("10x1")
		require.ErrorIs(t, err, ErrInvalidFormat)
		assert.Contains(t, err.Error(), "position 2")
	})

	t.Run("PatternIgnored", func(t *testing.T) {
		v, err := Parse("0000", WithPattern(0xFF))
		require.NoError(t, err)
		assert.Equal(t, "0000", v.String())
	})

	t.Run("Ceiling", func(t *testing.T) {
		_, err := Parse("11111", WithMaxSize(4))
		assert.ErrorIs(t, err, ErrInvalidLength)
	})
}
