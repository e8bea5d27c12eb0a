package conv

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIntToUintptr(t *testing.T) {
	t.Run("valid conversion", func(t *testing.T) {
		v, err := IntToUintptr(4096)
		require.NoError(t, err)
		assert.Equal(t, uintptr(4096), v)
	})

	t.Run("zero", func(t *testing.T) {
		v, err := IntToUintptr(0)
		require.NoError(t, err)
		assert.Equal(t, uintptr(0), v)
	})

	t.Run("max int", func(t *testing.T) {
		v, err := IntToUintptr(math.MaxInt)
		require.NoError(t, err)
		assert.Equal(t, uintptr(math.MaxInt), v)
	})

	t.Run("negative fails", func(t *testing.T) {
		_, err := IntToUintptr(-7)
		assert.Error(t, err)
	})
}

func TestUintptrToInt(t *testing.T) {
	t.Run("valid conversion", func(t *testing.T) {
		v, err := UintptrToInt(1024)
		require.NoError(t, err)
		assert.Equal(t, 1024, v)
	})

	t.Run("max int", func(t *testing.T) {
		v, err := UintptrToInt(uintptr(math.MaxInt))
		require.NoError(t, err)
		assert.Equal(t, math.MaxInt, v)
	})
}
