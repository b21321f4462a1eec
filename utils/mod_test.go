package utils

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestArgMaxAll(t *testing.T) {
	t.Run("unique maximum", func(t *testing.T) {
		require.Equal(t, []int{2}, ArgMaxAll([]float64{1, 0.5, 3, 2}))
	})

	t.Run("ties are all returned in order", func(t *testing.T) {
		require.Equal(t, []int{0, 3}, ArgMaxAll([]float64{4, 1, 2, 4}))
	})

	t.Run("empty input", func(t *testing.T) {
		require.Nil(t, ArgMaxAll([]int{}))
	})
}

func TestMax(t *testing.T) {
	require.Equal(t, 7, Max([]int{3, 7, -1}))
	require.Panics(t, func() { Max([]int{}) }, "Should panic on an empty slice")
}
