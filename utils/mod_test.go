package utils

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFindIndex(t *testing.T) {
	require.Equal(t, 2, FindIndex([]int{4, 5, 6}, 6))
	require.Equal(t, -1, FindIndex([]int{4, 5, 6}, 7), "Missing item should return -1")
}

func TestFindIndexFunc(t *testing.T) {
	nonEmpty := func(v int) bool { return v > 0 }

	require.Equal(t, 1, FindIndexFunc([]int{0, 3, 2}, nonEmpty))
	require.Equal(t, -1, FindIndexFunc([]int{0, 0}, nonEmpty))
	require.Equal(t, -1, FindIndexFunc(nil, nonEmpty))
}

func TestSumAndXor(t *testing.T) {
	t.Run("sum of values", func(t *testing.T) {
		require.Equal(t, 6, Sum([]int{1, 2, 3}))
		require.Equal(t, 0, Sum([]int{}))
	})

	t.Run("xor of values", func(t *testing.T) {
		require.Equal(t, 0, Xor([]int{1, 2, 3}))
		require.Equal(t, 3, Xor([]int{3}))
		require.Equal(t, 2, Xor([]int{3, 4, 5}))
	})
}
