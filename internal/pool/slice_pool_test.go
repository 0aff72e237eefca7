package pool

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGetFloat64Slice(t *testing.T) {
	t.Run("returns slice with correct size", func(t *testing.T) {
		slice, cleanup := GetFloat64Slice(14)
		defer cleanup()

		require.Len(t, slice, 14)
		require.GreaterOrEqual(t, cap(slice), 14)
	})

	t.Run("grows when capacity insufficient", func(t *testing.T) {
		_, cleanup1 := GetFloat64Slice(7)
		cleanup1()

		slice2, cleanup2 := GetFloat64Slice(1000)
		defer cleanup2()

		require.Len(t, slice2, 1000)
	})

	t.Run("zero size", func(t *testing.T) {
		slice, cleanup := GetFloat64Slice(0)
		defer cleanup()

		require.Empty(t, slice)
	})
}

func TestGetStringSlice(t *testing.T) {
	slice, cleanup := GetStringSlice(6)
	require.Len(t, slice, 6)

	slice[0] = "2021-04-01"
	cleanup()

	again, cleanup2 := GetStringSlice(6)
	defer cleanup2()
	for _, s := range again {
		require.Empty(t, s, "pooled string slices must be cleared")
	}
}

func TestSlicePoolConcurrency(t *testing.T) {
	var wg sync.WaitGroup
	for i := range 32 {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			s, cleanup := GetFloat64Slice(n + 1)
			defer cleanup()
			for j := range s {
				s[j] = float64(j)
			}
			require.Len(t, s, n+1)
		}(i)
	}
	wg.Wait()
}
