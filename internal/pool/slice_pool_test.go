package pool

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGetIntSlice(t *testing.T) {
	t.Run("returns slice with correct size", func(t *testing.T) {
		slice, cleanup := GetIntSlice(3)
		defer cleanup()

		require.Len(t, slice, 3)
		require.GreaterOrEqual(t, cap(slice), 3)
	})

	t.Run("grows when capacity insufficient", func(t *testing.T) {
		_, cleanup1 := GetIntSlice(1)
		cleanup1()

		slice, cleanup2 := GetIntSlice(64)
		defer cleanup2()

		require.Len(t, slice, 64)
	})

	t.Run("shrinks length when reused", func(t *testing.T) {
		_, cleanup1 := GetIntSlice(16)
		cleanup1()

		slice, cleanup2 := GetIntSlice(2)
		defer cleanup2()

		require.Len(t, slice, 2)
	})

	t.Run("zero size", func(t *testing.T) {
		slice, cleanup := GetIntSlice(0)
		defer cleanup()

		require.Empty(t, slice)
	})
}

func TestGetIntSlice_Concurrent(t *testing.T) {
	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			for i := 0; i < 1000; i++ {
				slice, cleanup := GetIntSlice(3)
				slice[0], slice[1], slice[2] = g, i, g+i
				if slice[0] != g || slice[1] != i || slice[2] != g+i {
					t.Errorf("slice shared between goroutines")
				}
				cleanup()
			}
		}(g)
	}
	wg.Wait()
}
