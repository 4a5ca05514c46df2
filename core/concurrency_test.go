// Package core_test verifies thread-safety of core.Graph under concurrent operations.
package core_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/campusnav/core"
)

// TestConcurrentAddConnection ensures that concurrent AddConnection calls
// are safe and every connection appears.
func TestConcurrentAddConnection(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddLandmark("X", mgl64.Vec3{}, "X"))

	var wg sync.WaitGroup
	errs := make(chan error, NConcurrentAdds)
	wg.Add(NConcurrentAdds)
	for i := 0; i < NConcurrentAdds; i++ {
		go func(id int) {
			defer wg.Done()
			errs <- g.AddConnection("X", fmt.Sprintf("V%d", id), float64(id))
		}(i)
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		require.NoError(t, err)
	}
	require.Len(t, g.Neighbors("X"), NConcurrentAdds)
	require.Equal(t, NConcurrentAdds, g.ConnectionCount())
}

// TestConcurrentReadersAndCloners validates that concurrent reads
// (Neighbors, Keys) and clones do not race with each other.
func TestConcurrentReadersAndCloners(t *testing.T) {
	g := core.NewGraph()
	for i := 0; i < 50; i++ {
		key := fmt.Sprintf("L%d", i)
		require.NoError(t, g.AddLandmark(key, mgl64.Vec3{float64(i), 0, 0}, key))
		require.NoError(t, g.AddConnection("L0", key, float64(i)))
	}

	var wg sync.WaitGroup
	sizes := make(chan int, NReaders+NCloners)
	wg.Add(NReaders + NCloners)

	for i := 0; i < NReaders; i++ {
		go func() {
			defer wg.Done()
			sizes <- len(g.Neighbors("L0"))
		}()
	}
	for i := 0; i < NCloners; i++ {
		go func() {
			defer wg.Done()
			sizes <- len(g.Clone().Keys())
		}()
	}
	wg.Wait()
	close(sizes)

	for n := range sizes {
		require.Equal(t, 50, n)
	}
}
