package testutil

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeqClock_StartsAtZero(t *testing.T) {
	clock := NewSeqClock()
	assert.Equal(t, int64(0), clock.Current())
	assert.Equal(t, int64(1), clock.Next())
}

func TestSeqClock_Monotonic(t *testing.T) {
	clock := NewSeqClock()
	for want := int64(1); want <= 4; want++ {
		assert.Equal(t, want, clock.Next())
	}
	assert.Equal(t, int64(4), clock.Current())
}

func TestSeqClock_StartAt(t *testing.T) {
	clock := NewSeqClockAt(41)
	assert.Equal(t, int64(42), clock.Next())
}

func TestSeqClock_Reset(t *testing.T) {
	clock := NewSeqClock()
	clock.Next()
	clock.Next()
	clock.Reset()
	assert.Equal(t, int64(0), clock.Current())
	assert.Equal(t, int64(1), clock.Next())
}

func TestSeqClock_Concurrent(t *testing.T) {
	clock := NewSeqClock()
	const workers, perWorker = 8, 100

	var wg sync.WaitGroup
	seen := make(chan int64, workers*perWorker)
	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range perWorker {
				seen <- clock.Next()
			}
		}()
	}
	wg.Wait()
	close(seen)

	unique := make(map[int64]bool)
	for v := range seen {
		require.False(t, unique[v], "duplicate seq %d", v)
		unique[v] = true
	}
	assert.Len(t, unique, workers*perWorker)
	assert.Equal(t, int64(workers*perWorker), clock.Current())
}

func TestRunIDs_Counting(t *testing.T) {
	gen := NewRunIDs()
	first := gen.Generate()
	second := gen.Generate()
	assert.Equal(t, "00000000-0000-7000-8000-000000000001", first)
	assert.Equal(t, "00000000-0000-7000-8000-000000000002", second)
	assert.Less(t, first, second)
}

func TestRunIDs_Fixed(t *testing.T) {
	gen := NewRunIDs("run-a", "run-b")
	assert.Equal(t, "run-a", gen.Generate())
	assert.Equal(t, "run-b", gen.Generate())
	assert.Panics(t, func() { gen.Generate() })
}
