package profiler_test

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"requestprofiler/internal/profiler"
)

func entry(path string) profiler.Entry {
	return profiler.Entry{
		Timestamp:   time.Now(),
		Path:        path,
		Method:      "GET",
		StatusCode:  200,
		TotalTimeMs: 1.5,
	}
}

func TestNew_Defaults(t *testing.T) {
	s := profiler.New()

	assert.Equal(t, profiler.DefaultCapacity, s.Capacity())
	assert.Equal(t, 0, s.Len())
	assert.Empty(t, s.Snapshot())
}

func TestRecord_CapacityBound(t *testing.T) {
	tests := []struct {
		name     string
		capacity int
		records  int
		wantLen  int
	}{
		{name: "under capacity", capacity: 10, records: 3, wantLen: 3},
		{name: "at capacity", capacity: 10, records: 10, wantLen: 10},
		{name: "over capacity", capacity: 10, records: 25, wantLen: 10},
		{name: "capacity one", capacity: 1, records: 5, wantLen: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := profiler.New()
			require.NoError(t, s.Configure(tt.capacity))

			for i := 0; i < tt.records; i++ {
				s.Record(entry(fmt.Sprintf("/req/%d", i)))
			}

			assert.Equal(t, tt.wantLen, s.Len())
			assert.Len(t, s.Snapshot(), tt.wantLen)
		})
	}
}

func TestRecord_FIFOEviction(t *testing.T) {
	s := profiler.New()
	require.NoError(t, s.Configure(3))

	for i := 0; i < 7; i++ {
		s.Record(entry(fmt.Sprintf("/req/%d", i)))
	}

	snap := s.Snapshot()
	require.Len(t, snap, 3)
	assert.Equal(t, "/req/4", snap[0].Path)
	assert.Equal(t, "/req/5", snap[1].Path)
	assert.Equal(t, "/req/6", snap[2].Path)
}

func TestConfigure_Invalid(t *testing.T) {
	for _, capacity := range []int{0, -1, -1000} {
		t.Run(fmt.Sprintf("capacity %d", capacity), func(t *testing.T) {
			s := profiler.New()
			s.Record(entry("/before"))
			before := s.Snapshot()

			err := s.Configure(capacity)
			require.ErrorIs(t, err, profiler.ErrInvalidCapacity)

			assert.Equal(t, profiler.DefaultCapacity, s.Capacity(), "previous capacity should remain active")
			assert.Equal(t, before, s.Snapshot(), "entries should be unchanged after a rejected configure")
		})
	}
}

func TestConfigure_ShrinkPrunesImmediately(t *testing.T) {
	s := profiler.New()
	require.NoError(t, s.Configure(10))

	for i := 0; i < 10; i++ {
		s.Record(entry(fmt.Sprintf("/req/%d", i)))
	}

	require.NoError(t, s.Configure(3))

	snap := s.Snapshot()
	require.Len(t, snap, 3)
	assert.Equal(t, "/req/7", snap[0].Path)
	assert.Equal(t, "/req/8", snap[1].Path)
	assert.Equal(t, "/req/9", snap[2].Path)
}

func TestConfigure_SameValueIsNoOp(t *testing.T) {
	s := profiler.New()
	require.NoError(t, s.Configure(5))

	for i := 0; i < 5; i++ {
		s.Record(entry(fmt.Sprintf("/req/%d", i)))
	}
	before := s.Snapshot()

	require.NoError(t, s.Configure(5))
	assert.Equal(t, before, s.Snapshot())
}

func TestClear_Idempotent(t *testing.T) {
	s := profiler.New()
	s.Record(entry("/a"))
	s.Record(entry("/b"))

	s.Clear()
	assert.Empty(t, s.Snapshot())

	s.Clear()
	assert.Empty(t, s.Snapshot())
	assert.Equal(t, profiler.DefaultCapacity, s.Capacity(), "clear should not touch capacity")

	s.Record(entry("/after"))
	assert.Equal(t, 1, s.Len())
}

func TestSnapshot_Isolation(t *testing.T) {
	s := profiler.New()
	s.Record(entry("/original"))

	snap := s.Snapshot()
	snap[0].Path = "/mutated"
	snap[0].StatusCode = 999

	again := s.Snapshot()
	require.Len(t, again, 1)
	assert.Equal(t, "/original", again[0].Path)
	assert.Equal(t, 200, again[0].StatusCode)
}

func TestRecord_Concurrent(t *testing.T) {
	const workers = 64
	const perWorker = 50

	s := profiler.New()
	require.NoError(t, s.Configure(workers * perWorker))

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < perWorker; i++ {
				s.Record(entry(fmt.Sprintf("/worker/%d/%d", w, i)))
			}
		}(w)
	}
	wg.Wait()

	snap := s.Snapshot()
	require.Len(t, snap, workers*perWorker, "no entry may be lost or duplicated")

	seen := make(map[string]bool, len(snap))
	for _, e := range snap {
		assert.False(t, seen[e.Path], "duplicate entry %s", e.Path)
		seen[e.Path] = true
	}
}

func TestRecord_ConcurrentWithReaders(t *testing.T) {
	s := profiler.New()
	require.NoError(t, s.Configure(100))

	done := make(chan struct{})
	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := 0; ; i++ {
			select {
			case <-done:
				return
			default:
				s.Record(entry(fmt.Sprintf("/req/%d", i)))
			}
		}
	}()

	for i := 0; i < 200; i++ {
		snap := s.Snapshot()
		assert.LessOrEqual(t, len(snap), 100, "snapshot must respect the capacity bound")
	}

	close(done)
	wg.Wait()
}
