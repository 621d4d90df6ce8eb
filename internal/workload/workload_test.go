package workload_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"requestprofiler/internal/workload"
)

type mapCache struct {
	items map[int]string
	sets  int
}

func newMapCache() *mapCache {
	return &mapCache{items: make(map[int]string)}
}

func (c *mapCache) Get(itemID int) (string, bool) {
	v, ok := c.items[itemID]
	return v, ok
}

func (c *mapCache) Set(itemID int, payload string) {
	c.items[itemID] = payload
	c.sets++
}

func TestBurnCPU_Deterministic(t *testing.T) {
	// Each outer iteration adds sum(x*x) for x in [0,20) = 2470.
	assert.Equal(t, 2470, workload.BurnCPU(1))
	assert.Equal(t, 24700, workload.BurnCPU(10))
	assert.Zero(t, workload.BurnCPU(0))
}

func TestSleep_ReturnsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	start := time.Now()
	workload.Sleep(ctx, 5*time.Second)
	assert.Less(t, time.Since(start), time.Second, "cancelled sleep must return promptly")
}

func TestItemService_CacheHitSkipsWork(t *testing.T) {
	cache := newMapCache()
	cache.items[2] = "Item 2 processed"
	svc := workload.NewItemService(cache)

	start := time.Now()
	payload, cached := svc.Process(context.Background(), 2)

	assert.True(t, cached)
	assert.Equal(t, "Item 2 processed", payload)
	assert.Less(t, time.Since(start), 40*time.Millisecond, "a hit must not pay the even-id delay")
	assert.Zero(t, cache.sets)
}

func TestItemService_EvenIDPopulatesCache(t *testing.T) {
	cache := newMapCache()
	svc := workload.NewItemService(cache)

	payload, cached := svc.Process(context.Background(), 4)

	assert.False(t, cached)
	assert.Equal(t, "Item 4 processed", payload)
	assert.Equal(t, 1, cache.sets)
	assert.Equal(t, "Item 4 processed", cache.items[4])
}

func TestItemService_OddIDBurnsCPU(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping cpu-bound item in short mode")
	}

	svc := workload.NewItemService(newMapCache())

	payload, cached := svc.Process(context.Background(), 3)

	assert.False(t, cached)
	assert.Equal(t, "Item 3 processed", payload)
}

func TestItemService_NilCache(t *testing.T) {
	svc := workload.NewItemService(nil)

	payload, cached := svc.Process(context.Background(), 2)

	assert.False(t, cached)
	assert.Equal(t, "Item 2 processed", payload)
}
