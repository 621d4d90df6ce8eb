package cache

import (
	"github.com/dgraph-io/ristretto"
)

// ItemCache keeps computed item payloads so repeated demo requests show the
// cache's latency profile on the profiler dashboard instead of recomputing.
type ItemCache struct {
	cache *ristretto.Cache
}

func New(maxSizePow2 int) (*ItemCache, error) {
	maxCost := max(1, int64(1)<<maxSizePow2)
	numCounters := max(1, maxCost/100) // ~100 bytes per entry estimate

	cache, err := ristretto.NewCache(&ristretto.Config{
		NumCounters: numCounters,
		MaxCost:     maxCost,
		BufferItems: 64,
		Metrics:     true,
	})
	if err != nil {
		return nil, err
	}
	return &ItemCache{cache: cache}, nil
}

func (c *ItemCache) Get(itemID int) (string, bool) {
	val, found := c.cache.Get(itemID)
	if !found {
		return "", false
	}
	return val.(string), true
}

func (c *ItemCache) Set(itemID int, payload string) {
	c.cache.Set(itemID, payload, int64(len(payload)))
}

// Wait blocks until buffered writes have been applied. Mostly useful in
// tests, since Set is asynchronous.
func (c *ItemCache) Wait() {
	c.cache.Wait()
}

func (c *ItemCache) Close() {
	c.cache.Close()
}

func (c *ItemCache) Stats() (hits, misses uint64, ratio float64) {
	metrics := c.cache.Metrics
	hits = metrics.Hits()
	misses = metrics.Misses()
	ratio = metrics.Ratio()
	return
}
