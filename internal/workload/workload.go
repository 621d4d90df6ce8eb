// Package workload simulates the request shapes the profiler is meant to
// make visible: I/O waits with near-zero CPU time and CPU-bound loops where
// wall time and CPU time converge.
package workload

import (
	"context"
	"fmt"
	"time"
)

const (
	// Iteration counts are sized so the CPU-bound endpoints register a
	// clearly non-zero CPUTimeMs without making interactive use painful.
	itemBurnIterations  = 5_000_000
	heavyBurnIterations = 20_000_000

	evenItemDelay = 50 * time.Millisecond
)

// BurnCPU runs a deterministic integer loop and returns its accumulated
// result so the work cannot be optimized away.
func BurnCPU(iterations int) int {
	result := 0
	for i := 0; i < iterations; i++ {
		for x := 0; x < 20; x++ {
			result += x * x
		}
	}
	return result
}

// Sleep waits for d or until the request is cancelled, whichever comes first.
func Sleep(ctx context.Context, d time.Duration) {
	select {
	case <-ctx.Done():
	case <-time.After(d):
	}
}

// ItemService computes demo item payloads: even ids simulate slow I/O, odd
// ids burn CPU. Results go through the cache, so repeated ids come back
// without redoing the work.
type ItemService struct {
	cache Cache
}

type Cache interface {
	Get(itemID int) (string, bool)
	Set(itemID int, payload string)
}

func NewItemService(cache Cache) *ItemService {
	return &ItemService{cache: cache}
}

// Process returns the payload for an item and whether it was served from
// the cache.
func (s *ItemService) Process(ctx context.Context, itemID int) (payload string, cached bool) {
	if s.cache != nil {
		if payload, ok := s.cache.Get(itemID); ok {
			return payload, true
		}
	}

	if itemID%2 == 0 {
		Sleep(ctx, evenItemDelay)
	} else {
		BurnCPU(itemBurnIterations)
	}

	payload = fmt.Sprintf("Item %d processed", itemID)
	if s.cache != nil {
		s.cache.Set(itemID, payload)
	}
	return payload, false
}

// Heavy runs the dedicated CPU-intensive workload and returns a dummy result
// derived from it.
func Heavy() int {
	return BurnCPU(heavyBurnIterations) % 100
}
