package profiler

import (
	"errors"
	"sync"
)

// DefaultCapacity is the number of entries a new Store retains before
// Configure is called.
const DefaultCapacity = 1000

var ErrInvalidCapacity = errors.New("capacity must be at least 1")

// Store is a bounded, goroutine-safe record of recent request measurements.
// Entries are kept in insertion order and the oldest are evicted first once
// the capacity bound is reached. A single mutex serializes every operation;
// critical sections are short and bounded by the capacity, so finer-grained
// locking buys nothing here.
type Store struct {
	mu       sync.Mutex
	capacity int
	entries  []Entry
}

// New returns an empty Store with DefaultCapacity.
func New() *Store {
	return &Store{capacity: DefaultCapacity}
}

// Configure sets the maximum number of retained entries. Shrinking below the
// current length evicts the oldest entries immediately. Values below 1 return
// ErrInvalidCapacity and leave the previous configuration untouched.
func (s *Store) Configure(capacity int) error {
	if capacity < 1 {
		return ErrInvalidCapacity
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.capacity = capacity
	s.prune()
	return nil
}

// Record appends an entry, evicting from the front if the store is full.
// It never fails and is safe to call from concurrent request handlers.
func (s *Store) Record(e Entry) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = append(s.entries, e)
	s.prune()
}

// prune drops the oldest entries until the capacity bound holds.
// Callers must hold mu.
func (s *Store) prune() {
	if excess := len(s.entries) - s.capacity; excess > 0 {
		s.entries = append(s.entries[:0], s.entries[excess:]...)
	}
}

// Snapshot returns an independent copy of the retained entries in insertion
// order. Mutating the result never affects the store.
func (s *Store) Snapshot() []Entry {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Entry, len(s.entries))
	copy(out, s.entries)
	return out
}

// Clear empties the store. The configured capacity is unchanged.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = nil
}

// Len reports the current number of retained entries.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

// Capacity reports the configured maximum number of retained entries.
func (s *Store) Capacity() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.capacity
}
