package hashing

import "sync"

// ThreadSafeRepetitionTable wraps RepetitionTable with mutex protection for
// concurrent access, for callers sharing one table across goroutines.
type ThreadSafeRepetitionTable struct {
	table *RepetitionTable
	mu    sync.RWMutex
}

// NewThreadSafeRepetitionTable creates a new thread-safe repetition table.
func NewThreadSafeRepetitionTable() *ThreadSafeRepetitionTable {
	return &ThreadSafeRepetitionTable{
		table: NewRepetitionTable(),
	}
}

// Add atomically records one occurrence of the given position hash and
// returns the new occurrence count.
func (t *ThreadSafeRepetitionTable) Add(hash uint64) int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.table.Add(hash)
}

// Remove forgets one occurrence of the given position hash.
func (t *ThreadSafeRepetitionTable) Remove(hash uint64) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.table.Remove(hash)
}

// Count returns how often the given position hash has occurred.
func (t *ThreadSafeRepetitionTable) Count(hash uint64) int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.table.Count(hash)
}

// Threefold reports whether the given position has occurred three or more times.
func (t *ThreadSafeRepetitionTable) Threefold(hash uint64) bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.table.Threefold(hash)
}

// Fivefold reports whether the given position has occurred five or more times.
func (t *ThreadSafeRepetitionTable) Fivefold(hash uint64) bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.table.Fivefold(hash)
}

// Positions returns the number of distinct positions recorded.
func (t *ThreadSafeRepetitionTable) Positions() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.table.Positions()
}

// Reset clears the table.
func (t *ThreadSafeRepetitionTable) Reset() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.table.Reset()
}
