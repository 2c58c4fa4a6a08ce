package hashing

// RepetitionTable counts how often each position hash has occurred in a
// game, for the threefold and fivefold repetition rules.
type RepetitionTable struct {
	counts map[uint64]int
}

// NewRepetitionTable creates an empty repetition table.
func NewRepetitionTable() *RepetitionTable {
	return &RepetitionTable{
		counts: make(map[uint64]int),
	}
}

// Add records one occurrence of the given position hash and returns the
// new occurrence count.
func (t *RepetitionTable) Add(hash uint64) int {
	t.counts[hash]++
	return t.counts[hash]
}

// Remove forgets one occurrence of the given position hash, for callers
// that take moves back.
func (t *RepetitionTable) Remove(hash uint64) {
	if t.counts[hash] <= 1 {
		delete(t.counts, hash)
		return
	}
	t.counts[hash]--
}

// Count returns how often the given position hash has occurred.
func (t *RepetitionTable) Count(hash uint64) int {
	return t.counts[hash]
}

// Threefold reports whether the given position has occurred three or more
// times.
func (t *RepetitionTable) Threefold(hash uint64) bool {
	return t.counts[hash] >= 3
}

// Fivefold reports whether the given position has occurred five or more
// times.
func (t *RepetitionTable) Fivefold(hash uint64) bool {
	return t.counts[hash] >= 5
}

// Positions returns the number of distinct positions recorded.
func (t *RepetitionTable) Positions() int {
	return len(t.counts)
}

// Reset clears the table.
func (t *RepetitionTable) Reset() {
	t.counts = make(map[uint64]int)
}
