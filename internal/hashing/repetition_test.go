package hashing

import (
	"testing"

	"github.com/lgbarn/chesskit/internal/testutil"
)

func TestRepetitionTable(t *testing.T) {
	table := NewRepetitionTable()
	const hash = uint64(0xdeadbeef)

	testutil.AssertEqual(t, table.Count(hash), 0)
	testutil.AssertFalse(t, table.Threefold(hash))

	testutil.AssertEqual(t, table.Add(hash), 1)
	testutil.AssertEqual(t, table.Add(hash), 2)
	testutil.AssertFalse(t, table.Threefold(hash))

	testutil.AssertEqual(t, table.Add(hash), 3)
	testutil.AssertTrue(t, table.Threefold(hash))
	testutil.AssertFalse(t, table.Fivefold(hash))

	table.Add(hash)
	table.Add(hash)
	testutil.AssertTrue(t, table.Fivefold(hash))
}

func TestRepetitionTable_Remove(t *testing.T) {
	table := NewRepetitionTable()
	const hash = uint64(7)

	table.Add(hash)
	table.Add(hash)
	table.Remove(hash)
	testutil.AssertEqual(t, table.Count(hash), 1)

	table.Remove(hash)
	testutil.AssertEqual(t, table.Count(hash), 0)
	testutil.AssertEqual(t, table.Positions(), 0, "fully removed hashes must not linger")

	// Removing an unknown hash is a no-op.
	table.Remove(uint64(99))
	testutil.AssertEqual(t, table.Positions(), 0)
}

func TestRepetitionTable_Positions(t *testing.T) {
	table := NewRepetitionTable()
	table.Add(1)
	table.Add(2)
	table.Add(2)

	testutil.AssertEqual(t, table.Positions(), 2)

	table.Reset()
	testutil.AssertEqual(t, table.Positions(), 0)
	testutil.AssertEqual(t, table.Count(2), 0)
}
