package engine

import (
	"sort"

	"github.com/lgbarn/chesskit/internal/chess"
	"github.com/lgbarn/chesskit/internal/worker"
)

// Perft counts the leaf nodes of the legal-move tree to the given depth.
// Standard reference values (20/400/8902 from the starting position)
// validate the move generator by exhaustive enumeration.
func Perft(board *chess.Board, depth int) uint64 {
	if depth <= 0 {
		return 1
	}

	moves := AllLegalMoves(board)
	if depth == 1 {
		return uint64(len(moves))
	}

	var nodes uint64
	for _, move := range moves {
		next := board.Copy()
		applyToBoard(next, move)
		nodes += Perft(next, depth-1)
	}
	return nodes
}

// DivideEntry is the subtree count for one root move.
type DivideEntry struct {
	Move  chess.Move
	Nodes uint64
}

// Divide returns the perft count split per root move, sorted by coordinate
// notation the way engines print it for cross-referencing.
func Divide(board *chess.Board, depth int) []DivideEntry {
	moves := AllLegalMoves(board)
	entries := make([]DivideEntry, 0, len(moves))
	for _, move := range moves {
		next := board.Copy()
		applyToBoard(next, move)
		entries = append(entries, DivideEntry{
			Move:  move,
			Nodes: Perft(next, depth-1),
		})
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Move.String() < entries[j].Move.String()
	})
	return entries
}

// ParallelPerft counts the legal-move tree with the root subtrees spread
// over a worker pool. Board copies are handed to the workers, so the
// caller's board is shared read-only and never mutated.
func ParallelPerft(board *chess.Board, depth, workers int) uint64 {
	if depth <= 1 || workers <= 1 {
		return Perft(board, depth)
	}

	moves := AllLegalMoves(board)

	pool := worker.NewPool(func(item worker.Item) worker.Result {
		return worker.Result{
			Move:  item.Move,
			Nodes: Perft(item.Board, item.Depth),
			Index: item.Index,
		}
	}, worker.WithWorkers(workers), worker.WithBufferSize(len(moves)+1))

	pool.Start()
	go func() {
		for i, move := range moves {
			next := board.Copy()
			applyToBoard(next, move)
			pool.Submit(worker.Item{Board: next, Move: move, Depth: depth - 1, Index: i})
		}
		pool.Close()
	}()

	var nodes uint64
	for result := range pool.Results() {
		nodes += result.Nodes
	}
	return nodes
}
