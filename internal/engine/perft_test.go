package engine

import (
	"testing"

	"github.com/lgbarn/chesskit/internal/chess"
	"github.com/lgbarn/chesskit/internal/testutil"
)

// Reference node counts from the standard perft test suite.
func TestPerft(t *testing.T) {
	tests := []struct {
		name  string
		fen   string
		depth int
		want  uint64
		slow  bool
	}{
		{"startpos depth 1", testutil.StartposFEN, 1, 20, false},
		{"startpos depth 2", testutil.StartposFEN, 2, 400, false},
		{"startpos depth 3", testutil.StartposFEN, 3, 8902, false},
		{"startpos depth 4", testutil.StartposFEN, 4, 197281, true},
		{"startpos depth 5", testutil.StartposFEN, 5, 4865609, true},
		{"kiwipete depth 1", testutil.KiwipeteFEN, 1, 48, false},
		{"kiwipete depth 2", testutil.KiwipeteFEN, 2, 2039, false},
		{"kiwipete depth 3", testutil.KiwipeteFEN, 3, 97862, true},
		{"rook endgame depth 1", testutil.RookEndgameFEN, 1, 14, false},
		{"rook endgame depth 2", testutil.RookEndgameFEN, 2, 191, false},
		{"rook endgame depth 3", testutil.RookEndgameFEN, 3, 2812, false},
		{"rook endgame depth 4", testutil.RookEndgameFEN, 4, 43238, true},
		{"promotion position depth 1", testutil.PromotionFEN, 1, 6, false},
		{"promotion position depth 2", testutil.PromotionFEN, 2, 264, false},
		{"promotion position depth 3", testutil.PromotionFEN, 3, 9467, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.slow && testing.Short() {
				t.Skip("skipping deep perft in short mode")
			}
			board := mustBoard(t, tt.fen)
			testutil.AssertEqual(t, Perft(board, tt.depth), tt.want)
		})
	}
}

func TestPerft_DepthZero(t *testing.T) {
	board := NewInitialBoard()
	testutil.AssertEqual(t, Perft(board, 0), uint64(1))
}

func TestDivide(t *testing.T) {
	board := NewInitialBoard()
	entries := Divide(board, 2)

	testutil.AssertEqual(t, len(entries), 20)

	var total uint64
	sorted := true
	for i, entry := range entries {
		total += entry.Nodes
		testutil.AssertEqual(t, entry.Nodes, uint64(20), "subtree for %s", entry.Move)
		if i > 0 && entries[i-1].Move.String() > entry.Move.String() {
			sorted = false
		}
	}
	testutil.AssertEqual(t, total, uint64(400))
	testutil.AssertTrue(t, sorted, "divide entries must be sorted by move text")
}

func TestParallelPerft(t *testing.T) {
	tests := []struct {
		name    string
		fen     string
		depth   int
		workers int
	}{
		{"startpos two workers", testutil.StartposFEN, 3, 2},
		{"startpos four workers", testutil.StartposFEN, 3, 4},
		{"kiwipete four workers", testutil.KiwipeteFEN, 2, 4},
		{"more workers than root moves", testutil.RookEndgameFEN, 2, 32},
		{"single worker falls back to serial", testutil.StartposFEN, 2, 1},
		{"depth one falls back to serial", testutil.StartposFEN, 1, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board := mustBoard(t, tt.fen)
			want := Perft(board.Copy(), tt.depth)
			got := ParallelPerft(board, tt.depth, tt.workers)
			testutil.AssertEqual(t, got, want)
		})
	}
}

func TestParallelPerft_DoesNotMutateBoard(t *testing.T) {
	board := NewInitialBoard()
	before := BoardToFEN(board)

	ParallelPerft(board, 3, 4)

	testutil.AssertEqual(t, BoardToFEN(board), before)
}

func BenchmarkPerft3(b *testing.B) {
	board := NewInitialBoard()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if nodes := Perft(board, 3); nodes != 8902 {
			b.Fatalf("perft(3) = %d, want 8902", nodes)
		}
	}
}

func BenchmarkParallelPerft3(b *testing.B) {
	board := NewInitialBoard()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if nodes := ParallelPerft(board, 3, 4); nodes != 8902 {
			b.Fatalf("perft(3) = %d, want 8902", nodes)
		}
	}
}

func BenchmarkAllLegalMoves(b *testing.B) {
	board := mustBoardBench(b, testutil.KiwipeteFEN)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if moves := AllLegalMoves(board); len(moves) != 48 {
			b.Fatalf("got %d moves, want 48", len(moves))
		}
	}
}

func mustBoardBench(b *testing.B, fen string) *chess.Board {
	b.Helper()
	board, err := NewBoardFromFEN(fen)
	if err != nil {
		b.Fatalf("NewBoardFromFEN(%q) failed: %v", fen, err)
	}
	return board
}
