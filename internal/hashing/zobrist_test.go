package hashing_test

import (
	"testing"

	"github.com/lgbarn/chesskit/internal/engine"
	"github.com/lgbarn/chesskit/internal/hashing"
	"github.com/lgbarn/chesskit/internal/testutil"
)

func hashOf(t *testing.T, fen string) uint64 {
	t.Helper()
	board, err := engine.NewBoardFromFEN(fen)
	if err != nil {
		t.Fatalf("NewBoardFromFEN(%q) failed: %v", fen, err)
	}
	return hashing.PositionHash(board)
}

func TestPositionHash_Stable(t *testing.T) {
	a := hashOf(t, testutil.StartposFEN)
	b := hashOf(t, testutil.StartposFEN)
	testutil.AssertEqual(t, a, b, "same position must hash identically")
}

func TestPositionHash_Distinguishes(t *testing.T) {
	base := "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

	tests := []struct {
		name  string
		other string
	}{
		{
			name:  "side to move",
			other: "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR b KQkq - 0 1",
		},
		{
			name:  "castling rights",
			other: "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w Qkq - 0 1",
		},
		{
			name:  "piece placement",
			other: "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR w KQkq - 0 1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if hashOf(t, base) == hashOf(t, tt.other) {
				t.Errorf("%s should change the hash", tt.name)
			}
		})
	}
}

func TestPositionHash_EnPassantTarget(t *testing.T) {
	withEP := "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1"
	withoutEP := "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq - 0 1"

	if hashOf(t, withEP) == hashOf(t, withoutEP) {
		t.Error("en passant target should change the hash")
	}
}

func TestPositionHash_IgnoresMoveCounters(t *testing.T) {
	a := "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"
	b := "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 40 25"

	testutil.AssertEqual(t, hashOf(t, a), hashOf(t, b),
		"the repetition identity excludes the move counters")
}

func TestPositionHash_RoundTripThroughMoves(t *testing.T) {
	game := engine.NewGame()
	start := hashing.PositionHash(game.Board())

	for _, moveText := range []string{"g1f3", "g8f6", "f3g1", "f6g8"} {
		if err := game.Play(moveText); err != nil {
			t.Fatalf("Play(%q) failed: %v", moveText, err)
		}
	}

	testutil.AssertEqual(t, hashing.PositionHash(game.Board()), start,
		"returning to the start position must restore its hash")
}
