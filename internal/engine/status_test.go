package engine

import (
	"testing"

	"github.com/lgbarn/chesskit/internal/testutil"
)

func TestEvaluateStatus(t *testing.T) {
	tests := []struct {
		name string
		fen  string
		want Status
	}{
		{
			name: "starting position",
			fen:  InitialFEN,
			want: StatusNormal,
		},
		{
			name: "check with escape squares",
			fen:  "4k3/8/8/8/4r3/8/8/4K3 w - - 0 1",
			want: StatusCheck,
		},
		{
			name: "fools mate",
			fen:  testutil.FoolsMateFEN,
			want: StatusCheckmate,
		},
		{
			name: "back rank mate",
			fen:  "4R1k1/5ppp/8/8/8/8/8/6K1 b - - 0 1",
			want: StatusCheckmate,
		},
		{
			name: "stalemate",
			fen:  testutil.StalemateFEN,
			want: StatusStalemate,
		},
		{
			name: "fifty move rule",
			fen:  "4k3/8/8/8/8/8/8/4K2R w - - 100 80",
			want: StatusDrawFiftyMove,
		},
		{
			name: "clock just below the fifty move threshold",
			fen:  "4k3/8/8/8/8/8/8/4K2R w - - 99 80",
			want: StatusNormal,
		},
		{
			name: "bare kings",
			fen:  "4k3/8/8/8/8/8/8/4K3 w - - 0 1",
			want: StatusDrawInsufficientMaterial,
		},
		{
			name: "mate takes precedence over the fifty move rule",
			fen:  "rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 100 80",
			want: StatusCheckmate,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board := mustBoard(t, tt.fen)
			testutil.AssertEqual(t, EvaluateStatus(board).String(), tt.want.String())
		})
	}
}

func TestIsCheckmateAndStalemate(t *testing.T) {
	mate := mustBoard(t, testutil.FoolsMateFEN)
	testutil.AssertTrue(t, IsCheckmate(mate))
	testutil.AssertFalse(t, IsStalemate(mate))

	stale := mustBoard(t, testutil.StalemateFEN)
	testutil.AssertTrue(t, IsStalemate(stale))
	testutil.AssertFalse(t, IsCheckmate(stale))
}

func TestHasInsufficientMaterial(t *testing.T) {
	tests := []struct {
		name string
		fen  string
		want bool
	}{
		{"king vs king", "4k3/8/8/8/8/8/8/4K3 w - - 0 1", true},
		{"king and knight vs king", "4k3/8/8/8/8/8/8/4KN2 w - - 0 1", true},
		{"king and bishop vs king", "4k3/8/8/8/8/8/8/2B1K3 w - - 0 1", true},
		{"same colour bishops", "2b1k3/8/8/8/8/8/8/4KB2 w - - 0 1", true},
		{"opposite colour bishops", "1b2k3/8/8/8/8/8/8/4KB2 w - - 0 1", false},
		{"two knights", "4k3/8/8/8/8/8/8/3NKN2 w - - 0 1", false},
		{"single pawn", "4k3/8/8/8/8/8/4P3/4K3 w - - 0 1", false},
		{"single rook", "4k3/8/8/8/8/8/8/4K2R w - - 0 1", false},
		{"single queen", "4k3/8/8/8/8/8/8/3QK3 w - - 0 1", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board := mustBoard(t, tt.fen)
			testutil.AssertEqual(t, HasInsufficientMaterial(board), tt.want)
		})
	}
}

func TestStatusTerminal(t *testing.T) {
	tests := []struct {
		status Status
		want   bool
	}{
		{StatusNormal, false},
		{StatusCheck, false},
		{StatusCheckmate, true},
		{StatusStalemate, true},
		{StatusDrawFiftyMove, true},
		{StatusDrawInsufficientMaterial, true},
	}

	for _, tt := range tests {
		testutil.AssertEqual(t, tt.status.Terminal(), tt.want, "status %v", tt.status)
	}
}
