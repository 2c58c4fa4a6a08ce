package testutil

// Well-known positions shared across test packages, in FEN.
const (
	// StartposFEN is the standard starting position.
	StartposFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

	// KiwipeteFEN is the classic move-generator torture position.
	KiwipeteFEN = "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1"

	// RookEndgameFEN is a sparse endgame with en passant and promotion play.
	RookEndgameFEN = "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1"

	// PromotionFEN is promotion-heavy with castling interplay.
	PromotionFEN = "r3k2r/Pppp1ppp/1b3nbN/nP6/BBP1P3/q4N2/Pp1P2PP/R2Q1RK1 w kq - 0 1"

	// FoolsMateFEN is a checkmated position, White to move.
	FoolsMateFEN = "rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 1 3"

	// StalemateFEN is a stalemated position, Black to move with no moves.
	StalemateFEN = "k7/8/KQ6/8/8/8/8/8 b - - 0 1"
)
