package chess

import "unicode"

// MoveClass categorizes different types of chess moves.
type MoveClass int

const (
	PieceMove MoveClass = iota
	PawnMove
	DoublePawnMove
	EnPassantPawnMove
	PawnMoveWithPromotion
	KingsideCastle
	QueensideCastle
)

// Move is a single move as produced by the move generator. It is a plain
// value: generated once, applied once, never mutated.
type Move struct {
	// Source and destination squares.
	From Square
	To   Square

	// The piece promoted to (Empty if not a promotion).
	Promotion Piece

	// Class of move. Derived by the generator from board state, never
	// supplied by a caller, so en passant and castling replay unambiguously.
	Class MoveClass

	// The coloured piece captured by this move (Empty if no capture).
	// For en passant this is the pawn on the bypassed square.
	Captured Piece
}

// IsCapture reports whether this move captures a piece.
func (m Move) IsCapture() bool {
	return m.Captured != Empty
}

// IsPromotion reports whether this move is a pawn promotion.
func (m Move) IsPromotion() bool {
	return m.Class == PawnMoveWithPromotion
}

// IsEnPassant reports whether this move is an en passant capture.
func (m Move) IsEnPassant() bool {
	return m.Class == EnPassantPawnMove
}

// IsCastle reports whether this move is a castling move.
func (m Move) IsCastle() bool {
	return m.Class == KingsideCastle || m.Class == QueensideCastle
}

// IsPawnMove reports whether the moving piece is a pawn.
func (m Move) IsPawnMove() bool {
	switch m.Class {
	case PawnMove, DoublePawnMove, EnPassantPawnMove, PawnMoveWithPromotion:
		return true
	default:
		return false
	}
}

// String returns the move in coordinate notation, e.g. "e2e4" or "e7e8q".
func (m Move) String() string {
	s := m.From.String() + m.To.String()
	if m.Promotion != Empty {
		s += string(unicode.ToLower(rune(m.Promotion.Letter())))
	}
	return s
}

// Matches reports whether the move has the given from, to and promotion.
// Used to locate a caller-submitted move in the generated legal set.
func (m Move) Matches(from, to Square, promotion Piece) bool {
	return m.From == from && m.To == to && m.Promotion == promotion
}
