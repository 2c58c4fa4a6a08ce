package chess

import (
	"fmt"

	"github.com/lgbarn/chesskit/internal/errors"
)

// Square identifies one of the 64 board squares by file and rank character.
type Square struct {
	Col  Col
	Rank Rank
}

// Sq is a shorthand constructor for a square from file and rank characters.
func Sq(col Col, rank Rank) Square {
	return Square{Col: col, Rank: rank}
}

// ParseSquare parses algebraic square notation such as "e4".
func ParseSquare(s string) (Square, error) {
	if len(s) != 2 {
		return Square{}, fmt.Errorf("square %q: %w", s, errors.ErrInvalidSquare)
	}
	sq := Square{Col: Col(s[0]), Rank: Rank(s[1])}
	if !sq.OnBoard() {
		return Square{}, fmt.Errorf("square %q: %w", s, errors.ErrInvalidSquare)
	}
	return sq, nil
}

// OnBoard reports whether the square lies on the 8x8 board.
func (s Square) OnBoard() bool {
	return s.Col >= FirstCol && s.Col <= LastCol && s.Rank >= FirstRank && s.Rank <= LastRank
}

// Offset returns the square displaced by dc files and dr ranks.
// The result may lie off the board; callers check OnBoard.
func (s Square) Offset(dc, dr int) Square {
	return Square{Col: Col(int(s.Col) + dc), Rank: Rank(int(s.Rank) + dr)}
}

// Index returns the square's 0-63 index (a1=0, h1=7, a8=56).
func (s Square) Index() int {
	return int(s.Rank-RankBase)*BoardSize + int(s.Col-ColBase)
}

// IsLight reports whether the square is a light square.
func (s Square) IsLight() bool {
	return (int(s.Col-ColBase)+int(s.Rank-RankBase))%2 == 1
}

// String returns the algebraic name of the square, e.g. "e4".
func (s Square) String() string {
	return string([]byte{byte(s.Col), byte(s.Rank)})
}
