package chess

// Board represents a chess position with all state needed for play.
//
// Boards are plain values: every ply produces a fresh copy, so a *Board may
// be shared read-only across goroutines once no caller mutates it.
type Board struct {
	// The board squares with a hedge of 2 around for knight move calculation.
	// squares[col][rank] where col and rank are 0-11 (with hedge).
	Squares [Hedge + BoardSize + Hedge][Hedge + BoardSize + Hedge]Piece

	// Who has the next move.
	ToMove Colour

	// The current full move number.
	MoveNumber uint

	// Rook starting columns for the 4 castling options, 0 when the right
	// is gone. This accommodates Chess960 as well as standard chess.
	WKingCastle  Col
	WQueenCastle Col
	BKingCastle  Col
	BQueenCastle Col

	// Keep track of where the two kings are for check detection.
	WKingCol  Col
	WKingRank Rank
	BKingCol  Col
	BKingRank Rank

	// Is en passant capture possible? If so then EPCol and EPRank hold
	// the target square. Valid only immediately after a double pawn push.
	EnPassant bool
	EPCol     Col
	EPRank    Rank

	// The half-move clock since the last pawn move or capture.
	HalfmoveClock uint
}

// NewBoard creates a new empty board with White to move.
func NewBoard() *Board {
	b := &Board{
		ToMove:     White,
		MoveNumber: 1,
	}
	for col := 0; col < Hedge+BoardSize+Hedge; col++ {
		for rank := 0; rank < Hedge+BoardSize+Hedge; rank++ {
			if col >= Hedge && col < Hedge+BoardSize &&
				rank >= Hedge && rank < Hedge+BoardSize {
				b.Squares[col][rank] = Empty
			} else {
				b.Squares[col][rank] = Off
			}
		}
	}
	return b
}

// Get returns the piece at the given coordinates (using char coords 'a'-'h', '1'-'8').
func (b *Board) Get(col Col, rank Rank) Piece {
	c := ColConvert(col)
	r := RankConvert(rank)
	if c == 0 || r == 0 {
		return Off
	}
	return b.Squares[c][r]
}

// Set places a piece at the given coordinates.
func (b *Board) Set(col Col, rank Rank, piece Piece) {
	c := ColConvert(col)
	r := RankConvert(rank)
	if c != 0 && r != 0 {
		b.Squares[c][r] = piece
	}
}

// At returns the piece on the given square.
func (b *Board) At(sq Square) Piece {
	return b.Get(sq.Col, sq.Rank)
}

// Put places a piece on the given square.
func (b *Board) Put(sq Square, piece Piece) {
	b.Set(sq.Col, sq.Rank, piece)
}

// KingSquare returns the cached square of the given colour's king.
func (b *Board) KingSquare(colour Colour) Square {
	if colour == White {
		return Square{Col: b.WKingCol, Rank: b.WKingRank}
	}
	return Square{Col: b.BKingCol, Rank: b.BKingRank}
}

// SetKingSquare updates the cached king position for the given colour.
func (b *Board) SetKingSquare(colour Colour, sq Square) {
	if colour == White {
		b.WKingCol, b.WKingRank = sq.Col, sq.Rank
	} else {
		b.BKingCol, b.BKingRank = sq.Col, sq.Rank
	}
}

// EnPassantTarget returns the en passant target square, if one is set.
func (b *Board) EnPassantTarget() (Square, bool) {
	if !b.EnPassant {
		return Square{}, false
	}
	return Square{Col: b.EPCol, Rank: b.EPRank}, true
}

// ClearEnPassant clears the en passant target.
func (b *Board) ClearEnPassant() {
	b.EnPassant = false
	b.EPCol = 0
	b.EPRank = 0
}

// HasCastlingRight reports whether the given colour may still castle on the
// given side (rights only; board geometry is the move generator's concern).
func (b *Board) HasCastlingRight(colour Colour, kingside bool) bool {
	switch {
	case colour == White && kingside:
		return b.WKingCastle != 0
	case colour == White:
		return b.WQueenCastle != 0
	case kingside:
		return b.BKingCastle != 0
	default:
		return b.BQueenCastle != 0
	}
}

// RevokeCastlingRights removes both castling rights for the given colour.
func (b *Board) RevokeCastlingRights(colour Colour) {
	if colour == White {
		b.WKingCastle = 0
		b.WQueenCastle = 0
	} else {
		b.BKingCastle = 0
		b.BQueenCastle = 0
	}
}

// Copy creates a deep copy of the board.
func (b *Board) Copy() *Board {
	newBoard := &Board{}
	*newBoard = *b
	return newBoard
}
