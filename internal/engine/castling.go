package engine

import "github.com/lgbarn/chesskit/internal/chess"

// castlingMoves generates the castling moves available to the given colour.
// A castle is emitted only when the rights survive, the squares between
// king and rook are empty, and the king's start, pass-through and
// destination squares are all unattacked. Rights are tracked on the board,
// never inferred from piece positions.
func castlingMoves(board *chess.Board, colour chess.Colour) []chess.Move {
	var moves []chess.Move

	backRank := chess.Rank('1')
	if colour == chess.Black {
		backRank = '8'
	}
	king := board.KingSquare(colour)
	if king.Rank != backRank {
		return nil
	}

	if board.HasCastlingRight(colour, true) {
		if move, ok := castleMove(board, colour, king, true); ok {
			moves = append(moves, move)
		}
	}
	if board.HasCastlingRight(colour, false) {
		if move, ok := castleMove(board, colour, king, false); ok {
			moves = append(moves, move)
		}
	}
	return moves
}

// castleMove validates one castling option and builds its move.
func castleMove(board *chess.Board, colour chess.Colour, king chess.Square, kingside bool) (chess.Move, bool) {
	var rookCol, kingToCol chess.Col
	class := chess.QueensideCastle
	if kingside {
		class = chess.KingsideCastle
		kingToCol = 'g'
		if colour == chess.White {
			rookCol = board.WKingCastle
		} else {
			rookCol = board.BKingCastle
		}
	} else {
		kingToCol = 'c'
		if colour == chess.White {
			rookCol = board.WQueenCastle
		} else {
			rookCol = board.BQueenCastle
		}
	}

	// Rights out of sync with the position (caller-supplied FEN) must not
	// crash; the castle is simply unavailable.
	rook := chess.Sq(rookCol, king.Rank)
	if board.At(rook) != chess.MakeColouredPiece(colour, chess.Rook) {
		return chess.Move{}, false
	}

	if !squaresBetweenEmpty(board, king, rook) {
		return chess.Move{}, false
	}

	// The king may not castle out of, through, or into check.
	enemy := colour.Opposite()
	step := 1
	if kingToCol < king.Col {
		step = -1
	}
	for col := king.Col; ; col = chess.Col(int(col) + step) {
		if IsSquareAttacked(board, chess.Sq(col, king.Rank), enemy) {
			return chess.Move{}, false
		}
		if col == kingToCol {
			break
		}
	}

	return chess.Move{
		From:  king,
		To:    chess.Sq(kingToCol, king.Rank),
		Class: class,
	}, true
}

// squaresBetweenEmpty reports whether every square strictly between the two
// given squares on a shared rank is empty.
func squaresBetweenEmpty(board *chess.Board, a, b chess.Square) bool {
	lo, hi := a.Col, b.Col
	if lo > hi {
		lo, hi = hi, lo
	}
	for col := lo + 1; col < hi; col++ {
		if board.Get(col, a.Rank) != chess.Empty {
			return false
		}
	}
	return true
}
