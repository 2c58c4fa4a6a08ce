package engine

import (
	"github.com/lgbarn/chesskit/internal/chess"
	"github.com/lgbarn/chesskit/internal/errors"
)

// Apply applies a legal move to a board and returns the resulting position
// as a new value. The caller's board is never mutated and the result shares
// no state with it. A move not present in the legal-move set for the
// current position fails with ErrIllegalMove.
func Apply(board *chess.Board, move chess.Move) (*chess.Board, error) {
	legal, ok := findLegalMove(board, move.From, move.To, move.Promotion)
	if !ok {
		return nil, &errors.MoveError{
			Err:      errors.ErrIllegalMove,
			MoveText: move.String(),
			FEN:      BoardToFEN(board),
		}
	}

	next := board.Copy()
	applyToBoard(next, legal)
	return next, nil
}

// findLegalMove locates the generated legal move with the given from, to
// and promotion. The generated move carries the derived class and capture
// data, so caller-supplied flags are never trusted.
func findLegalMove(board *chess.Board, from, to chess.Square, promotion chess.Piece) (chess.Move, bool) {
	for _, move := range LegalMoves(board, from) {
		if move.Matches(from, to, promotion) {
			return move, true
		}
	}
	return chess.Move{}, false
}

// applyToBoard mutates b with a move known to be well-formed: occupancy,
// castling rights, en passant target, clocks and side to move. Used on
// fresh copies by Apply and on scratch boards by the legality filter.
func applyToBoard(b *chess.Board, move chess.Move) {
	colour := b.ToMove
	piece := b.At(move.From)
	pieceType := chess.ExtractPiece(piece)
	captured := b.At(move.To)

	// En passant removes the bypassed pawn, not the piece on the target.
	if move.Class == chess.EnPassantPawnMove {
		b.Set(move.To.Col, move.From.Rank, chess.Empty)
		captured = chess.MakeColouredPiece(colour.Opposite(), chess.Pawn)
	}

	b.Put(move.From, chess.Empty)
	if move.Class == chess.PawnMoveWithPromotion {
		b.Put(move.To, chess.MakeColouredPiece(colour, move.Promotion))
	} else {
		b.Put(move.To, piece)
	}

	// Castling also relocates the rook, whose column the rights still hold.
	if move.IsCastle() {
		relocateCastlingRook(b, colour, move)
	}

	// Rights are revoked permanently: when the king moves (castling
	// included), when a rook leaves its start square, and when a rook is
	// captured on it. A piece returning later never restores them.
	if pieceType == chess.King {
		b.SetKingSquare(colour, move.To)
		b.RevokeCastlingRights(colour)
	}
	if pieceType == chess.Rook {
		revokeRookRight(b, colour, move.From)
	}
	if captured != chess.Empty && chess.ExtractPiece(captured) == chess.Rook {
		revokeRookRight(b, chess.ExtractColour(captured), move.To)
	}

	// The en passant target lives for exactly one ply.
	b.ClearEnPassant()
	if move.Class == chess.DoublePawnMove {
		b.EnPassant = true
		b.EPCol = move.From.Col
		b.EPRank = chess.Rank(int(move.From.Rank) + chess.ColourOffset(colour))
	}

	if move.IsPawnMove() || captured != chess.Empty {
		b.HalfmoveClock = 0
	} else {
		b.HalfmoveClock++
	}
	if colour == chess.Black {
		b.MoveNumber++
	}
	b.ToMove = colour.Opposite()
}

// relocateCastlingRook moves the rook half of a castling move.
func relocateCastlingRook(b *chess.Board, colour chess.Colour, move chess.Move) {
	var rookFromCol, rookToCol chess.Col
	if move.Class == chess.KingsideCastle {
		rookToCol = 'f'
		if colour == chess.White {
			rookFromCol = b.WKingCastle
		} else {
			rookFromCol = b.BKingCastle
		}
	} else {
		rookToCol = 'd'
		if colour == chess.White {
			rookFromCol = b.WQueenCastle
		} else {
			rookFromCol = b.BQueenCastle
		}
	}
	b.Set(rookFromCol, move.From.Rank, chess.Empty)
	b.Set(rookToCol, move.From.Rank, chess.MakeColouredPiece(colour, chess.Rook))
}

// revokeRookRight removes the castling right tied to the rook start square,
// when a rook moves away from it or is captured on it.
func revokeRookRight(b *chess.Board, colour chess.Colour, sq chess.Square) {
	backRank := chess.Rank('1')
	if colour == chess.Black {
		backRank = '8'
	}
	if sq.Rank != backRank {
		return
	}
	if colour == chess.White {
		if sq.Col == b.WKingCastle {
			b.WKingCastle = 0
		}
		if sq.Col == b.WQueenCastle {
			b.WQueenCastle = 0
		}
	} else {
		if sq.Col == b.BKingCastle {
			b.BKingCastle = 0
		}
		if sq.Col == b.BQueenCastle {
			b.BQueenCastle = 0
		}
	}
}
