package engine

import "github.com/lgbarn/chesskit/internal/chess"

// PseudoLegalMoves enumerates the geometry-only moves for the piece on the
// given square, ignoring whether the mover's own king ends up in check. The
// result is empty if the square is empty or holds a piece of the side not
// to move. Castling moves are only emitted when fully legal, since the
// through-check rules cannot be expressed by the self-check filter alone.
func PseudoLegalMoves(board *chess.Board, from chess.Square) []chess.Move {
	piece := board.At(from)
	if piece == chess.Empty || piece == chess.Off {
		return nil
	}
	colour := chess.ExtractColour(piece)
	if colour != board.ToMove {
		return nil
	}

	switch chess.ExtractPiece(piece) {
	case chess.Pawn:
		return pawnMoves(board, from, colour)
	case chess.Knight:
		return offsetMoves(board, from, colour, knightOffsets[:])
	case chess.Bishop:
		return slidingMoves(board, from, colour, diagonalDirs[:])
	case chess.Rook:
		return slidingMoves(board, from, colour, straightDirs[:])
	case chess.Queen:
		moves := slidingMoves(board, from, colour, diagonalDirs[:])
		return append(moves, slidingMoves(board, from, colour, straightDirs[:])...)
	case chess.King:
		moves := offsetMoves(board, from, colour, kingOffsets[:])
		return append(moves, castlingMoves(board, colour)...)
	}
	return nil
}

// LegalMoves filters the pseudo-legal moves from the given square down to
// those that do not leave the mover's king attacked.
func LegalMoves(board *chess.Board, from chess.Square) []chess.Move {
	pseudo := PseudoLegalMoves(board, from)
	if len(pseudo) == 0 {
		return nil
	}
	colour := board.ToMove
	legal := pseudo[:0]
	for _, move := range pseudo {
		if !leavesKingInCheck(board, move, colour) {
			legal = append(legal, move)
		}
	}
	return legal
}

// AllLegalMoves enumerates every legal move for the side to move.
func AllLegalMoves(board *chess.Board) []chess.Move {
	var moves []chess.Move
	for col := chess.Col('a'); col <= 'h'; col++ {
		for rank := chess.Rank('1'); rank <= '8'; rank++ {
			piece := board.Get(col, rank)
			if piece == chess.Empty || chess.ExtractColour(piece) != board.ToMove {
				continue
			}
			moves = append(moves, LegalMoves(board, chess.Sq(col, rank))...)
		}
	}
	return moves
}

// HasLegalMoves returns true if the given colour has at least one legal
// move. Like AllLegalMoves but with early exit, for mate and stalemate
// detection on positions where the exact move list is not needed.
func HasLegalMoves(board *chess.Board, colour chess.Colour) bool {
	scan := board
	if board.ToMove != colour {
		// Generation is keyed off the side to move.
		scan = board.Copy()
		scan.ToMove = colour
		scan.ClearEnPassant()
	}
	for col := chess.Col('a'); col <= 'h'; col++ {
		for rank := chess.Rank('1'); rank <= '8'; rank++ {
			piece := scan.Get(col, rank)
			if piece == chess.Empty || chess.ExtractColour(piece) != colour {
				continue
			}
			for _, move := range PseudoLegalMoves(scan, chess.Sq(col, rank)) {
				if !leavesKingInCheck(scan, move, colour) {
					return true
				}
			}
		}
	}
	return false
}

// leavesKingInCheck applies the move to a scratch copy and reports whether
// the mover's own king is attacked afterwards.
func leavesKingInCheck(board *chess.Board, move chess.Move, colour chess.Colour) bool {
	test := board.Copy()
	applyToBoard(test, move)
	return IsInCheck(test, colour)
}

// pawnMoves generates pushes, double pushes, captures, en passant captures
// and promotions for the pawn on from.
func pawnMoves(board *chess.Board, from chess.Square, colour chess.Colour) []chess.Move {
	var moves []chess.Move
	dir := chess.ColourOffset(colour)

	startRank := chess.Rank('2')
	promoRank := chess.Rank('8')
	if colour == chess.Black {
		startRank = '7'
		promoRank = '1'
	}

	// Forward pushes, blocked by any occupancy.
	oneUp := from.Offset(0, dir)
	if oneUp.OnBoard() && board.At(oneUp) == chess.Empty {
		moves = appendPawnMove(moves, from, oneUp, chess.Empty, promoRank)
		if from.Rank == startRank {
			twoUp := from.Offset(0, 2*dir)
			if board.At(twoUp) == chess.Empty {
				moves = append(moves, chess.Move{
					From:  from,
					To:    twoUp,
					Class: chess.DoublePawnMove,
				})
			}
		}
	}

	// Diagonal captures, including en passant.
	for _, dc := range [2]int{-1, 1} {
		to := from.Offset(dc, dir)
		if !to.OnBoard() {
			continue
		}
		target := board.At(to)
		if target != chess.Empty && chess.ExtractColour(target) != colour {
			moves = appendPawnMove(moves, from, to, target, promoRank)
			continue
		}
		if ep, ok := board.EnPassantTarget(); ok && to == ep {
			moves = append(moves, chess.Move{
				From:     from,
				To:       to,
				Class:    chess.EnPassantPawnMove,
				Captured: chess.MakeColouredPiece(colour.Opposite(), chess.Pawn),
			})
		}
	}

	return moves
}

// appendPawnMove appends a pawn push or capture, expanding promotions into
// one move per promotable piece.
func appendPawnMove(moves []chess.Move, from, to chess.Square, captured chess.Piece, promoRank chess.Rank) []chess.Move {
	if to.Rank != promoRank {
		return append(moves, chess.Move{
			From:     from,
			To:       to,
			Class:    chess.PawnMove,
			Captured: captured,
		})
	}
	for _, promo := range chess.PromotionPieces {
		moves = append(moves, chess.Move{
			From:      from,
			To:        to,
			Promotion: promo,
			Class:     chess.PawnMoveWithPromotion,
			Captured:  captured,
		})
	}
	return moves
}

// offsetMoves generates moves for the fixed-step pieces (knight, king).
func offsetMoves(board *chess.Board, from chess.Square, colour chess.Colour, offsets [][2]int) []chess.Move {
	var moves []chess.Move
	for _, off := range offsets {
		to := from.Offset(off[0], off[1])
		if !to.OnBoard() {
			continue
		}
		target := board.At(to)
		if target != chess.Empty && chess.ExtractColour(target) == colour {
			continue
		}
		moves = append(moves, chess.Move{
			From:     from,
			To:       to,
			Class:    chess.PieceMove,
			Captured: target,
		})
	}
	return moves
}

// slidingMoves walks each ray until blocked or edge-of-board.
func slidingMoves(board *chess.Board, from chess.Square, colour chess.Colour, dirs [][2]int) []chess.Move {
	var moves []chess.Move
	for _, dir := range dirs {
		to := from.Offset(dir[0], dir[1])
		for to.OnBoard() {
			target := board.At(to)
			if target != chess.Empty {
				if chess.ExtractColour(target) != colour {
					moves = append(moves, chess.Move{
						From:     from,
						To:       to,
						Class:    chess.PieceMove,
						Captured: target,
					})
				}
				break // Blocked
			}
			moves = append(moves, chess.Move{
				From:  from,
				To:    to,
				Class: chess.PieceMove,
			})
			to = to.Offset(dir[0], dir[1])
		}
	}
	return moves
}
