package engine

import "github.com/lgbarn/chesskit/internal/chess"

// Offset tables for the fixed-step pieces.
var (
	knightOffsets = [8][2]int{{-2, -1}, {-2, 1}, {-1, -2}, {-1, 2}, {1, -2}, {1, 2}, {2, -1}, {2, 1}}
	kingOffsets   = [8][2]int{{-1, -1}, {-1, 0}, {-1, 1}, {0, -1}, {0, 1}, {1, -1}, {1, 0}, {1, 1}}

	diagonalDirs = [4][2]int{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}}
	straightDirs = [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
)

// IsInCheck returns true if the given colour's king is in check.
func IsInCheck(board *chess.Board, colour chess.Colour) bool {
	king := board.KingSquare(colour)
	if !king.OnBoard() {
		king = findKing(board, colour)
		if !king.OnBoard() {
			return false // No king found
		}
	}
	return IsSquareAttacked(board, king, colour.Opposite())
}

// findKing scans the board for the king of the given colour.
func findKing(board *chess.Board, colour chess.Colour) chess.Square {
	king := chess.MakeColouredPiece(colour, chess.King)
	for col := chess.Col('a'); col <= 'h'; col++ {
		for rank := chess.Rank('1'); rank <= '8'; rank++ {
			if board.Get(col, rank) == king {
				return chess.Sq(col, rank)
			}
		}
	}
	return chess.Square{}
}

// IsSquareAttacked returns true if the square is attacked by any piece of
// the given colour. Pawn diagonal attacks are distinct from pawn pushes;
// forward pushes never attack.
func IsSquareAttacked(board *chess.Board, sq chess.Square, byColour chess.Colour) bool {
	// Pawn attacks: a pawn attacks diagonally towards its movement
	// direction, so look one rank back from the target.
	pawn := chess.MakeColouredPiece(byColour, chess.Pawn)
	pawnRankStep := -chess.ColourOffset(byColour)
	for _, dc := range [2]int{-1, 1} {
		from := sq.Offset(dc, pawnRankStep)
		if from.OnBoard() && board.At(from) == pawn {
			return true
		}
	}

	// Knight attacks.
	knight := chess.MakeColouredPiece(byColour, chess.Knight)
	for _, off := range knightOffsets {
		from := sq.Offset(off[0], off[1])
		if from.OnBoard() && board.At(from) == knight {
			return true
		}
	}

	// King adjacency.
	king := chess.MakeColouredPiece(byColour, chess.King)
	for _, off := range kingOffsets {
		from := sq.Offset(off[0], off[1])
		if from.OnBoard() && board.At(from) == king {
			return true
		}
	}

	// Sliding pieces along diagonals.
	bishop := chess.MakeColouredPiece(byColour, chess.Bishop)
	queen := chess.MakeColouredPiece(byColour, chess.Queen)
	for _, dir := range diagonalDirs {
		if slidingAttacker(board, sq, dir, bishop, queen) {
			return true
		}
	}

	// Sliding pieces along ranks and files.
	rook := chess.MakeColouredPiece(byColour, chess.Rook)
	for _, dir := range straightDirs {
		if slidingAttacker(board, sq, dir, rook, queen) {
			return true
		}
	}

	return false
}

// slidingAttacker walks a ray from sq and reports whether the first piece
// met is one of the two given attackers.
func slidingAttacker(board *chess.Board, sq chess.Square, dir [2]int, attacker1, attacker2 chess.Piece) bool {
	from := sq.Offset(dir[0], dir[1])
	for from.OnBoard() {
		piece := board.At(from)
		if piece != chess.Empty {
			return piece == attacker1 || piece == attacker2
		}
		from = from.Offset(dir[0], dir[1])
	}
	return false
}
