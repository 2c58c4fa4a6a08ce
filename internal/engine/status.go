package engine

import "github.com/lgbarn/chesskit/internal/chess"

// Status classifies a position for the side to move.
type Status int

const (
	StatusNormal Status = iota
	StatusCheck
	StatusCheckmate
	StatusStalemate
	StatusDrawFiftyMove
	StatusDrawInsufficientMaterial
)

// String returns the string representation of a status.
func (s Status) String() string {
	names := []string{"Normal", "Check", "Checkmate", "Stalemate", "DrawFiftyMove", "DrawInsufficientMaterial"}
	if int(s) < len(names) {
		return names[s]
	}
	return "Unknown"
}

// Terminal reports whether the status ends the game.
func (s Status) Terminal() bool {
	switch s {
	case StatusCheckmate, StatusStalemate, StatusDrawFiftyMove, StatusDrawInsufficientMaterial:
		return true
	default:
		return false
	}
}

// EvaluateStatus classifies the position for the side to move. Checkmate
// and stalemate take precedence over the draw rules; the fifty-move rule
// (halfmove clock at 100 or more) and insufficient mating material are
// reported as terminal draw states, check and normal otherwise.
func EvaluateStatus(board *chess.Board) Status {
	colour := board.ToMove
	inCheck := IsInCheck(board, colour)
	hasMoves := HasLegalMoves(board, colour)

	switch {
	case inCheck && !hasMoves:
		return StatusCheckmate
	case !inCheck && !hasMoves:
		return StatusStalemate
	case board.HalfmoveClock >= 100:
		return StatusDrawFiftyMove
	case HasInsufficientMaterial(board):
		return StatusDrawInsufficientMaterial
	case inCheck:
		return StatusCheck
	default:
		return StatusNormal
	}
}

// IsCheckmate returns true if the position is checkmate for the side to move.
func IsCheckmate(board *chess.Board) bool {
	colour := board.ToMove
	return IsInCheck(board, colour) && !HasLegalMoves(board, colour)
}

// IsStalemate returns true if the position is stalemate for the side to move.
func IsStalemate(board *chess.Board) bool {
	colour := board.ToMove
	return !IsInCheck(board, colour) && !HasLegalMoves(board, colour)
}

// HasInsufficientMaterial returns true if neither side can deliver mate:
// K vs K, K+B vs K, K+N vs K, or K+B vs K+B with both bishops on the same
// square colour.
func HasInsufficientMaterial(board *chess.Board) bool {
	var whiteMinors, blackMinors []chess.Piece
	var whiteBishopOnLight, blackBishopOnLight bool

	for rank := chess.Rank(chess.FirstRank); rank <= chess.Rank(chess.LastRank); rank++ {
		for col := chess.Col(chess.FirstCol); col <= chess.Col(chess.LastCol); col++ {
			piece := board.Get(col, rank)
			if piece == chess.Empty || piece == chess.Off {
				continue
			}

			colour := chess.ExtractColour(piece)
			pieceType := chess.ExtractPiece(piece)

			// Kings don't count for material.
			if pieceType == chess.King {
				continue
			}

			// Any pawn, rook, or queen means sufficient material.
			if pieceType == chess.Pawn || pieceType == chess.Rook || pieceType == chess.Queen {
				return false
			}

			if colour == chess.White {
				whiteMinors = append(whiteMinors, pieceType)
				if pieceType == chess.Bishop {
					whiteBishopOnLight = chess.Sq(col, rank).IsLight()
				}
			} else {
				blackMinors = append(blackMinors, pieceType)
				if pieceType == chess.Bishop {
					blackBishopOnLight = chess.Sq(col, rank).IsLight()
				}
			}
		}
	}

	// K vs K
	if len(whiteMinors) == 0 && len(blackMinors) == 0 {
		return true
	}

	// K+B vs K or K+N vs K
	if len(whiteMinors) == 0 && len(blackMinors) == 1 {
		return true
	}
	if len(blackMinors) == 0 && len(whiteMinors) == 1 {
		return true
	}

	// K+B vs K+B with same-colour bishops
	if len(whiteMinors) == 1 && len(blackMinors) == 1 {
		if whiteMinors[0] == chess.Bishop && blackMinors[0] == chess.Bishop {
			return whiteBishopOnLight == blackBishopOnLight
		}
	}

	return false
}
