package engine

import (
	"unicode"

	"github.com/lgbarn/chesskit/internal/chess"
	"github.com/lgbarn/chesskit/internal/errors"
)

// ParseCoordMove parses coordinate move text such as "e2e4" or "e7e8q" and
// resolves it against the legal moves of the given position. Malformed text
// fails with ErrInvalidMoveText; well-formed text naming a move that is not
// legal fails with ErrIllegalMove.
func ParseCoordMove(board *chess.Board, text string) (chess.Move, error) {
	from, to, promotion, err := splitCoordMove(text)
	if err != nil {
		return chess.Move{}, &errors.MoveError{Err: err, MoveText: text}
	}

	move, ok := findLegalMove(board, from, to, promotion)
	if !ok {
		return chess.Move{}, &errors.MoveError{
			Err:      errors.ErrIllegalMove,
			MoveText: text,
			FEN:      BoardToFEN(board),
		}
	}
	return move, nil
}

// ApplyCoordMove parses coordinate move text and applies it, returning the
// resulting position. The submitted board is not mutated.
func ApplyCoordMove(board *chess.Board, text string) (*chess.Board, error) {
	move, err := ParseCoordMove(board, text)
	if err != nil {
		return nil, err
	}
	next := board.Copy()
	applyToBoard(next, move)
	return next, nil
}

// splitCoordMove splits "e2e4"/"e7e8q" style text into its parts.
func splitCoordMove(text string) (from, to chess.Square, promotion chess.Piece, err error) {
	if len(text) != 4 && len(text) != 5 {
		return from, to, chess.Empty, errors.ErrInvalidMoveText
	}
	from, err = chess.ParseSquare(text[:2])
	if err != nil {
		return from, to, chess.Empty, errors.ErrInvalidMoveText
	}
	to, err = chess.ParseSquare(text[2:4])
	if err != nil {
		return from, to, chess.Empty, errors.ErrInvalidMoveText
	}
	promotion = chess.Empty
	if len(text) == 5 {
		switch unicode.ToLower(rune(text[4])) {
		case 'n':
			promotion = chess.Knight
		case 'b':
			promotion = chess.Bishop
		case 'r':
			promotion = chess.Rook
		case 'q':
			promotion = chess.Queen
		default:
			return from, to, chess.Empty, errors.ErrInvalidMoveText
		}
	}
	return from, to, promotion, nil
}
