// Package engine provides move generation, move application and game state
// evaluation over chess positions.
package engine

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/lgbarn/chesskit/internal/chess"
	"github.com/lgbarn/chesskit/internal/errors"
)

// InitialFEN is the FEN string for the standard starting position.
const InitialFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// SAN piece characters for FEN strings (always English).
var sanPieceChars = map[chess.Piece]byte{
	chess.Pawn:   'P',
	chess.Knight: 'N',
	chess.Bishop: 'B',
	chess.Rook:   'R',
	chess.Queen:  'Q',
	chess.King:   'K',
}

// ConvertFENCharToPiece converts a FEN character to a piece type.
func ConvertFENCharToPiece(c byte) chess.Piece {
	switch c {
	case 'K', 'k':
		return chess.King
	case 'Q', 'q':
		return chess.Queen
	case 'R', 'r':
		return chess.Rook
	case 'N', 'n':
		return chess.Knight
	case 'B', 'b':
		return chess.Bishop
	case 'P', 'p':
		return chess.Pawn
	default:
		return chess.Empty
	}
}

// SANPieceLetter returns the SAN letter for a piece.
func SANPieceLetter(piece chess.Piece) byte {
	if c, ok := sanPieceChars[piece]; ok {
		return c
	}
	return '?'
}

// ColouredPieceToSANLetter returns the SAN letter for a coloured piece.
func ColouredPieceToSANLetter(colouredPiece chess.Piece) byte {
	piece := chess.ExtractPiece(colouredPiece)
	letter := SANPieceLetter(piece)
	if chess.ExtractColour(colouredPiece) == chess.Black {
		letter = byte(unicode.ToLower(rune(letter)))
	}
	return letter
}

// fenError wraps an invalid-FEN failure with the offending field and text.
func fenError(fen, field, format string, args ...interface{}) error {
	return &errors.PositionError{
		Err:   fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), errors.ErrInvalidFEN),
		FEN:   fen,
		Field: field,
	}
}

// NewBoardFromFEN creates a board from a six-field FEN string.
//
// The parse is strict: wrong field count, ranks that do not sum to eight
// files, unknown placement characters, malformed castling or en passant
// fields and non-numeric counters are all rejected with ErrInvalidFEN.
// Positions without exactly one king per side, or with a pawn on the first
// or last rank, are rejected as well.
func NewBoardFromFEN(fen string) (*chess.Board, error) {
	parts := strings.Fields(fen)
	if len(parts) != 6 {
		return nil, fenError(fen, "", "expected 6 fields, got %d", len(parts))
	}

	board := chess.NewBoard()

	if err := parsePiecePositions(board, fen, parts[0]); err != nil {
		return nil, err
	}
	if err := parseSideToMove(board, fen, parts[1]); err != nil {
		return nil, err
	}
	if err := parseCastlingRights(board, fen, parts[2]); err != nil {
		return nil, err
	}
	if err := parseEnPassant(board, fen, parts[3]); err != nil {
		return nil, err
	}
	if err := parseClocks(board, fen, parts[4], parts[5]); err != nil {
		return nil, err
	}

	return board, nil
}

// parsePiecePositions parses and validates the piece placement field.
func parsePiecePositions(board *chess.Board, fen, positions string) error {
	ranks := strings.Split(positions, "/")
	if len(ranks) != chess.BoardSize {
		return fenError(fen, "placement", "expected 8 ranks, got %d", len(ranks))
	}

	var whiteKings, blackKings int

	for i, rankText := range ranks {
		rank := chess.Rank('8' - i)
		col := chess.Col('a')
		files := 0

		for j := 0; j < len(rankText); j++ {
			c := rankText[j]
			if c >= '1' && c <= '8' {
				n := int(c - '0')
				col += chess.Col(n)
				files += n
				continue
			}

			piece := ConvertFENCharToPiece(c)
			if piece == chess.Empty {
				return fenError(fen, "placement", "invalid piece character %q", c)
			}
			if files >= chess.BoardSize {
				return fenError(fen, "placement", "rank %c has more than 8 files", rank)
			}

			colour := chess.White
			if unicode.IsLower(rune(c)) {
				colour = chess.Black
			}

			if piece == chess.Pawn && (rank == chess.FirstRank || rank == chess.LastRank) {
				return fenError(fen, "placement", "pawn on rank %c", rank)
			}

			board.Set(col, rank, chess.MakeColouredPiece(colour, piece))

			if piece == chess.King {
				board.SetKingSquare(colour, chess.Sq(col, rank))
				if colour == chess.White {
					whiteKings++
				} else {
					blackKings++
				}
			}
			col++
			files++
		}

		if files != chess.BoardSize {
			return fenError(fen, "placement", "rank %c sums to %d files", rank, files)
		}
	}

	if whiteKings != 1 || blackKings != 1 {
		return fenError(fen, "placement", "expected one king per side, got %d white and %d black", whiteKings, blackKings)
	}
	return nil
}

// parseSideToMove parses the side to move field.
func parseSideToMove(board *chess.Board, fen, field string) error {
	switch field {
	case "w":
		board.ToMove = chess.White
	case "b":
		board.ToMove = chess.Black
	default:
		return fenError(fen, "side to move", "expected w or b, got %q", field)
	}
	return nil
}

// parseCastlingRights parses the castling availability field.
// KQkq and X-FEN column letters (Chess960) are both accepted.
func parseCastlingRights(board *chess.Board, fen, field string) error {
	board.WKingCastle = 0
	board.WQueenCastle = 0
	board.BKingCastle = 0
	board.BQueenCastle = 0

	if field == "-" {
		return nil
	}
	if field == "" || len(field) > 4 {
		return fenError(fen, "castling", "malformed availability %q", field)
	}

	for _, c := range field {
		var right *chess.Col
		col := chess.Col(0)
		switch {
		case c == 'K':
			right, col = &board.WKingCastle, 'h'
		case c == 'Q':
			right, col = &board.WQueenCastle, 'a'
		case c == 'k':
			right, col = &board.BKingCastle, 'h'
		case c == 'q':
			right, col = &board.BQueenCastle, 'a'
		case c >= 'A' && c <= 'H':
			col = chess.Col(unicode.ToLower(c))
			if col > board.WKingCol {
				right = &board.WKingCastle
			} else {
				right = &board.WQueenCastle
			}
		case c >= 'a' && c <= 'h':
			col = chess.Col(c)
			if col > board.BKingCol {
				right = &board.BKingCastle
			} else {
				right = &board.BQueenCastle
			}
		default:
			return fenError(fen, "castling", "invalid character %q", c)
		}
		if *right != 0 {
			return fenError(fen, "castling", "duplicate right %q", c)
		}
		*right = col
	}
	return nil
}

// parseEnPassant parses the en passant target square field.
func parseEnPassant(board *chess.Board, fen, field string) error {
	board.ClearEnPassant()
	if field == "-" {
		return nil
	}

	sq, err := chess.ParseSquare(field)
	if err != nil {
		return fenError(fen, "en passant", "invalid target %q", field)
	}
	if sq.Rank != '3' && sq.Rank != '6' {
		return fenError(fen, "en passant", "target %q not on rank 3 or 6", field)
	}

	board.EnPassant = true
	board.EPCol = sq.Col
	board.EPRank = sq.Rank
	return nil
}

// parseClocks parses the halfmove clock and fullmove number fields.
func parseClocks(board *chess.Board, fen, halfmove, fullmove string) error {
	hm, err := strconv.ParseUint(halfmove, 10, 32)
	if err != nil {
		return fenError(fen, "halfmove clock", "non-numeric value %q", halfmove)
	}
	fm, err := strconv.ParseUint(fullmove, 10, 32)
	if err != nil {
		return fenError(fen, "fullmove number", "non-numeric value %q", fullmove)
	}
	if fm == 0 {
		fm = 1
	}
	board.HalfmoveClock = uint(hm)
	board.MoveNumber = uint(fm)
	return nil
}

// BoardToFEN converts a board to its canonical FEN string. Absent castling
// rights and en passant targets serialize as "-", and castling availability
// is always emitted in KQkq order, so round-trips are byte-stable.
func BoardToFEN(board *chess.Board) string {
	var sb strings.Builder

	writePiecePositions(&sb, board)
	sb.WriteByte(' ')
	writeSideToMove(&sb, board)
	sb.WriteByte(' ')
	writeCastlingRights(&sb, board)
	sb.WriteByte(' ')
	writeEnPassant(&sb, board)
	sb.WriteByte(' ')
	fmt.Fprintf(&sb, "%d %d", board.HalfmoveClock, board.MoveNumber)

	return sb.String()
}

// writePiecePositions writes the piece placement to the builder.
func writePiecePositions(sb *strings.Builder, board *chess.Board) {
	for rank := chess.Rank('8'); rank >= '1'; rank-- {
		emptyCount := 0
		for col := chess.Col('a'); col <= 'h'; col++ {
			piece := board.Get(col, rank)
			if piece == chess.Empty {
				emptyCount++
				continue
			}
			if emptyCount > 0 {
				sb.WriteByte(byte('0' + emptyCount))
				emptyCount = 0
			}
			sb.WriteByte(ColouredPieceToSANLetter(piece))
		}
		if emptyCount > 0 {
			sb.WriteByte(byte('0' + emptyCount))
		}
		if rank > '1' {
			sb.WriteByte('/')
		}
	}
}

// writeSideToMove writes the side to move to the builder.
func writeSideToMove(sb *strings.Builder, board *chess.Board) {
	if board.ToMove == chess.White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}
}

// writeCastlingRights writes the castling availability to the builder.
func writeCastlingRights(sb *strings.Builder, board *chess.Board) {
	hasCastling := false
	if board.WKingCastle != 0 {
		sb.WriteByte('K')
		hasCastling = true
	}
	if board.WQueenCastle != 0 {
		sb.WriteByte('Q')
		hasCastling = true
	}
	if board.BKingCastle != 0 {
		sb.WriteByte('k')
		hasCastling = true
	}
	if board.BQueenCastle != 0 {
		sb.WriteByte('q')
		hasCastling = true
	}
	if !hasCastling {
		sb.WriteByte('-')
	}
}

// writeEnPassant writes the en passant target square to the builder.
func writeEnPassant(sb *strings.Builder, board *chess.Board) {
	if board.EnPassant {
		sb.WriteByte(byte(board.EPCol))
		sb.WriteByte(byte(board.EPRank))
	} else {
		sb.WriteByte('-')
	}
}

// NewInitialBoard creates a board with the standard starting position.
func NewInitialBoard() *chess.Board {
	board, _ := NewBoardFromFEN(InitialFEN)
	return board
}
