// Package hashing provides Zobrist position hashing and repetition tracking.
package hashing

import (
	"math/rand"

	"github.com/lgbarn/chesskit/internal/chess"
)

// zobristSeed fixes the key table so hashes are stable across processes.
const zobristSeed = 42

// zobristKeys holds the random key table: one key per (colour, piece,
// square), plus side-to-move, castling rights and en passant file keys.
type zobristKeys struct {
	pieces    [2][6][64]uint64
	sideBlack uint64
	castling  [4]uint64
	epFile    [8]uint64
}

var keys = newZobristKeys(zobristSeed)

// newZobristKeys fills the key table from a seeded PRNG.
func newZobristKeys(seed int64) *zobristKeys {
	rng := rand.New(rand.NewSource(seed))
	k := &zobristKeys{}
	for colour := 0; colour < 2; colour++ {
		for piece := 0; piece < 6; piece++ {
			for sq := 0; sq < 64; sq++ {
				k.pieces[colour][piece][sq] = rng.Uint64()
			}
		}
	}
	k.sideBlack = rng.Uint64()
	for i := range k.castling {
		k.castling[i] = rng.Uint64()
	}
	for i := range k.epFile {
		k.epFile[i] = rng.Uint64()
	}
	return k
}

// pieceIndex maps a piece type to its key table row.
func pieceIndex(piece chess.Piece) int {
	switch piece {
	case chess.Pawn:
		return 0
	case chess.Knight:
		return 1
	case chess.Bishop:
		return 2
	case chess.Rook:
		return 3
	case chess.Queen:
		return 4
	default:
		return 5 // King
	}
}

// PositionHash computes the Zobrist hash of a position. Two positions hash
// equal exactly when placement, side to move, castling rights and en
// passant target agree, which is the identity the repetition rules use;
// the move counters deliberately do not participate.
func PositionHash(board *chess.Board) uint64 {
	var hash uint64

	for rank := chess.Rank(chess.FirstRank); rank <= chess.Rank(chess.LastRank); rank++ {
		for col := chess.Col(chess.FirstCol); col <= chess.Col(chess.LastCol); col++ {
			piece := board.Get(col, rank)
			if piece == chess.Empty || piece == chess.Off {
				continue
			}
			colour := 0
			if chess.ExtractColour(piece) == chess.Black {
				colour = 1
			}
			sq := chess.Sq(col, rank)
			hash ^= keys.pieces[colour][pieceIndex(chess.ExtractPiece(piece))][sq.Index()]
		}
	}

	if board.ToMove == chess.Black {
		hash ^= keys.sideBlack
	}

	if board.WKingCastle != 0 {
		hash ^= keys.castling[0]
	}
	if board.WQueenCastle != 0 {
		hash ^= keys.castling[1]
	}
	if board.BKingCastle != 0 {
		hash ^= keys.castling[2]
	}
	if board.BQueenCastle != 0 {
		hash ^= keys.castling[3]
	}

	if ep, ok := board.EnPassantTarget(); ok {
		hash ^= keys.epFile[int(ep.Col-chess.FirstCol)]
	}

	return hash
}
