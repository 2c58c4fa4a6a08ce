package engine

import (
	"github.com/lgbarn/chesskit/internal/chess"
	"github.com/lgbarn/chesskit/internal/errors"
	"github.com/lgbarn/chesskit/internal/hashing"
)

// Outcome is the terminal result of a game, or OutcomeOngoing.
type Outcome int

const (
	OutcomeOngoing Outcome = iota
	OutcomeWhiteWins
	OutcomeBlackWins
	OutcomeDraw
)

// String returns the conventional result string for an outcome.
func (o Outcome) String() string {
	switch o {
	case OutcomeWhiteWins:
		return "1-0"
	case OutcomeBlackWins:
		return "0-1"
	case OutcomeDraw:
		return "1/2-1/2"
	default:
		return "*"
	}
}

// Game is a position threaded through successive legal moves: the state
// machine Position -> apply -> Position until a terminal status. It keeps
// the move history and per-ply position hashes, so the threefold
// repetition draw, which no single board can express, is detected here.
type Game struct {
	startFEN string
	board    *chess.Board
	moves    []chess.Move
	reps     *hashing.RepetitionTable
}

// NewGame starts a game from the standard starting position.
func NewGame() *Game {
	game, _ := NewGameFromFEN(InitialFEN)
	return game
}

// NewGameFromFEN starts a game from the given position.
func NewGameFromFEN(fen string) (*Game, error) {
	board, err := NewBoardFromFEN(fen)
	if err != nil {
		return nil, err
	}
	g := &Game{
		startFEN: fen,
		board:    board,
		reps:     hashing.NewRepetitionTable(),
	}
	g.reps.Add(hashing.PositionHash(board))
	return g, nil
}

// Board returns the current position. The returned board is the game's
// live value; callers that want to mutate must Copy first.
func (g *Game) Board() *chess.Board {
	return g.board
}

// FEN returns the current position as FEN text.
func (g *Game) FEN() string {
	return BoardToFEN(g.board)
}

// StartFEN returns the position the game started from.
func (g *Game) StartFEN() string {
	return g.startFEN
}

// Moves returns the moves played so far.
func (g *Game) Moves() []chess.Move {
	return g.moves
}

// Ply returns the number of half-moves played.
func (g *Game) Ply() int {
	return len(g.moves)
}

// Play parses coordinate move text, applies it if legal, and records the
// resulting position in the repetition history. Moves submitted after the
// game has ended fail with ErrGameOver.
func (g *Game) Play(moveText string) error {
	if g.Outcome() != OutcomeOngoing {
		return &errors.MoveError{
			Err:      errors.ErrGameOver,
			MoveText: moveText,
			Ply:      len(g.moves) + 1,
		}
	}

	move, err := ParseCoordMove(g.board, moveText)
	if err != nil {
		return err
	}

	next := g.board.Copy()
	applyToBoard(next, move)
	g.board = next
	g.moves = append(g.moves, move)
	g.reps.Add(hashing.PositionHash(next))
	return nil
}

// PlayMove applies a generated legal move directly.
func (g *Game) PlayMove(move chess.Move) error {
	next, err := Apply(g.board, move)
	if err != nil {
		return err
	}
	g.board = next
	g.moves = append(g.moves, move)
	g.reps.Add(hashing.PositionHash(next))
	return nil
}

// Status classifies the current position.
func (g *Game) Status() Status {
	return EvaluateStatus(g.board)
}

// ThreefoldRepetition reports whether the current position has occurred
// three or more times in the game.
func (g *Game) ThreefoldRepetition() bool {
	return g.reps.Threefold(hashing.PositionHash(g.board))
}

// Outcome folds the position status and the repetition history into a
// terminal result, or OutcomeOngoing.
func (g *Game) Outcome() Outcome {
	switch g.Status() {
	case StatusCheckmate:
		if g.board.ToMove == chess.White {
			return OutcomeBlackWins
		}
		return OutcomeWhiteWins
	case StatusStalemate, StatusDrawFiftyMove, StatusDrawInsufficientMaterial:
		return OutcomeDraw
	}
	if g.ThreefoldRepetition() {
		return OutcomeDraw
	}
	return OutcomeOngoing
}
