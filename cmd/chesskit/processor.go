// processor.go - Builds the position report the output layer renders.
package main

import (
	"strings"
	"time"

	"github.com/lgbarn/chesskit/internal/chess"
	"github.com/lgbarn/chesskit/internal/engine"
)

// Options captures one invocation's worth of work.
type Options struct {
	FEN     string
	Moves   string
	From    string
	Perft   int
	Divide  bool
	Workers int
}

// PerftReport is the node count for one depth, with timing.
type PerftReport struct {
	Depth   int            `json:"depth"`
	Nodes   uint64         `json:"nodes"`
	Elapsed time.Duration  `json:"elapsed_ns"`
	Divide  []DivideReport `json:"divide,omitempty"`
}

// DivideReport is the subtree count for one root move.
type DivideReport struct {
	Move  string `json:"move"`
	Nodes uint64 `json:"nodes"`
}

// Report is everything the CLI learned about the requested position.
type Report struct {
	FEN        string       `json:"fen"`
	Status     string       `json:"status"`
	Outcome    string       `json:"outcome"`
	Played     []string     `json:"played,omitempty"`
	LegalMoves []string     `json:"legal_moves"`
	Perft      *PerftReport `json:"perft,omitempty"`

	board *chess.Board
}

// BuildReport loads the position, plays the requested moves and answers the
// requested queries. Errors are the engine's recoverable kinds; the caller
// maps them to exit codes.
func BuildReport(opts Options) (*Report, error) {
	fen := opts.FEN
	if fen == "" {
		fen = engine.InitialFEN
	}

	game, err := engine.NewGameFromFEN(fen)
	if err != nil {
		return nil, err
	}

	played := strings.Fields(opts.Moves)
	for _, moveText := range played {
		if err := game.Play(moveText); err != nil {
			return nil, err
		}
	}

	report := &Report{
		FEN:     game.FEN(),
		Status:  game.Status().String(),
		Outcome: game.Outcome().String(),
		Played:  played,
		board:   game.Board(),
	}

	if err := addLegalMoves(report, opts.From); err != nil {
		return nil, err
	}
	if opts.Perft > 0 {
		addPerft(report, opts)
	}
	return report, nil
}

// addLegalMoves fills in the legal moves, restricted to one source square
// when asked.
func addLegalMoves(report *Report, from string) error {
	var moves []chess.Move
	if from != "" {
		sq, err := chess.ParseSquare(from)
		if err != nil {
			return err
		}
		moves = engine.LegalMoves(report.board, sq)
	} else {
		moves = engine.AllLegalMoves(report.board)
	}

	report.LegalMoves = make([]string, 0, len(moves))
	for _, move := range moves {
		report.LegalMoves = append(report.LegalMoves, move.String())
	}
	return nil
}

// addPerft runs the requested perft count, split per root move when asked.
func addPerft(report *Report, opts Options) {
	start := time.Now()
	perft := &PerftReport{Depth: opts.Perft}

	if opts.Divide {
		entries := engine.Divide(report.board, opts.Perft)
		for _, entry := range entries {
			perft.Nodes += entry.Nodes
			perft.Divide = append(perft.Divide, DivideReport{
				Move:  entry.Move.String(),
				Nodes: entry.Nodes,
			})
		}
	} else {
		perft.Nodes = engine.ParallelPerft(report.board, opts.Perft, opts.Workers)
	}

	perft.Elapsed = time.Since(start)
	report.Perft = perft
}
