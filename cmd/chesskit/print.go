// print.go - Human-readable rendering of reports and board diagrams.
package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/lgbarn/chesskit/internal/chess"
	"github.com/lgbarn/chesskit/internal/engine"
)

var (
	whitePieceColour = color.New(color.FgHiWhite, color.Bold)
	blackPieceColour = color.New(color.FgHiBlue, color.Bold)
	coordColour      = color.New(color.FgHiBlack)
)

// RenderBoard draws the board from White's point of view with rank and
// file coordinates.
func RenderBoard(board *chess.Board) string {
	var sb strings.Builder
	for rank := chess.Rank('8'); rank >= '1'; rank-- {
		sb.WriteString(coordColour.Sprintf("%c ", rank))
		for col := chess.Col('a'); col <= 'h'; col++ {
			piece := board.Get(col, rank)
			if piece == chess.Empty {
				sb.WriteString(coordColour.Sprint(". "))
				continue
			}
			letter := string(engine.ColouredPieceToSANLetter(piece))
			if chess.ExtractColour(piece) == chess.White {
				sb.WriteString(whitePieceColour.Sprint(letter))
			} else {
				sb.WriteString(blackPieceColour.Sprint(letter))
			}
			sb.WriteByte(' ')
		}
		sb.WriteByte('\n')
	}
	sb.WriteString(coordColour.Sprint("  a b c d e f g h"))
	sb.WriteByte('\n')
	return sb.String()
}

// WriteReport renders the report for humans.
func WriteReport(w io.Writer, report *Report, showBoard bool) {
	if showBoard {
		fmt.Fprintln(w, RenderBoard(report.board))
	}

	fmt.Fprintf(w, "FEN:     %s\n", report.FEN)
	fmt.Fprintf(w, "Status:  %s\n", report.Status)
	if report.Outcome != "*" {
		fmt.Fprintf(w, "Result:  %s\n", report.Outcome)
	}
	fmt.Fprintf(w, "Legal:   %d moves", len(report.LegalMoves))
	if len(report.LegalMoves) > 0 {
		fmt.Fprintf(w, " - %s", strings.Join(report.LegalMoves, " "))
	}
	fmt.Fprintln(w)

	if report.Perft != nil {
		for _, entry := range report.Perft.Divide {
			fmt.Fprintf(w, "  %s: %d\n", entry.Move, entry.Nodes)
		}
		fmt.Fprintf(w, "Perft(%d) = %d nodes in %v\n",
			report.Perft.Depth, report.Perft.Nodes, report.Perft.Elapsed)
	}
}
