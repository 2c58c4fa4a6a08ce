// flags.go - Command-line flag definitions
package main

import (
	"flag"
	"fmt"
	"os"
)

var (
	// Position input
	fenFlag   = flag.String("fen", "", "Position to analyze, in FEN (default: starting position)")
	movesFlag = flag.String("moves", "", "Coordinate moves to play from the position, e.g. \"e2e4 e7e5\"")

	// Queries
	fromFlag   = flag.String("from", "", "List legal moves from this square only, e.g. e2")
	perftFlag  = flag.Int("perft", 0, "Count legal-move tree nodes to this depth")
	divideFlag = flag.Bool("divide", false, "Split the perft count per root move")

	// Execution
	workersFlag = flag.Int("workers", 1, "Worker goroutines for perft counting")

	// Output options
	jsonFlag    = flag.Bool("json", false, "Output the report as JSON")
	noColorFlag = flag.Bool("nocolor", false, "Disable coloured board output")
	quietFlag   = flag.Bool("q", false, "Suppress the board diagram")

	versionFlag = flag.Bool("version", false, "Print version and exit")
	helpFlag    = flag.Bool("help", false, "Print usage and exit")
)

// usage prints the program usage message.
func usage() {
	out := flag.CommandLine.Output()
	fmt.Fprintf(out, "Usage: %s [options]\n\n", os.Args[0])
	fmt.Fprintf(out, "chesskit analyzes a chess position: it lists legal moves, plays a\n")
	fmt.Fprintf(out, "sequence of coordinate moves, reports the game status, and runs perft\n")
	fmt.Fprintf(out, "node counts.\n\nOptions:\n")
	flag.PrintDefaults()
	fmt.Fprintf(out, "\nExamples:\n")
	fmt.Fprintf(out, "  %s -moves \"e2e4 e7e5 g1f3\"\n", os.Args[0])
	fmt.Fprintf(out, "  %s -fen \"k7/8/KQ6/8/8/8/8/8 b - - 0 1\"\n", os.Args[0])
	fmt.Fprintf(out, "  %s -perft 5 -workers 4\n", os.Args[0])
	fmt.Fprintf(out, "  %s -from e2 -json\n", os.Args[0])
}
