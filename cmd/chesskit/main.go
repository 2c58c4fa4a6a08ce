// chesskit is a command-line front end to the chesskit position engine:
// legal-move listing, move playing, game status and perft counting.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/fatih/color"
)

const programVersion = "0.1.0"

func main() {
	flag.Usage = usage
	flag.Parse()

	if *helpFlag {
		usage()
		os.Exit(0)
	}
	if *versionFlag {
		fmt.Printf("chesskit version %s\n", programVersion)
		os.Exit(0)
	}
	if *noColorFlag {
		color.NoColor = true
	}

	opts := Options{
		FEN:     *fenFlag,
		Moves:   *movesFlag,
		From:    *fromFlag,
		Perft:   *perftFlag,
		Divide:  *divideFlag,
		Workers: *workersFlag,
	}

	report, err := BuildReport(opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "chesskit: %v\n", err)
		os.Exit(2)
	}

	if *jsonFlag {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(report); err != nil {
			fmt.Fprintf(os.Stderr, "chesskit: %v\n", err)
			os.Exit(1)
		}
		return
	}

	WriteReport(os.Stdout, report, !*quietFlag)
}
