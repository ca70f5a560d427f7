// chess-rules plays chess moves under the rules engine, optionally letting
// the greedy move selector answer for one or both sides.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/errors"
	"github.com/lgbarn/chess-rules-go/internal/game"
	"github.com/lgbarn/chess-rules-go/internal/output"
)

const programVersion = "0.1.0"

func main() {
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		os.Exit(0)
	}

	if *version {
		fmt.Printf("chess-rules version %s\n", programVersion)
		os.Exit(0)
	}

	cfg := config.NewConfig()
	if err := applyFlags(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	setupLogFile(cfg)
	setupOutputFile(cfg)

	moves, err := collectMoves(*movesFlag, flag.Args(), os.Stdin)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading moves: %v\n", err)
		os.Exit(1)
	}

	if err := run(cfg, moves); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// run plays moves and writes the resulting game. A rejected move stops
// play; the position reached so far is still written.
func run(cfg *config.Config, moves []string) error {
	g, err := game.New(cfg)
	if err != nil {
		return err
	}

	playErr := g.Replay(moves)
	if playErr != nil && !errors.IsRejection(playErr) {
		return playErr
	}

	w := output.NewWriter(cfg.OutputFile, cfg)
	if err := w.WriteGame(g); err != nil {
		return err
	}
	if err := w.Close(); err != nil {
		return err
	}

	cfg.Logf(1, "%d plies played, %s to move: %s", g.Ply(), g.Turn, g.Status)
	return playErr
}

// collectMoves gathers moves from the -moves flag followed by each file
// in order. The name "-" reads stdin.
func collectMoves(inline string, files []string, stdin io.Reader) ([]string, error) {
	moves, err := game.ReadMoves(strings.NewReader(inline))
	if err != nil {
		return nil, err
	}

	for _, name := range files {
		var more []string
		if name == "-" {
			more, err = game.ReadMoves(stdin)
		} else {
			more, err = readMoveFile(name)
		}
		if err != nil {
			return nil, errors.Wrap(err, name)
		}
		moves = append(moves, more...)
	}
	return moves, nil
}

func readMoveFile(name string) ([]string, error) {
	f, err := os.Open(name) //nolint:gosec // G304: move files are named by the user
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return game.ReadMoves(f)
}

// setupLogFile configures the log file based on command-line flags.
func setupLogFile(cfg *config.Config) {
	if *logFile == "" {
		return
	}
	file, err := os.Create(*logFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating log file %s: %v\n", *logFile, err)
		os.Exit(1)
	}
	cfg.LogFile = file
}

// setupOutputFile configures the output file based on command-line flags.
func setupOutputFile(cfg *config.Config) {
	if *outputFile == "" {
		return
	}
	file, err := os.Create(*outputFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating output file %s: %v\n", *outputFile, err)
		os.Exit(1)
	}
	cfg.OutputFilename = *outputFile
	cfg.OutputFile = file
}
