// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/lgbarn/chess-rules-go/internal/config"
)

var (
	// Input options
	movesFlag = flag.String("moves", "", "Moves to play, e.g. \"e2e4 e7e5\"")
	startFEN  = flag.String("fen", "", "Start from this FEN position (default: opening)")

	// Player options
	aiSide   = flag.String("ai", "none", "Sides played by the selector: none, white, black, both")
	workers  = flag.Int("workers", 1, "Goroutines used to score candidate moves")
	noSafety = flag.Bool("unsafe", false, "Let the selector leave its own king in check")
	maxPlies = flag.Int("maxplies", 200, "Maximum selector moves in a row (0 = no limit)")

	// Output options
	outputFile   = flag.String("o", "", "Output file (default: stdout)")
	outputFormat = flag.String("format", "text", "Output format: text, fen, json")
	showBoard    = flag.Bool("board", false, "Print a diagram of the final position")
	noMoves      = flag.Bool("nomoves", false, "Don't list the moves played")
	noCaptures   = flag.Bool("nocaptures", false, "Don't list captured pieces")

	// Logging
	logFile   = flag.String("l", "", "Write diagnostics to this file (default: stderr)")
	verbosity = flag.Int("v", 1, "Verbosity: 0 quiet, 1 status changes, 2 every move")

	// Other
	help    = flag.Bool("h", false, "Show help")
	version = flag.Bool("version", false, "Show version")
)

// applyFlags copies the parsed command-line flags into cfg.
func applyFlags(cfg *config.Config) error {
	cfg.Verbosity = *verbosity
	cfg.StartFEN = *startFEN

	if err := applyPlayerFlags(cfg); err != nil {
		return err
	}
	if err := applyOutputFlags(cfg); err != nil {
		return err
	}
	return cfg.Validate()
}

func applyPlayerFlags(cfg *config.Config) error {
	side, err := config.ParseAIPlayer(*aiSide)
	if err != nil {
		return err
	}
	cfg.Player.AI = side
	cfg.Player.Workers = *workers
	cfg.Player.KingSafety = !*noSafety
	cfg.Player.MaxPlies = *maxPlies
	return nil
}

func applyOutputFlags(cfg *config.Config) error {
	format, err := config.ParseOutputFormat(*outputFormat)
	if err != nil {
		return err
	}
	cfg.Output.Format = format
	cfg.Output.ShowBoard = *showBoard
	cfg.Output.ShowMoves = !*noMoves
	cfg.Output.ShowCaptures = !*noCaptures
	return nil
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: chess-rules [options] [move-files...]\n\n")
	fmt.Fprintf(os.Stderr, "Plays moves given in coordinate notation and reports the final position.\n")
	fmt.Fprintf(os.Stderr, "Move files hold whitespace-separated moves; '#' starts a comment and '-' reads stdin.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
}
