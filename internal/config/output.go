package config

import (
	"fmt"
	"strings"

	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// OutputFormat selects how the final position is reported.
type OutputFormat int

const (
	Text    OutputFormat = iota // Position, side to move, status and history
	FENOnly                     // The FEN string alone
	JSON                        // A JSON document per game
)

// ParseOutputFormat parses "text", "fen" or "json".
func ParseOutputFormat(s string) (OutputFormat, error) {
	switch strings.ToLower(s) {
	case "", "text":
		return Text, nil
	case "fen":
		return FENOnly, nil
	case "json":
		return JSON, nil
	default:
		return Text, fmt.Errorf("unknown output format %q: %w", s, errors.ErrInvalidConfig)
	}
}

// OutputConfig holds settings related to output formatting.
type OutputConfig struct {
	// Format specifies what is written for the final position.
	Format OutputFormat

	// ShowBoard prints a diagram of the final position.
	ShowBoard bool

	// ShowCaptures lists the captured pieces of each side.
	ShowCaptures bool

	// ShowMoves lists the moves played.
	ShowMoves bool
}

// NewOutputConfig creates an OutputConfig with default values.
func NewOutputConfig() *OutputConfig {
	return &OutputConfig{
		Format:       Text,
		ShowCaptures: true,
		ShowMoves:    true,
	}
}
