package config

import (
	"fmt"
	"strings"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// AIPlayer selects which sides the move selector plays.
type AIPlayer int

const (
	NoAI AIPlayer = iota
	AIWhite
	AIBlack
	AIBoth
)

// ParseAIPlayer parses "none", "white", "black" or "both".
func ParseAIPlayer(s string) (AIPlayer, error) {
	switch strings.ToLower(s) {
	case "", "none":
		return NoAI, nil
	case "white":
		return AIWhite, nil
	case "black":
		return AIBlack, nil
	case "both":
		return AIBoth, nil
	default:
		return NoAI, fmt.Errorf("unknown AI side %q: %w", s, errors.ErrInvalidConfig)
	}
}

// Plays reports whether the selector moves for colour.
func (a AIPlayer) Plays(colour chess.Colour) bool {
	switch a {
	case AIBoth:
		return true
	case AIWhite:
		return colour == chess.White
	case AIBlack:
		return colour == chess.Black
	default:
		return false
	}
}

func (a AIPlayer) String() string {
	switch a {
	case AIWhite:
		return "white"
	case AIBlack:
		return "black"
	case AIBoth:
		return "both"
	default:
		return "none"
	}
}

// PlayerConfig holds settings for the move selector.
type PlayerConfig struct {
	AI AIPlayer

	// Workers is the number of goroutines evaluating candidate moves.
	Workers int

	// KingSafety skips candidates that leave the mover in check.
	KingSafety bool

	// MaxPlies bounds the number of moves the selector plays in a row
	// (0 = no limit). Only relevant when it plays both sides.
	MaxPlies int
}

// NewPlayerConfig creates a PlayerConfig with default values.
func NewPlayerConfig() *PlayerConfig {
	return &PlayerConfig{
		Workers:    1,
		KingSafety: true,
		MaxPlies:   200,
	}
}

// Validate checks that the player configuration is valid.
func (p *PlayerConfig) Validate() error {
	if p.AI < NoAI || p.AI > AIBoth {
		return fmt.Errorf("AI side %d out of range: %w", p.AI, errors.ErrInvalidConfig)
	}
	if p.Workers < 1 {
		return fmt.Errorf("workers (%d) must be at least 1: %w", p.Workers, errors.ErrInvalidConfig)
	}
	if p.MaxPlies < 0 {
		return fmt.Errorf("max plies (%d) must not be negative: %w", p.MaxPlies, errors.ErrInvalidConfig)
	}
	return nil
}
