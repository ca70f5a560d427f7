package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// Status is the state of the game from the point of view of one side.
type Status int

const (
	Normal Status = iota
	Check
	Checkmate
	Stalemate
)

func (s Status) String() string {
	switch s {
	case Check:
		return "check"
	case Checkmate:
		return "checkmate"
	case Stalemate:
		return "stalemate"
	default:
		return "normal"
	}
}

// GameStatus classifies the position for colour to move.
func GameStatus(l chess.Layout, colour chess.Colour) Status {
	inCheck := IsCheck(l, colour)
	hasMoves := HasLegalMoves(l, colour)
	switch {
	case inCheck && !hasMoves:
		return Checkmate
	case inCheck:
		return Check
	case !hasMoves:
		return Stalemate
	default:
		return Normal
	}
}

// IsCheckmate returns true if colour is checkmated on l.
func IsCheckmate(l chess.Layout, colour chess.Colour) bool {
	return GameStatus(l, colour) == Checkmate
}

// IsStalemate returns true if colour is stalemated on l.
func IsStalemate(l chess.Layout, colour chess.Colour) bool {
	return GameStatus(l, colour) == Stalemate
}
