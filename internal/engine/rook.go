package engine

import (
	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// canRookMoveTo checks a rook move along a rank or file.
func canRookMoveTo(p chess.Piece, target chess.Position, l chess.Layout) error {
	if p.Kind != chess.Rook {
		return errors.ErrInvalidPiece
	}
	d := deltaOf(p.Pos, target)
	if d.index == 0 || !d.straight() {
		return errors.ErrInvalidMove
	}
	if err := checkPath(l, p.Pos, target, d.stepTowards()); err != nil {
		return err
	}
	return checkLanding(l, p, target)
}

func rookMoves(p chess.Piece, l chess.Layout) []chess.Position {
	return slide(p, l, straightRays)
}
