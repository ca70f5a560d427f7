package engine

import (
	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// canBishopMoveTo checks a bishop move along a diagonal. The index delta
// is a multiple of 7 or 9, but only the file and rank deltas tell a real
// diagonal from one that wraps around the board edge.
func canBishopMoveTo(p chess.Piece, target chess.Position, l chess.Layout) error {
	if p.Kind != chess.Bishop {
		return errors.ErrInvalidPiece
	}
	d := deltaOf(p.Pos, target)
	if d.index == 0 || !d.diagonal() {
		return errors.ErrInvalidMove
	}
	if err := checkPath(l, p.Pos, target, d.stepTowards()); err != nil {
		return err
	}
	return checkLanding(l, p, target)
}

func bishopMoves(p chess.Piece, l chess.Layout) []chess.Position {
	return slide(p, l, diagonalRays)
}
