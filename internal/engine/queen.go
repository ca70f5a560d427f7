package engine

import (
	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

func canQueenMoveTo(p chess.Piece, target chess.Position, l chess.Layout) error {
	if p.Kind != chess.Queen {
		return errors.ErrInvalidPiece
	}
	d := deltaOf(p.Pos, target)
	if d.index == 0 || !(d.straight() || d.diagonal()) {
		return errors.ErrInvalidMove
	}
	if err := checkPath(l, p.Pos, target, d.stepTowards()); err != nil {
		return err
	}
	return checkLanding(l, p, target)
}

func queenMoves(p chess.Piece, l chess.Layout) []chess.Position {
	return append(slide(p, l, straightRays), slide(p, l, diagonalRays)...)
}
