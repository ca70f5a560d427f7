package engine

import (
	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

var knightDeltas = []int{6, 10, 15, 17, -6, -10, -15, -17}

// canKnightMoveTo checks a knight jump. Knights are never blocked.
func canKnightMoveTo(p chess.Piece, target chess.Position, l chess.Layout) error {
	if p.Kind != chess.Knight {
		return errors.ErrInvalidPiece
	}
	d := deltaOf(p.Pos, target)
	switch abs(d.index) {
	case 6, 10, 15, 17:
	default:
		return errors.ErrInvalidMove
	}
	cols, rows := abs(d.cols), abs(d.rows)
	if !(cols == 1 && rows == 2) && !(cols == 2 && rows == 1) {
		return errors.ErrInvalidMove
	}
	return checkLanding(l, p, target)
}

func knightMoves(p chess.Piece, l chess.Layout) []chess.Position {
	return stepTargets(p, l, knightDeltas, canKnightMoveTo)
}
