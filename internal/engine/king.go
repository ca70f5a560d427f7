package engine

import (
	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

var kingDeltas = []int{7, 8, 9, 1, -7, -8, -9, -1}

// canKingMoveTo checks a one-square king move and that the king would
// not stand attacked on the target square.
func canKingMoveTo(p chess.Piece, target chess.Position, l chess.Layout) error {
	if p.Kind != chess.King {
		return errors.ErrInvalidPiece
	}
	d := deltaOf(p.Pos, target)
	switch abs(d.index) {
	case 1, 7, 8, 9:
	default:
		return errors.ErrInvalidMove
	}
	if abs(d.cols) > 1 || abs(d.rows) > 1 {
		return errors.ErrInvalidMove
	}
	if err := checkLanding(l, p, target); err != nil {
		return err
	}

	// Judge the target with the king already standing on it, so that
	// the vacated square no longer shields it and a defended piece on
	// the target counts as protected.
	after := l.Fork()
	after.Remove(p.Pos)
	after.Place(p.MovedTo(target))
	if isAttacked(target, p.Colour.Opposite(), after, true) {
		return errors.ErrUnSafeKing
	}
	return nil
}

func kingMoves(p chess.Piece, l chess.Layout) []chess.Position {
	return stepTargets(p, l, kingDeltas, canKingMoveTo)
}
