package engine

import (
	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// Pawn index deltas, multiplied by the colour's direction.
var pawnDeltas = []int{8, 16, 7, 9}

// canPawnMoveTo checks a pawn push, double push or diagonal capture.
// Reaching the last rank is refused: promotion is not supported.
func canPawnMoveTo(p chess.Piece, target chess.Position, l chess.Layout) error {
	if p.Kind != chess.Pawn {
		return errors.ErrInvalidPiece
	}
	dir := p.Colour.Direction()
	d := deltaOf(p.Pos, target)
	if d.rows*dir <= 0 {
		return errors.ErrInvalidMove
	}

	switch d.index * dir {
	case 8:
		if d.cols != 0 {
			return errors.ErrInvalidMove
		}
		if _, ok := l.PieceAt(target); ok {
			return errors.ErrInvalidMove
		}
	case 16:
		if d.cols != 0 || !p.FirstMove {
			return errors.ErrInvalidMove
		}
		if _, ok := l.PieceAt(chess.PositionFromIndex(p.Pos.Index() + 8*dir)); ok {
			return errors.ErrBlockedMove
		}
		if _, ok := l.PieceAt(target); ok {
			return errors.ErrInvalidMove
		}
	case 7, 9:
		if abs(d.cols) != 1 || d.rows*dir != 1 {
			return errors.ErrInvalidMove
		}
		occupant, ok := l.PieceAt(target)
		if !ok {
			return errors.ErrInvalidMove
		}
		if occupant.Colour == p.Colour {
			return errors.ErrInvalidCapture
		}
	default:
		return errors.ErrInvalidMove
	}

	if target.Rank == lastRank(p.Colour) {
		return errors.ErrInvalidMove
	}
	return nil
}

func pawnMoves(p chess.Piece, l chess.Layout) []chess.Position {
	deltas := make([]int, len(pawnDeltas))
	for i, d := range pawnDeltas {
		deltas[i] = d * p.Colour.Direction()
	}
	return stepTargets(p, l, deltas, canPawnMoveTo)
}

// pawnAttacks reports whether pawn p attacks sq.
func pawnAttacks(p chess.Piece, sq chess.Position) bool {
	for _, dc := range []int{-1, 1} {
		if pos, ok := p.Pos.Offset(dc, p.Colour.Direction()); ok && pos == sq {
			return true
		}
	}
	return false
}

// lastRank returns the rank a pawn of colour would promote on.
func lastRank(colour chess.Colour) chess.Rank {
	if colour == chess.White {
		return chess.LastRank
	}
	return chess.FirstRank
}
