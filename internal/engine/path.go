package engine

import (
	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// Ray directions as (file, rank) steps.
var (
	straightRays = [][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
	diagonalRays = [][2]int{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}}
)

// checkPath walks the cells strictly between from and to in steps of
// step and reports ErrBlockedMove at the first occupied one.
func checkPath(l chess.Layout, from, to chess.Position, step int) error {
	end := to.Index()
	for i := from.Index() + step; i != end; i += step {
		if _, ok := l.PieceAt(chess.PositionFromIndex(i)); ok {
			return errors.ErrBlockedMove
		}
	}
	return nil
}

// checkLanding rejects a target held by a piece of the mover's colour.
func checkLanding(l chess.Layout, p chess.Piece, to chess.Position) error {
	if occupant, ok := l.PieceAt(to); ok && occupant.Colour == p.Colour {
		return errors.ErrInvalidCapture
	}
	return nil
}

// slide collects the squares reachable along each ray: every empty
// square up to and including the first enemy piece.
func slide(p chess.Piece, l chess.Layout, rays [][2]int) []chess.Position {
	var targets []chess.Position
	for _, ray := range rays {
		pos, ok := p.Pos.Offset(ray[0], ray[1])
		for ok {
			occupant, occupied := l.PieceAt(pos)
			if occupied {
				if occupant.Colour != p.Colour {
					targets = append(targets, pos)
				}
				break
			}
			targets = append(targets, pos)
			pos, ok = pos.Offset(ray[0], ray[1])
		}
	}
	return targets
}

// stepTargets collects the squares at the given index deltas that the rule accepts.
func stepTargets(p chess.Piece, l chess.Layout, deltas []int, canMove func(chess.Piece, chess.Position, chess.Layout) error) []chess.Position {
	var targets []chess.Position
	from := p.Pos.Index()
	for _, d := range deltas {
		i := from + d
		if !chess.ValidIndex(i) {
			continue
		}
		target := chess.PositionFromIndex(i)
		if canMove(p, target, l) == nil {
			targets = append(targets, target)
		}
	}
	return targets
}
