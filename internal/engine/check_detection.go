package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// IsCheck returns true if colour's king is attacked on l.
// A layout without such a king is never in check.
func IsCheck(l chess.Layout, colour chess.Colour) bool {
	king, ok := chess.FindKing(l, colour)
	if !ok {
		return false
	}
	return IsKingInCheck(king, l)
}

// IsKingInCheck returns true if any opposing piece attacks the king's
// square. Opposing kings are not counted as attackers.
func IsKingInCheck(king chess.Piece, l chess.Layout) bool {
	return isAttacked(king.Pos, king.Colour.Opposite(), l, false)
}

// isAttacked returns true if a piece of colour by attacks sq on l.
// withKing decides whether a king of that colour counts as an attacker.
func isAttacked(sq chess.Position, by chess.Colour, l chess.Layout, withKing bool) bool {
	for _, attacker := range l.PiecesOf(by) {
		switch attacker.Kind {
		case chess.King:
			if withKing && attacker.Pos != sq &&
				abs(attacker.Pos.File()-sq.File()) <= 1 && abs(attacker.Pos.Row()-sq.Row()) <= 1 {
				return true
			}
		case chess.Pawn:
			if pawnAttacks(attacker, sq) {
				return true
			}
		default:
			if CanMoveTo(attacker, sq, l) == nil {
				return true
			}
		}
	}
	return false
}

// CanKingEscape reports whether colour's king can step onto a
// neighbouring square where it is no longer in check.
func CanKingEscape(l chess.Layout, colour chess.Colour) bool {
	king, ok := chess.FindKing(l, colour)
	if !ok {
		return false
	}
	return CanKingEscapeFrom(king, l)
}

// CanKingEscapeFrom reports whether king can escape by capturing on one
// of its neighbouring squares. Only neighbours held by an enemy piece are
// tried; each is judged on its own copy of the board.
func CanKingEscapeFrom(king chess.Piece, l chess.Layout) bool {
	without := l.Fork()
	without.Remove(king.Pos)

	for dc := -1; dc <= 1; dc++ {
		for dr := -1; dr <= 1; dr++ {
			if dc == 0 && dr == 0 {
				continue
			}
			pos, ok := king.Pos.Offset(dc, dr)
			if !ok {
				continue
			}
			occupant, occupied := without.PieceAt(pos)
			if !occupied || occupant.Colour == king.Colour {
				continue
			}

			probe := without.Fork()
			moved := king.MovedTo(pos)
			probe.Remove(pos)
			probe.Place(moved)
			if !IsKingInCheck(moved, probe) {
				return true
			}
		}
	}
	return false
}
