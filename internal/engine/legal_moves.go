package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// LegalMoves returns every move of colour that does not leave its own
// king in check, in cell order of the moving pieces.
func LegalMoves(l chess.Layout, colour chess.Colour) []chess.Move {
	var moves []chess.Move
	for _, p := range l.PiecesOf(colour) {
		for _, target := range PossibleMoves(p, l) {
			if m, ok := tryMove(l, p, target); ok {
				moves = append(moves, m)
			}
		}
	}
	return moves
}

// HasLegalMoves returns true if colour has at least one legal move.
func HasLegalMoves(l chess.Layout, colour chess.Colour) bool {
	for _, p := range l.PiecesOf(colour) {
		for _, target := range PossibleMoves(p, l) {
			if _, ok := tryMove(l, p, target); ok {
				return true
			}
		}
	}
	return false
}

// tryMove makes the move on a fork and checks it leaves the mover's king safe.
func tryMove(l chess.Layout, p chess.Piece, target chess.Position) (chess.Move, bool) {
	f := l.Fork()
	captured, err := MoveTo(p, target, f)
	if err != nil || IsCheck(f, p.Colour) {
		return chess.Move{}, false
	}
	m := chess.NewMove(p, target)
	m.Captured = captured
	return m, true
}
