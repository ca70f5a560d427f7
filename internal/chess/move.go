package chess

// Move represents a single move of one piece.
type Move struct {
	// The piece being moved, as it stood before the move.
	Piece Piece

	// Source and destination squares.
	From Position
	To   Position

	// The piece captured (Kind Empty if no capture).
	Captured Piece
}

// NewMove creates a move of piece to the given square.
func NewMove(piece Piece, to Position) Move {
	return Move{
		Piece: piece,
		From:  piece.Pos,
		To:    to,
	}
}

// IsCapture returns true if this move captured a piece.
func (m Move) IsCapture() bool {
	return !m.Captured.IsEmpty()
}

// String returns the move in four-character coordinate form, e.g. "e2e4".
func (m Move) String() string {
	return m.From.String() + m.To.String()
}
