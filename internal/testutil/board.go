package testutil

import (
	"testing"

	"github.com/lgbarn/chess-rules-go/internal/chess"
)

var kindLetters = map[byte]chess.Kind{
	'P': chess.Pawn,
	'N': chess.Knight,
	'B': chess.Bishop,
	'R': chess.Rook,
	'Q': chess.Queen,
	'K': chess.King,
}

// Piece builds a piece from a short description such as "Ke4" or "pd7":
// the letter gives the kind, uppercase for White and lowercase for Black,
// followed by the square. Pawns on their home rank have FirstMove set.
func Piece(t testing.TB, desc string) chess.Piece {
	t.Helper()
	if len(desc) != 3 {
		t.Fatalf("piece %q: want letter and square", desc)
	}
	letter := desc[0]
	colour := chess.White
	if letter >= 'a' && letter <= 'z' {
		colour = chess.Black
		letter -= 'a' - 'A'
	}
	kind, ok := kindLetters[letter]
	if !ok {
		t.Fatalf("piece %q: unknown kind %c", desc, desc[0])
	}
	pos := Square(t, desc[1:])
	p := chess.NewPiece(kind, colour, pos)
	if kind == chess.Pawn {
		home := chess.Rank('2')
		if colour == chess.Black {
			home = '7'
		}
		p.FirstMove = pos.Rank == home
	}
	return p
}

// BoardOf returns an empty board holding the described pieces.
func BoardOf(t testing.TB, descs ...string) *chess.Board {
	t.Helper()
	b := chess.EmptyBoard()
	for _, d := range descs {
		b.Place(Piece(t, d))
	}
	return b
}

// Square parses an algebraic square, failing the test on error.
func Square(t testing.TB, s string) chess.Position {
	t.Helper()
	pos, err := chess.ParsePosition(s)
	if err != nil {
		t.Fatalf("square %q: %v", s, err)
	}
	return pos
}

// Squares parses a list of algebraic squares.
func Squares(t testing.TB, names ...string) []chess.Position {
	t.Helper()
	out := make([]chess.Position, len(names))
	for i, n := range names {
		out[i] = Square(t, n)
	}
	return out
}
