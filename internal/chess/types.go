// Package chess provides core chess types and operations.
package chess

import (
	"fmt"
	"math"
)

// Colour represents the colour of a piece or player.
type Colour int

const (
	Black Colour = iota
	White
)

// String returns the string representation of a colour.
func (c Colour) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// Opposite returns the opposite colour.
func (c Colour) Opposite() Colour {
	if c == White {
		return Black
	}
	return White
}

// Direction returns +1 for White, -1 for Black (for pawn direction).
func (c Colour) Direction() int {
	if c == White {
		return 1
	}
	return -1
}

// Kind represents a chess piece type.
type Kind int

const (
	Empty Kind = iota // No piece
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
)

// KingValue is the material value of a king. Kings never take part in
// material sums, the value only orders them above everything else.
const KingValue = math.MaxInt16

// String returns the string representation of a piece kind.
func (k Kind) String() string {
	names := []string{"Empty", "Pawn", "Knight", "Bishop", "Rook", "Queen", "King"}
	if k >= 0 && int(k) < len(names) {
		return names[k]
	}
	return "Unknown"
}

// Letter returns the single letter representation of a piece kind (uppercase).
func (k Kind) Letter() byte {
	letters := []byte{' ', 'P', 'N', 'B', 'R', 'Q', 'K'}
	if k >= 0 && int(k) < len(letters) {
		return letters[k]
	}
	return '?'
}

// Value returns the material value of the kind.
func (k Kind) Value() int {
	switch k {
	case Pawn:
		return 1
	case Knight, Bishop:
		return 3
	case Rook:
		return 5
	case Queen:
		return 9
	case King:
		return KingValue
	default:
		return 0
	}
}

// IsSliding reports whether the kind moves along rays that can be blocked.
func (k Kind) IsSliding() bool {
	return k == Bishop || k == Rook || k == Queen
}

// Rank represents a chess rank (row) - '1' to '8'.
type Rank byte

// Col represents a chess file (column) - 'a' to 'h'.
type Col byte

// Constants for board dimensions and coordinates.
const (
	BoardSize    = 8
	BoardSquares = BoardSize * BoardSize

	RankBase  = '1'
	ColBase   = 'a'
	FirstRank = RankBase
	LastRank  = RankBase + BoardSize - 1
	FirstCol  = ColBase
	LastCol   = ColBase + BoardSize - 1
)

// ValidRank reports whether r lies on the board.
func ValidRank(r Rank) bool {
	return r >= FirstRank && r <= LastRank
}

// ValidCol reports whether c lies on the board.
func ValidCol(c Col) bool {
	return c >= FirstCol && c <= LastCol
}

// ValidIndex reports whether i addresses one of the 64 cells.
func ValidIndex(i int) bool {
	return i >= 0 && i < BoardSquares
}

// Position is a square on the board.
type Position struct {
	Col  Col
	Rank Rank
}

// NewPosition returns the position at col and rank.
// It panics if either coordinate is off the board: callers hold the
// coordinates by construction, so a bad one is a programming error.
func NewPosition(col Col, rank Rank) Position {
	if !ValidCol(col) || !ValidRank(rank) {
		panic(fmt.Sprintf("chess: position %c%c is off the board", col, rank))
	}
	return Position{Col: col, Rank: rank}
}

// ParsePosition parses a square in algebraic form such as "e4".
func ParsePosition(s string) (Position, error) {
	if len(s) != 2 {
		return Position{}, fmt.Errorf("square %q: want two characters", s)
	}
	col, rank := Col(s[0]), Rank(s[1])
	if !ValidCol(col) || !ValidRank(rank) {
		return Position{}, fmt.Errorf("square %q is off the board", s)
	}
	return Position{Col: col, Rank: rank}, nil
}

// PositionFromIndex returns the position of cell index i.
// It panics if i is outside [0, 64).
func PositionFromIndex(i int) Position {
	if !ValidIndex(i) {
		panic(fmt.Sprintf("chess: cell index %d is off the board", i))
	}
	return Position{
		Col:  Col(ColBase + i%BoardSize),
		Rank: Rank(RankBase + i/BoardSize),
	}
}

// Index returns the flat cell index of p.
func (p Position) Index() int {
	return int(p.Col-ColBase) + int(p.Rank-RankBase)*BoardSize
}

// File returns the zero-based file of p (a=0).
func (p Position) File() int {
	return int(p.Col - ColBase)
}

// Row returns the zero-based rank of p (1=0).
func (p Position) Row() int {
	return int(p.Rank - RankBase)
}

// Offset returns the position dc files and dr ranks away from p.
// The second result is false when that square is off the board.
func (p Position) Offset(dc, dr int) (Position, bool) {
	col := int(p.Col) + dc
	rank := int(p.Rank) + dr
	if col < FirstCol || col > LastCol || rank < FirstRank || rank > LastRank {
		return Position{}, false
	}
	return Position{Col: Col(col), Rank: Rank(rank)}, true
}

// String returns the algebraic name of the square.
func (p Position) String() string {
	return string([]byte{byte(p.Col), byte(p.Rank)})
}

// Piece is a piece standing on a particular square.
// The zero value is the absence of a piece.
type Piece struct {
	Kind   Kind
	Colour Colour
	Pos    Position

	// FirstMove is set while a pawn has not moved yet.
	FirstMove bool
}

// NewPiece creates a piece of the given kind. Pawns start with FirstMove set.
func NewPiece(kind Kind, colour Colour, pos Position) Piece {
	return Piece{
		Kind:      kind,
		Colour:    colour,
		Pos:       pos,
		FirstMove: kind == Pawn,
	}
}

// IsEmpty returns true if p is the absence of a piece.
func (p Piece) IsEmpty() bool {
	return p.Kind == Empty
}

// Value returns the material value of the piece.
func (p Piece) Value() int {
	return p.Kind.Value()
}

// MovedTo returns the piece as it stands after moving to pos.
func (p Piece) MovedTo(pos Position) Piece {
	p.Pos = pos
	p.FirstMove = false
	return p
}

// String returns a short description such as "White Knight g1".
func (p Piece) String() string {
	if p.IsEmpty() {
		return "Empty"
	}
	return fmt.Sprintf("%s %s %s", p.Colour, p.Kind, p.Pos)
}

// Letter returns the FEN letter of the piece: uppercase for White.
func (p Piece) Letter() byte {
	letter := p.Kind.Letter()
	if p.Colour == Black && letter >= 'A' && letter <= 'Z' {
		letter += 'a' - 'A'
	}
	return letter
}
