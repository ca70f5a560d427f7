package chess

// Layout is the read/write view of a board that the movement rules work
// against. A live game board and a hypothetical copy look the same through it.
type Layout interface {
	// PieceAt returns the piece standing on pos, if any.
	PieceAt(pos Position) (Piece, bool)

	// Place puts piece on its own position, replacing any occupant.
	Place(piece Piece)

	// Remove clears pos and returns what stood there (Kind Empty if nothing).
	Remove(pos Position) Piece

	// PiecesOf returns the pieces of colour in cell-index order.
	PiecesOf(colour Colour) []Piece

	// Fork returns an independent deep copy.
	Fork() Layout
}

// Cell is one square of the board together with its fixed coordinates.
type Cell struct {
	Piece Piece
	Pos   Position
}

// Board represents a chess board: 64 cells addressed by cell index.
// Pieces are stored by value, so copying a Board copies every piece.
type Board struct {
	cells [BoardSquares]Cell
}

var _ Layout = (*Board)(nil)

// EmptyBoard creates a board with no pieces on it.
func EmptyBoard() *Board {
	b := &Board{}
	for i := range b.cells {
		b.cells[i].Pos = PositionFromIndex(i)
	}
	return b
}

// NewBoard creates a board set up with the standard opening position.
func NewBoard() *Board {
	b := EmptyBoard()
	b.SetupInitialPosition()
	return b
}

// SetupInitialPosition clears the board and sets up the standard chess starting position.
func (b *Board) SetupInitialPosition() {
	for i := range b.cells {
		b.cells[i].Piece = Piece{}
	}

	backRank := []Kind{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}
	for i, kind := range backRank {
		col := Col(ColBase + i)
		b.Place(NewPiece(kind, White, NewPosition(col, '1')))
		b.Place(NewPiece(Pawn, White, NewPosition(col, '2')))
		b.Place(NewPiece(Pawn, Black, NewPosition(col, '7')))
		b.Place(NewPiece(kind, Black, NewPosition(col, '8')))
	}
}

// PieceAt returns the piece at the given position.
func (b *Board) PieceAt(pos Position) (Piece, bool) {
	p := b.cells[pos.Index()].Piece
	return p, !p.IsEmpty()
}

// Get returns the piece at the given coordinates (using char coords 'a'-'h', '1'-'8').
// Off-board coordinates read as empty.
func (b *Board) Get(col Col, rank Rank) Piece {
	if !ValidCol(col) || !ValidRank(rank) {
		return Piece{}
	}
	return b.cells[Position{Col: col, Rank: rank}.Index()].Piece
}

// GetByIndex returns the piece at the given cell index.
func (b *Board) GetByIndex(i int) Piece {
	return b.cells[i].Piece
}

// Cell returns the cell at index i.
func (b *Board) Cell(i int) Cell {
	return b.cells[i]
}

// Place puts piece on the square named by its own position.
func (b *Board) Place(piece Piece) {
	if piece.IsEmpty() {
		return
	}
	b.cells[piece.Pos.Index()].Piece = piece
}

// Remove clears pos and returns the piece that stood there.
func (b *Board) Remove(pos Position) Piece {
	i := pos.Index()
	p := b.cells[i].Piece
	b.cells[i].Piece = Piece{}
	return p
}

// PiecesOf returns all pieces of colour in cell-index order.
func (b *Board) PiecesOf(colour Colour) []Piece {
	var pieces []Piece
	for i := range b.cells {
		p := b.cells[i].Piece
		if !p.IsEmpty() && p.Colour == colour {
			pieces = append(pieces, p)
		}
	}
	return pieces
}

// Count returns the number of occupied cells.
func (b *Board) Count() int {
	n := 0
	for i := range b.cells {
		if !b.cells[i].Piece.IsEmpty() {
			n++
		}
	}
	return n
}

// MaterialScore returns the value of colour's pieces minus the value of
// the opponent's pieces. Kings are left out of both sums.
func (b *Board) MaterialScore(colour Colour) int {
	return MaterialScore(b, colour)
}

// Copy creates a deep copy of the board.
func (b *Board) Copy() *Board {
	newBoard := &Board{}
	*newBoard = *b
	return newBoard
}

// Fork returns a deep copy of the board as a Layout.
func (b *Board) Fork() Layout {
	return b.Copy()
}

// MaterialScore computes the material balance for colour on any layout.
func MaterialScore(l Layout, colour Colour) int {
	score := 0
	for _, p := range l.PiecesOf(colour) {
		if p.Kind != King {
			score += p.Value()
		}
	}
	for _, p := range l.PiecesOf(colour.Opposite()) {
		if p.Kind != King {
			score -= p.Value()
		}
	}
	return score
}

// FindKing returns the first king of colour on the layout.
func FindKing(l Layout, colour Colour) (Piece, bool) {
	for _, p := range l.PiecesOf(colour) {
		if p.Kind == King {
			return p, true
		}
	}
	return Piece{}, false
}
