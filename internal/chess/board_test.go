package chess

import (
	"testing"
)

func TestEmptyBoard(t *testing.T) {
	b := EmptyBoard()

	t.Run("all squares empty", func(t *testing.T) {
		for col := Col('a'); col <= 'h'; col++ {
			for rank := Rank('1'); rank <= '8'; rank++ {
				if got := b.Get(col, rank); !got.IsEmpty() {
					t.Errorf("Get(%c, %c) = %v; want Empty", col, rank, got)
				}
			}
		}
	})

	t.Run("cells know their coordinates", func(t *testing.T) {
		for i := 0; i < BoardSquares; i++ {
			cell := b.Cell(i)
			if cell.Pos.Index() != i {
				t.Errorf("Cell(%d).Pos = %v; index %d", i, cell.Pos, cell.Pos.Index())
			}
		}
	})

	t.Run("off-board reads are empty", func(t *testing.T) {
		if got := b.Get('i', '1'); !got.IsEmpty() {
			t.Errorf("Get(i, 1) = %v; want Empty", got)
		}
		if got := b.Get('a', '9'); !got.IsEmpty() {
			t.Errorf("Get(a, 9) = %v; want Empty", got)
		}
	})
}

func TestSetupInitialPosition(t *testing.T) {
	b := NewBoard()

	tests := []struct {
		name   string
		col    Col
		rank   Rank
		kind   Kind
		colour Colour
	}{
		// White back rank
		{"white rook a1", 'a', '1', Rook, White},
		{"white knight b1", 'b', '1', Knight, White},
		{"white bishop c1", 'c', '1', Bishop, White},
		{"white queen d1", 'd', '1', Queen, White},
		{"white king e1", 'e', '1', King, White},
		{"white bishop f1", 'f', '1', Bishop, White},
		{"white knight g1", 'g', '1', Knight, White},
		{"white rook h1", 'h', '1', Rook, White},
		// White pawns
		{"white pawn a2", 'a', '2', Pawn, White},
		{"white pawn e2", 'e', '2', Pawn, White},
		{"white pawn h2", 'h', '2', Pawn, White},
		// Black pawns
		{"black pawn a7", 'a', '7', Pawn, Black},
		{"black pawn e7", 'e', '7', Pawn, Black},
		{"black pawn h7", 'h', '7', Pawn, Black},
		// Black back rank
		{"black rook a8", 'a', '8', Rook, Black},
		{"black knight b8", 'b', '8', Knight, Black},
		{"black bishop c8", 'c', '8', Bishop, Black},
		{"black queen d8", 'd', '8', Queen, Black},
		{"black king e8", 'e', '8', King, Black},
		{"black bishop f8", 'f', '8', Bishop, Black},
		{"black knight g8", 'g', '8', Knight, Black},
		{"black rook h8", 'h', '8', Rook, Black},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := b.Get(tt.col, tt.rank)
			if got.Kind != tt.kind || got.Colour != tt.colour {
				t.Errorf("Get(%c, %c) = %v; want %v %v", tt.col, tt.rank, got, tt.colour, tt.kind)
			}
			if got.Pos != NewPosition(tt.col, tt.rank) {
				t.Errorf("Get(%c, %c).Pos = %v; want %c%c", tt.col, tt.rank, got.Pos, tt.col, tt.rank)
			}
		})
	}

	t.Run("empty middle", func(t *testing.T) {
		for rank := Rank('3'); rank <= '6'; rank++ {
			for col := Col('a'); col <= 'h'; col++ {
				if _, ok := b.PieceAt(NewPosition(col, rank)); ok {
					t.Errorf("PieceAt(%c%c) occupied; want empty", col, rank)
				}
			}
		}
	})

	t.Run("pawns have not moved", func(t *testing.T) {
		for _, p := range b.PiecesOf(White) {
			if p.Kind == Pawn && !p.FirstMove {
				t.Errorf("%v FirstMove = false; want true", p)
			}
			if p.Kind != Pawn && p.FirstMove {
				t.Errorf("%v FirstMove = true; want false", p)
			}
		}
	})

	if got := b.Count(); got != 32 {
		t.Errorf("Count() = %d; want 32", got)
	}
}

func TestPiecesOf(t *testing.T) {
	b := NewBoard()

	for _, colour := range []Colour{White, Black} {
		t.Run(colour.String(), func(t *testing.T) {
			pieces := b.PiecesOf(colour)
			if len(pieces) != 16 {
				t.Fatalf("len(PiecesOf(%v)) = %d; want 16", colour, len(pieces))
			}
			last := -1
			for _, p := range pieces {
				if p.Colour != colour {
					t.Errorf("PiecesOf(%v) returned %v", colour, p)
				}
				if p.Pos.Index() <= last {
					t.Errorf("PiecesOf(%v) not in cell order at %v", colour, p.Pos)
				}
				last = p.Pos.Index()
			}
		})
	}
}

func TestMaterialScore(t *testing.T) {
	tests := []struct {
		name   string
		setup  func(b *Board)
		colour Colour
		want   int
	}{
		{"opening white", func(b *Board) {}, White, 0},
		{"opening black", func(b *Board) {}, Black, 0},
		{"white without knights", func(b *Board) {
			b.Remove(NewPosition('b', '1'))
			b.Remove(NewPosition('g', '1'))
		}, White, -6},
		{"black sees white without knights", func(b *Board) {
			b.Remove(NewPosition('b', '1'))
			b.Remove(NewPosition('g', '1'))
		}, Black, 6},
		{"white reduced to king", func(b *Board) {
			for _, p := range b.PiecesOf(White) {
				if p.Kind != King {
					b.Remove(p.Pos)
				}
			}
		}, White, -39},
		{"lone kings", func(b *Board) {
			for i := 0; i < BoardSquares; i++ {
				if p := b.GetByIndex(i); p.Kind != King {
					b.Remove(PositionFromIndex(i))
				}
			}
		}, White, 0},
		{"single king does not overflow", func(b *Board) {
			for i := 0; i < BoardSquares; i++ {
				if p := b.GetByIndex(i); !(p.Kind == King && p.Colour == Black) {
					b.Remove(PositionFromIndex(i))
				}
			}
		}, White, 0},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			b := NewBoard()
			tt.setup(b)
			if got := b.MaterialScore(tt.colour); got != tt.want {
				t.Errorf("MaterialScore(%v) = %d; want %d", tt.colour, got, tt.want)
			}
		})
	}
}

func TestBoardCopy(t *testing.T) {
	b := NewBoard()
	c := b.Copy()

	c.Remove(NewPosition('e', '2'))
	c.Place(NewPiece(Queen, Black, NewPosition('e', '4')))

	if _, ok := b.PieceAt(NewPosition('e', '2')); !ok {
		t.Error("original e2 emptied by change to copy")
	}
	if _, ok := b.PieceAt(NewPosition('e', '4')); ok {
		t.Error("original e4 occupied by change to copy")
	}

	f := b.Fork()
	f.Remove(NewPosition('d', '1'))
	if _, ok := b.PieceAt(NewPosition('d', '1')); !ok {
		t.Error("original d1 emptied by change to fork")
	}
}

func TestPlaceAndRemove(t *testing.T) {
	b := EmptyBoard()
	pos := NewPosition('c', '6')
	knight := NewPiece(Knight, Black, pos)

	b.Place(knight)
	got, ok := b.PieceAt(pos)
	if !ok || got != knight {
		t.Fatalf("PieceAt(c6) = %v, %v; want %v, true", got, ok, knight)
	}

	removed := b.Remove(pos)
	if removed != knight {
		t.Errorf("Remove(c6) = %v; want %v", removed, knight)
	}
	if removed := b.Remove(pos); !removed.IsEmpty() {
		t.Errorf("second Remove(c6) = %v; want Empty", removed)
	}

	b.Place(Piece{})
	if got := b.Count(); got != 0 {
		t.Errorf("Count() after placing empty piece = %d; want 0", got)
	}
}

func TestFindKing(t *testing.T) {
	b := NewBoard()
	king, ok := FindKing(b, Black)
	if !ok || king.Pos != NewPosition('e', '8') {
		t.Errorf("FindKing(Black) = %v, %v; want king on e8", king, ok)
	}

	if _, ok := FindKing(EmptyBoard(), White); ok {
		t.Error("FindKing(empty board) found a king")
	}
}
