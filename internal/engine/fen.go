package engine

import (
	"fmt"
	"strings"

	nchess "github.com/notnil/chess"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// InitialFEN is the FEN string for the standard starting position.
const InitialFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// fenSuffix completes the placement and side fields. Castling and en
// passant are not supported, so those fields are always empty.
const fenSuffix = " - - 0 1"

var kindsFromFEN = map[nchess.PieceType]chess.Kind{
	nchess.Pawn:   chess.Pawn,
	nchess.Knight: chess.Knight,
	nchess.Bishop: chess.Bishop,
	nchess.Rook:   chess.Rook,
	nchess.Queen:  chess.Queen,
	nchess.King:   chess.King,
}

var piecesToFEN = map[chess.Colour]map[chess.Kind]nchess.Piece{
	chess.White: {
		chess.Pawn:   nchess.WhitePawn,
		chess.Knight: nchess.WhiteKnight,
		chess.Bishop: nchess.WhiteBishop,
		chess.Rook:   nchess.WhiteRook,
		chess.Queen:  nchess.WhiteQueen,
		chess.King:   nchess.WhiteKing,
	},
	chess.Black: {
		chess.Pawn:   nchess.BlackPawn,
		chess.Knight: nchess.BlackKnight,
		chess.Bishop: nchess.BlackBishop,
		chess.Rook:   nchess.BlackRook,
		chess.Queen:  nchess.BlackQueen,
		chess.King:   nchess.BlackKing,
	},
}

// LoadFEN creates a board from a FEN string and returns it with the side
// to move. Only the placement and side fields are read; the side
// defaults to White. Pawns standing on their home rank have not moved yet.
func LoadFEN(fen string) (*chess.Board, chess.Colour, error) {
	parts := strings.Fields(fen)
	if len(parts) < 1 {
		return nil, chess.White, fmt.Errorf("empty FEN string: %w", errors.ErrInvalidFEN)
	}

	placement := &nchess.Board{}
	if err := placement.UnmarshalText([]byte(parts[0])); err != nil {
		return nil, chess.White, fmt.Errorf("%v: %w", err, errors.ErrInvalidFEN)
	}

	board := chess.EmptyBoard()
	for sq, np := range placement.SquareMap() {
		kind, ok := kindsFromFEN[np.Type()]
		if !ok {
			continue
		}
		colour := chess.White
		if np.Color() == nchess.Black {
			colour = chess.Black
		}
		pos := chess.PositionFromIndex(int(sq))
		piece := chess.NewPiece(kind, colour, pos)
		if kind == chess.Pawn {
			piece.FirstMove = pos.Rank == homeRank(colour)
		}
		board.Place(piece)
	}

	turn := chess.White
	if len(parts) > 1 {
		switch parts[1] {
		case "w":
		case "b":
			turn = chess.Black
		default:
			return nil, chess.White, fmt.Errorf("invalid side to move %q: %w", parts[1], errors.ErrInvalidFEN)
		}
	}
	return board, turn, nil
}

// FEN returns the FEN string of the layout with turn to move.
func FEN(l chess.Layout, turn chess.Colour) string {
	squares := make(map[nchess.Square]nchess.Piece)
	for _, colour := range []chess.Colour{chess.White, chess.Black} {
		for _, p := range l.PiecesOf(colour) {
			squares[nchess.Square(p.Pos.Index())] = piecesToFEN[colour][p.Kind]
		}
	}

	side := "w"
	if turn == chess.Black {
		side = "b"
	}
	return nchess.NewBoard(squares).String() + " " + side + fenSuffix
}

// homeRank returns the rank colour's pawns start on.
func homeRank(colour chess.Colour) chess.Rank {
	if colour == chess.White {
		return chess.FirstRank + 1
	}
	return chess.LastRank - 1
}
