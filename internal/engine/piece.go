// Package engine implements the movement rules, king safety and game
// status of the chess rules engine, plus FEN import and export.
//
// Every rule works against a chess.Layout, so the same code judges the
// live board and hypothetical forks of it.
package engine

import (
	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// CanMoveTo reports whether p may move to target on l. It returns nil for
// a legal move, otherwise the reason the move is rejected. l is not
// modified.
func CanMoveTo(p chess.Piece, target chess.Position, l chess.Layout) error {
	switch p.Kind {
	case chess.Pawn:
		return canPawnMoveTo(p, target, l)
	case chess.Knight:
		return canKnightMoveTo(p, target, l)
	case chess.Bishop:
		return canBishopMoveTo(p, target, l)
	case chess.Rook:
		return canRookMoveTo(p, target, l)
	case chess.Queen:
		return canQueenMoveTo(p, target, l)
	case chess.King:
		return canKingMoveTo(p, target, l)
	default:
		return errors.ErrInvalidPiece
	}
}

// PossibleMoves returns the squares p can reach on l.
func PossibleMoves(p chess.Piece, l chess.Layout) []chess.Position {
	switch p.Kind {
	case chess.Pawn:
		return pawnMoves(p, l)
	case chess.Knight:
		return knightMoves(p, l)
	case chess.Bishop:
		return bishopMoves(p, l)
	case chess.Rook:
		return rookMoves(p, l)
	case chess.Queen:
		return queenMoves(p, l)
	case chess.King:
		return kingMoves(p, l)
	default:
		return nil
	}
}

// MoveTo moves p to target on l and returns the piece captured there
// (Kind Empty if none). The move is validated first; on error l is
// left untouched.
func MoveTo(p chess.Piece, target chess.Position, l chess.Layout) (chess.Piece, error) {
	current, ok := l.PieceAt(p.Pos)
	if !ok || current.Kind != p.Kind || current.Colour != p.Colour {
		return chess.Piece{}, errors.ErrNoPiece
	}
	if err := CanMoveTo(p, target, l); err != nil {
		return chess.Piece{}, err
	}

	captured := l.Remove(target)
	l.Remove(p.Pos)
	l.Place(p.MovedTo(target))
	return captured, nil
}

// MovePiece moves whatever piece stands on from to to. Rejections come
// back as *errors.MoveError carrying the squares and the piece.
func MovePiece(l chess.Layout, from, to chess.Position) (chess.Piece, error) {
	p, ok := l.PieceAt(from)
	if !ok {
		return chess.Piece{}, &errors.MoveError{
			Err:  errors.ErrNoPiece,
			From: from.String(),
			To:   to.String(),
		}
	}
	captured, err := MoveTo(p, to, l)
	if err != nil {
		return chess.Piece{}, &errors.MoveError{
			Err:   err,
			From:  from.String(),
			To:    to.String(),
			Piece: p.String(),
		}
	}
	return captured, nil
}
