// Package errors provides sentinel errors and error types for the rules engine.
// It defines the closed set of move-rejection reasons and a structured error
// type that preserves move context while allowing inspection with errors.Is()
// and errors.As().
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for move rejection.
// Use these with errors.Is() to check for specific error types.
var (
	// ErrInvalidMove indicates a move that breaks the piece's geometry,
	// direction or occupancy rule.
	ErrInvalidMove = errors.New("invalid move")

	// ErrInvalidPiece indicates a rule was asked to move a piece of another kind.
	ErrInvalidPiece = errors.New("invalid piece")

	// ErrBlockedMove indicates a piece stands on the path of the move.
	ErrBlockedMove = errors.New("blocked move")

	// ErrInvalidCapture indicates the target holds a piece of the mover's colour.
	ErrInvalidCapture = errors.New("invalid capture")

	// ErrUnSafeKing indicates the king would stand on an attacked square.
	ErrUnSafeKing = errors.New("unsafe king")

	// ErrNoPiece indicates there is no piece on the source square.
	ErrNoPiece = errors.New("no piece")

	// ErrInvalidFEN indicates a malformed FEN string.
	ErrInvalidFEN = errors.New("invalid FEN string")

	// ErrInvalidConfig indicates invalid configuration values.
	ErrInvalidConfig = errors.New("invalid configuration")
)

// MoveError wraps a rejection with the move that caused it.
// It implements the error interface and supports unwrapping via
// errors.Is() and errors.As().
type MoveError struct {
	Err   error  // The underlying error
	From  string // Source square (if known)
	To    string // Destination square (if known)
	Piece string // Description of the moving piece (if known)
	Ply   int    // Ply number where the error occurred (0 if not applicable)
}

// Error returns a formatted error message including all available context.
func (e *MoveError) Error() string {
	var parts []string

	if e.Ply > 0 {
		parts = append(parts, fmt.Sprintf("ply %d", e.Ply))
	}

	if e.Piece != "" {
		parts = append(parts, e.Piece)
	}

	if e.From != "" || e.To != "" {
		parts = append(parts, fmt.Sprintf("%s-%s", orDash(e.From), orDash(e.To)))
	}

	context := strings.Join(parts, ", ")

	if e.Err != nil {
		if context == "" {
			return e.Err.Error()
		}
		return fmt.Sprintf("%s: %v", context, e.Err)
	}
	if context == "" {
		return "move error"
	}
	return context
}

// Unwrap returns the underlying error, enabling errors.Is() and errors.As()
// to work through the MoveError wrapper.
func (e *MoveError) Unwrap() error {
	return e.Err
}

func orDash(s string) string {
	if s == "" {
		return "?"
	}
	return s
}

// IsRejection reports whether err is one of the move-rejection sentinels.
func IsRejection(err error) bool {
	for _, sentinel := range []error{
		ErrInvalidMove,
		ErrInvalidPiece,
		ErrBlockedMove,
		ErrInvalidCapture,
		ErrUnSafeKing,
		ErrNoPiece,
	} {
		if errors.Is(err, sentinel) {
			return true
		}
	}
	return false
}

// Wrap adds context to an error while preserving the underlying error
// for inspection with errors.Is() and errors.As().
func Wrap(err error, context string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", context, err)
}

// Wrapf adds formatted context to an error while preserving the underlying
// error for inspection with errors.Is() and errors.As().
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}
