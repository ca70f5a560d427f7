package game

import (
	"bufio"
	"io"
	"strings"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// ParseMove parses four-character coordinate notation such as "e2e4".
func ParseMove(s string) (from, to chess.Position, err error) {
	if len(s) != 4 {
		return from, to, errors.Wrapf(errors.ErrInvalidMove, "move %q: want four characters", s)
	}
	if from, err = chess.ParsePosition(s[:2]); err != nil {
		return from, to, errors.Wrapf(errors.ErrInvalidMove, "move %q: %v", s, err)
	}
	if to, err = chess.ParsePosition(s[2:]); err != nil {
		return from, to, errors.Wrapf(errors.ErrInvalidMove, "move %q: %v", s, err)
	}
	return from, to, nil
}

// ReadMoves splits r into whitespace-separated move tokens. Tokens
// starting with '#' comment out the rest of their line.
func ReadMoves(r io.Reader) ([]string, error) {
	var moves []string
	lines := bufio.NewScanner(r)
	for lines.Scan() {
		words := bufio.NewScanner(strings.NewReader(lines.Text()))
		words.Split(bufio.ScanWords)
		for words.Scan() {
			w := words.Text()
			if w[0] == '#' {
				break
			}
			moves = append(moves, w)
		}
	}
	return moves, lines.Err()
}
