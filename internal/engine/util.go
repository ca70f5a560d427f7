package engine

import (
	"github.com/lgbarn/chess-rules-go/internal/chess"
	"golang.org/x/exp/constraints"
)

// abs returns the absolute value of x.
func abs[T constraints.Signed](x T) T {
	if x < 0 {
		return -x
	}
	return x
}

// sign returns the sign of x: -1, 0, or 1.
func sign[T constraints.Signed](x T) T {
	if x > 0 {
		return 1
	}
	if x < 0 {
		return -1
	}
	return 0
}

// delta describes the displacement between two squares.
type delta struct {
	index      int // target index minus source index
	cols, rows int // signed file and rank differences
}

func deltaOf(from, to chess.Position) delta {
	return delta{
		index: to.Index() - from.Index(),
		cols:  to.File() - from.File(),
		rows:  to.Row() - from.Row(),
	}
}

// stepTowards returns the unit index step of a straight or diagonal ray
// along d. The caller has already checked d lies on such a ray.
func (d delta) stepTowards() int {
	return sign(d.rows)*chess.BoardSize + sign(d.cols)
}

// straight reports whether d runs along a single rank or file.
func (d delta) straight() bool {
	return d.rows == 0 || d.cols == 0
}

// diagonal reports whether d runs along a diagonal.
func (d delta) diagonal() bool {
	return abs(d.cols) == abs(d.rows)
}
