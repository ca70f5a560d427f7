// Package ai implements a greedy one-ply move selector: every candidate
// move is played on a copy of the board and the one leaving the best
// material balance is chosen.
package ai

import (
	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/errors"
	"github.com/lgbarn/chess-rules-go/internal/worker"
)

// Selector picks moves for one side.
type Selector struct {
	workers    int
	kingSafety bool
}

// Option configures a Selector.
type Option func(*Selector)

// WithWorkers evaluates candidates on n goroutines. Values below 2 keep
// the evaluation sequential.
func WithWorkers(n int) Option {
	return func(s *Selector) {
		if n >= 1 {
			s.workers = n
		}
	}
}

// WithKingSafety skips candidates that leave the mover's own king in check.
func WithKingSafety() Option {
	return func(s *Selector) {
		s.kingSafety = true
	}
}

// NewSelector creates a selector. By default it runs sequentially and
// considers every reachable square of every piece.
func NewSelector(opts ...Option) *Selector {
	s := &Selector{workers: 1}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// SelectMove returns the move of colour with the highest material score
// after it is played. Only scores strictly above zero are accepted, and
// among equal scores the first candidate in enumeration order wins, so
// positions where nothing gains material yield no move.
func SelectMove(colour chess.Colour, l chess.Layout) (chess.Move, bool) {
	return NewSelector().SelectMove(colour, l)
}

// SelectMove picks a move for colour on l. l is never modified.
func (s *Selector) SelectMove(colour chess.Colour, l chess.Layout) (chess.Move, bool) {
	candidates := Candidates(colour, l)
	if s.workers > 1 && len(candidates) > 1 {
		return s.selectParallel(l, candidates)
	}

	var best chess.Move
	bestScore, found := 0, false
	for _, m := range candidates {
		r := s.evaluate(worker.WorkItem{Move: m, Layout: l.Fork()})
		if r.Err != nil {
			continue
		}
		if r.Score > bestScore {
			best, bestScore, found = r.Move, r.Score, true
		}
	}
	return best, found
}

func (s *Selector) selectParallel(l chess.Layout, candidates []chess.Move) (chess.Move, bool) {
	pool := worker.NewPool(s.evaluate,
		worker.WithWorkers(s.workers),
		worker.WithBufferSize(len(candidates)))
	pool.Start()

	go func() {
		for i, m := range candidates {
			pool.Submit(worker.WorkItem{Move: m, Layout: l.Fork(), Index: i})
		}
		pool.Close()
	}()

	var best worker.ProcessResult
	found := false
	for r := range pool.Results() {
		if r.Err != nil || r.Score <= 0 {
			continue
		}
		if !found || r.Score > best.Score || (r.Score == best.Score && r.Index < best.Index) {
			best, found = r, true
		}
	}
	return best.Move, found
}

// evaluate plays the item's move on its own layout and scores the result
// for the mover.
func (s *Selector) evaluate(item worker.WorkItem) worker.ProcessResult {
	m := item.Move
	captured, err := engine.MoveTo(m.Piece, m.To, item.Layout)
	if err == nil && s.kingSafety && engine.IsCheck(item.Layout, m.Piece.Colour) {
		err = errors.ErrUnSafeKing
	}
	if err != nil {
		return worker.ProcessResult{Move: m, Index: item.Index, Err: err}
	}
	m.Captured = captured
	return worker.ProcessResult{
		Move:  m,
		Index: item.Index,
		Score: chess.MaterialScore(item.Layout, m.Piece.Colour),
	}
}

// Candidates lists every move the selector considers for colour: pieces
// in cell order, each with its reachable squares.
func Candidates(colour chess.Colour, l chess.Layout) []chess.Move {
	var moves []chess.Move
	for _, p := range l.PiecesOf(colour) {
		for _, target := range engine.PossibleMoves(p, l) {
			moves = append(moves, chess.NewMove(p, target))
		}
	}
	return moves
}
