// Package game drives a game of chess over the rules engine: it keeps the
// board and the side to move, validates and applies moves, records
// captures and lets the move selector play for either side.
package game

import (
	"github.com/lgbarn/chess-rules-go/internal/ai"
	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/errors"
	"github.com/lgbarn/chess-rules-go/internal/hashing"
)

// Record is one played move.
type Record struct {
	Ply    int
	Move   chess.Move
	Status engine.Status // Status of the side to move afterwards
	ByAI   bool

	// Repetition counts how often the position after the move has been
	// reached in this game, this time included.
	Repetition int
}

// Game holds the state of a game in progress.
type Game struct {
	Board    *chess.Board
	Turn     chess.Colour
	Status   engine.Status
	StartFEN string
	History  []Record

	cfg       *config.Config
	selector  *ai.Selector
	positions *hashing.RepetitionCounter
}

// New starts a game from cfg.StartFEN, or from the opening position when
// it is empty. A nil cfg uses the defaults.
func New(cfg *config.Config) (*Game, error) {
	if cfg == nil {
		cfg = config.NewConfig()
	}
	if cfg.Player == nil {
		cfg.Player = config.NewPlayerConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	g := &Game{
		Board:    chess.NewBoard(),
		Turn:     chess.White,
		StartFEN: cfg.StartFEN,
		cfg:       cfg,
		selector:  newSelector(cfg.Player),
		positions: hashing.NewRepetitionCounter(),
	}
	if cfg.StartFEN != "" {
		board, turn, err := engine.LoadFEN(cfg.StartFEN)
		if err != nil {
			return nil, errors.Wrap(err, "start position")
		}
		g.Board, g.Turn = board, turn
	}
	g.Status = engine.GameStatus(g.Board, g.Turn)
	g.positions.Add(g.Board, g.Turn)
	return g, nil
}

func newSelector(p *config.PlayerConfig) *ai.Selector {
	opts := []ai.Option{ai.WithWorkers(p.Workers)}
	if p.KingSafety {
		opts = append(opts, ai.WithKingSafety())
	}
	return ai.NewSelector(opts...)
}

// Over reports whether the side to move is checkmated or stalemated.
func (g *Game) Over() bool {
	return g.Status == engine.Checkmate || g.Status == engine.Stalemate
}

// Ply returns the number of moves played.
func (g *Game) Ply() int {
	return len(g.History)
}

// FEN returns the current position.
func (g *Game) FEN() string {
	return engine.FEN(g.Board, g.Turn)
}

// Play plays a move in four-character notation for the side to move.
func (g *Game) Play(notation string) (chess.Move, error) {
	from, to, err := ParseMove(notation)
	if err != nil {
		return chess.Move{}, &errors.MoveError{Err: err, Ply: g.Ply() + 1}
	}
	return g.PlayMove(from, to)
}

// PlayMove moves the piece on from to to for the side to move. The move
// is tried on a copy of the board first and only committed when it is
// legal and does not leave the mover's king in check.
func (g *Game) PlayMove(from, to chess.Position) (chess.Move, error) {
	return g.play(from, to, false)
}

func (g *Game) play(from, to chess.Position, byAI bool) (chess.Move, error) {
	ply := g.Ply() + 1
	reject := func(err error, piece string) error {
		return &errors.MoveError{Err: err, From: from.String(), To: to.String(), Piece: piece, Ply: ply}
	}

	if g.Over() {
		return chess.Move{}, reject(errors.Wrapf(errors.ErrInvalidMove, "game over by %s", g.Status), "")
	}
	p, ok := g.Board.PieceAt(from)
	if !ok {
		return chess.Move{}, reject(errors.ErrNoPiece, "")
	}
	if p.Colour != g.Turn {
		return chess.Move{}, reject(errors.Wrapf(errors.ErrInvalidMove, "%s to move", g.Turn), p.String())
	}

	next := g.Board.Copy()
	captured, err := engine.MoveTo(p, to, next)
	if err != nil {
		return chess.Move{}, reject(err, p.String())
	}
	if engine.IsCheck(next, g.Turn) {
		return chess.Move{}, reject(errors.ErrUnSafeKing, p.String())
	}

	m := chess.NewMove(p, to)
	m.Captured = captured
	g.Board = next
	g.Turn = g.Turn.Opposite()
	g.Status = engine.GameStatus(g.Board, g.Turn)
	rep := g.positions.Add(g.Board, g.Turn)
	g.History = append(g.History, Record{Ply: ply, Move: m, Status: g.Status, ByAI: byAI, Repetition: rep})

	g.logMove(ply, m, byAI)
	if rep > 1 {
		g.cfg.Logf(1, "%d. position reached %d times", ply, rep)
	}
	return m, nil
}

// PlayBest lets the selector move for the side to move. It reports false
// when the game is over or the selector finds no move worth playing.
func (g *Game) PlayBest() (chess.Move, bool, error) {
	if g.Over() {
		return chess.Move{}, false, nil
	}
	m, ok := g.selector.SelectMove(g.Turn, g.Board)
	if !ok {
		g.cfg.Logf(2, "%s: no move gains material", g.Turn)
		return chess.Move{}, false, nil
	}
	played, err := g.play(m.From, m.To, true)
	if err != nil {
		return chess.Move{}, false, err
	}
	return played, true, nil
}

// AutoPlay lets the selector move while it plays the side to move, up to
// the configured ply limit. It returns the number of moves played.
func (g *Game) AutoPlay() (int, error) {
	played := 0
	limit := g.cfg.Player.MaxPlies
	for g.cfg.Player.AI.Plays(g.Turn) && !g.Over() {
		if limit > 0 && played >= limit {
			break
		}
		_, ok, err := g.PlayBest()
		if err != nil {
			return played, err
		}
		if !ok {
			break
		}
		played++
	}
	return played, nil
}

// Replay plays moves in order, letting the selector answer after each one
// where it plays the side to move. It stops at the first rejected move.
func (g *Game) Replay(moves []string) error {
	if _, err := g.AutoPlay(); err != nil {
		return err
	}
	for _, m := range moves {
		if _, err := g.Play(m); err != nil {
			return err
		}
		if _, err := g.AutoPlay(); err != nil {
			return err
		}
	}
	return nil
}

// Repetitions returns how often the current position has been reached.
func (g *Game) Repetitions() int {
	return g.positions.Count(g.Board, g.Turn)
}

// Captured returns the pieces taken by colour, in the order they fell.
func (g *Game) Captured(by chess.Colour) []chess.Piece {
	var pieces []chess.Piece
	for _, r := range g.History {
		if r.Move.Piece.Colour == by && r.Move.IsCapture() {
			pieces = append(pieces, r.Move.Captured)
		}
	}
	return pieces
}

func (g *Game) logMove(ply int, m chess.Move, byAI bool) {
	who := "plays"
	if byAI {
		who = "selects"
	}
	if m.IsCapture() {
		g.cfg.Logf(2, "%d. %s %s %s, capturing %s", ply, m.Piece.Colour, who, m, m.Captured.Kind)
	} else {
		g.cfg.Logf(2, "%d. %s %s %s", ply, m.Piece.Colour, who, m)
	}
	if g.Status != engine.Normal {
		g.cfg.Logf(1, "%d. %s: %s", ply, g.Turn, g.Status)
	}
}
