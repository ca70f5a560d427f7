package output

import (
	"strings"

	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/game"
)

// JSONGame represents a game in JSON format.
type JSONGame struct {
	InitialFEN string              `json:"initialFEN"`
	FinalFEN   string              `json:"finalFEN"`
	ToMove     string              `json:"toMove"`
	Status     string              `json:"status"`
	PlyCount   int                 `json:"plyCount"`
	Moves      []JSONMove          `json:"moves,omitempty"`
	Captured   map[string][]string `json:"captured,omitempty"`
}

// JSONMove represents a move in JSON format.
type JSONMove struct {
	Ply        int    `json:"ply"`
	Color      string `json:"color"` // "white" or "black"
	UCI        string `json:"uci"`
	From       string `json:"from"`
	To         string `json:"to"`
	Piece      string `json:"piece"`
	Captured   string `json:"captured,omitempty"`
	Status     string `json:"status,omitempty"`
	Repetition int    `json:"repetition,omitempty"` // Set once a position recurs
	ByAI       bool   `json:"byAI,omitempty"`
}

// JSONOutput holds multiple games for array output.
type JSONOutput struct {
	Games []*JSONGame `json:"games"`
}

// GameToJSON converts a game to JSON format.
func GameToJSON(g *game.Game, cfg *config.Config) *JSONGame {
	jg := &JSONGame{
		InitialFEN: g.StartFEN,
		FinalFEN:   g.FEN(),
		ToMove:     lower(g.Turn.String()),
		Status:     g.Status.String(),
		PlyCount:   g.Ply(),
	}
	if jg.InitialFEN == "" {
		jg.InitialFEN = engine.InitialFEN
	}

	if cfg.Output.ShowMoves {
		jg.Moves = make([]JSONMove, 0, len(g.History))
		for _, r := range g.History {
			jm := JSONMove{
				Ply:   r.Ply,
				Color: lower(r.Move.Piece.Colour.String()),
				UCI:   r.Move.String(),
				From:  r.Move.From.String(),
				To:    r.Move.To.String(),
				Piece: lower(r.Move.Piece.Kind.String()),
				ByAI:  r.ByAI,
			}
			if r.Move.IsCapture() {
				jm.Captured = lower(r.Move.Captured.Kind.String())
			}
			if r.Status != engine.Normal {
				jm.Status = r.Status.String()
			}
			if r.Repetition > 1 {
				jm.Repetition = r.Repetition
			}
			jg.Moves = append(jg.Moves, jm)
		}
	}

	if cfg.Output.ShowCaptures {
		jg.Captured = make(map[string][]string)
		for _, r := range g.History {
			if r.Move.IsCapture() {
				by := lower(r.Move.Piece.Colour.String())
				jg.Captured[by] = append(jg.Captured[by], lower(r.Move.Captured.Kind.String()))
			}
		}
	}

	return jg
}

func lower(s string) string {
	return strings.ToLower(s)
}
