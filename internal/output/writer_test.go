package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/game"
)

func newTestConfig() *config.Config {
	cfg := config.NewConfig()
	cfg.Verbosity = 0
	return cfg
}

// playTestGame plays 1. e4 d5 2. exd5 with no selector involved.
func playTestGame(t *testing.T, cfg *config.Config) *game.Game {
	t.Helper()
	g, err := game.New(cfg)
	if err != nil {
		t.Fatalf("game.New() error = %v", err)
	}
	if err := g.Replay([]string{"e2e4", "d7d5", "e4d5"}); err != nil {
		t.Fatalf("Replay() error = %v", err)
	}
	return g
}

// TestTextWriter_WriteGame verifies the text report layout
func TestTextWriter_WriteGame(t *testing.T) {
	cfg := newTestConfig()
	g := playTestGame(t, cfg)

	var buf bytes.Buffer
	writer := NewTextWriter(&buf, cfg)
	if err := writer.WriteGame(g); err != nil {
		t.Fatalf("WriteGame failed: %v", err)
	}

	output := buf.String()
	for _, want := range []string{
		"FEN: " + g.FEN(),
		"To move: Black",
		"Status: normal",
		"Moves: e2e4 d7d5 e4d5",
		"White captured: Pawn",
		"Black captured: -",
	} {
		if !strings.Contains(output, want) {
			t.Errorf("output missing %q:\n%s", want, output)
		}
	}
	if strings.Contains(output, "a b c d e f g h") {
		t.Error("board diagram written without ShowBoard")
	}
}

// TestTextWriter_Board verifies the diagram is drawn rank 8 first
func TestTextWriter_Board(t *testing.T) {
	cfg := newTestConfig()
	cfg.Output.ShowBoard = true
	cfg.Output.ShowMoves = false
	cfg.Output.ShowCaptures = false
	g := playTestGame(t, cfg)

	var buf bytes.Buffer
	if err := NewTextWriter(&buf, cfg).WriteGame(g); err != nil {
		t.Fatalf("WriteGame failed: %v", err)
	}

	lines := strings.Split(buf.String(), "\n")
	if len(lines) < 9 {
		t.Fatalf("output has %d lines; want at least 9", len(lines))
	}
	want := []string{
		"8 r n b q k b n r",
		"7 p p p . p p p p",
		"6 . . . . . . . .",
		"5 . . . P . . . .",
		"4 . . . . . . . .",
		"3 . . . . . . . .",
		"2 P P P P . P P P",
		"1 R N B Q K B N R",
		"  a b c d e f g h",
	}
	for i, w := range want {
		if lines[i] != w {
			t.Errorf("line %d = %q; want %q", i, lines[i], w)
		}
	}
	if strings.Contains(buf.String(), "Moves:") {
		t.Error("moves written with ShowMoves off")
	}
}

// TestFENWriter_WriteGame verifies a single FEN line is written
func TestFENWriter_WriteGame(t *testing.T) {
	cfg := newTestConfig()
	cfg.Output.Format = config.FENOnly
	g := playTestGame(t, cfg)

	var buf bytes.Buffer
	writer := NewWriter(&buf, cfg)
	if err := writer.WriteGame(g); err != nil {
		t.Fatalf("WriteGame failed: %v", err)
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	want := "rnbqkbnr/ppp1pppp/8/3P4/8/8/PPPP1PPP/RNBQKBNR b - - 0 1\n"
	if got := buf.String(); got != want {
		t.Errorf("output = %q; want %q", got, want)
	}
}

// TestJSONWriter_Single verifies each game is encoded immediately
func TestJSONWriter_Single(t *testing.T) {
	cfg := newTestConfig()
	cfg.Output.Format = config.JSON
	g := playTestGame(t, cfg)

	var buf bytes.Buffer
	writer := NewWriter(&buf, cfg)
	if err := writer.WriteGame(g); err != nil {
		t.Fatalf("WriteGame failed: %v", err)
	}

	var jg JSONGame
	if err := json.Unmarshal(buf.Bytes(), &jg); err != nil {
		t.Fatalf("output is not valid JSON: %v\n%s", err, buf.String())
	}

	if jg.InitialFEN != engine.InitialFEN {
		t.Errorf("InitialFEN = %q; want %q", jg.InitialFEN, engine.InitialFEN)
	}
	if jg.FinalFEN != g.FEN() {
		t.Errorf("FinalFEN = %q; want %q", jg.FinalFEN, g.FEN())
	}
	if jg.ToMove != "black" || jg.Status != "normal" || jg.PlyCount != 3 {
		t.Errorf("ToMove, Status, PlyCount = %q, %q, %d; want black, normal, 3", jg.ToMove, jg.Status, jg.PlyCount)
	}
	if len(jg.Moves) != 3 {
		t.Fatalf("len(Moves) = %d; want 3", len(jg.Moves))
	}

	last := jg.Moves[2]
	want := JSONMove{Ply: 3, Color: "white", UCI: "e4d5", From: "e4", To: "d5", Piece: "pawn", Captured: "pawn"}
	if last != want {
		t.Errorf("Moves[2] = %+v; want %+v", last, want)
	}
	if got := jg.Captured["white"]; len(got) != 1 || got[0] != "pawn" {
		t.Errorf("Captured[white] = %v; want [pawn]", got)
	}
	if _, ok := jg.Captured["black"]; ok {
		t.Error("Captured has an entry for black")
	}
}

// TestJSONWriter_Batch verifies games are collected until Close
func TestJSONWriter_Batch(t *testing.T) {
	cfg := newTestConfig()
	cfg.Output.ShowMoves = false

	var buf bytes.Buffer
	writer := NewJSONWriter(&buf, cfg)
	for i := 0; i < 2; i++ {
		if err := writer.WriteGame(playTestGame(t, cfg)); err != nil {
			t.Fatalf("WriteGame failed: %v", err)
		}
	}
	if buf.Len() != 0 {
		t.Fatalf("batch writer wrote before Close: %q", buf.String())
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	var out JSONOutput
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if len(out.Games) != 2 {
		t.Fatalf("len(Games) = %d; want 2", len(out.Games))
	}
	if out.Games[0].Moves != nil {
		t.Errorf("Moves = %v; want none with ShowMoves off", out.Games[0].Moves)
	}

	// A second Close has nothing left to write.
	buf.Reset()
	if err := writer.Close(); err != nil {
		t.Fatalf("second Close failed: %v", err)
	}
	if buf.Len() != 0 {
		t.Errorf("second Close wrote %q", buf.String())
	}
}

// TestJSONMove_Status verifies check is recorded on the move that gave it
func TestJSONMove_Status(t *testing.T) {
	cfg := newTestConfig()
	cfg.StartFEN = "4k3/8/8/8/8/8/8/R3K3 w - - 0 1"
	g, err := game.New(cfg)
	if err != nil {
		t.Fatalf("game.New() error = %v", err)
	}
	if _, err := g.Play("a1a8"); err != nil {
		t.Fatalf("Play(a1a8) error = %v", err)
	}

	jg := GameToJSON(g, cfg)
	if jg.InitialFEN != cfg.StartFEN {
		t.Errorf("InitialFEN = %q; want %q", jg.InitialFEN, cfg.StartFEN)
	}
	if len(jg.Moves) != 1 || jg.Moves[0].Status != "check" {
		t.Errorf("Moves = %+v; want one move with status check", jg.Moves)
	}
}

// TestWriters_Repetition verifies a recurring position is reported
func TestWriters_Repetition(t *testing.T) {
	cfg := newTestConfig()
	g, err := game.New(cfg)
	if err != nil {
		t.Fatalf("game.New() error = %v", err)
	}
	if err := g.Replay([]string{"b1c3", "b8c6", "c3b1", "c6b8"}); err != nil {
		t.Fatalf("Replay() error = %v", err)
	}

	var buf bytes.Buffer
	if err := NewTextWriter(&buf, cfg).WriteGame(g); err != nil {
		t.Fatalf("WriteGame failed: %v", err)
	}
	if !strings.Contains(buf.String(), "Repetitions: 2") {
		t.Errorf("output missing repetition count:\n%s", buf.String())
	}

	jg := GameToJSON(g, cfg)
	if got := jg.Moves[3].Repetition; got != 2 {
		t.Errorf("Moves[3].Repetition = %d; want 2", got)
	}
	if got := jg.Moves[0].Repetition; got != 0 {
		t.Errorf("Moves[0].Repetition = %d; want 0", got)
	}
}
