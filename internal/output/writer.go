// Package output writes the state of finished or interrupted games as
// text reports, bare FEN lines or JSON.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/game"
)

// GameWriter is the interface for writing games to output.
type GameWriter interface {
	// WriteGame writes a single game to the output.
	WriteGame(g *game.Game) error

	// Flush flushes any buffered data to the underlying writer.
	Flush() error

	// Close closes the writer and releases any resources.
	// For batch writers (like JSON), this also writes any pending output.
	Close() error
}

// NewWriter returns the writer for the configured output format.
func NewWriter(w io.Writer, cfg *config.Config) GameWriter {
	switch cfg.Output.Format {
	case config.FENOnly:
		return &FENWriter{w: w}
	case config.JSON:
		return NewJSONWriterSingle(w, cfg)
	default:
		return NewTextWriter(w, cfg)
	}
}

// TextWriter writes a human readable report of a game.
type TextWriter struct {
	w   io.Writer
	cfg *config.Config
}

// NewTextWriter creates a new text writer.
func NewTextWriter(w io.Writer, cfg *config.Config) *TextWriter {
	return &TextWriter{
		w:   w,
		cfg: cfg,
	}
}

// WriteGame writes the report for g.
func (tw *TextWriter) WriteGame(g *game.Game) error {
	var sb strings.Builder
	out := tw.cfg.Output

	if out.ShowBoard {
		writeDiagram(&sb, g.Board)
	}
	fmt.Fprintf(&sb, "FEN: %s\n", g.FEN())
	fmt.Fprintf(&sb, "To move: %s\n", g.Turn)
	fmt.Fprintf(&sb, "Status: %s\n", g.Status)
	if n := g.Repetitions(); n > 1 {
		fmt.Fprintf(&sb, "Repetitions: %d\n", n)
	}

	if out.ShowMoves {
		moves := make([]string, len(g.History))
		for i, r := range g.History {
			moves[i] = r.Move.String()
		}
		fmt.Fprintf(&sb, "Moves: %s\n", strings.Join(moves, " "))
	}
	if out.ShowCaptures {
		for _, colour := range []chess.Colour{chess.White, chess.Black} {
			fmt.Fprintf(&sb, "%s captured: %s\n", colour, kindList(g.Captured(colour)))
		}
	}

	_, err := io.WriteString(tw.w, sb.String())
	return err
}

// Flush is a no-op: text is written immediately.
func (tw *TextWriter) Flush() error {
	return nil
}

// Close closes the text writer.
func (tw *TextWriter) Close() error {
	return nil
}

// FENWriter writes one FEN line per game.
type FENWriter struct {
	w io.Writer
}

// WriteGame writes the current position of g.
func (fw *FENWriter) WriteGame(g *game.Game) error {
	_, err := fmt.Fprintln(fw.w, g.FEN())
	return err
}

// Flush is a no-op.
func (fw *FENWriter) Flush() error {
	return nil
}

// Close closes the FEN writer.
func (fw *FENWriter) Close() error {
	return nil
}

// JSONWriter writes games in JSON format.
// It buffers games and writes them as a JSON array on Close or Flush.
type JSONWriter struct {
	w      io.Writer
	cfg    *config.Config
	games  []*JSONGame
	single bool // If true, write each game immediately instead of batching
}

// NewJSONWriter creates a new JSON writer.
// By default, it batches games and writes them as an array on Close().
func NewJSONWriter(w io.Writer, cfg *config.Config) *JSONWriter {
	return &JSONWriter{
		w:   w,
		cfg: cfg,
	}
}

// NewJSONWriterSingle creates a JSON writer that writes each game immediately.
func NewJSONWriterSingle(w io.Writer, cfg *config.Config) *JSONWriter {
	return &JSONWriter{
		w:      w,
		cfg:    cfg,
		single: true,
	}
}

// WriteGame buffers a game for JSON output (or writes immediately in single mode).
func (jw *JSONWriter) WriteGame(g *game.Game) error {
	jg := GameToJSON(g, jw.cfg)
	if jw.single {
		enc := json.NewEncoder(jw.w)
		enc.SetIndent("", "  ")
		return enc.Encode(jg)
	}

	jw.games = append(jw.games, jg)
	return nil
}

// Flush writes all buffered games as a JSON array.
func (jw *JSONWriter) Flush() error {
	if jw.single || len(jw.games) == 0 {
		return nil
	}

	enc := json.NewEncoder(jw.w)
	enc.SetIndent("", "  ")
	err := enc.Encode(&JSONOutput{Games: jw.games})

	// Clear buffer after writing
	jw.games = jw.games[:0]

	return err
}

// Close flushes and closes the JSON writer.
func (jw *JSONWriter) Close() error {
	return jw.Flush()
}

// writeDiagram draws the board from White's side, rank 8 first.
func writeDiagram(sb *strings.Builder, b *chess.Board) {
	for rank := chess.Rank(chess.LastRank); rank >= chess.FirstRank; rank-- {
		sb.WriteByte(byte(rank))
		for col := chess.Col(chess.FirstCol); col <= chess.LastCol; col++ {
			sb.WriteByte(' ')
			p := b.Get(col, rank)
			if p.IsEmpty() {
				sb.WriteByte('.')
			} else {
				sb.WriteByte(p.Letter())
			}
		}
		sb.WriteByte('\n')
	}
	sb.WriteString("  a b c d e f g h\n")
}

func kindList(pieces []chess.Piece) string {
	if len(pieces) == 0 {
		return "-"
	}
	names := make([]string, len(pieces))
	for i, p := range pieces {
		names[i] = p.Kind.String()
	}
	return strings.Join(names, ", ")
}
