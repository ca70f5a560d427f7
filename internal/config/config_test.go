package config

import (
	"bytes"
	stderrors "errors"
	"testing"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// TestOutputConfig_Defaults verifies OutputConfig has sensible defaults
func TestOutputConfig_Defaults(t *testing.T) {
	cfg := NewOutputConfig()

	if cfg.Format != Text {
		t.Errorf("Format = %v, want %v", cfg.Format, Text)
	}
	if cfg.ShowBoard {
		t.Error("ShowBoard should be false by default")
	}
	if !cfg.ShowCaptures {
		t.Error("ShowCaptures should be true by default")
	}
	if !cfg.ShowMoves {
		t.Error("ShowMoves should be true by default")
	}
}

// TestPlayerConfig_Defaults verifies PlayerConfig has sensible defaults
func TestPlayerConfig_Defaults(t *testing.T) {
	cfg := NewPlayerConfig()

	if cfg.AI != NoAI {
		t.Errorf("AI = %v, want none", cfg.AI)
	}
	if cfg.Workers != 1 {
		t.Errorf("Workers = %d, want 1", cfg.Workers)
	}
	if !cfg.KingSafety {
		t.Error("KingSafety should be true by default")
	}
	if cfg.MaxPlies != 200 {
		t.Errorf("MaxPlies = %d, want 200", cfg.MaxPlies)
	}
}

// TestPlayerConfig_Validate verifies player config validation
func TestPlayerConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     PlayerConfig
		wantErr bool
	}{
		{"defaults", *NewPlayerConfig(), false},
		{"many workers", PlayerConfig{AI: AIBoth, Workers: 8}, false},
		{"no workers", PlayerConfig{Workers: 0}, true},
		{"negative plies", PlayerConfig{Workers: 1, MaxPlies: -1}, true},
		{"unknown side", PlayerConfig{AI: AIPlayer(9), Workers: 1}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !stderrors.Is(err, errors.ErrInvalidConfig) {
				t.Errorf("Validate() error = %v, want ErrInvalidConfig", err)
			}
		})
	}
}

// TestConfig_Validate verifies top-level validation
func TestConfig_Validate(t *testing.T) {
	cfg := NewConfig()
	if err := cfg.Validate(); err != nil {
		t.Errorf("NewConfig().Validate() = %v, want nil", err)
	}

	cfg.Verbosity = 3
	if err := cfg.Validate(); !stderrors.Is(err, errors.ErrInvalidConfig) {
		t.Errorf("Validate() with verbosity 3 = %v, want ErrInvalidConfig", err)
	}

	cfg = NewConfig()
	cfg.Player.Workers = 0
	if err := cfg.Validate(); !stderrors.Is(err, errors.ErrInvalidConfig) {
		t.Errorf("Validate() with 0 workers = %v, want ErrInvalidConfig", err)
	}
}

func TestParseAIPlayer(t *testing.T) {
	tests := []struct {
		in      string
		want    AIPlayer
		wantErr bool
	}{
		{"", NoAI, false},
		{"none", NoAI, false},
		{"white", AIWhite, false},
		{"Black", AIBlack, false},
		{"both", AIBoth, false},
		{"red", NoAI, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseAIPlayer(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseAIPlayer(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseAIPlayer(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseOutputFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    OutputFormat
		wantErr bool
	}{
		{"", Text, false},
		{"text", Text, false},
		{"FEN", FENOnly, false},
		{"json", JSON, false},
		{"pgn", Text, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseOutputFormat(tt.in)
			if tt.wantErr {
				if !stderrors.Is(err, errors.ErrInvalidConfig) {
					t.Fatalf("ParseOutputFormat(%q) error = %v, want ErrInvalidConfig", tt.in, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseOutputFormat(%q) error = %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("ParseOutputFormat(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestAIPlayer_Plays(t *testing.T) {
	tests := []struct {
		ai           AIPlayer
		white, black bool
	}{
		{NoAI, false, false},
		{AIWhite, true, false},
		{AIBlack, false, true},
		{AIBoth, true, true},
	}

	for _, tt := range tests {
		if got := tt.ai.Plays(chess.White); got != tt.white {
			t.Errorf("%v.Plays(White) = %v, want %v", tt.ai, got, tt.white)
		}
		if got := tt.ai.Plays(chess.Black); got != tt.black {
			t.Errorf("%v.Plays(Black) = %v, want %v", tt.ai, got, tt.black)
		}
	}
}

// TestConfig_SetOutput verifies output stream setting
func TestConfig_SetOutput(t *testing.T) {
	cfg := NewConfig()
	buf := &bytes.Buffer{}

	cfg.SetOutput(buf)

	if cfg.OutputFile != buf {
		t.Error("SetOutput did not set OutputFile")
	}
}

// TestConfig_Logf verifies verbosity gating of diagnostics
func TestConfig_Logf(t *testing.T) {
	cfg := NewConfig()
	buf := &bytes.Buffer{}
	cfg.SetLog(buf)

	cfg.Logf(1, "summary %d", 1)
	cfg.Logf(2, "commentary")

	if got, want := buf.String(), "summary 1\n"; got != want {
		t.Errorf("log = %q, want %q", got, want)
	}

	cfg.Verbosity = 0
	cfg.Logf(1, "silent")
	if got := buf.String(); got != "summary 1\n" {
		t.Errorf("log after Verbosity=0 = %q", got)
	}
}

// TestConfigBuilder verifies the builder pattern works correctly
func TestConfigBuilder(t *testing.T) {
	out := &bytes.Buffer{}
	cfg := NewConfigBuilder().
		WithVerbosity(2).
		WithStartFEN("4k3/8/8/8/8/8/8/4K3 w - - 0 1").
		WithAI(AIBlack).
		WithWorkers(4).
		WithKingSafety(false).
		WithMaxPlies(10).
		WithOutputFormat(FENOnly).
		WithBoard(true).
		WithOutput(out).
		Build()

	if cfg.Verbosity != 2 {
		t.Errorf("Verbosity = %d, want 2", cfg.Verbosity)
	}
	if cfg.StartFEN == "" {
		t.Error("StartFEN not set")
	}
	if cfg.Player.AI != AIBlack {
		t.Errorf("AI = %v, want black", cfg.Player.AI)
	}
	if cfg.Player.Workers != 4 {
		t.Errorf("Workers = %d, want 4", cfg.Player.Workers)
	}
	if cfg.Player.KingSafety {
		t.Error("KingSafety should be false")
	}
	if cfg.Player.MaxPlies != 10 {
		t.Errorf("MaxPlies = %d, want 10", cfg.Player.MaxPlies)
	}
	if cfg.Output.Format != FENOnly {
		t.Errorf("Format = %v, want FENOnly", cfg.Output.Format)
	}
	if !cfg.Output.ShowBoard {
		t.Error("ShowBoard should be true")
	}
	if cfg.OutputFile != out {
		t.Error("OutputFile not set")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() = %v, want nil", err)
	}
}
