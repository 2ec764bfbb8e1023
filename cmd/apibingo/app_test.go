package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/apibingo/apibingo/pkg/config"
)

func newTestApp(cfg *config.Config) (*Application, *bytes.Buffer) {
	deps := NewDependencies(cfg)
	out := &bytes.Buffer{}
	deps.Stdout = out
	deps.Stdin = strings.NewReader("")
	return NewApplication(deps), out
}

func TestNewDependencies(t *testing.T) {
	cfg := config.DefaultConfig()
	deps := NewDependencies(cfg)

	if deps.Config != cfg {
		t.Error("expected config to be set")
	}
	if deps.Card == nil {
		t.Error("expected a card to be created")
	}
	if deps.Stdout == nil {
		t.Error("expected stdout to be set")
	}
}

func TestRunBuiltinSamples(t *testing.T) {
	app, out := newTestApp(config.DefaultConfig())

	if err := app.Run(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	output := out.String()

	if !strings.Contains(output, "Playing API Response Bingo!") {
		t.Errorf("expected the banner, got:\n%s", output)
	}
	if !strings.Contains(output, "Response 1:") || !strings.Contains(output, "Response 6:") {
		t.Errorf("expected all six responses to be printed, got:\n%s", output)
	}
	if !strings.Contains(output, "Score: 8/12") {
		t.Errorf("expected the demo game to score 8, got:\n%s", output)
	}
	if !strings.Contains(output, "BINGO") {
		t.Errorf("expected the demo game to win, got:\n%s", output)
	}
}

func TestRunQuiet(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Quiet = true
	app, out := newTestApp(cfg)

	if err := app.Run(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	output := out.String()

	if strings.Contains(output, "Response 1:") {
		t.Errorf("expected no per-response output in quiet mode, got:\n%s", output)
	}
	if !strings.Contains(output, "Score: 8/12") {
		t.Errorf("expected the final card, got:\n%s", output)
	}
}

func TestRunJSONFormat(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Quiet = true
	cfg.Format = config.FormatJSON
	app, out := newTestApp(cfg)

	if err := app.Run(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var summary struct {
		Found []string `json:"found"`
		Score int      `json:"score"`
		Bingo bool     `json:"bingo"`
	}
	if err := json.Unmarshal(out.Bytes(), &summary); err != nil {
		t.Fatalf("failed to decode summary: %v\noutput:\n%s", err, out.String())
	}

	if summary.Score != 8 {
		t.Errorf("expected score 8 but got %d", summary.Score)
	}
	if !summary.Bingo {
		t.Error("expected bingo to be true")
	}
	expected := []string{
		"data", "err", "error", "fault",
		"message", "result", "status", "success",
	}
	if !reflect.DeepEqual(summary.Found, expected) {
		t.Errorf("expected found %v but got %v", expected, summary.Found)
	}
}

func TestRunInputFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "responses.jsonl")
	content := "{\"error\": \"boom\"}\n{\"status\": \"error\", \"code\": 500}\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("failed to write input file: %v", err)
	}

	cfg := config.DefaultConfig()
	cfg.Input = path
	app, out := newTestApp(cfg)

	if err := app.Run(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	output := out.String()

	if !strings.Contains(output, "Found: error") {
		t.Errorf("expected the error pattern to be found, got:\n%s", output)
	}
	if !strings.Contains(output, "Found: status, code") {
		t.Errorf("expected status and code in catalogue order, got:\n%s", output)
	}
	if !strings.Contains(output, "Score: 3/12") {
		t.Errorf("expected score 3, got:\n%s", output)
	}
}

func TestRunInputStdin(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Input = "-"
	deps := NewDependencies(cfg)
	out := &bytes.Buffer{}
	deps.Stdout = out
	deps.Stdin = strings.NewReader(`{"success": false}`)
	app := NewApplication(deps)

	if err := app.Run(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.Contains(out.String(), "Score: 1/12") {
		t.Errorf("expected score 1, got:\n%s", out.String())
	}
}

func TestRunInputErrors(t *testing.T) {
	tests := []struct {
		name    string
		setup   func(t *testing.T, cfg *config.Config, deps *Dependencies)
		wantErr string
	}{
		{
			name: "missing input file",
			setup: func(t *testing.T, cfg *config.Config, deps *Dependencies) {
				cfg.Input = filepath.Join(t.TempDir(), "missing.jsonl")
			},
			wantErr: "failed to open input",
		},
		{
			name: "non-object response on stdin",
			setup: func(t *testing.T, cfg *config.Config, deps *Dependencies) {
				cfg.Input = "-"
				deps.Stdin = strings.NewReader(`[1, 2, 3]`)
			},
			wantErr: "is not a JSON object",
		},
		{
			name: "malformed input file",
			setup: func(t *testing.T, cfg *config.Config, deps *Dependencies) {
				path := filepath.Join(t.TempDir(), "bad.jsonl")
				if err := os.WriteFile(path, []byte("{oops"), 0o600); err != nil {
					t.Fatalf("failed to write input file: %v", err)
				}
				cfg.Input = path
			},
			wantErr: "failed to decode",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.DefaultConfig()
			deps := NewDependencies(cfg)
			deps.Stdout = &bytes.Buffer{}
			deps.Stdin = strings.NewReader("")
			tt.setup(t, cfg, deps)
			app := NewApplication(deps)

			err := app.Run()
			if err == nil {
				t.Fatalf("expected an error containing %q but got none", tt.wantErr)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("expected error containing %q but got %q", tt.wantErr, err.Error())
			}
		})
	}
}

func TestRunEmptyInput(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Input = "-"
	deps := NewDependencies(cfg)
	out := &bytes.Buffer{}
	deps.Stdout = out
	deps.Stdin = strings.NewReader("")
	app := NewApplication(deps)

	if err := app.Run(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out.String(), "Score: 0/12") {
		t.Errorf("expected an empty card, got:\n%s", out.String())
	}
	if !strings.Contains(out.String(), "Keep trying") {
		t.Errorf("expected the keep-trying message, got:\n%s", out.String())
	}
}
