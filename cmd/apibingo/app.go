package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/apibingo/apibingo/pkg/bingo"
	"github.com/apibingo/apibingo/pkg/config"
	"github.com/apibingo/apibingo/pkg/samples"
)

// Dependencies holds all the dependencies for the application
type Dependencies struct {
	Config *config.Config
	Card   *bingo.Card
	Stdin  io.Reader
	Stdout io.Writer
}

// NewDependencies creates all dependencies with the given configuration
func NewDependencies(cfg *config.Config) *Dependencies {
	return &Dependencies{
		Config: cfg,
		Card:   bingo.NewCard(),
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
	}
}

// Application plays one game of bingo over the configured responses
type Application struct {
	deps *Dependencies
}

// NewApplication creates a new application with the given dependencies
func NewApplication(deps *Dependencies) *Application {
	return &Application{
		deps: deps,
	}
}

// Run checks every configured response against one card and prints the
// final scorecard
func (a *Application) Run() error {
	responses, err := a.loadResponses()
	if err != nil {
		return err
	}

	if !a.deps.Config.Quiet {
		fmt.Fprintf(a.deps.Stdout, "Playing API Response Bingo!\n\n")
	}

	for i, response := range responses {
		found := a.deps.Card.Check(response)
		if a.deps.Config.Quiet {
			continue
		}

		encoded, err := json.Marshal(response)
		if err != nil {
			return fmt.Errorf("failed to encode response %d: %w", i+1, err)
		}
		fmt.Fprintf(a.deps.Stdout, "Response %d: %s\n", i+1, encoded)
		if len(found) > 0 {
			fmt.Fprintf(a.deps.Stdout, "Found: %s\n", strings.Join(found, ", "))
		}
		fmt.Fprintln(a.deps.Stdout)
	}

	return a.report()
}

// loadResponses resolves the input source: a file, stdin, or the built-in
// samples when no input is configured.
func (a *Application) loadResponses() ([]map[string]any, error) {
	switch a.deps.Config.Input {
	case "":
		return samples.Responses(), nil
	case "-":
		responses, err := samples.Read(a.deps.Stdin)
		if err != nil {
			return nil, fmt.Errorf("failed to read stdin: %w", err)
		}
		return responses, nil
	default:
		f, err := os.Open(a.deps.Config.Input)
		if err != nil {
			return nil, fmt.Errorf("failed to open input: %w", err)
		}
		defer func() { _ = f.Close() }()

		responses, err := samples.Read(f)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", a.deps.Config.Input, err)
		}
		return responses, nil
	}
}

func (a *Application) report() error {
	if a.deps.Config.Format == config.FormatJSON {
		summary := struct {
			Found []string `json:"found"`
			Score int      `json:"score"`
			Bingo bool     `json:"bingo"`
		}{
			Found: a.deps.Card.Found(),
			Score: a.deps.Card.Score(),
			Bingo: a.deps.Card.IsBingo(),
		}
		return json.NewEncoder(a.deps.Stdout).Encode(summary)
	}

	a.deps.Card.WriteReport(a.deps.Stdout)
	return nil
}
