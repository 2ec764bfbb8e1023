package main

import (
	"fmt"
	"os"

	"github.com/apibingo/apibingo/pkg/config"
	flag "github.com/spf13/pflag"
)

func main() {
	var (
		configPath string
		input      string
		quiet      bool
		jsonOut    bool
		help       bool
	)

	flag.StringVar(&configPath, "config", "", "Path to config file")
	flag.StringVarP(&input, "input", "i", "", "File of JSON responses to check (\"-\" for stdin)")
	flag.BoolVar(&quiet, "quiet", false, "Only print the final card")
	flag.BoolVar(&jsonOut, "json", false, "Print the final card as JSON")
	flag.BoolVar(&help, "help", false, "Show help message")
	flag.Parse()

	if help {
		printUsage()
		os.Exit(0)
	}

	if configPath != "" {
		if err := os.Setenv("APIBINGO_CONFIG", configPath); err != nil {
			fmt.Fprintf(os.Stderr, "Error setting config path: %v\n", err)
			os.Exit(1)
		}
	}

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	// Override config with command line flags
	if input != "" {
		cfg.Input = input
	}
	if quiet {
		cfg.Quiet = true
	}
	if jsonOut {
		cfg.Format = config.FormatJSON
	}

	// Create application
	deps := NewDependencies(cfg)
	app := NewApplication(deps)

	// Run the application
	if err := app.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println("apibingo - API Response Bingo, a scorecard for inconsistent error formats")
	fmt.Println()
	fmt.Println("Usage: apibingo [OPTIONS]")
	fmt.Println()
	fmt.Println("Options:")
	flag.PrintDefaults()
	fmt.Println()
	fmt.Println("With no input file, a built-in set of sample responses is played.")
	fmt.Println()
	fmt.Println("Environment Variables:")
	fmt.Println("  APIBINGO_INPUT    File of JSON responses to check (\"-\" for stdin)")
	fmt.Println("  APIBINGO_QUIET    Only print the final card (true/false)")
	fmt.Println("  APIBINGO_FORMAT   Final card format: text or json")
	fmt.Println("  APIBINGO_CONFIG   Path to config file")
	fmt.Println()
	fmt.Println("Configuration file: ~/.config/apibingo/config.yaml")
}
