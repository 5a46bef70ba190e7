package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"calcterm/engine"
	"calcterm/repl"
)

const version = "calcterm v0.1.0 - terminal expression calculator"

func main() {
	// Parse command line flags
	var (
		configPath  = flag.String("config", "", "Path to configuration file")
		showVersion = flag.Bool("version", false, "Show version information")
		showHelp    = flag.Bool("help", false, "Show help information")
		execFile    = flag.String("exec", "", "Evaluate expressions from a file in batch mode")
		verbose     = flag.Bool("verbose", false, "Enable verbose output")
	)
	flag.Parse()

	if *showVersion {
		fmt.Println(version)
		os.Exit(0)
	}

	if *showHelp {
		printHelp()
		os.Exit(0)
	}

	// Allow `calcterm <file>` as shorthand for batch mode
	batchFile := *execFile
	if batchFile == "" && flag.NArg() > 0 {
		batchFile = flag.Arg(0)
	}

	// Load configuration
	configFilePath := *configPath
	if configFilePath == "" {
		configFilePath = os.Getenv("CALCTERM_CONFIG")
	}
	if configFilePath == "" {
		// Try default locations
		home, _ := os.UserHomeDir()
		defaultPaths := []string{
			filepath.Join(home, ".calcterm", "config.yaml"),
			"./calcterm.yaml",
		}
		for _, path := range defaultPaths {
			if _, err := os.Stat(path); err == nil {
				configFilePath = path
				break
			}
		}
	}

	cfg, err := LoadConfig(configFilePath)
	if err != nil {
		fmt.Printf("Error loading configuration: %v\n", err)
		os.Exit(1)
	}

	// Override config with command line flags
	if *verbose {
		cfg.Verbose = true
	}

	modes, err := cfg.Modes()
	if err != nil {
		fmt.Printf("Error in configuration: %v\n", err)
		os.Exit(1)
	}

	session := engine.NewSessionWithConfig(engine.SessionConfig{
		Modes:      modes,
		Abbreviate: cfg.Calculator.Abbreviate,
		CacheSize:  cfg.Calculator.CacheSize,
	})

	if batchFile != "" {
		if err := BatchMode(session, batchFile, cfg.Verbose); err != nil {
			fmt.Printf("Error executing file: %v\n", err)
			os.Exit(1)
		}
		os.Exit(0)
	}

	// Create REPL with configuration
	replInstance := repl.NewWithConfig(repl.Config{
		Session:      session,
		Prompt:       cfg.REPL.Prompt,
		HistoryFile:  cfg.REPL.HistoryFile,
		HistorySize:  cfg.REPL.HistorySize,
		ShowWelcome:  cfg.REPL.ShowWelcome,
		Verbose:      cfg.Verbose,
		EnableColors: cfg.REPL.EnableColors,
	})

	if err := replInstance.Run(); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
}

// printHelp displays help information
func printHelp() {
	fmt.Println("calcterm - terminal expression calculator")
	fmt.Println()
	fmt.Println("Usage: calcterm [options]")
	fmt.Println("Evaluate a file: calcterm <path-to-file>")
	fmt.Println()
	fmt.Println("Options:")
	fmt.Println("  --config <path>   Path to configuration file")
	fmt.Println("  --exec <file>     Evaluate expressions from a file in batch mode")
	fmt.Println("  --version         Show version information")
	fmt.Println("  --verbose         Enable verbose output")
	fmt.Println("  --help            Show this help message")
	fmt.Println()
	fmt.Println("Environment Variables:")
	fmt.Println("  CALCTERM_CONFIG   Path to configuration file")
	fmt.Println()
	fmt.Println("Examples:")
	fmt.Println("  calcterm                      Run the interactive calculator")
	fmt.Println("  calcterm exprs.txt            Evaluate a file of expressions")
	fmt.Println("  calcterm --config calc.yaml   Run with custom configuration")
	fmt.Println()
	fmt.Println("Configuration files are searched in the following order:")
	fmt.Println("  1. Path specified by --config flag")
	fmt.Println("  2. Path specified by CALCTERM_CONFIG environment variable")
	fmt.Println("  3. Default locations: ~/.calcterm/config.yaml, ./calcterm.yaml")
}
