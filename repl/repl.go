package repl

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"calcterm/engine"
	"calcterm/value"

	"github.com/chzyer/readline"
)

// REPL drives the calculator session from a terminal: it reads lines,
// dispatches ':' commands, and feeds everything else to the engine.
type REPL struct {
	session     *engine.Session
	prompt      string
	running     bool
	showWelcome bool
	verbose     bool
	historyFile string
	historySize int
	display     *DisplayManager
	commands    map[string]CommandHandler
}

// Config contains configuration for the REPL
type Config struct {
	Session      *engine.Session
	Prompt       string // Main prompt (default: "> ")
	HistoryFile  string // Readline history path (default: "/tmp/calcterm_history")
	HistorySize  int    // Maximum readline history size (default: 1000)
	ShowWelcome  bool
	Verbose      bool
	EnableColors bool
}

// New creates a REPL with a fresh session and defaults
func New() *REPL {
	return NewWithConfig(Config{ShowWelcome: true, EnableColors: true})
}

// NewWithConfig creates a REPL with configuration
func NewWithConfig(config Config) *REPL {
	session := config.Session
	if session == nil {
		session = engine.NewSession()
	}

	prompt := config.Prompt
	if prompt == "" {
		prompt = "> "
	}
	historyFile := config.HistoryFile
	if historyFile == "" {
		historyFile = "/tmp/calcterm_history"
	}
	historySize := config.HistorySize
	if historySize == 0 {
		historySize = 1000
	}

	r := &REPL{
		session:     session,
		prompt:      prompt,
		showWelcome: config.ShowWelcome,
		verbose:     config.Verbose,
		historyFile: historyFile,
		historySize: historySize,
		display:     NewDisplayManager(config.EnableColors, config.Verbose),
	}
	r.registerCommands()
	return r
}

// Session exposes the underlying calculator session
func (r *REPL) Session() *engine.Session {
	return r.session
}

// IsVerbose returns whether verbose mode is enabled
func (r *REPL) IsVerbose() bool {
	return r.verbose
}

// isInteractive checks if the input is a terminal or piped
func (r *REPL) isInteractive() bool {
	fileInfo, _ := os.Stdin.Stat()
	return (fileInfo.Mode() & os.ModeCharDevice) != 0
}

// Run starts the REPL loop
func (r *REPL) Run() error {
	r.running = true

	if r.showWelcome {
		r.display.ShowWelcome()
		r.display.ShowModeLine(r.session.Modes())
	}

	if r.isInteractive() {
		return r.runInteractive()
	}
	return r.runPiped()
}

// runInteractive reads lines through readline with history and completion
func (r *REPL) runInteractive() error {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          r.display.Prompt(r.prompt, r.session.Modes()),
		HistoryFile:     r.historyFile,
		HistoryLimit:    r.historySize,
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
		AutoComplete:    NewCommandCompleter(r),
	})
	if err != nil {
		return fmt.Errorf("failed to initialize readline: %w", err)
	}
	defer rl.Close()

	for r.running {
		rl.SetPrompt(r.display.Prompt(r.prompt, r.session.Modes()))

		line, err := rl.Readline()
		if err == readline.ErrInterrupt {
			// Ctrl+C clears the pending entry, not the session
			r.session.ClearInput()
			continue
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return err
		}

		r.handleLine(line)
	}

	return nil
}

// runPiped reads lines from stdin without prompts or history
func (r *REPL) runPiped() error {
	scanner := bufio.NewScanner(os.Stdin)
	for r.running && scanner.Scan() {
		r.handleLine(scanner.Text())
	}
	return scanner.Err()
}

// handleLine dispatches one input line: ':' commands go to the registry,
// everything else goes to the engine.
func (r *REPL) handleLine(line string) {
	trimmed := strings.TrimSpace(line)

	if strings.HasPrefix(trimmed, ":") {
		r.dispatchCommand(trimmed)
		return
	}

	if trimmed == "" && !r.hasRPNEnterSemantics() {
		return
	}

	outcome, err := r.session.SubmitLine(line)
	if err != nil {
		r.display.ShowError(err)
		return
	}

	r.display.ShowResult(outcome)
	if r.verbose {
		r.showStack()
	}
}

// hasRPNEnterSemantics reports whether an empty line should reach the
// engine as an Enter keystroke (duplicate-top in RPN mode)
func (r *REPL) hasRPNEnterSemantics() bool {
	return r.session.Modes().Notation == value.NotationRPN
}

// showStack renders the persistent stack, top last
func (r *REPL) showStack() {
	entries := r.session.Stack()
	lines := make([]string, len(entries))
	for i, entry := range entries {
		lines[i] = fmt.Sprintf("%s = %s", entry.Expr, r.session.FormatValue(entry.Result))
	}
	r.display.ShowStack(lines)
}

// showHistory renders the history log, oldest first
func (r *REPL) showHistory() {
	entries := r.session.History()
	lines := make([]string, len(entries))
	for i, entry := range entries {
		lines[i] = fmt.Sprintf("[%s] %s = %s", entry.Notation, entry.Expr, entry.ResultText)
	}
	r.display.ShowHistory(lines)
}
