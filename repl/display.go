package repl

import (
	"fmt"

	"calcterm/engine"
	"calcterm/errors"
	"calcterm/value"
)

// DisplayManager manages visual indicators and formatting for the REPL
type DisplayManager struct {
	useColors bool
	verbose   bool
}

// NewDisplayManager creates a new display manager
func NewDisplayManager(useColors, verbose bool) *DisplayManager {
	return &DisplayManager{
		useColors: useColors,
		verbose:   verbose,
	}
}

// ANSI color codes keyed by role
var colors = map[string]string{
	"primary": "\033[36m", // Cyan
	"muted":   "\033[90m", // Dark gray
	"success": "\033[32m", // Green
	"error":   "\033[31m", // Red
	"warning": "\033[33m", // Yellow
	"info":    "\033[34m", // Blue
	"reset":   "\033[0m",
}

// paint wraps text in a color role when colors are enabled
func (dm *DisplayManager) paint(text, role string) string {
	if !dm.useColors {
		return text
	}
	color, ok := colors[role]
	if !ok {
		color = colors["primary"]
	}
	return color + text + colors["reset"]
}

// Prompt renders the line prompt prefixed with the notation mode,
// e.g. "[RPN] > "
func (dm *DisplayManager) Prompt(base string, modes value.ModeState) string {
	return dm.paint(fmt.Sprintf("[%s] %s", modes.Notation, base), "primary")
}

// ShowWelcome displays the welcome message
func (dm *DisplayManager) ShowWelcome() {
	fmt.Printf(`%s
Type an expression and press Enter to evaluate it.
  infix:  (2 + 3) * 4
  rpn:    5 3 +          (after :mode notation)

Commands start with ':' — try :help for the full list.

`, dm.paint("calcterm - interactive expression calculator", "success"))
}

// ShowModeLine displays the current mode combination
func (dm *DisplayManager) ShowModeLine(modes value.ModeState) {
	fmt.Println(dm.paint(modes.StatusLine(), "muted"))
}

// ShowResult displays the outcome of a successful evaluation
func (dm *DisplayManager) ShowResult(outcome engine.EvalOutcome) {
	fmt.Println(outcome.Display)
}

// ShowError displays an engine error as a status message
func (dm *DisplayManager) ShowError(err error) {
	if calcErr, ok := errors.AsCalcError(err); ok {
		fmt.Printf("%s %s\n", dm.paint("Error:", "error"), calcErr.Error())
		return
	}
	fmt.Printf("%s %v\n", dm.paint("Error:", "error"), err)
}

// ShowInfo displays an informational message
func (dm *DisplayManager) ShowInfo(message string) {
	fmt.Println(dm.paint(message, "info"))
}

// ShowSuccess displays a success message
func (dm *DisplayManager) ShowSuccess(message string) {
	fmt.Printf("%s %s\n", dm.paint("✓", "success"), message)
}

// ShowStack displays the persistent stack, top last
func (dm *DisplayManager) ShowStack(lines []string) {
	if len(lines) == 0 {
		fmt.Println(dm.paint("stack is empty", "muted"))
		return
	}
	fmt.Println(dm.paint("stack (top last):", "primary"))
	for i, line := range lines {
		fmt.Printf("%s %s\n", dm.paint(fmt.Sprintf("%3d:", i+1), "muted"), line)
	}
}

// ShowHistory displays the history log, oldest first
func (dm *DisplayManager) ShowHistory(lines []string) {
	if len(lines) == 0 {
		fmt.Println(dm.paint("no history", "muted"))
		return
	}
	fmt.Println(dm.paint("history:", "primary"))
	for i, line := range lines {
		fmt.Printf("%s %s\n", dm.paint(fmt.Sprintf("%3d:", i+1), "muted"), line)
	}
}

// ShowHelp displays command help
func (dm *DisplayManager) ShowHelp() {
	fmt.Printf(`%s
  :help            show this help
  :quit            exit the calculator
  :mode <which>    toggle a mode: angle, base, complex, notation
  :modes           show the current mode combination
  :stack           show the value stack (top last)
  :history         show the evaluation history
  :drop            remove the top stack value
  :swap            exchange the two top stack values
  :dup             duplicate the top stack value
  :neg             negate the top stack value (or the pending entry)
  :clear           clear the pending entry
  :clearall        clear entry, stack and history
  :abbrev          toggle scientific notation for large decimals
  :cache           show parse cache statistics

%s
  angle:    RAD / DEG           (polar phase display, trig extension point)
  base:     DEC -> HEX -> BIN   (literal entry and integer display)
  complex:  REC / POL           (a + bi vs r ∠ θ)
  notation: INFIX / RPN         (expressions vs stack keystrokes)
`, dm.paint("Commands:", "primary"), dm.paint("Modes:", "primary"))
}

// SetColors enables or disables color output
func (dm *DisplayManager) SetColors(enabled bool) {
	dm.useColors = enabled
}

// IsColorEnabled returns whether color output is enabled
func (dm *DisplayManager) IsColorEnabled() bool {
	return dm.useColors
}
