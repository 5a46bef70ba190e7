package repl

import (
	"fmt"
	"sort"
	"strings"
)

// CommandHandler represents a function that handles a specific command
type CommandHandler func(args []string) (interface{}, error)

// registerCommands installs the ':' command registry
func (r *REPL) registerCommands() {
	r.commands = map[string]CommandHandler{
		":help":     r.handleHelp,
		":quit":     r.handleQuit,
		":exit":     r.handleQuit,
		":mode":     r.handleMode,
		":modes":    r.handleModes,
		":stack":    r.handleStack,
		":history":  r.handleHistory,
		":drop":     r.handleDrop,
		":swap":     r.handleSwap,
		":dup":      r.handleDup,
		":neg":      r.handleNeg,
		":clear":    r.handleClear,
		":clearall": r.handleClearAll,
		":abbrev":   r.handleAbbrev,
		":cache":    r.handleCache,
	}
}

// CommandNames returns the registered command names, sorted
func (r *REPL) CommandNames() []string {
	names := make([]string, 0, len(r.commands))
	for name := range r.commands {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// dispatchCommand parses and executes one ':' command line
func (r *REPL) dispatchCommand(line string) {
	fields := strings.Fields(line)
	name := fields[0]
	args := fields[1:]

	handler, ok := r.commands[name]
	if !ok {
		r.display.ShowError(fmt.Errorf("unknown command %s (try :help)", name))
		return
	}

	result, err := handler(args)
	if err != nil {
		r.display.ShowError(err)
		return
	}
	if msg, ok := result.(string); ok && msg != "" {
		r.display.ShowSuccess(msg)
	}
}

func (r *REPL) handleHelp(args []string) (interface{}, error) {
	r.display.ShowHelp()
	return nil, nil
}

func (r *REPL) handleQuit(args []string) (interface{}, error) {
	r.running = false
	return nil, nil
}

func (r *REPL) handleMode(args []string) (interface{}, error) {
	if len(args) != 1 {
		return nil, fmt.Errorf("usage: :mode angle|base|complex|notation")
	}
	setting, err := r.session.ToggleMode(args[0])
	if err != nil {
		return nil, err
	}
	r.display.ShowModeLine(r.session.Modes())
	return fmt.Sprintf("%s is now %s", args[0], setting), nil
}

func (r *REPL) handleModes(args []string) (interface{}, error) {
	r.display.ShowModeLine(r.session.Modes())
	return nil, nil
}

func (r *REPL) handleStack(args []string) (interface{}, error) {
	r.showStack()
	return nil, nil
}

func (r *REPL) handleHistory(args []string) (interface{}, error) {
	r.showHistory()
	return nil, nil
}

func (r *REPL) handleDrop(args []string) (interface{}, error) {
	if err := r.session.Drop(); err != nil {
		return nil, err
	}
	return "dropped", nil
}

func (r *REPL) handleSwap(args []string) (interface{}, error) {
	if err := r.session.Swap(); err != nil {
		return nil, err
	}
	return "swapped", nil
}

func (r *REPL) handleDup(args []string) (interface{}, error) {
	if err := r.session.Dup(); err != nil {
		return nil, err
	}
	return "duplicated", nil
}

func (r *REPL) handleNeg(args []string) (interface{}, error) {
	if err := r.session.NegateTop(); err != nil {
		return nil, err
	}
	if top, ok := r.session.Top(); ok {
		return r.session.FormatValue(top.Result), nil
	}
	return r.session.PendingInput(), nil
}

func (r *REPL) handleClear(args []string) (interface{}, error) {
	r.session.ClearInput()
	return "input cleared", nil
}

func (r *REPL) handleClearAll(args []string) (interface{}, error) {
	r.session.ClearAll()
	return "stack, history and input cleared", nil
}

func (r *REPL) handleAbbrev(args []string) (interface{}, error) {
	if r.session.ToggleAbbreviate() {
		return "abbreviation on", nil
	}
	return "abbreviation off", nil
}

func (r *REPL) handleCache(args []string) (interface{}, error) {
	stats := r.session.CacheStats()
	keys := make([]string, 0, len(stats))
	for key := range stats {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		r.display.ShowInfo(fmt.Sprintf("%s: %v", key, stats[key]))
	}
	return nil, nil
}
