package repl

import (
	"strings"
)

// CommandCompleter provides readline autocompletion for ':' commands and
// their mode arguments. It implements readline.AutoCompleter.
type CommandCompleter struct {
	repl *REPL
}

// NewCommandCompleter creates a completer bound to the REPL's registry
func NewCommandCompleter(r *REPL) *CommandCompleter {
	return &CommandCompleter{repl: r}
}

var modeArguments = []string{"angle", "base", "complex", "notation"}

// Do implements the readline.AutoCompleter interface. It completes command
// names at the start of a line and mode names after ':mode'.
func (c *CommandCompleter) Do(line []rune, pos int) ([][]rune, int) {
	text := string(line[:pos])

	// Complete ':mode <arg>'
	if strings.HasPrefix(text, ":mode ") {
		prefix := strings.TrimPrefix(text, ":mode ")
		return suggest(modeArguments, prefix)
	}

	// Complete command names
	if strings.HasPrefix(text, ":") {
		return suggest(c.repl.CommandNames(), text)
	}

	return nil, 0
}

// suggest returns the candidate suffixes for every name matching prefix
func suggest(candidates []string, prefix string) ([][]rune, int) {
	var suggestions [][]rune
	for _, candidate := range candidates {
		if strings.HasPrefix(candidate, prefix) && candidate != prefix {
			suggestions = append(suggestions, []rune(candidate[len(prefix):]))
		}
	}
	return suggestions, len(prefix)
}
