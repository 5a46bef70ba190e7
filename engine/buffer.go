package engine

import (
	"strings"

	"calcterm/errors"
	"calcterm/lexer"
	"calcterm/value"
)

// InputBuffer accumulates digits for RPN entry. It is the two-state machine
// behind keystroke entry: Empty (nothing pending) and Entering (digits
// accumulating, not yet committed to the stack).
type InputBuffer struct {
	text     strings.Builder
	entering bool
}

// NewInputBuffer creates an empty buffer
func NewInputBuffer() *InputBuffer {
	return &InputBuffer{}
}

// Append adds a keystroke to the buffer and moves to the Entering state
func (b *InputBuffer) Append(ch rune) {
	b.text.WriteRune(ch)
	b.entering = true
}

// Backspace removes the last pending rune; an emptied buffer returns to Empty
func (b *InputBuffer) Backspace() {
	content := b.text.String()
	if content == "" {
		return
	}
	runes := []rune(content)
	b.text.Reset()
	b.text.WriteString(string(runes[:len(runes)-1]))
	if b.text.Len() == 0 {
		b.entering = false
	}
}

// Content returns the pending text
func (b *InputBuffer) Content() string {
	return b.text.String()
}

// IsEntering reports whether digits are pending
func (b *InputBuffer) IsEntering() bool {
	return b.entering
}

// ToggleSign flips a leading minus on the pending entry
func (b *InputBuffer) ToggleSign() {
	content := b.text.String()
	b.text.Reset()
	if strings.HasPrefix(content, "-") {
		b.text.WriteString(strings.TrimPrefix(content, "-"))
	} else {
		b.text.WriteString("-" + content)
	}
	b.entering = b.text.Len() > 0
}

// Clear empties the buffer and returns to the Empty state
func (b *InputBuffer) Clear() {
	b.text.Reset()
	b.entering = false
}

// Commit parses the pending text under the base mode and clears the buffer.
// On a parse failure the buffer is retained so the entry can be corrected.
func (b *InputBuffer) Commit(base value.BaseMode) (value.Value, error) {
	raw := strings.TrimSpace(b.text.String())

	tokens, err := lexer.Tokenize(raw, base)
	if err != nil {
		return value.Value{}, err
	}

	// A committed buffer must be a single literal, optionally negated
	negated := false
	if len(tokens) == 2 && tokens[0].Type == lexer.TokenNegate {
		negated = true
		tokens = tokens[1:]
	}
	if len(tokens) != 1 || tokens[0].Type != lexer.TokenNumber {
		return value.Value{}, calcInvalidEntry(raw)
	}

	v, err := ParseNumber(tokens[0], base)
	if err != nil {
		return value.Value{}, err
	}
	if negated {
		v = v.Negate()
	}

	b.Clear()
	return v, nil
}

func calcInvalidEntry(raw string) error {
	return errors.Newf(errors.KindInvalidNumber, "'%s' is not a single number", raw)
}
