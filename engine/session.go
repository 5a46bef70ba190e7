package engine

import (
	"strings"

	"calcterm/errors"
	"calcterm/lexer"
	"calcterm/operator"
	"calcterm/parser"
	"calcterm/value"
)

// StackEntry is one committed value on the persistent stack, paired with
// the expression text that produced it.
type StackEntry struct {
	Expr   string
	Result value.Value
}

// HistoryEntry records one submitted line. Entries are append-only and
// store the result text formatted at commit time, so later mode toggles
// never change what history displays.
type HistoryEntry struct {
	Expr       string
	ResultText string
	Err        error
	Notation   value.NotationMode
}

// EvalOutcome is what a successful submission hands to the UI layer
type EvalOutcome struct {
	Value   value.Value
	Display string
	Entry   HistoryEntry
}

// SessionConfig contains configuration for a calculator session
type SessionConfig struct {
	Modes        value.ModeState
	Abbreviate   bool
	CacheSize    int
	DisableCache bool
}

// Session orchestrates the engine: it owns the persistent stack, the
// history log, the RPN input buffer and the mode state, and dispatches
// submitted input through the tokenizer/parser/evaluator pipeline. It is
// exclusively owned by the calling goroutine; no locking inside.
type Session struct {
	modes     value.ModeState
	abbrev    bool
	stack     []StackEntry
	history   []HistoryEntry
	buffer    *InputBuffer
	cache     *Cache
	evaluator *Evaluator
}

// NewSession creates a session with default modes
func NewSession() *Session {
	return NewSessionWithConfig(SessionConfig{Modes: value.DefaultModes()})
}

// NewSessionWithConfig creates a session with configuration
func NewSessionWithConfig(config SessionConfig) *Session {
	return &Session{
		modes:     config.Modes,
		abbrev:    config.Abbreviate,
		buffer:    NewInputBuffer(),
		cache:     NewCache(!config.DisableCache, config.CacheSize),
		evaluator: NewEvaluator(),
	}
}

// Modes returns the current mode state
func (s *Session) Modes() value.ModeState {
	return s.modes
}

// ToggleMode toggles one of the four modes by name and returns the new
// setting for display. Valid names: angle, base, complex, notation.
func (s *Session) ToggleMode(which string) (string, error) {
	switch strings.ToLower(which) {
	case "angle":
		return s.modes.ToggleAngle().String(), nil
	case "base":
		return s.modes.CycleBase().String(), nil
	case "complex":
		return s.modes.ToggleComplex().String(), nil
	case "notation":
		return s.modes.ToggleNotation().String(), nil
	default:
		return "", errors.Newf(errors.KindUnknownOperator, "unknown mode '%s'", which)
	}
}

// ToggleAbbreviate flips scientific-notation display for large decimals
func (s *Session) ToggleAbbreviate() bool {
	s.abbrev = !s.abbrev
	return s.abbrev
}

// FormatValue renders a value under the current modes
func (s *Session) FormatValue(v value.Value) string {
	return s.formatter().Format(v)
}

func (s *Session) formatter() *value.Formatter {
	f := value.NewFormatter(s.modes)
	f.Abbreviate = s.abbrev
	return f
}

// Stack returns a copy of the persistent stack, top last
func (s *Session) Stack() []StackEntry {
	out := make([]StackEntry, len(s.stack))
	copy(out, s.stack)
	return out
}

// History returns a copy of the history log, oldest first
func (s *Session) History() []HistoryEntry {
	out := make([]HistoryEntry, len(s.history))
	copy(out, s.history)
	return out
}

// Top returns the top stack entry
func (s *Session) Top() (StackEntry, bool) {
	if len(s.stack) == 0 {
		return StackEntry{}, false
	}
	return s.stack[len(s.stack)-1], true
}

// PendingInput returns the uncommitted RPN entry buffer
func (s *Session) PendingInput() string {
	return s.buffer.Content()
}

// CacheStats exposes parse-cache counters for diagnostics
func (s *Session) CacheStats() map[string]interface{} {
	return s.cache.Stats()
}

// ClearInput empties the entry buffer; the stack is untouched
func (s *Session) ClearInput() {
	s.buffer.Clear()
}

// ClearAll empties the buffer, the stack, the history and the parse cache
func (s *Session) ClearAll() {
	s.buffer.Clear()
	s.stack = nil
	s.history = nil
	s.cache.Clear()
}

// SubmitLine dispatches one raw input line under the current notation mode
func (s *Session) SubmitLine(raw string) (EvalOutcome, error) {
	if s.modes.Notation == value.NotationRPN {
		return s.submitRPN(raw)
	}
	return s.submitInfix(raw)
}

// submitInfix runs the tokenize -> postfix -> evaluate pipeline in
// isolation and commits only the final value to the stack and history.
// Errors leave stack and history untouched.
func (s *Session) submitInfix(raw string) (EvalOutcome, error) {
	expr := strings.TrimSpace(raw)
	if expr == "" {
		return s.Enter()
	}

	postfix, ok := s.cache.Get(expr, s.modes.Base)
	if !ok {
		tokens, err := lexer.Tokenize(expr, s.modes.Base)
		if err != nil {
			return EvalOutcome{}, err
		}
		postfix, err = parser.ToPostfix(tokens)
		if err != nil {
			return EvalOutcome{}, err
		}
		s.cache.Put(expr, s.modes.Base, postfix)
	}

	result, err := s.evaluator.EvalPostfix(postfix, s.modes)
	if err != nil {
		return EvalOutcome{}, err
	}

	return s.commit(expr, result), nil
}

// submitRPN feeds each whitespace-separated field of the line through the
// RPN entry machine: numbers push, operator symbols apply against the live
// stack. An empty line is an Enter keystroke. The first error aborts the
// line; fields already committed stay committed.
func (s *Session) submitRPN(raw string) (EvalOutcome, error) {
	fields := strings.Fields(raw)
	if len(fields) == 0 {
		return s.Enter()
	}

	var outcome EvalOutcome
	var err error
	for _, field := range fields {
		if isOperatorField(field) {
			outcome, err = s.ApplyOperator(field)
		} else {
			outcome, err = s.enterNumber(field)
		}
		if err != nil {
			return EvalOutcome{}, err
		}
	}

	entry := HistoryEntry{
		Expr:       strings.Join(fields, " "),
		ResultText: outcome.Display,
		Notation:   s.modes.Notation,
	}
	s.history = append(s.history, entry)
	outcome.Entry = entry
	return outcome, nil
}

// PushRune handles one digit/point keystroke in RPN entry. Characters
// invalid for the active base are rejected without touching the buffer.
func (s *Session) PushRune(ch rune) error {
	if !validEntryRune(ch, s.modes.Base) {
		return errors.Newf(errors.KindInvalidNumber,
			"invalid character '%c' for %s base", ch, s.modes.Base)
	}
	s.buffer.Append(ch)
	return nil
}

// Backspace removes the last pending keystroke
func (s *Session) Backspace() {
	s.buffer.Backspace()
}

// Enter commits the pending buffer as a stack push. With nothing pending
// it duplicates the top of the stack instead.
func (s *Session) Enter() (EvalOutcome, error) {
	if s.buffer.IsEntering() {
		expr := s.buffer.Content()
		v, err := s.buffer.Commit(s.modes.Base)
		if err != nil {
			// Buffer retained for correction
			return EvalOutcome{}, err
		}
		s.stack = append(s.stack, StackEntry{Expr: expr, Result: v})
		return s.outcome(v), nil
	}

	if len(s.stack) == 0 {
		return EvalOutcome{}, errors.NewStackUnderflow(1, 0)
	}
	top := s.stack[len(s.stack)-1]
	s.stack = append(s.stack, top)
	return s.outcome(top.Result), nil
}

// ApplyOperator applies an operator against the persistent stack. A
// pending buffer is committed first; if that commit fails the operator is
// not applied.
func (s *Session) ApplyOperator(symbol string) (EvalOutcome, error) {
	if s.buffer.IsEntering() {
		if _, err := s.Enter(); err != nil {
			return EvalOutcome{}, err
		}
	}

	spec, err := operator.Lookup(symbol)
	if err != nil {
		return EvalOutcome{}, err
	}
	if len(s.stack) < spec.Arity {
		return EvalOutcome{}, errors.NewStackUnderflow(spec.Arity, len(s.stack))
	}

	values := make([]value.Value, len(s.stack))
	for i, entry := range s.stack {
		values[i] = entry.Result
	}
	newValues, err := s.evaluator.Apply(symbol, values, s.modes)
	if err != nil {
		return EvalOutcome{}, err
	}

	result := newValues[len(newValues)-1]
	operands := s.stack[len(s.stack)-spec.Arity:]
	entry := StackEntry{Expr: combineExpr(spec, operands), Result: result}
	s.stack = append(s.stack[:len(s.stack)-spec.Arity], entry)
	return s.outcome(result), nil
}

// enterNumber pushes one numeric field through the keystroke machine
func (s *Session) enterNumber(field string) (EvalOutcome, error) {
	for _, ch := range field {
		if err := s.PushRune(ch); err != nil {
			return EvalOutcome{}, err
		}
	}
	return s.Enter()
}

// Drop removes the top stack entry
func (s *Session) Drop() error {
	if len(s.stack) == 0 {
		return errors.NewStackUnderflow(1, 0)
	}
	s.stack = s.stack[:len(s.stack)-1]
	return nil
}

// Swap exchanges the two top stack entries
func (s *Session) Swap() error {
	if len(s.stack) < 2 {
		return errors.NewStackUnderflow(2, len(s.stack))
	}
	n := len(s.stack)
	s.stack[n-1], s.stack[n-2] = s.stack[n-2], s.stack[n-1]
	return nil
}

// Dup duplicates the top stack entry
func (s *Session) Dup() error {
	if len(s.stack) == 0 {
		return errors.NewStackUnderflow(1, 0)
	}
	s.stack = append(s.stack, s.stack[len(s.stack)-1])
	return nil
}

// NegateTop negates the top stack entry, or the pending buffer when the
// stack is still being entered
func (s *Session) NegateTop() error {
	if len(s.stack) > 0 {
		top := &s.stack[len(s.stack)-1]
		top.Result = top.Result.Negate()
		top.Expr = "(-" + top.Expr + ")"
		return nil
	}
	if s.buffer.IsEntering() {
		s.buffer.ToggleSign()
		return nil
	}
	return errors.NewStackUnderflow(1, 0)
}

// commit pushes an evaluated infix result and appends the history entry
func (s *Session) commit(expr string, result value.Value) EvalOutcome {
	display := s.FormatValue(result)
	s.stack = append(s.stack, StackEntry{Expr: expr, Result: result})
	entry := HistoryEntry{
		Expr:       expr,
		ResultText: display,
		Notation:   s.modes.Notation,
	}
	s.history = append(s.history, entry)
	return EvalOutcome{Value: result, Display: display, Entry: entry}
}

func (s *Session) outcome(v value.Value) EvalOutcome {
	return EvalOutcome{Value: v, Display: s.FormatValue(v)}
}

// combineExpr builds the expression text for an RPN operator application
func combineExpr(spec *operator.Spec, operands []StackEntry) string {
	if spec.Arity == 1 {
		return "(-" + operands[0].Expr + ")"
	}
	return "(" + operands[0].Expr + " " + spec.Symbol + " " + operands[1].Expr + ")"
}

// isOperatorField reports whether an RPN input field names an operator
func isOperatorField(field string) bool {
	switch field {
	case "+", "-", "*", "/", "^", "neg":
		return true
	default:
		return false
	}
}

// validEntryRune mirrors base-mode digit validity for keystroke entry. The
// radix prefix runes are allowed so displayed text can be keyed back in;
// misplaced ones are caught when the buffer commits.
func validEntryRune(ch rune, base value.BaseMode) bool {
	switch base {
	case value.BaseBinary:
		return ch == '0' || ch == '1' || ch == 'b' || ch == 'B'
	case value.BaseHexadecimal:
		return (ch >= '0' && ch <= '9') || (ch >= 'a' && ch <= 'f') || (ch >= 'A' && ch <= 'F') ||
			ch == 'x' || ch == 'X'
	default:
		return (ch >= '0' && ch <= '9') || ch == '.' || ch == 'i'
	}
}
