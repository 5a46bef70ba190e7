package errors

import (
	"fmt"
	"strings"
)

// ErrorKind classifies a calculator error. Every failure the engine can
// produce maps to exactly one kind.
type ErrorKind string

const (
	KindInvalidNumber    ErrorKind = "INVALID_NUMBER"
	KindUnknownOperator  ErrorKind = "UNKNOWN_OPERATOR"
	KindMismatchedParens ErrorKind = "MISMATCHED_PARENS"
	KindDivisionByZero   ErrorKind = "DIVISION_BY_ZERO"
	KindStackUnderflow   ErrorKind = "STACK_UNDERFLOW"
)

// ErrorSeverity represents the severity level of an error
type ErrorSeverity string

const (
	SeverityInfo    ErrorSeverity = "INFO"
	SeverityWarning ErrorSeverity = "WARNING"
	SeverityError   ErrorSeverity = "ERROR"
)

// CalcError represents a structured calculator error with detailed information
type CalcError struct {
	Kind     ErrorKind     `json:"kind"`
	Message  string        `json:"message"`
	Column   int           `json:"column,omitempty"`
	Severity ErrorSeverity `json:"severity"`
	Cause    error         `json:"-"`
}

// Error implements the error interface
func (e *CalcError) Error() string {
	var builder strings.Builder

	// Format: [KIND] message
	builder.WriteString(fmt.Sprintf("[%s] %s", e.Kind, e.Message))

	if e.Column > 0 {
		builder.WriteString(fmt.Sprintf(" at column %d", e.Column))
	}

	return builder.String()
}

// Unwrap returns the underlying error
func (e *CalcError) Unwrap() error {
	return e.Cause
}

// Is checks if the error matches the target
func (e *CalcError) Is(target error) bool {
	if other, ok := target.(*CalcError); ok {
		return e.Kind == other.Kind
	}
	return false
}

// WithColumn sets the input column for the error
func (e *CalcError) WithColumn(col int) *CalcError {
	e.Column = col
	return e
}

// Wrap wraps another error as the cause
func (e *CalcError) Wrap(err error) *CalcError {
	e.Cause = err
	return e
}

// New creates a new calculator error of the given kind
func New(kind ErrorKind, message string) *CalcError {
	return &CalcError{
		Kind:     kind,
		Message:  message,
		Severity: SeverityError,
	}
}

// Newf creates a new calculator error with a formatted message
func Newf(kind ErrorKind, format string, args ...interface{}) *CalcError {
	return New(kind, fmt.Sprintf(format, args...))
}

// NewInvalidNumber creates an error for a literal that fails base-specific rules
func NewInvalidNumber(message string) *CalcError {
	return New(KindInvalidNumber, message)
}

// NewUnknownOperator creates an error for a symbol missing from the operator table
func NewUnknownOperator(symbol string) *CalcError {
	return Newf(KindUnknownOperator, "unknown operator '%s'", symbol)
}

// NewMismatchedParens creates an error for unbalanced parentheses
func NewMismatchedParens(message string) *CalcError {
	return New(KindMismatchedParens, message)
}

// NewDivisionByZero creates an error for real or complex division by zero
func NewDivisionByZero() *CalcError {
	return New(KindDivisionByZero, "division by zero")
}

// NewStackUnderflow creates an error for an operator applied with too few operands
func NewStackUnderflow(needed, have int) *CalcError {
	return Newf(KindStackUnderflow, "stack underflow: need %d operand(s), have %d", needed, have)
}

// IsCalcError checks if an error is a CalcError
func IsCalcError(err error) bool {
	_, ok := err.(*CalcError)
	return ok
}

// AsCalcError converts an error to CalcError if possible
func AsCalcError(err error) (*CalcError, bool) {
	if calcErr, ok := err.(*CalcError); ok {
		return calcErr, true
	}
	return nil, false
}

// IsKind reports whether err is a CalcError of the given kind
func IsKind(err error, kind ErrorKind) bool {
	if calcErr, ok := err.(*CalcError); ok {
		return calcErr.Kind == kind
	}
	return false
}
