package errors

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorFormat(t *testing.T) {
	err := New(KindDivisionByZero, "division by zero")
	assert.Equal(t, "[DIVISION_BY_ZERO] division by zero", err.Error())

	err = NewInvalidNumber("bad digit").WithColumn(5)
	assert.Equal(t, "[INVALID_NUMBER] bad digit at column 5", err.Error())
}

func TestKindMatching(t *testing.T) {
	err := NewStackUnderflow(2, 1)
	assert.True(t, IsKind(err, KindStackUnderflow))
	assert.False(t, IsKind(err, KindDivisionByZero))
	assert.False(t, IsKind(fmt.Errorf("plain"), KindStackUnderflow))
}

func TestErrorsIsMatchesOnKind(t *testing.T) {
	err := NewUnknownOperator("%")
	assert.True(t, stderrors.Is(err, New(KindUnknownOperator, "")))
	assert.False(t, stderrors.Is(err, New(KindInvalidNumber, "")))
}

func TestWrapPreservesCause(t *testing.T) {
	cause := fmt.Errorf("strconv failure")
	err := NewInvalidNumber("bad literal").Wrap(cause)

	assert.Equal(t, cause, stderrors.Unwrap(err))
	assert.True(t, stderrors.Is(err, cause))
}

func TestConstructorMessages(t *testing.T) {
	assert.Contains(t, NewUnknownOperator("&").Error(), "'&'")
	assert.Contains(t, NewStackUnderflow(2, 0).Error(), "need 2 operand(s), have 0")
	assert.Contains(t, NewMismatchedParens("missing ')'").Error(), "missing ')'")
}

func TestSeverityDefaultsToError(t *testing.T) {
	calcErr, ok := AsCalcError(NewDivisionByZero())
	require.True(t, ok)
	assert.Equal(t, SeverityError, calcErr.Severity)
}

func TestAsCalcError(t *testing.T) {
	_, ok := AsCalcError(fmt.Errorf("plain"))
	assert.False(t, ok)
	assert.False(t, IsCalcError(fmt.Errorf("plain")))
	assert.True(t, IsCalcError(New(KindInvalidNumber, "x")))
}
