package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"calcterm/errors"
	"calcterm/value"
)

func TestTokenizeSimpleExpression(t *testing.T) {
	tokens, err := Tokenize("2 + 3 * 4", value.BaseDecimal)
	require.NoError(t, err)
	require.Len(t, tokens, 5)

	assert.Equal(t, TokenNumber, tokens[0].Type)
	assert.Equal(t, "2", tokens[0].Value)
	assert.Equal(t, TokenPlus, tokens[1].Type)
	assert.Equal(t, TokenNumber, tokens[2].Type)
	assert.Equal(t, TokenMultiply, tokens[3].Type)
	assert.Equal(t, TokenNumber, tokens[4].Type)
	assert.Equal(t, "4", tokens[4].Value)
}

func TestTokenizeWhitespaceIsSeparatorOnly(t *testing.T) {
	compact, err := Tokenize("1+2", value.BaseDecimal)
	require.NoError(t, err)
	spaced, err := Tokenize("  1 +\t2  ", value.BaseDecimal)
	require.NoError(t, err)

	require.Len(t, spaced, len(compact))
	for i := range compact {
		assert.Equal(t, compact[i].Type, spaced[i].Type)
		assert.Equal(t, compact[i].Value, spaced[i].Value)
	}
}

func TestTokenizeParentheses(t *testing.T) {
	tokens, err := Tokenize("(2 + 3) * 4", value.BaseDecimal)
	require.NoError(t, err)
	require.Len(t, tokens, 7)

	assert.Equal(t, TokenLeftParen, tokens[0].Type)
	assert.Equal(t, TokenRightParen, tokens[4].Type)
}

func TestTokenizeDecimalPoint(t *testing.T) {
	tokens, err := Tokenize("3.14", value.BaseDecimal)
	require.NoError(t, err)
	require.Len(t, tokens, 1)
	assert.Equal(t, "3.14", tokens[0].Value)
}

func TestTokenizeDoublePointFails(t *testing.T) {
	_, err := Tokenize("3.1.4", value.BaseDecimal)
	require.Error(t, err)
	assert.True(t, errors.IsKind(err, errors.KindInvalidNumber))
}

func TestTokenizeUnaryMinus(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []TokenType
	}{
		{"expression start", "-5", []TokenType{TokenNegate, TokenNumber}},
		{"after operator", "2 * -3", []TokenType{TokenNumber, TokenMultiply, TokenNegate, TokenNumber}},
		{"after left paren", "(-2)", []TokenType{TokenLeftParen, TokenNegate, TokenNumber, TokenRightParen}},
		{"binary after number", "2-3", []TokenType{TokenNumber, TokenMinus, TokenNumber}},
		{"binary after right paren", "(2)-3", []TokenType{TokenLeftParen, TokenNumber, TokenRightParen, TokenMinus, TokenNumber}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens, err := Tokenize(tt.input, value.BaseDecimal)
			require.NoError(t, err)
			require.Len(t, tokens, len(tt.want))
			for i, wantType := range tt.want {
				assert.Equal(t, wantType, tokens[i].Type, "token %d", i)
			}
		})
	}
}

func TestTokenizeHexDigits(t *testing.T) {
	tokens, err := Tokenize("aF + 10", value.BaseHexadecimal)
	require.NoError(t, err)
	require.Len(t, tokens, 3)
	assert.Equal(t, "aF", tokens[0].Value)
	assert.Equal(t, "10", tokens[2].Value)
}

func TestTokenizeHexRejectsPoint(t *testing.T) {
	_, err := Tokenize("A.F", value.BaseHexadecimal)
	require.Error(t, err)
	assert.True(t, errors.IsKind(err, errors.KindInvalidNumber))
}

func TestTokenizeRadixPrefixes(t *testing.T) {
	tokens, err := Tokenize("0xFF", value.BaseHexadecimal)
	require.NoError(t, err)
	require.Len(t, tokens, 1)
	assert.Equal(t, "FF", tokens[0].Value)

	tokens, err = Tokenize("0b1010", value.BaseBinary)
	require.NoError(t, err)
	require.Len(t, tokens, 1)
	assert.Equal(t, "1010", tokens[0].Value)

	tokens, err = Tokenize("-0x1A + 0X2", value.BaseHexadecimal)
	require.NoError(t, err)
	require.Len(t, tokens, 4)
	assert.Equal(t, TokenNegate, tokens[0].Type)
	assert.Equal(t, "1A", tokens[1].Value)
	assert.Equal(t, "2", tokens[3].Value)
}

func TestTokenizeBarePrefixFails(t *testing.T) {
	_, err := Tokenize("0x", value.BaseHexadecimal)
	require.Error(t, err)
	assert.True(t, errors.IsKind(err, errors.KindInvalidNumber))

	_, err = Tokenize("0b", value.BaseBinary)
	require.Error(t, err)
	assert.True(t, errors.IsKind(err, errors.KindInvalidNumber))
}

func TestTokenizeBinaryRejectsWiderDigits(t *testing.T) {
	_, err := Tokenize("19", value.BaseBinary)
	require.Error(t, err)
	assert.True(t, errors.IsKind(err, errors.KindInvalidNumber))
}

func TestTokenizeHexLettersInvalidInDecimal(t *testing.T) {
	_, err := Tokenize("2a", value.BaseDecimal)
	require.Error(t, err)
	assert.True(t, errors.IsKind(err, errors.KindInvalidNumber))
}

func TestTokenizeImaginarySuffix(t *testing.T) {
	tokens, err := Tokenize("3i + 2", value.BaseDecimal)
	require.NoError(t, err)
	require.Len(t, tokens, 3)
	assert.True(t, tokens[0].Imaginary)
	assert.Equal(t, "3", tokens[0].Value)
	assert.False(t, tokens[2].Imaginary)
}

func TestTokenizeUnknownRune(t *testing.T) {
	_, err := Tokenize("2 % 3", value.BaseDecimal)
	require.Error(t, err)

	calcErr, ok := errors.AsCalcError(err)
	require.True(t, ok)
	assert.Equal(t, errors.KindInvalidNumber, calcErr.Kind)
	assert.Equal(t, 3, calcErr.Column)
}

func TestTokenizeIsDeterministic(t *testing.T) {
	input := "(1 + -2.5) ^ 3"
	first, err := Tokenize(input, value.BaseDecimal)
	require.NoError(t, err)
	second, err := Tokenize(input, value.BaseDecimal)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestOperatorSymbolForNegate(t *testing.T) {
	tokens, err := Tokenize("-1", value.BaseDecimal)
	require.NoError(t, err)
	assert.Equal(t, "neg", tokens[0].Symbol())

	tokens, err = Tokenize("1-1", value.BaseDecimal)
	require.NoError(t, err)
	assert.Equal(t, "-", tokens[1].Symbol())
}
