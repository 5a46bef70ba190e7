package lexer

import (
	"strings"

	"calcterm/errors"
	"calcterm/value"
)

// Tokenize scans an input line into a token slice under the given base
// mode. Scanning is deterministic: the same input and base always produce
// the same tokens. Whitespace separates tokens and is never an error.
func Tokenize(input string, base value.BaseMode) ([]Token, error) {
	var tokens []Token

	runes := []rune(input)
	i := 0
	for i < len(runes) {
		ch := runes[i]
		col := i + 1

		switch {
		case ch == ' ' || ch == '\t':
			i++

		case isDigitStart(ch, base):
			tok, next, err := scanNumber(runes, i, base)
			if err != nil {
				return nil, err
			}
			tokens = append(tokens, tok)
			i = next

		case ch == '+':
			tokens = append(tokens, Token{Type: TokenPlus, Value: "+", Column: col})
			i++

		case ch == '-':
			if unaryPosition(tokens) {
				tokens = append(tokens, Token{Type: TokenNegate, Value: "-", Column: col})
			} else {
				tokens = append(tokens, Token{Type: TokenMinus, Value: "-", Column: col})
			}
			i++

		case ch == '*':
			tokens = append(tokens, Token{Type: TokenMultiply, Value: "*", Column: col})
			i++

		case ch == '/':
			tokens = append(tokens, Token{Type: TokenDivide, Value: "/", Column: col})
			i++

		case ch == '^':
			tokens = append(tokens, Token{Type: TokenPower, Value: "^", Column: col})
			i++

		case ch == '(':
			tokens = append(tokens, Token{Type: TokenLeftParen, Value: "(", Column: col})
			i++

		case ch == ')':
			tokens = append(tokens, Token{Type: TokenRightParen, Value: ")", Column: col})
			i++

		default:
			return nil, errors.Newf(errors.KindInvalidNumber,
				"invalid character '%c' for %s base", ch, base).WithColumn(col)
		}
	}

	return tokens, nil
}

// unaryPosition reports whether a '-' at the current position is a unary
// negate: expression start, after an operator, or after '('.
func unaryPosition(tokens []Token) bool {
	if len(tokens) == 0 {
		return true
	}
	prev := tokens[len(tokens)-1]
	return prev.IsOperator() || prev.Type == TokenLeftParen
}

// scanNumber consumes a contiguous digit/point run starting at position
// start and validates it against the base mode.
func scanNumber(runes []rune, start int, base value.BaseMode) (Token, int, error) {
	col := start + 1
	var raw strings.Builder
	sawPoint := false
	imaginary := false

	i := start

	// Displayed hex/binary text carries a radix prefix; accept it on re-entry
	if base == value.BaseHexadecimal && hasRadixPrefix(runes, i, 'x', 'X') {
		i += 2
	} else if base == value.BaseBinary && hasRadixPrefix(runes, i, 'b', 'B') {
		i += 2
	}

	for i < len(runes) {
		ch := runes[i]

		if ch == '.' {
			if base != value.BaseDecimal {
				return Token{}, 0, errors.Newf(errors.KindInvalidNumber,
					"fractional literals are not valid in %s base", base).WithColumn(i + 1)
			}
			if sawPoint {
				return Token{}, 0, errors.New(errors.KindInvalidNumber,
					"number contains more than one decimal point").WithColumn(i + 1)
			}
			sawPoint = true
			raw.WriteRune(ch)
			i++
			continue
		}

		if isBaseDigit(ch, base) {
			raw.WriteRune(ch)
			i++
			continue
		}

		// 'i' suffix marks an imaginary literal in decimal mode
		if ch == 'i' && base == value.BaseDecimal {
			imaginary = true
			i++
			break
		}

		// A digit of a wider base inside the run is a lexical error, not a
		// token boundary: "19" under binary must fail, not lex as two numbers
		if isBaseDigit(ch, value.BaseHexadecimal) {
			return Token{}, 0, errors.Newf(errors.KindInvalidNumber,
				"digit '%c' is not valid in %s base", ch, base).WithColumn(i + 1)
		}

		break
	}

	text := raw.String()
	if text == "" || text == "." {
		return Token{}, 0, errors.New(errors.KindInvalidNumber, "malformed number").WithColumn(col)
	}

	return Token{Type: TokenNumber, Value: text, Column: col, Imaginary: imaginary}, i, nil
}

// hasRadixPrefix reports whether a "0x"-style radix prefix begins at i
func hasRadixPrefix(runes []rune, i int, lower, upper rune) bool {
	return runes[i] == '0' && i+1 < len(runes) && (runes[i+1] == lower || runes[i+1] == upper)
}

// isDigitStart reports whether ch can begin a number token under the base
func isDigitStart(ch rune, base value.BaseMode) bool {
	if ch == '.' && base == value.BaseDecimal {
		return true
	}
	return isBaseDigit(ch, base)
}

// isBaseDigit reports whether ch is a valid digit for the base mode
func isBaseDigit(ch rune, base value.BaseMode) bool {
	switch base {
	case value.BaseBinary:
		return ch == '0' || ch == '1'
	case value.BaseHexadecimal:
		return (ch >= '0' && ch <= '9') || (ch >= 'a' && ch <= 'f') || (ch >= 'A' && ch <= 'F')
	default:
		return ch >= '0' && ch <= '9'
	}
}
