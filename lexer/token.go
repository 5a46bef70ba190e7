package lexer

import "fmt"

type TokenType int

const (
	TokenNumber     TokenType = iota // digit/point run, optionally i-suffixed
	TokenPlus                        // +
	TokenMinus                       // - (binary)
	TokenMultiply                    // *
	TokenDivide                      // /
	TokenPower                       // ^
	TokenNegate                      // - (unary)
	TokenLeftParen                   // (
	TokenRightParen                  // )
)

func (t TokenType) String() string {
	switch t {
	case TokenNumber:
		return "NUMBER"
	case TokenPlus:
		return "PLUS"
	case TokenMinus:
		return "MINUS"
	case TokenMultiply:
		return "MULTIPLY"
	case TokenDivide:
		return "DIVIDE"
	case TokenPower:
		return "POWER"
	case TokenNegate:
		return "NEGATE"
	case TokenLeftParen:
		return "LEFT_PAREN"
	case TokenRightParen:
		return "RIGHT_PAREN"
	default:
		return "UNKNOWN"
	}
}

// Token is an immutable unit of calculator input. Tokens carry the raw text
// and the 1-based input column for error reporting.
type Token struct {
	Type      TokenType
	Value     string
	Column    int
	Imaginary bool // number literal carried an 'i' suffix
}

func (t Token) String() string {
	return fmt.Sprintf("Token{Type: %s, Value: %q, Col: %d}", t.Type, t.Value, t.Column)
}

// IsOperator reports whether the token is an arithmetic operator
func (t Token) IsOperator() bool {
	switch t.Type {
	case TokenPlus, TokenMinus, TokenMultiply, TokenDivide, TokenPower, TokenNegate:
		return true
	default:
		return false
	}
}

// Symbol returns the operator-table key for an operator token. The unary
// minus shares the '-' glyph but dispatches to its own table row.
func (t Token) Symbol() string {
	if t.Type == TokenNegate {
		return "neg"
	}
	return t.Value
}
