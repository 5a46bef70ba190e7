package parser

import (
	"calcterm/errors"
	"calcterm/lexer"
	"calcterm/operator"
)

// ToPostfix converts an infix token sequence into postfix order using the
// shunting-yard algorithm. It only reorders tokens; evaluation happens in
// the engine. Parentheses are consumed here and never reach the output.
func ToPostfix(tokens []lexer.Token) ([]lexer.Token, error) {
	var output []lexer.Token
	var operators []lexer.Token

	for _, token := range tokens {
		switch {
		case token.Type == lexer.TokenNumber:
			output = append(output, token)

		case token.IsOperator():
			spec, err := operator.Lookup(token.Symbol())
			if err != nil {
				return nil, err
			}

			for len(operators) > 0 {
				top := operators[len(operators)-1]
				if !top.IsOperator() {
					break
				}
				topSpec, err := operator.Lookup(top.Symbol())
				if err != nil {
					return nil, err
				}

				// Pop while the stacked operator binds tighter, or equally
				// tight with a left-associative incoming operator
				if topSpec.Precedence > spec.Precedence ||
					(topSpec.Precedence == spec.Precedence && !spec.RightAssoc) {
					output = append(output, top)
					operators = operators[:len(operators)-1]
				} else {
					break
				}
			}
			operators = append(operators, token)

		case token.Type == lexer.TokenLeftParen:
			operators = append(operators, token)

		case token.Type == lexer.TokenRightParen:
			matched := false
			for len(operators) > 0 {
				top := operators[len(operators)-1]
				operators = operators[:len(operators)-1]
				if top.Type == lexer.TokenLeftParen {
					matched = true
					break
				}
				output = append(output, top)
			}
			if !matched {
				return nil, errors.NewMismatchedParens("unexpected ')'").WithColumn(token.Column)
			}

		default:
			return nil, errors.Newf(errors.KindInvalidNumber,
				"unexpected token %s", token.Value).WithColumn(token.Column)
		}
	}

	// Drain remaining operators; a surviving '(' means a ')' never came
	for len(operators) > 0 {
		top := operators[len(operators)-1]
		operators = operators[:len(operators)-1]
		if top.Type == lexer.TokenLeftParen {
			return nil, errors.NewMismatchedParens("missing ')'").WithColumn(top.Column)
		}
		output = append(output, top)
	}

	return output, nil
}
