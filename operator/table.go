package operator

import (
	"math"
	"math/cmplx"

	"calcterm/errors"
	"calcterm/value"
)

// Precedence levels, lowest binds loosest
const (
	PrecedenceAdd   = 1 // +, -
	PrecedenceMul   = 2 // *, /
	PrecedencePower = 3 // ^
	PrecedenceUnary = 4 // unary negate
)

// Spec describes one operator: its parse metadata and its apply function.
// The table holds exactly one Spec per symbol and is never mutated; adding
// an operator means adding a row here.
type Spec struct {
	Symbol     string
	Precedence int
	RightAssoc bool
	Arity      int
	// AngleSensitive marks operators whose arguments or results are angles.
	// The evaluator converts Deg inputs to radians before Apply and radian
	// outputs back to Deg. No operator in the base set carries it; it is
	// the extension point for trigonometric rows.
	AngleSensitive bool
	Apply          func(operands []value.Value) (value.Value, error)
}

var table = map[string]*Spec{
	"+": {
		Symbol:     "+",
		Precedence: PrecedenceAdd,
		Arity:      2,
		Apply: func(operands []value.Value) (value.Value, error) {
			a, b, kind := value.Promote(operands[0], operands[1])
			return value.Tag(a+b, kind), nil
		},
	},
	"-": {
		Symbol:     "-",
		Precedence: PrecedenceAdd,
		Arity:      2,
		Apply: func(operands []value.Value) (value.Value, error) {
			a, b, kind := value.Promote(operands[0], operands[1])
			return value.Tag(a-b, kind), nil
		},
	},
	"*": {
		Symbol:     "*",
		Precedence: PrecedenceMul,
		Arity:      2,
		Apply: func(operands []value.Value) (value.Value, error) {
			a, b, kind := value.Promote(operands[0], operands[1])
			return value.Tag(a*b, kind), nil
		},
	},
	"/": {
		Symbol:     "/",
		Precedence: PrecedenceMul,
		Arity:      2,
		Apply: func(operands []value.Value) (value.Value, error) {
			if operands[1].IsZero() {
				return value.Value{}, errors.NewDivisionByZero()
			}
			a, b, kind := value.Promote(operands[0], operands[1])
			return value.Tag(a/b, kind), nil
		},
	},
	"^": {
		Symbol:     "^",
		Precedence: PrecedencePower,
		RightAssoc: true,
		Arity:      2,
		Apply: func(operands []value.Value) (value.Value, error) {
			base, exp := operands[0], operands[1]
			if !base.IsComplex() && !exp.IsComplex() {
				return realPow(base.Re(), exp.Re())
			}
			a, b, kind := value.Promote(base, exp)
			return value.Tag(cmplx.Pow(a, b), kind), nil
		},
	},
	"neg": {
		Symbol:     "neg",
		Precedence: PrecedenceUnary,
		RightAssoc: true,
		Arity:      1,
		Apply: func(operands []value.Value) (value.Value, error) {
			return operands[0].Negate(), nil
		},
	},
}

// realPow keeps real exponentiation real where it is well defined
func realPow(base, exp float64) (value.Value, error) {
	if base < 0 && exp != math.Trunc(exp) {
		// Fractional power of a negative real lands in the complex plane
		return value.FromComplex(cmplx.Pow(complex(base, 0), complex(exp, 0))), nil
	}
	return value.Real(math.Pow(base, exp)), nil
}

// Lookup returns the spec for a symbol, or ErrUnknownOperator
func Lookup(symbol string) (*Spec, error) {
	spec, ok := table[symbol]
	if !ok {
		return nil, errors.NewUnknownOperator(symbol)
	}
	return spec, nil
}

// Symbols returns all registered operator symbols
func Symbols() []string {
	symbols := make([]string, 0, len(table))
	for symbol := range table {
		symbols = append(symbols, symbol)
	}
	return symbols
}
