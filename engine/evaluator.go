package engine

import (
	"math"
	"strconv"

	"calcterm/errors"
	"calcterm/lexer"
	"calcterm/operator"
	"calcterm/value"
)

// Evaluator executes postfix token sequences. It is stateless; the working
// stack lives on the call frame, so a failed evaluation can never corrupt
// session state.
type Evaluator struct{}

// NewEvaluator creates an evaluator
func NewEvaluator() *Evaluator {
	return &Evaluator{}
}

// EvalPostfix walks a postfix sequence left to right against a fresh local
// stack and returns the single resulting value.
func (e *Evaluator) EvalPostfix(postfix []lexer.Token, modes value.ModeState) (value.Value, error) {
	var stack []value.Value

	for _, token := range postfix {
		switch {
		case token.Type == lexer.TokenNumber:
			v, err := ParseNumber(token, modes.Base)
			if err != nil {
				return value.Value{}, err
			}
			stack = append(stack, v)

		case token.IsOperator():
			spec, err := operator.Lookup(token.Symbol())
			if err != nil {
				return value.Value{}, err
			}

			result, err := e.apply(spec, stack, modes)
			if err != nil {
				return value.Value{}, err
			}
			stack = append(stack[:len(stack)-spec.Arity], result)

		default:
			return value.Value{}, errors.Newf(errors.KindInvalidNumber,
				"unexpected token %s in postfix sequence", token.Value).WithColumn(token.Column)
		}
	}

	if len(stack) != 1 {
		return value.Value{}, errors.New(errors.KindInvalidNumber, "malformed expression")
	}
	return stack[0], nil
}

// apply runs a spec against the top of the stack without popping; callers
// truncate on success. Operand order: second-popped is the left operand.
func (e *Evaluator) apply(spec *operator.Spec, stack []value.Value, modes value.ModeState) (value.Value, error) {
	if len(stack) < spec.Arity {
		return value.Value{}, errors.NewStackUnderflow(spec.Arity, len(stack))
	}

	operands := make([]value.Value, spec.Arity)
	copy(operands, stack[len(stack)-spec.Arity:])

	if spec.AngleSensitive && modes.Angle == value.AngleDegrees {
		for i, op := range operands {
			operands[i] = degToRad(op)
		}
	}

	result, err := spec.Apply(operands)
	if err != nil {
		return value.Value{}, err
	}

	if spec.AngleSensitive && modes.Angle == value.AngleDegrees {
		result = radToDeg(result)
	}
	return result, nil
}

// Apply executes one operator against an external value stack, as RPN mode
// does. On success the consumed operands are replaced by the result; on
// error the stack is returned unchanged.
func (e *Evaluator) Apply(symbol string, stack []value.Value, modes value.ModeState) ([]value.Value, error) {
	spec, err := operator.Lookup(symbol)
	if err != nil {
		return stack, err
	}
	result, err := e.apply(spec, stack, modes)
	if err != nil {
		return stack, err
	}
	return append(stack[:len(stack)-spec.Arity], result), nil
}

// ParseNumber interprets a number token under the base mode. Hex and binary
// literals are integral; decimal literals may carry a fraction and an 'i'
// suffix for imaginary entry.
func ParseNumber(token lexer.Token, base value.BaseMode) (value.Value, error) {
	switch base {
	case value.BaseHexadecimal, value.BaseBinary:
		n, err := strconv.ParseInt(token.Value, base.Radix(), 64)
		if err != nil {
			return value.Value{}, errors.Newf(errors.KindInvalidNumber,
				"'%s' is not a valid %s number", token.Value, base).WithColumn(token.Column).Wrap(err)
		}
		return value.Real(float64(n)), nil

	default:
		f, err := strconv.ParseFloat(token.Value, 64)
		if err != nil {
			return value.Value{}, errors.Newf(errors.KindInvalidNumber,
				"'%s' is not a valid number", token.Value).WithColumn(token.Column).Wrap(err)
		}
		if token.Imaginary {
			return value.Complex(0, f), nil
		}
		return value.Real(f), nil
	}
}

func degToRad(v value.Value) value.Value {
	factor := math.Pi / 180
	if v.IsComplex() {
		return value.Complex(v.Re()*factor, v.Im()*factor)
	}
	return value.Real(v.Re() * factor)
}

func radToDeg(v value.Value) value.Value {
	factor := 180 / math.Pi
	if v.IsComplex() {
		return value.Complex(v.Re()*factor, v.Im()*factor)
	}
	return value.Real(v.Re() * factor)
}
