package expr

import "math"

// divTolerance treats near-zero divisors as zero so division never traps.
const divTolerance = 1e-9

// Evaluate walks the tree depth-first, left to right, and computes its
// value. The result is either a float or one of the classified errors; a
// non-finite result (overflow) is returned as-is and left for the caller
// to judge.
func Evaluate(n Node) (float64, error) {
	switch v := n.(type) {
	case *Literal:
		// Parse never produces these; hand-built trees can.
		if math.IsNaN(v.Value) || math.IsInf(v.Value, 0) {
			return 0, ErrNonNumericLiteral
		}
		return v.Value, nil
	case *Unary:
		val, err := Evaluate(v.Operand)
		if err != nil {
			return 0, err
		}
		if v.Op == Sub {
			return -val, nil
		}
		return val, nil
	case *Binary:
		left, err := Evaluate(v.Left)
		if err != nil {
			return 0, err
		}
		right, err := Evaluate(v.Right)
		if err != nil {
			return 0, err
		}
		switch v.Op {
		case Add:
			return left + right, nil
		case Sub:
			return left - right, nil
		case Mul:
			return left * right, nil
		case Div:
			if math.Abs(right) <= divTolerance {
				return 0, ErrDivisionByZero
			}
			return left / right, nil
		}
	}
	return 0, ErrUnsupported
}

// Eval parses and evaluates text in one call.
func Eval(text string) (float64, error) {
	n, err := Parse(text)
	if err != nil {
		return 0, err
	}
	return Evaluate(n)
}
