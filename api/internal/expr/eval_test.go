package expr

import (
	"errors"
	"math"
	"testing"
)

func TestEvaluateDivisionByZero(t *testing.T) {
	cases := []struct {
		name string
		in   string
	}{
		{"literal zero", "5 / 0"},
		{"computed zero", "1 / (2 - 2)"},
		{"near zero", "1 / 0.0000000001"}, // 1e-10, inside the tolerance
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Eval(tc.in)
			if !errors.Is(err, ErrDivisionByZero) {
				t.Fatalf("Eval(%q) = %v, want ErrDivisionByZero", tc.in, err)
			}
		})
	}
}

func TestEvaluateDivisionAboveTolerance(t *testing.T) {
	got, err := Eval("8/(3-8/3)")
	if err != nil {
		t.Fatalf("Eval failed: %v", err)
	}
	if math.Abs(got-24) > 1e-6 {
		t.Fatalf("Eval = %v, want 24", got)
	}
}

func TestEvaluateNonNumericLiteral(t *testing.T) {
	// Not constructible via Parse, but the evaluator checks anyway.
	for _, bad := range []float64{math.NaN(), math.Inf(1)} {
		if _, err := Evaluate(&Literal{Value: bad}); !errors.Is(err, ErrNonNumericLiteral) {
			t.Fatalf("Evaluate(Literal %v) = %v, want ErrNonNumericLiteral", bad, err)
		}
	}
}

func TestEvaluateUnaryChain(t *testing.T) {
	// -( -3 ) built by hand; Parse does not nest signs.
	n := &Unary{Op: Sub, Operand: &Unary{Op: Sub, Operand: &Literal{Value: 3}}}
	got, err := Evaluate(n)
	if err != nil || got != 3 {
		t.Fatalf("Evaluate = %v, %v; want 3, nil", got, err)
	}
}
