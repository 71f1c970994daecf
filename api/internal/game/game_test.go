package game

import (
	"math"
	"strings"
	"testing"
)

func TestCheckValidSolutions(t *testing.T) {
	cases := []struct {
		name    string
		numbers []int
		expr    string
		target  int
		want    float64
	}{
		{"classic 24", []int{3, 8, 3, 8}, "8/(3-8/3)", 24, 24},
		{"sixteen", []int{2, 2, 2, 2}, "(2+2)*(2+2)", 16, 16},
		{"single number", []int{24}, "24", 24, 24},
		{"float close", []int{1, 3, 4, 6}, "6 / (1 - 3/4)", 24, 24},
		{"large numbers", []int{100, 200, 300, 400}, "(400 - 100) / (200 / 300)", 450, 450},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			res := Check(CheckRequest{Numbers: tc.numbers, Target: tc.target, Expression: tc.expr})
			if !res.Valid {
				t.Fatalf("Check not valid; errors=%v", res.Errors)
			}
			if res.Value == nil || math.Abs(*res.Value-tc.want) > 1e-6 {
				t.Fatalf("value = %v, want %v", res.Value, tc.want)
			}
			if len(res.Errors) != 0 {
				t.Fatalf("errors = %v, want empty", res.Errors)
			}
		})
	}
}

func TestCheckSyntaxError(t *testing.T) {
	res := Check(CheckRequest{Numbers: []int{1, 2, 3, 4}, Target: 24, Expression: "1 + * 2"})
	if res.Valid {
		t.Fatal("expected invalid")
	}
	if len(res.Errors) == 0 {
		t.Fatal("expected errors")
	}
	if res.Value != nil {
		t.Fatalf("value = %v, want nil", *res.Value)
	}
	if res.Normalized != nil {
		t.Fatalf("normalized = %q, want nil", *res.Normalized)
	}
}

func TestCheckDoubleUnarySurvivesParseButFailsUsage(t *testing.T) {
	// "1 + + 2" parses as 1 + (+2); it fails on number usage instead.
	res := Check(CheckRequest{Numbers: []int{1, 2, 3, 4}, Target: 24, Expression: "1 + + 2"})
	if res.Valid {
		t.Fatal("expected invalid")
	}
	if len(res.Errors) == 0 {
		t.Fatal("expected errors")
	}
}

func TestCheckDivisionByZero(t *testing.T) {
	res := Check(CheckRequest{Numbers: []int{1, 2, 3, 4}, Target: 24, Expression: "1/(2-2)"})
	if res.Valid {
		t.Fatal("expected invalid")
	}
	if !containsSubstring(res.Errors, "Division by zero") {
		t.Fatalf("errors = %v, want a division-by-zero message", res.Errors)
	}
	if !containsSubstring(res.Hints, "Avoid dividing by zero.") {
		t.Fatalf("hints = %v, want the division hint", res.Hints)
	}
	// Parsing succeeded, so the normalized form is still reported.
	if res.Normalized == nil || *res.Normalized != "1/(2-2)" {
		t.Fatalf("normalized = %v, want 1/(2-2)", res.Normalized)
	}
}

func TestCheckUnsupportedConstruct(t *testing.T) {
	res := Check(CheckRequest{Numbers: []int{1, 2, 3, 4}, Target: 24, Expression: "2**3"})
	if res.Valid {
		t.Fatal("expected invalid")
	}
	if !containsSubstring(res.Errors, "Unsupported") {
		t.Fatalf("errors = %v, want an unsupported-construct message", res.Errors)
	}
	if !containsSubstring(res.Hints, "Stick to +, -, *, / and parentheses.") {
		t.Fatalf("hints = %v, want the operator hint", res.Hints)
	}
}

func TestCheckNumberMismatch(t *testing.T) {
	res := Check(CheckRequest{Numbers: []int{1, 2, 3, 4}, Target: 24, Expression: "5 + 6"})
	if res.Valid {
		t.Fatal("expected invalid")
	}
	if !containsSubstring(res.Errors, "Numbers used do not match") {
		t.Fatalf("errors = %v, want the mismatch message", res.Errors)
	}
	if !containsSubstring(res.Hints, "Use every provided number exactly once.") {
		t.Fatalf("hints = %v, want the usage hint", res.Hints)
	}
	// Evaluation succeeded, so the value is still reported.
	if res.Value == nil || *res.Value != 11 {
		t.Fatalf("value = %v, want 11", res.Value)
	}
}

func TestCheckWrongValueKeepsValue(t *testing.T) {
	res := Check(CheckRequest{Numbers: []int{1, 2, 3, 4}, Target: 24, Expression: "1 + 2 + 3 + 4"})
	if res.Valid {
		t.Fatal("expected invalid")
	}
	if res.Value == nil || *res.Value != 10 {
		t.Fatalf("value = %v, want 10", res.Value)
	}
	if len(res.Errors) != 0 {
		t.Fatalf("errors = %v, want empty", res.Errors)
	}
	if len(res.Hints) == 0 {
		t.Fatal("expected strategic hints")
	}
}

func TestCheckNormalizedExpression(t *testing.T) {
	res := Check(CheckRequest{Numbers: []int{3, 8, 3, 8}, Target: 24, Expression: "8 / ( 3 - 8 / 3 )"})
	if res.Normalized == nil || *res.Normalized != "8/(3-8/3)" {
		t.Fatalf("normalized = %v, want 8/(3-8/3)", res.Normalized)
	}

	// Idempotent on an already whitespace-free string.
	res = Check(CheckRequest{Numbers: []int{3, 8, 3, 8}, Target: 24, Expression: "8/(3-8/3)"})
	if res.Normalized == nil || *res.Normalized != "8/(3-8/3)" {
		t.Fatalf("normalized = %v, want 8/(3-8/3)", res.Normalized)
	}
}

func TestBuildHints(t *testing.T) {
	val := func(v float64) *float64 { return &v }

	t.Run("exact match", func(t *testing.T) {
		hints := buildHints(24, val(24), nil)
		if !containsSubstring(hints, "Great job") {
			t.Fatalf("hints = %v", hints)
		}
	})
	t.Run("close", func(t *testing.T) {
		hints := buildHints(24, val(22), nil)
		if !containsSubstring(hints, "very close") {
			t.Fatalf("hints = %v", hints)
		}
	})
	t.Run("far", func(t *testing.T) {
		hints := buildHints(24, val(10), nil)
		if len(hints) != 2 {
			t.Fatalf("hints = %v, want two strategic hints", hints)
		}
	})
	t.Run("no value", func(t *testing.T) {
		hints := buildHints(24, nil, nil)
		if !containsSubstring(hints, "Provide an expression") {
			t.Fatalf("hints = %v", hints)
		}
	})
	t.Run("unmatched error", func(t *testing.T) {
		hints := buildHints(24, nil, []string{"something odd"})
		if !containsSubstring(hints, "Adjust the expression") {
			t.Fatalf("hints = %v", hints)
		}
	})
}

func containsSubstring(list []string, sub string) bool {
	for _, s := range list {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
