// Package game implements the Math 24 validation orchestrator: a single
// request-scoped pass that parses, evaluates, and checks number usage of
// a submitted expression, then derives static hints from the outcome.
package game

import (
	"math"
	"strings"

	"github.com/xuemaozhang/AI-math24/api/internal/expr"
)

// valueTolerance is the absolute tolerance for matching the target.
const valueTolerance = 1e-6

// ErrNumberMismatch is the errors-array entry for a wrong number multiset.
const ErrNumberMismatch = "Numbers used do not match the provided set (all numbers, exact counts)."

// CheckRequest is one submission against a dealt number set.
type CheckRequest struct {
	Numbers    []int
	Target     int
	Mode       string
	Expression string
}

// CheckResult is the outcome of a single Check call, never mutated after
// construction.
type CheckResult struct {
	Valid      bool
	Value      *float64
	Errors     []string
	Hints      []string
	Normalized *string
}

// Check runs the validation state machine: parse, evaluate, compare the
// literal multiset against the dealt numbers, then derive hints. Parse
// and evaluation failures are folded into Errors, never returned.
func Check(req CheckRequest) CheckResult {
	res := CheckResult{Errors: []string{}}

	tree, err := expr.Parse(req.Expression)
	if err != nil {
		res.Errors = append(res.Errors, err.Error())
	} else {
		norm := stripSpace(req.Expression)
		res.Normalized = &norm
		v, err := expr.Evaluate(tree)
		if err != nil {
			res.Errors = append(res.Errors, err.Error())
		} else {
			res.Value = &v
		}
	}

	// Number usage is only meaningful once the expression evaluates.
	if len(res.Errors) == 0 {
		used := expr.Numbers(req.Expression)
		if !expr.SameMultiset(req.Numbers, used) {
			res.Errors = append(res.Errors, ErrNumberMismatch)
		}
	}

	res.Valid = len(res.Errors) == 0 &&
		res.Value != nil &&
		!math.IsInf(*res.Value, 0) && !math.IsNaN(*res.Value) &&
		math.Abs(*res.Value-float64(req.Target)) <= valueTolerance

	res.Hints = buildHints(req.Target, res.Value, res.Errors)
	return res
}

func stripSpace(s string) string {
	return strings.Join(strings.Fields(s), "")
}
