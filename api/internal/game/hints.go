package game

import (
	"math"
	"strings"
)

// buildHints derives static hints from a check outcome. Error-driven hints
// key off substrings of the recorded error messages; success-driven hints
// depend on how far the value landed from the target.
func buildHints(target int, value *float64, errs []string) []string {
	var hints []string
	if len(errs) > 0 {
		for _, e := range errs {
			if strings.Contains(strings.ToLower(e), "numbers") {
				hints = append(hints, "Use every provided number exactly once.")
			}
			if strings.Contains(e, "Division by zero") {
				hints = append(hints, "Avoid dividing by zero.")
			}
			if strings.Contains(e, "Unsupported") {
				hints = append(hints, "Stick to +, -, *, / and parentheses.")
			}
		}
		if len(hints) == 0 {
			return []string{"Adjust the expression and try again."}
		}
		return hints
	}

	if value == nil {
		return []string{"Provide an expression to check."}
	}

	delta := *value - float64(target)
	switch {
	case math.Abs(delta) <= valueTolerance:
		hints = append(hints, "Great job—this hits the target!")
	case math.Abs(delta) <= 3:
		hints = append(hints, "You're very close; tweak the last operator or order.")
	default:
		hints = append(hints, "Consider re-grouping with parentheses to change order of operations.")
		hints = append(hints, "Try pairing numbers to make factors of the target (e.g., 6, 8, 12).")
	}
	return hints
}
