package hint

import "fmt"

// fallback picks a deterministic hint when the model's reply was too
// short. Tone follows the evaluated value's distance from the target when
// one is available, otherwise the remaining numbers drive a concrete
// suggestion.
func fallback(req Request, value *float64, remaining []int) string {
	rem := remaining
	if len(rem) == 0 {
		rem = req.Numbers
	}

	if value != nil {
		delta := *value - float64(req.Target)
		switch {
		case delta < -3:
			return "Raise the total: multiply a mid pair, then add a small remaining number."
		case delta > 3:
			return "Reduce the total: use one division or subtraction on the biggest pair before combining the rest."
		default:
			return "Nudge closer: reorder with parentheses and try forming a 6 or 8 first."
		}
	}

	if len(rem) >= 2 {
		a, b := rem[0], rem[1]
		op := "+"
		if a*b <= req.Target {
			op = "*"
		}
		return fmt.Sprintf("Try %d %s %d to make a factor, then finish with the others.", a, op, b)
	}
	if len(rem) == 1 {
		return fmt.Sprintf("Blend %d with the largest number using division or subtraction to fine-tune.", rem[0])
	}
	return "Reorder with parentheses and try a single division before adding."
}
