package expr

import (
	"regexp"
	"strconv"
)

var (
	digitRun    = regexp.MustCompile(`\d+`)
	operatorSym = regexp.MustCompile(`[+\-*/]`)
)

// Numbers returns every maximal digit run in text, in scan order. Decimal
// points are not part of a run, so "3.14" yields 3 and 14.
func Numbers(text string) []int {
	runs := digitRun.FindAllString(text, -1)
	out := make([]int, 0, len(runs))
	for _, r := range runs {
		n, err := strconv.Atoi(r)
		if err != nil {
			continue
		}
		out = append(out, n)
	}
	return out
}

// Operators returns the arithmetic operator symbols in text, in order.
func Operators(text string) []string {
	return operatorSym.FindAllString(text, -1)
}

// SameMultiset reports whether a and b hold the same values with the same
// counts, ignoring order.
func SameMultiset(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	counts := make(map[int]int, len(a))
	for _, n := range a {
		counts[n]++
	}
	for _, n := range b {
		counts[n]--
		if counts[n] < 0 {
			return false
		}
	}
	return true
}
