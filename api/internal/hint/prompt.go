package hint

import (
	"fmt"
	"strings"
)

// buildPrompt embeds the full game state into the instruction template
// sent to the model. The instructions forbid a complete solution and ask
// for a single 8-20 word hint.
func buildPrompt(req Request, used, remaining []int, parseNote, openingMove string, solutionOps []string) string {
	numbersStr := joinInts(req.Numbers)
	usedStr := orNone(joinInts(used))
	remainingStr := orNone(joinInts(remaining))

	partial := strings.TrimSpace(req.Expression)
	if partial == "" {
		partial = "(no expression yet)"
	}
	modeText := req.Mode
	if modeText == "" {
		modeText = "unspecified"
	}
	opsStr := "unknown"
	if len(solutionOps) > 0 {
		opsStr = strings.Join(solutionOps, ", ")
	}
	if openingMove == "" {
		openingMove = "not provided"
	}

	var b strings.Builder
	b.WriteString("You are an assistant for the Math 24 game.\n\n")
	b.WriteString("Rules:\n")
	b.WriteString("- Use every provided number exactly once\n")
	b.WriteString("- Allowed operations: +, -, *, /, parentheses\n")
	fmt.Fprintf(&b, "- Target: %d\n", req.Target)
	b.WriteString("- Return ONE concise hint (8-20 words), a single sentence\n")
	b.WriteString("- Never give a complete solution or full expression using all numbers\n")
	b.WriteString("- Allowed: suggest one operation, a partial grouping, or a strategic idea\n")
	b.WriteString("- Disallowed: full expression that reaches the target; step-by-step full solution; listing all operations\n")
	b.WriteString("- Avoid generic phrasing like \"group X and Y first\"; vary tactics and be specific.\n")
	b.WriteString("- If a solution hint is provided, align with it but DO NOT reveal the full solution.\n\n")
	b.WriteString("Game state:\n")
	fmt.Fprintf(&b, "- Numbers given: %s\n", numbersStr)
	fmt.Fprintf(&b, "- Numbers already used: %s\n", usedStr)
	fmt.Fprintf(&b, "- Numbers remaining: %s\n", remainingStr)
	fmt.Fprintf(&b, "- Current expression (may be partial): %s\n", partial)
	fmt.Fprintf(&b, "- Mode: %s\n", modeText)
	fmt.Fprintf(&b, "- Expression status: %s\n", parseNote)
	fmt.Fprintf(&b, "- Solution operators (bag): %s\n", opsStr)
	fmt.Fprintf(&b, "- Solution opening move: %s\n\n", openingMove)
	b.WriteString("Respond with just the hint text. Do not reveal a complete solution.\n\n")
	b.WriteString("Good examples (format/length):\n")
	b.WriteString("- \"Make an 8 with 2 and 4, then multiply it by the largest remaining number.\"\n")
	b.WriteString("- \"Use one division to reduce a big pair, then add the smallest number to reach 24.\"\n")
	b.WriteString("- \"Aim for factors of 24 (3×8, 4×6); set up one of these with your remaining numbers.\"")
	return b.String()
}

func joinInts(ns []int) string {
	parts := make([]string, len(ns))
	for i, n := range ns {
		parts[i] = fmt.Sprintf("%d", n)
	}
	return strings.Join(parts, ", ")
}

func orNone(s string) string {
	if s == "" {
		return "none"
	}
	return s
}
