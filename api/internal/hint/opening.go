package hint

import (
	"fmt"
	"strconv"

	"github.com/xuemaozhang/AI-math24/api/internal/expr"
)

// OpeningMove describes the outermost binary operation of a known solution
// without revealing the rest: operand labels are either the literal value
// or a "(sub-expression)" placeholder. Returns "" when the solution does
// not parse, its outer node is not a binary operation after unwrapping
// unary layers, or an operand has no renderable label.
func OpeningMove(solution string) string {
	tree, err := expr.Parse(solution)
	if err != nil {
		return ""
	}
	first := firstBinary(tree)
	if first == nil {
		return ""
	}
	left := operandLabel(first.Left)
	right := operandLabel(first.Right)
	if left == "" || right == "" {
		return ""
	}
	return fmt.Sprintf("A valid solve starts by combining %s and %s using %s.", left, right, first.Op)
}

func firstBinary(n expr.Node) *expr.Binary {
	switch v := n.(type) {
	case *expr.Binary:
		return v
	case *expr.Unary:
		return firstBinary(v.Operand)
	}
	return nil
}

func operandLabel(n expr.Node) string {
	switch v := n.(type) {
	case *expr.Literal:
		return strconv.Itoa(int(v.Value))
	case *expr.Binary:
		return "(sub-expression)"
	}
	return ""
}
