// Package expr implements the restricted arithmetic language players may
// submit: integer and decimal literals, unary +/-, the binary operators
// + - * /, and parentheses for grouping. Parsing and evaluation are
// separate passes so a tree can be reused without re-parsing.
package expr

import (
	"errors"
	"fmt"
)

// Op identifies an arithmetic operator.
type Op int

const (
	Add Op = iota
	Sub
	Mul
	Div
)

func (o Op) String() string {
	switch o {
	case Add:
		return "+"
	case Sub:
		return "-"
	case Mul:
		return "*"
	case Div:
		return "/"
	}
	return "?"
}

// Node is a node of a parsed expression tree. The only implementations are
// Literal, Unary, and Binary; user input cannot produce any other shape.
type Node interface {
	node()
}

// Literal is a numeric literal.
type Literal struct {
	Value float64
}

// Unary applies + or - to a single operand.
type Unary struct {
	Op      Op // Add or Sub
	Operand Node
}

// Binary applies an operator to two operands.
type Binary struct {
	Op    Op
	Left  Node
	Right Node
}

func (*Literal) node() {}
func (*Unary) node()   {}
func (*Binary) node()  {}

// Classified evaluation failures. The texts are part of the API surface:
// /check folds them into the errors array and static hint derivation
// matches on them.
var (
	ErrUnsupported       = errors.New("Unsupported expression")
	ErrDivisionByZero    = errors.New("Division by zero")
	ErrNonNumericLiteral = errors.New("Only numeric constants are allowed")
)

// SyntaxError reports malformed input: unbalanced parentheses, a missing
// operand, trailing garbage.
type SyntaxError struct {
	Pos int // 1-based byte offset
	Msg string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("syntax error: %s at position %d", e.Msg, e.Pos)
}
