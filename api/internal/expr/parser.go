package expr

import (
	"strconv"
	"unicode"
	"unicode/utf8"
)

// Parse turns text into an expression tree. Grammar:
//
//	expr   := term (('+'|'-') term)*
//	term   := factor (('*'|'/') factor)*
//	factor := ['+'|'-'] (number | '(' expr ')')
//
// Whitespace between tokens is insignificant. Constructs outside the
// grammar (exponentiation, identifiers, comparisons, ...) fail with
// ErrUnsupported; malformed syntax fails with *SyntaxError.
func Parse(text string) (Node, error) {
	p := &parser{in: text}
	p.skipSpace()
	if p.pos >= len(p.in) {
		return nil, &SyntaxError{Pos: p.pos + 1, Msg: "empty expression"}
	}
	n, err := p.expr()
	if err != nil {
		return nil, err
	}
	p.skipSpace()
	if p.pos < len(p.in) {
		return nil, p.unexpected()
	}
	return n, nil
}

type parser struct {
	in  string
	pos int
}

func (p *parser) skipSpace() {
	for p.pos < len(p.in) {
		switch p.in[p.pos] {
		case ' ', '\t', '\n', '\r':
			p.pos++
		default:
			return
		}
	}
}

func (p *parser) expr() (Node, error) {
	n, err := p.term()
	if err != nil {
		return nil, err
	}
	for {
		p.skipSpace()
		if p.pos >= len(p.in) {
			return n, nil
		}
		var op Op
		switch p.in[p.pos] {
		case '+':
			op = Add
		case '-':
			op = Sub
		default:
			return n, nil
		}
		p.pos++
		rhs, err := p.term()
		if err != nil {
			return nil, err
		}
		n = &Binary{Op: op, Left: n, Right: rhs}
	}
}

func (p *parser) term() (Node, error) {
	n, err := p.factor()
	if err != nil {
		return nil, err
	}
	for {
		p.skipSpace()
		if p.pos >= len(p.in) {
			return n, nil
		}
		var op Op
		switch p.in[p.pos] {
		case '*':
			if p.pos+1 < len(p.in) && p.in[p.pos+1] == '*' {
				return nil, ErrUnsupported // exponentiation
			}
			op = Mul
		case '/':
			if p.pos+1 < len(p.in) && p.in[p.pos+1] == '/' {
				return nil, ErrUnsupported // floor division
			}
			op = Div
		default:
			return n, nil
		}
		p.pos++
		rhs, err := p.factor()
		if err != nil {
			return nil, err
		}
		n = &Binary{Op: op, Left: n, Right: rhs}
	}
}

func (p *parser) factor() (Node, error) {
	p.skipSpace()
	if p.pos >= len(p.in) {
		return nil, &SyntaxError{Pos: p.pos + 1, Msg: "unexpected end of expression"}
	}
	switch p.in[p.pos] {
	case '+':
		p.pos++
		operand, err := p.operand()
		if err != nil {
			return nil, err
		}
		return &Unary{Op: Add, Operand: operand}, nil
	case '-':
		p.pos++
		operand, err := p.operand()
		if err != nil {
			return nil, err
		}
		return &Unary{Op: Sub, Operand: operand}, nil
	}
	return p.operand()
}

func (p *parser) operand() (Node, error) {
	p.skipSpace()
	if p.pos >= len(p.in) {
		return nil, &SyntaxError{Pos: p.pos + 1, Msg: "missing operand"}
	}
	c := p.in[p.pos]
	switch {
	case c == '(':
		p.pos++
		n, err := p.expr()
		if err != nil {
			return nil, err
		}
		p.skipSpace()
		if p.pos >= len(p.in) {
			return nil, &SyntaxError{Pos: p.pos + 1, Msg: "missing closing parenthesis"}
		}
		if p.in[p.pos] != ')' {
			return nil, p.unexpected()
		}
		p.pos++
		return n, nil
	case c >= '0' && c <= '9':
		return p.number()
	}
	return nil, p.unexpected()
}

func (p *parser) number() (Node, error) {
	start := p.pos
	for p.pos < len(p.in) && isDigit(p.in[p.pos]) {
		p.pos++
	}
	if p.pos < len(p.in) && p.in[p.pos] == '.' {
		p.pos++
		for p.pos < len(p.in) && isDigit(p.in[p.pos]) {
			p.pos++
		}
	}
	v, err := strconv.ParseFloat(p.in[start:p.pos], 64)
	if err != nil {
		return nil, &SyntaxError{Pos: start + 1, Msg: "malformed number"}
	}
	return &Literal{Value: v}, nil
}

// unexpected classifies the character at the current position: tokens a
// richer language would accept (identifiers, comparison operators, ...)
// are unsupported constructs, everything else is a plain syntax error.
func (p *parser) unexpected() error {
	r, _ := utf8.DecodeRuneInString(p.in[p.pos:])
	if unicode.IsLetter(r) || r == '_' {
		return ErrUnsupported
	}
	switch r {
	case '%', '^', '<', '>', '=', '!', '&', '|', ',', '~',
		'[', ']', '{', '}', '@', '#', '$', '?', ';', ':', '"', '\'', '`', '\\':
		return ErrUnsupported
	}
	return &SyntaxError{Pos: p.pos + 1, Msg: "unexpected " + strconv.QuoteRune(r)}
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }
