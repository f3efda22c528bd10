// Package parser turns math-notation formula strings into parse trees
// consumable by the compiler. It accepts the plain and LaTeX-flavored
// spellings side by side: `z^2+c`, `z^{2}+c`, `sin(z)+c` and `\sin z + c`
// all parse to the same tree.
package parser

import (
	"fmt"
	"strings"

	"github.com/gogpu/fractal"
)

// functions maps a function name (without backslash) to its operator tag.
// The arc* spellings are LaTeX aliases for the a* tags.
var functions = map[string]fractal.UnaryOp{
	"sin":    fractal.OpSin,
	"cos":    fractal.OpCos,
	"tan":    fractal.OpTan,
	"csc":    fractal.OpCsc,
	"sec":    fractal.OpSec,
	"cot":    fractal.OpCot,
	"sinh":   fractal.OpSinh,
	"cosh":   fractal.OpCosh,
	"tanh":   fractal.OpTanh,
	"csch":   fractal.OpCsch,
	"sech":   fractal.OpSech,
	"coth":   fractal.OpCoth,
	"asin":   fractal.OpAsin,
	"acos":   fractal.OpAcos,
	"atan":   fractal.OpAtan,
	"acot":   fractal.OpAcot,
	"arcsin": fractal.OpAsin,
	"arccos": fractal.OpAcos,
	"arctan": fractal.OpAtan,
	"arccot": fractal.OpAcot,
	"ln":     fractal.OpLn,
	"exp":    fractal.OpExp,
	"sqrt":   fractal.OpSqrt,
	"abs":    fractal.OpAbs,
	"arg":    fractal.OpArg,
	"floor":  fractal.OpFloor,
	"round":  fractal.OpRound,
	"ceil":   fractal.OpCeil,
	"Re":     fractal.OpRe,
	"Im":     fractal.OpIm,
	"Gamma":  fractal.OpGamma,
}

// parser consumes the flat token slice produced by the lexer and builds a
// parse tree.
//
// Grammar:
//
//	formula        = expression EOF
//	expression     = additive
//	additive       = multiplicative (("+" | "-") multiplicative)*
//	multiplicative = unary (("*" | "/") unary | unary)*
//	unary          = "-" unary | power
//	power          = apply ("^" unary)?
//	apply          = FUNCTION "(" expression ")" | FUNCTION power | primary
//	primary        = NUMBER | SYMBOL | VARIABLE
//	               | "(" expression ")" | "{" expression "}"
//
// The bare `unary` alternative in `multiplicative` is implicit
// multiplication by juxtaposition (`2z`, `3(z+c)`). The exponent of `^`
// re-enters `unary`, making `^` right-associative and letting `z^-2`
// parse without parentheses. A function argument is a `power`, so
// `\sin z^2` means sin(z²) and `\sin 2z` means sin(2)·z, following the
// usual typeset convention.
type parser struct {
	tokens []Token
	pos    int
	src    string
}

// fmtError wraps an error message with the formula and offending column.
func (p *parser) fmtError(tok Token, format string, args ...any) error {
	msg := fmt.Sprintf(format, args...)
	return fmt.Errorf("col %d: %s\n  |> %s", tok.Col, msg, strings.TrimSpace(p.src))
}

// peek returns the current token without consuming it.
func (p *parser) peek() Token {
	if p.pos >= len(p.tokens) {
		return Token{Type: EOF, Col: len(p.src)}
	}
	return p.tokens[p.pos]
}

// advance consumes and returns the current token.
func (p *parser) advance() Token {
	tok := p.peek()
	if p.pos < len(p.tokens) {
		p.pos++
	}
	return tok
}

// expect consumes the current token if it matches tt, otherwise returns an
// error.
func (p *parser) expect(tt TokenType) (Token, error) {
	tok := p.advance()
	if tok.Type != tt {
		return tok, p.fmtError(tok, "expected %s, got %s (%q)", tt, tok.Type, tok.Lexeme)
	}
	return tok, nil
}

// Parse parses a complete formula over the free variables z and c.
func Parse(src string) (fractal.Node, error) {
	tokens, err := lex(src)
	if err != nil {
		return nil, err
	}
	p := &parser{tokens: tokens, src: src}
	root, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if tok := p.peek(); tok.Type != EOF {
		return nil, p.fmtError(tok, "unexpected %q after formula", tok.Lexeme)
	}
	return root, nil
}

func (p *parser) parseExpression() (fractal.Node, error) {
	return p.parseAdditive()
}

// parseAdditive handles + and -.
func (p *parser) parseAdditive() (fractal.Node, error) {
	expr, err := p.parseMultiplicative()
	if err != nil {
		return nil, err
	}
	for p.peek().Type == PLUS || p.peek().Type == MINUS {
		op := fractal.OpAdd
		if p.advance().Type == MINUS {
			op = fractal.OpSub
		}
		right, err := p.parseMultiplicative()
		if err != nil {
			return nil, err
		}
		expr = &fractal.BinaryNode{Op: op, Left: expr, Right: right}
	}
	return expr, nil
}

// startsOperand reports whether tok can begin a unary operand, which is what
// makes juxtaposition an implicit multiplication.
func startsOperand(tok Token) bool {
	switch tok.Type {
	case NUMBER, IDENT, COMMAND, LPAREN, LBRACE:
		return true
	}
	return false
}

// parseMultiplicative handles *, / and juxtaposition.
func (p *parser) parseMultiplicative() (fractal.Node, error) {
	expr, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	for {
		op := fractal.OpMul
		switch {
		case p.peek().Type == STAR:
			p.advance()
		case p.peek().Type == SLASH:
			p.advance()
			op = fractal.OpDiv
		case startsOperand(p.peek()):
			// implicit multiplication, no token to consume
		default:
			return expr, nil
		}
		right, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		expr = &fractal.BinaryNode{Op: op, Left: expr, Right: right}
	}
}

// parseUnary handles prefix minus.
func (p *parser) parseUnary() (fractal.Node, error) {
	if p.peek().Type == MINUS {
		p.advance()
		arg, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return &fractal.UnaryNode{Op: fractal.OpNeg, Arg: arg}, nil
	}
	return p.parsePower()
}

// parsePower handles the right-associative ^.
func (p *parser) parsePower() (fractal.Node, error) {
	base, err := p.parseApply()
	if err != nil {
		return nil, err
	}
	if p.peek().Type != CARET {
		return base, nil
	}
	p.advance()
	exponent, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	return &fractal.BinaryNode{Op: fractal.OpPow, Left: base, Right: exponent}, nil
}

// parseApply handles function application; anything else falls through to
// primary.
func (p *parser) parseApply() (fractal.Node, error) {
	tok := p.peek()
	name := tok.Lexeme
	if tok.Type == COMMAND {
		name = strings.TrimPrefix(name, `\`)
	} else if tok.Type != IDENT {
		return p.parsePrimary()
	}
	op, ok := functions[name]
	if !ok {
		return p.parsePrimary()
	}
	p.advance()

	// Call syntax binds tighter than ^, so abs(z)^2 squares the call
	// result. A bare argument takes its own exponent with it, so
	// \sin z^2 is sin(z²).
	if p.peek().Type == LPAREN {
		p.advance()
		arg, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(RPAREN); err != nil {
			return nil, err
		}
		return &fractal.UnaryNode{Op: op, Arg: arg}, nil
	}
	arg, err := p.parsePower()
	if err != nil {
		return nil, err
	}
	return &fractal.UnaryNode{Op: op, Arg: arg}, nil
}

// parsePrimary handles literals, symbols, variables and grouping.
func (p *parser) parsePrimary() (fractal.Node, error) {
	tok := p.advance()
	switch tok.Type {
	case NUMBER:
		return &fractal.NumberNode{Lexeme: tok.Lexeme}, nil
	case IDENT:
		switch tok.Lexeme {
		case fractal.SymbolI, fractal.SymbolE:
			return &fractal.NumberNode{Lexeme: tok.Lexeme}, nil
		case "pi":
			return &fractal.NumberNode{Lexeme: fractal.SymbolPi}, nil
		case "z", "c":
			return &fractal.VariableNode{Name: tok.Lexeme}, nil
		}
		return nil, p.fmtError(tok, "unknown name %q (the formula may use z, c, i, e and pi)", tok.Lexeme)
	case COMMAND:
		if tok.Lexeme == fractal.SymbolPi {
			return &fractal.NumberNode{Lexeme: fractal.SymbolPi}, nil
		}
		return nil, p.fmtError(tok, "unknown command %q", tok.Lexeme)
	case LPAREN:
		expr, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(RPAREN); err != nil {
			return nil, err
		}
		return expr, nil
	case LBRACE:
		expr, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(RBRACE); err != nil {
			return nil, err
		}
		return expr, nil
	case EOF:
		return nil, p.fmtError(tok, "unexpected end of formula")
	default:
		return nil, p.fmtError(tok, "unexpected %q", tok.Lexeme)
	}
}
