package fractal

import (
	"fmt"
	"strings"
)

// runtimePrefix names the complex-function runtime. A unary operator tag T
// lowers to a call of cx_T.
const runtimePrefix = "cx_"

// Decompose recursively lowers a parse tree into a single inline WGSL
// expression computing its value over the vec2<f32> complex representation.
// It is pure and deterministic, and total over the grammar: it returns an
// *UnsupportedNodeError only for trees the parser contract excludes.
//
// Recursion produces fully nested expression text in one pass; no
// temporaries are introduced and no common subexpressions are eliminated.
func Decompose(n Node) (string, error) {
	switch n := n.(type) {
	case *NumberNode:
		return decomposeNumber(n.Lexeme), nil
	case *VariableNode:
		return n.Name, nil
	case *UnaryNode:
		if _, ok := unaryOps[n.Op]; !ok {
			return "", &UnsupportedNodeError{Node: n}
		}
		arg, err := Decompose(n.Arg)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("%s%s(%s)", runtimePrefix, n.Op, arg), nil
	case *BinaryNode:
		left, err := Decompose(n.Left)
		if err != nil {
			return "", err
		}
		right, err := Decompose(n.Right)
		if err != nil {
			return "", err
		}
		switch n.Op {
		case OpAdd, OpSub:
			// Component-wise on vec2<f32>, so plain infix is exact.
			return fmt.Sprintf("(%s%s%s)", left, n.Op, right), nil
		case OpMul:
			return fmt.Sprintf("cx_mul(%s, %s)", left, right), nil
		case OpDiv:
			return fmt.Sprintf("cx_div(%s, %s)", left, right), nil
		case OpPow:
			return fmt.Sprintf("cx_pow(%s, %s)", left, right), nil
		default:
			return "", &UnsupportedNodeError{Node: n}
		}
	default:
		return "", &UnsupportedNodeError{Node: n}
	}
}

// decomposeNumber wraps a literal lexeme as a vec2<f32> constructor. Reserved
// symbols map to fixed pairs; e and pi use the named constants the runtime
// declares once. An integer lexeme gets a trailing ".0" so the emitted token
// is a float literal in WGSL regardless of the source format.
func decomposeNumber(lexeme string) string {
	switch lexeme {
	case SymbolI:
		return "vec2<f32>(0.0, 1.0)"
	case SymbolE:
		return "vec2<f32>(CX_E, 0.0)"
	case SymbolPi:
		return "vec2<f32>(CX_PI, 0.0)"
	}
	if !strings.Contains(lexeme, ".") {
		lexeme += ".0"
	}
	return fmt.Sprintf("vec2<f32>(%s, 0.0)", lexeme)
}
