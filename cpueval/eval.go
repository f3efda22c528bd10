package cpueval

import (
	"math"
	"strconv"

	"github.com/gogpu/fractal"
)

// unaryFuncs maps each runtime routine to its complex128 mirror. The set is
// closed and matches the generated runtime library one for one.
var unaryFuncs = map[fractal.UnaryOp]func(complex128) complex128{
	fractal.OpNeg:   func(z complex128) complex128 { return -z },
	fractal.OpSin:   Sin,
	fractal.OpCos:   Cos,
	fractal.OpTan:   Tan,
	fractal.OpCsc:   Csc,
	fractal.OpSec:   Sec,
	fractal.OpCot:   Cot,
	fractal.OpSinh:  Sinh,
	fractal.OpCosh:  Cosh,
	fractal.OpTanh:  Tanh,
	fractal.OpCsch:  Csch,
	fractal.OpSech:  Sech,
	fractal.OpCoth:  Coth,
	fractal.OpAsin:  Asin,
	fractal.OpAcos:  Acos,
	fractal.OpAtan:  Atan,
	fractal.OpAcot:  Acot,
	fractal.OpLn:    Ln,
	fractal.OpExp:   Exp,
	fractal.OpSqrt:  Sqrt,
	fractal.OpAbs:   func(z complex128) complex128 { return complex(Abs(z), 0) },
	fractal.OpArg:   func(z complex128) complex128 { return complex(Arg(z), 0) },
	fractal.OpFloor: Floor,
	fractal.OpRound: Round,
	fractal.OpCeil:  Ceil,
	fractal.OpRe:    func(z complex128) complex128 { return complex(real(z), 0) },
	fractal.OpIm:    func(z complex128) complex128 { return complex(imag(z), 0) },
	fractal.OpGamma: Gamma,
}

// Eval interprets a parse tree at the point (z, c), mirroring the value the
// generated kernel computes for the same tree. Unknown variants and tags
// fail with the same *fractal.UnsupportedNodeError the compiler reports.
func Eval(n fractal.Node, z, c complex128) (complex128, error) {
	switch n := n.(type) {
	case *fractal.NumberNode:
		return evalNumber(n.Lexeme), nil
	case *fractal.VariableNode:
		switch n.Name {
		case "z":
			return z, nil
		case "c":
			return c, nil
		default:
			// Free variables other than z and c are excluded by the
			// parser contract.
			return 0, &fractal.UnsupportedNodeError{Node: n}
		}
	case *fractal.UnaryNode:
		fn, ok := unaryFuncs[n.Op]
		if !ok {
			return 0, &fractal.UnsupportedNodeError{Node: n}
		}
		arg, err := Eval(n.Arg, z, c)
		if err != nil {
			return 0, err
		}
		return fn(arg), nil
	case *fractal.BinaryNode:
		left, err := Eval(n.Left, z, c)
		if err != nil {
			return 0, err
		}
		right, err := Eval(n.Right, z, c)
		if err != nil {
			return 0, err
		}
		switch n.Op {
		case fractal.OpAdd:
			return left + right, nil
		case fractal.OpSub:
			return left - right, nil
		case fractal.OpMul:
			return Mul(left, right), nil
		case fractal.OpDiv:
			return Div(left, right), nil
		case fractal.OpPow:
			return Pow(left, right), nil
		default:
			return 0, &fractal.UnsupportedNodeError{Node: n}
		}
	default:
		return 0, &fractal.UnsupportedNodeError{Node: n}
	}
}

func evalNumber(lexeme string) complex128 {
	switch lexeme {
	case fractal.SymbolI:
		return complex(0, 1)
	case fractal.SymbolE:
		return complex(math.E, 0)
	case fractal.SymbolPi:
		return complex(math.Pi, 0)
	}
	// Lexemes are valid by the parser contract; a malformed one evaluates
	// to zero rather than panicking, matching the compiler's stance that
	// literal validation is the parser's job.
	r, _ := strconv.ParseFloat(lexeme, 64)
	return complex(r, 0)
}
