package cpueval

import (
	"errors"
	"math"
	"testing"

	"github.com/gogpu/fractal"
)

func TestEvalNumbers(t *testing.T) {
	tests := []struct {
		lexeme string
		want   complex128
	}{
		{"3", 3},
		{"3.5", 3.5},
		{fractal.SymbolI, complex(0, 1)},
		{fractal.SymbolE, complex(math.E, 0)},
		{fractal.SymbolPi, complex(math.Pi, 0)},
	}
	for _, tt := range tests {
		got, err := Eval(&fractal.NumberNode{Lexeme: tt.lexeme}, 0, 0)
		if err != nil {
			t.Fatalf("Eval(%q) error: %v", tt.lexeme, err)
		}
		if got != tt.want {
			t.Errorf("Eval(%q) = %v, want %v", tt.lexeme, got, tt.want)
		}
	}
}

func TestEvalVariables(t *testing.T) {
	z, c := complex(1, 2), complex(-3, 4)
	got, err := Eval(&fractal.VariableNode{Name: "z"}, z, c)
	if err != nil || got != z {
		t.Errorf("Eval(z) = %v, %v", got, err)
	}
	got, err = Eval(&fractal.VariableNode{Name: "c"}, z, c)
	if err != nil || got != c {
		t.Errorf("Eval(c) = %v, %v", got, err)
	}
	if _, err := Eval(&fractal.VariableNode{Name: "w"}, z, c); err == nil {
		t.Error("Eval(w) should fail: only z and c are kernel-visible")
	}
}

func TestEvalFormulas(t *testing.T) {
	z, c := complex(1, 1), complex(0.5, -0.5)
	tests := []struct {
		name string
		node fractal.Node
		want complex128
	}{
		{
			"z^2+c",
			&fractal.BinaryNode{
				Op: fractal.OpAdd,
				Left: &fractal.BinaryNode{
					Op:    fractal.OpPow,
					Left:  &fractal.VariableNode{Name: "z"},
					Right: &fractal.NumberNode{Lexeme: "2"},
				},
				Right: &fractal.VariableNode{Name: "c"},
			},
			Pow(z, 2) + c,
		},
		{
			"z/c",
			&fractal.BinaryNode{
				Op:    fractal.OpDiv,
				Left:  &fractal.VariableNode{Name: "z"},
				Right: &fractal.VariableNode{Name: "c"},
			},
			Div(z, c),
		},
		{
			"sin(z*c)",
			&fractal.UnaryNode{
				Op: fractal.OpSin,
				Arg: &fractal.BinaryNode{
					Op:    fractal.OpMul,
					Left:  &fractal.VariableNode{Name: "z"},
					Right: &fractal.VariableNode{Name: "c"},
				},
			},
			Sin(Mul(z, c)),
		},
		{
			"-z",
			&fractal.UnaryNode{Op: fractal.OpNeg, Arg: &fractal.VariableNode{Name: "z"}},
			-z,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Eval(tt.node, z, c)
			if err != nil {
				t.Fatalf("Eval error: %v", err)
			}
			if got != tt.want {
				t.Errorf("Eval = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestEvalEveryUnaryTag(t *testing.T) {
	// The evaluator's tag set must match the compiler's exactly: every tag
	// Decompose accepts has a CPU mirror.
	for _, op := range []fractal.UnaryOp{
		fractal.OpNeg, fractal.OpSin, fractal.OpCos, fractal.OpTan,
		fractal.OpCsc, fractal.OpSec, fractal.OpCot, fractal.OpSinh,
		fractal.OpCosh, fractal.OpTanh, fractal.OpCsch, fractal.OpSech,
		fractal.OpCoth, fractal.OpAsin, fractal.OpAcos, fractal.OpAtan,
		fractal.OpAcot, fractal.OpLn, fractal.OpExp, fractal.OpSqrt,
		fractal.OpAbs, fractal.OpArg, fractal.OpFloor, fractal.OpRound,
		fractal.OpCeil, fractal.OpRe, fractal.OpIm, fractal.OpGamma,
	} {
		node := &fractal.UnaryNode{Op: op, Arg: &fractal.VariableNode{Name: "z"}}
		if _, err := Eval(node, complex(0.3, 0.4), 0); err != nil {
			t.Errorf("Eval(%s) failed: %v", op, err)
		}
		if _, err := fractal.Decompose(node); err != nil {
			t.Errorf("Decompose(%s) failed: %v", op, err)
		}
	}
}

func TestEvalUnsupportedNode(t *testing.T) {
	bad := &fractal.BinaryNode{
		Op:    fractal.BinaryOp("%"),
		Left:  &fractal.VariableNode{Name: "z"},
		Right: &fractal.VariableNode{Name: "c"},
	}
	_, err := Eval(bad, 0, 0)
	var unsupported *fractal.UnsupportedNodeError
	if !errors.As(err, &unsupported) {
		t.Errorf("error = %v, want *fractal.UnsupportedNodeError", err)
	}
}
