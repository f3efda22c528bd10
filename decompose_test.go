package fractal

import (
	"errors"
	"testing"
)

func num(lexeme string) *NumberNode      { return &NumberNode{Lexeme: lexeme} }
func v(name string) *VariableNode        { return &VariableNode{Name: name} }
func un(op UnaryOp, arg Node) *UnaryNode { return &UnaryNode{Op: op, Arg: arg} }
func bin(op BinaryOp, l, r Node) *BinaryNode {
	return &BinaryNode{Op: op, Left: l, Right: r}
}

func TestDecomposeNumbers(t *testing.T) {
	tests := []struct {
		name   string
		lexeme string
		want   string
	}{
		{"integer gets trailing .0", "3", "vec2<f32>(3.0, 0.0)"},
		{"decimal kept verbatim", "3.5", "vec2<f32>(3.5, 0.0)"},
		{"zero", "0", "vec2<f32>(0.0, 0.0)"},
		{"leading dot kept verbatim", "0.25", "vec2<f32>(0.25, 0.0)"},
		{"imaginary unit", SymbolI, "vec2<f32>(0.0, 1.0)"},
		{"euler constant", SymbolE, "vec2<f32>(CX_E, 0.0)"},
		{"pi constant", SymbolPi, "vec2<f32>(CX_PI, 0.0)"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Decompose(num(tt.lexeme))
			if err != nil {
				t.Fatalf("Decompose(%q) error: %v", tt.lexeme, err)
			}
			if got != tt.want {
				t.Errorf("Decompose(%q) = %q, want %q", tt.lexeme, got, tt.want)
			}
		})
	}
}

func TestDecomposeVariables(t *testing.T) {
	for _, name := range []string{"z", "c"} {
		got, err := Decompose(v(name))
		if err != nil {
			t.Fatalf("Decompose(%s) error: %v", name, err)
		}
		if got != name {
			t.Errorf("Decompose(%s) = %q, want identifier unchanged", name, got)
		}
	}
}

func TestDecomposeBinaryOperators(t *testing.T) {
	tests := []struct {
		name string
		node Node
		want string
	}{
		{"addition is inline infix", bin(OpAdd, v("z"), v("c")), "(z+c)"},
		{"subtraction is inline infix", bin(OpSub, v("z"), v("c")), "(z-c)"},
		{"multiplication helper", bin(OpMul, v("z"), v("c")), "cx_mul(z, c)"},
		{"division helper", bin(OpDiv, v("z"), v("c")), "cx_div(z, c)"},
		{"power helper", bin(OpPow, v("z"), num("2")), "cx_pow(z, vec2<f32>(2.0, 0.0))"},
		{
			"operand order preserved",
			bin(OpMul, num("2"), v("z")),
			"cx_mul(vec2<f32>(2.0, 0.0), z)",
		},
		{
			"mandelbrot formula",
			bin(OpAdd, bin(OpPow, v("z"), num("2")), v("c")),
			"(cx_pow(z, vec2<f32>(2.0, 0.0))+c)",
		},
		{
			"nested recursion",
			bin(OpDiv, bin(OpAdd, v("z"), num("1")), bin(OpSub, v("z"), num("1"))),
			"cx_div((z+vec2<f32>(1.0, 0.0)), (z-vec2<f32>(1.0, 0.0)))",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Decompose(tt.node)
			if err != nil {
				t.Fatalf("Decompose error: %v", err)
			}
			if got != tt.want {
				t.Errorf("Decompose = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDecomposeUnaryOperators(t *testing.T) {
	tests := []struct {
		name string
		node Node
		want string
	}{
		{"sin call", un(OpSin, v("z")), "cx_sin(z)"},
		{"negation call", un(OpNeg, v("z")), "cx_neg(z)"},
		{"gamma keeps tag case", un(OpGamma, v("z")), "cx_Gamma(z)"},
		{"real projection", un(OpRe, v("z")), "cx_Re(z)"},
		{"nested argument", un(OpExp, bin(OpMul, v("z"), num("2"))), "cx_exp(cx_mul(z, vec2<f32>(2.0, 0.0)))"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Decompose(tt.node)
			if err != nil {
				t.Fatalf("Decompose error: %v", err)
			}
			if got != tt.want {
				t.Errorf("Decompose = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDecomposeEveryUnaryTag(t *testing.T) {
	// Totality over the closed tag set: no known tag may fail.
	for op := range unaryOps {
		if _, err := Decompose(un(op, v("z"))); err != nil {
			t.Errorf("Decompose(%s) unexpectedly failed: %v", op, err)
		}
	}
}

func TestDecomposeUnsupportedNodes(t *testing.T) {
	tests := []struct {
		name string
		node Node
	}{
		{"unknown unary tag", un(UnaryOp("frob"), v("z"))},
		{"unknown binary tag", bin(BinaryOp("%"), v("z"), v("c"))},
		{"nil node", nil},
		{"error in left child", bin(OpAdd, un(UnaryOp("frob"), v("z")), v("c"))},
		{"error in right child", bin(OpAdd, v("c"), un(UnaryOp("frob"), v("z")))},
		{"error in unary child", un(OpSin, bin(BinaryOp("%"), v("z"), v("c")))},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Decompose(tt.node)
			if err == nil {
				t.Fatalf("Decompose = %q, want error", got)
			}
			var unsupported *UnsupportedNodeError
			if !errors.As(err, &unsupported) {
				t.Errorf("error = %v, want *UnsupportedNodeError", err)
			}
		})
	}
}

func TestDecomposeDeterministic(t *testing.T) {
	tree := bin(OpAdd, un(OpGamma, bin(OpPow, v("z"), num("2"))), v("c"))
	first, err := Decompose(tree)
	if err != nil {
		t.Fatalf("Decompose error: %v", err)
	}
	for i := 0; i < 10; i++ {
		again, err := Decompose(tree)
		if err != nil {
			t.Fatalf("Decompose error: %v", err)
		}
		if again != first {
			t.Fatalf("Decompose not deterministic: %q vs %q", again, first)
		}
	}
}
