package fractal

// Node is one node of a parsed complex-valued formula. The tree is produced
// by an external parser (see the parser sub-package for one implementation)
// and consumed as-is by Decompose.
//
// Node is a closed sum over exactly four variants: NumberNode, VariableNode,
// UnaryNode and BinaryNode. Trees are strict (no sharing, no cycles) and
// immutable after construction; each child is owned exclusively by its
// parent.
type Node interface {
	isNode()
}

// NumberNode is a literal. Lexeme is either a bare non-negative decimal
// literal (digits, optionally containing a '.') or one of the three reserved
// symbols SymbolI, SymbolE, SymbolPi.
type NumberNode struct {
	Lexeme string
}

// Reserved number lexemes.
const (
	SymbolI  = "i"    // imaginary unit
	SymbolE  = "e"    // Euler's number
	SymbolPi = `\pi`  // pi
)

// VariableNode is a kernel-visible free variable. The kernel exposes exactly
// two: "z" (the iterate) and "c" (the plane coordinate). This is a
// parser-level contract; Decompose emits any name unchanged.
type VariableNode struct {
	Name string
}

// UnaryOp tags a UnaryNode with one of the closed set of complex functions
// provided by the generated runtime library.
type UnaryOp string

// The closed unary operator set. Each tag maps to exactly one runtime
// routine named by prefixing the tag with "cx_".
const (
	OpNeg   UnaryOp = "neg"
	OpSin   UnaryOp = "sin"
	OpCos   UnaryOp = "cos"
	OpTan   UnaryOp = "tan"
	OpCsc   UnaryOp = "csc"
	OpSec   UnaryOp = "sec"
	OpCot   UnaryOp = "cot"
	OpSinh  UnaryOp = "sinh"
	OpCosh  UnaryOp = "cosh"
	OpTanh  UnaryOp = "tanh"
	OpCsch  UnaryOp = "csch"
	OpSech  UnaryOp = "sech"
	OpCoth  UnaryOp = "coth"
	OpAsin  UnaryOp = "asin"
	OpAcos  UnaryOp = "acos"
	OpAtan  UnaryOp = "atan"
	OpAcot  UnaryOp = "acot"
	OpLn    UnaryOp = "ln"
	OpExp   UnaryOp = "exp"
	OpSqrt  UnaryOp = "sqrt"
	OpAbs   UnaryOp = "abs"
	OpArg   UnaryOp = "arg"
	OpFloor UnaryOp = "floor"
	OpRound UnaryOp = "round"
	OpCeil  UnaryOp = "ceil"
	OpRe    UnaryOp = "Re"
	OpIm    UnaryOp = "Im"
	OpGamma UnaryOp = "Gamma"
)

// unaryOps is the membership set Decompose validates against.
var unaryOps = map[UnaryOp]struct{}{
	OpNeg: {}, OpSin: {}, OpCos: {}, OpTan: {}, OpCsc: {}, OpSec: {},
	OpCot: {}, OpSinh: {}, OpCosh: {}, OpTanh: {}, OpCsch: {}, OpSech: {},
	OpCoth: {}, OpAsin: {}, OpAcos: {}, OpAtan: {}, OpAcot: {}, OpLn: {},
	OpExp: {}, OpSqrt: {}, OpAbs: {}, OpArg: {}, OpFloor: {}, OpRound: {},
	OpCeil: {}, OpRe: {}, OpIm: {}, OpGamma: {},
}

// UnaryNode applies a complex function to one owned child.
type UnaryNode struct {
	Op  UnaryOp
	Arg Node
}

// BinaryOp tags a BinaryNode. Exactly five tags are valid; any other tag is
// a decomposition error.
type BinaryOp string

// The binary operator set.
const (
	OpAdd BinaryOp = "+"
	OpSub BinaryOp = "-"
	OpMul BinaryOp = "*"
	OpDiv BinaryOp = "/"
	OpPow BinaryOp = "^"
)

// BinaryNode applies an infix operator to two owned children. Order is
// significant: multiplication and power are never commutatively reordered.
type BinaryNode struct {
	Op          BinaryOp
	Left, Right Node
}

func (*NumberNode) isNode()   {}
func (*VariableNode) isNode() {}
func (*UnaryNode) isNode()    {}
func (*BinaryNode) isNode()   {}
