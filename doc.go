// Package fractal compiles user-supplied complex-valued iteration formulas
// (for example z^2+c) into complete WGSL shader programs that render
// escape-time fractals on the GPU.
//
// # Overview
//
// The package consumes a parse tree of a single complex-valued expression
// and a Settings value, and produces the source text of a fragment-stage
// kernel (plus a fixed vertex-stage companion) ready for the GoGPU toolchain:
//
//	import "github.com/gogpu/fractal"
//
//	tree := &fractal.BinaryNode{
//	    Op:    fractal.OpPow,
//	    Left:  &fractal.VariableNode{Name: "z"},
//	    Right: &fractal.NumberNode{Lexeme: "2"},
//	}
//	tree = &fractal.BinaryNode{Op: fractal.OpAdd, Left: tree, Right: &fractal.VariableNode{Name: "c"}}
//
//	prog, err := fractal.Compile(tree, fractal.DefaultSettings())
//	// prog.Fragment and prog.Vertex are complete WGSL modules.
//
// # Architecture
//
// Compilation is two stages, both pure functions:
//   - Decompose lowers the parse tree into a single inline WGSL expression
//     over the vec2<f32> complex representation.
//   - Assemble splices that expression, together with settings-derived
//     constants and conditional blocks (escape test, smoothing, seed choice,
//     coloring call), into a program template that also carries a fixed
//     complex-arithmetic runtime library.
//
// The generated text is regenerated wholesale whenever the formula or any
// setting changes; there is no incremental recompilation. Compile holds no
// state, so concurrent calls need no coordination.
//
// # Sub-packages
//
//   - parser: turns math-notation strings into parse trees
//   - cpueval: CPU reference implementation of the generated kernel semantics
//   - render: offscreen GPU rendering via gogpu/wgpu with CPU fallback
//
// # Complex representation
//
// The kernel language's native two-component vector type vec2<f32> stands in for
// a complex number throughout: x is the real part, y the imaginary part.
// A fixed runtime library (cx_mul, cx_pow, cx_sin, cx_Gamma, ...) is emitted
// into every program; addition and subtraction stay inline because they are
// component-wise on this representation.
package fractal
