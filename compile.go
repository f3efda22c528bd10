package fractal

// Program is one compiled kernel pair: a fragment-stage iteration/coloring
// module generated from the formula and settings, and its fixed vertex-stage
// companion. Both are complete WGSL modules; a Program is immutable and is
// regenerated wholesale whenever the formula or any setting changes.
type Program struct {
	Fragment string
	Vertex   string
}

// Compile lowers a parse tree into a Program under the given settings.
// It is a pure function with no shared state: concurrent calls are
// independent and need no coordination. On failure (an unsupported node,
// an unknown coloring key, or invalid settings) no partial text is
// produced.
func Compile(root Node, s Settings) (Program, error) {
	expr, err := Decompose(root)
	if err != nil {
		return Program{}, err
	}
	frag, err := Assemble(expr, s)
	if err != nil {
		return Program{}, err
	}
	return Program{Fragment: frag, Vertex: vertexShader}, nil
}
