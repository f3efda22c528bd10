// Package render draws compiled fractal kernels into images, offscreen.
//
// The GPU path compiles the generated WGSL with gogpu/naga, executes it via
// a gogpu/wgpu render pipeline and reads the pixels back. When no GPU
// adapter is available (or WithCPUOnly is set) the cpueval reference
// evaluator produces the same image on the CPU.
package render

// View is the window onto the complex plane. The visible region spans
// CenterY +/- Scale vertically; horizontally it spans Scale times the image
// aspect ratio, matching the vertex stage's aspect pass-through.
type View struct {
	CenterX float64
	CenterY float64
	Scale   float64
}

// DefaultView frames the classic Mandelbrot set.
func DefaultView() View {
	return View{CenterX: -0.5, CenterY: 0, Scale: 1.5}
}
