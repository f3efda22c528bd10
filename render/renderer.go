package render

import (
	"errors"
	"fmt"
	"image"
	"sync"

	"golang.org/x/image/draw"

	"github.com/gogpu/fractal"
	gpuimpl "github.com/gogpu/fractal/internal/gpu"
	"github.com/gogpu/wgpu/hal"
)

// ErrNoGPU indicates no usable GPU adapter was found. Render falls back to
// the CPU evaluator when it sees this; it is surfaced only by GPU-specific
// entry points.
var ErrNoGPU = errors.New("render: no GPU adapter available")

// Renderer draws compiled fractal programs into images. A Renderer is safe
// for concurrent use; GPU pipeline access is serialized internally.
type Renderer struct {
	opts rendererOptions

	mu       sync.Mutex
	pipe     *gpuimpl.Pipeline
	gpuInit  bool // Init attempted
	gpuReady bool
	prepared string // fragment text of the currently prepared program
}

// New creates a Renderer. Without options it tries the GPU on first use and
// falls back to the CPU evaluator if none is available.
func New(opts ...Option) *Renderer {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Renderer{opts: o}
}

// Render compiles the formula under the given settings and draws the view
// into a w x h image. The formula and settings are compiled fresh on every
// call; program preparation is cached only against byte-identical output,
// which the compiler's determinism makes a sound key.
func (r *Renderer) Render(root fractal.Node, s fractal.Settings, view View, w, h int) (*image.RGBA, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("render: invalid dimensions %dx%d", w, h)
	}
	prog, err := fractal.Compile(root, s)
	if err != nil {
		return nil, err
	}
	if r.opts.validate {
		if err := ValidateProgram(prog); err != nil {
			return nil, err
		}
	}

	ss := r.opts.supersample
	rw, rh := w*ss, h*ss

	var img *image.RGBA
	if r.opts.cpuOnly {
		img, err = renderCPU(root, s, view, rw, rh)
	} else {
		img, err = r.renderGPU(prog, view, rw, rh)
		if errors.Is(err, ErrNoGPU) {
			fractal.Logger().Warn("fractal: falling back to CPU rendering", "err", err)
			img, err = renderCPU(root, s, view, rw, rh)
		}
	}
	if err != nil {
		return nil, err
	}
	if ss == 1 {
		return img, nil
	}

	out := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.CatmullRom.Scale(out, out.Bounds(), img, img.Bounds(), draw.Src, nil)
	return out, nil
}

// renderGPU draws via the wgpu pipeline, lazily opening a device on first
// use. Returns ErrNoGPU when initialization failed.
func (r *Renderer) renderGPU(prog fractal.Program, view View, w, h int) (*image.RGBA, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.gpuInit {
		r.gpuInit = true
		r.pipe = gpuimpl.New()
		if err := r.initDevice(); err != nil {
			fractal.Logger().Warn("fractal: GPU init failed", "err", err)
			r.pipe = nil
		} else {
			r.gpuReady = true
		}
	}
	if !r.gpuReady {
		return nil, ErrNoGPU
	}

	if r.prepared != prog.Fragment {
		if err := r.pipe.Prepare(prog); err != nil {
			return nil, fmt.Errorf("render: prepare program: %w", err)
		}
		r.prepared = prog.Fragment
	}

	pixels, err := r.pipe.Render(gpuimpl.Uniforms{
		CenterX: float32(view.CenterX),
		CenterY: float32(view.CenterY),
		Scale:   float32(view.Scale),
		Aspect:  float32(w) / float32(h),
	}, uint32(w), uint32(h))
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	copy(img.Pix, pixels)
	return img, nil
}

// initDevice attaches a shared device from the configured provider when one
// exposes HAL types, and opens a dedicated device otherwise.
func (r *Renderer) initDevice() error {
	if r.opts.provider != nil {
		type halProvider interface {
			HalDevice() any
			HalQueue() any
		}
		if hp, ok := r.opts.provider.(halProvider); ok {
			device, dok := hp.HalDevice().(hal.Device)
			queue, qok := hp.HalQueue().(hal.Queue)
			if dok && qok && device != nil && queue != nil {
				r.pipe.Attach(device, queue)
				fractal.Logger().Info("fractal: using shared GPU device")
				return nil
			}
		}
		fractal.Logger().Warn("fractal: device provider does not expose HAL types")
	}
	return r.pipe.Init()
}

// Close releases GPU resources. The Renderer remains usable afterwards in
// CPU-only form.
func (r *Renderer) Close() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.pipe != nil {
		r.pipe.Destroy()
		r.pipe = nil
	}
	r.gpuReady = false
	r.prepared = ""
}
