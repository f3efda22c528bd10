package render

import "github.com/gogpu/gpucontext"

// Option configures a Renderer during creation.
type Option func(*rendererOptions)

type rendererOptions struct {
	cpuOnly     bool
	supersample int
	validate    bool
	provider    gpucontext.DeviceProvider
}

func defaultOptions() rendererOptions {
	return rendererOptions{
		supersample: 1,
		validate:    true,
	}
}

// WithCPUOnly forces the cpueval reference path and never touches the GPU.
func WithCPUOnly() Option {
	return func(o *rendererOptions) {
		o.cpuOnly = true
	}
}

// WithSupersample renders at factor times the requested resolution and
// downscales with a Catmull-Rom kernel. Factors below 1 are treated as 1.
func WithSupersample(factor int) Option {
	return func(o *rendererOptions) {
		if factor < 1 {
			factor = 1
		}
		o.supersample = factor
	}
}

// WithoutValidation skips the naga compile check of generated programs.
// The GPU backend still compiles the shaders itself; skipping only loses
// the early, source-level error report.
func WithoutValidation() Option {
	return func(o *rendererOptions) {
		o.validate = false
	}
}

// WithDeviceProvider shares an externally owned GPU device instead of
// opening one. The provider must also expose HAL types via HalDevice() and
// HalQueue() (the gpucontext.HalProvider convention); otherwise the
// renderer opens its own device.
func WithDeviceProvider(provider gpucontext.DeviceProvider) Option {
	return func(o *rendererOptions) {
		o.provider = provider
	}
}
