// Package gpu holds the wgpu/hal render pipeline that executes compiled
// fractal kernels offscreen: a fullscreen-quad draw into an RGBA8 texture
// followed by a staging-buffer readback.
package gpu

import (
	"encoding/binary"
	"fmt"
	"math"
	"time"

	"github.com/gogpu/fractal"
	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"
)

// uniformSize is the byte size of the kernel uniform buffer.
// Layout: center (vec2<f32>) + scale (f32) + aspect (f32) = 16 bytes.
const uniformSize = 16

// quadVertexStride is the byte stride per vertex: one vec2<f32> clip position.
const quadVertexStride = 8

// Uniforms are the per-draw kernel inputs. Everything else the kernel needs
// is baked into the program text at compile time.
type Uniforms struct {
	CenterX float32 // plane center, real part
	CenterY float32 // plane center, imaginary part
	Scale   float32 // plane units per clip-space unit
	Aspect  float32 // width / height
}

// Pipeline owns the GPU resources for rendering one compiled program.
// It is not safe for concurrent use; the render package serializes access.
type Pipeline struct {
	instance hal.Instance
	device   hal.Device
	queue    hal.Queue

	vertShader    hal.ShaderModule
	fragShader    hal.ShaderModule
	uniformLayout hal.BindGroupLayout
	pipeLayout    hal.PipelineLayout
	pipeline      hal.RenderPipeline
	quadBuf       hal.Buffer

	target     hal.Texture
	targetView hal.TextureView

	width, height uint32
	ownsDevice    bool
}

// New creates an empty pipeline. Call Init (or Attach) before Prepare.
func New() *Pipeline {
	return &Pipeline{}
}

// Init opens its own GPU device via the Vulkan backend, preferring discrete
// over integrated adapters. Returns an error when no adapter is available;
// callers fall back to the CPU evaluator then.
func (p *Pipeline) Init() error {
	backend, ok := hal.GetBackend(gputypes.BackendVulkan)
	if !ok {
		return fmt.Errorf("vulkan backend not available")
	}
	instance, err := backend.CreateInstance(&hal.InstanceDescriptor{Flags: 0})
	if err != nil {
		return fmt.Errorf("create instance: %w", err)
	}
	p.instance = instance

	adapters := instance.EnumerateAdapters(nil)
	if len(adapters) == 0 {
		return fmt.Errorf("no GPU adapters found")
	}
	var selected *hal.ExposedAdapter
	for i := range adapters {
		if adapters[i].Info.DeviceType == gputypes.DeviceTypeDiscreteGPU ||
			adapters[i].Info.DeviceType == gputypes.DeviceTypeIntegratedGPU {
			selected = &adapters[i]
			break
		}
	}
	if selected == nil {
		selected = &adapters[0]
	}
	openDev, err := selected.Adapter.Open(gputypes.Features(0), gputypes.DefaultLimits())
	if err != nil {
		return fmt.Errorf("open device: %w", err)
	}
	p.device = openDev.Device
	p.queue = openDev.Queue
	p.ownsDevice = true
	fractal.Logger().Info("fractal: GPU adapter selected", "name", selected.Info.Name)
	return nil
}

// Attach reuses an externally owned device and queue instead of opening one.
// The caller keeps ownership; Destroy will not release them.
func (p *Pipeline) Attach(device hal.Device, queue hal.Queue) {
	p.device = device
	p.queue = queue
	p.ownsDevice = false
}

// Prepare compiles a program's shader modules and (re)builds the render
// pipeline. Any previously prepared program is released first: a settings
// or formula change always arrives as a whole new Program.
func (p *Pipeline) Prepare(prog fractal.Program) error {
	if p.device == nil {
		return fmt.Errorf("pipeline not initialized")
	}
	p.destroyProgram()

	vert, err := p.device.CreateShaderModule(&hal.ShaderModuleDescriptor{
		Label:  "fractal_vertex",
		Source: hal.ShaderSource{WGSL: prog.Vertex},
	})
	if err != nil {
		return fmt.Errorf("compile vertex shader: %w", err)
	}
	p.vertShader = vert

	frag, err := p.device.CreateShaderModule(&hal.ShaderModuleDescriptor{
		Label:  "fractal_fragment",
		Source: hal.ShaderSource{WGSL: prog.Fragment},
	})
	if err != nil {
		return fmt.Errorf("compile fragment shader: %w", err)
	}
	p.fragShader = frag

	uniformLayout, err := p.device.CreateBindGroupLayout(&hal.BindGroupLayoutDescriptor{
		Label: "fractal_uniform_layout",
		Entries: []gputypes.BindGroupLayoutEntry{
			{
				Binding:    0,
				Visibility: gputypes.ShaderStageVertex | gputypes.ShaderStageFragment,
				Buffer:     &gputypes.BufferBindingLayout{Type: gputypes.BufferBindingTypeUniform},
			},
		},
	})
	if err != nil {
		return fmt.Errorf("create uniform layout: %w", err)
	}
	p.uniformLayout = uniformLayout

	pipeLayout, err := p.device.CreatePipelineLayout(&hal.PipelineLayoutDescriptor{
		Label:            "fractal_pipe_layout",
		BindGroupLayouts: []hal.BindGroupLayout{p.uniformLayout},
	})
	if err != nil {
		return fmt.Errorf("create pipeline layout: %w", err)
	}
	p.pipeLayout = pipeLayout

	pipeline, err := p.device.CreateRenderPipeline(&hal.RenderPipelineDescriptor{
		Label:  "fractal_pipeline",
		Layout: p.pipeLayout,
		Vertex: hal.VertexState{
			Module:     p.vertShader,
			EntryPoint: "vs_main",
			Buffers:    quadVertexLayout(),
		},
		Fragment: &hal.FragmentState{
			Module:     p.fragShader,
			EntryPoint: "fs_main",
			Targets: []gputypes.ColorTargetState{
				{
					Format:    gputypes.TextureFormatRGBA8Unorm,
					WriteMask: gputypes.ColorWriteMaskAll,
				},
			},
		},
		Primitive: gputypes.PrimitiveState{
			Topology: gputypes.PrimitiveTopologyTriangleList,
			CullMode: gputypes.CullModeNone,
		},
		Multisample: gputypes.MultisampleState{
			Count: 1,
			Mask:  0xFFFFFFFF,
		},
	})
	if err != nil {
		return fmt.Errorf("create render pipeline: %w", err)
	}
	p.pipeline = pipeline

	if p.quadBuf == nil {
		quad := fullscreenQuad()
		buf, err := p.createAndUploadBuffer("fractal_quad", quad,
			gputypes.BufferUsageVertex|gputypes.BufferUsageCopyDst)
		if err != nil {
			return fmt.Errorf("create quad buffer: %w", err)
		}
		p.quadBuf = buf
	}
	return nil
}

// Render draws the prepared program into a w x h RGBA8 target and reads the
// pixels back. The returned slice is w*h*4 bytes in RGBA order.
func (p *Pipeline) Render(u Uniforms, w, h uint32) ([]byte, error) {
	if p.pipeline == nil {
		return nil, fmt.Errorf("no program prepared")
	}
	if err := p.ensureTarget(w, h); err != nil {
		return nil, err
	}

	uniformBuf, err := p.createAndUploadBuffer("fractal_uniforms", packUniforms(u),
		gputypes.BufferUsageUniform|gputypes.BufferUsageCopyDst)
	if err != nil {
		return nil, fmt.Errorf("create uniform buffer: %w", err)
	}
	defer p.device.DestroyBuffer(uniformBuf)

	bindGroup, err := p.device.CreateBindGroup(&hal.BindGroupDescriptor{
		Label:  "fractal_bind",
		Layout: p.uniformLayout,
		Entries: []gputypes.BindGroupEntry{
			{Binding: 0, Resource: gputypes.BufferBinding{
				Buffer: uniformBuf.NativeHandle(), Offset: 0, Size: uniformSize,
			}},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("create bind group: %w", err)
	}
	defer p.device.DestroyBindGroup(bindGroup)

	return p.encodeAndReadback(w, h, bindGroup)
}

// ensureTarget creates or recreates the offscreen color target.
func (p *Pipeline) ensureTarget(w, h uint32) error {
	if p.width == w && p.height == h && p.target != nil {
		return nil
	}
	p.destroyTarget()

	target, err := p.device.CreateTexture(&hal.TextureDescriptor{
		Label:         "fractal_target",
		Size:          hal.Extent3D{Width: w, Height: h, DepthOrArrayLayers: 1},
		MipLevelCount: 1,
		SampleCount:   1,
		Dimension:     gputypes.TextureDimension2D,
		Format:        gputypes.TextureFormatRGBA8Unorm,
		Usage:         gputypes.TextureUsageRenderAttachment | gputypes.TextureUsageCopySrc,
	})
	if err != nil {
		return fmt.Errorf("create target texture: %w", err)
	}
	p.target = target

	view, err := p.device.CreateTextureView(target, &hal.TextureViewDescriptor{
		Label:         "fractal_target_view",
		Format:        gputypes.TextureFormatRGBA8Unorm,
		Dimension:     gputypes.TextureViewDimension2D,
		Aspect:        gputypes.TextureAspectAll,
		MipLevelCount: 1,
	})
	if err != nil {
		p.destroyTarget()
		return fmt.Errorf("create target view: %w", err)
	}
	p.targetView = view

	p.width = w
	p.height = h
	return nil
}

// encodeAndReadback encodes the draw, copies the target to a staging buffer,
// submits, waits, and reads back the pixels.
func (p *Pipeline) encodeAndReadback(w, h uint32, bindGroup hal.BindGroup) ([]byte, error) {
	encoder, err := p.device.CreateCommandEncoder(&hal.CommandEncoderDescriptor{
		Label: "fractal_encoder",
	})
	if err != nil {
		return nil, fmt.Errorf("create command encoder: %w", err)
	}
	if err := encoder.BeginEncoding("fractal_render"); err != nil {
		return nil, fmt.Errorf("begin encoding: %w", err)
	}

	rp := encoder.BeginRenderPass(&hal.RenderPassDescriptor{
		Label: "fractal_pass",
		ColorAttachments: []hal.RenderPassColorAttachment{
			{
				View:       p.targetView,
				LoadOp:     gputypes.LoadOpClear,
				StoreOp:    gputypes.StoreOpStore,
				ClearValue: gputypes.Color{R: 0, G: 0, B: 0, A: 1},
			},
		},
	})
	rp.SetPipeline(p.pipeline)
	rp.SetBindGroup(0, bindGroup, nil)
	rp.SetVertexBuffer(0, p.quadBuf, 0)
	rp.Draw(6, 1, 0, 0)
	rp.End()

	// The color attachment must transition to a copy source before the
	// texture-to-buffer copy. No-op on backends without explicit layouts.
	encoder.TransitionTextures([]hal.TextureBarrier{{
		Texture: p.target,
		Usage: hal.TextureUsageTransition{
			OldUsage: gputypes.TextureUsageRenderAttachment,
			NewUsage: gputypes.TextureUsageCopySrc,
		},
	}})

	pixelBufSize := uint64(w) * uint64(h) * 4
	stagingBuf, err := p.device.CreateBuffer(&hal.BufferDescriptor{
		Label: "fractal_staging",
		Size:  pixelBufSize,
		Usage: gputypes.BufferUsageMapRead | gputypes.BufferUsageCopyDst,
	})
	if err != nil {
		encoder.DiscardEncoding()
		return nil, fmt.Errorf("create staging buffer: %w", err)
	}
	defer p.device.DestroyBuffer(stagingBuf)

	encoder.CopyTextureToBuffer(p.target, stagingBuf, []hal.BufferTextureCopy{{
		BufferLayout: hal.ImageDataLayout{Offset: 0, BytesPerRow: w * 4, RowsPerImage: h},
		TextureBase:  hal.ImageCopyTexture{Texture: p.target, MipLevel: 0},
		Size:         hal.Extent3D{Width: w, Height: h, DepthOrArrayLayers: 1},
	}})

	cmdBuf, err := encoder.EndEncoding()
	if err != nil {
		return nil, fmt.Errorf("end encoding: %w", err)
	}
	defer p.device.FreeCommandBuffer(cmdBuf)

	fence, err := p.device.CreateFence()
	if err != nil {
		return nil, fmt.Errorf("create fence: %w", err)
	}
	defer p.device.DestroyFence(fence)

	if err := p.queue.Submit([]hal.CommandBuffer{cmdBuf}, fence, 1); err != nil {
		return nil, fmt.Errorf("submit: %w", err)
	}
	fenceOK, err := p.device.Wait(fence, 1, 5*time.Second)
	if err != nil || !fenceOK {
		return nil, fmt.Errorf("wait for GPU: ok=%v err=%w", fenceOK, err)
	}

	readback := make([]byte, pixelBufSize)
	if err := p.queue.ReadBuffer(stagingBuf, 0, readback); err != nil {
		return nil, fmt.Errorf("readback: %w", err)
	}
	return readback, nil
}

// Destroy releases all GPU resources. Safe to call multiple times.
func (p *Pipeline) Destroy() {
	p.destroyProgram()
	p.destroyTarget()
	if p.quadBuf != nil {
		p.device.DestroyBuffer(p.quadBuf)
		p.quadBuf = nil
	}
	if p.ownsDevice && p.device != nil {
		p.device.Destroy()
	}
	p.device = nil
	p.queue = nil
}

func (p *Pipeline) destroyProgram() {
	if p.device == nil {
		return
	}
	if p.pipeline != nil {
		p.device.DestroyRenderPipeline(p.pipeline)
		p.pipeline = nil
	}
	if p.pipeLayout != nil {
		p.device.DestroyPipelineLayout(p.pipeLayout)
		p.pipeLayout = nil
	}
	if p.uniformLayout != nil {
		p.device.DestroyBindGroupLayout(p.uniformLayout)
		p.uniformLayout = nil
	}
	if p.fragShader != nil {
		p.device.DestroyShaderModule(p.fragShader)
		p.fragShader = nil
	}
	if p.vertShader != nil {
		p.device.DestroyShaderModule(p.vertShader)
		p.vertShader = nil
	}
}

func (p *Pipeline) destroyTarget() {
	if p.targetView != nil {
		p.device.DestroyTextureView(p.targetView)
		p.targetView = nil
	}
	if p.target != nil {
		p.device.DestroyTexture(p.target)
		p.target = nil
	}
	p.width = 0
	p.height = 0
}

func (p *Pipeline) createAndUploadBuffer(label string, data []byte, usage gputypes.BufferUsage) (hal.Buffer, error) {
	buf, err := p.device.CreateBuffer(&hal.BufferDescriptor{
		Label: label,
		Size:  uint64(len(data)),
		Usage: usage,
	})
	if err != nil {
		return nil, fmt.Errorf("create %s: %w", label, err)
	}
	p.queue.WriteBuffer(buf, 0, data)
	return buf, nil
}

func quadVertexLayout() []gputypes.VertexBufferLayout {
	return []gputypes.VertexBufferLayout{
		{
			ArrayStride: quadVertexStride,
			StepMode:    gputypes.VertexStepModeVertex,
			Attributes: []gputypes.VertexAttribute{
				{Format: gputypes.VertexFormatFloat32x2, Offset: 0, ShaderLocation: 0},
			},
		},
	}
}

// fullscreenQuad returns two clip-space triangles covering the viewport.
func fullscreenQuad() []byte {
	verts := []float32{
		-1, -1, 1, -1, 1, 1,
		-1, -1, 1, 1, -1, 1,
	}
	buf := make([]byte, len(verts)*4)
	for i, v := range verts {
		binary.LittleEndian.PutUint32(buf[i*4:], math.Float32bits(v))
	}
	return buf
}

func packUniforms(u Uniforms) []byte {
	buf := make([]byte, uniformSize)
	binary.LittleEndian.PutUint32(buf[0:], math.Float32bits(u.CenterX))
	binary.LittleEndian.PutUint32(buf[4:], math.Float32bits(u.CenterY))
	binary.LittleEndian.PutUint32(buf[8:], math.Float32bits(u.Scale))
	binary.LittleEndian.PutUint32(buf[12:], math.Float32bits(u.Aspect))
	return buf
}
