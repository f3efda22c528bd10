package fractal

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// fragmentHeader declares the uniform block shared with the vertex stage.
// The fragment stage reads center and scale; aspect is consumed by the
// vertex stage but lives in the same 16-byte struct so one bind group
// serves both.
const fragmentHeader = `struct Uniforms {
    center: vec2<f32>,
    scale: f32,
    aspect: f32,
}

@group(0) @binding(0) var<uniform> u: Uniforms;
`

// vertexShader is the fixed, settings-independent vertex-stage companion.
// It computes a per-fragment plane position from the per-vertex clip-space
// position and the aspect-ratio scalar; nothing else.
const vertexShader = fragmentHeader + `
struct VertexOutput {
    @builtin(position) clip_position: vec4<f32>,
    @location(0) plane: vec2<f32>,
}

@vertex
fn vs_main(@location(0) position: vec2<f32>) -> VertexOutput {
    var out: VertexOutput;
    out.clip_position = vec4<f32>(position, 0.0, 1.0);
    out.plane = vec2<f32>(position.x * u.aspect, position.y);
    return out;
}
`

// VertexShader returns the paired vertex-stage program. It does not depend
// on settings and is byte-identical across compilations.
func VertexShader() string {
	return vertexShader
}

// Assemble embeds a decomposed expression into a complete WGSL fragment
// program: the complex runtime, settings-derived constants, the iteration
// loop with its conditional escape test, the optional smoothing correction,
// and the selected coloring routine. It is a pure function of its inputs;
// identical inputs produce byte-identical text.
//
// The coloring key is resolved first so that an *UnknownColoringModeError
// is returned before any text is produced.
func Assemble(expr string, s Settings) (string, error) {
	mode, ok := coloringModes[s.Coloring]
	if !ok {
		return "", &UnknownColoringModeError{Mode: s.Coloring}
	}
	if err := s.validate(); err != nil {
		return "", err
	}

	var b strings.Builder
	b.WriteString(fragmentHeader)
	b.WriteString(constantsBlock(s, mode.domain))
	b.WriteString(complexRuntime)
	b.WriteString(shadeHelpers)
	b.WriteString(mode.shade)
	b.WriteString(mainBlock(expr, s, mode.domain))
	return b.String(), nil
}

// constantsBlock bakes the settings into compile-time constants. The
// iteration count is a fixed loop bound, not a runtime uniform: changing it
// requires regenerating the program. Escape and bias constants are omitted
// in domain mode, which has no escape test and no bias curve.
func constantsBlock(s Settings, domain bool) string {
	var b strings.Builder
	fmt.Fprintf(&b, "\nconst ITERATIONS: u32 = %du;\n", s.Iterations)
	fmt.Fprintf(&b, "const ITERATIONS_F: f32 = %s;\n", wgslFloat(float64(s.Iterations)))
	if !domain {
		fmt.Fprintf(&b, "const BREAKOUT: f32 = %s;\n", wgslFloat(s.Breakout))
		fmt.Fprintf(&b, "const BIAS_EXP: f32 = %s;\n", wgslFloat(math.Pow(1.1, s.Bias)))
	}
	fmt.Fprintf(&b, "const HUE_SHIFT: f32 = %s;\n", wgslFloat(s.HueShift))
	return b.String()
}

// seedStatement initializes the iterate: z0 = c in Julia mode, else zero.
func seedStatement(s Settings) string {
	if s.Julia {
		return "    var z = c;\n"
	}
	return "    var z = vec2<f32>(0.0, 0.0);\n"
}

// loopBlock builds the iteration loop. For non-domain coloring the loop
// tests |z|^2 against the breakout each step, records the exact step index
// at first escape and breaks early. Domain coloring colors by the final
// argument, so its loop always runs to completion and the test is omitted.
func loopBlock(expr string, domain bool) string {
	if domain {
		return "    for (var i: u32 = 0u; i < ITERATIONS; i = i + 1u) {\n" +
			"        z = " + expr + ";\n" +
			"    }\n"
	}
	return "    var n = ITERATIONS_F;\n" +
		"    var escaped = false;\n" +
		"    for (var i: u32 = 0u; i < ITERATIONS; i = i + 1u) {\n" +
		"        z = " + expr + ";\n" +
		"        if (dot(z, z) > BREAKOUT) {\n" +
		"            n = f32(i);\n" +
		"            escaped = true;\n" +
		"            break;\n" +
		"        }\n" +
		"    }\n"
}

// smoothingBlock is the continuous-iteration-count correction, applied only
// when escape occurred. log2(dot(z,z)) / 2 is log2|z|, so nu is
// log2(log2|z|) and the corrected count is n + 1 - nu. Points that never
// escape keep the raw integer count, making the normalized fraction exactly
// 1.0 there.
func smoothingBlock(s Settings) string {
	if !s.Smooth {
		return ""
	}
	return "    if (escaped) {\n" +
		"        let nu = log2(log2(dot(z, z)) / 2.0);\n" +
		"        n = n + 1.0 - nu;\n" +
		"    }\n"
}

// colorStatement feeds the shade routine: the bias-curved escape fraction
// for non-domain modes, the final iterate itself for domain mode.
func colorStatement(domain bool) string {
	if domain {
		return "    let rgb = shade(z);\n"
	}
	return "    let frac = pow(n / ITERATIONS_F, BIAS_EXP);\n" +
		"    let rgb = shade(frac);\n"
}

// mainBlock assembles the fragment entry point from the block fragments.
func mainBlock(expr string, s Settings, domain bool) string {
	var b strings.Builder
	b.WriteString("\n@fragment\n")
	b.WriteString("fn fs_main(@location(0) plane: vec2<f32>) -> @location(0) vec4<f32> {\n")
	b.WriteString("    let c = u.center + plane * u.scale;\n")
	b.WriteString(seedStatement(s))
	b.WriteString(loopBlock(expr, domain))
	if !domain {
		b.WriteString(smoothingBlock(s))
	}
	b.WriteString(colorStatement(domain))
	b.WriteString("    return vec4<f32>(rgb, 1.0);\n")
	b.WriteString("}\n")
	return b.String()
}

// wgslFloat formats v as a WGSL float literal. Values without a decimal
// point or exponent get a trailing ".0" so the token is never parsed as an
// abstract integer.
func wgslFloat(v float64) string {
	s := strconv.FormatFloat(v, 'g', -1, 64)
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return s
}
