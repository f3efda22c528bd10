package fractal

// ColoringMode is a key into the fixed coloring-mode table. The table is
// closed: unknown keys are an assembly-time error.
type ColoringMode string

// The coloring-mode table keys.
const (
	// ColoringHue maps the escape fraction to a hue angle at full
	// saturation and 50% lightness. Out-of-[0,1] input yields black.
	ColoringHue ColoringMode = "hue"

	// ColoringGrayscale clamps the fraction to [0,1] and returns 1-x
	// as the gray level.
	ColoringGrayscale ColoringMode = "grayscale"

	// ColoringGrayscaleInv clamps the fraction to [0,1] and returns x
	// as the gray level.
	ColoringGrayscaleInv ColoringMode = "grayscaleInv"

	// ColoringBW paints interior points (fraction >= 1) black and
	// everything else white.
	ColoringBW ColoringMode = "bw"

	// ColoringBWInv paints interior points white and everything else black.
	ColoringBWInv ColoringMode = "bwInv"

	// ColoringDomain colors by the angle of the final iterate instead of
	// the escape count. The escape test is omitted entirely for this mode;
	// the loop always runs to completion.
	ColoringDomain ColoringMode = "domain"
)

// coloringSpec is one entry of the coloring-mode table. The shade routine is
// pre-authored text: its internal visual design is fixed, only its contract
// matters here. Non-domain routines take the normalized escape fraction;
// the domain routine takes the final iterate itself.
type coloringSpec struct {
	domain bool
	shade  string
}

var coloringModes = map[ColoringMode]coloringSpec{
	ColoringHue: {shade: `
fn shade(x: f32) -> vec3<f32> {
    if (x < 0.0 || x > 1.0) {
        return vec3<f32>(0.0, 0.0, 0.0);
    }
    return hsl2rgb(hue_wrap(360.0 * x + HUE_SHIFT));
}
`},
	ColoringGrayscale: {shade: `
fn shade(x: f32) -> vec3<f32> {
    let g = 1.0 - clamp(x, 0.0, 1.0);
    return vec3<f32>(g, g, g);
}
`},
	ColoringGrayscaleInv: {shade: `
fn shade(x: f32) -> vec3<f32> {
    let g = clamp(x, 0.0, 1.0);
    return vec3<f32>(g, g, g);
}
`},
	ColoringBW: {shade: `
fn shade(x: f32) -> vec3<f32> {
    if (x >= 1.0) {
        return vec3<f32>(0.0, 0.0, 0.0);
    }
    return vec3<f32>(1.0, 1.0, 1.0);
}
`},
	ColoringBWInv: {shade: `
fn shade(x: f32) -> vec3<f32> {
    if (x >= 1.0) {
        return vec3<f32>(1.0, 1.0, 1.0);
    }
    return vec3<f32>(0.0, 0.0, 0.0);
}
`},
	ColoringDomain: {domain: true, shade: `
fn shade(z: vec2<f32>) -> vec3<f32> {
    if (z.x == 0.0 && z.y == 0.0) {
        return hsl2rgb(hue_wrap(HUE_SHIFT));
    }
    let h = hue_wrap(degrees(atan2(z.y, z.x)) + HUE_SHIFT);
    if (!(h >= 0.0 && h < 360.0)) {
        return hsl2rgb(hue_wrap(HUE_SHIFT));
    }
    return hsl2rgb(h);
}
`},
}

// ColoringModes returns the known coloring-mode keys in stable order.
// Useful for CLI help text and settings validation messages.
func ColoringModes() []ColoringMode {
	return []ColoringMode{
		ColoringHue, ColoringGrayscale, ColoringGrayscaleInv,
		ColoringBW, ColoringBWInv, ColoringDomain,
	}
}
