package cpueval

import (
	"math"

	"github.com/gogpu/fractal"
)

// RGB is a color triple with components in [0, 1].
type RGB struct {
	R, G, B float64
}

// Shade maps an iteration result to a color under the settings' coloring
// mode, mirroring the generated shade routine. Unknown modes fail with
// *fractal.UnknownColoringModeError, matching Assemble.
func Shade(res Result, s fractal.Settings) (RGB, error) {
	switch s.Coloring {
	case fractal.ColoringDomain:
		return shadeDomain(res.Final, s.HueShift), nil
	case fractal.ColoringHue, fractal.ColoringGrayscale, fractal.ColoringGrayscaleInv,
		fractal.ColoringBW, fractal.ColoringBWInv:
		frac := math.Pow(res.Count/float64(s.Iterations), math.Pow(1.1, s.Bias))
		return shadeFraction(frac, s), nil
	default:
		return RGB{}, &fractal.UnknownColoringModeError{Mode: s.Coloring}
	}
}

func shadeFraction(x float64, s fractal.Settings) RGB {
	switch s.Coloring {
	case fractal.ColoringHue:
		if x < 0 || x > 1 {
			return RGB{}
		}
		return hsl2rgb(hueWrap(360*x + s.HueShift))
	case fractal.ColoringGrayscale:
		g := 1 - clamp01(x)
		return RGB{g, g, g}
	case fractal.ColoringGrayscaleInv:
		g := clamp01(x)
		return RGB{g, g, g}
	case fractal.ColoringBW:
		if x >= 1 {
			return RGB{}
		}
		return RGB{1, 1, 1}
	default: // bwInv
		if x >= 1 {
			return RGB{1, 1, 1}
		}
		return RGB{}
	}
}

func shadeDomain(z complex128, shift float64) RGB {
	if z == 0 {
		return hsl2rgb(hueWrap(shift))
	}
	h := hueWrap(Arg(z)*180/math.Pi + shift)
	if !(h >= 0 && h < 360) {
		return hsl2rgb(hueWrap(shift))
	}
	return hsl2rgb(h)
}

// hueWrap folds a hue angle in degrees into [0, 360).
func hueWrap(h float64) float64 {
	f := h/360 - math.Floor(h/360)
	return f * 360
}

// hsl2rgb converts a hue at full saturation and 50% lightness to RGB.
func hsl2rgb(hue float64) RGB {
	h := hue / 60
	x := 1 - math.Abs(math.Mod(h, 2)-1)
	switch {
	case h < 1:
		return RGB{1, x, 0}
	case h < 2:
		return RGB{x, 1, 0}
	case h < 3:
		return RGB{0, 1, x}
	case h < 4:
		return RGB{0, x, 1}
	case h < 5:
		return RGB{x, 0, 1}
	default:
		return RGB{1, 0, x}
	}
}

func clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}
