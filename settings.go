package fractal

import "fmt"

// Settings controls kernel assembly. A Settings value is supplied once per
// compilation and has no lifecycle beyond that call; every field is baked
// into the generated program text, so any change requires recompiling.
type Settings struct {
	// Iterations is the compile-time-fixed loop bound. Must be positive.
	Iterations int

	// Breakout is the squared escape radius tested against |z|^2 each
	// step. Must be positive. Ignored by the domain coloring mode, whose
	// loop always runs to completion.
	Breakout float64

	// Coloring selects one entry of the fixed coloring-mode table.
	Coloring ColoringMode

	// Bias shapes the coloring curve: the normalized escape fraction is
	// raised to pow(1.1, Bias) before the mode's own mapping runs.
	// Not applied in domain mode.
	Bias float64

	// HueShift rotates the output hue, in degrees.
	HueShift float64

	// Julia seeds the iterate with the plane coordinate c instead of zero.
	Julia bool

	// Smooth applies the continuous-iteration-count correction to escaped
	// points, removing visible color banding.
	Smooth bool
}

// DefaultSettings returns the settings a fresh session starts from.
func DefaultSettings() Settings {
	return Settings{
		Iterations: 100,
		Breakout:   10000,
		Coloring:   ColoringHue,
	}
}

// validate rejects settings no kernel can be assembled from. The coloring
// key is checked separately by Assemble so that the typed error is reported
// before any program text is built.
func (s Settings) validate() error {
	if s.Iterations <= 0 {
		return fmt.Errorf("fractal: iterations must be positive, got %d", s.Iterations)
	}
	if s.Breakout <= 0 {
		return fmt.Errorf("fractal: breakout must be positive, got %v", s.Breakout)
	}
	return nil
}
