package cpueval

import (
	"math"

	"github.com/gogpu/fractal"
)

// Result is the outcome of the escape-time loop for one plane point.
type Result struct {
	// Count is the escape iteration count, fractional when smoothing
	// applied. Equal to float64(Settings.Iterations) when escape never
	// occurred.
	Count float64

	// Final is the iterate after the loop exited.
	Final complex128

	// Escaped reports whether |z|^2 exceeded the breakout threshold.
	// Always false in domain coloring mode, whose loop has no escape test.
	Escaped bool
}

// Iterate runs the escape-time loop for the formula tree at plane point c,
// mirroring the generated kernel exactly: seed choice, per-step escape test
// with the recorded step index, and the smoothing correction applied only
// when escape occurred.
func Iterate(root fractal.Node, c complex128, s fractal.Settings) (Result, error) {
	domain := s.Coloring == fractal.ColoringDomain

	var z complex128
	if s.Julia {
		z = c
	}

	res := Result{Count: float64(s.Iterations)}
	for i := 0; i < s.Iterations; i++ {
		next, err := Eval(root, z, c)
		if err != nil {
			return Result{}, err
		}
		z = next
		if !domain && real(z)*real(z)+imag(z)*imag(z) > s.Breakout {
			res.Count = float64(i)
			res.Escaped = true
			break
		}
	}
	res.Final = z

	if s.Smooth && res.Escaped {
		zz := real(z)*real(z) + imag(z)*imag(z)
		nu := math.Log2(math.Log2(zz) / 2)
		res.Count = res.Count + 1 - nu
	}
	return res, nil
}
