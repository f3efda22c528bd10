// Package cpueval is the CPU reference implementation of the generated
// kernel semantics. It mirrors the WGSL complex runtime, the escape-time
// iteration loop, the smoothing correction and the coloring-mode table in
// complex128 arithmetic, serving two purposes: it is the renderer's fallback
// when no GPU adapter is available, and it is the executable ground truth
// the compiler's behavior is tested against.
package cpueval

import "math"

// Mul returns the complex product, mirroring cx_mul.
func Mul(a, b complex128) complex128 {
	return complex(real(a)*real(b)-imag(a)*imag(b), real(a)*imag(b)+imag(a)*real(b))
}

// Div returns the complex quotient, mirroring cx_div.
func Div(a, b complex128) complex128 {
	d := real(b)*real(b) + imag(b)*imag(b)
	return complex(
		(real(a)*real(b)+imag(a)*imag(b))/d,
		(imag(a)*real(b)-real(a)*imag(b))/d,
	)
}

// Abs returns |z|.
func Abs(z complex128) float64 {
	return math.Hypot(real(z), imag(z))
}

// Arg returns the principal argument of z.
func Arg(z complex128) float64 {
	return math.Atan2(imag(z), real(z))
}

// Ln returns (ln|z|, arg z), the principal branch of the natural logarithm.
func Ln(z complex128) complex128 {
	return complex(math.Log(Abs(z)), Arg(z))
}

// Exp returns e^z.
func Exp(z complex128) complex128 {
	r := math.Exp(real(z))
	return complex(r*math.Cos(imag(z)), r*math.Sin(imag(z)))
}

// Pow returns the principal branch of a^b with the runtime's explicit
// zero-base edge cases: 0^0 is NaN, 0^negative is infinite, 0^positive is 0.
func Pow(a, b complex128) complex128 {
	if a == 0 {
		switch {
		case real(b) == 0:
			return complex(math.NaN(), math.NaN())
		case real(b) < 0:
			return complex(math.Inf(1), math.Inf(1))
		default:
			return 0
		}
	}
	return Exp(Mul(b, Ln(a)))
}

// Sqrt returns the principal square root via the polar form.
func Sqrt(z complex128) complex128 {
	r := math.Sqrt(Abs(z))
	t := 0.5 * Arg(z)
	return complex(r*math.Cos(t), r*math.Sin(t))
}

// Sin and friends use the sum identities over real sine/cosine and the real
// hyperbolics, exactly as the generated runtime does.
func Sin(z complex128) complex128 {
	return complex(math.Sin(real(z))*math.Cosh(imag(z)), math.Cos(real(z))*math.Sinh(imag(z)))
}

func Cos(z complex128) complex128 {
	return complex(math.Cos(real(z))*math.Cosh(imag(z)), -math.Sin(real(z))*math.Sinh(imag(z)))
}

func Tan(z complex128) complex128 { return Div(Sin(z), Cos(z)) }
func Csc(z complex128) complex128 { return Div(1, Sin(z)) }
func Sec(z complex128) complex128 { return Div(1, Cos(z)) }
func Cot(z complex128) complex128 { return Div(Cos(z), Sin(z)) }

func Sinh(z complex128) complex128 {
	return complex(math.Sinh(real(z))*math.Cos(imag(z)), math.Cosh(real(z))*math.Sin(imag(z)))
}

func Cosh(z complex128) complex128 {
	return complex(math.Cosh(real(z))*math.Cos(imag(z)), math.Sinh(real(z))*math.Sin(imag(z)))
}

func Tanh(z complex128) complex128 { return Div(Sinh(z), Cosh(z)) }
func Csch(z complex128) complex128 { return Div(1, Sinh(z)) }
func Sech(z complex128) complex128 { return Div(1, Cosh(z)) }
func Coth(z complex128) complex128 { return Div(Cosh(z), Sinh(z)) }

// Inverse trig via the complex logarithm, principal branch.
func Asin(z complex128) complex128 {
	return Mul(complex(0, -1), Ln(Mul(complex(0, 1), z)+Sqrt(1-Mul(z, z))))
}

func Acos(z complex128) complex128 {
	return Mul(complex(0, -1), Ln(z+Mul(complex(0, 1), Sqrt(1-Mul(z, z)))))
}

func Atan(z complex128) complex128 {
	iz := Mul(complex(0, 1), z)
	return Mul(complex(0, 0.5), Ln(1-iz)-Ln(1+iz))
}

func Acot(z complex128) complex128 { return Atan(Div(1, z)) }

// Componentwise rounding. Round matches WGSL round(), which takes halfway
// cases to the nearest even integer.
func Floor(z complex128) complex128 {
	return complex(math.Floor(real(z)), math.Floor(imag(z)))
}

func Round(z complex128) complex128 {
	return complex(math.RoundToEven(real(z)), math.RoundToEven(imag(z)))
}

func Ceil(z complex128) complex128 {
	return complex(math.Ceil(real(z)), math.Ceil(imag(z)))
}

// lanczos holds the 9 fixed coefficients of the g=7 approximation.
var lanczos = [9]float64{
	0.99999999999980993,
	676.5203681218851,
	-1259.1392167224028,
	771.32342877765313,
	-176.61502916214059,
	12.507343278686905,
	-0.13857109526572012,
	9.9843695780195716e-6,
	1.5056327351493116e-7,
}

const sqrtTwoPi = 2.5066282746310002

// gammaSnap is the imaginary-residual threshold below which Gamma snaps its
// result onto the real axis. A display-smoothing heuristic, not a numerical
// requirement; kept for output compatibility.
const gammaSnap = 1e-7

func gammaCore(z complex128) complex128 {
	z -= 1
	x := complex(lanczos[0], 0)
	for i := 1; i < len(lanczos); i++ {
		x += Div(complex(lanczos[i], 0), z+complex(float64(i), 0))
	}
	t := z + 7.5
	w := Mul(Pow(t, z+0.5), Exp(-t))
	return Mul(sqrtTwoPi, Mul(w, x))
}

// Gamma evaluates the complex Gamma function by the Lanczos approximation,
// with the reflection formula for Re(z) < 0.5.
func Gamma(z complex128) complex128 {
	var g complex128
	if real(z) < 0.5 {
		g = Div(complex(math.Pi, 0), Mul(Sin(Mul(complex(math.Pi, 0), z)), gammaCore(1-z)))
	} else {
		g = gammaCore(z)
	}
	if math.Abs(imag(g)) < gammaSnap {
		g = complex(real(g), 0)
	}
	return g
}
