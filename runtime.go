package fractal

// complexRuntime is the fixed complex-arithmetic library emitted
// unconditionally into every generated fragment program. A complex number is
// a vec2<f32>: x the real part, y the imaginary part. Addition and subtraction
// are component-wise and therefore stay inline in decomposed expressions;
// everything else goes through the cx_ helpers below.
//
// WGSL forbids recursion, so the Gamma reflection formula calls a separate
// copy of the Lanczos core instead of cx_Gamma itself.
const complexRuntime = `
const CX_E: f32 = 2.718281828459045;
const CX_PI: f32 = 3.141592653589793;

fn cx_nan() -> vec2<f32> {
    let q = bitcast<f32>(0x7fc00000u);
    return vec2<f32>(q, q);
}

fn cx_inf() -> vec2<f32> {
    let q = bitcast<f32>(0x7f800000u);
    return vec2<f32>(q, q);
}

fn cx_neg(z: vec2<f32>) -> vec2<f32> {
    return -z;
}

fn cx_mul(a: vec2<f32>, b: vec2<f32>) -> vec2<f32> {
    return vec2<f32>(a.x * b.x - a.y * b.y, a.x * b.y + a.y * b.x);
}

fn cx_div(a: vec2<f32>, b: vec2<f32>) -> vec2<f32> {
    let d = dot(b, b);
    return vec2<f32>((a.x * b.x + a.y * b.y) / d, (a.y * b.x - a.x * b.y) / d);
}

// cx_ln returns (ln|z|, arg z), principal branch.
fn cx_ln(z: vec2<f32>) -> vec2<f32> {
    return vec2<f32>(log(length(z)), atan2(z.y, z.x));
}

fn cx_exp(z: vec2<f32>) -> vec2<f32> {
    return exp(z.x) * vec2<f32>(cos(z.y), sin(z.y));
}

// cx_pow is the principal branch of a^b with explicit zero-base edge cases:
// 0^0 is not a number, 0^negative is infinite, 0^positive is zero.
fn cx_pow(a: vec2<f32>, b: vec2<f32>) -> vec2<f32> {
    if (a.x == 0.0 && a.y == 0.0) {
        if (b.x == 0.0) {
            return cx_nan();
        }
        if (b.x < 0.0) {
            return cx_inf();
        }
        return vec2<f32>(0.0, 0.0);
    }
    return cx_exp(cx_mul(b, cx_ln(a)));
}

// cx_sqrt is the principal square root via the polar form.
fn cx_sqrt(z: vec2<f32>) -> vec2<f32> {
    let r = sqrt(length(z));
    let t = 0.5 * atan2(z.y, z.x);
    return r * vec2<f32>(cos(t), sin(t));
}

fn cx_abs(z: vec2<f32>) -> vec2<f32> {
    return vec2<f32>(length(z), 0.0);
}

fn cx_arg(z: vec2<f32>) -> vec2<f32> {
    return vec2<f32>(atan2(z.y, z.x), 0.0);
}

fn cx_floor(z: vec2<f32>) -> vec2<f32> {
    return floor(z);
}

fn cx_round(z: vec2<f32>) -> vec2<f32> {
    return round(z);
}

fn cx_ceil(z: vec2<f32>) -> vec2<f32> {
    return ceil(z);
}

fn cx_Re(z: vec2<f32>) -> vec2<f32> {
    return vec2<f32>(z.x, 0.0);
}

fn cx_Im(z: vec2<f32>) -> vec2<f32> {
    return vec2<f32>(z.y, 0.0);
}

// Real hyperbolics via the real exponential.
fn cx_rsinh(x: f32) -> f32 {
    return 0.5 * (exp(x) - exp(-x));
}

fn cx_rcosh(x: f32) -> f32 {
    return 0.5 * (exp(x) + exp(-x));
}

fn cx_sin(z: vec2<f32>) -> vec2<f32> {
    return vec2<f32>(sin(z.x) * cx_rcosh(z.y), cos(z.x) * cx_rsinh(z.y));
}

fn cx_cos(z: vec2<f32>) -> vec2<f32> {
    return vec2<f32>(cos(z.x) * cx_rcosh(z.y), -sin(z.x) * cx_rsinh(z.y));
}

fn cx_tan(z: vec2<f32>) -> vec2<f32> {
    return cx_div(cx_sin(z), cx_cos(z));
}

fn cx_csc(z: vec2<f32>) -> vec2<f32> {
    return cx_div(vec2<f32>(1.0, 0.0), cx_sin(z));
}

fn cx_sec(z: vec2<f32>) -> vec2<f32> {
    return cx_div(vec2<f32>(1.0, 0.0), cx_cos(z));
}

fn cx_cot(z: vec2<f32>) -> vec2<f32> {
    return cx_div(cx_cos(z), cx_sin(z));
}

fn cx_sinh(z: vec2<f32>) -> vec2<f32> {
    return vec2<f32>(cx_rsinh(z.x) * cos(z.y), cx_rcosh(z.x) * sin(z.y));
}

fn cx_cosh(z: vec2<f32>) -> vec2<f32> {
    return vec2<f32>(cx_rcosh(z.x) * cos(z.y), cx_rsinh(z.x) * sin(z.y));
}

fn cx_tanh(z: vec2<f32>) -> vec2<f32> {
    return cx_div(cx_sinh(z), cx_cosh(z));
}

fn cx_csch(z: vec2<f32>) -> vec2<f32> {
    return cx_div(vec2<f32>(1.0, 0.0), cx_sinh(z));
}

fn cx_sech(z: vec2<f32>) -> vec2<f32> {
    return cx_div(vec2<f32>(1.0, 0.0), cx_cosh(z));
}

fn cx_coth(z: vec2<f32>) -> vec2<f32> {
    return cx_div(cx_cosh(z), cx_sinh(z));
}

// Inverse trig via the complex logarithm, principal branch.
fn cx_asin(z: vec2<f32>) -> vec2<f32> {
    let w = cx_ln(cx_mul(vec2<f32>(0.0, 1.0), z) + cx_sqrt(vec2<f32>(1.0, 0.0) - cx_mul(z, z)));
    return cx_mul(vec2<f32>(0.0, -1.0), w);
}

fn cx_acos(z: vec2<f32>) -> vec2<f32> {
    let w = cx_ln(z + cx_mul(vec2<f32>(0.0, 1.0), cx_sqrt(vec2<f32>(1.0, 0.0) - cx_mul(z, z))));
    return cx_mul(vec2<f32>(0.0, -1.0), w);
}

fn cx_atan(z: vec2<f32>) -> vec2<f32> {
    let iz = cx_mul(vec2<f32>(0.0, 1.0), z);
    let w = cx_ln(vec2<f32>(1.0, 0.0) - iz) - cx_ln(vec2<f32>(1.0, 0.0) + iz);
    return cx_mul(vec2<f32>(0.0, 0.5), w);
}

fn cx_acot(z: vec2<f32>) -> vec2<f32> {
    return cx_atan(cx_div(vec2<f32>(1.0, 0.0), z));
}

// cx_gamma_core is the Lanczos approximation (g = 7, 9 coefficients),
// valid for Re(z) >= 0.5. The coefficient sum is unrolled because WGSL
// constants cannot be indexed dynamically on all backends.
fn cx_gamma_core(zin: vec2<f32>) -> vec2<f32> {
    let z = zin - vec2<f32>(1.0, 0.0);
    var x = vec2<f32>(0.99999999999980993, 0.0);
    x = x + cx_div(vec2<f32>(676.5203681218851, 0.0), z + vec2<f32>(1.0, 0.0));
    x = x + cx_div(vec2<f32>(-1259.1392167224028, 0.0), z + vec2<f32>(2.0, 0.0));
    x = x + cx_div(vec2<f32>(771.32342877765313, 0.0), z + vec2<f32>(3.0, 0.0));
    x = x + cx_div(vec2<f32>(-176.61502916214059, 0.0), z + vec2<f32>(4.0, 0.0));
    x = x + cx_div(vec2<f32>(12.507343278686905, 0.0), z + vec2<f32>(5.0, 0.0));
    x = x + cx_div(vec2<f32>(-0.13857109526572012, 0.0), z + vec2<f32>(6.0, 0.0));
    x = x + cx_div(vec2<f32>(9.9843695780195716e-6, 0.0), z + vec2<f32>(7.0, 0.0));
    x = x + cx_div(vec2<f32>(1.5056327351493116e-7, 0.0), z + vec2<f32>(8.0, 0.0));
    let t = z + vec2<f32>(7.5, 0.0);
    let w = cx_mul(cx_pow(t, z + vec2<f32>(0.5, 0.0)), cx_exp(-t));
    // sqrt(2 pi) = 2.5066282746310002
    return cx_mul(vec2<f32>(2.5066282746310002, 0.0), cx_mul(w, x));
}

// cx_Gamma applies the reflection formula for Re(z) < 0.5 and snaps the
// imaginary part to the real axis when the residual is below 1e-7.
fn cx_Gamma(z: vec2<f32>) -> vec2<f32> {
    var g: vec2<f32>;
    if (z.x < 0.5) {
        g = cx_div(vec2<f32>(CX_PI, 0.0), cx_mul(cx_sin(z * CX_PI), cx_gamma_core(vec2<f32>(1.0, 0.0) - z)));
    } else {
        g = cx_gamma_core(z);
    }
    if (abs(g.y) < 1e-7) {
        g = vec2<f32>(g.x, 0.0);
    }
    return g;
}
`

// shadeHelpers are the color-space helpers shared by the hue and domain
// coloring modes. Emitted unconditionally alongside the runtime.
const shadeHelpers = `
// hue_wrap folds a hue angle in degrees into [0, 360).
fn hue_wrap(h: f32) -> f32 {
    return fract(h / 360.0) * 360.0;
}

// hsl2rgb converts a hue at full saturation and 50% lightness to RGB.
fn hsl2rgb(hue: f32) -> vec3<f32> {
    let h = hue / 60.0;
    let x = 1.0 - abs(h % 2.0 - 1.0);
    var rgb = vec3<f32>(0.0, 0.0, 0.0);
    if (h < 1.0) {
        rgb = vec3<f32>(1.0, x, 0.0);
    } else if (h < 2.0) {
        rgb = vec3<f32>(x, 1.0, 0.0);
    } else if (h < 3.0) {
        rgb = vec3<f32>(0.0, 1.0, x);
    } else if (h < 4.0) {
        rgb = vec3<f32>(0.0, x, 1.0);
    } else if (h < 5.0) {
        rgb = vec3<f32>(x, 0.0, 1.0);
    } else {
        rgb = vec3<f32>(1.0, 0.0, x);
    }
    return rgb;
}
`
