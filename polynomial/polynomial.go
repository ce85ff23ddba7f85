// Package polynomial implements polynomial algebra over a field.Field:
// evaluation, addition, multiplication, and Lagrange interpolation.
// Polynomials are immutable values; every operation returns a new one.
package polynomial

import "github.com/rizkytaufiq/rscore/field"

// Polynomial is an ordered sequence of coefficients c_0, c_1, ..., c_d
// representing c_0 + c_1*x + ... + c_d*x^d. The zero polynomial is the
// empty slice; every other polynomial has a nonzero leading coefficient
// (no trailing zeros), so Degree is always len(coeffs)-1.
type Polynomial struct {
	coeffs []byte
}

// New builds a Polynomial from coefficients, lowest degree first,
// trimming any trailing zero coefficients.
func New(coeffs []byte) Polynomial {
	return Polynomial{coeffs: trim(coeffs)}
}

// Zero is the zero polynomial.
var Zero = Polynomial{}

func trim(coeffs []byte) []byte {
	n := len(coeffs)
	for n > 0 && coeffs[n-1] == 0 {
		n--
	}
	out := make([]byte, n)
	copy(out, coeffs[:n])
	return out
}

// Degree returns the polynomial's degree, or -1 for the zero polynomial.
func (p Polynomial) Degree() int {
	return len(p.coeffs) - 1
}

// IsZero reports whether p is the zero polynomial.
func (p Polynomial) IsZero() bool {
	return len(p.coeffs) == 0
}

// Coeffs returns the polynomial's coefficients, lowest degree first. The
// returned slice is a copy; callers may not mutate it into the Polynomial.
func (p Polynomial) Coeffs() []byte {
	out := make([]byte, len(p.coeffs))
	copy(out, p.coeffs)
	return out
}

// Evaluate computes p(x) = sum(c_i * x^i) using field arithmetic
// throughout, via Horner's method.
func (p Polynomial) Evaluate(x byte, f field.Field) byte {
	if p.IsZero() {
		return f.Zero()
	}
	result := p.coeffs[len(p.coeffs)-1]
	for i := len(p.coeffs) - 2; i >= 0; i-- {
		result = f.Add(f.Mul(result, x), p.coeffs[i])
	}
	return result
}

// Add returns p + q, coefficient-wise, trimmed of trailing zeros.
func Add(p, q Polynomial, f field.Field) Polynomial {
	n := len(p.coeffs)
	if len(q.coeffs) > n {
		n = len(q.coeffs)
	}
	out := make([]byte, n)
	for i := 0; i < n; i++ {
		var a, b byte
		if i < len(p.coeffs) {
			a = p.coeffs[i]
		}
		if i < len(q.coeffs) {
			b = q.coeffs[i]
		}
		out[i] = f.Add(a, b)
	}
	return New(out)
}

// Mul returns p * q via the standard convolution of coefficients. If
// either operand is the zero polynomial, the result is zero.
func Mul(p, q Polynomial, f field.Field) Polynomial {
	if p.IsZero() || q.IsZero() {
		return Zero
	}
	out := make([]byte, len(p.coeffs)+len(q.coeffs)-1)
	for i, a := range p.coeffs {
		if a == 0 {
			continue
		}
		for j, b := range q.coeffs {
			out[i+j] = f.Add(out[i+j], f.Mul(a, b))
		}
	}
	return New(out)
}

// Point is one (x, y) sample used to build an interpolating polynomial.
type Point struct {
	X, Y byte
}

// InterpolatePoints returns the unique polynomial of degree < len(points)
// with p(x_i) = y_i for every point, via Lagrange interpolation. Each
// basis term is y_i * prod_{j != i} (x - x_j) / (x_i - x_j), evaluated as
// a polynomial in x with field arithmetic on the coefficients.
//
// points must have distinct x-coordinates and at most 255 entries; a
// duplicate x-coordinate surfaces as a division-by-zero error from f
// (ErrDivideByZero), not a panic.
func InterpolatePoints(points []Point, f field.Field) (Polynomial, error) {
	if len(points) == 0 {
		return Zero, nil
	}

	result := Zero
	for i, pi := range points {
		// basis_i(x) = prod_{j != i} (x - x_j) / (x_i - x_j)
		basis := New([]byte{1})
		denom := f.One()
		for j, pj := range points {
			if i == j {
				continue
			}
			// (x - x_j) == (x + x_j) in GF(2^8).
			term := New([]byte{pj.X, 1})
			basis = Mul(basis, term, f)
			denom = f.Mul(denom, f.Add(pi.X, pj.X))
		}
		denomInv, err := f.Inv(denom)
		if err != nil {
			return Zero, err
		}
		scale := f.Mul(pi.Y, denomInv)
		scaled := scaleCoeffs(basis, scale, f)
		result = Add(result, scaled, f)
	}
	return result, nil
}

func scaleCoeffs(p Polynomial, scale byte, f field.Field) Polynomial {
	out := make([]byte, len(p.coeffs))
	for i, c := range p.coeffs {
		out[i] = f.Mul(c, scale)
	}
	return New(out)
}

// Interpolate is InterpolatePoints with x_i = i (0-based index), a
// convenience for the common case of interpolating a dense sample.
func Interpolate(ys []byte, f field.Field) (Polynomial, error) {
	points := make([]Point, len(ys))
	for i, y := range ys {
		points[i] = Point{X: byte(i), Y: y}
	}
	return InterpolatePoints(points, f)
}
