// Package poly provides the dense univariate polynomial arithmetic, domain
// evaluation (FFT when the domain size is a power of two, direct evaluation
// otherwise), multi-scalar multiplication and the "mostly-zero"
// interpolator that the KZG, Lagrange-preprocessing and decryption-
// aggregation layers build on (spec.md §2.2).
package poly

import (
	"github.com/anepoti71/silent-threshold-encryption/curve"
)

// Polynomial is a dense univariate polynomial over F, stored lowest-degree
// coefficient first, mirroring ark_poly's DensePolynomial used throughout
// original_source.
type Polynomial struct {
	Coeffs []curve.Scalar
}

// New wraps a coefficient slice. The slice is not copied.
func New(coeffs []curve.Scalar) Polynomial {
	return Polynomial{Coeffs: coeffs}
}

// Zero returns the zero polynomial.
func Zero() Polynomial {
	return Polynomial{Coeffs: []curve.Scalar{}}
}

// Degree returns the highest power with a non-zero coefficient, or -1 for
// the zero polynomial.
func (p Polynomial) Degree() int {
	return len(p.trimmed().Coeffs) - 1
}

// trimmed drops trailing zero coefficients.
func (p Polynomial) trimmed() Polynomial {
	n := len(p.Coeffs)
	for n > 0 && p.Coeffs[n-1].IsZero() {
		n--
	}
	return Polynomial{Coeffs: p.Coeffs[:n]}
}

// Evaluate computes p(z) via Horner's method.
func (p Polynomial) Evaluate(z curve.Scalar) curve.Scalar {
	var result curve.Scalar
	for i := len(p.Coeffs) - 1; i >= 0; i-- {
		result.Mul(&result, &z)
		result.Add(&result, &p.Coeffs[i])
	}
	return result
}

// Clone returns a deep copy.
func (p Polynomial) Clone() Polynomial {
	c := make([]curve.Scalar, len(p.Coeffs))
	copy(c, p.Coeffs)
	return Polynomial{Coeffs: c}
}

// Scale returns c*p.
func (p Polynomial) Scale(c curve.Scalar) Polynomial {
	out := make([]curve.Scalar, len(p.Coeffs))
	for i := range p.Coeffs {
		out[i].Mul(&p.Coeffs[i], &c)
	}
	return Polynomial{Coeffs: out}
}

// Add returns p+q.
func (p Polynomial) Add(q Polynomial) Polynomial {
	n := len(p.Coeffs)
	if len(q.Coeffs) > n {
		n = len(q.Coeffs)
	}
	out := make([]curve.Scalar, n)
	for i := 0; i < n; i++ {
		var a, b curve.Scalar
		if i < len(p.Coeffs) {
			a = p.Coeffs[i]
		}
		if i < len(q.Coeffs) {
			b = q.Coeffs[i]
		}
		out[i].Add(&a, &b)
	}
	return Polynomial{Coeffs: out}
}

// Sub returns p-q.
func (p Polynomial) Sub(q Polynomial) Polynomial {
	n := len(p.Coeffs)
	if len(q.Coeffs) > n {
		n = len(q.Coeffs)
	}
	out := make([]curve.Scalar, n)
	for i := 0; i < n; i++ {
		var a, b curve.Scalar
		if i < len(p.Coeffs) {
			a = p.Coeffs[i]
		}
		if i < len(q.Coeffs) {
			b = q.Coeffs[i]
		}
		out[i].Sub(&a, &b)
	}
	return Polynomial{Coeffs: out}
}

// Mul returns the naive (schoolbook) product p*q. Used only for small
// polynomials (Lagrange-basis construction, mostly-zero interpolation); the
// KZG and Lagrange-preprocessing hot paths never multiply two dense
// polynomials of committee size.
func (p Polynomial) Mul(q Polynomial) Polynomial {
	if len(p.Coeffs) == 0 || len(q.Coeffs) == 0 {
		return Zero()
	}
	out := make([]curve.Scalar, len(p.Coeffs)+len(q.Coeffs)-1)
	var tmp curve.Scalar
	for i, a := range p.Coeffs {
		if a.IsZero() {
			continue
		}
		for j, b := range q.Coeffs {
			tmp.Mul(&a, &b)
			out[i+j].Add(&out[i+j], &tmp)
		}
	}
	return Polynomial{Coeffs: out}
}

// DivideBy performs schoolbook polynomial long division, returning the
// quotient and remainder of p / divisor. Domain.DivideByVanishing uses it on
// a non-power-of-two domain; on a power-of-two domain DivideByVanishing uses
// the much cheaper X^n-1 reduction instead.
func (p Polynomial) DivideBy(divisor Polynomial) (quotient, remainder Polynomial) {
	divisor = divisor.trimmed()
	if len(divisor.Coeffs) == 0 {
		panic("poly: division by zero polynomial")
	}
	divDeg := len(divisor.Coeffs) - 1
	var leadInv curve.Scalar
	leadInv.Inverse(&divisor.Coeffs[divDeg])

	remainder = p.Clone().trimmed()
	remDeg := remainder.Degree()
	if remDeg < divDeg {
		return Zero(), remainder
	}
	qCoeffs := make([]curve.Scalar, remDeg-divDeg+1)

	for {
		remainder = remainder.trimmed()
		remDeg = remainder.Degree()
		if remDeg < divDeg {
			break
		}
		var coeff curve.Scalar
		coeff.Mul(&remainder.Coeffs[remDeg], &leadInv)
		qCoeffs[remDeg-divDeg] = coeff

		shifted := make([]curve.Scalar, remDeg+1)
		for i, c := range divisor.Coeffs {
			var tmp curve.Scalar
			tmp.Mul(&c, &coeff)
			shifted[i+remDeg-divDeg] = tmp
		}
		remainder = remainder.Sub(Polynomial{Coeffs: shifted})
	}
	return Polynomial{Coeffs: qCoeffs}, remainder
}

// DivideByLinear divides p by (X - root) exactly, returning the quotient.
// Callers (KZG opening, the b(X)/(X-domain[0]) step of decryption
// aggregation) are required by the scheme's invariants to only call this
// when root is in fact a root of p; the remainder is discarded rather than
// checked, matching original_source's use of ark_poly's Div.
func (p Polynomial) DivideByLinear(root curve.Scalar) Polynomial {
	n := len(p.Coeffs)
	if n == 0 {
		return Zero()
	}
	quotient := make([]curve.Scalar, n-1)
	var remainder curve.Scalar
	remainder = p.Coeffs[n-1]
	for i := n - 2; i >= 0; i-- {
		quotient[i] = remainder
		var tmp curve.Scalar
		tmp.Mul(&remainder, &root)
		remainder.Add(&p.Coeffs[i], &tmp)
	}
	return Polynomial{Coeffs: quotient}
}

