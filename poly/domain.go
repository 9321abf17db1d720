package poly

import (
	"fmt"
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr/fft"

	"github.com/anepoti71/silent-threshold-encryption/curve"
)

// Domain is the committee's evaluation domain: n points {x_0, ..., x_{n-1}}
// over which the Lagrange basis L_i is defined.
//
// When n is a power of two, the domain is the group of n-th roots of unity
// and FFT/FFTInverse run in O(n log n); spec.md §4.2/§9 calls this out
// explicitly as the fast path. For other n there is no guarantee a
// subgroup of exactly that order exists in F, so the fallback domain is the
// n arbitrary points {1, 2, ..., n}, the same style of arbitrary evaluation
// points original_source's lagrangeCoefficient-equivalent teacher routine
// (HTseaat-ad-mpc-pp's lagrangeCoefficient(xs, x, commonset)) already
// assumes — just generalized here to commitment openings rather than plain
// secret-share reconstruction. Lagrange interpolation is identical either
// way; only which O(n log n) shortcuts are available changes.
type Domain struct {
	n        int
	powerOf2 bool
	fftDom   *fft.Domain  // non-nil iff powerOf2
	points   []curve.Scalar // populated iff !powerOf2
}

// NewDomain builds the evaluation domain for a committee of size n.
func NewDomain(n int) (*Domain, error) {
	if n <= 0 {
		return nil, fmt.Errorf("poly: domain size must be positive, got %d", n)
	}
	if curve.IsPowerOfTwo(n) {
		return &Domain{n: n, powerOf2: true, fftDom: fft.NewDomain(uint64(n))}, nil
	}
	points := make([]curve.Scalar, n)
	for i := 0; i < n; i++ {
		points[i].SetInt64(int64(i + 1))
	}
	return &Domain{n: n, powerOf2: false, points: points}, nil
}

// Size returns n.
func (d *Domain) Size() int { return d.n }

// IsPowerOfTwo reports whether the FFT path is active.
func (d *Domain) IsPowerOfTwo() bool { return d.powerOf2 }

// Element returns the i-th domain point: omega^i on the FFT path, i+1 on
// the fallback path.
func (d *Domain) Element(i int) curve.Scalar {
	if d.powerOf2 {
		var e curve.Scalar
		e.Exp(d.fftDom.Generator, big.NewInt(int64(i)))
		return e
	}
	return d.points[i]
}

// Elements returns every domain point, 0-indexed.
func (d *Domain) Elements() []curve.Scalar {
	out := make([]curve.Scalar, d.n)
	for i := range out {
		out[i] = d.Element(i)
	}
	return out
}

// Vanishing returns Z(X) = prod_i (X - x_i), the domain's vanishing
// polynomial. On the FFT path this is X^n - 1; the fallback path builds it
// by repeated multiplication, acceptable since n is small there
// (spec.md §4.2: "n is typically small (≤1024 is the benchmark ceiling)").
func (d *Domain) Vanishing() Polynomial {
	if d.powerOf2 {
		coeffs := make([]curve.Scalar, d.n+1)
		coeffs[0].SetOne()
		coeffs[0].Neg(&coeffs[0])
		coeffs[d.n].SetOne()
		return Polynomial{Coeffs: coeffs}
	}
	z := Polynomial{Coeffs: []curve.Scalar{scalarOneOf()}}
	for _, x := range d.points {
		neg := x
		neg.Neg(&neg)
		z = z.Mul(Polynomial{Coeffs: []curve.Scalar{neg, scalarOneOf()}})
	}
	return z
}

// FFT evaluates the polynomial with coefficients a at every domain point,
// in place, using the radix-2 FFT when the domain is power-of-two sized.
// Panics if called on a non-power-of-two domain; callers must check
// IsPowerOfTwo first (the fallback path evaluates pointwise instead, via
// Polynomial.Evaluate, which needs no special entry point).
func (d *Domain) FFT(a []curve.Scalar) []curve.Scalar {
	if !d.powerOf2 {
		panic("poly: FFT called on non-power-of-two domain")
	}
	buf := make([]curve.Scalar, d.n)
	copy(buf, a)
	d.fftDom.FFT(buf, fft.DIF)
	fft.BitReverse(buf)
	return buf
}

// IFFT interpolates the domain-evaluations a back into coefficient form.
func (d *Domain) IFFT(a []curve.Scalar) []curve.Scalar {
	if !d.powerOf2 {
		panic("poly: IFFT called on non-power-of-two domain")
	}
	buf := make([]curve.Scalar, d.n)
	copy(buf, a)
	fft.BitReverse(buf)
	d.fftDom.FFTInverse(buf, fft.DIT)
	return buf
}

// DivideByVanishing returns num / Z(X), the domain's vanishing polynomial,
// discarding the remainder. Callers are required by the scheme's algebraic
// invariants to only call this on numerators that vanish at every domain
// point (ste.GetPK's li*lj and li^2-li cross terms always do); the remainder
// is not checked, matching original_source's direct use of
// divide_by_vanishing_poly(domain).0.
//
// On the power-of-two path this runs in O(n) via the X^n-1 reduction trick
// instead of O(n^2) schoolbook division.
func (d *Domain) DivideByVanishing(num Polynomial) Polynomial {
	if !d.powerOf2 {
		q, _ := num.DivideBy(d.Vanishing())
		return q
	}
	c := make([]curve.Scalar, len(num.trimmed().Coeffs))
	copy(c, num.trimmed().Coeffs)
	degNum := len(c) - 1
	if degNum < d.n {
		return Zero()
	}
	quotient := make([]curve.Scalar, degNum-d.n+1)
	for i := degNum; i >= d.n; i-- {
		coeff := c[i]
		quotient[i-d.n] = coeff
		c[i-d.n].Add(&c[i-d.n], &coeff)
	}
	return Polynomial{Coeffs: quotient}
}

func scalarOneOf() curve.Scalar {
	var o curve.Scalar
	o.SetOne()
	return o
}
