package poly

import (
	"github.com/anepoti71/silent-threshold-encryption/curve"
)

// BasisPolynomial returns L_i(X), the degree-(n-1) Lagrange basis
// polynomial over d's domain that is 1 at d.Element(i) and 0 at every other
// domain point (spec.md §4.2).
//
// This is the O(n^2) construction — interpolating from the unit basis
// vector — used by the non-amortized key-derivation path (ste.GetPK) and
// as ground truth in tests against the amortized lagrange.Powers path.
func BasisPolynomial(d *Domain, i int) Polynomial {
	n := d.Size()
	evals := make([]curve.Scalar, n)
	evals[i].SetOne()
	return Interpolate(d, evals)
}

// Interpolate returns the unique degree-(<n) polynomial agreeing with
// evals at every domain point, via direct Lagrange-basis summation. O(n^2)
// per non-zero evaluation, so O(n^3) when every evaluation is non-zero.
func Interpolate(d *Domain, evals []curve.Scalar) Polynomial {
	n := d.Size()
	points := d.Elements()
	result := Zero()
	for i := 0; i < n; i++ {
		if evals[i].IsZero() {
			continue
		}
		basis := Polynomial{Coeffs: []curve.Scalar{scalarOneOf()}}
		var denom curve.Scalar
		denom.SetOne()
		for j := 0; j < n; j++ {
			if j == i {
				continue
			}
			var negXj curve.Scalar
			negXj.Neg(&points[j])
			basis = basis.Mul(Polynomial{Coeffs: []curve.Scalar{negXj, scalarOneOf()}})
			var diff curve.Scalar
			diff.Sub(&points[i], &points[j])
			denom.Mul(&denom, &diff)
		}
		denom.Inverse(&denom)
		var scale curve.Scalar
		scale.Mul(&evals[i], &denom)
		result = result.Add(basis.Scale(scale))
	}
	return result
}

// InterpMostlyZero interpolates the polynomial that evaluates to eval at
// points[0] and zero at points[1:], in O(len(points)^2) rather than the
// general Interpolate above — spec.md §4.7's "mostly-zero interpolation",
// ported directly from original_source/src/utils.rs::interp_mostly_zero.
//
// points need not be domain elements; decryption aggregation calls this
// with domain point 0 followed by the unselected committee members' domain
// points.
func InterpMostlyZero(eval curve.Scalar, points []curve.Scalar) Polynomial {
	if len(points) == 0 {
		return Polynomial{Coeffs: []curve.Scalar{scalarOneOf()}}
	}

	interp := Polynomial{Coeffs: []curve.Scalar{scalarOneOf()}}
	for _, point := range points[1:] {
		var negPoint curve.Scalar
		negPoint.Neg(&point)
		interp = interp.Mul(Polynomial{Coeffs: []curve.Scalar{negPoint, scalarOneOf()}})
	}

	scaleDenom := interp.Evaluate(points[0])
	var scaleDenomInv curve.Scalar
	scaleDenomInv.Inverse(&scaleDenom)
	var scale curve.Scalar
	scale.Mul(&eval, &scaleDenomInv)

	return interp.Scale(scale)
}
