// Package lagrange preprocesses the KZG-committed Lagrange-basis hints every
// party's PublicKey needs, so that deriving a public key from a secret key
// costs a handful of scalar multiplications instead of n KZG commitments to
// freshly-interpolated polynomials (spec.md §4.2).
//
// NewPowers takes the trusted setup's secret tau directly rather than the
// public parameters: it evaluates each Lagrange basis polynomial at tau in
// the scalar field first, and only lifts the result into G1 at the very end,
// which is what makes the whole computation O(n) (plus the inherently
// quadratic n×n cross-term matrix) instead of committing to n separate
// degree-(n-1) polynomials.
package lagrange

import (
	"errors"
	"fmt"
	"math/big"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"

	"github.com/anepoti71/silent-threshold-encryption/curve"
	"github.com/anepoti71/silent-threshold-encryption/internal/pool"
	"github.com/anepoti71/silent-threshold-encryption/poly"
)

// ErrInvalidParameter reports a structurally invalid request: n <= 0, tau
// zero, or tau landing on a domain point (where a Lagrange basis denominator
// would vanish).
var ErrInvalidParameter = errors.New("lagrange: invalid parameter")

// Powers holds the preprocessed per-party hints, each already lifted to G1.
// ste.LagrangeGetPK scales row i's entries by a single secret key to
// derive that party's PublicKey.
type Powers struct {
	N int

	// Li[i] = g * L_i(tau).
	Li []curve.G1
	// LiMinus0[i] = g * (L_i(tau) - L_i(0)).
	LiMinus0 []curve.G1
	// LiX[i] = g * (L_i(tau) - L_i(0)) / tau.
	LiX []curve.G1
	// LiLjZ[i][j] = g * L_i(tau)*L_j(tau)/Z(tau), or g*(L_i(tau)^2-L_i(tau))/Z(tau)
	// on the diagonal, where Z is the domain's vanishing polynomial.
	LiLjZ [][]curve.G1
}

// NewPowers preprocesses the Lagrange hints for a committee of size n at
// evaluation point tau. n need not be a power of two: when it is, the
// roots-of-unity closed form below runs in O(n) scalar work; otherwise the
// O(n^3) fallback builds and evaluates each basis polynomial, mirroring the
// GeneralEvaluationDomain fallback original_source/src/utils.rs::lagrange_poly
// delegates to for non-power-of-two n.
func NewPowers(tau curve.Scalar, n int) (*Powers, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: n must be at least 1, got %d", ErrInvalidParameter, n)
	}
	if tau.IsZero() {
		return nil, fmt.Errorf("%w: %w: tau must be non-zero", ErrInvalidParameter, curve.ErrZeroScalar)
	}

	domain, err := poly.NewDomain(n)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidParameter, err)
	}

	var liEvals, l0Evals []curve.Scalar
	if domain.IsPowerOfTwo() {
		liEvals, l0Evals, err = closedFormEvals(domain, tau, n)
	} else {
		liEvals, l0Evals, err = naiveEvals(domain, tau, n)
	}
	if err != nil {
		return nil, err
	}

	zEval := domain.Vanishing().Evaluate(tau)
	if zEval.IsZero() {
		return nil, fmt.Errorf("%w: tau is a domain point, Z(tau) is zero", ErrInvalidParameter)
	}
	var zEvalInv curve.Scalar
	zEvalInv.Inverse(&zEval)

	var tauInv curve.Scalar
	tauInv.Inverse(&tau)

	liMinus0Evals := make([]curve.Scalar, n)
	liXEvals := make([]curve.Scalar, n)
	for i := 0; i < n; i++ {
		liMinus0Evals[i].Sub(&liEvals[i], &l0Evals[i])
		liXEvals[i].Mul(&liMinus0Evals[i], &tauInv)
	}

	// The i,j cross-term matrix is the O(n^2) part of this computation; a
	// worker pool spreads its n independent rows across NumCPU goroutines
	// the same way it spreads row i's subsequent G1 lift.
	wp := pool.New(0)
	defer wp.Close()

	rows := wp.Map(n, func(i int) interface{} {
		row := make([]curve.Scalar, n)
		for j := 0; j < n; j++ {
			if i == j {
				var sq curve.Scalar
				sq.Mul(&liEvals[i], &liEvals[i])
				sq.Sub(&sq, &liEvals[i])
				row[j].Mul(&sq, &zEvalInv)
			} else {
				row[j].Mul(&liEvals[i], &liEvals[j])
				row[j].Mul(&row[j], &zEvalInv)
			}
		}
		return row
	})
	liLjZEvals := make([][]curve.Scalar, n)
	for i, r := range rows {
		liLjZEvals[i] = r.([]curve.Scalar)
	}

	g := curve.G()
	li := liftToG1(g, liEvals)
	liMinus0 := liftToG1(g, liMinus0Evals)
	liX := liftToG1(g, liXEvals)
	liftedRows := wp.Map(n, func(i int) interface{} {
		return liftToG1(g, liLjZEvals[i])
	})
	liLjZ := make([][]curve.G1, n)
	for i, r := range liftedRows {
		liLjZ[i] = r.([]curve.G1)
	}

	return &Powers{
		N:        n,
		Li:       li,
		LiMinus0: liMinus0,
		LiX:      liX,
		LiLjZ:    liLjZ,
	}, nil
}

// closedFormEvals computes L_i(tau) and L_i(0) for every i using the
// roots-of-unity identity L_i(X) = (omega^i/n) * (X^n-1)/(X-omega^i), valid
// because the domain is exactly the group of n-th roots of unity. At X=0
// this always evaluates to 1/n regardless of i.
func closedFormEvals(domain *poly.Domain, tau curve.Scalar, n int) ([]curve.Scalar, []curve.Scalar, error) {
	var tauN curve.Scalar
	tauN.Exp(tau, big.NewInt(int64(n)))
	var one curve.Scalar
	one.SetOne()
	var zEval curve.Scalar
	zEval.Sub(&tauN, &one)

	var nScalar, nInv curve.Scalar
	nScalar.SetInt64(int64(n))
	nInv.Inverse(&nScalar)

	omega := domain.Element(1)
	liEvals := make([]curve.Scalar, n)
	l0Evals := make([]curve.Scalar, n)
	var omegaPow curve.Scalar
	omegaPow.SetOne()
	for i := 0; i < n; i++ {
		var diff curve.Scalar
		diff.Sub(&tau, &omegaPow)
		if diff.IsZero() {
			return nil, nil, fmt.Errorf("%w: tau coincides with domain point %d", ErrInvalidParameter, i)
		}
		var diffInv curve.Scalar
		diffInv.Inverse(&diff)

		var li curve.Scalar
		li.Mul(&omegaPow, &zEval)
		li.Mul(&li, &nInv)
		li.Mul(&li, &diffInv)

		liEvals[i] = li
		l0Evals[i] = nInv

		omegaPow.Mul(&omegaPow, &omega)
	}
	return liEvals, l0Evals, nil
}

// naiveEvals evaluates each basis polynomial directly, used when n is not a
// power of two and no roots-of-unity shortcut is available.
func naiveEvals(domain *poly.Domain, tau curve.Scalar, n int) ([]curve.Scalar, []curve.Scalar, error) {
	liEvals := make([]curve.Scalar, n)
	l0Evals := make([]curve.Scalar, n)
	for i := 0; i < n; i++ {
		li := poly.BasisPolynomial(domain, i)
		liEvals[i] = li.Evaluate(tau)
		l0Evals[i] = li.Coeffs[0]
	}
	return liEvals, l0Evals, nil
}

func liftToG1(base curve.G1, scalars []curve.Scalar) []curve.G1 {
	out := make([]curve.G1, len(scalars))
	copy(out, bls12381.BatchScalarMultiplicationG1(&base, scalars))
	return out
}
