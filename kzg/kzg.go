// Package kzg implements the trusted-setup and KZG10 commitment layer
// spec.md §4.1 describes: powers-of-tau generation (single ceremony or
// multi-party contribute/verify/finalize), polynomial commitment, and
// opening-at-a-point. This is the foundation every other package in this
// module (lagrange, ste) commits against.
package kzg

import (
	"errors"
	"fmt"
	"runtime"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"

	"github.com/anepoti71/silent-threshold-encryption/curve"
	"github.com/anepoti71/silent-threshold-encryption/poly"
)

// ErrInvalidParameter reports a structurally invalid request (a polynomial
// of degree above D, tau == 0, a non-positive degree).
var ErrInvalidParameter = errors.New("kzg: invalid parameter")

// UniversalParams holds the powers of tau: {g*tau^i} and {h*tau^i} for
// i in [0, D], the output of setup() in spec.md §4.1.
type UniversalParams struct {
	PowersOfG []curve.G1
	PowersOfH []curve.G2

	// H and BetaH cache powers_of_h[0] and powers_of_h[1] respectively,
	// avoiding a slice index at every call site that only needs h or h^tau
	// (Encrypt and VerifyOpen both do).
	H     curve.G2
	BetaH curve.G2
}

// Setup runs a single-party trusted setup: powers of tau for a known
// secret tau, up to degree maxDegree. spec.md §4.1 reserves this for tests
// only ("A single-party setup is offered for tests only") — production
// parameters must come from the Ceremony below.
func Setup(maxDegree int, tau curve.Scalar) (*UniversalParams, error) {
	if maxDegree < 1 {
		return nil, fmt.Errorf("%w: max degree must be at least 1, got %d", ErrInvalidParameter, maxDegree)
	}
	if tau.IsZero() {
		return nil, fmt.Errorf("%w: %w: tau must be non-zero", ErrInvalidParameter, curve.ErrZeroScalar)
	}

	powersOfTau := make([]curve.Scalar, maxDegree+1)
	powersOfTau[0].SetOne()
	for i := 1; i <= maxDegree; i++ {
		powersOfTau[i].Mul(&powersOfTau[i-1], &tau)
	}

	g, h := curve.G(), curve.H()
	powersOfG := batchScalarMulG1(g, powersOfTau)
	powersOfH := batchScalarMulG2(h, powersOfTau)

	return &UniversalParams{
		PowersOfG: powersOfG,
		PowersOfH: powersOfH,
		H:         powersOfH[0],
		BetaH:     powersOfH[1],
	}, nil
}

func batchScalarMulG1(base curve.G1, scalars []curve.Scalar) []curve.G1 {
	out := make([]curve.G1, len(scalars))
	results := bls12381.BatchScalarMultiplicationG1(&base, scalars)
	copy(out, results)
	return out
}

func batchScalarMulG2(base curve.G2, scalars []curve.Scalar) []curve.G2 {
	// gnark-crypto does not expose a batched G2 scalar-multiplication
	// helper the way it does for G1 (BatchScalarMultiplicationG1 exists
	// because G1 is the MSM-heavy side of the protocol); parallelize by
	// hand over the available cores instead.
	out := make([]curve.G2, len(scalars))
	n := len(scalars)
	workers := runtime.NumCPU()
	if workers > n {
		workers = n
	}
	if workers <= 1 {
		for i, s := range scalars {
			out[i] = poly.ScalarMulG2(base, s)
		}
		return out
	}
	chunk := (n + workers - 1) / workers
	done := make(chan struct{}, workers)
	for w := 0; w < workers; w++ {
		start, end := w*chunk, (w+1)*chunk
		if end > n {
			end = n
		}
		go func(start, end int) {
			for i := start; i < end; i++ {
				out[i] = poly.ScalarMulG2(base, scalars[i])
			}
			done <- struct{}{}
		}(start, end)
	}
	for w := 0; w < workers; w++ {
		<-done
	}
	return out
}

// Commit computes the KZG commitment to p in G1: sum_i p.Coeffs[i] * g*tau^i.
func Commit(params *UniversalParams, p poly.Polynomial) (curve.G1, error) {
	if len(p.Coeffs) > len(params.PowersOfG) {
		return curve.G1{}, fmt.Errorf("%w: polynomial degree %d exceeds SRS degree %d", ErrInvalidParameter, len(p.Coeffs)-1, len(params.PowersOfG)-1)
	}
	return poly.MSMG1(params.PowersOfG[:len(p.Coeffs)], p.Coeffs)
}

// CommitG2 is Commit's G2 counterpart, used by decryption aggregation to
// commit to the "mostly zero" selector polynomial B(X) in G2
// (spec.md §4.7 step 2).
func CommitG2(params *UniversalParams, p poly.Polynomial) (curve.G2, error) {
	if len(p.Coeffs) > len(params.PowersOfH) {
		return curve.G2{}, fmt.Errorf("%w: polynomial degree %d exceeds SRS degree %d", ErrInvalidParameter, len(p.Coeffs)-1, len(params.PowersOfH)-1)
	}
	return poly.MSMG2(params.PowersOfH[:len(p.Coeffs)], p.Coeffs)
}

// Witness is a KZG opening proof: the commitment to the quotient
// (P(X)-P(z))/(X-z).
type Witness struct {
	W curve.G1
}

// Open computes a witness that p(z) equals the returned value, for the
// preprocessing correctness checks of spec.md §4.1 ("Opening is not used by
// the main protocol, only by preprocessing correctness checks").
func Open(params *UniversalParams, p poly.Polynomial, z curve.Scalar) (Witness, curve.Scalar, error) {
	value := p.Evaluate(z)
	shifted := p.Clone()
	if len(shifted.Coeffs) == 0 {
		shifted.Coeffs = []curve.Scalar{curveScalarZero()}
	}
	shifted.Coeffs[0].Sub(&shifted.Coeffs[0], &value)
	quotient := shifted.DivideByLinear(z)
	w, err := Commit(params, quotient)
	if err != nil {
		return Witness{}, curve.Scalar{}, err
	}
	return Witness{W: w}, value, nil
}

// VerifyOpen checks a KZG opening: e(commitment - value*g, h) ==
// e(witness, beta_h - z*h).
func VerifyOpen(params *UniversalParams, commitment curve.G1, z, value curve.Scalar, w Witness) (bool, error) {
	g := curve.G()
	valueG := poly.ScalarMulG1(g, value)
	lhsPoint := poly.SubG1(commitment, valueG)

	zH := poly.ScalarMulG2(params.H, z)
	rhsPoint := poly.SubG2(params.BetaH, zH)

	lhs, err := curve.Pairing(lhsPoint, params.H)
	if err != nil {
		return false, err
	}
	rhs, err := curve.Pairing(w.W, rhsPoint)
	if err != nil {
		return false, err
	}
	return lhs.Equal(&rhs), nil
}

func curveScalarZero() curve.Scalar {
	var z curve.Scalar
	return z
}
