// Package curve pins the type-3 pairing-friendly curve used throughout this
// module to BLS12-381 and exposes the handful of group/field helpers the
// rest of the scheme builds on: generators, the target-group pairing, and a
// random-scalar sampler wired to a caller-supplied RNG.
//
// Everything above this package is polymorphic only in the sense that it
// never reaches into gnark-crypto's curve internals directly; the choice of
// curve is a compile-time fact of this package, not a config value, exactly
// as spec.md's "[global behavior] is compile-time" design note requires.
package curve

import (
	"errors"
	"io"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
)

// G1, G2 and GT re-export the curve's affine point and target-group types so
// downstream packages only need to import curve.
type (
	G1 = bls12381.G1Affine
	G2 = bls12381.G2Affine
	GT = bls12381.GT
)

// Scalar is the scheme's scalar field, F = Z_r.
type Scalar = fr.Element

// ErrZeroScalar is wrapped into the error kzg.Setup and lagrange.NewPowers
// return when the caller-supplied tau is zero (spec.md §9(c): tau must
// never be allowed to silently rely on an inverse of zero failing).
// Secret keys and ceremony contributions never reach this check because
// RandomNonZeroScalar resamples zero away before it can surface as an
// error.
var ErrZeroScalar = errors.New("curve: scalar must be non-zero")

// G and H are the fixed G1/G2 generators g and h from spec.md's data model.
func G() G1 {
	_, _, g1, _ := bls12381.Generators()
	return g1
}

// H returns the fixed G2 generator h.
func H() G2 {
	_, _, _, g2 := bls12381.Generators()
	return g2
}

// Pairing computes e(p, q).
func Pairing(p G1, q G2) (GT, error) {
	return bls12381.Pair([]G1{p}, []G2{q})
}

// MultiPairing computes the product ∏ e(p[i], q[i]) using a single combined
// Miller loop followed by one final exponentiation, as spec.md §4.7
// requires ("an optimized multi-pairing ... applied once").
func MultiPairing(p []G1, q []G2) (GT, error) {
	return bls12381.Pair(p, q)
}

// RandomScalar samples a uniformly random element of F by drawing bytes from
// rng and reducing modulo r. Unlike fr.Element.SetRandom (which always
// reaches into crypto/rand), this routes through the caller's reader so
// tests can pass a seeded deterministic stream and reproduce a run bit for
// bit, as spec.md §8's fixed-seed scenarios require.
func RandomScalar(rng io.Reader) (Scalar, error) {
	var buf [fr.Bytes]byte
	if _, err := io.ReadFull(rng, buf[:]); err != nil {
		var zero Scalar
		return zero, err
	}
	var s Scalar
	s.SetBytes(buf[:])
	return s, nil
}

// RandomNonZeroScalar is RandomScalar with the zero element resampled away.
// Used for tau and per-party secrets, where a zero scalar would break the
// scheme's algebraic invariants.
func RandomNonZeroScalar(rng io.Reader) (Scalar, error) {
	for {
		s, err := RandomScalar(rng)
		if err != nil {
			return s, err
		}
		if !s.IsZero() {
			return s, nil
		}
	}
}

// IsPowerOfTwo reports whether n is a power of two (n >= 1).
func IsPowerOfTwo(n int) bool {
	return n > 0 && n&(n-1) == 0
}
