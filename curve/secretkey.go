package curve

import (
	"io"

	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
)

// SecretKey holds a single party's scalar secret. It follows the
// scoped-resource discipline spec.md §5 describes: the backing scalar is
// overwritten on Zeroize, and callers must not retain copies of the value
// returned by Expose past that call.
//
// Go has no destructors, so unlike original_source/src/security.rs's
// ZeroizeOnDrop wrapper, Zeroize must be called explicitly — documented
// here rather than enforced by the type system (spec.md §9(b)).
type SecretKey struct {
	sk Scalar
}

// NewSecretKey samples a fresh non-zero secret from rng.
func NewSecretKey(rng io.Reader) (*SecretKey, error) {
	sk, err := RandomNonZeroScalar(rng)
	if err != nil {
		return nil, err
	}
	return &SecretKey{sk: sk}, nil
}

// Nullify sets sk = 1. This is used exclusively to build party 0's secret,
// the algebraic "dummy party" the scheme requires in every committee
// (spec.md §9, "Dummy party 0").
func (sk *SecretKey) Nullify() {
	sk.sk.SetOne()
}

// Expose returns the underlying scalar. Callers must not retain the
// returned value past a subsequent Zeroize.
func (sk *SecretKey) Expose() Scalar {
	return sk.sk
}

// Zeroize overwrites the secret's backing limbs with zero. Best-effort: the
// Go runtime is free to have made other copies via escape analysis or GC
// moves before this call, so this is not a hard memory-safety guarantee,
// only the standard mitigation also used by original_source's Zeroize impl.
func (sk *SecretKey) Zeroize() {
	for i := range sk.sk {
		sk.sk[i] = 0
	}
}

// ConstantTimeEqualScalar compares two scalars in constant time.
func ConstantTimeEqualScalar(a, b Scalar) bool {
	var diff fr.Element
	diff.Sub(&a, &b)
	return diff.IsZero()
}

// ConstantTimeEqualG1 compares two G1 points in constant time by comparing
// their canonical compressed encodings byte-for-byte with no early exit.
func ConstantTimeEqualG1(a, b G1) bool {
	ab, bb := a.Bytes(), b.Bytes()
	return constantTimeCompare(ab[:], bb[:])
}

// ConstantTimeEqualG2 compares two G2 points in constant time.
func ConstantTimeEqualG2(a, b G2) bool {
	ab, bb := a.Bytes(), b.Bytes()
	return constantTimeCompare(ab[:], bb[:])
}

func constantTimeCompare(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	var v byte
	for i := range a {
		v |= a[i] ^ b[i]
	}
	return v == 0
}

// ConstantTimeEqualGT compares two target-group elements in constant time.
// agg_dec's caller uses this to compare the recovered key against
// ct.EncKey without leaking timing information about where they first
// differ (spec.md §5, "explicit constant-time comparators offered").
func ConstantTimeEqualGT(a, b GT) bool {
	ab, bb := a.Bytes(), b.Bytes()
	return constantTimeCompare(ab[:], bb[:])
}
