package ste

import (
	"fmt"
	"io"

	"github.com/anepoti71/silent-threshold-encryption/curve"
	"github.com/anepoti71/silent-threshold-encryption/kzg"
	"github.com/anepoti71/silent-threshold-encryption/poly"
)

// sa1Size and sa2Size are the ciphertext's fixed proof-element counts,
// the slots AggDec pairs against in its multi-pairing (spec.md §4.7).
const (
	sa1Size                = 2
	sa2Size                = 6
	encryptionRandomnessN  = 5
)

// Ciphertext is a silent threshold encryption ciphertext: the encrypted
// symmetric key plus the proof elements AggDec needs to recover it from t+1
// partial decryptions (spec.md §3). It carries no standalone "x" field
// beyond sa1/sa2 themselves — see SPEC_FULL.md §9(a).
type Ciphertext struct {
	GammaG2 curve.G2
	SA1     [sa1Size]curve.G1
	SA2     [sa2Size]curve.G2
	EncKey  curve.GT
	T       int
}

// Encrypt produces a ciphertext for threshold t against ak: t+1 parties
// (including the always-selected dummy party 0) are required to recover
// EncKey via AggDec. t must be in [1, n-1] and t+1 must not exceed the KZG
// parameters' degree (spec.md §4.4).
func Encrypt(rng io.Reader, ak *AggregateKey, t int, params *kzg.UniversalParams) (*Ciphertext, error) {
	n := len(ak.PK)
	if n == 0 {
		return nil, fmt.Errorf("%w: aggregate key has no parties", ErrInvalidParameter)
	}
	if t < 1 {
		return nil, fmt.Errorf("%w: threshold must be at least 1, got %d", ErrInvalidParameter, t)
	}
	if t >= n {
		return nil, fmt.Errorf("%w: threshold (%d) must be < number of parties (%d)", ErrInvalidParameter, t, n)
	}
	if t+1 >= len(params.PowersOfG) {
		return nil, fmt.Errorf("%w: t+1 (%d) exceeds KZG parameters length (%d)", ErrInvalidParameter, t+1, len(params.PowersOfG))
	}

	gamma, err := curve.RandomNonZeroScalar(rng)
	if err != nil {
		return nil, err
	}
	gammaG2 := poly.ScalarMulG2(params.H, gamma)

	g, h := curve.G(), params.H

	var s [encryptionRandomnessN]curve.Scalar
	for i := range s {
		s[i], err = curve.RandomScalar(rng)
		if err != nil {
			return nil, err
		}
	}

	// sa1[0] = s0*ask + s3*g^{tau^{t+1}} + s4*g
	sa1_0 := poly.AddG1(
		poly.AddG1(poly.ScalarMulG1(ak.ASK, s[0]), poly.ScalarMulG1(params.PowersOfG[t+1], s[3])),
		poly.ScalarMulG1(g, s[4]),
	)
	// sa1[1] = s2*g
	sa1_1 := poly.ScalarMulG1(g, s[2])

	// sa2[0] = s0*h + s2*gamma_g2
	sa2_0 := poly.AddG2(poly.ScalarMulG2(h, s[0]), poly.ScalarMulG2(gammaG2, s[2]))
	// sa2[1] = s0*z_g2
	sa2_1 := poly.ScalarMulG2(ak.ZG2, s[0])
	// sa2[2] = (s0+s1)*h^tau
	var s0PlusS1 curve.Scalar
	s0PlusS1.Add(&s[0], &s[1])
	sa2_2 := poly.ScalarMulG2(params.PowersOfH[1], s0PlusS1)
	// sa2[3] = s1*h
	sa2_3 := poly.ScalarMulG2(h, s[1])
	// sa2[4] = s3*h
	sa2_4 := poly.ScalarMulG2(h, s[3])
	// sa2[5] = s4*(h^tau - h)
	sa2_5 := poly.ScalarMulG2(poly.AddG2(params.PowersOfH[1], ak.HMinus1), s[4])

	encKey := gtScaleBy(ak.EGH, s[4])

	return &Ciphertext{
		GammaG2: gammaG2,
		SA1:     [sa1Size]curve.G1{sa1_0, sa1_1},
		SA2:     [sa2Size]curve.G2{sa2_0, sa2_1, sa2_2, sa2_3, sa2_4, sa2_5},
		EncKey:  encKey,
		T:       t,
	}, nil
}

// gtScaleBy raises a target-group element to a scalar power: v^s, mirroring
// PairingOutput's additive-notation scalar Mul in original_source (target
// group scalar multiplication is exponentiation under gnark-crypto's
// multiplicative GT API).
func gtScaleBy(v curve.GT, s curve.Scalar) curve.GT {
	sBig := scalarToBigInt(s)
	var out curve.GT
	out.Exp(v, sBig)
	return out
}
