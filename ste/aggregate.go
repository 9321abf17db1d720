package ste

import (
	"fmt"

	"github.com/anepoti71/silent-threshold-encryption/curve"
	"github.com/anepoti71/silent-threshold-encryption/kzg"
	"github.com/anepoti71/silent-threshold-encryption/poly"
)

// AggregateKey folds n parties' PublicKeys into the single object Encrypt
// and AggDec need: the summed BLS public key hint (ASK), the domain's
// vanishing-polynomial commitment in G2 (ZG2), and e(g,h) cached once
// (spec.md §3, §4.4).
type AggregateKey struct {
	PK          []PublicKey
	AggSkLiLjZ  []curve.G1
	ASK         curve.G1
	ZG2         curve.G2
	HMinus1     curve.G2
	EGH         curve.GT
}

// NewAggregateKey builds an AggregateKey from every committee member's
// PublicKey. n = len(pk) need not be a power of two for aggregation itself;
// Encrypt and AggDec separately require whichever n their own domain
// operations need.
func NewAggregateKey(pk []PublicKey, params *kzg.UniversalParams) (*AggregateKey, error) {
	n := len(pk)
	if n == 0 {
		return nil, fmt.Errorf("%w: pk must not be empty", ErrInvalidParameter)
	}
	if n > len(params.PowersOfH) {
		return nil, fmt.Errorf("%w: n (%d) exceeds KZG parameters length (%d)", ErrInvalidParameter, n, len(params.PowersOfH))
	}
	if err := checkWellFormed(pk, n); err != nil {
		return nil, err
	}

	var minusOne curve.Scalar
	minusOne.SetOne()
	minusOne.Neg(&minusOne)
	hMinus1 := poly.ScalarMulG2(params.PowersOfH[0], minusOne)
	zG2 := poly.AddG2(params.PowersOfH[n], hMinus1)

	var ask curve.G1
	for i := range pk {
		ask = poly.AddG1(ask, pk[i].SkLi)
	}

	aggSkLiLjZ := make([]curve.G1, n)
	for i := 0; i < n; i++ {
		var sum curve.G1
		for j := range pk {
			sum = poly.AddG1(sum, pk[j].SkLiLjZ[i])
		}
		aggSkLiLjZ[i] = sum
	}

	egh, err := curve.Pairing(params.PowersOfG[0], params.PowersOfH[0])
	if err != nil {
		return nil, err
	}

	return &AggregateKey{
		PK:         pk,
		AggSkLiLjZ: aggSkLiLjZ,
		ASK:        ask,
		ZG2:        zG2,
		HMinus1:    hMinus1,
		EGH:        egh,
	}, nil
}

// checkWellFormed verifies pk's ids form a permutation of [0,n) with
// exactly one PublicKey per id, and that the dummy party's (id 0) bls_pk
// carries the forced-secret-key-1 invariant BatchKeyGen/GetPK enforce
// (spec.md §4.4: "one PublicKey per id ∈ [0,n), with pk[0].bls_pk = h" —
// h is this module's generator of the group bls_pk lives in, curve.G()).
func checkWellFormed(pk []PublicKey, n int) error {
	seen := make([]bool, n)
	for i := range pk {
		id := pk[i].ID
		if id < 0 || id >= n {
			return fmt.Errorf("%w: public key id %d out of range [0,%d)", ErrMalformedInput, id, n)
		}
		if seen[id] {
			return fmt.Errorf("%w: duplicate public key id %d", ErrMalformedInput, id)
		}
		seen[id] = true
	}

	for i := range pk {
		if pk[i].ID != 0 {
			continue
		}
		if !curve.ConstantTimeEqualG1(pk[i].BlsPK, curve.G()) {
			return fmt.Errorf("%w: party 0's bls_pk must be the generator (dummy party invariant)", ErrMalformedInput)
		}
	}
	return nil
}
