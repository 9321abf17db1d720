package ste

import (
	"fmt"

	"github.com/anepoti71/silent-threshold-encryption/curve"
	"github.com/anepoti71/silent-threshold-encryption/kzg"
	"github.com/anepoti71/silent-threshold-encryption/poly"
)

// AggDec aggregates t+1 partial decryptions into a Gt value via a single
// multi-pairing over eight pairs: six derived G1 terms against ct.SA2, and
// ct.SA1 against the G2 commitment to b and the aggregated partials
// (spec.md §4.7). It returns unconditionally once the structural checks
// below pass; it has no way to know the key ct was encrypted under, so it
// cannot itself detect a tampered partial — callers compare the result
// against ct.EncKey themselves.
// partials must have exactly one entry per party; entries for unselected
// parties are ignored and may be the zero value. Exactly t+1 parties
// (including the always-selected dummy party 0) must be selected —
// selecting more makes the bhat-degree check below fail, matching
// original_source/src/decryption.rs::agg_dec.
func AggDec(partials []PartialDecryption, ct *Ciphertext, selector []bool, ak *AggregateKey, params *kzg.UniversalParams) (curve.GT, error) {
	n := len(ak.PK)
	t := ct.T

	if len(partials) != n {
		return curve.GT{}, fmt.Errorf("%w: partial decryptions length (%d) must equal n (%d)", ErrSelectorInvalid, len(partials), n)
	}
	if len(selector) != n {
		return curve.GT{}, fmt.Errorf("%w: selector length (%d) must equal n (%d)", ErrSelectorInvalid, len(selector), n)
	}
	if !curve.IsPowerOfTwo(n) {
		return curve.GT{}, fmt.Errorf("%w: n must be a power of 2, got %d", ErrInvalidParameter, n)
	}
	if len(selector) == 0 || !selector[0] {
		return curve.GT{}, fmt.Errorf("%w: party 0 (dummy party) must always be selected", ErrSelectorInvalid)
	}

	numSelected := 0
	for _, s := range selector {
		if s {
			numSelected++
		}
	}
	if numSelected < t+1 {
		return curve.GT{}, fmt.Errorf("%w: need at least %d parties selected (threshold t=%d), got %d", ErrSelectorInvalid, t+1, t, numSelected)
	}
	if numSelected > n {
		return curve.GT{}, fmt.Errorf("%w: too many parties selected: %d of %d", ErrSelectorInvalid, numSelected, n)
	}

	domain, err := poly.NewDomain(n)
	if err != nil {
		return curve.GT{}, fmt.Errorf("%w: %v", ErrInvalidParameter, err)
	}
	domainElements := domain.Elements()

	points := []curve.Scalar{domainElements[0]}
	var parties []int
	for i := 0; i < n; i++ {
		if selector[i] {
			parties = append(parties, i)
		} else {
			points = append(points, domainElements[i])
		}
	}

	var one curve.Scalar
	one.SetOne()
	b := poly.InterpMostlyZero(one, points)
	bEvals := domain.FFT(b.Coeffs)

	if b.Degree() != len(points)-1 {
		return curve.GT{}, fmt.Errorf("%w: b.Degree() (%d) != len(points)-1 (%d)", ErrSelectorInvalid, b.Degree(), len(points)-1)
	}
	if !curve.ConstantTimeEqualScalar(b.Evaluate(domainElements[0]), one) {
		return curve.GT{}, fmt.Errorf("%w: b(omega^0) != 1", ErrSelectorInvalid)
	}

	bG2, err := kzg.CommitG2(params, b)
	if err != nil {
		return curve.GT{}, err
	}

	bMinus1 := b.Clone()
	bMinus1.Coeffs[0].Sub(&bMinus1.Coeffs[0], &one)
	var zero curve.Scalar
	if !curve.ConstantTimeEqualScalar(bMinus1.Evaluate(domainElements[0]), zero) {
		return curve.GT{}, fmt.Errorf("%w: bminus1(omega^0) != 0", ErrSelectorInvalid)
	}
	q0 := bMinus1.DivideByLinear(domainElements[0])
	q0G1, err := kzg.Commit(params, q0)
	if err != nil {
		return curve.GT{}, err
	}

	bhatCoeffs := make([]curve.Scalar, t+1+len(b.Coeffs))
	copy(bhatCoeffs[t+1:], b.Coeffs)
	bhat := poly.New(bhatCoeffs)
	if bhat.Degree() != n {
		return curve.GT{}, fmt.Errorf("%w: bhat.Degree() (%d) != n (%d)", ErrSelectorInvalid, bhat.Degree(), n)
	}
	bhatG1, err := kzg.Commit(params, bhat)
	if err != nil {
		return curve.GT{}, err
	}

	var nScalar, nInv curve.Scalar
	nScalar.SetInt64(int64(n))
	nInv.Inverse(&nScalar)

	bScalars := make([]curve.Scalar, len(parties))
	scaledScalars := make([]curve.Scalar, len(parties))
	for idx, i := range parties {
		bScalars[idx] = bEvals[i]
		scaledScalars[idx].Mul(&bEvals[i], &nInv)
	}

	blsPKBases := make([]curve.G1, len(parties))
	for idx, i := range parties {
		blsPKBases[idx] = ak.PK[i].BlsPK
	}
	apkRaw, err := poly.MSMG1(blsPKBases, scaledScalars)
	if err != nil {
		return curve.GT{}, err
	}

	g2Bases := make([]curve.G2, len(parties))
	for idx, i := range parties {
		g2Bases[idx] = partials[i]
	}
	sigmaRaw, err := poly.MSMG2(g2Bases, scaledScalars)
	if err != nil {
		return curve.GT{}, err
	}

	skLiXBases := make([]curve.G1, len(parties))
	for idx, i := range parties {
		skLiXBases[idx] = ak.PK[i].SkLiX
	}
	qx, err := poly.MSMG1(skLiXBases, bScalars)
	if err != nil {
		return curve.GT{}, err
	}

	aggLjZBases := make([]curve.G1, len(parties))
	for idx, i := range parties {
		aggLjZBases[idx] = ak.AggSkLiLjZ[i]
	}
	qz, err := poly.MSMG1(aggLjZBases, bScalars)
	if err != nil {
		return curve.GT{}, err
	}

	skLiMinus0Bases := make([]curve.G1, len(parties))
	for idx, i := range parties {
		skLiMinus0Bases[idx] = ak.PK[i].SkLiMinus0
	}
	qhatx, err := poly.MSMG1(skLiMinus0Bases, bScalars)
	if err != nil {
		return curve.GT{}, err
	}

	var negOne curve.Scalar
	negOne.SetOne()
	negOne.Neg(&negOne)

	w1 := [6]curve.G1{
		poly.ScalarMulG1(apkRaw, negOne),
		poly.ScalarMulG1(qz, negOne),
		poly.ScalarMulG1(qx, negOne),
		qhatx,
		poly.ScalarMulG1(bhatG1, negOne),
		poly.ScalarMulG1(q0G1, negOne),
	}
	w2 := [2]curve.G2{bG2, sigmaRaw}

	lhs := append(append([]curve.G1{}, w1[:]...), ct.SA1[:]...)
	rhs := append(append([]curve.G2{}, ct.SA2[:]...), w2[:]...)

	encKey, err := curve.MultiPairing(lhs, rhs)
	if err != nil {
		return curve.GT{}, err
	}

	return encKey, nil
}
