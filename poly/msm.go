package poly

import (
	"fmt"
	"math/big"
	"runtime"

	"github.com/consensys/gnark-crypto/ecc"
	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"

	"github.com/anepoti71/silent-threshold-encryption/curve"
)

// MSMG1 computes sum_i scalars[i]*bases[i] in G1. This is the hot loop
// behind KZG commit and agg_dec's G1 MSMs
// (spec.md §2: "multi-scalar multiplication (MSM) over G1 and G2").
func MSMG1(bases []curve.G1, scalars []curve.Scalar) (curve.G1, error) {
	if len(bases) != len(scalars) {
		return curve.G1{}, fmt.Errorf("poly: MSM base/scalar length mismatch: %d bases, %d scalars", len(bases), len(scalars))
	}
	if len(bases) == 0 {
		var zero curve.G1
		return zero, nil
	}
	var res bls12381.G1Affine
	if _, err := res.MultiExp(bases, scalars, ecc.MultiExpConfig{NbTasks: runtime.NumCPU()}); err != nil {
		return curve.G1{}, fmt.Errorf("poly: G1 MSM failed: %w", err)
	}
	return res, nil
}

// MSMG2 is MSMG1's G2 counterpart.
func MSMG2(bases []curve.G2, scalars []curve.Scalar) (curve.G2, error) {
	if len(bases) != len(scalars) {
		return curve.G2{}, fmt.Errorf("poly: MSM base/scalar length mismatch: %d bases, %d scalars", len(bases), len(scalars))
	}
	if len(bases) == 0 {
		var zero curve.G2
		return zero, nil
	}
	var res bls12381.G2Affine
	if _, err := res.MultiExp(bases, scalars, ecc.MultiExpConfig{NbTasks: runtime.NumCPU()}); err != nil {
		return curve.G2{}, fmt.Errorf("poly: G2 MSM failed: %w", err)
	}
	return res, nil
}

// ScalarMulG1 computes s*p.
func ScalarMulG1(p curve.G1, s curve.Scalar) curve.G1 {
	var res bls12381.G1Affine
	var sBig big.Int
	s.BigInt(&sBig)
	res.ScalarMultiplication(&p, &sBig)
	return res
}

// ScalarMulG2 computes s*p.
func ScalarMulG2(p curve.G2, s curve.Scalar) curve.G2 {
	var res bls12381.G2Affine
	var sBig big.Int
	s.BigInt(&sBig)
	res.ScalarMultiplication(&p, &sBig)
	return res
}

// AddG1 returns a+b.
func AddG1(a, b curve.G1) curve.G1 {
	var aJac, bJac, res bls12381.G1Jac
	aJac.FromAffine(&a)
	bJac.FromAffine(&b)
	res.Set(&aJac).AddAssign(&bJac)
	var out bls12381.G1Affine
	out.FromJacobian(&res)
	return out
}

// AddG2 returns a+b.
func AddG2(a, b curve.G2) curve.G2 {
	var aJac, bJac, res bls12381.G2Jac
	aJac.FromAffine(&a)
	bJac.FromAffine(&b)
	res.Set(&aJac).AddAssign(&bJac)
	var out bls12381.G2Affine
	out.FromJacobian(&res)
	return out
}

// SubG1 returns a-b.
func SubG1(a, b curve.G1) curve.G1 {
	var negB bls12381.G1Affine
	negB.Neg(&b)
	return AddG1(a, negB)
}

// SubG2 returns a-b.
func SubG2(a, b curve.G2) curve.G2 {
	var negB bls12381.G2Affine
	negB.Neg(&b)
	return AddG2(a, negB)
}
