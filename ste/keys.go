package ste

import (
	"fmt"

	"github.com/anepoti71/silent-threshold-encryption/curve"
	"github.com/anepoti71/silent-threshold-encryption/kzg"
	"github.com/anepoti71/silent-threshold-encryption/lagrange"
	"github.com/anepoti71/silent-threshold-encryption/poly"
)

// PublicKey is a single party's BLS public key plus the KZG-committed
// Lagrange hints agg_key.New and agg_dec need to fold that party's
// contribution into the aggregate without recomputing any Lagrange
// polynomial at aggregation time (spec.md §3, §4.3).
type PublicKey struct {
	ID         int
	BlsPK      curve.G1
	SkLi       curve.G1
	SkLiMinus0 curve.G1
	SkLiLjZ    []curve.G1
	SkLiX      curve.G1
}

// GetPK derives sk's PublicKey the slow way: recomputing n Lagrange
// polynomials and KZG-committing to every cross term from scratch, one
// commitment per cross term (n+3 in all). n must be a power of two, matching
// original_source/src/setup.rs::SecretKey::get_pk's own domain restriction.
// Prefer LagrangeGetPK with a preprocessed *lagrange.Powers wherever one is
// available.
func GetPK(sk *curve.SecretKey, id int, params *kzg.UniversalParams, n int) (*PublicKey, error) {
	if id < 0 || id >= n {
		return nil, fmt.Errorf("%w: id (%d) must be in [0, %d)", ErrInvalidParameter, id, n)
	}
	if !curve.IsPowerOfTwo(n) {
		return nil, fmt.Errorf("%w: n must be a power of 2, got %d", ErrInvalidParameter, n)
	}
	domain, err := poly.NewDomain(n)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidParameter, err)
	}

	li := poly.BasisPolynomial(domain, id)
	skScalar := sk.Expose()

	skLiLjZ := make([]curve.G1, n)
	for j := 0; j < n; j++ {
		var num poly.Polynomial
		if id == j {
			num = li.Mul(li).Sub(li)
		} else {
			lj := poly.BasisPolynomial(domain, j)
			num = lj.Mul(li)
		}
		f := domain.DivideByVanishing(num)
		com, err := kzg.Commit(params, f.Scale(skScalar))
		if err != nil {
			return nil, err
		}
		skLiLjZ[j] = com
	}

	var liXCoeffs []curve.Scalar
	if len(li.Coeffs) > 1 {
		liXCoeffs = append(liXCoeffs, li.Coeffs[1:]...)
	} else {
		liXCoeffs = []curve.Scalar{{}}
	}
	skLiX, err := kzg.Commit(params, poly.New(liXCoeffs).Scale(skScalar))
	if err != nil {
		return nil, err
	}

	skLiPoly := li.Scale(skScalar)
	skLi, err := kzg.Commit(params, skLiPoly)
	if err != nil {
		return nil, err
	}

	skLiMinus0Poly := skLiPoly.Clone()
	skLiMinus0Poly.Coeffs[0] = curve.Scalar{}
	skLiMinus0, err := kzg.Commit(params, skLiMinus0Poly)
	if err != nil {
		return nil, err
	}

	return &PublicKey{
		ID:         id,
		BlsPK:      poly.ScalarMulG1(curve.G(), skScalar),
		SkLi:       skLi,
		SkLiMinus0: skLiMinus0,
		SkLiLjZ:    skLiLjZ,
		SkLiX:      skLiX,
	}, nil
}

// LagrangeGetPK derives sk's PublicKey from preprocessed lagrange.Powers in
// O(n) scalar multiplications instead of GetPK's n+3 KZG commitments —
// the fast path every production caller should use.
func LagrangeGetPK(sk *curve.SecretKey, id int, lp *lagrange.Powers, n int) (*PublicKey, error) {
	if id < 0 || id >= n {
		return nil, fmt.Errorf("%w: id (%d) must be in [0, %d)", ErrInvalidParameter, id, n)
	}
	if lp.N != n {
		return nil, fmt.Errorf("%w: lagrange powers size (%d) does not match n (%d)", ErrInvalidParameter, lp.N, n)
	}

	skScalar := sk.Expose()

	skLiLjZ := make([]curve.G1, n)
	for j := 0; j < n; j++ {
		skLiLjZ[j] = poly.ScalarMulG1(lp.LiLjZ[id][j], skScalar)
	}

	return &PublicKey{
		ID:         id,
		BlsPK:      poly.ScalarMulG1(curve.G(), skScalar),
		SkLi:       poly.ScalarMulG1(lp.Li[id], skScalar),
		SkLiMinus0: poly.ScalarMulG1(lp.LiMinus0[id], skScalar),
		SkLiLjZ:    skLiLjZ,
		SkLiX:      poly.ScalarMulG1(lp.LiX[id], skScalar),
	}, nil
}

// PartialDecryption is a party's BLS-style signature on ct.GammaG2, one per
// party per ciphertext (spec.md §3).
type PartialDecryption = curve.G2

// PartialDecrypt computes sk's partial decryption of ct: sk * ct.GammaG2.
func PartialDecrypt(sk *curve.SecretKey, ct *Ciphertext) PartialDecryption {
	return poly.ScalarMulG2(ct.GammaG2, sk.Expose())
}
