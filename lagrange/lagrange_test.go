package lagrange

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anepoti71/silent-threshold-encryption/curve"
	"github.com/anepoti71/silent-threshold-encryption/poly"
)

func newTestRNG(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

func randomNonZeroScalar(t *testing.T, rng *rand.Rand) curve.Scalar {
	s, err := curve.RandomNonZeroScalar(rng)
	require.NoError(t, err)
	return s
}

func TestNewPowersRejectsBadInput(t *testing.T) {
	_, err := NewPowers(randomNonZeroScalar(t, newTestRNG(1)), 0)
	assert.ErrorIs(t, err, ErrInvalidParameter)

	var zero curve.Scalar
	_, err = NewPowers(zero, 8)
	assert.ErrorIs(t, err, ErrInvalidParameter)
}

func TestClosedFormMatchesNaiveEvalsOnPowerOfTwo(t *testing.T) {
	const n = 8
	tau := randomNonZeroScalar(t, newTestRNG(2))
	domain, err := poly.NewDomain(n)
	require.NoError(t, err)

	closedLi, closedL0, err := closedFormEvals(domain, tau, n)
	require.NoError(t, err)
	naiveLi, naiveL0, err := naiveEvals(domain, tau, n)
	require.NoError(t, err)

	for i := 0; i < n; i++ {
		assert.True(t, curve.ConstantTimeEqualScalar(closedLi[i], naiveLi[i]), "Li[%d]", i)
		assert.True(t, curve.ConstantTimeEqualScalar(closedL0[i], naiveL0[i]), "L0[%d]", i)
	}
}

func TestLiSumsToOneAtTau(t *testing.T) {
	// sum_i L_i(tau) == 1, the Lagrange-basis partition-of-unity identity.
	const n = 8
	tau := randomNonZeroScalar(t, newTestRNG(3))
	p, err := NewPowers(tau, n)
	require.NoError(t, err)

	g := curve.G()
	var sum curve.G1
	for i := 0; i < n; i++ {
		sum = poly.AddG1(sum, p.Li[i])
	}
	assert.True(t, curve.ConstantTimeEqualG1(g, sum))
}

func TestLiXMatchesDefinition(t *testing.T) {
	const n = 8
	tau := randomNonZeroScalar(t, newTestRNG(4))
	p, err := NewPowers(tau, n)
	require.NoError(t, err)

	var tauInv curve.Scalar
	tauInv.Inverse(&tau)
	for i := 0; i < n; i++ {
		want := poly.ScalarMulG1(p.LiMinus0[i], tauInv)
		assert.True(t, curve.ConstantTimeEqualG1(want, p.LiX[i]), "i=%d", i)
	}
}

func TestLiLjZDiagonalAndOffDiagonalMatchDirectComputation(t *testing.T) {
	const n = 8
	tau := randomNonZeroScalar(t, newTestRNG(5))
	domain, err := poly.NewDomain(n)
	require.NoError(t, err)
	p, err := NewPowers(tau, n)
	require.NoError(t, err)

	zEval := domain.Vanishing().Evaluate(tau)
	var zEvalInv curve.Scalar
	zEvalInv.Inverse(&zEval)

	for i := 0; i < n; i++ {
		li := poly.BasisPolynomial(domain, i)
		liTau := li.Evaluate(tau)
		for j := 0; j < n; j++ {
			var num curve.Scalar
			if i == j {
				num.Mul(&liTau, &liTau)
				num.Sub(&num, &liTau)
			} else {
				lj := poly.BasisPolynomial(domain, j)
				ljTau := lj.Evaluate(tau)
				num.Mul(&liTau, &ljTau)
			}
			var want curve.Scalar
			want.Mul(&num, &zEvalInv)
			wantG1 := poly.ScalarMulG1(curve.G(), want)
			assert.True(t, curve.ConstantTimeEqualG1(wantG1, p.LiLjZ[i][j]), "i=%d j=%d", i, j)
		}
	}
}

func TestNewPowersArbitraryNFallback(t *testing.T) {
	const n = 5
	tau := randomNonZeroScalar(t, newTestRNG(6))
	p, err := NewPowers(tau, n)
	require.NoError(t, err)
	assert.Equal(t, n, p.N)
	assert.Len(t, p.Li, n)
	assert.Len(t, p.LiLjZ, n)
}
