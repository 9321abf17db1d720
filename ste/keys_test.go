package ste

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anepoti71/silent-threshold-encryption/curve"
	"github.com/anepoti71/silent-threshold-encryption/kzg"
	"github.com/anepoti71/silent-threshold-encryption/lagrange"
)

func TestLagrangeGetPKMatchesSlowGetPK(t *testing.T) {
	const n = 8
	rng := newTestRNG(100)
	tau := randomScalarNonZero(t, rng)

	params, err := kzg.Setup(n, tau)
	require.NoError(t, err)
	lp, err := lagrange.NewPowers(tau, n)
	require.NoError(t, err)

	sk, err := curve.NewSecretKey(rng)
	require.NoError(t, err)

	fast, err := LagrangeGetPK(sk, 3, lp, n)
	require.NoError(t, err)
	slow, err := GetPK(sk, 3, params, n)
	require.NoError(t, err)

	assert.True(t, curve.ConstantTimeEqualG1(fast.BlsPK, slow.BlsPK))
	assert.True(t, curve.ConstantTimeEqualG1(fast.SkLi, slow.SkLi))
	assert.True(t, curve.ConstantTimeEqualG1(fast.SkLiMinus0, slow.SkLiMinus0))
	assert.True(t, curve.ConstantTimeEqualG1(fast.SkLiX, slow.SkLiX))
	require.Equal(t, len(slow.SkLiLjZ), len(fast.SkLiLjZ))
	for j := range slow.SkLiLjZ {
		assert.True(t, curve.ConstantTimeEqualG1(fast.SkLiLjZ[j], slow.SkLiLjZ[j]), "j=%d", j)
	}
}

func TestGetPKRejectsOutOfRangeID(t *testing.T) {
	const n = 8
	rng := newTestRNG(101)
	tau := randomScalarNonZero(t, rng)
	params, err := kzg.Setup(n, tau)
	require.NoError(t, err)
	sk, err := curve.NewSecretKey(rng)
	require.NoError(t, err)

	_, err = GetPK(sk, n, params, n)
	assert.ErrorIs(t, err, ErrInvalidParameter)
	_, err = GetPK(sk, -1, params, n)
	assert.ErrorIs(t, err, ErrInvalidParameter)
}

func TestGetPKRejectsNonPowerOfTwo(t *testing.T) {
	rng := newTestRNG(102)
	tau := randomScalarNonZero(t, rng)
	params, err := kzg.Setup(6, tau)
	require.NoError(t, err)
	sk, err := curve.NewSecretKey(rng)
	require.NoError(t, err)

	_, err = GetPK(sk, 0, params, 6)
	assert.ErrorIs(t, err, ErrInvalidParameter)
}

func TestPartialDecryptIsBLSStyleSignatureOnGammaG2(t *testing.T) {
	c := setupCommittee(t, 103, 4)
	ct, err := Encrypt(newTestRNG(104), c.ak, 2, c.params)
	require.NoError(t, err)

	sigma := PartialDecrypt(&c.sks[1], ct)

	lhs, err := curve.Pairing(c.pks[1].BlsPK, ct.GammaG2)
	require.NoError(t, err)
	rhs, err := curve.Pairing(curve.G(), sigma)
	require.NoError(t, err)
	assert.True(t, lhs.Equal(&rhs))
}
