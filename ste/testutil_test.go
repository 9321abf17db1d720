package ste

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/anepoti71/silent-threshold-encryption/curve"
	"github.com/anepoti71/silent-threshold-encryption/kzg"
	"github.com/anepoti71/silent-threshold-encryption/lagrange"
)

func newTestRNG(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

func randomScalar(t *testing.T, rng *rand.Rand) curve.Scalar {
	s, err := curve.RandomScalar(rng)
	require.NoError(t, err)
	return s
}

// committee bundles every artifact a scenario test needs: the KZG
// parameters, every party's secret key (party 0 nullified), every party's
// PublicKey, and the resulting AggregateKey.
type committee struct {
	params *kzg.UniversalParams
	sks    []curve.SecretKey
	pks    []PublicKey
	ak     *AggregateKey
}

// setupCommittee builds an n-party committee deterministically from seed,
// using maxDegree == n so both Encrypt's t+1 bound and NewAggregateKey's
// n-bound on the KZG parameters are satisfied for every t < n.
func setupCommittee(t *testing.T, seed int64, n int) committee {
	rng := newTestRNG(seed)
	tau := randomScalarNonZero(t, rng)

	params, err := kzg.Setup(n, tau)
	require.NoError(t, err)

	lp, err := lagrange.NewPowers(tau, n)
	require.NoError(t, err)

	sks, pks, err := BatchKeyGen(rng, lp, n)
	require.NoError(t, err)

	ak, err := NewAggregateKey(pks, params)
	require.NoError(t, err)

	return committee{params: params, sks: sks, pks: pks, ak: ak}
}

func randomScalarNonZero(t *testing.T, rng *rand.Rand) curve.Scalar {
	s, err := curve.RandomNonZeroScalar(rng)
	require.NoError(t, err)
	return s
}

// partialsFor computes every party's partial decryption of ct; callers
// select the subset they pass to AggDec via the selector argument, leaving
// the rest of the returned slice unused.
func partialsFor(c committee, ct *Ciphertext) []PartialDecryption {
	out := make([]PartialDecryption, len(c.sks))
	for i := range c.sks {
		out[i] = PartialDecrypt(&c.sks[i], ct)
	}
	return out
}
