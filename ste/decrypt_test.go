package ste

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anepoti71/silent-threshold-encryption/curve"
	"github.com/anepoti71/silent-threshold-encryption/kzg"
	"github.com/anepoti71/silent-threshold-encryption/poly"
)

// TestAggDecRecoversEncKey is scenario S1: n=4, t=2, fixed seed. Exactly
// t+1 parties including the dummy party 0 recover ct.EncKey.
func TestAggDecRecoversEncKey(t *testing.T) {
	c := setupCommittee(t, 42, 4)
	ct, err := Encrypt(newTestRNG(42), c.ak, 2, c.params)
	require.NoError(t, err)

	selector := []bool{true, true, true, false}
	recovered, err := AggDec(partialsFor(c, ct), ct, selector, c.ak, c.params)
	require.NoError(t, err)
	assert.True(t, curve.ConstantTimeEqualGT(recovered, ct.EncKey))
}

// TestAggDecRecoveryIsSelectorIndependent is scenario S2: any other valid
// t+1-sized selector including party 0 recovers the same key as S1.
func TestAggDecRecoveryIsSelectorIndependent(t *testing.T) {
	c := setupCommittee(t, 42, 4)
	ct, err := Encrypt(newTestRNG(42), c.ak, 2, c.params)
	require.NoError(t, err)

	s1, err := AggDec(partialsFor(c, ct), ct, []bool{true, true, true, false}, c.ak, c.params)
	require.NoError(t, err)

	s2, err := AggDec(partialsFor(c, ct), ct, []bool{true, false, true, true}, c.ak, c.params)
	require.NoError(t, err)

	assert.True(t, curve.ConstantTimeEqualGT(s1, s2))
	assert.True(t, curve.ConstantTimeEqualGT(s1, ct.EncKey))
}

// TestAggDecRejectsTamperedPartial is scenario S3 and property P3: replacing
// a selected non-dummy party's partial with an unrelated G2 element breaks
// recovery. AggDec itself doesn't know ct.EncKey's expected value, so it
// returns the (now-wrong) recombined key with no error; the caller is the
// one that notices the mismatch.
func TestAggDecRejectsTamperedPartial(t *testing.T) {
	c := setupCommittee(t, 42, 4)
	ct, err := Encrypt(newTestRNG(42), c.ak, 2, c.params)
	require.NoError(t, err)

	partials := partialsFor(c, ct)
	garbage, err := curve.RandomNonZeroScalar(newTestRNG(99))
	require.NoError(t, err)
	partials[2] = poly.ScalarMulG2(c.params.H, garbage)

	recovered, err := AggDec(partials, ct, []bool{true, true, true, false}, c.ak, c.params)
	require.NoError(t, err)
	assert.False(t, curve.ConstantTimeEqualGT(recovered, ct.EncKey))
}

// TestAggDecRejectsMissingDummyParty is scenario S4: any selector that
// omits party 0 is rejected before any pairing work happens.
func TestAggDecRejectsMissingDummyParty(t *testing.T) {
	c := setupCommittee(t, 42, 4)
	ct, err := Encrypt(newTestRNG(42), c.ak, 2, c.params)
	require.NoError(t, err)

	_, err = AggDec(partialsFor(c, ct), ct, []bool{false, true, true, true}, c.ak, c.params)
	assert.ErrorIs(t, err, ErrSelectorInvalid)
}

func TestAggDecRejectsTooFewSelected(t *testing.T) {
	c := setupCommittee(t, 42, 4)
	ct, err := Encrypt(newTestRNG(42), c.ak, 2, c.params)
	require.NoError(t, err)

	_, err = AggDec(partialsFor(c, ct), ct, []bool{true, true, false, false}, c.ak, c.params)
	assert.ErrorIs(t, err, ErrSelectorInvalid)
}

func TestAggDecRejectsLengthMismatch(t *testing.T) {
	c := setupCommittee(t, 42, 4)
	ct, err := Encrypt(newTestRNG(42), c.ak, 2, c.params)
	require.NoError(t, err)

	_, err = AggDec(partialsFor(c, ct), ct, []bool{true, true, true}, c.ak, c.params)
	assert.ErrorIs(t, err, ErrSelectorInvalid)
}

// TestCeremonyThenEndToEnd is scenario S6: parameters from a 3-contributor
// ceremony support a full S1-style encrypt/decrypt round. The ceremony
// never reveals tau, so lagrange.NewPowers (which needs tau directly)
// can't preprocess against it; every PublicKey is derived the slow way via
// GetPK instead, matching what a deployment without a known tau must do.
func TestCeremonyThenEndToEnd(t *testing.T) {
	const n = 4
	cer, err := kzg.NewCeremony(n, newTestRNG(1))
	require.NoError(t, err)
	require.NoError(t, cer.Contribute(newTestRNG(2)))
	require.NoError(t, cer.Contribute(newTestRNG(3)))

	for i := 1; i <= 2; i++ {
		assert.True(t, cer.VerifyContribution(i))
	}
	params := cer.Finalize()

	rng := newTestRNG(4)
	keys := make([]*curve.SecretKey, n)
	for i := 0; i < n; i++ {
		sk, err := curve.NewSecretKey(rng)
		require.NoError(t, err)
		keys[i] = sk
	}
	keys[0].Nullify()

	publics := make([]PublicKey, n)
	for i := 0; i < n; i++ {
		pk, err := GetPK(keys[i], i, params, n)
		require.NoError(t, err)
		publics[i] = *pk
	}

	ak, err := NewAggregateKey(publics, params)
	require.NoError(t, err)

	ct, err := Encrypt(newTestRNG(5), ak, 2, params)
	require.NoError(t, err)

	partials := make([]PartialDecryption, n)
	for i := range keys {
		partials[i] = PartialDecrypt(keys[i], ct)
	}

	recovered, err := AggDec(partials, ct, []bool{true, true, true, false}, ak, params)
	require.NoError(t, err)
	assert.True(t, curve.ConstantTimeEqualGT(recovered, ct.EncKey))
}
