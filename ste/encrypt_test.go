package ste

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anepoti71/silent-threshold-encryption/curve"
)

func TestEncryptRejectsBadThreshold(t *testing.T) {
	c := setupCommittee(t, 400, 4)

	_, err := Encrypt(newTestRNG(401), c.ak, 0, c.params)
	assert.ErrorIs(t, err, ErrInvalidParameter)

	_, err = Encrypt(newTestRNG(402), c.ak, 4, c.params)
	assert.ErrorIs(t, err, ErrInvalidParameter)
}

// TestEncryptRandomnessIndependence is property P4: two independent
// Encrypt calls under the same aggregate key produce ciphertexts that
// differ in every randomized field, yet each ciphertext still recovers its
// own enc_key correctly under AggDec — the two ciphertexts are independent
// encapsulations, not required to share a key.
func TestEncryptRandomnessIndependence(t *testing.T) {
	c := setupCommittee(t, 403, 4)

	ct1, err := Encrypt(newTestRNG(404), c.ak, 2, c.params)
	require.NoError(t, err)
	ct2, err := Encrypt(newTestRNG(405), c.ak, 2, c.params)
	require.NoError(t, err)

	assert.False(t, curve.ConstantTimeEqualG2(ct1.GammaG2, ct2.GammaG2))
	assert.False(t, curve.ConstantTimeEqualG1(ct1.SA1[0], ct2.SA1[0]))
	assert.False(t, curve.ConstantTimeEqualG1(ct1.SA1[1], ct2.SA1[1]))
	for i := range ct1.SA2 {
		assert.False(t, curve.ConstantTimeEqualG2(ct1.SA2[i], ct2.SA2[i]), "sa2[%d]", i)
	}
	assert.False(t, curve.ConstantTimeEqualGT(ct1.EncKey, ct2.EncKey))

	selector := []bool{true, true, true, false}
	recovered1, err := AggDec(partialsFor(c, ct1), ct1, selector, c.ak, c.params)
	require.NoError(t, err)
	assert.True(t, curve.ConstantTimeEqualGT(recovered1, ct1.EncKey))

	recovered2, err := AggDec(partialsFor(c, ct2), ct2, selector, c.ak, c.params)
	require.NoError(t, err)
	assert.True(t, curve.ConstantTimeEqualGT(recovered2, ct2.EncKey))
}
