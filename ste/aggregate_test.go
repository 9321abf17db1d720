package ste

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anepoti71/silent-threshold-encryption/curve"
)

func TestNewAggregateKeyRejectsEmptyAndOversizedCommittee(t *testing.T) {
	c := setupCommittee(t, 200, 8)
	_, err := NewAggregateKey(nil, c.params)
	assert.ErrorIs(t, err, ErrInvalidParameter)

	tooMany := make([]PublicKey, len(c.params.PowersOfH)+1)
	copy(tooMany, c.pks)
	_, err = NewAggregateKey(tooMany, c.params)
	assert.ErrorIs(t, err, ErrInvalidParameter)
}

// TestAggregateKeyIsOrderIndependent is scenario S5: an AggregateKey built
// from any permutation of the same PublicKey set has identical derived
// fields to one built from the set sorted by ID (the PK slice itself keeps
// whatever order the caller passed; the algebraic quantities AggDec and
// Encrypt actually use do not).
func TestAggregateKeyIsOrderIndependent(t *testing.T) {
	c := setupCommittee(t, 201, 8)

	permuted := make([]PublicKey, len(c.pks))
	copy(permuted, c.pks)
	permuted[0], permuted[7] = permuted[7], permuted[0]
	permuted[2], permuted[5] = permuted[5], permuted[2]

	ak2, err := NewAggregateKey(permuted, c.params)
	require.NoError(t, err)

	sort.Slice(ak2.PK, func(i, j int) bool { return ak2.PK[i].ID < ak2.PK[j].ID })

	assert.True(t, curve.ConstantTimeEqualG1(c.ak.ASK, ak2.ASK))
	assert.True(t, curve.ConstantTimeEqualG2(c.ak.ZG2, ak2.ZG2))
	assert.True(t, curve.ConstantTimeEqualG2(c.ak.HMinus1, ak2.HMinus1))
	assert.True(t, curve.ConstantTimeEqualGT(c.ak.EGH, ak2.EGH))
	require.Equal(t, len(c.ak.AggSkLiLjZ), len(ak2.AggSkLiLjZ))
	for i := range c.ak.AggSkLiLjZ {
		assert.True(t, curve.ConstantTimeEqualG1(c.ak.AggSkLiLjZ[i], ak2.AggSkLiLjZ[i]), "i=%d", i)
	}
}

func TestNewAggregateKeyRejectsMalformedCommittee(t *testing.T) {
	c := setupCommittee(t, 203, 4)

	duplicateIDs := make([]PublicKey, len(c.pks))
	copy(duplicateIDs, c.pks)
	duplicateIDs[3].ID = duplicateIDs[2].ID
	_, err := NewAggregateKey(duplicateIDs, c.params)
	assert.ErrorIs(t, err, ErrMalformedInput)

	outOfRangeID := make([]PublicKey, len(c.pks))
	copy(outOfRangeID, c.pks)
	outOfRangeID[0].ID = len(c.pks)
	_, err = NewAggregateKey(outOfRangeID, c.params)
	assert.ErrorIs(t, err, ErrMalformedInput)

	nonDummyParty0 := make([]PublicKey, len(c.pks))
	copy(nonDummyParty0, c.pks)
	nonDummyParty0[0].BlsPK = nonDummyParty0[1].BlsPK
	_, err = NewAggregateKey(nonDummyParty0, c.params)
	assert.ErrorIs(t, err, ErrMalformedInput)
}

func TestAggregateKeyHMinus1IsNegatedH(t *testing.T) {
	c := setupCommittee(t, 202, 4)
	assert.True(t, curve.ConstantTimeEqualG2(c.ak.HMinus1, negateG2(c.params.PowersOfH[0])))
}

func negateG2(p curve.G2) curve.G2 {
	var out curve.G2
	out.Neg(&p)
	return out
}
