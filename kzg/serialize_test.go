package kzg

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anepoti71/silent-threshold-encryption/curve"
)

func TestUniversalParamsRoundTrip(t *testing.T) {
	tau := randomNonZeroScalar(t, newTestRNG(30))
	params, err := Setup(8, tau)
	require.NoError(t, err)

	var buf bytes.Buffer
	_, err = params.WriteTo(&buf)
	require.NoError(t, err)

	var got UniversalParams
	_, err = got.ReadFrom(&buf)
	require.NoError(t, err)

	require.Len(t, got.PowersOfG, len(params.PowersOfG))
	for i := range params.PowersOfG {
		assert.True(t, curve.ConstantTimeEqualG1(params.PowersOfG[i], got.PowersOfG[i]))
	}
	for i := range params.PowersOfH {
		assert.True(t, curve.ConstantTimeEqualG2(params.PowersOfH[i], got.PowersOfH[i]))
	}
	assert.True(t, curve.ConstantTimeEqualG2(params.H, got.H))
	assert.True(t, curve.ConstantTimeEqualG2(params.BetaH, got.BetaH))
}
