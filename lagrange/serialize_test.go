package lagrange

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anepoti71/silent-threshold-encryption/curve"
)

func TestPowersRoundTrip(t *testing.T) {
	const n = 4
	tau := randomNonZeroScalar(t, newTestRNG(10))
	p, err := NewPowers(tau, n)
	require.NoError(t, err)

	var buf bytes.Buffer
	_, err = p.WriteTo(&buf)
	require.NoError(t, err)

	var got Powers
	_, err = got.ReadFrom(&buf)
	require.NoError(t, err)

	require.Equal(t, p.N, got.N)
	for i := 0; i < n; i++ {
		assert.True(t, curve.ConstantTimeEqualG1(p.Li[i], got.Li[i]))
		assert.True(t, curve.ConstantTimeEqualG1(p.LiMinus0[i], got.LiMinus0[i]))
		assert.True(t, curve.ConstantTimeEqualG1(p.LiX[i], got.LiX[i]))
		for j := 0; j < n; j++ {
			assert.True(t, curve.ConstantTimeEqualG1(p.LiLjZ[i][j], got.LiLjZ[i][j]))
		}
	}
}
