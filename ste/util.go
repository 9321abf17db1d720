package ste

import (
	"math/big"

	"github.com/anepoti71/silent-threshold-encryption/curve"
)

func scalarToBigInt(s curve.Scalar) *big.Int {
	var b big.Int
	s.BigInt(&b)
	return &b
}
