package kzg

import (
	"io"

	"github.com/anepoti71/silent-threshold-encryption/internal/codec"
)

// WriteTo serializes the powers of tau as two length-prefixed vectors,
// PowersOfG then PowersOfH; H and BetaH are not serialized since they are
// always PowersOfH[0] and PowersOfH[1].
func (up *UniversalParams) WriteTo(w io.Writer) (int64, error) {
	var total int64
	n, err := codec.WriteG1Vector(w, up.PowersOfG)
	total += n
	if err != nil {
		return total, err
	}
	n, err = codec.WriteG2Vector(w, up.PowersOfH)
	total += n
	return total, err
}

// ReadFrom deserializes the layout WriteTo writes and recomputes the H/BetaH
// cache from the freshly-read PowersOfH.
func (up *UniversalParams) ReadFrom(r io.Reader) (int64, error) {
	var total int64
	g, n, err := codec.ReadG1Vector(r)
	total += n
	if err != nil {
		return total, err
	}
	h, n, err := codec.ReadG2Vector(r)
	total += n
	if err != nil {
		return total, err
	}
	if len(h) < 2 {
		return total, io.ErrUnexpectedEOF
	}
	up.PowersOfG = g
	up.PowersOfH = h
	up.H = h[0]
	up.BetaH = h[1]
	return total, nil
}
