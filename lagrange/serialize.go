package lagrange

import (
	"io"

	"github.com/anepoti71/silent-threshold-encryption/curve"
	"github.com/anepoti71/silent-threshold-encryption/internal/codec"
)

// WriteTo serializes p as N:u32-le followed by Li, LiMinus0, LiX (each a
// length-prefixed G1 vector) and then the LiLjZ matrix, row by row.
func (p *Powers) WriteTo(w io.Writer) (int64, error) {
	var total int64
	n, err := codec.WriteUint32(w, uint32(p.N))
	total += n
	if err != nil {
		return total, err
	}
	for _, vec := range [][]curve.G1{p.Li, p.LiMinus0, p.LiX} {
		n, err := codec.WriteG1Vector(w, vec)
		total += n
		if err != nil {
			return total, err
		}
	}
	for _, row := range p.LiLjZ {
		n, err := codec.WriteG1Vector(w, row)
		total += n
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

// ReadFrom deserializes p from the layout WriteTo writes.
func (p *Powers) ReadFrom(r io.Reader) (int64, error) {
	var total int64
	n32, n, err := codec.ReadUint32(r)
	total += n
	if err != nil {
		return total, err
	}
	p.N = int(n32)

	for _, dst := range []*[]curve.G1{&p.Li, &p.LiMinus0, &p.LiX} {
		vec, n, err := codec.ReadG1Vector(r)
		total += n
		if err != nil {
			return total, err
		}
		*dst = vec
	}

	p.LiLjZ = make([][]curve.G1, p.N)
	for i := 0; i < p.N; i++ {
		row, n, err := codec.ReadG1Vector(r)
		total += n
		if err != nil {
			return total, err
		}
		p.LiLjZ[i] = row
	}
	return total, nil
}
