// Package codec implements the length-prefixed binary layout spec.md §6
// specifies for this module's serializable values: a 4-byte little-endian
// count ahead of every variable-length vector, followed by each element's
// own canonical point encoding (gnark-crypto's WriteTo/ReadFrom convention
// for G1Affine, G2Affine and GT).
package codec

import (
	"encoding/binary"
	"io"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"

	"github.com/anepoti71/silent-threshold-encryption/curve"
)

// WriteUint32 writes v as 4 little-endian bytes.
func WriteUint32(w io.Writer, v uint32) (int64, error) {
	var buf [4]byte
	binary.LittleEndian.PutUint32(buf[:], v)
	n, err := w.Write(buf[:])
	return int64(n), err
}

// ReadUint32 reads 4 little-endian bytes.
func ReadUint32(r io.Reader) (uint32, int64, error) {
	var buf [4]byte
	n, err := io.ReadFull(r, buf[:])
	if err != nil {
		return 0, int64(n), err
	}
	return binary.LittleEndian.Uint32(buf[:]), int64(n), nil
}

// WriteG1 writes a single G1 point in its canonical compressed encoding.
func WriteG1(w io.Writer, p curve.G1) (int64, error) {
	buf := p.Bytes()
	n, err := w.Write(buf[:])
	return int64(n), err
}

// ReadG1 reads a single G1 point in its canonical compressed encoding.
func ReadG1(r io.Reader, dst *curve.G1) (int64, error) {
	var buf [bls12381.SizeOfG1AffineCompressed]byte
	n, err := io.ReadFull(r, buf[:])
	if err != nil {
		return int64(n), err
	}
	if _, err := dst.SetBytes(buf[:]); err != nil {
		return int64(n), err
	}
	return int64(n), nil
}

// WriteG2 writes a single G2 point in its canonical compressed encoding.
func WriteG2(w io.Writer, p curve.G2) (int64, error) {
	buf := p.Bytes()
	n, err := w.Write(buf[:])
	return int64(n), err
}

// ReadG2 reads a single G2 point in its canonical compressed encoding.
func ReadG2(r io.Reader, dst *curve.G2) (int64, error) {
	var buf [bls12381.SizeOfG2AffineCompressed]byte
	n, err := io.ReadFull(r, buf[:])
	if err != nil {
		return int64(n), err
	}
	if _, err := dst.SetBytes(buf[:]); err != nil {
		return int64(n), err
	}
	return int64(n), nil
}

// WriteG1Vector writes a length-prefixed vector of G1 points.
func WriteG1Vector(w io.Writer, vec []curve.G1) (int64, error) {
	total, err := WriteUint32(w, uint32(len(vec)))
	if err != nil {
		return total, err
	}
	for i := range vec {
		buf := vec[i].Bytes()
		n, err := w.Write(buf[:])
		total += int64(n)
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

// ReadG1Vector reads a length-prefixed vector of G1 points.
func ReadG1Vector(r io.Reader) ([]curve.G1, int64, error) {
	count, total, err := ReadUint32(r)
	if err != nil {
		return nil, total, err
	}
	out := make([]curve.G1, count)
	for i := range out {
		var buf [bls12381.SizeOfG1AffineCompressed]byte
		n, err := io.ReadFull(r, buf[:])
		total += int64(n)
		if err != nil {
			return nil, total, err
		}
		if _, err := out[i].SetBytes(buf[:]); err != nil {
			return nil, total, err
		}
	}
	return out, total, nil
}

// WriteG2Vector writes a length-prefixed vector of G2 points.
func WriteG2Vector(w io.Writer, vec []curve.G2) (int64, error) {
	total, err := WriteUint32(w, uint32(len(vec)))
	if err != nil {
		return total, err
	}
	for i := range vec {
		buf := vec[i].Bytes()
		n, err := w.Write(buf[:])
		total += int64(n)
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

// ReadG2Vector reads a length-prefixed vector of G2 points.
func ReadG2Vector(r io.Reader) ([]curve.G2, int64, error) {
	count, total, err := ReadUint32(r)
	if err != nil {
		return nil, total, err
	}
	out := make([]curve.G2, count)
	for i := range out {
		var buf [bls12381.SizeOfG2AffineCompressed]byte
		n, err := io.ReadFull(r, buf[:])
		total += int64(n)
		if err != nil {
			return nil, total, err
		}
		if _, err := out[i].SetBytes(buf[:]); err != nil {
			return nil, total, err
		}
	}
	return out, total, nil
}

// WriteScalar writes s in its fixed-width canonical encoding.
func WriteScalar(w io.Writer, s curve.Scalar) (int64, error) {
	buf := s.Bytes()
	n, err := w.Write(buf[:])
	return int64(n), err
}

// ReadScalar reads a fixed-width canonical scalar encoding.
func ReadScalar(r io.Reader) (curve.Scalar, int64, error) {
	var buf [32]byte
	n, err := io.ReadFull(r, buf[:])
	if err != nil {
		return curve.Scalar{}, int64(n), err
	}
	var s curve.Scalar
	s.SetBytes(buf[:])
	return s, int64(n), nil
}

// WriteGT writes a target-group element.
func WriteGT(w io.Writer, v curve.GT) (int64, error) {
	buf := v.Bytes()
	n, err := w.Write(buf[:])
	return int64(n), err
}

// ReadGT reads a target-group element.
func ReadGT(r io.Reader) (curve.GT, int64, error) {
	var v bls12381.GT
	var buf [bls12381.SizeOfGT]byte
	n, err := io.ReadFull(r, buf[:])
	if err != nil {
		return v, int64(n), err
	}
	if err := v.SetBytes(buf[:]); err != nil {
		return v, int64(n), err
	}
	return v, int64(n), nil
}
