package ste

import (
	"io"

	"github.com/anepoti71/silent-threshold-encryption/curve"
	"github.com/anepoti71/silent-threshold-encryption/internal/codec"
)

// WriteTo serializes pk as ID:u32-le, BlsPK, SkLi, SkLiMinus0, a
// length-prefixed SkLiLjZ vector, then SkLiX.
func (pk *PublicKey) WriteTo(w io.Writer) (int64, error) {
	var total int64
	n, err := codec.WriteUint32(w, uint32(pk.ID))
	total += n
	if err != nil {
		return total, err
	}
	for _, p := range []curve.G1{pk.BlsPK, pk.SkLi, pk.SkLiMinus0} {
		n, err := codec.WriteG1(w, p)
		total += n
		if err != nil {
			return total, err
		}
	}
	n, err = codec.WriteG1Vector(w, pk.SkLiLjZ)
	total += n
	if err != nil {
		return total, err
	}
	n, err = codec.WriteG1(w, pk.SkLiX)
	total += n
	return total, err
}

// ReadFrom deserializes the layout WriteTo writes.
func (pk *PublicKey) ReadFrom(r io.Reader) (int64, error) {
	var total int64
	id, n, err := codec.ReadUint32(r)
	total += n
	if err != nil {
		return total, err
	}
	pk.ID = int(id)

	for _, dst := range []*curve.G1{&pk.BlsPK, &pk.SkLi, &pk.SkLiMinus0} {
		n, err := codec.ReadG1(r, dst)
		total += n
		if err != nil {
			return total, err
		}
	}
	vec, n, err := codec.ReadG1Vector(r)
	total += n
	if err != nil {
		return total, err
	}
	pk.SkLiLjZ = vec

	n, err = codec.ReadG1(r, &pk.SkLiX)
	total += n
	return total, err
}

// WriteTo serializes ak as a length-prefixed PublicKey vector, a
// length-prefixed AggSkLiLjZ vector, then ASK, ZG2, HMinus1, EGH.
func (ak *AggregateKey) WriteTo(w io.Writer) (int64, error) {
	var total int64
	n, err := codec.WriteUint32(w, uint32(len(ak.PK)))
	total += n
	if err != nil {
		return total, err
	}
	for i := range ak.PK {
		n, err := ak.PK[i].WriteTo(w)
		total += n
		if err != nil {
			return total, err
		}
	}
	n, err = codec.WriteG1Vector(w, ak.AggSkLiLjZ)
	total += n
	if err != nil {
		return total, err
	}
	n, err = codec.WriteG1(w, ak.ASK)
	total += n
	if err != nil {
		return total, err
	}
	n, err = codec.WriteG2(w, ak.ZG2)
	total += n
	if err != nil {
		return total, err
	}
	n, err = codec.WriteG2(w, ak.HMinus1)
	total += n
	if err != nil {
		return total, err
	}
	n, err = codec.WriteGT(w, ak.EGH)
	total += n
	return total, err
}

// ReadFrom deserializes the layout WriteTo writes.
func (ak *AggregateKey) ReadFrom(r io.Reader) (int64, error) {
	var total int64
	count, n, err := codec.ReadUint32(r)
	total += n
	if err != nil {
		return total, err
	}
	pk := make([]PublicKey, count)
	for i := range pk {
		n, err := pk[i].ReadFrom(r)
		total += n
		if err != nil {
			return total, err
		}
	}
	ak.PK = pk

	vec, n, err := codec.ReadG1Vector(r)
	total += n
	if err != nil {
		return total, err
	}
	ak.AggSkLiLjZ = vec

	for _, dst := range []*curve.G1{&ak.ASK} {
		n, err := codec.ReadG1(r, dst)
		total += n
		if err != nil {
			return total, err
		}
	}
	for _, dst := range []*curve.G2{&ak.ZG2, &ak.HMinus1} {
		n, err := codec.ReadG2(r, dst)
		total += n
		if err != nil {
			return total, err
		}
	}
	egh, n, err := codec.ReadGT(r)
	total += n
	if err != nil {
		return total, err
	}
	ak.EGH = egh
	return total, nil
}

// WriteTo serializes ct as sa1[0..2] || sa2[0..6] || enc_key || t:u32-le ||
// gamma_g2. Unlike spec.md's data-model table, there is no standalone x
// field between sa2 and enc_key — see SPEC_FULL.md §9(a) for why.
func (ct *Ciphertext) WriteTo(w io.Writer) (int64, error) {
	var total int64
	for _, p := range ct.SA1 {
		n, err := codec.WriteG1(w, p)
		total += n
		if err != nil {
			return total, err
		}
	}
	for _, p := range ct.SA2 {
		n, err := codec.WriteG2(w, p)
		total += n
		if err != nil {
			return total, err
		}
	}
	n, err := codec.WriteGT(w, ct.EncKey)
	total += n
	if err != nil {
		return total, err
	}
	n, err = codec.WriteUint32(w, uint32(ct.T))
	total += n
	if err != nil {
		return total, err
	}
	n, err = codec.WriteG2(w, ct.GammaG2)
	total += n
	return total, err
}

// ReadFrom deserializes the layout WriteTo writes.
func (ct *Ciphertext) ReadFrom(r io.Reader) (int64, error) {
	var total int64
	for i := range ct.SA1 {
		n, err := codec.ReadG1(r, &ct.SA1[i])
		total += n
		if err != nil {
			return total, err
		}
	}
	for i := range ct.SA2 {
		n, err := codec.ReadG2(r, &ct.SA2[i])
		total += n
		if err != nil {
			return total, err
		}
	}
	encKey, n, err := codec.ReadGT(r)
	total += n
	if err != nil {
		return total, err
	}
	ct.EncKey = encKey

	t, n, err := codec.ReadUint32(r)
	total += n
	if err != nil {
		return total, err
	}
	ct.T = int(t)

	n, err = codec.ReadG2(r, &ct.GammaG2)
	total += n
	if err != nil {
		return total, err
	}
	return total, nil
}
