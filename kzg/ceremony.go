package kzg

import (
	"fmt"
	"io"

	"github.com/anepoti71/silent-threshold-encryption/curve"
	"github.com/anepoti71/silent-threshold-encryption/poly"
)

// ErrCeremonyState reports an operation attempted in the wrong ceremony
// state: contributing after finalize (spec.md §4.8). VerifyContribution
// reports an out-of-range index by returning false, not this error.
var ErrCeremonyState = fmt.Errorf("kzg: invalid ceremony state")

type ceremonyState int

const (
	stateContributing ceremonyState = iota
	stateFinalized
)

// contribution records one participant's update to the running powers of
// tau, plus the proof elements (tau*g, tau*h at that step) verify_contribution
// checks for internal consistency.
type contribution struct {
	powersOfG []curve.G1
	powersOfH []curve.G2
	proofG    curve.G1
	proofH    curve.G2
}

// Ceremony runs the multi-party powers-of-tau protocol described in
// spec.md §4.1 and §4.8: Empty -> Contributing(k) -> Finalized. Security
// reduces to "at least one contributor destroyed their secret and was
// honest" (original_source/src/trusted_setup.rs's security model).
type Ceremony struct {
	maxDegree     int
	state         ceremonyState
	contributions []contribution
}

// NewCeremony starts a ceremony with the first participant's contribution,
// sampled from rng.
func NewCeremony(maxDegree int, rng io.Reader) (*Ceremony, error) {
	if maxDegree < 1 {
		return nil, fmt.Errorf("%w: max degree must be at least 1, got %d", ErrInvalidParameter, maxDegree)
	}

	tau, err := curve.RandomNonZeroScalar(rng)
	if err != nil {
		return nil, err
	}
	c := &Ceremony{maxDegree: maxDegree}
	c.contributions = append(c.contributions, contributeFrom(nil, maxDegree, tau))
	tau.SetZero() // destroy the secret as soon as the contribution is built
	return c, nil
}

// Contribute adds a new participant's contribution, re-randomizing the
// accumulated powers by a fresh secret sampled from rng. The caller's rng
// state and this function's local tau must be discarded immediately after
// (spec.md §4.1: "s MUST be destroyed").
func (c *Ceremony) Contribute(rng io.Reader) error {
	if c.state == stateFinalized {
		return fmt.Errorf("%w: cannot contribute after finalize", ErrCeremonyState)
	}
	tau, err := curve.RandomNonZeroScalar(rng)
	if err != nil {
		return err
	}
	prev := &c.contributions[len(c.contributions)-1]
	c.contributions = append(c.contributions, contributeFrom(prev, c.maxDegree, tau))
	tau.SetZero()
	return nil
}

func contributeFrom(prev *contribution, maxDegree int, tau curve.Scalar) contribution {
	powersOfTau := make([]curve.Scalar, maxDegree+1)
	powersOfTau[0].SetOne()
	for i := 1; i <= maxDegree; i++ {
		powersOfTau[i].Mul(&powersOfTau[i-1], &tau)
	}

	var newG []curve.G1
	var newH []curve.G2
	if prev == nil {
		newG = batchScalarMulG1(curve.G(), powersOfTau)
		newH = batchScalarMulG2(curve.H(), powersOfTau)
	} else {
		newG = reRandomizeG1(prev.powersOfG, powersOfTau)
		newH = reRandomizeG2(prev.powersOfH, powersOfTau)
	}

	return contribution{
		powersOfG: newG,
		powersOfH: newH,
		proofG:    newG[1],
		proofH:    newH[1],
	}
}

func reRandomizeG1(prevPowers []curve.G1, powersOfTau []curve.Scalar) []curve.G1 {
	out := make([]curve.G1, len(prevPowers))
	for i := range prevPowers {
		out[i] = poly.ScalarMulG1(prevPowers[i], powersOfTau[i])
	}
	return out
}

func reRandomizeG2(prevPowers []curve.G2, powersOfTau []curve.Scalar) []curve.G2 {
	out := make([]curve.G2, len(prevPowers))
	for i := range prevPowers {
		out[i] = poly.ScalarMulG2(prevPowers[i], powersOfTau[i])
	}
	return out
}

// VerifyContribution checks contribution index against contribution
// index-1: vector lengths, unchanged base points, and the pairing equation
// e(powers_of_g[index][1], proof_h[index-1]) == e(proof_g[index-1], proof_h[index]),
// which holds iff contribution index's G1 power of tau and its recorded G2
// proof element carry the same scalar. No per-contributor s*g element is
// recorded, so the check does not prove that contribution index was built
// on top of contribution index-1's powers.
func (c *Ceremony) VerifyContribution(index int) bool {
	if index <= 0 || index >= len(c.contributions) {
		return false
	}
	prev := c.contributions[index-1]
	curr := c.contributions[index]

	if len(curr.powersOfG) != c.maxDegree+1 || len(curr.powersOfH) != c.maxDegree+1 {
		return false
	}
	// tau^0 = 1 always, so the base points are unaffected by any
	// contribution.
	if !curve.ConstantTimeEqualG1(curr.powersOfG[0], prev.powersOfG[0]) {
		return false
	}
	if !curve.ConstantTimeEqualG2(curr.powersOfH[0], prev.powersOfH[0]) {
		return false
	}

	// e(curr.powers_of_g[1], prev.proof_h) == e(prev.proof_g, curr.proof_h):
	// for honest contributions both sides equal e(g,h)^{tau_prev*tau_curr};
	// a proof copied from another contribution carries a different scalar.
	lhs, err := curve.Pairing(curr.powersOfG[1], prev.proofH)
	if err != nil {
		return false
	}
	rhs, err := curve.Pairing(prev.proofG, curr.proofH)
	if err != nil {
		return false
	}
	return lhs.Equal(&rhs)
}

// Finalize extracts the UniversalParams from the last contribution and
// moves the ceremony into the Finalized state, rejecting any further
// contribution attempts.
func (c *Ceremony) Finalize() *UniversalParams {
	c.state = stateFinalized
	last := c.contributions[len(c.contributions)-1]
	return &UniversalParams{
		PowersOfG: last.powersOfG,
		PowersOfH: last.powersOfH,
		H:         last.powersOfH[0],
		BetaH:     last.powersOfH[1],
	}
}

// NumParticipants returns how many contributions have been made so far.
func (c *Ceremony) NumParticipants() int {
	return len(c.contributions)
}
