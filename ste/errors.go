// Package ste implements the silent threshold encryption scheme's key
// generation, aggregation, encryption and decryption-aggregation operations
// (spec.md §4.3-4.7) on top of the curve, poly, kzg and lagrange packages.
package ste

import (
	"errors"

	"github.com/anepoti71/silent-threshold-encryption/kzg"
)

// The four error families spec.md §7 assigns the core, each a checkable
// sentinel wrapped with fmt.Errorf("%w: detail", ...) at every call site so
// errors.Is keeps working for callers that branch on error kind.
var (
	// ErrInvalidParameter reports a structurally invalid request: a
	// negative or out-of-range id, n not matching what a component expects,
	// a threshold out of range.
	ErrInvalidParameter = errors.New("ste: invalid parameter")

	// ErrMalformedInput reports a committee that fails NewAggregateKey's
	// well-formedness check: an id out of range, a duplicate id, or a party 0
	// key that is not the generator. ReadFrom methods return the underlying
	// read or decoding error instead.
	ErrMalformedInput = errors.New("ste: malformed input")

	// ErrSelectorInvalid reports a decryption selector that violates the
	// scheme's invariants: party 0 not selected, a number of selected
	// parties other than t+1, or a length mismatch against the committee size.
	ErrSelectorInvalid = errors.New("ste: invalid selector")

	// ErrCeremonyState is kzg.ErrCeremonyState re-exported so callers that
	// only import ste can still errors.Is against it; kzg.Ceremony's own
	// methods return kzg.ErrCeremonyState directly, and this being the same
	// value (not a lookalike) is what keeps that check working.
	ErrCeremonyState = kzg.ErrCeremonyState
)
