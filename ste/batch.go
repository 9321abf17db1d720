package ste

import (
	"fmt"
	"io"

	"golang.org/x/sync/errgroup"

	"github.com/anepoti71/silent-threshold-encryption/curve"
	"github.com/anepoti71/silent-threshold-encryption/lagrange"
)

// BatchKeyGen samples n secret keys, forcing party 0 to the nullified dummy
// secret every committee requires, and derives every PublicKey concurrently
// against preprocessed lp. This is the supplemented batch variant spec.md
// §4.3 calls out but original_source/src/setup.rs leaves to its own test
// loop rather than implementing directly.
//
// Secrets are sampled sequentially from rng so the result stays
// deterministic for a deterministic rng; only the independent PublicKey
// derivations run concurrently, via errgroup.
func BatchKeyGen(rng io.Reader, lp *lagrange.Powers, n int) ([]curve.SecretKey, []PublicKey, error) {
	if n <= 0 {
		return nil, nil, fmt.Errorf("%w: n must be at least 1, got %d", ErrInvalidParameter, n)
	}
	if lp.N != n {
		return nil, nil, fmt.Errorf("%w: lagrange powers size (%d) does not match n (%d)", ErrInvalidParameter, lp.N, n)
	}

	sks := make([]curve.SecretKey, n)
	for i := 0; i < n; i++ {
		sk, err := curve.NewSecretKey(rng)
		if err != nil {
			return nil, nil, err
		}
		sks[i] = *sk
	}
	sks[0].Nullify()

	pks := make([]PublicKey, n)
	var g errgroup.Group
	for i := 0; i < n; i++ {
		i := i
		g.Go(func() error {
			pk, err := LagrangeGetPK(&sks[i], i, lp, n)
			if err != nil {
				return err
			}
			pks[i] = *pk
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}

	return sks, pks, nil
}
