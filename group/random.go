package group

import (
	crand "crypto/rand"
	"math/big"

	"go.dedis.ch/kyber/v3/util/random"
)

// randomScalarMod draws a uniform integer in [0, q-1] using kyber's
// util/random reject-sampling loop (random.Int draws bitlen(q) random bits
// repeatedly from a crypto/rand-backed stream until the result lands in
// [0, q-1]) rather than a biased wide-reduction.
func randomScalarMod(q *big.Int) (*big.Int, error) {
	if q.Sign() <= 0 {
		return nil, ErrInvalidParams
	}

	return random.Int(q, random.New(crand.Reader)), nil
}
