// Package dh implements the Chaum-Pedersen Sigma protocol: proof of
// knowledge of w such that g^w = u and h^w = v, i.e. that (g, h, u, v) is a
// Diffie-Hellman tuple.
package dh

import (
	"math/big"

	"golang.org/x/xerrors"

	"github.com/sigmakit/sigmacore/group"
	"github.com/sigmakit/sigmacore/sigma"
	"github.com/sigmakit/sigmacore/wire"
)

// CommonInput is the public statement: h, and the tuple (u, v) claimed to
// satisfy g^w = u, h^w = v for some w.
type CommonInput struct {
	H group.Element
	U group.Element
	V group.Element
}

// SigmaCommonInput implements sigma.CommonInput.
func (CommonInput) SigmaCommonInput() {}

// ProverInput is the statement plus the witness w.
type ProverInput struct {
	CommonInput
	W *big.Int
}

// SigmaProverInput implements sigma.ProverInput.
func (ProverInput) SigmaProverInput() {}

// Computation is the prover-side computation: sample r, commit
// (a1, a2) = (g^r, h^r), then respond z = r + e*w mod q.
type Computation struct {
	g group.Group
	t int

	w *big.Int
	r *big.Int
}

// NewComputation constructs a Computation for the given group and
// soundness parameter t, validating t <= bitlen(q)-1.
func NewComputation(g group.Group, t int) (*Computation, error) {
	if err := sigma.ValidateSoundness(t, g.Order().BitLen()); err != nil {
		return nil, err
	}

	return &Computation{g: g, t: t}, nil
}

// ComputeFirst samples r uniformly from [0, q-1], stores it, and returns
// the pair (g^r, h^r).
func (c *Computation) ComputeFirst(input sigma.ProverInput) (wire.Message, error) {
	in, ok := input.(ProverInput)
	if !ok {
		return nil, xerrors.Errorf("dh: expected dh.ProverInput, got %T: %w", input, sigma.ErrInvalidInput)
	}
	c.w = in.W

	r, err := c.g.RandomScalar()
	if err != nil {
		return nil, xerrors.Errorf("failed to sample r: %w", err)
	}
	c.r = r

	a1 := c.g.Exponentiate(c.g.Generator(), r)
	a2 := c.g.Exponentiate(in.H, r)

	return wire.NewPairMsg(wire.NewGroupElementMsg(c.g.Encode(a1)), wire.NewGroupElementMsg(c.g.Encode(a2))), nil
}

// ComputeSecond consumes the stored r and the challenge to produce
// z = r + e*w mod q, then clears the stored randomness.
func (c *Computation) ComputeSecond(challenge []byte) (wire.Message, error) {
	if want := sigma.ChallengeByteLen(c.t); len(challenge) != want {
		return nil, xerrors.Errorf("dh: challenge is %d bytes, want %d: %w", len(challenge), want, sigma.ErrCheatAttempt)
	}
	if c.r == nil {
		return nil, xerrors.Errorf("dh: ComputeSecond called before ComputeFirst: %w", sigma.ErrProtocolMisuse)
	}

	q := c.g.Order()
	e := new(big.Int).SetBytes(challenge)
	z := new(big.Int).Mod(new(big.Int).Add(c.r, new(big.Int).Mul(e, c.w)), q)

	c.r = nil
	return wire.NewScalarMsg(z), nil
}

// SoundnessBits returns t.
func (c *Computation) SoundnessBits() int { return c.t }

// Simulator returns a Simulator for the same group and t.
func (c *Computation) Simulator() sigma.Simulator {
	return &Simulator{g: c.g, t: c.t}
}
