// Package and implements the AND composition combinator: it runs N
// sub-protocols in parallel under one shared challenge. The sub-protocols
// are heterogeneous (a Dlog proof and a DH proof can compose), so this
// package carries them as sigma.Prover/sigma.Verifier/sigma.Simulator
// values rather than any single concrete type.
package and

import (
	"golang.org/x/xerrors"

	"github.com/sigmakit/sigmacore/sigma"
	"github.com/sigmakit/sigmacore/wire"
)

// CommonInput is an ordered list of sub-statements, one per sub-protocol.
type CommonInput struct {
	Items []sigma.CommonInput
}

// SigmaCommonInput implements sigma.CommonInput.
func (CommonInput) SigmaCommonInput() {}

// ProverInput is an ordered list of sub-prover-inputs, one per
// sub-protocol, each already carrying its own common input.
type ProverInput struct {
	Items []sigma.ProverInput
}

// SigmaProverInput implements sigma.ProverInput.
func (ProverInput) SigmaProverInput() {}

// Computation runs each sub-protocol's compute_first/compute_second under
// the shared challenge.
type Computation struct {
	subs []sigma.Prover
	t    int
}

// NewComputation composes the given sub-provers. All subs must agree on
// soundness parameter t, or construction fails with ErrInvalidConfig.
func NewComputation(subs []sigma.Prover) (*Computation, error) {
	if len(subs) == 0 {
		return nil, xerrors.Errorf("and: no sub-protocols given: %w", sigma.ErrInvalidConfig)
	}

	t := subs[0].SoundnessBits()
	for i, s := range subs {
		if s.SoundnessBits() != t {
			return nil, xerrors.Errorf("and: sub-protocol %d has t=%d, want %d: %w", i, s.SoundnessBits(), t, sigma.ErrInvalidConfig)
		}
	}

	return &Computation{subs: subs, t: t}, nil
}

// ComputeFirst calls compute_first on every sub-prover and bundles the
// results into one CompoundMsg, in sub-protocol order.
func (c *Computation) ComputeFirst(input sigma.ProverInput) (wire.Message, error) {
	in, ok := input.(ProverInput)
	if !ok {
		return nil, xerrors.Errorf("and: expected and.ProverInput, got %T: %w", input, sigma.ErrInvalidInput)
	}
	if len(in.Items) != len(c.subs) {
		return nil, xerrors.Errorf("and: got %d sub-inputs, want %d: %w", len(in.Items), len(c.subs), sigma.ErrInvalidInput)
	}

	items := make([]wire.Message, len(c.subs))
	for i, sub := range c.subs {
		a, err := sub.ComputeFirst(in.Items[i])
		if err != nil {
			return nil, xerrors.Errorf("and: sub-protocol %d compute_first: %w", i, err)
		}
		items[i] = a
	}

	return wire.NewCompoundMsg(items...), nil
}

// ComputeSecond calls compute_second on every sub-prover with the same
// shared challenge and bundles the results into one CompoundMsg.
func (c *Computation) ComputeSecond(challenge []byte) (wire.Message, error) {
	items := make([]wire.Message, len(c.subs))
	for i, sub := range c.subs {
		z, err := sub.ComputeSecond(challenge)
		if err != nil {
			return nil, xerrors.Errorf("and: sub-protocol %d compute_second: %w", i, err)
		}
		items[i] = z
	}

	return wire.NewCompoundMsg(items...), nil
}

// SoundnessBits returns the shared t.
func (c *Computation) SoundnessBits() int { return c.t }

// Simulator returns a Simulator built from each sub-prover's own Simulator.
func (c *Computation) Simulator() sigma.Simulator {
	subs := make([]sigma.Simulator, len(c.subs))
	for i, sub := range c.subs {
		subs[i] = sub.Simulator()
	}

	return &Simulator{subs: subs, t: c.t}
}
