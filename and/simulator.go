package and

import (
	"crypto/rand"

	"golang.org/x/xerrors"

	"github.com/sigmakit/sigmacore/sigma"
	"github.com/sigmakit/sigmacore/wire"
)

// Simulator runs each sub-simulator against the same shared challenge and
// bundles the resulting a's and z's into CompoundMsg values.
type Simulator struct {
	subs []sigma.Simulator
	t    int
}

// NewSimulator composes the given sub-simulators. All subs must agree on
// soundness parameter t, or construction fails with ErrInvalidConfig.
func NewSimulator(subs []sigma.Simulator) (*Simulator, error) {
	if len(subs) == 0 {
		return nil, xerrors.Errorf("and: no sub-protocols given: %w", sigma.ErrInvalidConfig)
	}

	t := subs[0].SoundnessBits()
	for i, s := range subs {
		if s.SoundnessBits() != t {
			return nil, xerrors.Errorf("and: sub-protocol %d has t=%d, want %d: %w", i, s.SoundnessBits(), t, sigma.ErrInvalidConfig)
		}
	}

	return &Simulator{subs: subs, t: t}, nil
}

// Simulate produces a transcript for the given shared challenge.
func (s *Simulator) Simulate(common sigma.CommonInput, challenge []byte) (wire.Message, []byte, wire.Message, error) {
	ci, ok := common.(CommonInput)
	if !ok {
		return nil, nil, nil, xerrors.Errorf("and: expected and.CommonInput, got %T: %w", common, sigma.ErrInvalidInput)
	}
	if len(ci.Items) != len(s.subs) {
		return nil, nil, nil, xerrors.Errorf("and: got %d sub-statements, want %d: %w", len(ci.Items), len(s.subs), sigma.ErrInvalidInput)
	}
	if want := sigma.ChallengeByteLen(s.t); len(challenge) != want {
		return nil, nil, nil, xerrors.Errorf("and: challenge is %d bytes, want %d: %w", len(challenge), want, sigma.ErrCheatAttempt)
	}

	aItems := make([]wire.Message, len(s.subs))
	zItems := make([]wire.Message, len(s.subs))
	for i, sub := range s.subs {
		a, _, z, err := sub.Simulate(ci.Items[i], challenge)
		if err != nil {
			return nil, nil, nil, xerrors.Errorf("and: sub-protocol %d simulate: %w", i, err)
		}
		aItems[i] = a
		zItems[i] = z
	}

	return wire.NewCompoundMsg(aItems...), challenge, wire.NewCompoundMsg(zItems...), nil
}

// SimulateRandom samples a fresh challenge, then behaves like Simulate.
func (s *Simulator) SimulateRandom(common sigma.CommonInput) (wire.Message, []byte, wire.Message, error) {
	challenge := make([]byte, sigma.ChallengeByteLen(s.t))
	if _, err := rand.Read(challenge); err != nil {
		return nil, nil, nil, xerrors.Errorf("failed to sample challenge: %w", err)
	}

	return s.Simulate(common, challenge)
}

// SoundnessBits returns the shared t.
func (s *Simulator) SoundnessBits() int { return s.t }
