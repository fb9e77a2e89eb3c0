package dh

import (
	"crypto/rand"
	"math/big"

	"golang.org/x/xerrors"

	"github.com/sigmakit/sigmacore/group"
	"github.com/sigmakit/sigmacore/sigma"
	"github.com/sigmakit/sigmacore/wire"
)

// Simulator produces accepting DH transcripts without the witness: it
// samples z first, then sets a1 = g^z*u^-e, a2 = h^z*v^-e so both
// verification equations hold by construction.
type Simulator struct {
	g group.Group
	t int
}

// NewSimulator constructs a Simulator for the given group and t.
func NewSimulator(g group.Group, t int) *Simulator {
	return &Simulator{g: g, t: t}
}

// Simulate produces a transcript for the given challenge.
func (s *Simulator) Simulate(common sigma.CommonInput, challenge []byte) (wire.Message, []byte, wire.Message, error) {
	ci, ok := common.(CommonInput)
	if !ok {
		return nil, nil, nil, xerrors.Errorf("dh: expected dh.CommonInput, got %T: %w", common, sigma.ErrInvalidInput)
	}
	if want := sigma.ChallengeByteLen(s.t); len(challenge) != want {
		return nil, nil, nil, xerrors.Errorf("dh: challenge is %d bytes, want %d: %w", len(challenge), want, sigma.ErrCheatAttempt)
	}

	z, err := s.g.RandomScalar()
	if err != nil {
		return nil, nil, nil, xerrors.Errorf("failed to sample z: %w", err)
	}

	e := new(big.Int).SetBytes(challenge)

	uInvE := s.g.Inverse(s.g.Exponentiate(ci.U, e))
	a1 := s.g.Multiply(s.g.Exponentiate(s.g.Generator(), z), uInvE)

	vInvE := s.g.Inverse(s.g.Exponentiate(ci.V, e))
	a2 := s.g.Multiply(s.g.Exponentiate(ci.H, z), vInvE)

	aMsg := wire.NewPairMsg(wire.NewGroupElementMsg(s.g.Encode(a1)), wire.NewGroupElementMsg(s.g.Encode(a2)))
	return aMsg, challenge, wire.NewScalarMsg(z), nil
}

// SimulateRandom samples a fresh challenge, then behaves like Simulate.
func (s *Simulator) SimulateRandom(common sigma.CommonInput) (wire.Message, []byte, wire.Message, error) {
	challenge := make([]byte, sigma.ChallengeByteLen(s.t))
	if _, err := rand.Read(challenge); err != nil {
		return nil, nil, nil, xerrors.Errorf("failed to sample challenge: %w", err)
	}

	return s.Simulate(common, challenge)
}

// SoundnessBits returns t.
func (s *Simulator) SoundnessBits() int { return s.t }
