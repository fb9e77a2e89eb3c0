package and

import (
	"crypto/rand"

	"golang.org/x/xerrors"

	"github.com/sigmakit/sigmacore/sigma"
	"github.com/sigmakit/sigmacore/wire"
)

// Verifier AND-folds the verdicts of N sub-verifiers sharing one challenge.
type Verifier struct {
	subs []sigma.Verifier
	t    int

	challenge []byte
}

// NewVerifier composes the given sub-verifiers. All subs must agree on
// soundness parameter t, or construction fails with ErrInvalidConfig.
func NewVerifier(subs []sigma.Verifier) (*Verifier, error) {
	if len(subs) == 0 {
		return nil, xerrors.Errorf("and: no sub-protocols given: %w", sigma.ErrInvalidConfig)
	}

	t := subs[0].SoundnessBits()
	for i, s := range subs {
		if s.SoundnessBits() != t {
			return nil, xerrors.Errorf("and: sub-protocol %d has t=%d, want %d: %w", i, s.SoundnessBits(), t, sigma.ErrInvalidConfig)
		}
	}

	return &Verifier{subs: subs, t: t}, nil
}

// SampleChallenge draws ChallengeByteLen(t) uniform bytes, stores them on
// the Verifier and propagates them to every sub-verifier.
func (v *Verifier) SampleChallenge() ([]byte, error) {
	buf := make([]byte, sigma.ChallengeByteLen(v.t))
	if _, err := rand.Read(buf); err != nil {
		return nil, xerrors.Errorf("failed to sample challenge: %w", err)
	}
	v.SetChallenge(buf)

	return buf, nil
}

// SetChallenge overrides the stored challenge and propagates it to every
// sub-verifier, since each sub.Verify reads its own stored challenge.
func (v *Verifier) SetChallenge(challenge []byte) {
	v.challenge = challenge
	for _, sub := range v.subs {
		sub.SetChallenge(challenge)
	}
}

// GetChallenge returns the stored challenge, or nil if unset.
func (v *Verifier) GetChallenge() []byte { return v.challenge }

// Verify checks a and z, both CompoundMsg of N items, against an ordered
// list of N sub-statements. Every sub-verification is evaluated regardless
// of earlier outcomes; the combinator accepts only if all N do.
func (v *Verifier) Verify(common sigma.CommonInput, a, z wire.Message) (bool, error) {
	ci, ok := common.(CommonInput)
	if !ok {
		return false, xerrors.Errorf("and: expected and.CommonInput, got %T: %w", common, sigma.ErrInvalidInput)
	}
	if len(ci.Items) != len(v.subs) {
		return false, xerrors.Errorf("and: got %d sub-statements, want %d: %w", len(ci.Items), len(v.subs), sigma.ErrInvalidInput)
	}

	aCompound, ok := a.(wire.CompoundMsg)
	if !ok {
		return false, xerrors.Errorf("and: first move: expected CompoundMsg, got %T: %w", a, sigma.ErrInvalidInput)
	}
	zCompound, ok := z.(wire.CompoundMsg)
	if !ok {
		return false, xerrors.Errorf("and: second move: expected CompoundMsg, got %T: %w", z, sigma.ErrInvalidInput)
	}
	if len(aCompound.Items) != len(v.subs) || len(zCompound.Items) != len(v.subs) {
		return false, xerrors.Errorf("and: got %d/%d sub-messages, want %d: %w", len(aCompound.Items), len(zCompound.Items), len(v.subs), sigma.ErrInvalidInput)
	}

	accept := true
	for i, sub := range v.subs {
		ok, err := sub.Verify(ci.Items[i], aCompound.Items[i], zCompound.Items[i])
		if err != nil {
			return false, xerrors.Errorf("and: sub-protocol %d verify: %w", i, err)
		}
		if !ok {
			accept = false
		}
	}

	return accept, nil
}

// SoundnessBits returns the shared t.
func (v *Verifier) SoundnessBits() int { return v.t }
