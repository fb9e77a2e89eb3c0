package dlog

import (
	"crypto/rand"
	"math/big"

	"golang.org/x/xerrors"

	"github.com/sigmakit/sigmacore/group"
	"github.com/sigmakit/sigmacore/sigma"
	"github.com/sigmakit/sigmacore/wire"
)

// Verifier is the verifier-side computation: checks g^z == a * h^e.
type Verifier struct {
	g group.Group
	t int

	challenge []byte
}

// NewVerifier constructs a Verifier for the given group and soundness
// parameter t.
func NewVerifier(g group.Group, t int) (*Verifier, error) {
	if err := sigma.ValidateSoundness(t, g.Order().BitLen()); err != nil {
		return nil, err
	}

	return &Verifier{g: g, t: t}, nil
}

// SampleChallenge draws ChallengeByteLen(t) uniform bytes and stores them.
func (v *Verifier) SampleChallenge() ([]byte, error) {
	buf := make([]byte, sigma.ChallengeByteLen(v.t))
	if _, err := rand.Read(buf); err != nil {
		return nil, xerrors.Errorf("failed to sample challenge: %w", err)
	}
	v.challenge = buf

	return buf, nil
}

// SetChallenge overrides the stored challenge.
func (v *Verifier) SetChallenge(challenge []byte) { v.challenge = challenge }

// GetChallenge returns the stored challenge, or nil if unset.
func (v *Verifier) GetChallenge() []byte { return v.challenge }

// Verify checks validate_params(G) && is_member(h) && g^z == a*h^e.
func (v *Verifier) Verify(common sigma.CommonInput, a, z wire.Message) (bool, error) {
	ci, ok := common.(CommonInput)
	if !ok {
		return false, xerrors.Errorf("dlog: expected dlog.CommonInput, got %T: %w", common, sigma.ErrInvalidInput)
	}

	aMsg, ok := a.(wire.GroupElementMsg)
	if !ok {
		return false, xerrors.Errorf("dlog: first move: expected GroupElementMsg, got %T: %w", a, sigma.ErrInvalidInput)
	}
	zMsg, ok := z.(wire.ScalarMsg)
	if !ok {
		return false, xerrors.Errorf("dlog: second move: expected ScalarMsg, got %T: %w", z, sigma.ErrInvalidInput)
	}

	if !v.g.ValidateParams() || !v.g.IsMember(ci.H) {
		return false, nil
	}

	aElt, err := v.g.Decode(aMsg.Enc)
	if err != nil {
		return false, nil
	}

	e := new(big.Int).SetBytes(v.challenge)
	lhs := v.g.Exponentiate(v.g.Generator(), zMsg.Z)
	rhs := v.g.Multiply(aElt, v.g.Exponentiate(ci.H, e))

	return lhs.Equal(rhs), nil
}

// SoundnessBits returns t.
func (v *Verifier) SoundnessBits() int { return v.t }
