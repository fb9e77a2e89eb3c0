package dh

import (
	"crypto/rand"
	"math/big"

	"golang.org/x/xerrors"

	"github.com/sigmakit/sigmacore/group"
	"github.com/sigmakit/sigmacore/sigma"
	"github.com/sigmakit/sigmacore/wire"
)

// Verifier is the verifier-side computation: checks g^z == a1*u^e and
// h^z == a2*v^e.
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

// Verify checks validate_params(G) && is_member(u,v,h) && the pair of
// verification equations.
func (v *Verifier) Verify(common sigma.CommonInput, a, z wire.Message) (bool, error) {
	ci, ok := common.(CommonInput)
	if !ok {
		return false, xerrors.Errorf("dh: expected dh.CommonInput, got %T: %w", common, sigma.ErrInvalidInput)
	}

	aMsg, ok := a.(wire.PairMsg)
	if !ok {
		return false, xerrors.Errorf("dh: first move: expected PairMsg, got %T: %w", a, sigma.ErrInvalidInput)
	}
	zMsg, ok := z.(wire.ScalarMsg)
	if !ok {
		return false, xerrors.Errorf("dh: second move: expected ScalarMsg, got %T: %w", z, sigma.ErrInvalidInput)
	}

	if !v.g.ValidateParams() || !v.g.IsMember(ci.H) || !v.g.IsMember(ci.U) || !v.g.IsMember(ci.V) {
		return false, nil
	}

	a1, err := v.g.Decode(aMsg.A.Enc)
	if err != nil {
		return false, nil
	}
	a2, err := v.g.Decode(aMsg.B.Enc)
	if err != nil {
		return false, nil
	}

	e := new(big.Int).SetBytes(v.challenge)

	lhs1 := v.g.Exponentiate(v.g.Generator(), zMsg.Z)
	rhs1 := v.g.Multiply(a1, v.g.Exponentiate(ci.U, e))

	lhs2 := v.g.Exponentiate(ci.H, zMsg.Z)
	rhs2 := v.g.Multiply(a2, v.g.Exponentiate(ci.V, e))

	return lhs1.Equal(rhs1) && lhs2.Equal(rhs2), nil
}

// SoundnessBits returns t.
func (v *Verifier) SoundnessBits() int { return v.t }
