// Package sigma implements the abstract three-move Sigma protocol machinery
// shared by every concrete protocol: the Prover/Verifier/Simulator
// contracts, the prover and verifier drivers that run the wire flow over a
// channel.Channel, and the state-machine and error-taxonomy invariants that
// every concrete protocol (dlog, dh, and) must honor.
package sigma

import "github.com/sigmakit/sigmacore/wire"

// CommonInput is the per-protocol public statement (e.g. h for Dlog, or
// (h,u,v) for DH). It carries no behavior: it exists purely so the core can
// hold heterogeneous statements (in the AND combinator) behind one type
// while each concrete protocol still declares, by implementing this
// interface, that its own statement type belongs to the Sigma family.
type CommonInput interface {
	// SigmaCommonInput is a marker method with no behavior.
	SigmaCommonInput()
}

// ProverInput is CommonInput plus whatever witness the prover needs to
// satisfy it.
type ProverInput interface {
	// SigmaProverInput is a marker method with no behavior.
	SigmaProverInput()
}

// Prover is the computation contract every concrete protocol's prover side
// satisfies. compute_first MUST be called exactly once before
// compute_second. The ProverDriver enforces that ordering; the dlog and dh
// computations also return ErrProtocolMisuse from ComputeSecond when no
// ComputeFirst preceded it.
type Prover interface {
	// ComputeFirst samples fresh randomness, stores it as transient state,
	// and returns the first move a.
	ComputeFirst(input ProverInput) (wire.Message, error)

	// ComputeSecond consumes the stored randomness and the given
	// challenge to produce the second move z. It returns ErrCheatAttempt
	// if len(challenge) != ChallengeByteLen(SoundnessBits()).
	ComputeSecond(challenge []byte) (wire.Message, error)

	// SoundnessBits returns t.
	SoundnessBits() int

	// Simulator returns a matching Simulator: same t, same group.
	Simulator() Simulator
}

// Verifier is the computation contract every concrete protocol's verifier
// side satisfies. It is stateful only in the challenge it holds; Verify is
// otherwise a pure function of its arguments.
type Verifier interface {
	// SampleChallenge draws ChallengeByteLen(t) uniform bytes and stores
	// them as the current challenge.
	SampleChallenge() ([]byte, error)

	// SetChallenge overrides the stored challenge (e.g. with a value read
	// from the wire).
	SetChallenge(challenge []byte)

	// GetChallenge returns the stored challenge, or nil if none has been
	// set yet.
	GetChallenge() []byte

	// Verify checks a and z against common using the stored challenge. It
	// returns ErrInvalidInput if either message has the wrong variant or
	// common has the wrong concrete type for this protocol.
	Verify(common CommonInput, a, z wire.Message) (bool, error)

	// SoundnessBits returns t.
	SoundnessBits() int
}

// Simulator is the contract every concrete protocol must provide: the
// device that proves honest-verifier zero-knowledge by producing accepting
// transcripts without the witness.
type Simulator interface {
	// Simulate produces an accepting transcript (a, e, z) for the given
	// challenge e. It returns ErrCheatAttempt if len(e) !=
	// ChallengeByteLen(SoundnessBits()).
	Simulate(common CommonInput, challenge []byte) (a wire.Message, e []byte, z wire.Message, err error)

	// SimulateRandom samples a fresh challenge first, then behaves like
	// Simulate.
	SimulateRandom(common CommonInput) (a wire.Message, e []byte, z wire.Message, err error)

	// SoundnessBits returns t.
	SoundnessBits() int
}
