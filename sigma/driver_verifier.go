package sigma

import (
	"context"

	"github.com/mr-tron/base58"
	"go.uber.org/zap"
	"golang.org/x/xerrors"

	"github.com/sigmakit/sigmacore/channel"
	"github.com/sigmakit/sigmacore/wire"
)

// VerifierDriver drives the three-move flow on the verifier side:
//
//	INIT --recv a / send e--> AWAIT_RESPONSE --verify--> ACCEPT | REJECT
//
// The driver is constructed with the expected wire.Variant of a and z, so
// that it can decode whatever bytes arrive without the concrete protocol
// having to be consulted first.
type VerifierDriver struct {
	ch          channel.Channel
	computation Verifier
	log         *zap.SugaredLogger

	aVariant wire.Variant
	zVariant wire.Variant

	a wire.Message
	z wire.Message

	doneChallenge bool
}

// NewVerifierDriver constructs a VerifierDriver bound to ch and
// computation, expecting a to carry aVariant and z to carry zVariant.
func NewVerifierDriver(ch channel.Channel, computation Verifier, aVariant, zVariant wire.Variant) *VerifierDriver {
	return &VerifierDriver{
		ch:          ch,
		computation: computation,
		aVariant:    aVariant,
		zVariant:    zVariant,
		log:         zap.NewNop().Sugar(),
	}
}

// SetLogger attaches a logger the driver uses for protocol-level events.
// Without a call to SetLogger, the driver logs nowhere.
func (d *VerifierDriver) SetLogger(log *zap.SugaredLogger) { d.log = log }

// SampleChallenge delegates to the underlying Verifier.
func (d *VerifierDriver) SampleChallenge() ([]byte, error) {
	return d.computation.SampleChallenge()
}

// SendChallenge receives a from the prover, samples a challenge if one has
// not already been set, and sends it.
func (d *VerifierDriver) SendChallenge(ctx context.Context) error {
	raw, err := d.ch.ReceiveSized(ctx)
	if err != nil {
		d.log.Errorw("failed to receive first move", "error", err)
		return xerrors.Errorf("failed to receive first move: %w", err)
	}

	a, err := wire.DecodeVariant(d.aVariant, raw)
	if err != nil {
		d.log.Errorw("failed to decode first move", "error", err)
		return xerrors.Errorf("failed to decode first move: %w", err)
	}
	d.a = a
	d.log.Debugw("received first move", "a", base58.Encode(raw))

	challenge := d.computation.GetChallenge()
	if challenge == nil {
		challenge, err = d.SampleChallenge()
		if err != nil {
			d.log.Errorw("failed to sample challenge", "error", err)
			return xerrors.Errorf("failed to sample challenge: %w", err)
		}
	}

	if err := d.ch.SendSized(ctx, challenge); err != nil {
		d.log.Errorw("failed to send challenge", "error", err)
		return xerrors.Errorf("failed to send challenge: %w", err)
	}

	d.doneChallenge = true
	return nil
}

// ProcessVerify receives z from the prover and checks it against common. It
// requires SendChallenge to have run first.
func (d *VerifierDriver) ProcessVerify(ctx context.Context, common CommonInput) (bool, error) {
	if !d.doneChallenge {
		return false, ErrProtocolMisuse
	}
	d.doneChallenge = false

	raw, err := d.ch.ReceiveSized(ctx)
	if err != nil {
		d.log.Errorw("failed to receive second move", "error", err)
		return false, xerrors.Errorf("failed to receive second move: %w", err)
	}

	z, err := wire.DecodeVariant(d.zVariant, raw)
	if err != nil {
		d.log.Errorw("failed to decode second move", "error", err)
		return false, xerrors.Errorf("failed to decode second move: %w", err)
	}
	d.z = z

	accepted, err := d.computation.Verify(common, d.a, d.z)
	if err != nil {
		d.log.Errorw("verify failed", "error", err)
		return false, err
	}
	d.log.Debugw("verify completed", "accepted", accepted)

	return accepted, nil
}

// Verify runs SendChallenge followed by ProcessVerify.
func (d *VerifierDriver) Verify(ctx context.Context, common CommonInput) (bool, error) {
	if err := d.SendChallenge(ctx); err != nil {
		return false, err
	}

	return d.ProcessVerify(ctx, common)
}
