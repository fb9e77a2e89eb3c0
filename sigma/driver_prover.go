package sigma

import (
	"context"

	"github.com/mr-tron/base58"
	"go.uber.org/zap"
	"golang.org/x/xerrors"

	"github.com/sigmakit/sigmacore/channel"
)

// ProverDriver drives the three-move flow on the prover side:
//
//	INIT --process_first--> AWAIT_CHALLENGE --process_second--> DONE
//
// Calling ProcessSecond before ProcessFirst raises ErrProtocolMisuse. A
// ProverDriver instance is bound to one channel and one Prover for exactly
// one proof session; create a new instance per session.
type ProverDriver struct {
	ch          channel.Channel
	computation Prover
	log         *zap.SugaredLogger

	doneFirst bool
}

// NewProverDriver constructs a ProverDriver bound to ch and computation.
func NewProverDriver(ch channel.Channel, computation Prover) *ProverDriver {
	return &ProverDriver{ch: ch, computation: computation, log: zap.NewNop().Sugar()}
}

// SetLogger attaches a logger the driver uses for protocol-level events.
// Without a call to SetLogger, the driver logs nowhere.
func (d *ProverDriver) SetLogger(log *zap.SugaredLogger) { d.log = log }

// ProcessFirst computes and sends the first move a, then marks the driver
// ready for ProcessSecond.
func (d *ProverDriver) ProcessFirst(ctx context.Context, input ProverInput) error {
	a, err := d.computation.ComputeFirst(input)
	if err != nil {
		d.log.Errorw("failed to compute first move", "error", err)
		return xerrors.Errorf("failed to compute first move: %w", err)
	}

	raw := a.ToBytes()
	if err := d.ch.SendSized(ctx, raw); err != nil {
		d.log.Errorw("failed to send first move", "error", err)
		return xerrors.Errorf("failed to send first move: %w", err)
	}
	d.log.Debugw("sent first move", "a", base58.Encode(raw))

	d.doneFirst = true
	return nil
}

// ProcessSecond receives the challenge, computes and sends the second move
// z, and resets the driver. It requires ProcessFirst to have run first.
func (d *ProverDriver) ProcessSecond(ctx context.Context) error {
	if !d.doneFirst {
		return ErrProtocolMisuse
	}
	d.doneFirst = false

	challenge, err := d.ch.ReceiveSized(ctx)
	if err != nil {
		d.log.Errorw("failed to receive challenge", "error", err)
		return xerrors.Errorf("failed to receive challenge: %w", err)
	}

	// Length validation against ChallengeByteLen(SoundnessBits()) is the
	// concrete Prover's responsibility (it owns t); ComputeSecond returns
	// ErrCheatAttempt on mismatch.
	z, err := d.computation.ComputeSecond(challenge)
	if err != nil {
		d.log.Errorw("failed to compute second move", "error", err)
		return xerrors.Errorf("failed to compute second move: %w", err)
	}

	zRaw := z.ToBytes()
	if err := d.ch.SendSized(ctx, zRaw); err != nil {
		d.log.Errorw("failed to send second move", "error", err)
		return xerrors.Errorf("failed to send second move: %w", err)
	}

	d.log.Debugw("prover completed three-move flow", "z", base58.Encode(zRaw))
	return nil
}

// Prove runs ProcessFirst followed by ProcessSecond.
func (d *ProverDriver) Prove(ctx context.Context, input ProverInput) error {
	if err := d.ProcessFirst(ctx, input); err != nil {
		return err
	}

	return d.ProcessSecond(ctx)
}
