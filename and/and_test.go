package and

import (
	"context"
	"errors"
	"math/big"
	"testing"

	"github.com/sigmakit/sigmacore/channel"
	"github.com/sigmakit/sigmacore/dlog"
	"github.com/sigmakit/sigmacore/group"
	"github.com/sigmakit/sigmacore/sigma"
	"github.com/sigmakit/sigmacore/wire"
)

func toyGroup(t *testing.T) *group.SchnorrGroup {
	t.Helper()
	g, err := group.NewSchnorrGroup(big.NewInt(23), big.NewInt(11), big.NewInt(2))
	if err != nil {
		t.Fatalf("NewSchnorrGroup: %v", err)
	}
	return g
}

// TestTwoDlogsAccept reproduces the AND scenario: two independent Dlog
// proofs compose under one shared challenge and both accept.
func TestTwoDlogsAccept(t *testing.T) {
	g := toyGroup(t)
	h1 := g.Exponentiate(g.Generator(), big.NewInt(4))
	h2 := g.Exponentiate(g.Generator(), big.NewInt(6))

	dv1, err := dlog.NewVerifier(g, 3)
	if err != nil {
		t.Fatalf("NewVerifier: %v", err)
	}
	dv2, err := dlog.NewVerifier(g, 3)
	if err != nil {
		t.Fatalf("NewVerifier: %v", err)
	}

	v, err := NewVerifier([]sigma.Verifier{dv1, dv2})
	if err != nil {
		t.Fatalf("NewVerifier: %v", err)
	}
	v.SetChallenge([]byte{0x05})

	a1 := g.Exponentiate(g.Generator(), big.NewInt(3)) // r1=3
	a2 := g.Exponentiate(g.Generator(), big.NewInt(2)) // r2=2
	z1 := big.NewInt(1)                                // (3+5*4) mod 11 = 1
	z2 := big.NewInt(10)                                // (2+5*6) mod 11 = 32 mod 11 = 10

	aMsg := wire.NewCompoundMsg(wire.NewGroupElementMsg(g.Encode(a1)), wire.NewGroupElementMsg(g.Encode(a2)))
	zMsg := wire.NewCompoundMsg(wire.NewScalarMsg(z1), wire.NewScalarMsg(z2))

	common := CommonInput{Items: []sigma.CommonInput{dlog.CommonInput{H: h1}, dlog.CommonInput{H: h2}}}
	ok, err := v.Verify(common, aMsg, zMsg)
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if !ok {
		t.Fatal("expected both sub-proofs to accept")
	}
}

// TestFlippingEitherSubProofRejects checks that flipping either child's z
// independently rejects the whole AND. It checks only the combined verdict,
// not which sub-verifiers ran.
func TestFlippingEitherSubProofRejects(t *testing.T) {
	g := toyGroup(t)
	h1 := g.Exponentiate(g.Generator(), big.NewInt(4))
	h2 := g.Exponentiate(g.Generator(), big.NewInt(6))
	common := CommonInput{Items: []sigma.CommonInput{dlog.CommonInput{H: h1}, dlog.CommonInput{H: h2}}}

	a1 := g.Exponentiate(g.Generator(), big.NewInt(3))
	a2 := g.Exponentiate(g.Generator(), big.NewInt(2))
	aMsg := wire.NewCompoundMsg(wire.NewGroupElementMsg(g.Encode(a1)), wire.NewGroupElementMsg(g.Encode(a2)))

	newAndVerifier := func(t *testing.T) *Verifier {
		dv1, err := dlog.NewVerifier(g, 3)
		if err != nil {
			t.Fatalf("NewVerifier: %v", err)
		}
		dv2, err := dlog.NewVerifier(g, 3)
		if err != nil {
			t.Fatalf("NewVerifier: %v", err)
		}
		v, err := NewVerifier([]sigma.Verifier{dv1, dv2})
		if err != nil {
			t.Fatalf("NewVerifier: %v", err)
		}
		v.SetChallenge([]byte{0x05})
		return v
	}

	// flip z1 only
	v := newAndVerifier(t)
	zMsg := wire.NewCompoundMsg(wire.NewScalarMsg(big.NewInt(2)), wire.NewScalarMsg(big.NewInt(10)))
	ok, err := v.Verify(common, aMsg, zMsg)
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if ok {
		t.Fatal("expected rejection when first sub-proof's z is flipped")
	}

	// flip z2 only
	v = newAndVerifier(t)
	zMsg = wire.NewCompoundMsg(wire.NewScalarMsg(big.NewInt(1)), wire.NewScalarMsg(big.NewInt(9)))
	ok, err = v.Verify(common, aMsg, zMsg)
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if ok {
		t.Fatal("expected rejection when second sub-proof's z is flipped")
	}
}

// TestMismatchedSoundnessRejectedAtConstruction checks that composing
// sub-protocols with different t raises ErrInvalidConfig.
func TestMismatchedSoundnessRejectedAtConstruction(t *testing.T) {
	g := toyGroup(t)

	dv1, err := dlog.NewVerifier(g, 2)
	if err != nil {
		t.Fatalf("NewVerifier: %v", err)
	}
	dv2, err := dlog.NewVerifier(g, 3)
	if err != nil {
		t.Fatalf("NewVerifier: %v", err)
	}

	if _, err := NewVerifier([]sigma.Verifier{dv1, dv2}); !errors.Is(err, sigma.ErrInvalidConfig) {
		t.Fatalf("expected ErrInvalidConfig, got %v", err)
	}
}

// TestMismatchedStatementLengthRejectedAtVerify checks that a CommonInput
// with the wrong number of sub-statements is rejected with ErrInvalidInput.
func TestMismatchedStatementLengthRejectedAtVerify(t *testing.T) {
	g := toyGroup(t)
	h1 := g.Exponentiate(g.Generator(), big.NewInt(4))

	dv1, err := dlog.NewVerifier(g, 3)
	if err != nil {
		t.Fatalf("NewVerifier: %v", err)
	}
	dv2, err := dlog.NewVerifier(g, 3)
	if err != nil {
		t.Fatalf("NewVerifier: %v", err)
	}
	v, err := NewVerifier([]sigma.Verifier{dv1, dv2})
	if err != nil {
		t.Fatalf("NewVerifier: %v", err)
	}
	v.SetChallenge([]byte{0x05})

	common := CommonInput{Items: []sigma.CommonInput{dlog.CommonInput{H: h1}}} // only one, want two
	aMsg := wire.NewCompoundMsg(wire.NewGroupElementMsg(nil), wire.NewGroupElementMsg(nil))
	zMsg := wire.NewCompoundMsg(wire.NewScalarMsg(big.NewInt(0)), wire.NewScalarMsg(big.NewInt(0)))

	if _, err := v.Verify(common, aMsg, zMsg); !errors.Is(err, sigma.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

// TestCompletenessEndToEnd drives real ProverDriver/VerifierDriver for an
// AND of two Dlog proofs over an in-memory channel.
func TestCompletenessEndToEnd(t *testing.T) {
	g := toyGroup(t)
	h1 := g.Exponentiate(g.Generator(), big.NewInt(4))
	h2 := g.Exponentiate(g.Generator(), big.NewInt(6))
	w1 := big.NewInt(4)
	w2 := big.NewInt(6)

	dc1, err := dlog.NewComputation(g, 3)
	if err != nil {
		t.Fatalf("NewComputation: %v", err)
	}
	dc2, err := dlog.NewComputation(g, 3)
	if err != nil {
		t.Fatalf("NewComputation: %v", err)
	}
	proverComp, err := NewComputation([]sigma.Prover{dc1, dc2})
	if err != nil {
		t.Fatalf("NewComputation: %v", err)
	}

	dv1, err := dlog.NewVerifier(g, 3)
	if err != nil {
		t.Fatalf("NewVerifier: %v", err)
	}
	dv2, err := dlog.NewVerifier(g, 3)
	if err != nil {
		t.Fatalf("NewVerifier: %v", err)
	}
	verifierComp, err := NewVerifier([]sigma.Verifier{dv1, dv2})
	if err != nil {
		t.Fatalf("NewVerifier: %v", err)
	}

	proverCh, verifierCh := channel.NewPipePair()
	defer proverCh.Close()
	defer verifierCh.Close()

	prover := sigma.NewProverDriver(proverCh, proverComp)
	verifier := sigma.NewVerifierDriver(verifierCh, verifierComp, wire.VariantCompound, wire.VariantCompound)

	common := CommonInput{Items: []sigma.CommonInput{dlog.CommonInput{H: h1}, dlog.CommonInput{H: h2}}}
	proverInput := ProverInput{Items: []sigma.ProverInput{
		dlog.ProverInput{CommonInput: dlog.CommonInput{H: h1}, W: w1},
		dlog.ProverInput{CommonInput: dlog.CommonInput{H: h2}, W: w2},
	}}

	ctx := context.Background()
	resultCh := make(chan error, 1)
	go func() {
		resultCh <- prover.Prove(ctx, proverInput)
	}()

	accepted, err := verifier.Verify(ctx, common)
	if err != nil {
		t.Fatalf("verifier.Verify: %v", err)
	}
	if proveErr := <-resultCh; proveErr != nil {
		t.Fatalf("prover.Prove: %v", proveErr)
	}
	if !accepted {
		t.Fatal("expected honest AND prover to be accepted")
	}
}

// TestSimulatorProducesAcceptingTranscript checks that the AND simulator's
// transcript verifies for a randomly sampled shared challenge.
func TestSimulatorProducesAcceptingTranscript(t *testing.T) {
	g := toyGroup(t)
	h1 := g.Exponentiate(g.Generator(), big.NewInt(4))
	h2 := g.Exponentiate(g.Generator(), big.NewInt(6))
	common := CommonInput{Items: []sigma.CommonInput{dlog.CommonInput{H: h1}, dlog.CommonInput{H: h2}}}

	sim, err := NewSimulator([]sigma.Simulator{dlog.NewSimulator(g, 3), dlog.NewSimulator(g, 3)})
	if err != nil {
		t.Fatalf("NewSimulator: %v", err)
	}

	aMsg, challenge, zMsg, err := sim.SimulateRandom(common)
	if err != nil {
		t.Fatalf("SimulateRandom: %v", err)
	}

	dv1, err := dlog.NewVerifier(g, 3)
	if err != nil {
		t.Fatalf("NewVerifier: %v", err)
	}
	dv2, err := dlog.NewVerifier(g, 3)
	if err != nil {
		t.Fatalf("NewVerifier: %v", err)
	}
	v, err := NewVerifier([]sigma.Verifier{dv1, dv2})
	if err != nil {
		t.Fatalf("NewVerifier: %v", err)
	}
	v.SetChallenge(challenge)

	ok, err := v.Verify(common, aMsg, zMsg)
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if !ok {
		t.Fatal("expected the simulated AND transcript to verify")
	}
}
