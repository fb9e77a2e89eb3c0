// Command sigmacli runs one Sigma proof session over TCP: role 1 listens
// and proves knowledge of the witness, role 2 dials out and verifies.
//
// Exit codes: for role 2, 0 means the verifier accepted and 1 means it
// rejected; role 1 exits 0 once it has sent its response, without learning
// the verdict. In both roles 2 means a configuration, network, or protocol
// error stopped the session.
package main

import (
	"context"
	"fmt"
	"math/big"
	"net"
	"os"
	"time"

	flag "github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/sigmakit/sigmacore/channel"
	"github.com/sigmakit/sigmacore/dlog"
	"github.com/sigmakit/sigmacore/group"
	"github.com/sigmakit/sigmacore/sigma"
	"github.com/sigmakit/sigmacore/sigmaconfig"
	"github.com/sigmakit/sigmacore/wire"
	"github.com/sigmakit/sigmacore/xlog"
)

const sessionTimeout = 30 * time.Second

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	var configPath string
	bootstrap := flag.NewFlagSet("sigmacli", flag.ContinueOnError)
	bootstrap.StringVar(&configPath, "config", "", "path to a TOML config file")
	bootstrap.Parse(args) //nolint:errcheck // unknown flags are re-parsed below

	fs := sigmaconfig.FlagSet(sigmaconfig.Config{Soundness: 8})
	fs.String("config", configPath, "path to a TOML config file")
	if err := fs.Parse(args); err != nil {
		fmt.Fprintln(os.Stderr, "failed to parse flags:", err)
		return 2
	}

	cfg, err := sigmaconfig.Load(configPath, fs)
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to load config:", err)
		return 2
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, "invalid config:", err)
		return 2
	}

	if err := xlog.InitGlobal(xlog.DefaultConfig); err != nil {
		fmt.Fprintln(os.Stderr, "failed to init logger:", err)
		return 2
	}
	log := xlog.Named("sigmacli")

	g, h, err := buildGroup(cfg)
	if err != nil {
		log.Errorw("failed to build group", "error", err)
		return 2
	}

	ctx, cancel := context.WithTimeout(context.Background(), sessionTimeout)
	defer cancel()

	switch cfg.Role {
	case 1:
		return runProver(ctx, log, g, h, cfg)
	case 2:
		return runVerifier(ctx, log, g, h, cfg)
	default:
		log.Errorw("invalid role", "role", cfg.Role)
		return 2
	}
}

// buildGroup parses cfg's decimal group parameters and the public
// statement h. Both roles need h; only role 1 additionally needs Witness.
func buildGroup(cfg sigmaconfig.Config) (*group.SchnorrGroup, group.Element, error) {
	p, ok := new(big.Int).SetString(cfg.P, 10)
	if !ok {
		return nil, nil, fmt.Errorf("invalid p %q", cfg.P)
	}
	q, ok := new(big.Int).SetString(cfg.Q, 10)
	if !ok {
		return nil, nil, fmt.Errorf("invalid q %q", cfg.Q)
	}
	gen, ok := new(big.Int).SetString(cfg.G, 10)
	if !ok {
		return nil, nil, fmt.Errorf("invalid g %q", cfg.G)
	}

	g, err := group.NewSchnorrGroup(p, q, gen)
	if err != nil {
		return nil, nil, err
	}

	hInt, ok := new(big.Int).SetString(cfg.H, 10)
	if !ok {
		return nil, nil, fmt.Errorf("invalid h %q", cfg.H)
	}
	byteLen := (p.BitLen() + 7) / 8
	encoded := make([]byte, byteLen)
	raw := hInt.Bytes()
	copy(encoded[byteLen-len(raw):], raw)
	h, err := g.Decode(encoded)
	if err != nil {
		return nil, nil, fmt.Errorf("decode h: %w", err)
	}

	return g, h, nil
}

func runProver(ctx context.Context, log *zap.SugaredLogger, g *group.SchnorrGroup, h group.Element, cfg sigmaconfig.Config) int {
	w, ok := new(big.Int).SetString(cfg.Witness, 10)
	if !ok {
		log.Errorw("invalid witness", "witness", cfg.Witness)
		return 2
	}

	ln, err := net.Listen("tcp", cfg.PeerAddress)
	if err != nil {
		log.Errorw("failed to listen", "address", cfg.PeerAddress, "error", err)
		return 2
	}
	defer ln.Close()

	log.Infow("listening", "address", cfg.PeerAddress)
	conn, err := ln.Accept()
	if err != nil {
		log.Errorw("failed to accept connection", "error", err)
		return 2
	}

	ch := channel.NewTCPChannel(conn)
	defer ch.Close()

	comp, err := dlog.NewComputation(g, cfg.Soundness)
	if err != nil {
		log.Errorw("failed to construct computation", "error", err)
		return 2
	}

	driver := sigma.NewProverDriver(ch, comp)
	driver.SetLogger(log)

	input := dlog.ProverInput{CommonInput: dlog.CommonInput{H: h}, W: w}
	if err := driver.Prove(ctx, input); err != nil {
		log.Errorw("prove failed", "error", err)
		return 2
	}

	log.Info("prove completed")
	return 0
}

func runVerifier(ctx context.Context, log *zap.SugaredLogger, g *group.SchnorrGroup, h group.Element, cfg sigmaconfig.Config) int {
	conn, err := net.Dial("tcp", cfg.PeerAddress)
	if err != nil {
		log.Errorw("failed to dial", "address", cfg.PeerAddress, "error", err)
		return 2
	}

	ch := channel.NewTCPChannel(conn)
	defer ch.Close()

	verifier, err := dlog.NewVerifier(g, cfg.Soundness)
	if err != nil {
		log.Errorw("failed to construct verifier", "error", err)
		return 2
	}

	driver := sigma.NewVerifierDriver(ch, verifier, wire.VariantGroupElement, wire.VariantScalar)
	driver.SetLogger(log)

	accepted, err := driver.Verify(ctx, dlog.CommonInput{H: h})
	if err != nil {
		log.Errorw("verify failed", "error", err)
		return 2
	}

	if !accepted {
		log.Info("verify rejected")
		return 1
	}

	log.Info("verify accepted")
	return 0
}
