// Package sigmaconfig loads cmd/sigmacli's configuration from a TOML file
// merged with command-line flag overrides, following the same
// koanf+pflag layering the teacher's configuration package uses: load the
// file first, then let explicitly-set flags win.
package sigmaconfig

import (
	"errors"

	"github.com/knadh/koanf"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	flag "github.com/spf13/pflag"
)

// ErrInvalidRole is returned when Role is neither 1 (prover) nor 2
// (verifier).
var ErrInvalidRole = errors.New("sigmaconfig: role must be 1 (prover) or 2 (verifier)")

// Config is the group parameters, soundness level, role, and network
// address a sigmacli process needs to run one proof session.
type Config struct {
	// P, Q, G are the group's safe prime, subgroup order, and generator,
	// each as a base-10 string (they don't fit an int64 at production
	// sizes).
	P string `koanf:"p"`
	Q string `koanf:"q"`
	G string `koanf:"g"`

	// H is the public statement h = g^w, as a base-10 string. Both roles
	// need it: the prover to hand it to Prove as CommonInput, the verifier
	// to check against it. It is not secret.
	H string `koanf:"h"`

	// Witness is the prover's secret exponent, as a base-10 string. Role 2
	// processes leave it empty.
	Witness string `koanf:"witness"`

	// Soundness is the soundness parameter t, in bits.
	Soundness int `koanf:"soundness"`

	// Role is 1 (prover, listens) or 2 (verifier, dials).
	Role int `koanf:"role"`

	// PeerAddress is the address this process listens on (role 1) or
	// dials (role 2).
	PeerAddress string `koanf:"peeraddress"`
}

// Validate checks the fields Load cannot check by itself.
func (c Config) Validate() error {
	if c.Role != 1 && c.Role != 2 {
		return ErrInvalidRole
	}

	return nil
}

// Load builds a Config from a TOML file at path, then overlays any flags
// in fs that were explicitly set on the command line.
func Load(path string, fs *flag.FlagSet) (Config, error) {
	k := koanf.New(".")

	if path != "" {
		if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
			return Config{}, err
		}
	}

	if fs != nil {
		if err := k.Load(posflag.Provider(fs, ".", k), nil); err != nil {
			return Config{}, err
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// FlagSet registers the flags Load's posflag layer understands, with the
// given defaults. cmd/sigmacli calls this before flag.Parse.
func FlagSet(defaults Config) *flag.FlagSet {
	fs := flag.NewFlagSet("sigmacli", flag.ContinueOnError)

	fs.String("p", defaults.P, "group safe prime p, decimal")
	fs.String("q", defaults.Q, "group subgroup order q, decimal")
	fs.String("g", defaults.G, "group generator g, decimal")
	fs.String("h", defaults.H, "public statement h = g^w, decimal")
	fs.String("witness", defaults.Witness, "prover witness w, decimal (role 1 only)")
	fs.Int("soundness", defaults.Soundness, "soundness parameter t, in bits")
	fs.Int("role", defaults.Role, "1 = prover (listens), 2 = verifier (dials)")
	fs.String("peeraddress", defaults.PeerAddress, "address to listen on (role 1) or dial (role 2)")

	return fs
}
