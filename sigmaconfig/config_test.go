package sigmaconfig

import (
	"errors"
	"os"
	"testing"
)

func writeTempTOML(t *testing.T, contents string) string {
	t.Helper()

	f, err := os.CreateTemp("", "sigmacli-*.toml")
	if err != nil {
		t.Fatalf("CreateTemp: %v", err)
	}
	if _, err := f.WriteString(contents); err != nil {
		t.Fatalf("WriteString: %v", err)
	}
	if err := f.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	t.Cleanup(func() { os.Remove(f.Name()) })

	return f.Name()
}

func TestLoadFromFile(t *testing.T) {
	path := writeTempTOML(t, `
p = "23"
q = "11"
g = "2"
witness = "4"
soundness = 3
role = 1
peeraddress = "127.0.0.1:9000"
`)

	cfg, err := Load(path, nil)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	want := Config{P: "23", Q: "11", G: "2", Witness: "4", Soundness: 3, Role: 1, PeerAddress: "127.0.0.1:9000"}
	if cfg != want {
		t.Fatalf("Load() = %+v, want %+v", cfg, want)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
}

func TestFlagOverridesFile(t *testing.T) {
	path := writeTempTOML(t, `
p = "23"
q = "11"
g = "2"
soundness = 3
role = 1
peeraddress = "127.0.0.1:9000"
`)

	fs := FlagSet(Config{})
	if err := fs.Parse([]string{"--role=2", "--peeraddress=127.0.0.1:9001"}); err != nil {
		t.Fatalf("Parse: %v", err)
	}

	cfg, err := Load(path, fs)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Role != 2 {
		t.Errorf("Role = %d, want 2 (flag should override file)", cfg.Role)
	}
	if cfg.PeerAddress != "127.0.0.1:9001" {
		t.Errorf("PeerAddress = %q, want overridden value", cfg.PeerAddress)
	}
	if cfg.P != "23" {
		t.Errorf("P = %q, want unaffected file value", cfg.P)
	}
}

func TestUnsetFlagsDoNotOverrideFile(t *testing.T) {
	path := writeTempTOML(t, `
p = "23"
q = "11"
g = "2"
soundness = 3
role = 1
peeraddress = "127.0.0.1:9000"
`)

	fs := FlagSet(Config{})
	if err := fs.Parse(nil); err != nil {
		t.Fatalf("Parse: %v", err)
	}

	cfg, err := Load(path, fs)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Role != 1 {
		t.Errorf("Role = %d, want 1 (file value preserved)", cfg.Role)
	}
	if cfg.PeerAddress != "127.0.0.1:9000" {
		t.Errorf("PeerAddress = %q, want file value", cfg.PeerAddress)
	}
}

func TestValidateRejectsBadRole(t *testing.T) {
	cfg := Config{Role: 3}
	if !errors.Is(cfg.Validate(), ErrInvalidRole) {
		t.Fatalf("expected ErrInvalidRole, got %v", cfg.Validate())
	}
}
