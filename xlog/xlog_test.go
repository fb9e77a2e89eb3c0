package xlog

import (
	"os"
	"testing"
)

func init() {
	defaultEncoderConfig.TimeKey = "" // no timestamps in tests
}

func TestNewRootLogger(t *testing.T) {
	tests := []struct {
		name   string
		cfg    Config
		expect string
	}{
		{
			name:   "console",
			cfg:    Config{Level: "info", Encoding: "console"},
			expect: "info\nWARN",
		},
		{
			name:   "json",
			cfg:    Config{Level: "info", Encoding: "json"},
			expect: `"msg":"info"`,
		},
		{
			name:   "noCaller",
			cfg:    Config{Level: "info", Encoding: "console", DisableCaller: true},
			expect: "INFO\tinfo",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			temp, err := os.CreateTemp("", "xlog-test")
			if err != nil {
				t.Fatalf("CreateTemp: %v", err)
			}
			defer os.Remove(temp.Name())

			tt.cfg.OutputPaths = []string{temp.Name()}

			logger, err := NewRootLogger(tt.cfg)
			if err != nil {
				t.Fatalf("NewRootLogger: %v", err)
			}

			logger.Info("info")
			logger.Warn("warn")

			contents, err := os.ReadFile(temp.Name())
			if err != nil {
				t.Fatalf("ReadFile: %v", err)
			}
			if !containsString(string(contents), tt.expect) {
				t.Fatalf("log output %q does not contain %q", contents, tt.expect)
			}
		})
	}
}

func TestNamedPanicsBeforeInit(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected Named to panic before InitGlobal")
		}
	}()

	Named("test")
}

func TestInitGlobalThenNamed(t *testing.T) {
	temp, err := os.CreateTemp("", "xlog-test")
	if err != nil {
		t.Fatalf("CreateTemp: %v", err)
	}
	defer os.Remove(temp.Name())
	defer resetForTest()

	cfg := DefaultConfig
	cfg.OutputPaths = []string{temp.Name()}
	if err := InitGlobal(cfg); err != nil {
		t.Fatalf("InitGlobal: %v", err)
	}

	logger := Named("component")
	logger.Info("hello")

	contents, err := os.ReadFile(temp.Name())
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if !containsString(string(contents), "component") {
		t.Fatalf("expected logged output to be named, got %q", contents)
	}
}

func TestInitGlobalTwiceFails(t *testing.T) {
	defer resetForTest()

	if err := InitGlobal(Config{Level: "info", Encoding: "console", OutputPaths: []string{"stdout"}}); err != nil {
		t.Fatalf("InitGlobal: %v", err)
	}
	if err := InitGlobal(DefaultConfig); err == nil {
		t.Fatal("expected second InitGlobal to fail")
	}
}

func TestSetLevel(t *testing.T) {
	temp, err := os.CreateTemp("", "xlog-test")
	if err != nil {
		t.Fatalf("CreateTemp: %v", err)
	}
	defer os.Remove(temp.Name())
	defer resetForTest()

	cfg := DefaultConfig
	cfg.OutputPaths = []string{temp.Name()}
	if err := InitGlobal(cfg); err != nil {
		t.Fatalf("InitGlobal: %v", err)
	}

	logger := Named("component")
	logger.Debug("debug1")
	if err := SetLevel("debug"); err != nil {
		t.Fatalf("SetLevel: %v", err)
	}
	logger.Debug("debug2")

	contents, err := os.ReadFile(temp.Name())
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if containsString(string(contents), "debug1") {
		t.Fatal("debug1 should have been filtered out before SetLevel")
	}
	if !containsString(string(contents), "debug2") {
		t.Fatal("debug2 should have been logged after SetLevel")
	}
}

func containsString(haystack, needle string) bool {
	for i := 0; i+len(needle) <= len(haystack); i++ {
		if haystack[i:i+len(needle)] == needle {
			return true
		}
	}
	return len(needle) == 0
}
