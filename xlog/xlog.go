// Package xlog wraps go.uber.org/zap into the root-logger pattern used
// across the sigma core and CLI: a process constructs one root logger from
// configuration, then every component gets its own named child via Named.
package xlog

import (
	"sync"

	"go.uber.org/atomic"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	mu          sync.Mutex
	global      *zap.SugaredLogger
	atomicLevel zap.AtomicLevel
	initialized atomic.Bool
)

// NewRootLogger builds a standalone *zap.SugaredLogger from cfg. Most
// callers want InitGlobal followed by Named instead; NewRootLogger is
// exposed directly for tests and for components that want a private
// logger not reachable through the global.
func NewRootLogger(cfg Config) (*zap.SugaredLogger, error) {
	var level zapcore.Level
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		return nil, err
	}

	zapCfg := zap.Config{
		Level:             zap.NewAtomicLevelAt(level),
		Development:       false,
		DisableCaller:     cfg.DisableCaller,
		DisableStacktrace: cfg.DisableStacktrace,
		Encoding:          cfg.Encoding,
		EncoderConfig:     defaultEncoderConfig,
		OutputPaths:       cfg.OutputPaths,
		ErrorOutputPaths:  []string{"stderr"},
	}

	logger, err := zapCfg.Build(zap.AddCallerSkip(1))
	if err != nil {
		return nil, err
	}

	return logger.Sugar(), nil
}

// InitGlobal constructs the global root logger from cfg. It may be called
// exactly once per process; subsequent calls return
// ErrGlobalLoggerAlreadyInitialized.
func InitGlobal(cfg Config) error {
	mu.Lock()
	defer mu.Unlock()

	if initialized.Load() {
		return ErrGlobalLoggerAlreadyInitialized
	}

	var level zapcore.Level
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		return err
	}
	atomicLevel = zap.NewAtomicLevelAt(level)

	zapCfg := zap.Config{
		Level:             atomicLevel,
		Development:       false,
		DisableCaller:     cfg.DisableCaller,
		DisableStacktrace: cfg.DisableStacktrace,
		Encoding:          cfg.Encoding,
		EncoderConfig:     defaultEncoderConfig,
		OutputPaths:       cfg.OutputPaths,
		ErrorOutputPaths:  []string{"stderr"},
	}

	logger, err := zapCfg.Build(zap.AddCallerSkip(1))
	if err != nil {
		return err
	}

	global = logger.Sugar()
	initialized.Store(true)

	return nil
}

// SetLevel changes the minimum enabled level of the global root logger and
// every logger already derived from it via Named.
func SetLevel(level string) error {
	var lvl zapcore.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return err
	}

	mu.Lock()
	defer mu.Unlock()
	atomicLevel.SetLevel(lvl)

	return nil
}

// Named returns a child of the global root logger scoped to name. It
// panics if InitGlobal has not been called, the same way the teacher's
// root-logger construction refuses to hand out loggers before the process
// has configured one.
func Named(name string) *zap.SugaredLogger {
	mu.Lock()
	defer mu.Unlock()

	if !initialized.Load() {
		panic("xlog: Named called before InitGlobal")
	}

	return global.Named(name)
}

// resetForTest tears down the global logger so tests can reinitialize it.
// It is unexported: production code never needs to de-initialize the
// global logger.
func resetForTest() {
	mu.Lock()
	defer mu.Unlock()

	global = nil
	initialized.Store(false)
}
