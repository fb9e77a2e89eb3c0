package xlog

import "go.uber.org/zap/zapcore"

// Config holds the settings to configure a root logger instance.
type Config struct {
	// Level is the minimum enabled logging level. The default is "info".
	Level string
	// DisableCaller stops annotating logs with the calling function's file
	// name and line number. By default, all logs are annotated.
	DisableCaller bool
	// DisableStacktrace disables automatic stacktrace capturing for Error
	// and above.
	DisableStacktrace bool
	// Encoding sets the logger's encoding. Valid values are "json" and
	// "console". The default is "console".
	Encoding string
	// OutputPaths is a list of URLs, file paths, or stdout/stderr to write
	// logging output to. The default is ["stdout"].
	OutputPaths []string
}

// DefaultConfig is the Config used when none is supplied.
var DefaultConfig = Config{
	Level:       "info",
	Encoding:    "console",
	OutputPaths: []string{"stdout"},
}

var defaultEncoderConfig = zapcore.EncoderConfig{
	TimeKey:        "ts",
	LevelKey:       "level",
	NameKey:        "logger",
	CallerKey:      "caller",
	MessageKey:     "msg",
	StacktraceKey:  "stacktrace",
	EncodeLevel:    zapcore.CapitalLevelEncoder,
	EncodeTime:     zapcore.RFC3339TimeEncoder,
	EncodeDuration: zapcore.SecondsDurationEncoder,
	EncodeCaller:   zapcore.ShortCallerEncoder,
}
