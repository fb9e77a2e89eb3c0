package xlog

import "errors"

// ErrGlobalLoggerAlreadyInitialized is returned by InitGlobal when the
// global root logger has already been set.
var ErrGlobalLoggerAlreadyInitialized = errors.New("xlog: global logger already initialized")
