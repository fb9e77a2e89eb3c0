package channel

import "errors"

// ErrTransport wraps failures from the underlying net/io layer: a timeout,
// an EOF, or any other I/O error. It is fatal for the proof session; the
// core never retries.
var ErrTransport = errors.New("sigma channel transport error")

// ErrFrameTooLarge is returned when a received length prefix exceeds
// MaxFrameSize, guarding against a misbehaving or malicious peer forcing an
// unbounded allocation, and by SendSized when asked to send a payload larger
// than MaxFrameSize.
var ErrFrameTooLarge = errors.New("sigma channel frame exceeds maximum size")
