package sigma

import "errors"

// ErrCheatAttempt is returned when a received challenge's length does not
// equal ceil(t/8) for the protocol's soundness parameter t. It signals a
// cheating or broken peer, not a programming error; the session ends.
var ErrCheatAttempt = errors.New("sigma: challenge length mismatch")

// ErrInvalidInput is returned when a message carries the wrong variant for
// its slot, a common input has the wrong concrete type, or (for AND) a
// list of sub-statements has the wrong length.
var ErrInvalidInput = errors.New("sigma: invalid input")

// ErrInvalidConfig is returned at construction time when the soundness
// parameter is out of range, or when an AND composition's children
// disagree on their soundness parameter.
var ErrInvalidConfig = errors.New("sigma: invalid configuration")

// ErrProtocolMisuse is returned when a driver method is called out of the
// INIT -> AWAIT_CHALLENGE -> DONE (prover) or
// INIT -> AWAIT_RESPONSE -> ACCEPT/REJECT (verifier) order.
var ErrProtocolMisuse = errors.New("sigma: protocol misuse")
