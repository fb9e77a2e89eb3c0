package wire

import "errors"

// ErrMalformedMessage is returned when a payload cannot be parsed as the
// expected message variant.
var ErrMalformedMessage = errors.New("malformed sigma wire message")
