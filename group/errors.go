package group

import "errors"

var (
	// ErrInvalidParams is returned when the group parameters (p, q, g) fail validation.
	ErrInvalidParams = errors.New("invalid group parameters")

	// ErrNotMember is returned when a decoded element is not a member of the group.
	ErrNotMember = errors.New("element is not a member of the group")

	// ErrDecodeFailed is returned when a byte string cannot be decoded into an element.
	ErrDecodeFailed = errors.New("failed to decode group element")
)
