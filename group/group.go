// Package group abstracts the prime-order cyclic group that every Sigma
// protocol runs over. The core (sigma, dlog, dh, and) never multiplies or
// exponentiates directly; it only calls through the Group and Element
// contracts defined here, so the same core works against any collaborator
// that satisfies them.
package group

import "math/big"

// Element is an opaque member of a Group. Two elements produced by the same
// Group are only meaningfully comparable to each other.
type Element interface {
	// Equal reports whether the receiver and other represent the same
	// group element.
	Equal(other Element) bool

	// Bytes returns a byte representation of the element. Encoding a given
	// element always produces the same bytes; it need not be the
	// fixed-width wire form, which Group.Encode returns.
	Bytes() []byte

	// String returns a human-readable representation, for logs and errors.
	String() string
}

// Group is the collaborator interface the Sigma core consumes. It is
// satisfied by any prime-order cyclic group: a classic multiplicative
// Schnorr group mod a safe prime (SchnorrGroup, below), an elliptic-curve
// group, or a pairing group.
type Group interface {
	// Generator returns the group's fixed generator g.
	Generator() Element

	// Order returns the group order q. All scalars and challenges are
	// reduced modulo this value.
	Order() *big.Int

	// Identity returns the group's identity element.
	Identity() Element

	// Exponentiate returns base^exp, with exp reduced mod Order first.
	Exponentiate(base Element, exp *big.Int) Element

	// Multiply returns a*b (the group operation).
	Multiply(a, b Element) Element

	// Inverse returns a^-1.
	Inverse(a Element) Element

	// IsMember reports whether a belongs to the group (e.g. a^q == identity
	// for a subgroup of prime order q inside a larger multiplicative group).
	IsMember(a Element) bool

	// ValidateParams reports whether the group's own parameters are
	// self-consistent (e.g. g^q == identity, q divides p-1).
	ValidateParams() bool

	// Encode returns the canonical byte encoding of an element.
	Encode(a Element) []byte

	// Decode parses an element from its canonical encoding.
	Decode(data []byte) (Element, error)

	// RandomScalar draws a scalar uniformly from [0, Order()-1].
	RandomScalar() (*big.Int, error)
}
