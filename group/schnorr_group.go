package group

import (
	"math/big"
)

// element is a residue mod p, used both for the subgroup of order q and for
// the ambient multiplicative group mod p.
type element struct {
	v *big.Int
}

// Equal reports whether the receiver and other represent the same residue.
func (e element) Equal(other Element) bool {
	o, ok := other.(element)
	if !ok {
		return false
	}
	return e.v.Cmp(o.v) == 0
}

// Bytes returns the element's unsigned big-endian encoding, unpadded. Use
// SchnorrGroup.Encode for the fixed-width wire encoding.
func (e element) Bytes() []byte {
	return e.v.Bytes()
}

// String returns the decimal representation of the underlying residue.
func (e element) String() string {
	return e.v.String()
}

// SchnorrGroup is a reference Group implementation: the order-q subgroup of
// the multiplicative group of integers mod a safe-ish prime p, the classic
// setting Sigma protocols are usually taught against (and the one spec.md's
// concrete test vectors, p=23, q=11, g=2, are drawn from).
type SchnorrGroup struct {
	p *big.Int
	q *big.Int
	g element

	byteLen int
}

// NewSchnorrGroup constructs a SchnorrGroup from its public parameters and
// validates them. It returns ErrInvalidParams if q does not divide p-1 or if
// g does not generate a subgroup of order q.
func NewSchnorrGroup(p, q, g *big.Int) (*SchnorrGroup, error) {
	sg := &SchnorrGroup{
		p:       new(big.Int).Set(p),
		q:       new(big.Int).Set(q),
		g:       element{v: new(big.Int).Mod(g, p)},
		byteLen: (p.BitLen() + 7) / 8,
	}

	if !sg.ValidateParams() {
		return nil, ErrInvalidParams
	}

	return sg, nil
}

// ValidateParams reports whether p is an odd prime greater than 2, q divides
// p-1, and g^q == 1 mod p with g != 1.
func (sg *SchnorrGroup) ValidateParams() bool {
	p, q, g := sg.p, sg.q, sg.g.v

	if p.Sign() <= 0 || q.Sign() <= 0 {
		return false
	}
	if p.Cmp(big.NewInt(2)) <= 0 {
		return false
	}
	if !p.ProbablyPrime(32) {
		return false
	}

	pMinus1 := new(big.Int).Sub(p, big.NewInt(1))
	remainder := new(big.Int)
	_, remainder = new(big.Int).DivMod(pMinus1, q, remainder)
	if remainder.Sign() != 0 {
		return false
	}

	if g.Cmp(big.NewInt(1)) <= 0 {
		return false
	}

	check := new(big.Int).Exp(g, q, p)
	return check.Cmp(big.NewInt(1)) == 0
}

// Generator returns g.
func (sg *SchnorrGroup) Generator() Element {
	return sg.g
}

// Order returns q.
func (sg *SchnorrGroup) Order() *big.Int {
	return new(big.Int).Set(sg.q)
}

// Identity returns the multiplicative identity, 1 mod p.
func (sg *SchnorrGroup) Identity() Element {
	return element{v: big.NewInt(1)}
}

// Exponentiate returns base^exp mod p, reducing exp modulo q first.
func (sg *SchnorrGroup) Exponentiate(base Element, exp *big.Int) Element {
	b := sg.asElement(base)
	reducedExp := new(big.Int).Mod(exp, sg.q)
	return element{v: new(big.Int).Exp(b.v, reducedExp, sg.p)}
}

// Multiply returns a*b mod p.
func (sg *SchnorrGroup) Multiply(a, b Element) Element {
	av, bv := sg.asElement(a), sg.asElement(b)
	return element{v: new(big.Int).Mod(new(big.Int).Mul(av.v, bv.v), sg.p)}
}

// Inverse returns a^-1 mod p.
func (sg *SchnorrGroup) Inverse(a Element) Element {
	av := sg.asElement(a)
	return element{v: new(big.Int).ModInverse(av.v, sg.p)}
}

// IsMember reports whether 0 < a < p and a^q == 1 mod p.
func (sg *SchnorrGroup) IsMember(a Element) bool {
	av, ok := a.(element)
	if !ok {
		return false
	}
	if av.v.Sign() <= 0 || av.v.Cmp(sg.p) >= 0 {
		return false
	}

	check := new(big.Int).Exp(av.v, sg.q, sg.p)
	return check.Cmp(big.NewInt(1)) == 0
}

// Encode returns a's residue as byteLen(p) big-endian bytes, zero-padded.
func (sg *SchnorrGroup) Encode(a Element) []byte {
	av := sg.asElement(a)
	raw := av.v.Bytes()

	out := make([]byte, sg.byteLen)
	copy(out[sg.byteLen-len(raw):], raw)

	return out
}

// Decode parses an element from its fixed-width encoding and checks that it
// is a member of the group.
func (sg *SchnorrGroup) Decode(data []byte) (Element, error) {
	if len(data) != sg.byteLen {
		return nil, ErrDecodeFailed
	}

	e := element{v: new(big.Int).SetBytes(data)}
	if !sg.IsMember(e) {
		return nil, ErrNotMember
	}

	return e, nil
}

// RandomScalar draws a scalar uniformly from [0, q-1].
func (sg *SchnorrGroup) RandomScalar() (*big.Int, error) {
	return randomScalarMod(sg.q)
}

// ByteLen returns the fixed width, in bytes, of an encoded element.
func (sg *SchnorrGroup) ByteLen() int {
	return sg.byteLen
}

func (sg *SchnorrGroup) asElement(e Element) element {
	if v, ok := e.(element); ok {
		return v
	}
	panic("group: element not produced by this SchnorrGroup")
}
