// Package wire implements the typed SigmaMessage wire model: the four
// message variants a Sigma flow exchanges (a single group element, a
// scalar, a pair of group elements, or a compound sequence of sub-messages)
// and their byte encodings.
//
// A Channel delivers exactly one logical message per send/receive, so
// decoding a top-level message never needs a length prefix of its own: the
// whole payload is the message. CompoundMsg is the exception, since its
// sub-messages are heterogeneous (used by the AND combinator) and so frame
// themselves with a tag and length.
package wire

import (
	"math/big"

	"golang.org/x/xerrors"

	"github.com/sigmakit/sigmacore/marshalutil"
)

// Variant identifies which concrete Message a slot holds.
type Variant uint8

const (
	// VariantGroupElement tags a GroupElementMsg.
	VariantGroupElement Variant = 1
	// VariantScalar tags a ScalarMsg.
	VariantScalar Variant = 2
	// VariantPair tags a PairMsg.
	VariantPair Variant = 3
	// VariantCompound tags a CompoundMsg.
	VariantCompound Variant = 4
)

// Message is a tagged value sent on the wire in one move of a Sigma flow.
type Message interface {
	// Variant reports which concrete type implements this Message.
	Variant() Variant

	// ToBytes returns the wire encoding of this Message.
	ToBytes() []byte
}

// UnsetScalar is the sentinel value a ScalarMsg built by NewUnsetScalarMsg
// holds (a zero-value ScalarMsg has a nil Z). It marks an uninitialized
// placeholder in a pre-allocated receive slot and is never sent on the wire
// by a correct prover.
var UnsetScalar = big.NewInt(-100)

// GroupElementMsg carries one encoded group element. The encoding itself is
// opaque to wire: it is whatever the collaborator Group produced.
type GroupElementMsg struct {
	Enc []byte
}

// NewGroupElementMsg wraps an already-encoded group element.
func NewGroupElementMsg(enc []byte) GroupElementMsg {
	return GroupElementMsg{Enc: enc}
}

// Variant implements Message.
func (m GroupElementMsg) Variant() Variant { return VariantGroupElement }

// ToBytes implements Message: the encoding is returned unmodified.
func (m GroupElementMsg) ToBytes() []byte { return m.Enc }

// GroupElementMsgFromBytes wraps a received payload as a GroupElementMsg.
// The channel delivered exactly one logical message, so no further framing
// is needed; whether the bytes decode to a valid group element is the
// Group collaborator's concern (via Group.Decode).
func GroupElementMsgFromBytes(data []byte) GroupElementMsg {
	return GroupElementMsg{Enc: data}
}

// ScalarMsg carries one scalar, encoded as an ASCII decimal integer.
type ScalarMsg struct {
	Z *big.Int
}

// NewScalarMsg wraps a scalar value.
func NewScalarMsg(z *big.Int) ScalarMsg {
	return ScalarMsg{Z: z}
}

// NewUnsetScalarMsg returns a placeholder ScalarMsg holding UnsetScalar, for
// a slot whose response has not been received yet. VerifierDriver does not
// use it: it decodes z from the expected Variant via DecodeVariant.
func NewUnsetScalarMsg() ScalarMsg {
	return ScalarMsg{Z: new(big.Int).Set(UnsetScalar)}
}

// Variant implements Message.
func (m ScalarMsg) Variant() Variant { return VariantScalar }

// ToBytes implements Message: the signed decimal ASCII representation.
func (m ScalarMsg) ToBytes() []byte {
	return []byte(m.Z.String())
}

// ScalarMsgFromBytes parses a ScalarMsg from its ASCII decimal encoding.
func ScalarMsgFromBytes(data []byte) (ScalarMsg, error) {
	z, ok := new(big.Int).SetString(string(data), 10)
	if !ok {
		return ScalarMsg{}, xerrors.Errorf("failed to parse scalar %q: %w", data, ErrMalformedMessage)
	}

	return ScalarMsg{Z: z}, nil
}

// PairMsg carries two encoded group elements, used by Chaum-Pedersen.
type PairMsg struct {
	A GroupElementMsg
	B GroupElementMsg
}

// NewPairMsg wraps two encoded group elements.
func NewPairMsg(a, b GroupElementMsg) PairMsg {
	return PairMsg{A: a, B: b}
}

// Variant implements Message.
func (m PairMsg) Variant() Variant { return VariantPair }

// ToBytes implements Message: enc(a) ++ ":" ++ enc(b).
func (m PairMsg) ToBytes() []byte {
	out := make([]byte, 0, len(m.A.Enc)+len(m.B.Enc)+1)
	out = append(out, m.A.Enc...)
	out = append(out, ':')
	out = append(out, m.B.Enc...)

	return out
}

// PairMsgFromBytes splits a received payload on the first ':' into two
// GroupElementMsg halves.
func PairMsgFromBytes(data []byte) (PairMsg, error) {
	idx := -1
	for i, b := range data {
		if b == ':' {
			idx = i
			break
		}
	}
	if idx < 0 {
		return PairMsg{}, xerrors.Errorf("missing ':' separator in pair message: %w", ErrMalformedMessage)
	}

	return PairMsg{
		A: GroupElementMsgFromBytes(data[:idx]),
		B: GroupElementMsgFromBytes(data[idx+1:]),
	}, nil
}

// CompoundMsg carries an ordered sequence of heterogeneous sub-messages,
// used by the AND combinator. Unlike the other variants it self-frames:
// each sub-message is written as a 1-byte variant tag, a 4-byte length, and
// the sub-message's own ToBytes(), so a decoder can recover the sequence
// without being told the per-slot variant in advance.
type CompoundMsg struct {
	Items []Message
}

// NewCompoundMsg wraps an ordered sequence of sub-messages.
func NewCompoundMsg(items ...Message) CompoundMsg {
	return CompoundMsg{Items: items}
}

// Variant implements Message.
func (m CompoundMsg) Variant() Variant { return VariantCompound }

// ToBytes implements Message.
func (m CompoundMsg) ToBytes() []byte {
	util := marshalutil.New()
	util.WriteUint32(uint32(len(m.Items)))

	for _, item := range m.Items {
		payload := item.ToBytes()
		util.WriteUint8(uint8(item.Variant()))
		util.WriteUint32(uint32(len(payload)))
		util.WriteBytes(payload)
	}

	return util.Bytes(true)
}

// CompoundMsgFromBytes decodes a CompoundMsg produced by ToBytes.
func CompoundMsgFromBytes(data []byte) (CompoundMsg, error) {
	util := marshalutil.New(data)

	count, err := util.ReadUint32()
	if err != nil {
		return CompoundMsg{}, xerrors.Errorf("failed to read compound count: %w", err)
	}

	items := make([]Message, 0, count)
	for i := uint32(0); i < count; i++ {
		tag, err := util.ReadUint8()
		if err != nil {
			return CompoundMsg{}, xerrors.Errorf("failed to read sub-message tag %d: %w", i, err)
		}

		length, err := util.ReadUint32()
		if err != nil {
			return CompoundMsg{}, xerrors.Errorf("failed to read sub-message length %d: %w", i, err)
		}

		payload, err := util.ReadBytes(int(length))
		if err != nil {
			return CompoundMsg{}, xerrors.Errorf("failed to read sub-message payload %d: %w", i, err)
		}

		msg, err := DecodeVariant(Variant(tag), payload)
		if err != nil {
			return CompoundMsg{}, xerrors.Errorf("failed to decode sub-message %d: %w", i, err)
		}
		items = append(items, msg)
	}

	return CompoundMsg{Items: items}, nil
}

// DecodeVariant decodes a payload known to hold the given Variant. Drivers
// use this to decode a channel payload once they know, from the concrete
// protocol being run, which variant a move is supposed to carry.
func DecodeVariant(variant Variant, payload []byte) (Message, error) {
	switch variant {
	case VariantGroupElement:
		return GroupElementMsgFromBytes(payload), nil
	case VariantScalar:
		return ScalarMsgFromBytes(payload)
	case VariantPair:
		return PairMsgFromBytes(payload)
	case VariantCompound:
		return CompoundMsgFromBytes(payload)
	default:
		return nil, xerrors.Errorf("unknown variant tag %d: %w", variant, ErrMalformedMessage)
	}
}
