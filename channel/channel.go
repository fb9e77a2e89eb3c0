// Package channel is the byte-oriented transport Sigma drivers send and
// receive logical messages over. The core never fragments a logical
// message: SendSized writes exactly one length-prefixed frame, and
// ReceiveSized returns exactly one frame's payload.
package channel

import "context"

// Channel is the collaborator interface the prover and verifier drivers
// consume. Its concrete implementation, TCPChannel (also used over an
// in-memory net.Pipe by NewPipePair), owns the framing; the core only calls
// through this interface.
type Channel interface {
	// SendSized writes a length-prefixed frame carrying b.
	SendSized(ctx context.Context, b []byte) error

	// ReceiveSized reads and returns the payload of the next frame.
	ReceiveSized(ctx context.Context) ([]byte, error)

	// Close releases the underlying transport.
	Close() error
}
