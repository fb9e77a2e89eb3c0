package channel

import (
	"context"
	"encoding/binary"
	"io"
	"net"
	"sync"
	"time"

	"golang.org/x/xerrors"
)

// MaxFrameSize bounds how large a single frame's payload may be, matching
// the largest plausible CompoundMsg for a reasonably sized AND composition.
const MaxFrameSize = 1 << 20 // 1 MiB

// lengthPrefixSize is the width, in bytes, of the frame length prefix.
const lengthPrefixSize = 4

// TCPChannel frames messages over a net.Conn with a 4-byte big-endian
// length prefix, applying the context's deadline (if any) to both the read
// and the write side of each call. It is grounded on the same
// deadline-per-operation pattern as a managed TCP connection: every
// SendSized/ReceiveSized call re-applies its own deadline rather than
// relying on one set at construction time.
type TCPChannel struct {
	conn net.Conn

	mu sync.Mutex
}

// NewTCPChannel wraps an already-established net.Conn.
func NewTCPChannel(conn net.Conn) *TCPChannel {
	return &TCPChannel{conn: conn}
}

// SendSized implements Channel.
func (c *TCPChannel) SendSized(ctx context.Context, b []byte) error {
	if len(b) > MaxFrameSize {
		return ErrFrameTooLarge
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if err := applyDeadline(ctx, c.conn.SetWriteDeadline); err != nil {
		return xerrors.Errorf("failed to set write deadline: %w", err)
	}

	var prefix [lengthPrefixSize]byte
	binary.BigEndian.PutUint32(prefix[:], uint32(len(b)))

	if _, err := c.conn.Write(prefix[:]); err != nil {
		return xerrors.Errorf("failed to write frame length (%v): %w", err, ErrTransport)
	}
	if len(b) == 0 {
		return nil
	}
	if _, err := c.conn.Write(b); err != nil {
		return xerrors.Errorf("failed to write frame payload (%v): %w", err, ErrTransport)
	}

	return nil
}

// ReceiveSized implements Channel.
func (c *TCPChannel) ReceiveSized(ctx context.Context) ([]byte, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := applyDeadline(ctx, c.conn.SetReadDeadline); err != nil {
		return nil, xerrors.Errorf("failed to set read deadline: %w", err)
	}

	var prefix [lengthPrefixSize]byte
	if _, err := io.ReadFull(c.conn, prefix[:]); err != nil {
		return nil, xerrors.Errorf("failed to read frame length (%v): %w", err, ErrTransport)
	}

	length := binary.BigEndian.Uint32(prefix[:])
	if length > MaxFrameSize {
		return nil, ErrFrameTooLarge
	}
	if length == 0 {
		return []byte{}, nil
	}

	payload := make([]byte, length)
	if _, err := io.ReadFull(c.conn, payload); err != nil {
		return nil, xerrors.Errorf("failed to read frame payload (%v): %w", err, ErrTransport)
	}

	return payload, nil
}

// Close implements Channel.
func (c *TCPChannel) Close() error {
	return c.conn.Close()
}

func applyDeadline(ctx context.Context, setDeadline func(time.Time) error) error {
	deadline, ok := ctx.Deadline()
	if !ok {
		return setDeadline(time.Time{})
	}

	return setDeadline(deadline)
}
