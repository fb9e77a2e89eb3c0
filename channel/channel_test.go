package channel

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPipeChannelRoundTrip(t *testing.T) {
	left, right := NewPipePair()
	defer left.Close()
	defer right.Close()

	ctx := context.Background()
	errCh := make(chan error, 1)

	go func() {
		errCh <- left.SendSized(ctx, []byte("hello sigma"))
	}()

	got, err := right.ReceiveSized(ctx)
	require.NoError(t, err)
	require.Equal(t, "hello sigma", string(got))
	require.NoError(t, <-errCh)
}

func TestPipeChannelEmptyFrame(t *testing.T) {
	left, right := NewPipePair()
	defer left.Close()
	defer right.Close()

	ctx := context.Background()
	errCh := make(chan error, 1)

	go func() {
		errCh <- left.SendSized(ctx, []byte{})
	}()

	got, err := right.ReceiveSized(ctx)
	require.NoError(t, err)
	require.Empty(t, got)
	require.NoError(t, <-errCh)
}

func TestPipeChannelOversizedFrameRejected(t *testing.T) {
	left, _ := NewPipePair()
	defer left.Close()

	err := left.SendSized(context.Background(), make([]byte, MaxFrameSize+1))
	require.Error(t, err)
}
