package context

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sys/unix"
)

func TestWithSignal(t *testing.T) {
	received := make(chan os.Signal, 1)
	ctx, cancel := WithSignal(
		context.Background(),
		func(sig os.Signal) { received <- sig },
		unix.SIGUSR1,
	)
	defer cancel()

	require.Nil(t, unix.Kill(unix.Getpid(), unix.SIGUSR1))

	select {
	case <-ctx.Done():
	case <-time.After(time.Second):
		t.Fatal("context not cancelled after signal")
	}
	assert.Equal(t, unix.SIGUSR1, <-received)
}

func TestWithSignalCancel(t *testing.T) {
	ctx, cancel := WithSignal(context.Background(), nil, unix.SIGUSR2)
	cancel()

	select {
	case <-ctx.Done():
	case <-time.After(time.Second):
		t.Fatal("context not cancelled")
	}
	assert.ErrorIs(t, ctx.Err(), context.Canceled)
}
