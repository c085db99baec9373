// Package context extends the standard library context package with
// process level cancellation.
package context

import (
	"context"
	"os"
	"os/signal"
)

// WithSignal creates a new context that is cancelled when the process receives
// one of signals. If onSignal is non-nil, it is called with the received
// signal before the context is cancelled. The cancel return value should be
// called to release this function's resources once it is no longer in use.
func WithSignal(
	ctx context.Context,
	onSignal func(os.Signal),
	signals ...os.Signal,
) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(ctx)

	ch := make(chan os.Signal, 1)
	signal.Notify(ch, signals...)
	go func() {
		defer signal.Stop(ch)

		select {
		case <-ctx.Done():
			return
		case sig := <-ch:
			if onSignal != nil {
				onSignal(sig)
			}
			cancel()
		}
	}()
	return ctx, cancel
}
