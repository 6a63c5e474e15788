package common

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

// ShutdownSignals stop the console when run in the foreground.
var ShutdownSignals = []os.Signal{os.Interrupt, syscall.SIGTERM}

// SignalError is the cancellation cause of a context stopped by a signal.
type SignalError struct {
	Signal os.Signal
}

func (e *SignalError) Error() string {
	return fmt.Sprintf("received %s", e.Signal)
}

// WithInterrupt returns a context cancelled on any of ShutdownSignals.
func WithInterrupt(parent context.Context) (context.Context, func()) {
	return WithSignals(parent, ShutdownSignals...)
}

// WithSignals returns a context cancelled when one of signals arrives.
// context.Cause of the returned context is a *SignalError naming it. The
// returned stop function releases the signal handler and must be called.
func WithSignals(parent context.Context, signals ...os.Signal) (context.Context, func()) {
	ctx, cancel := context.WithCancelCause(parent)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, signals...)

	go func() {
		select {
		case sig := <-sigChan:
			cancel(&SignalError{Signal: sig})
		case <-ctx.Done():
		}
	}()

	return ctx, func() {
		signal.Stop(sigChan)
		cancel(context.Canceled)
	}
}
