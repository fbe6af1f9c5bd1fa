package warehouse

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

// SetupSignalHandler returns a context that is canceled on SIGTERM or SIGINT.
// In-flight queries observe the cancellation through their context.
func SetupSignalHandler() context.Context {
	return SetupSignalHandlerWithCallback(nil)
}

// SetupSignalHandlerWithCallback is SetupSignalHandler with a callback run
// when a signal is received, before the context is canceled.
func SetupSignalHandlerWithCallback(callback func(os.Signal)) context.Context {
	ctx, cancel := context.WithCancel(context.Background())

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGTERM, syscall.SIGINT)

	go func() {
		defer signal.Stop(sigChan)
		select {
		case sig := <-sigChan:
			if callback != nil {
				callback(sig)
			}
			cancel()
		case <-ctx.Done():
		}
	}()

	return ctx
}
