package cmd

import (
	"context"
	"os"
	"os/signal"
)

// interruptContext is cancelled on the first os.Interrupt.
func interruptContext() context.Context {
	ctx, cancel := context.WithCancel(context.Background())
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt)
	go func() {
		<-sigCh
		cancel()
	}()
	return ctx
}
