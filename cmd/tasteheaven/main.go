// Command tasteheaven is the customer client for the Taste Heaven API: browse
// the menu, keep a cart, log in and place orders from the terminal.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"taste-heaven/internal/config"
	"taste-heaven/internal/telemetry"
)

func main() {
	os.Exit(run())
}

func run() int {
	// .env first so it feeds the flag defaults
	if err := config.LoadDotEnv(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	tracing, err := config.LoadTracing()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	// spans go to stderr; stdout belongs to the command output
	shutdownTracing, err := telemetry.Setup(ctx, tracing, "tasteheaven", os.Stderr)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	defer func() {
		flushCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = shutdownTracing(flushCtx)
	}()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		if !errors.Is(err, errSilent) {
			fmt.Fprintln(os.Stderr, err)
		}
		return 1
	}
	return 0
}
