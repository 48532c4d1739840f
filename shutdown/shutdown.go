// Package shutdown coordinates process termination. Long-lived resources
// register cleanup hooks, and the hooks run when a termination signal
// arrives or when Shutdown is called.
package shutdown

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"
)

var (
	hooksMu sync.Mutex     //nolint:gochecknoglobals
	hooks   []func()       //nolint:gochecknoglobals
	signals chan os.Signal //nolint:gochecknoglobals
)

// BeforeShutdown registers a hook to run before the process winds down.
// Hooks run in registration order, before the context returned by
// SetupHandler is canceled, so they can still use it to release
// resources.
func BeforeShutdown(h func()) {
	hooksMu.Lock()
	defer hooksMu.Unlock()

	hooks = append(hooks, h)
}

// Shutdown starts the shutdown sequence programmatically, as if a
// termination signal had been received. It is a no-op when no handler
// was set up.
func Shutdown() {
	if signals != nil {
		signals <- os.Interrupt
	}
}

// SetupHandler installs a handler for SIGINT and SIGTERM and returns a
// context that is canceled once a signal has been received and all
// registered hooks have run.
func SetupHandler() context.Context {
	signals = make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)

	ctx, cancel := context.WithCancel(context.Background())

	go func() {
		for sig := range signals {
			slog.Warn("Received " + sig.String() + ", shutting down...")
			close(signals)

			signals = nil

			runHooks()
			cancel()
		}
	}()

	return ctx
}

func runHooks() {
	hooksMu.Lock()
	defer hooksMu.Unlock()

	for _, h := range hooks {
		h()
	}

	hooks = nil
}
