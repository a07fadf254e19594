// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package signalbroker

import (
	"context"
	"os"

	"github.com/matt-FFFFFF/devbox/internal/ctxlog"
)

// Watch monitors the signal channel until it is closed or ctx is done.
// The second signal of a given type closes the channel and cancels the context.
func Watch(ctx context.Context, sigCh chan os.Signal, cancel context.CancelFunc) {
	logger := ctxlog.Logger(ctx).With("component", "watchdog")
	seen := make(map[os.Signal]struct{})

	for {
		select {
		case <-ctx.Done():
			return
		case sig, ok := <-sigCh:
			if !ok {
				return
			}

			if _, ok := seen[sig]; ok {
				logger.Warn("received signal again, aborting", "signal", sig.String())
				close(sigCh)
				cancel()

				return
			}

			logger.Warn("received signal, send it again to abort the current step", "signal", sig.String())

			seen[sig] = struct{}{}
		}
	}
}
