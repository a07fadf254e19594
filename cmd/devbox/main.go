// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package main contains the devbox command-line interface (CLI).
package main

import (
	"context"
	"os"

	"github.com/matt-FFFFFF/devbox/cmd"
	"github.com/matt-FFFFFF/devbox/internal/ctxlog"
	"github.com/matt-FFFFFF/devbox/internal/signalbroker"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	ctx = ctxlog.New(ctx, ctxlog.DefaultLogger)
	defer cancel()

	sigCh := signalbroker.New(ctx)

	go signalbroker.Watch(ctx, sigCh, cancel)

	rootCmd, err := cmd.New(ctx, os.Args)
	if err != nil {
		ctxlog.Error(ctx, "failed to load steps", "error", err)
		os.Exit(1)
	}

	err = rootCmd.Run(ctx, os.Args)

	// Check if the context was cancelled (e.g., due to signals)
	if ctx.Err() != nil {
		ctxlog.Error(ctx, "command terminated due to cancellation", "error", ctx.Err())
		os.Exit(1)
	}

	if err != nil {
		ctxlog.Error(ctx, "command execution failed", "error", err)
		os.Exit(1)
	}

	ctxlog.Info(ctx, "command completed successfully")
}
