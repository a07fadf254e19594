// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package ctxlog provides a context-aware logger that can be used to log messages.
// It uses the slog package for structured logging and supports different log levels.
//
// The default is a pretty console handler writing to stderr, so that log lines do not
// interleave with command output on stdout. The level is read from DEVBOX_LOG_LEVEL.
package ctxlog
