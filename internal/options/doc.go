// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package options describes the options a command accepts and the values produced for them.
//
// Descriptors are plain values grouped into an ordered Options set.
// Boolean options are forwarded between commands as one of two fixed symbols,
// SymbolTrue and SymbolFalse.
package options
