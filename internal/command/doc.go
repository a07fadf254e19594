// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package command defines the capability shared by every devbox command:
// it declares its options, runs against an input, and reports which
// option values it decided while running.
//
// Base carries that bookkeeping and the interactive option requests so
// concrete commands only implement Run.
package command
