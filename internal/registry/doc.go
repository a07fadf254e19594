// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package registry provides a registry of named commands.
// Lookups of unknown names fail with ErrCommandNotFound.
package registry
