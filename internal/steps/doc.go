// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package steps loads step definitions from YAML and turns them into commands.
//
// Each step is a named command with option descriptors and a shell script.
// Scripts run in an in-process POSIX shell interpreter, read option values from
// DEVBOX_OPT_<NAME> environment variables and report values they decide with
// the devbox-set builtin:
//
//	devbox-set backend-path admin_1234
//
// Reported values are marked as set, so an orchestrating command can pass them on
// to the commands that run after it.
package steps
