// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package cmdstate holds the global flags shared by the root command and the
// subcommands generated from the registered commands.
package cmdstate

import (
	"os"

	"github.com/urfave/cli/v3"
	"golang.org/x/term"
)

const (
	// StepsFlag is the global flag naming the steps file.
	StepsFlag = "steps"
	// StepsEnvVar is read when StepsFlag is not given.
	StepsEnvVar = "DEVBOX_STEPS"
	// NoInteractionFlag disables interactive questions.
	NoInteractionFlag = "no-interaction"
	// LogFormatFlag selects the log output format.
	LogFormatFlag = "log-format"
	// LogFormatEnvVar is read when LogFormatFlag is not given.
	LogFormatEnvVar = "DEVBOX_LOG_FORMAT"

	// LogFormatPretty is the human readable log format.
	LogFormatPretty = "pretty"
	// LogFormatJSON is the machine readable log format.
	LogFormatJSON = "json"
)

// StdinIsTerminal reports whether stdin is attached to a terminal.
var StdinIsTerminal = func() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

// Interactive reports whether commands may ask the user questions.
func Interactive(cmd *cli.Command) bool {
	return !cmd.Bool(NoInteractionFlag) && StdinIsTerminal()
}
