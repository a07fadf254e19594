// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package cmd contains the command-line interface (CLI) for the module.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/matt-FFFFFF/devbox"
	"github.com/matt-FFFFFF/devbox/cmd/cmdstate"
	"github.com/matt-FFFFFF/devbox/cmd/list"
	"github.com/matt-FFFFFF/devbox/cmd/step"
	"github.com/matt-FFFFFF/devbox/internal/ctxlog"
	"github.com/matt-FFFFFF/devbox/internal/registry"
	"github.com/matt-FFFFFF/devbox/internal/steps"
	"github.com/matt-FFFFFF/devbox/internal/wrapper"
	"github.com/urfave/cli/v3"
)

var (
	// ErrLogFormat is returned when an unknown log format is requested.
	ErrLogFormat = errors.New("unknown log format")
	// ErrSetup is returned when the commands cannot be set up from the steps.
	ErrSetup = errors.New("failed to set up commands")
)

// New loads the steps named on the command line and returns the root command
// with a subcommand for every step plus magento:install.
func New(ctx context.Context, args []string) (*cli.Command, error) {
	defs, err := steps.Resolve(ctx, StepsLocation(args))
	if err != nil {
		return nil, errors.Join(ErrSetup, err)
	}

	reg := registry.New()

	if err := steps.Register(reg, defs); err != nil {
		return nil, errors.Join(ErrSetup, err)
	}

	if err := reg.Register(wrapper.NewInstall(reg)); err != nil {
		return nil, errors.Join(ErrSetup, err)
	}

	return NewRootCmd(reg), nil
}

// NewRootCmd creates the root command with a subcommand for every registered command.
func NewRootCmd(reg *registry.Registry) *cli.Command {
	commands := []*cli.Command{list.New(reg)}
	for _, c := range reg.All() {
		commands = append(commands, step.New(c))
	}

	return &cli.Command{
		Name:  "devbox",
		Usage: "devbox magento:install",
		Description: `devbox sets up a Magento development environment.
Each step is a command defined in a steps file. magento:install runs them all in order,
passing the options given to it, and any values decided along the way, to every step that uses them.

Steps files use Hashicorp's go-getter syntax, which allows for fetching files from various sources.
See https://github.com/hashicorp/go-getter.`,
		Version:   fmt.Sprintf("%s (commit: %s)", devbox.Version, devbox.Commit),
		Writer:    os.Stdout,
		ErrWriter: os.Stderr,
		Copyright: "Copyright (c) matt-FFFFFF 2025. All rights reserved.",
		Authors: []any{
			"Matt White (matt-FFFFFF)",
		},
		EnableShellCompletion: true,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name: cmdstate.StepsFlag,
				Usage: "Specify the URL of the steps file. " +
					"Supports Hashicorp's go-getter syntax for fetching files from various sources. " +
					"Defaults to the built-in Magento steps.",
				Sources:  cli.EnvVars(cmdstate.StepsEnvVar),
				OnlyOnce: true,
			},
			&cli.BoolFlag{
				Name:        cmdstate.NoInteractionFlag,
				Aliases:     []string{"n"},
				Usage:       "Do not ask any interactive question, use the defaults instead",
				DefaultText: "false",
				Value:       false,
				OnlyOnce:    true,
			},
			&cli.StringFlag{
				Name:     cmdstate.LogFormatFlag,
				Usage:    "Set the log format, pretty or json",
				Value:    cmdstate.LogFormatPretty,
				Sources:  cli.EnvVars(cmdstate.LogFormatEnvVar),
				OnlyOnce: true,
			},
		},
		Commands: commands,
		Before:   setupLogger,
	}
}

func setupLogger(ctx context.Context, cmd *cli.Command) (context.Context, error) {
	switch format := cmd.String(cmdstate.LogFormatFlag); format {
	case cmdstate.LogFormatPretty:
		return ctx, nil
	case cmdstate.LogFormatJSON:
		return ctxlog.New(ctx, ctxlog.JSONLogger), nil
	default:
		return ctx, fmt.Errorf("%w: %q", ErrLogFormat, format)
	}
}

// StepsLocation returns the steps file location from args or the environment.
// It runs before the command tree exists, as the tree depends on the loaded steps.
// An empty result means the built-in steps.
func StepsLocation(args []string) string {
	flag := "--" + cmdstate.StepsFlag

	for i := 1; i < len(args); i++ {
		arg := args[i]

		switch {
		case arg == "--":
			return os.Getenv(cmdstate.StepsEnvVar)
		case arg == flag && i+1 < len(args):
			return args[i+1]
		case strings.HasPrefix(arg, flag+"="):
			return strings.TrimPrefix(arg, flag+"=")
		}
	}

	return os.Getenv(cmdstate.StepsEnvVar)
}
