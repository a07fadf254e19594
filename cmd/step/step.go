// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package step turns registered commands into CLI subcommands.
package step

import (
	"context"
	"fmt"
	"strconv"

	"github.com/matt-FFFFFF/devbox/cmd/cmdstate"
	"github.com/matt-FFFFFF/devbox/internal/command"
	"github.com/matt-FFFFFF/devbox/internal/ctxlog"
	"github.com/matt-FFFFFF/devbox/internal/input"
	"github.com/matt-FFFFFF/devbox/internal/options"
	"github.com/urfave/cli/v3"
)

// New creates a subcommand running c. A flag is generated for every option c declares,
// except virtual ones.
func New(c command.Command) *cli.Command {
	return &cli.Command{
		Name:  c.Name(),
		Usage: c.Description(),
		Flags: Flags(c.OptionsConfig()),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			in := Input(cmd, c.OptionsConfig())
			in.SetInteractive(cmdstate.Interactive(cmd))

			ctxlog.Debug(ctx, "running command", "command", c.Name(), "interactive", in.Interactive())

			if err := c.Run(ctx, in, cmd.Root().Writer); err != nil {
				return fmt.Errorf("%s: %w", c.Name(), err)
			}

			return nil
		},
	}
}

// Flags returns the CLI flags for opts. Boolean options become boolean flags.
func Flags(opts options.Options) []cli.Flag {
	flags := make([]cli.Flag, 0, len(opts))

	for _, opt := range opts {
		if opt.Virtual {
			continue
		}

		if opt.Boolean {
			flags = append(flags, &cli.BoolFlag{
				Name:     opt.Name,
				Usage:    opt.Description,
				Value:    options.Truthy(opt.Default),
				OnlyOnce: true,
			})

			continue
		}

		flags = append(flags, &cli.StringFlag{
			Name:     opt.Name,
			Usage:    opt.Description,
			Value:    opt.Default,
			OnlyOnce: true,
		})
	}

	return flags
}

// Input builds the command input from the flags given on the command line.
// Flags left at their default are not included, so the command can ask for them.
func Input(cmd *cli.Command, opts options.Options) *input.Input {
	values := make(map[string]string)

	for _, opt := range opts {
		if opt.Virtual || !cmd.IsSet(opt.Name) {
			continue
		}

		if opt.Boolean {
			values[opt.Name] = strconv.FormatBool(cmd.Bool(opt.Name))
			continue
		}

		values[opt.Name] = cmd.String(opt.Name)
	}

	return input.New(values)
}
