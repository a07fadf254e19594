// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package list provides the list subcommand, which describes the registered commands.
package list

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/matt-FFFFFF/devbox/internal/command"
	"github.com/matt-FFFFFF/devbox/internal/options"
	"github.com/samber/lo"
	"github.com/urfave/cli/v3"
)

const commandArg = "command"

// ErrWrite is returned when the listing cannot be written.
var ErrWrite = errors.New("failed to write command list")

var (
	nameStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	optionStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	defaultStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	markerStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
)

// Registry is the source of the listed commands.
type Registry interface {
	Get(name string) (command.Command, error)
	All() []command.Command
}

// New creates the list subcommand.
func New(reg Registry) *cli.Command {
	return &cli.Command{
		Name:  "list",
		Usage: "List the available commands and their options",
		Arguments: []cli.Argument{
			&cli.StringArg{
				Name: commandArg,
			},
		},
		Action: func(_ context.Context, cmd *cli.Command) error {
			cmds := reg.All()

			if name := cmd.StringArg(commandArg); name != "" {
				c, err := reg.Get(name)
				if err != nil {
					return err
				}

				cmds = []command.Command{c}
			}

			return Write(cmd.Root().Writer, cmds)
		},
	}
}

// Write renders the commands and their options to w.
func Write(w io.Writer, cmds []command.Command) error {
	var sb strings.Builder

	width := lo.Max(lo.Map(cmds, func(c command.Command, _ int) int {
		return len(c.Name())
	}))

	for _, c := range cmds {
		sb.WriteString(nameStyle.Render(c.Name()))

		if c.Description() != "" {
			sb.WriteString(strings.Repeat(" ", width-len(c.Name())+2) + c.Description())
		}

		sb.WriteString("\n")

		for _, opt := range c.OptionsConfig() {
			sb.WriteString("    " + optionLine(opt) + "\n")
		}
	}

	if _, err := io.WriteString(w, sb.String()); err != nil {
		return errors.Join(ErrWrite, err)
	}

	return nil
}

func optionLine(opt options.Option) string {
	parts := []string{optionStyle.Render("--" + opt.Name)}

	switch {
	case opt.Virtual:
		parts = append(parts, markerStyle.Render("(virtual)"))
	case opt.Boolean:
		parts = append(parts, markerStyle.Render("(boolean)"))
	}

	if opt.Description != "" {
		parts = append(parts, opt.Description)
	}

	if opt.Default != "" {
		parts = append(parts, defaultStyle.Render(fmt.Sprintf("[default: %s]", opt.Default)))
	}

	return strings.Join(parts, " ")
}
