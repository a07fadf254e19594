// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package wrapper

import (
	"context"
	"fmt"
	"io"
	"slices"

	"github.com/charmbracelet/lipgloss"
	"github.com/matt-FFFFFF/devbox/internal/command"
	"github.com/matt-FFFFFF/devbox/internal/ctxlog"
	"github.com/matt-FFFFFF/devbox/internal/input"
	"github.com/matt-FFFFFF/devbox/internal/options"
)

const (
	// InstallName is the name of the install command.
	InstallName = "magento:install"
	// InstallDescription is the description of the install command.
	InstallDescription = "Setup Magento and all components"
)

// InstallSequence is the order in which the install command runs the wrapped commands.
var InstallSequence = []string{
	"magento:download",
	"magento:setup",
	"magento:setup:redis",
	"magento:setup:varnish",
	"magento:setup:elasticsearch",
	"magento:setup:integration-tests",
	"magento:finalize",
}

var bannerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))

// Registry resolves commands by name. It is satisfied by *registry.Registry.
type Registry interface {
	Get(name string) (command.Command, error)
	All() []command.Command
}

var _ command.Command = (*Install)(nil)

// Install runs a fixed sequence of commands, forwarding options between them.
// Options supplied to Install are passed on to every wrapped command that declares them,
// and values a wrapped command sets while running are passed on to the commands after it.
type Install struct {
	registry      Registry
	sequence      []string
	optionsConfig options.Options
	configured    bool
}

// NewInstall creates the install command running InstallSequence.
func NewInstall(reg Registry) *Install {
	return NewSequence(reg, InstallSequence)
}

// NewSequence creates an install command running the given command names in order.
func NewSequence(reg Registry, sequence []string) *Install {
	return &Install{
		registry: reg,
		sequence: slices.Clone(sequence),
	}
}

// Name implements command.Command.
func (w *Install) Name() string {
	return InstallName
}

// Description implements command.Command.
func (w *Install) Description() string {
	return InstallDescription
}

// ValueSetStates implements command.Command. Install never decides option values itself.
func (w *Install) ValueSetStates() map[string]bool {
	return map[string]bool{}
}

// Sequence returns the names of the wrapped commands in execution order.
func (w *Install) Sequence() []string {
	return slices.Clone(w.sequence)
}

// OptionsConfig implements command.Command.
// It is the union of the options of every other registered command, so that any of them
// can be supplied to Install directly. A later command's descriptor replaces an earlier
// one of the same name. The result is computed once per Install.
func (w *Install) OptionsConfig() options.Options {
	if w.configured {
		return w.optionsConfig
	}

	var merged options.Options

	for _, cmd := range w.registry.All() {
		if _, ok := cmd.(*Install); ok {
			continue
		}

		merged = merged.Merge(cmd.OptionsConfig())
	}

	for i := range merged {
		merged[i].Initial = false
	}

	w.optionsConfig = merged
	w.configured = true

	return w.optionsConfig
}

// Run implements command.Command. It stops at the first failing command and returns its error unchanged.
func (w *Install) Run(ctx context.Context, in *input.Input, out io.Writer) error {
	shared := make(options.Values)

	for i, name := range w.sequence {
		fmt.Fprintln(out, bannerStyle.Render(fmt.Sprintf("[%d/%d] %s", i+1, len(w.sequence), name))) //nolint:errcheck

		if err := w.executeWrappedCommand(ctx, name, in, out, shared); err != nil {
			return err
		}
	}

	return nil
}

func (w *Install) executeWrappedCommand(
	ctx context.Context, name string, in *input.Input, out io.Writer, shared options.Values,
) error {
	logger := ctxlog.Logger(ctx).With("command", InstallName, "step", name)

	cmd, err := w.registry.Get(name)
	if err != nil {
		return err
	}

	tokens := []string{"", name}

	for _, opt := range cmd.OptionsConfig() {
		if opt.Virtual {
			continue
		}

		value, ok := shared.Get(opt.Name)
		if !ok {
			if value, ok = in.Option(opt.Name); !ok {
				continue
			}
		}

		tokens = append(tokens, fmt.Sprintf("--%s=%s", opt.Name, opt.Forward(value)))
	}

	cmdInput, err := input.NewArgv(tokens)
	if err != nil {
		return err
	}

	cmdInput.SetInteractive(in.Interactive())

	logger.Debug("running wrapped command", "arguments", tokens[2:])

	if err := cmd.Run(ctx, cmdInput, out); err != nil {
		logger.Debug("wrapped command failed", "error", err)
		return err
	}

	for optName, set := range cmd.ValueSetStates() {
		if !set {
			continue
		}

		if value, ok := cmdInput.Option(optName); ok {
			shared.Set(optName, value)
			logger.Debug("sharing option value", "option", optName)
		}
	}

	return nil
}
