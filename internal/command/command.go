// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package command

import (
	"context"
	"errors"
	"fmt"
	"io"
	"maps"

	"github.com/matt-FFFFFF/devbox/internal/ctxlog"
	"github.com/matt-FFFFFF/devbox/internal/input"
	"github.com/matt-FFFFFF/devbox/internal/options"
	"github.com/matt-FFFFFF/devbox/internal/prompt"
)

var (
	// ErrUnknownOption is returned when a command is asked for an option it does not declare.
	ErrUnknownOption = errors.New("unknown option")
	// ErrRequestOption is returned when an option value could not be requested from the user.
	ErrRequestOption = errors.New("failed to request option value")
)

// Command is a named command that declares its options and reports which of them it set while running.
type Command interface {
	// Name returns the unique name of the command, e.g. "magento:setup".
	Name() string
	// Description returns a one line description of the command.
	Description() string
	// OptionsConfig returns the descriptors of the options the command accepts.
	OptionsConfig() options.Options
	// Run executes the command against in, writing any output to out.
	Run(ctx context.Context, in *input.Input, out io.Writer) error
	// ValueSetStates reports, for the last run, which options had their value decided by the command.
	ValueSetStates() map[string]bool
}

// Base implements the bookkeeping shared by commands: name, description,
// option descriptors and the value-set states of the current run.
// It is meant to be embedded.
type Base struct {
	name        string
	description string
	opts        options.Options
	states      map[string]bool
	prompter    prompt.Prompter
}

// NewBase creates a new Base.
func NewBase(name, description string, opts options.Options) *Base {
	return &Base{
		name:        name,
		description: description,
		opts:        opts,
		states:      make(map[string]bool),
	}
}

// Name implements Command.
func (b *Base) Name() string {
	return b.name
}

// Description implements Command.
func (b *Base) Description() string {
	return b.description
}

// OptionsConfig implements Command.
func (b *Base) OptionsConfig() options.Options {
	return b.opts
}

// ValueSetStates implements Command.
func (b *Base) ValueSetStates() map[string]bool {
	return maps.Clone(b.states)
}

// ResetStates clears the value-set states. Call it at the start of every run.
func (b *Base) ResetStates() {
	clear(b.states)
}

// SetPrompter overrides the prompter used for interactive requests.
func (b *Base) SetPrompter(p prompt.Prompter) {
	b.prompter = p
}

// SetOption writes value into in and records that the command set the option.
func (b *Base) SetOption(in *input.Input, name, value string) error {
	if _, ok := b.opts.Lookup(name); !ok {
		return fmt.Errorf("%w: %s does not declare %q", ErrUnknownOption, b.name, name)
	}

	in.SetOption(name, value)
	b.states[name] = true

	return nil
}

// RequestOption returns the value of the named option.
// A supplied value wins. Otherwise, when the input is interactive and the option
// has a question, the user is asked and the option is marked as set by this command.
// Failing both, the default is used. The resolved value is written back into in.
func (b *Base) RequestOption(ctx context.Context, in *input.Input, name string) (string, error) {
	opt, ok := b.opts.Lookup(name)
	if !ok {
		return "", fmt.Errorf("%w: %s does not declare %q", ErrUnknownOption, b.name, name)
	}

	if v, ok := in.Option(name); ok {
		return v, nil
	}

	if !in.Interactive() || opt.Question == "" || opt.Virtual {
		in.SetOption(name, opt.Default)
		return opt.Default, nil
	}

	ctxlog.Debug(ctx, "requesting option", "command", b.name, "option", name)

	v, err := b.ask(opt)
	if err != nil {
		return "", errors.Join(ErrRequestOption, err)
	}

	in.SetOption(name, v)
	b.states[name] = true

	return v, nil
}

func (b *Base) ask(opt options.Option) (string, error) {
	p := b.prompter
	if p == nil {
		p = prompt.Factory()
	}

	if !opt.Boolean {
		return p.Ask(opt.Question, opt.Default)
	}

	yes, err := p.Confirm(opt.Question, options.Truthy(opt.Default))
	if err != nil {
		return "", err
	}

	return options.Symbol(yes), nil
}
