// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package input provides the argument source a command runs against.
// It is built either from argv-style tokens or directly from a set of option values.
package input

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"
)

const (
	longPrefix     = "--"
	endOfOptions   = "--"
	valueSeparator = "="
	flagValue      = "true"
)

var (
	// ErrUnsupportedToken is returned for short (single dash) options, which are not supported.
	ErrUnsupportedToken = errors.New("unsupported token, only --name=value options are supported")
	// ErrEmptyOptionName is returned when an option token has no name.
	ErrEmptyOptionName = errors.New("option name is empty")
)

// Input holds the options and arguments a command is run with.
type Input struct {
	tokens      []string
	arguments   []string
	options     map[string]string
	interactive bool
}

// New creates an input with the given option values.
func New(values map[string]string) *Input {
	in := &Input{
		options: make(map[string]string, len(values)),
	}
	maps.Copy(in.options, values)

	return in
}

// NewArgv parses argv-style tokens. The first token is the program name and is ignored.
func NewArgv(tokens []string) (*Input, error) {
	in := &Input{
		tokens:  slices.Clone(tokens),
		options: make(map[string]string),
	}

	if len(tokens) == 0 {
		return in, nil
	}

	parseOptions := true

	for _, tok := range tokens[1:] {
		switch {
		case parseOptions && tok == endOfOptions:
			parseOptions = false
		case parseOptions && strings.HasPrefix(tok, longPrefix):
			name, value, found := strings.Cut(strings.TrimPrefix(tok, longPrefix), valueSeparator)
			if name == "" {
				return nil, fmt.Errorf("%w: %q", ErrEmptyOptionName, tok)
			}

			if !found {
				value = flagValue
			}

			in.options[name] = value
		case parseOptions && len(tok) > 1 && strings.HasPrefix(tok, "-"):
			return nil, fmt.Errorf("%w: %q", ErrUnsupportedToken, tok)
		default:
			in.arguments = append(in.arguments, tok)
		}
	}

	return in, nil
}

// HasOption reports whether the option was supplied.
func (i *Input) HasOption(name string) bool {
	_, ok := i.options[name]
	return ok
}

// Option returns the value of the option and whether it was supplied.
func (i *Input) Option(name string) (string, bool) {
	v, ok := i.options[name]
	return v, ok
}

// SetOption sets the value of the option.
func (i *Input) SetOption(name, value string) {
	i.options[name] = value
}

// Options returns a copy of all option values.
func (i *Input) Options() map[string]string {
	return maps.Clone(i.options)
}

// Arguments returns the positional arguments, including the command name.
func (i *Input) Arguments() []string {
	return slices.Clone(i.arguments)
}

// CommandName returns the first positional argument, or an empty string.
func (i *Input) CommandName() string {
	if len(i.arguments) == 0 {
		return ""
	}

	return i.arguments[0]
}

// Tokens returns the tokens the input was parsed from.
func (i *Input) Tokens() []string {
	return slices.Clone(i.tokens)
}

// Interactive reports whether the command may ask the user for missing values.
func (i *Input) Interactive() bool {
	return i.interactive
}

// SetInteractive sets the interactive mode.
func (i *Input) SetInteractive(interactive bool) {
	i.interactive = interactive
}
