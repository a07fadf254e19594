// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package options

import (
	"slices"
	"strings"

	"github.com/samber/lo"
)

const (
	// SymbolTrue is the value a boolean option is forwarded as when it is truthy.
	SymbolTrue = "y"
	// SymbolFalse is the value a boolean option is forwarded as when it is falsy.
	SymbolFalse = "n"
)

// Option describes a single option accepted by a command.
type Option struct {
	// Name is the option name, without the leading dashes. Unique within a command.
	Name string `yaml:"name" validate:"required,optionname"`
	// Description is the help text shown for the option.
	Description string `yaml:"description,omitempty"`
	// Default is used when the option is neither supplied nor requested interactively.
	Default string `yaml:"default,omitempty"`
	// Question is the prompt shown when the option is requested interactively.
	// Options without a question are never prompted for.
	Question string `yaml:"question,omitempty"`
	// Virtual options are bookkeeping only and are never rendered as a CLI flag.
	Virtual bool `yaml:"virtual,omitempty"`
	// Boolean options are forwarded as SymbolTrue or SymbolFalse.
	Boolean bool `yaml:"boolean,omitempty"`
	// Initial options are requested before the rest of the command's options.
	Initial bool `yaml:"initial,omitempty"`
}

// Forward renders value the way it is passed to a command on the command line.
// Boolean options are reduced to one of the two symbols, everything else is returned as is.
func (o Option) Forward(value string) string {
	if !o.Boolean {
		return value
	}

	return Symbol(Truthy(value))
}

// Options is an ordered set of option descriptors.
type Options []Option

// Lookup returns the descriptor with the given name.
func (o Options) Lookup(name string) (Option, bool) {
	return lo.Find(o, func(opt Option) bool {
		return opt.Name == name
	})
}

// Names returns the option names in order.
func (o Options) Names() []string {
	return lo.Map(o, func(opt Option, _ int) string {
		return opt.Name
	})
}

// Merge returns a new set containing o overlaid with other.
// A descriptor in other replaces the descriptor of the same name in place,
// names not yet present are appended in the order they appear in other.
func (o Options) Merge(other Options) Options {
	merged := slices.Clone(o)

	for _, opt := range other {
		idx := slices.IndexFunc(merged, func(existing Option) bool {
			return existing.Name == opt.Name
		})
		if idx < 0 {
			merged = append(merged, opt)
			continue
		}

		merged[idx] = opt
	}

	return merged
}

// Ordered returns the descriptors with the initial ones first, keeping the relative order otherwise.
func (o Options) Ordered() Options {
	initial, rest := lo.FilterReject(o, func(opt Option, _ int) bool {
		return opt.Initial
	})

	return slices.Concat(initial, rest)
}

// Truthy reports whether a raw option value should be treated as true.
func Truthy(value string) bool {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", "0", "false", "n", "no", "off":
		return false
	default:
		return true
	}
}

// Symbol returns SymbolTrue or SymbolFalse.
func Symbol(b bool) string {
	if b {
		return SymbolTrue
	}

	return SymbolFalse
}
