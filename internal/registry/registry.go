// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package registry

import (
	"errors"
	"fmt"
	"slices"

	"github.com/matt-FFFFFF/devbox/internal/command"
	"github.com/samber/lo"
)

var (
	// ErrCommandNotFound is returned when no command is registered under a name.
	ErrCommandNotFound = errors.New("command not found")
	// ErrInvalidCommand is returned when registering a nil or unnamed command.
	ErrInvalidCommand = errors.New("invalid command")
)

// Registry holds commands by name, in registration order.
type Registry struct {
	commands []command.Command
}

// New creates an empty registry.
func New() *Registry {
	return &Registry{}
}

// Register adds cmd to the registry.
// A command registered under an existing name replaces it, keeping its position.
func (r *Registry) Register(cmd command.Command) error {
	if cmd == nil {
		return fmt.Errorf("%w: nil command", ErrInvalidCommand)
	}

	if cmd.Name() == "" {
		return fmt.Errorf("%w: command has no name", ErrInvalidCommand)
	}

	idx := slices.IndexFunc(r.commands, func(c command.Command) bool {
		return c.Name() == cmd.Name()
	})
	if idx >= 0 {
		r.commands[idx] = cmd
		return nil
	}

	r.commands = append(r.commands, cmd)

	return nil
}

// Get returns the command registered under name.
func (r *Registry) Get(name string) (command.Command, error) {
	cmd, ok := lo.Find(r.commands, func(c command.Command) bool {
		return c.Name() == name
	})
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrCommandNotFound, name)
	}

	return cmd, nil
}

// All returns every registered command in registration order.
func (r *Registry) All() []command.Command {
	return slices.Clone(r.commands)
}

// Names returns the sorted names of all registered commands.
func (r *Registry) Names() []string {
	names := lo.Map(r.commands, func(c command.Command, _ int) string {
		return c.Name()
	})
	slices.Sort(names)

	return names
}
