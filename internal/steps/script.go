// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package steps

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/matt-FFFFFF/devbox/internal/command"
	"github.com/matt-FFFFFF/devbox/internal/ctxlog"
	"github.com/matt-FFFFFF/devbox/internal/input"
	"github.com/matt-FFFFFF/devbox/internal/options"
	"mvdan.cc/sh/v3/expand"
	"mvdan.cc/sh/v3/interp"
	"mvdan.cc/sh/v3/syntax"
)

const (
	// SetBuiltin is the shell command a script uses to report an option value.
	SetBuiltin = "devbox-set"
	// EnvOptionPrefix prefixes the environment variables holding option values.
	EnvOptionPrefix = "DEVBOX_OPT_"
	// EnvCommand holds the name of the running command.
	EnvCommand = "DEVBOX_COMMAND"
	// EnvInteractive is "y" when the command runs interactively, "n" otherwise.
	EnvInteractive = "DEVBOX_INTERACTIVE"
)

const setUsageExitCode = 2

// ErrParseScript is returned when a step script is not valid shell.
var ErrParseScript = errors.New("failed to parse script")

// ScriptError is returned when a step script exits with a non-zero status.
type ScriptError struct {
	Command  string
	ExitCode int
}

// Error implements the error interface.
func (e *ScriptError) Error() string {
	return fmt.Sprintf("%s: script exited with status %d", e.Command, e.ExitCode)
}

// Script is a command backed by a shell script run in the built-in interpreter.
type Script struct {
	*command.Base
	script string
	stdin  io.Reader
}

// NewScript creates a Script from a definition.
func NewScript(def Definition) *Script {
	return &Script{
		Base:   command.NewBase(def.Name, def.Description, def.Options),
		script: def.Script,
		stdin:  os.Stdin,
	}
}

// SetStdin replaces the reader the script reads from.
func (s *Script) SetStdin(r io.Reader) {
	s.stdin = r
}

// Run resolves the command's options, initial ones first, and runs the script.
// Values reported with devbox-set are written into in and marked as set.
func (s *Script) Run(ctx context.Context, in *input.Input, out io.Writer) error {
	s.ResetStates()

	for _, opt := range s.OptionsConfig().Ordered() {
		if opt.Virtual {
			continue
		}

		if _, err := s.RequestOption(ctx, in, opt.Name); err != nil {
			return err
		}
	}

	prog, err := syntax.NewParser().Parse(strings.NewReader(s.script), s.Name())
	if err != nil {
		return errors.Join(ErrParseScript, err)
	}

	runner, err := interp.New(
		interp.StdIO(s.stdin, out, out),
		interp.Env(expand.ListEnviron(s.environ(in)...)),
		interp.ExecHandlers(s.setHandler(in)),
	)
	if err != nil {
		return fmt.Errorf("failed to create interpreter for %s: %w", s.Name(), err)
	}

	ctxlog.Debug(ctx, "running script", "command", s.Name())

	if err := runner.Run(ctx, prog); err != nil {
		var status interp.ExitStatus
		if errors.As(err, &status) {
			if status == 0 {
				return nil
			}

			return &ScriptError{Command: s.Name(), ExitCode: int(status)}
		}

		return err
	}

	return nil
}

// environ returns the process environment plus the command's option values.
func (s *Script) environ(in *input.Input) []string {
	env := os.Environ()

	for _, opt := range s.OptionsConfig() {
		v, ok := in.Option(opt.Name)
		if !ok {
			continue
		}

		env = append(env, EnvName(opt.Name)+"="+opt.Forward(v))
	}

	return append(env,
		EnvCommand+"="+s.Name(),
		EnvInteractive+"="+options.Symbol(in.Interactive()),
	)
}

// setHandler intercepts the devbox-set builtin, passing every other command on.
func (s *Script) setHandler(in *input.Input) func(interp.ExecHandlerFunc) interp.ExecHandlerFunc {
	return func(next interp.ExecHandlerFunc) interp.ExecHandlerFunc {
		return func(ctx context.Context, args []string) error {
			if len(args) == 0 || args[0] != SetBuiltin {
				return next(ctx, args)
			}

			if len(args) != 3 { //nolint:mnd
				hc := interp.HandlerCtx(ctx)
				fmt.Fprintf(hc.Stderr, "usage: %s NAME VALUE\n", SetBuiltin) //nolint:errcheck

				return interp.ExitStatus(setUsageExitCode)
			}

			ctxlog.Debug(ctx, "option set by script", "command", s.Name(), "option", args[1])

			return s.SetOption(in, args[1], args[2])
		}
	}
}

// EnvName returns the environment variable holding the value of the named option,
// e.g. "db-host" becomes "DEVBOX_OPT_DB_HOST".
func EnvName(option string) string {
	return EnvOptionPrefix + strings.ToUpper(strings.ReplaceAll(option, "-", "_"))
}

// Registry is where Register adds the script commands.
type Registry interface {
	Register(cmd command.Command) error
}

// Register adds a Script for every definition to reg.
func Register(reg Registry, defs []Definition) error {
	for _, def := range defs {
		if err := reg.Register(NewScript(def)); err != nil {
			return fmt.Errorf("failed to register %s: %w", def.Name, err)
		}
	}

	return nil
}
