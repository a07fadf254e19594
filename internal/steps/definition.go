// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package steps

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"slices"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-yaml"
	"github.com/hashicorp/go-multierror"
	"github.com/matt-FFFFFF/devbox/internal/ctxlog"
	"github.com/matt-FFFFFF/devbox/internal/options"
	"github.com/samber/lo"
)

var (
	// ErrDecode is returned when a steps file is not valid YAML.
	ErrDecode = errors.New("failed to decode steps file, please check the syntax and structure of your YAML file")
	// ErrInvalid is returned when a steps file decodes but describes invalid commands.
	ErrInvalid = errors.New("invalid steps file")
)

// ReservedOptionNames cannot be declared by a step because the CLI uses them.
var ReservedOptionNames = []string{"help", "version", "steps", "no-interaction", "log-format"}

var (
	optionNameRe  = regexp.MustCompile(`^[a-z0-9][a-z0-9-]*$`)
	commandNameRe = regexp.MustCompile(`^[a-z0-9][a-z0-9:-]*$`)
)

var validate = newValidator()

// File is the content of a steps file.
type File struct {
	Commands []Definition `yaml:"commands" validate:"min=1,dive"`
}

// Definition describes one command backed by a shell script.
type Definition struct {
	// Name is the command name, e.g. "magento:setup".
	Name string `yaml:"name" validate:"required,commandname"`
	// Description is a one line description of the command.
	Description string `yaml:"description"`
	// Options are the options the command accepts, in the order they are requested.
	Options options.Options `yaml:"options" validate:"dive"`
	// Script is run by the built-in shell interpreter.
	Script string `yaml:"script" validate:"required"`
}

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("yaml"), ",", 2)[0]
		if name == "" || name == "-" {
			return fld.Name
		}

		return name
	})

	_ = v.RegisterValidation("optionname", func(fl validator.FieldLevel) bool {
		return optionNameRe.MatchString(fl.Field().String())
	})
	_ = v.RegisterValidation("commandname", func(fl validator.FieldLevel) bool {
		return commandNameRe.MatchString(fl.Field().String())
	})

	return v
}

// Load decodes and validates a steps file. All problems found are reported together.
func Load(ctx context.Context, data []byte) ([]Definition, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, errors.Join(ErrDecode, err)
	}

	if err := f.Validate(); err != nil {
		return nil, err
	}

	ctxlog.Debug(ctx, "loaded steps", "commands", lo.Map(f.Commands, func(d Definition, _ int) string {
		return d.Name
	}))

	return f.Commands, nil
}

// Validate checks the file for missing fields, malformed names and duplicates.
func (f *File) Validate() error {
	var result *multierror.Error

	if err := validate.Struct(f); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return errors.Join(ErrInvalid, err)
		}

		for _, fe := range verrs {
			result = multierror.Append(result, fmt.Errorf("%s: failed %q validation", fe.Namespace(), fe.Tag()))
		}
	}

	for _, name := range lo.FindDuplicates(lo.Map(f.Commands, func(d Definition, _ int) string {
		return d.Name
	})) {
		result = multierror.Append(result, fmt.Errorf("command %q is defined more than once", name))
	}

	for _, d := range f.Commands {
		for _, name := range lo.FindDuplicates(d.Options.Names()) {
			result = multierror.Append(result, fmt.Errorf("command %q: option %q is defined more than once", d.Name, name))
		}

		for _, name := range d.Options.Names() {
			if slices.Contains(ReservedOptionNames, name) {
				result = multierror.Append(result, fmt.Errorf("command %q: option name %q is reserved", d.Name, name))
			}
		}
	}

	if err := result.ErrorOrNil(); err != nil {
		return errors.Join(ErrInvalid, err)
	}

	return nil
}
