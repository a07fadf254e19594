// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package prompt asks the user for option values on the terminal.
package prompt

import (
	"errors"
	"fmt"
	"strings"

	"github.com/peterh/liner"
)

// ErrAborted is returned when the user aborts a prompt with Ctrl+C.
var ErrAborted = errors.New("prompt aborted")

// Prompter asks the user questions.
type Prompter interface {
	// Ask asks for a free text answer. An empty answer returns def.
	Ask(question, def string) (string, error)
	// Confirm asks a yes/no question. An empty answer returns def.
	Confirm(question string, def bool) (bool, error)
}

// Factory returns the prompter used by commands. Tests replace it with a stub.
var Factory = func() Prompter {
	return &Liner{}
}

var _ Prompter = (*Liner)(nil)

// Liner is a Prompter backed by a line editor on the controlling terminal.
// The terminal is only put into raw mode for the duration of a single prompt.
type Liner struct{}

// Ask implements Prompter.
func (l *Liner) Ask(question, def string) (string, error) {
	text := question
	if def != "" {
		text = fmt.Sprintf("%s [%s]", question, def)
	}

	answer, err := l.prompt(text)
	if err != nil {
		return "", err
	}

	if answer == "" {
		return def, nil
	}

	return answer, nil
}

// Confirm implements Prompter. It keeps asking until the answer is recognised.
func (l *Liner) Confirm(question string, def bool) (bool, error) {
	hint := "y/N"
	if def {
		hint = "Y/n"
	}

	for {
		answer, err := l.prompt(fmt.Sprintf("%s [%s]", question, hint))
		if err != nil {
			return false, err
		}

		if b, ok := ParseConfirm(answer, def); ok {
			return b, nil
		}
	}
}

func (l *Liner) prompt(text string) (string, error) {
	line := liner.NewLiner()

	defer func() {
		_ = line.Close()
	}()

	line.SetCtrlCAborts(true)

	answer, err := line.Prompt(text + " ")
	if errors.Is(err, liner.ErrPromptAborted) {
		return "", ErrAborted
	}

	if err != nil {
		return "", fmt.Errorf("reading answer: %w", err)
	}

	return strings.TrimSpace(answer), nil
}

// ParseConfirm interprets a yes/no answer. The boolean result is false when the answer is not recognised.
func ParseConfirm(answer string, def bool) (bool, bool) {
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "":
		return def, true
	case "y", "yes":
		return true, true
	case "n", "no":
		return false, true
	default:
		return false, false
	}
}
