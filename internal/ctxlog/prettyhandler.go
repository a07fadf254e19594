// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package ctxlog

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"

	"github.com/TylerBrock/colorjson"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

var (
	// ErrMarshalAttribute is returned when an error occurs while marshaling an attribute.
	ErrMarshalAttribute = errors.New("error when marshaling attribute")
	// ErrIoWrite is returned when an error occurs while writing to the output.
	ErrIoWrite = errors.New("error when writing to output")
)

const (
	// TimeFormat is the format used for timestamps in log messages.
	TimeFormat = "[15:04:05.000]"
)

var (
	timeStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	msgStyle   = lipgloss.NewStyle().Bold(true)
	debugStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("7"))
	infoStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	warnStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	fatalStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("13"))
)

// PrettyHandler is a slog handler that formats log messages for a human reading the console.
// Attributes are rendered as indented JSON.
type PrettyHandler struct {
	h                slog.Handler
	r                func([]string, slog.Attr) slog.Attr
	b                *bytes.Buffer
	m                *sync.Mutex
	writer           io.Writer
	colour           bool
	outputEmptyAttrs bool
}

// NewPrettyHandler creates a new PrettyHandler with the given options.
// Output goes to stderr unless WithDestinationWriter is given.
func NewPrettyHandler(handlerOptions *slog.HandlerOptions, options ...Option) *PrettyHandler {
	if handlerOptions == nil {
		handlerOptions = &slog.HandlerOptions{}
	}

	buf := &bytes.Buffer{}
	handler := &PrettyHandler{
		b: buf,
		h: slog.NewJSONHandler(buf, &slog.HandlerOptions{
			Level:       handlerOptions.Level,
			AddSource:   handlerOptions.AddSource,
			ReplaceAttr: suppressDefaults(handlerOptions.ReplaceAttr),
		}),
		r:      handlerOptions.ReplaceAttr,
		m:      &sync.Mutex{},
		writer: os.Stderr,
	}

	for _, opt := range options {
		opt(handler)
	}

	return handler
}

// Option implements a functional options pattern for PrettyHandler.
type Option func(h *PrettyHandler)

// WithDestinationWriter sets the destination writer for the PrettyHandler.
func WithDestinationWriter(writer io.Writer) Option {
	return func(h *PrettyHandler) {
		h.writer = writer
	}
}

// WithColour enables colour output for the PrettyHandler.
func WithColour() Option {
	return func(h *PrettyHandler) {
		h.colour = true
	}
}

// WithAutoColour enables colour output when stderr is a terminal and NO_COLOR is not set.
func WithAutoColour() Option {
	return func(h *PrettyHandler) {
		_, noColour := os.LookupEnv("NO_COLOR")
		h.colour = !noColour && term.IsTerminal(int(os.Stderr.Fd()))
	}
}

// WithOutputEmptyAttrs enables output of empty attributes for the PrettyHandler.
func WithOutputEmptyAttrs() Option {
	return func(h *PrettyHandler) {
		h.outputEmptyAttrs = true
	}
}

// Enabled checks if the handler is enabled for the given level.
func (h *PrettyHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.h.Enabled(ctx, level)
}

// WithAttrs creates a new handler with the given attributes.
func (h *PrettyHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	c := *h
	c.h = h.h.WithAttrs(attrs)

	return &c
}

// WithGroup creates a new handler with the given group name.
func (h *PrettyHandler) WithGroup(name string) slog.Handler {
	c := *h
	c.h = h.h.WithGroup(name)

	return &c
}

// Handle implements the slog.Handler interface for PrettyHandler.
func (h *PrettyHandler) Handle(ctx context.Context, r slog.Record) error {
	var level string

	levelAttr := h.replace(slog.Attr{
		Key:   slog.LevelKey,
		Value: slog.AnyValue(r.Level),
	})

	if !levelAttr.Equal(slog.Attr{}) {
		level = h.style(levelStyle(r.Level), levelAttr.Value.String()+":")
	}

	var timestamp string

	timeAttr := h.replace(slog.Attr{
		Key:   slog.TimeKey,
		Value: slog.StringValue(r.Time.Format(TimeFormat)),
	})

	if !timeAttr.Equal(slog.Attr{}) {
		timestamp = h.style(timeStyle, timeAttr.Value.String())
	}

	var msg string

	msgAttr := h.replace(slog.Attr{
		Key:   slog.MessageKey,
		Value: slog.StringValue(r.Message),
	})

	if !msgAttr.Equal(slog.Attr{}) {
		msg = h.style(msgStyle, msgAttr.Value.String())
	}

	attrs, err := h.computeAttrs(ctx, r)
	if err != nil {
		return err
	}

	var attrsAsBytes []byte

	if h.outputEmptyAttrs || len(attrs) > 0 {
		f := colorjson.NewFormatter()
		f.Indent = 2
		f.DisabledColor = !h.colour

		attrsAsBytes, err = f.Marshal(attrs)
		if err != nil {
			return errors.Join(ErrMarshalAttribute, err)
		}
	}

	parts := make([]string, 0, 4)

	for _, p := range []string{timestamp, level, msg, string(attrsAsBytes)} {
		if p != "" {
			parts = append(parts, p)
		}
	}

	if _, err := io.WriteString(h.writer, strings.Join(parts, " ")+"\n"); err != nil {
		return errors.Join(ErrIoWrite, err)
	}

	return nil
}

func (h *PrettyHandler) replace(a slog.Attr) slog.Attr {
	if h.r == nil {
		return a
	}

	return h.r([]string{}, a)
}

func (h *PrettyHandler) style(s lipgloss.Style, text string) string {
	if !h.colour {
		return text
	}

	return s.Render(text)
}

func (h *PrettyHandler) computeAttrs(
	ctx context.Context,
	r slog.Record,
) (map[string]any, error) {
	h.m.Lock()
	defer func() {
		h.b.Reset()
		h.m.Unlock()
	}()

	if err := h.h.Handle(ctx, r); err != nil {
		return nil, fmt.Errorf("error when calling inner handler's Handle: %w", err)
	}

	var attrs map[string]any

	err := json.Unmarshal(h.b.Bytes(), &attrs)
	if err != nil {
		return nil, fmt.Errorf("error when unmarshaling inner handler's Handle result: %w", err)
	}

	return attrs, nil
}

func levelStyle(l slog.Level) lipgloss.Style {
	switch {
	case l <= slog.LevelDebug:
		return debugStyle
	case l <= slog.LevelInfo:
		return infoStyle
	case l < slog.LevelError:
		return warnStyle
	case l <= slog.LevelError+1:
		return errorStyle
	default:
		return fatalStyle
	}
}

func suppressDefaults(next func([]string, slog.Attr) slog.Attr,
) func([]string, slog.Attr) slog.Attr {
	return func(groups []string, a slog.Attr) slog.Attr {
		if a.Key == slog.TimeKey ||
			a.Key == slog.LevelKey ||
			a.Key == slog.MessageKey {
			return slog.Attr{}
		}

		if next == nil {
			return a
		}

		return next(groups, a)
	}
}
