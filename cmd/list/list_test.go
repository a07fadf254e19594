// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package list

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/matt-FFFFFF/devbox/internal/command"
	"github.com/matt-FFFFFF/devbox/internal/input"
	"github.com/matt-FFFFFF/devbox/internal/options"
	"github.com/matt-FFFFFF/devbox/internal/registry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type noopCommand struct {
	*command.Base
}

func (noopCommand) Run(context.Context, *input.Input, io.Writer) error {
	return nil
}

func testRegistry(t *testing.T) *registry.Registry {
	t.Helper()

	reg := registry.New()
	require.NoError(t, reg.Register(noopCommand{command.NewBase("magento:setup", "Install Magento", options.Options{
		{Name: "db-host", Description: "Database host", Default: "db"},
		{Name: "use-redis", Boolean: true},
		{Name: "ready", Virtual: true},
	})}))
	require.NoError(t, reg.Register(noopCommand{command.NewBase("magento:finalize", "", nil)}))

	return reg
}

func TestWrite(t *testing.T) {
	out := &bytes.Buffer{}
	require.NoError(t, Write(out, testRegistry(t).All()))

	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	require.Len(t, lines, 5)
	assert.Equal(t, "magento:setup     Install Magento", lines[0])
	assert.Equal(t, "    --db-host Database host [default: db]", lines[1])
	assert.Equal(t, "    --use-redis (boolean)", lines[2])
	assert.Equal(t, "    --ready (virtual)", lines[3])
	assert.Equal(t, "magento:finalize", lines[4])
}

func TestWrite_Empty(t *testing.T) {
	out := &bytes.Buffer{}
	require.NoError(t, Write(out, nil))
	assert.Empty(t, out.String())
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("closed")
}

func TestWrite_Error(t *testing.T) {
	err := Write(failingWriter{}, testRegistry(t).All())
	require.ErrorIs(t, err, ErrWrite)
}

func TestListCmd(t *testing.T) {
	reg := testRegistry(t)

	testCases := []struct {
		name    string
		args    []string
		want    []string
		notWant []string
		wantErr error
	}{
		{
			name: "all commands",
			args: []string{"devbox", "list"},
			want: []string{"magento:setup", "magento:finalize"},
		},
		{
			name:    "single command",
			args:    []string{"devbox", "list", "magento:finalize"},
			want:    []string{"magento:finalize"},
			notWant: []string{"magento:setup"},
		},
		{
			name:    "unknown command",
			args:    []string{"devbox", "list", "magento:nope"},
			wantErr: registry.ErrCommandNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			listCmd := New(reg)
			out := &bytes.Buffer{}
			listCmd.Writer = out
			listCmd.ErrWriter = io.Discard

			err := listCmd.Run(context.Background(), tc.args[1:])
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				return
			}

			require.NoError(t, err)

			for _, s := range tc.want {
				assert.Contains(t, out.String(), s)
			}

			for _, s := range tc.notWant {
				assert.NotContains(t, out.String(), s)
			}
		})
	}
}
