// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package registry

import (
	"context"
	"io"
	"testing"

	"github.com/matt-FFFFFF/devbox/internal/command"
	"github.com/matt-FFFFFF/devbox/internal/input"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCommand struct {
	*command.Base
}

func (f *fakeCommand) Run(_ context.Context, _ *input.Input, _ io.Writer) error {
	return nil
}

func newFake(name, description string) *fakeCommand {
	return &fakeCommand{Base: command.NewBase(name, description, nil)}
}

func TestRegistryGet(t *testing.T) {
	r := New()
	require.NoError(t, r.Register(newFake("magento:setup", "")))

	cmd, err := r.Get("magento:setup")
	require.NoError(t, err)
	assert.Equal(t, "magento:setup", cmd.Name())

	_, err = r.Get("magento:download")
	require.ErrorIs(t, err, ErrCommandNotFound)
	assert.Contains(t, err.Error(), "magento:download")
}

func TestRegistryOrder(t *testing.T) {
	r := New()
	require.NoError(t, r.Register(newFake("b", "")))
	require.NoError(t, r.Register(newFake("a", "")))
	require.NoError(t, r.Register(newFake("c", "")))

	names := make([]string, 0, 3)
	for _, c := range r.All() {
		names = append(names, c.Name())
	}

	assert.Equal(t, []string{"b", "a", "c"}, names, "All keeps registration order")
	assert.Equal(t, []string{"a", "b", "c"}, r.Names(), "Names is sorted")
}

func TestRegistryReplace(t *testing.T) {
	r := New()
	require.NoError(t, r.Register(newFake("a", "first")))
	require.NoError(t, r.Register(newFake("b", "")))
	require.NoError(t, r.Register(newFake("a", "second")))

	all := r.All()
	require.Len(t, all, 2)
	assert.Equal(t, "a", all[0].Name())
	assert.Equal(t, "second", all[0].Description())
}

func TestRegistryInvalid(t *testing.T) {
	r := New()

	require.ErrorIs(t, r.Register(nil), ErrInvalidCommand)
	require.ErrorIs(t, r.Register(newFake("", "")), ErrInvalidCommand)
	assert.Empty(t, r.All())
}

func TestRegistryAllIsACopy(t *testing.T) {
	r := New()
	require.NoError(t, r.Register(newFake("a", "")))

	all := r.All()
	all[0] = newFake("z", "")

	cmd, err := r.Get("a")
	require.NoError(t, err)
	assert.Equal(t, "a", cmd.Name())
}
