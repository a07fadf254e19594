// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package steps_test

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/matt-FFFFFF/devbox/internal/input"
	"github.com/matt-FFFFFF/devbox/internal/registry"
	"github.com/matt-FFFFFF/devbox/internal/steps"
	"github.com/matt-FFFFFF/devbox/internal/wrapper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultDefinesInstallSequence(t *testing.T) {
	defs, err := steps.Default(context.Background())
	require.NoError(t, err)

	names := make([]string, 0, len(defs))
	for _, def := range defs {
		names = append(names, def.Name)
	}

	assert.Equal(t, wrapper.InstallSequence, names)
}

func TestDefaultInstallOptions(t *testing.T) {
	defs, err := steps.Default(context.Background())
	require.NoError(t, err)

	reg := registry.New()
	require.NoError(t, steps.Register(reg, defs))

	install := wrapper.NewInstall(reg)
	opts := install.OptionsConfig()

	for _, name := range []string{"magento-path", "db-host", "use-redis", "use-varnish", "es-host", "static-deploy"} {
		opt, ok := opts.Lookup(name)
		assert.True(t, ok, name)
		assert.False(t, opt.Initial, name)
	}

	ready, ok := opts.Lookup("sources-ready")
	require.True(t, ok)
	assert.True(t, ready.Virtual)
}

func TestScriptValuesFlowThroughInstall(t *testing.T) {
	const data = `
commands:
  - name: app:prepare
    options:
      - name: token
      - name: verbose
        boolean: true
      - name: prepared
        virtual: true
    script: |
      devbox-set token "generated-$DEVBOX_OPT_VERBOSE"
      devbox-set prepared y
  - name: app:deploy
    options:
      - name: token
        default: none
      - name: verbose
        boolean: true
      - name: prepared
        virtual: true
    script: |
      echo "token=$DEVBOX_OPT_TOKEN verbose=$DEVBOX_OPT_VERBOSE prepared=${DEVBOX_OPT_PREPARED:-unset}"
`

	defs, err := steps.Load(context.Background(), []byte(data))
	require.NoError(t, err)

	reg := registry.New()
	require.NoError(t, steps.Register(reg, defs))

	for _, cmd := range reg.All() {
		cmd.(*steps.Script).SetStdin(strings.NewReader(""))
	}

	install := wrapper.NewSequence(reg, []string{"app:prepare", "app:deploy"})
	require.NoError(t, reg.Register(install))

	out := &bytes.Buffer{}
	in := input.New(map[string]string{"token": "from-cli", "verbose": "true"})

	require.NoError(t, install.Run(context.Background(), in, out))

	assert.Contains(t, out.String(), "[1/2] app:prepare")
	assert.Contains(t, out.String(), "[2/2] app:deploy")
	assert.Contains(t, out.String(), "token=generated-y verbose=y prepared=unset\n")
}

func TestInstallStopsOnScriptFailure(t *testing.T) {
	const data = `
commands:
  - name: app:fail
    script: exit 5
  - name: app:never
    script: echo never
`

	defs, err := steps.Load(context.Background(), []byte(data))
	require.NoError(t, err)

	reg := registry.New()
	require.NoError(t, steps.Register(reg, defs))

	install := wrapper.NewSequence(reg, []string{"app:fail", "app:never"})

	out := &bytes.Buffer{}
	err = install.Run(context.Background(), input.New(nil), out)

	var scriptErr *steps.ScriptError
	require.ErrorAs(t, err, &scriptErr)
	assert.Equal(t, 5, scriptErr.ExitCode)
	assert.NotContains(t, out.String(), "never")
}
