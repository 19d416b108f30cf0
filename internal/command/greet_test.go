// Copyright (c) 2025 The greetbox authors.
// SPDX-License-Identifier: MIT
// no-cloc

package command

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v3"

	"github.com/greetbox/greetbox/internal/config"
)

const decoratedGreeting = "\x1b[1;36m┌─────────────────┐\x1b[0m\n" +
	"\x1b[1;36m│\x1b[0m  Hello World!   \x1b[1;36m│\x1b[0m\n" +
	"\x1b[1;36m└─────────────────┘\x1b[0m\n"

func TestEmitGreeting_Decorated(t *testing.T) {
	var buf bytes.Buffer
	err := emitGreeting(&buf, true)
	require.NoError(t, err)
	assert.Equal(t, decoratedGreeting, buf.String())
}

func TestEmitGreeting_Plain(t *testing.T) {
	var buf bytes.Buffer
	err := emitGreeting(&buf, false)
	require.NoError(t, err)
	assert.Equal(t, "Hello World\n", buf.String())
	assert.NotContains(t, buf.String(), "\x1b")
}

type failWriter struct{}

func (failWriter) Write(p []byte) (int, error) {
	return 0, assert.AnError
}

func TestEmitGreeting_WriteError(t *testing.T) {
	err := emitGreeting(failWriter{}, false)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to write greeting")
}

// runApp runs the full app with stdout swapped for a pipe (so terminal
// detection sees a non-tty) and returns what was written. The config
// environment is isolated so a developer's greetbox.yaml cannot leak in.
func runApp(t *testing.T, args ...string) string {
	t.Helper()

	t.Setenv("GREETBOX_CFG", "")
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("APPDATA", t.TempDir())
	t.Setenv("HOME", t.TempDir())
	config.Config = config.Type{}
	t.Cleanup(func() { config.Config = config.Type{} })

	r, w, err := os.Pipe()
	require.NoError(t, err)
	orig := os.Stdout
	os.Stdout = w
	defer func() { os.Stdout = orig }()

	app, err := InitApp(context.Background(), args)
	require.NoError(t, err)
	require.NoError(t, app.Run(context.Background(), args))

	require.NoError(t, w.Close())
	os.Stdout = orig

	out, err := io.ReadAll(r)
	require.NoError(t, err)
	require.NoError(t, r.Close())
	return string(out)
}

func TestRun_DefaultIsPlainOffTerminal(t *testing.T) {
	out := runApp(t, "greetbox")
	assert.Equal(t, "Hello World\n", out)
	assert.NotContains(t, out, "\x1b")
}

func TestRun_ColorFlagForcesDecorated(t *testing.T) {
	out := runApp(t, "greetbox", "--color")
	assert.Equal(t, decoratedGreeting, out)
}

func TestRun_NoColorFlagForcesPlain(t *testing.T) {
	out := runApp(t, "greetbox", "--no-color")
	assert.Equal(t, "Hello World\n", out)
}

func TestRun_ConfigColorKeyForcesDecorated(t *testing.T) {
	cfgPath, err := filepath.Abs(filepath.Join("testdata", "color.yaml"))
	require.NoError(t, err)

	out := runApp(t, "greetbox")
	assert.Equal(t, "Hello World\n", out, "sanity: no config, pipe stays plain")

	t.Setenv("GREETBOX_CFG", cfgPath)
	config.Config = config.Type{}
	out = runAppKeepEnv(t, "greetbox")
	assert.Equal(t, decoratedGreeting, out)
}

// runAppKeepEnv is runApp without the config isolation, for tests that set
// up their own GREETBOX_CFG.
func runAppKeepEnv(t *testing.T, args ...string) string {
	t.Helper()

	r, w, err := os.Pipe()
	require.NoError(t, err)
	orig := os.Stdout
	os.Stdout = w
	defer func() { os.Stdout = orig }()

	app, err := InitApp(context.Background(), args)
	require.NoError(t, err)
	require.NoError(t, app.Run(context.Background(), args))

	require.NoError(t, w.Close())
	os.Stdout = orig

	out, err := io.ReadAll(r)
	require.NoError(t, err)
	require.NoError(t, r.Close())
	return string(out)
}

func TestInitApp(t *testing.T) {
	app, err := InitApp(context.Background(), []string{"greetbox"})
	require.NoError(t, err)

	assert.Equal(t, "greetbox", app.Name)
	assert.NotNil(t, app.Action, "bare invocation must greet")

	var names []string
	for _, c := range app.Commands {
		names = append(names, c.Name)
	}
	assert.Contains(t, names, "box")
	assert.Contains(t, names, "caps")
	assert.Contains(t, names, "completion")
}

func TestInitApp_RootFlagsStayLean(t *testing.T) {
	app, err := InitApp(context.Background(), []string{"greetbox"})
	require.NoError(t, err)

	flagNames := func(flags []cli.Flag) (names []string) {
		for _, f := range flags {
			names = append(names, f.Names()[0])
		}
		return
	}

	root := flagNames(app.Flags)
	assert.Contains(t, root, "color")
	assert.NotContains(t, root, "titles", "the root command renders no tables")

	for _, c := range app.Commands {
		if c.Name == "box" || c.Name == "caps" {
			assert.Contains(t, flagNames(c.Flags), "titles", c.Name)
		}
	}
}
