// Copyright (c) 2025 The greetbox authors.
// SPDX-License-Identifier: MIT
// no-cloc

package output

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTableWriter(t *testing.T) {
	rows := [][]string{
		{"stdout tty", "true"},
		{"width", "120"},
	}

	var buf bytes.Buffer
	TableWriter(rows, []string{"capability", "value"}, false, false, &buf)

	out := buf.String()
	assert.Contains(t, out, "stdout tty")
	assert.Contains(t, out, "true")
	assert.Contains(t, out, "120")
	assert.NotContains(t, out, "capability", "headers are off without --titles")
}

func TestTableWriter_Titles(t *testing.T) {
	rows := [][]string{{"width", "80"}}

	var buf bytes.Buffer
	TableWriter(rows, []string{"capability", "value"}, false, true, &buf)

	out := buf.String()
	assert.Contains(t, out, "capability")
	assert.Contains(t, out, "value")
	assert.Contains(t, out, "width")
}

func TestTableWriter_EmptyRows(t *testing.T) {
	var buf bytes.Buffer
	TableWriter(nil, nil, false, false, &buf)
	assert.Empty(t, buf.String())
}

func TestGetColors_Defaults(t *testing.T) {
	// With no config file the defaults come back.
	t.Setenv("GREETBOX_CFG", "")
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("HOME", t.TempDir())

	header, even, odd := getColors("colors")
	assert.Equal(t, "#f6be00", header)
	assert.Equal(t, "#ffffff", even)
	assert.Equal(t, "#00c8f0", odd)
}

func TestTableWriter_AlignsColumns(t *testing.T) {
	rows := [][]string{
		{"a", "1"},
		{"longer", "2"},
	}

	var buf bytes.Buffer
	TableWriter(rows, nil, false, false, &buf)

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	assert.Len(t, lines, 2)
}
