// Copyright (c) 2025 The greetbox authors.
// SPDX-License-Identifier: MIT
// no-cloc

package command

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/greetbox/greetbox/internal/term"
)

func TestCapsRows(t *testing.T) {
	info := &term.Info{
		IsTTY:   true,
		NoColor: false,
		Width:   132,
		Height:  43,
	}

	rows := capsRows(info)
	assert.Equal(t, [][]string{
		{"stdout tty", "true"},
		{"color suppressed", "false"},
		{"width", "132"},
		{"height", "43"},
	}, rows)
}
