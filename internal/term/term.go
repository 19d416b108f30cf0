// Copyright © 2025 The greetbox authors.
// SPDX-License-Identifier: MIT

package term

import (
	"os"

	"github.com/mattn/go-isatty"
	"golang.org/x/term"
)

// Info holds terminal capability information for a single output stream.
type Info struct {
	IsTTY   bool
	NoColor bool
	Width   int
	Height  int
}

// Detect returns terminal information for the process's stdout.
func Detect() *Info {
	return DetectFile(os.Stdout)
}

// DetectFile returns terminal information for an arbitrary *os.File. Width
// and height fall back to 80x24 when the size cannot be queried.
func DetectFile(f *os.File) *Info {
	fd := f.Fd()
	isTTY := isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)

	width, height := 80, 24

	if isTTY {
		if w, h, err := term.GetSize(int(fd)); err == nil {
			width, height = w, h
		}
	}

	// NO_COLOR (https://no-color.org/) and TERM=dumb both suppress color,
	// but neither changes whether the stream is a terminal. An empty
	// NO_COLOR does not count, per the convention.
	noColor := os.Getenv("NO_COLOR") != ""
	if os.Getenv("TERM") == "dumb" {
		noColor = true
	}

	return &Info{
		IsTTY:   isTTY,
		NoColor: noColor,
		Width:   width,
		Height:  height,
	}
}
