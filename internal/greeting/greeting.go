// Copyright © 2025 The greetbox authors.
// SPDX-License-Identifier: MIT

package greeting

import (
	"strings"

	"github.com/charmbracelet/lipgloss/v2"
)

// ANSI escapes used for the decorated form.
const (
	escBrightCyan = "\x1b[1;36m"
	escReset      = "\x1b[0m"
)

// Box drawing glyphs (U+2500 block).
const (
	cornerTopLeft     = "┌"
	cornerTopRight    = "┐"
	cornerBottomLeft  = "└"
	cornerBottomRight = "┘"
	horizontal        = "─"
	vertical          = "│"
)

// Style is a glyph set for Box borders.
type Style struct {
	TopLeft     string
	TopRight    string
	BottomLeft  string
	BottomRight string
	Horizontal  string
	Vertical    string
}

var (
	// Sharp is the glyph set of the decorated greeting.
	Sharp = Style{
		TopLeft:     cornerTopLeft,
		TopRight:    cornerTopRight,
		BottomLeft:  cornerBottomLeft,
		BottomRight: cornerBottomRight,
		Horizontal:  horizontal,
		Vertical:    vertical,
	}

	// Round swaps the corners for their arc variants (U+256D..U+2570).
	Round = Style{
		TopLeft:     "╭",
		TopRight:    "╮",
		BottomLeft:  "╰",
		BottomRight: "╯",
		Horizontal:  horizontal,
		Vertical:    vertical,
	}
)

const (
	decoratedText = "Hello World!"
	plainText     = "Hello World"

	// Horizontal glyphs per border row of the decorated greeting.
	borderWidth = 17
)

// Render returns the greeting bytes for the given form. It is a pure
// function of the boolean: same input, same bytes, every time.
//
// The decorated content row pads the text with two spaces before and three
// after. That uneven padding is long-standing output, not a rendering
// error, and is preserved.
func Render(decorated bool) []byte {
	if !decorated {
		return []byte(plainText + "\n")
	}

	border := strings.Repeat(horizontal, borderWidth)

	var b strings.Builder
	b.WriteString(escBrightCyan + cornerTopLeft + border + cornerTopRight + escReset + "\n")
	b.WriteString(escBrightCyan + vertical + escReset)
	b.WriteString("  " + decoratedText + "   ")
	b.WriteString(escBrightCyan + vertical + escReset + "\n")
	b.WriteString(escBrightCyan + cornerBottomLeft + border + cornerBottomRight + escReset + "\n")
	return []byte(b.String())
}

// Box wraps arbitrary text lines in the greeting's glyph set with symmetric
// single-space padding. Widths are display cells, not bytes, so wide runes
// line up. When color is true the borders get the same bright-cyan wrap as
// the decorated greeting; the text itself is never styled.
func Box(lines []string, color bool) []byte {
	return BoxStyled(lines, color, Sharp)
}

// BoxStyled is Box with a caller-chosen glyph set.
func BoxStyled(lines []string, color bool, style Style) []byte {
	width := 0
	for _, ln := range lines {
		if w := lipgloss.Width(ln); w > width {
			width = w
		}
	}

	wrap := func(s string) string {
		if color {
			return escBrightCyan + s + escReset
		}
		return s
	}

	border := strings.Repeat(style.Horizontal, width+2)

	var b strings.Builder
	b.WriteString(wrap(style.TopLeft+border+style.TopRight) + "\n")
	for _, ln := range lines {
		fill := strings.Repeat(" ", width-lipgloss.Width(ln))
		b.WriteString(wrap(style.Vertical) + " " + ln + fill + " " + wrap(style.Vertical) + "\n")
	}
	b.WriteString(wrap(style.BottomLeft+border+style.BottomRight) + "\n")
	return []byte(b.String())
}
