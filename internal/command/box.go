// Copyright (c) 2025 The greetbox authors.
// SPDX-License-Identifier: MIT

package command

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/apex/log"
	"github.com/urfave/cli/v3"

	"github.com/greetbox/greetbox/internal/greeting"
	"github.com/greetbox/greetbox/internal/meta"
)

// BoxCommandBuilder constructs the box subcommand, which draws the greeting
// border around arbitrary text from args or stdin.
func BoxCommandBuilder(app *cli.Command, m meta.Meta) *cli.Command {
	return &cli.Command{
		Name:      "box",
		Usage:     "draw a border box around text",
		UsageText: "greetbox box [options] [text ...]",
		Metadata: map[string]any{
			"meta": m,
		},
		Flags: append([]cli.Flag{
			tldrFlag,
			NewStyleFlag("box"),
		}, NewGlobalFlags("box")...),
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			return ctx, GlobalFlagsValidator(ctx, c)
		},
		Action: BoxAction,
	}
}

func BoxAction(ctx context.Context, cmd *cli.Command) error {
	if ShortCircuitTLDR(ctx, cmd, "box") {
		return nil
	}

	lines, err := boxLines(cmd.Args().Slice(), os.Stdin)
	if err != nil {
		return err
	}
	log.Debugf("boxing %d line(s)", len(lines))

	style := greeting.Sharp
	if cmd.String("style") == "round" {
		style = greeting.Round
	}

	return emitBox(os.Stdout, lines, ResolveDecorated(cmd), style)
}

// boxLines resolves the text to box: args joined into a single line, or
// stdin split into lines when no args were given.
func boxLines(args []string, in io.Reader) ([]string, error) {
	if len(args) > 0 {
		return []string{strings.Join(args, " ")}, nil
	}

	var lines []string
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read stdin: %w", err)
	}
	return lines, nil
}

func emitBox(w io.Writer, lines []string, color bool, style greeting.Style) error {
	if _, err := w.Write(greeting.BoxStyled(lines, color, style)); err != nil {
		return fmt.Errorf("failed to write box: %w", err)
	}
	return nil
}
