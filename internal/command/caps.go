// Copyright (c) 2025 The greetbox authors.
// SPDX-License-Identifier: MIT

package command

import (
	"context"
	"os"
	"strconv"

	"github.com/apex/log"
	"github.com/urfave/cli/v3"

	"github.com/greetbox/greetbox/internal/meta"
	"github.com/greetbox/greetbox/internal/output"
	"github.com/greetbox/greetbox/internal/term"
)

// CapsCommandBuilder constructs the caps subcommand, which reports what the
// greeting branch decision would see on the current stdout.
func CapsCommandBuilder(app *cli.Command, m meta.Meta) *cli.Command {
	return &cli.Command{
		Name:      "caps",
		Usage:     "report detected terminal capabilities",
		UsageText: "greetbox caps [options]",
		Metadata: map[string]any{
			"meta": m,
		},
		Flags: append([]cli.Flag{
			tldrFlag,
		}, NewGlobalFlags("caps")...),
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			return ctx, GlobalFlagsValidator(ctx, c)
		},
		Action: CapsAction,
	}
}

func CapsAction(ctx context.Context, cmd *cli.Command) error {
	if ShortCircuitTLDR(ctx, cmd, "caps") {
		return nil
	}

	info := term.Detect()
	log.Debugf("caps: %+v", info)

	rows := capsRows(info)
	output.TableWriter(rows, []string{"capability", "value"},
		cmd.Bool("color"), cmd.Bool("titles"), os.Stdout)
	return nil
}

func capsRows(info *term.Info) [][]string {
	return [][]string{
		{"stdout tty", strconv.FormatBool(info.IsTTY)},
		{"color suppressed", strconv.FormatBool(info.NoColor)},
		{"width", strconv.Itoa(info.Width)},
		{"height", strconv.Itoa(info.Height)},
	}
}
