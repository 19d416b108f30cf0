// Copyright © 2025 The greetbox authors.
// SPDX-License-Identifier: MIT
package command

import (
	"context"
	"os"
	"sort"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/greetbox/greetbox/internal/config"
	"github.com/greetbox/greetbox/internal/meta"
)

func InitApp(ctx context.Context, args []string) (*cli.Command, error) {

	sd, _ := os.Getwd()

	// The arg[1] immediately following the binary (arg[0]) is the greetbox
	// subcommand and also represents the namespace key to be used when
	// retrieving config values. arg[1] could be -h/--help or absent entirely
	// (the bare greeting), so ignore it if it appears to be a flag.
	var ns string
	if len(args) > 1 && !strings.HasPrefix(args[1], "-") {
		ns = args[1]
	}

	cfg, _ := config.Load(ns)
	m := meta.Meta{
		Args:        args,
		Config:      cfg,
		Context:     ctx,
		StartingDir: sd,
	}

	app := &cli.Command{
		Name:  "greetbox",
		Usage: "terminal-aware greeting",
		Metadata: map[string]any{
			"meta": m,
		},
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "version",
				Aliases:     []string{"v"},
				Usage:       "greetbox version info",
				HideDefault: true,
			},
			tldrFlag,
			NewColorFlag("greet"),
		},
		Action: GreetAction,
	}

	app.Commands = append(app.Commands,
		BoxCommandBuilder(app, m),
		CapsCommandBuilder(app, m),
		CompletionCommandBuilder(app, m),
	)

	// Make sure flags are sorted for the --help text.
	for _, cmd := range app.Commands {
		sort.Slice(cmd.Flags, func(i, j int) bool {
			return cmd.Flags[i].Names()[0] < cmd.Flags[j].Names()[0]
		})
	}

	return app, nil
}
