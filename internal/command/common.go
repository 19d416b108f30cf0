// Copyright (c) 2025 The greetbox authors.
// SPDX-License-Identifier: MIT

package command

import (
	"context"
	"os"
	"os/exec"

	"github.com/urfave/cli/v3"

	"github.com/greetbox/greetbox/internal/config"
	"github.com/greetbox/greetbox/internal/meta"
	"github.com/greetbox/greetbox/internal/term"
)

// ShortCircuitTLDR checks the --tldr flag and, if present and available,
// runs `tldr greetbox <subcmd>` and returns true so the caller can exit
// early.
func ShortCircuitTLDR(ctx context.Context, cmd *cli.Command, subcmd string) bool {
	if cmd.Bool("tldr") {
		if _, err := exec.LookPath("tldr"); err == nil {
			c := exec.CommandContext(ctx, "tldr", "greetbox", subcmd)
			c.Stdout = os.Stdout
			c.Stderr = os.Stderr
			_ = c.Run()
		}
		return true
	}
	return false
}

// GetMeta returns the meta.Meta stored in the command's Metadata. If missing
// or of an unexpected type, it returns the zero value.
func GetMeta(cmd *cli.Command) meta.Meta {
	if cmd == nil || cmd.Metadata == nil {
		return meta.Meta{}
	}
	if m, ok := cmd.Metadata["meta"].(meta.Meta); ok {
		return m
	}
	return meta.Meta{}
}

// ResolveDecorated decides whether output should be decorated. An explicit
// --color/--no-color flag wins, then a color key in the config file
// (namespaced first, per the loaded namespace); otherwise the decision is
// exactly "is stdout an interactive terminal". An unset environment never
// alters that default.
func ResolveDecorated(cmd *cli.Command) bool {
	if cmd.IsSet("color") {
		return cmd.Bool("color")
	}
	if v, err := config.GetBool("color"); err == nil {
		return v
	}
	return term.Detect().IsTTY
}
