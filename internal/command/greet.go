// Copyright (c) 2025 The greetbox authors.
// SPDX-License-Identifier: MIT

package command

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/apex/log"
	"github.com/urfave/cli/v3"

	"github.com/greetbox/greetbox/internal/greeting"
)

// GreetAction is the root action: emit the greeting, decorated when stdout
// is an interactive terminal (or the decision is overridden), plain
// otherwise. The two outputs are fixed byte sequences.
func GreetAction(ctx context.Context, cmd *cli.Command) error {
	m := GetMeta(cmd)
	log.Debugf("Executing root action for %v", m.Args)

	if ShortCircuitTLDR(ctx, cmd, "greet") {
		return nil
	}

	return emitGreeting(os.Stdout, ResolveDecorated(cmd))
}

func emitGreeting(w io.Writer, decorated bool) error {
	if _, err := w.Write(greeting.Render(decorated)); err != nil {
		return fmt.Errorf("failed to write greeting: %w", err)
	}
	return nil
}
