// Copyright © 2025 The greetbox authors.
// SPDX-License-Identifier: MIT

package meta

import (
	"context"

	"github.com/greetbox/greetbox/internal/config"
)

// Meta are the meta-options that are available on all or most commands.
type Meta struct {
	Args        []string
	Config      config.Type
	Context     context.Context
	StartingDir string
}
