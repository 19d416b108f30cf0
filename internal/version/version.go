// Copyright © 2025 The greetbox authors.
// SPDX-License-Identifier: MIT

package version

// Version is overridden at build time via -ldflags.
var Version = "dev"
