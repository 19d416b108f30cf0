// Copyright © 2025 The greetbox authors.
// SPDX-License-Identifier: MIT

// Package command defines the CLI command set for greetbox. It wires flags,
// validators, actions, and shell completion for subcommands.
package command
