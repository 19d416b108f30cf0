// Copyright © 2025 The greetbox authors.
// SPDX-License-Identifier: MIT

// greetbox is the main package for the greetbox command line tool. It wires
// the CLI, delegates to internal packages, and serves as the entry point.
package main
