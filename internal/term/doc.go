// Copyright © 2025 The greetbox authors.
// SPDX-License-Identifier: MIT

// Package term detects whether stdout is an interactive terminal and, when
// it is, reports its dimensions and color suppression signals.
package term
