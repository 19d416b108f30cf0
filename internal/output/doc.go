// Copyright © 2025 The greetbox authors.
// SPDX-License-Identifier: MIT

// Package output renders tabular command results, honoring color, title,
// and padding options from flags and the config file.
package output
