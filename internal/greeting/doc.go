// Copyright © 2025 The greetbox authors.
// SPDX-License-Identifier: MIT

// Package greeting renders the greeting in its two forms, decorated for
// interactive terminals and plain for pipes and redirects, plus a general
// box builder over the same glyph set. Rendering is pure; callers decide
// the form and perform the write.
package greeting
