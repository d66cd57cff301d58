// SPDX-License-Identifier: MIT

// Package rewrite: sentinel error set.
// Absence of a match is reported with booleans, never with an error.

package rewrite

import "errors"

var (
	// ErrReentrant is the panic value raised when an Engine is entered while
	// another call on the same Engine is still running (e.g. from inside a rule).
	ErrReentrant = errors.New("rewrite: nested call on a busy engine")

	// ErrEmptyPattern indicates a pattern without rows or columns.
	ErrEmptyPattern = errors.New("rewrite: pattern must have at least one cell")

	// ErrNilRule indicates a pattern cell holding a nil rule.
	ErrNilRule = errors.New("rewrite: pattern cell has a nil rule")
)
