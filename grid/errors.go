// SPDX-License-Identifier: MIT

// Package grid: sentinel error set.
// Callers MUST branch with errors.Is; messages are prefixed "grid: ...".
// "No match" is never an error in this package: searches report it with ok=false.

package grid

import "errors"

var (
	// ErrInvalidDimensions indicates that a requested width or height is non-positive.
	ErrInvalidDimensions = errors.New("grid: dimensions must be > 0")

	// ErrEmptyGrid indicates FromRows received no rows or an empty first row.
	ErrEmptyGrid = errors.New("grid: input must have at least one row and one column")

	// ErrNonRectangular indicates FromRows received rows of differing lengths.
	ErrNonRectangular = errors.New("grid: all rows must have the same length")

	// ErrInvalidRotation indicates a rotation degree that is not a multiple of 90.
	ErrInvalidRotation = errors.New("grid: rotation must be a multiple of 90 degrees")

	// ErrReentrantWalk is the panic value raised when a Shuffler is asked to start
	// a walk while another walk on the same Shuffler is still running.
	ErrReentrantWalk = errors.New("grid: nested walk on a busy shuffler")
)
