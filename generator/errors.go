// SPDX-License-Identifier: MIT

package generator

import "errors"

var (
	// ErrNoConvergence indicates a fixpoint loop was still rewriting after its pass bound.
	ErrNoConvergence = errors.New("generator: rewrite passes did not converge")
	// ErrTooSmall indicates dimensions below a generator's minimum footprint.
	ErrTooSmall = errors.New("generator: dimensions too small")
)
