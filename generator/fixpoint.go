// SPDX-License-Identifier: MIT

package generator

import "fmt"

// Fixpoint repeats pass until it reports no rewrite.
// MAIN DESCRIPTION:
//   - The convergence loop over single-pass rewrites such as
//     rewrite.Engine.MatchReplaceShuffleAll.
//
// Behavior highlights:
//   - Returns the number of passes that rewrote something.
//   - maxPasses <= 0 means unbounded.
//   - When maxPasses passes all rewrote, the loop stops and ErrNoConvergence
//     is returned together with maxPasses.
//
// Complexity:
//   - maxPasses calls of pass at most.
func Fixpoint(pass func() bool, maxPasses int) (int, error) {
	n := 0
	for maxPasses <= 0 || n < maxPasses {
		if !pass() {
			return n, nil
		}
		n++
	}

	return n, fmt.Errorf("generator: Fixpoint after %d passes: %w", n, ErrNoConvergence)
}
