// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/tilegrid/grid"
	"github.com/katalvlaran/tilegrid/render"
)

// newVariantsCmd prints the deduplicated rotation/reflection orbit of a small pattern.
func newVariantsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "variants ROW...",
		Short: "Print the distinct rotations and reflections of a pattern",
		Long: "Each argument is one pattern row; every row must have the same length.\n" +
			"Cells are compared as characters, e.g. gridgen variants '##' '#.'",
		Args: cobra.MinimumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			rows := make([][]rune, len(args))
			for i, s := range args {
				rows[i] = []rune(s)
			}
			p, err := grid.FromRows(rows)
			if err != nil {
				a.log.Error("bad pattern", "rows", args, "error", err)
				return fmt.Errorf("pattern: %w", err)
			}

			vs := grid.Variants(p, grid.Comparable[rune]())
			a.log.Info("variants", "count", len(vs))
			for i, v := range vs {
				w, h := v.Size()
				fmt.Fprintf(a.stdout, "# %d (%dx%d)\n", i, w, h)
				if err := render.Write(a.stdout, render.ModeNever, v, plainGlyph); err != nil {
					return err
				}
			}

			return nil
		},
	}
}
