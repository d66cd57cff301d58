// SPDX-License-Identifier: MIT

package main

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/tilegrid/generator"
	"github.com/katalvlaran/tilegrid/grid"
	"github.com/katalvlaran/tilegrid/render"
)

// genFunc is the common generator signature.
type genFunc func(w, h int, opts ...generator.Option) (*grid.Grid[generator.Tile], error)

// generateCmds returns one subcommand per generator.
func generateCmds(a *app) []*cobra.Command {
	gens := []struct {
		name, short string
		gen         genFunc
	}{
		{"tilemap", "Noise terrain with shores, scattered features and connecting roads", generator.TileMap},
		{"walls", "Straight walls grown inward from the border", generator.Walls},
		{"building", "A walled room with chamfered corners and doors", generator.Building},
		{"rock", "A rock blob grown by weighted random rewrites", generator.RockFormation},
	}
	cmds := make([]*cobra.Command, 0, len(gens))
	for _, s := range gens {
		cmds = append(cmds, &cobra.Command{
			Use:   s.name,
			Short: s.short,
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return a.generate(s.name, s.gen)
			},
		})
	}

	return cmds
}

// generate runs gen with the resolved configuration and prints the map.
func (a *app) generate(name string, gen genFunc) error {
	g, err := gen(a.cfg.Width, a.cfg.Height, a.cfg.Options()...)
	if err != nil {
		a.log.Error("generation failed", "kind", name, "error", err)
		return err
	}
	if err := render.Write(a.stdout, a.mode, g, tileGlyph); err != nil {
		a.log.Error("write failed", "kind", name, "error", err)
		return err
	}
	a.log.Info("generated", "kind", name, "width", a.cfg.Width, "height", a.cfg.Height, "seed", a.cfg.Seed)
	for _, t := range generator.Tiles {
		if n := grid.Count(grid.Sequential, g, func(v generator.Tile, _, _ int) bool { return v == t }); n > 0 {
			a.log.Debug("tile count", "tile", t.String(), "cells", n)
		}
	}

	return nil
}
