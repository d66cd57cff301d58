// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/tilegrid/internal/config"
	"github.com/katalvlaran/tilegrid/internal/logging"
	"github.com/katalvlaran/tilegrid/render"
)

// app is the state shared by every subcommand after flag parsing.
type app struct {
	stdout io.Writer
	stderr io.Writer

	configPath string
	flags      config.Config // flag values; applied only when the flag was set

	cfg  config.Config
	mode render.Mode
	log  *logging.Logger
}

// newRootCmd builds the command tree writing maps to stdout and logs to stderr.
func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	a := &app{stdout: stdout, stderr: stderr}
	def := config.Default()

	root := &cobra.Command{
		Use:           "gridgen",
		Short:         "Generate tile maps with pattern rewrite rules",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.load(cmd)
		},
	}
	root.SetOut(stdout)
	root.SetErr(stderr)

	pf := root.PersistentFlags()
	pf.StringVar(&a.configPath, "config", "", "YAML config file")
	pf.Int64Var(&a.flags.Seed, "seed", def.Seed, "random seed")
	pf.IntVar(&a.flags.Width, "width", def.Width, "map width in cells")
	pf.IntVar(&a.flags.Height, "height", def.Height, "map height in cells")
	pf.Float64Var(&a.flags.Density, "density", def.Density, "scatter / stub / door density in [0,1]")
	pf.IntVar(&a.flags.Growth, "growth", def.Growth, "rock growth passes")
	pf.Float64Var(&a.flags.NoiseScale, "noise-scale", def.NoiseScale, "terrain noise feature size in cells")
	pf.IntVar(&a.flags.MaxPasses, "max-passes", def.MaxPasses, "bound for fixpoint loops (0 = width×height)")
	pf.StringVar(&a.flags.Log.Level, "log-level", def.Log.Level, "debug, info, warn or error")
	pf.BoolVar(&a.flags.Log.JSON, "json-logs", def.Log.JSON, "log JSON lines to stderr")
	pf.StringVar(&a.flags.Color, "color", def.Color, "auto, always or never")

	root.AddCommand(generateCmds(a)...)
	root.AddCommand(newVariantsCmd(a))

	root.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return fmt.Errorf("%s: %w", cmd.CommandPath(), err)
	})

	return root
}

// load resolves the configuration layers and builds the logger.
func (a *app) load(cmd *cobra.Command) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	a.overrideFromFlags(cmd, &cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}

	level, _ := logging.ParseLevel(cfg.Log.Level) // validated above
	a.mode, _ = render.ParseMode(cfg.Color)
	a.cfg = cfg
	a.log = logging.New(logging.Config{
		Level:   level,
		JSON:    cfg.Log.JSON,
		Service: "gridgen",
		Output:  a.stderr,
	})
	a.log.Debug("config loaded", "path", a.configPath, "seed", cfg.Seed, "width", cfg.Width, "height", cfg.Height)

	return nil
}

// overrideFromFlags copies every flag the user set into cfg.
func (a *app) overrideFromFlags(cmd *cobra.Command, cfg *config.Config) {
	set := cmd.Flags().Changed
	if set("seed") {
		cfg.Seed = a.flags.Seed
	}
	if set("width") {
		cfg.Width = a.flags.Width
	}
	if set("height") {
		cfg.Height = a.flags.Height
	}
	if set("density") {
		cfg.Density = a.flags.Density
	}
	if set("growth") {
		cfg.Growth = a.flags.Growth
	}
	if set("noise-scale") {
		cfg.NoiseScale = a.flags.NoiseScale
	}
	if set("max-passes") {
		cfg.MaxPasses = a.flags.MaxPasses
	}
	if set("log-level") {
		cfg.Log.Level = a.flags.Log.Level
	}
	if set("json-logs") {
		cfg.Log.JSON = a.flags.Log.JSON
	}
	if set("color") {
		cfg.Color = a.flags.Color
	}
}
