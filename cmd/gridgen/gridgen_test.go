package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tilegrid/generator"
	"github.com/katalvlaran/tilegrid/grid"
	"github.com/katalvlaran/tilegrid/internal/config"
)

// run executes gridgen with args and returns both streams.
func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := newRootCmd(&out, &errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

// mapLines splits rendered output into rows and checks every rune is a tile.
func mapLines(t *testing.T, out string) []string {
	t.Helper()
	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	for _, l := range lines {
		for _, r := range l {
			_, ok := generator.ParseTile(r)
			require.Truef(t, ok, "unexpected rune %q", r)
		}
	}
	return lines
}

func requireSize(t *testing.T, lines []string, w, h int) {
	t.Helper()
	require.Len(t, lines, h)
	for _, l := range lines {
		require.Equal(t, w, utf8.RuneCountInString(l))
	}
}

func TestGenerateCommands(t *testing.T) {
	for _, name := range []string{"tilemap", "walls", "building", "rock"} {
		t.Run(name, func(t *testing.T) {
			out, _, err := run(t, name, "--width", "10", "--height", "6", "--color", "never")
			require.NoError(t, err)
			requireSize(t, mapLines(t, out), 10, 6)
		})
	}
}

func TestGenerateDeterministic(t *testing.T) {
	a, _, err := run(t, "tilemap", "--seed", "42", "--width", "16", "--height", "8", "--color", "never")
	require.NoError(t, err)
	b, _, err := run(t, "tilemap", "--seed", "42", "--width", "16", "--height", "8", "--color", "never")
	require.NoError(t, err)
	require.Equal(t, a, b)
}

func TestEnvironmentAndFlagPrecedence(t *testing.T) {
	t.Setenv(config.EnvPrefix+"WIDTH", "7")
	t.Setenv(config.EnvPrefix+"HEIGHT", "9")

	out, _, err := run(t, "walls", "--height", "4", "--color", "never")
	require.NoError(t, err)
	requireSize(t, mapLines(t, out), 7, 4) // width from env, height from flag
}

func TestNoiseScaleFlag(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gridgen.yaml")
	require.NoError(t, os.WriteFile(path, []byte("noise_scale: -1\n"), 0o600))

	_, _, err := run(t, "tilemap", "--config", path, "--width", "12", "--height", "6", "--color", "never")
	require.ErrorIs(t, err, config.ErrInvalidConfig)

	out, _, err := run(t, "tilemap", "--config", path, "--noise-scale", "3.5", "--width", "12", "--height", "6", "--color", "never")
	require.NoError(t, err) // flag overrides the invalid file value
	requireSize(t, mapLines(t, out), 12, 6)
}

func TestConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gridgen.yaml")
	require.NoError(t, os.WriteFile(path, []byte("width: 9\nheight: 3\ncolor: never\n"), 0o600))

	out, _, err := run(t, "building", "--config", path, "--height", "5")
	require.NoError(t, err)
	requireSize(t, mapLines(t, out), 9, 5)

	_, _, err = run(t, "building", "--config", filepath.Join(t.TempDir(), "missing.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestInvalidSettings(t *testing.T) {
	_, _, err := run(t, "tilemap", "--color", "sometimes")
	require.ErrorIs(t, err, config.ErrInvalidConfig)

	_, _, err = run(t, "tilemap", "--noise-scale", "0", "--color", "never")
	require.ErrorIs(t, err, config.ErrInvalidConfig)

	_, _, err = run(t, "walls", "--log-level", "loud")
	require.ErrorIs(t, err, config.ErrInvalidConfig)

	_, _, err = run(t, "building", "--width", "2", "--height", "2", "--color", "never")
	require.ErrorIs(t, err, generator.ErrTooSmall)

	_, _, err = run(t, "rock", "extra")
	require.Error(t, err)
}

func TestJSONLogs(t *testing.T) {
	_, logs, err := run(t, "rock", "--width", "8", "--height", "8", "--color", "never", "--json-logs", "--log-level", "debug")
	require.NoError(t, err)
	require.Contains(t, logs, `"msg":"config loaded"`)
	require.Contains(t, logs, `"msg":"generated"`)
	require.Contains(t, logs, `"kind":"rock"`)
}

func TestVariants(t *testing.T) {
	out, _, err := run(t, "variants", "#.", "..")
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(out, "# 0 (2x2)\n#.\n..\n"))
	require.Contains(t, out, "# 3 (2x2)")
	require.NotContains(t, out, "# 4 ")

	out, _, err = run(t, "variants", "ab")
	require.NoError(t, err)
	require.Contains(t, out, "(2x1)\nba\n")
	require.Contains(t, out, "(1x2)\na\nb\n")
	require.Contains(t, out, "(1x2)\nb\na\n")
	require.NotContains(t, out, "# 4 ")

	_, _, err = run(t, "variants", "ab", "c")
	require.ErrorIs(t, err, grid.ErrNonRectangular)

	_, _, err = run(t, "variants")
	require.Error(t, err)
}
