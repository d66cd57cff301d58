package logging_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/katalvlaran/tilegrid/internal/logging"
	"github.com/stretchr/testify/require"
)

// TestParseLevel covers names, aliases and errors.
func TestParseLevel(t *testing.T) {
	for in, want := range map[string]logging.Level{
		"debug":   logging.LevelDebug,
		"INFO":    logging.LevelInfo,
		"":        logging.LevelInfo,
		"warning": logging.LevelWarn,
		" error ": logging.LevelError,
	} {
		got, err := logging.ParseLevel(in)
		require.NoError(t, err, in)
		require.Equal(t, want, got, in)
	}
	_, err := logging.ParseLevel("loud")
	require.ErrorIs(t, err, logging.ErrUnknownLevel)
	require.Equal(t, "WARN", logging.LevelWarn.String())
	require.Equal(t, "UNKNOWN", logging.Level(42).String())
}

// TestLevelFiltering drops entries below the configured level.
func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	l := logging.New(logging.Config{Level: logging.LevelWarn, Output: &buf})
	l.Info("hidden")
	l.Warn("shown")
	require.NotContains(t, buf.String(), "hidden")
	require.Contains(t, buf.String(), "shown")
}

// TestJSONWithService emits one JSON object per entry carrying the service attribute.
func TestJSONWithService(t *testing.T) {
	var buf bytes.Buffer
	l := logging.New(logging.Config{Level: logging.LevelDebug, JSON: true, Service: "gridgen", Output: &buf})
	l.With("kind", "rock").Debug("generated", "width", 8)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	require.Equal(t, "generated", entry["msg"])
	require.Equal(t, "gridgen", entry["service"])
	require.Equal(t, "rock", entry["kind"])
	require.EqualValues(t, 8, entry["width"])
}

// TestQuiet discards everything.
func TestQuiet(t *testing.T) {
	var buf bytes.Buffer
	l := logging.New(logging.Config{Quiet: true, Output: &buf})
	l.Error("nobody hears this")
	require.Zero(t, buf.Len())
	require.True(t, l.Config().Quiet)
	require.NotNil(t, l.Slog())
}
