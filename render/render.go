// SPDX-License-Identifier: MIT

// Package render draws grids as text, optionally coloured for terminals.
//
// What:
//
//   - ASCII: one line per row, one rune per cell.
//   - Styled: the same layout with lipgloss colours; runs of identical glyphs
//     are styled once to keep escape sequences short.
//   - Write: picks ASCII or Styled for an io.Writer according to a Mode;
//     ModeAuto colours only when the writer is a terminal (go-isatty).
//
// Holes (absent cells of a sliced grid) are drawn as a space.
package render

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/katalvlaran/tilegrid/grid"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

// ErrUnknownMode indicates a colour mode string that ParseMode does not know.
var ErrUnknownMode = errors.New("render: unknown colour mode")

// Glyph is how one cell is drawn.
// A nil colour leaves the terminal default in place.
type Glyph struct {
	Rune rune
	Fg   lipgloss.TerminalColor
	Bg   lipgloss.TerminalColor
}

// Drawer maps a cell value to its glyph.
type Drawer[T any] func(v T) Glyph

// hole is drawn for absent cells.
var hole = Glyph{Rune: ' '}

// glyphAt returns the glyph for (x,y), or hole.
func glyphAt[T any](g *grid.Grid[T], draw Drawer[T], x, y int) Glyph {
	v, ok := g.At(x, y)
	if !ok {
		return hole
	}
	return draw(v)
}

// ASCII renders g without colour, rows separated by '\n' (with a trailing newline).
// Complexity: O(W×H).
func ASCII[T any](g *grid.Grid[T], draw Drawer[T]) string {
	var sb strings.Builder
	w, h := g.Size()
	sb.Grow((w + 1) * h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			sb.WriteRune(glyphAt(g, draw, x, y).Rune)
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}

// Styled renders g with r's colour profile. A renderer whose profile is
// termenv.Ascii produces the same text as ASCII.
// Complexity: O(W×H).
func Styled[T any](r *lipgloss.Renderer, g *grid.Grid[T], draw Drawer[T]) string {
	var sb strings.Builder
	var run strings.Builder
	w, h := g.Size()

	flush := func(gl Glyph) {
		if run.Len() == 0 {
			return
		}
		st := r.NewStyle()
		if gl.Fg != nil {
			st = st.Foreground(gl.Fg)
		}
		if gl.Bg != nil {
			st = st.Background(gl.Bg)
		}
		sb.WriteString(st.Render(run.String()))
		run.Reset()
	}

	for y := 0; y < h; y++ {
		var cur Glyph
		for x := 0; x < w; x++ {
			gl := glyphAt(g, draw, x, y)
			if x > 0 && (gl.Fg != cur.Fg || gl.Bg != cur.Bg) {
				flush(cur)
			}
			cur = gl
			run.WriteRune(gl.Rune)
		}
		flush(cur)
		sb.WriteByte('\n')
	}

	return sb.String()
}

// Mode selects when Write colours its output.
type Mode int

const (
	// ModeAuto colours only terminals.
	ModeAuto Mode = iota
	// ModeAlways colours unconditionally (256-colour ANSI).
	ModeAlways
	// ModeNever never colours.
	ModeNever
)

// String returns "auto", "always" or "never".
func (m Mode) String() string {
	switch m {
	case ModeAuto:
		return "auto"
	case ModeAlways:
		return "always"
	case ModeNever:
		return "never"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// ParseMode parses "auto", "always" or "never" (case-insensitive).
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "auto":
		return ModeAuto, nil
	case "always":
		return ModeAlways, nil
	case "never":
		return ModeNever, nil
	default:
		return ModeAuto, fmt.Errorf("%w: %q", ErrUnknownMode, s)
	}
}

// IsTerminal reports whether w is a terminal (including Cygwin/MSYS ptys).
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Write renders g to w according to mode.
func Write[T any](w io.Writer, mode Mode, g *grid.Grid[T], draw Drawer[T]) error {
	var out string
	switch {
	case mode == ModeAlways:
		r := lipgloss.NewRenderer(w)
		r.SetColorProfile(termenv.ANSI256)
		out = Styled(r, g, draw)
	case mode == ModeAuto && IsTerminal(w):
		out = Styled(lipgloss.NewRenderer(w), g, draw)
	default:
		out = ASCII(g, draw)
	}
	_, err := io.WriteString(w, out)

	return err
}
