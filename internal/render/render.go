// Package render turns timer state into block-digit rows.
//
// Formatting (which characters appear) and drawing (how each character
// looks) are separate steps: [Clock] is a plain string function and
// [Glyphs] maps any string of supported characters onto the glyph table.
package render

import (
	"strconv"
	"strings"

	"github.com/hammamikhairi/cdown/internal/glyph"
	"github.com/hammamikhairi/cdown/internal/timer"
)

// Fill is drawn for every filled glyph cell.
const Fill = '█'

// Frame is one redraw worth of rows. It always has glyph.Height rows.
type Frame [glyph.Height]string

// Lines returns the rows as a slice.
func (f Frame) Lines() []string {
	out := make([]string, len(f))
	copy(out, f[:])
	return out
}

// Width returns the width in cells of the widest row. All rows of a frame
// built by Glyphs have the same width.
func (f Frame) Width() int {
	w := 0
	for _, r := range f {
		if n := len([]rune(r)); n > w {
			w = n
		}
	}
	return w
}

// Clock formats a time split the way the clock face shows it. Hours are
// written without padding and only when showHours is set; minutes and
// seconds are always two digits.
func Clock(h, m, s uint64, showHours bool) string {
	var b strings.Builder
	if showHours {
		b.WriteString(strconv.FormatUint(h, 10))
		b.WriteByte(':')
	}
	writePadded(&b, m)
	b.WriteByte(':')
	writePadded(&b, s)
	return b.String()
}

func writePadded(b *strings.Builder, v uint64) {
	if v < 10 {
		b.WriteByte('0')
	}
	b.WriteString(strconv.FormatUint(v, 10))
}

// Text returns the plain clock string for t.
func Text(t *timer.Timer) string {
	h, m, s := t.HMS()
	return Clock(h, m, s, t.ShowHours())
}

// Render builds the frame for the current state of t.
func Render(t *timer.Timer) Frame {
	return Glyphs(Text(t))
}

// Glyphs lays out text as glyphs side by side with a one-column gap
// between neighbours. Every character must be in the glyph table.
func Glyphs(text string) Frame {
	var rows [glyph.Height]strings.Builder
	for i, ch := range []rune(text) {
		g := glyph.Must(ch)
		for r := range rows {
			if i > 0 {
				rows[r].WriteByte(' ')
			}
			rows[r].WriteString(g.Row(r, Fill))
		}
	}
	var f Frame
	for r := range rows {
		f[r] = rows[r].String()
	}
	return f
}
