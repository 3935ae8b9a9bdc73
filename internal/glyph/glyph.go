// Package glyph holds the block-character font used for the clock face.
//
// Every glyph is Height rows tall. Widths vary per character: digits are
// five cells wide and the separator is a single cell. The table is built
// once at package initialisation and never written afterwards.
package glyph

import (
	"fmt"
	"strings"
)

// Height is the row count shared by every glyph.
const Height = 5

// Glyph is an immutable bitmap of filled and empty cells.
type Glyph struct {
	width int
	rows  [Height][]bool
}

// Width returns the number of columns.
func (g Glyph) Width() int { return g.width }

// On reports whether the cell at (row, col) is filled.
func (g Glyph) On(row, col int) bool {
	if row < 0 || row >= Height || col < 0 || col >= g.width {
		return false
	}
	return g.rows[row][col]
}

// Row renders one row, drawing filled cells with fill and empty cells as
// spaces.
func (g Glyph) Row(row int, fill rune) string {
	var b strings.Builder
	for col := 0; col < g.width; col++ {
		if g.On(row, col) {
			b.WriteRune(fill)
		} else {
			b.WriteByte(' ')
		}
	}
	return b.String()
}

// Lookup returns the glyph for ch.
func Lookup(ch rune) (Glyph, bool) {
	g, ok := table[ch]
	return g, ok
}

// Must returns the glyph for ch and panics when there is none. The clock
// only ever asks for digits and ':', so a miss is a bug in the caller.
func Must(ch rune) Glyph {
	g, ok := table[ch]
	if !ok {
		panic(fmt.Sprintf("glyph: no bitmap for %q", ch))
	}
	return g
}

// Supported lists the characters that have a glyph, in table order.
func Supported() []rune {
	return []rune("0123456789:")
}

// parse turns Height strings of '#' (filled) and '.' (empty) into a Glyph.
// All rows must have the same width.
func parse(ch rune, art [Height]string) Glyph {
	g := Glyph{width: len(art[0])}
	for r, line := range art {
		if len(line) != g.width {
			panic(fmt.Sprintf("glyph: %q row %d is %d wide, want %d", ch, r, len(line), g.width))
		}
		g.rows[r] = make([]bool, g.width)
		for c := 0; c < len(line); c++ {
			switch line[c] {
			case '#':
				g.rows[r][c] = true
			case '.':
			default:
				panic(fmt.Sprintf("glyph: %q row %d has stray %q", ch, r, line[c]))
			}
		}
	}
	return g
}
