package display

import (
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"

	"github.com/hammamikhairi/cdown/internal/domain"
	"github.com/hammamikhairi/cdown/internal/render"
)

// pauseLabel sits inside the overlay box. The box is its width plus two
// border columns, and three rows tall.
const pauseLabel = " ⏸ Pause "

type layer uint8

const (
	layerBlank layer = iota
	layerDigits
	layerOverlay
)

type cell struct {
	r rune
	l layer
}

// canvas is a grid of single-width cells, each tagged with the layer that
// last wrote it so runs can be styled together.
type canvas struct {
	w, h  int
	cells [][]cell
}

func newCanvas(w, h int) *canvas {
	c := &canvas{w: w, h: h, cells: make([][]cell, h)}
	for y := range c.cells {
		row := make([]cell, w)
		for x := range row {
			row[x] = cell{r: ' '}
		}
		c.cells[y] = row
	}
	return c
}

// put writes s starting at (x, y), dropping anything outside the grid.
func (c *canvas) put(x, y int, s string, l layer) {
	if y < 0 || y >= c.h {
		return
	}
	for _, r := range s {
		if x >= 0 && x < c.w {
			c.cells[y][x] = cell{r: r, l: l}
		}
		x++
	}
}

// clear blanks a rectangle on the given layer.
func (c *canvas) clear(area render.Rect, l layer) {
	for y := area.Y; y < area.Y+area.H; y++ {
		c.put(area.X, y, strings.Repeat(" ", area.W), l)
	}
}

// lines renders each row, styling consecutive cells of the same layer as
// one run. Blank cells are left unstyled.
func (c *canvas) lines(styles map[layer]lipgloss.Style) []string {
	out := make([]string, c.h)
	var row, run strings.Builder
	for y, cells := range c.cells {
		row.Reset()
		for x := 0; x < len(cells); {
			l := cells[x].l
			run.Reset()
			for ; x < len(cells) && cells[x].l == l; x++ {
				run.WriteRune(cells[x].r)
			}
			if st, ok := styles[l]; ok {
				row.WriteString(st.Render(run.String()))
			} else {
				row.WriteString(run.String())
			}
		}
		out[y] = row.String()
	}
	return out
}

// theme is the resolved look of the countdown screen.
type theme struct {
	digits   lipgloss.Style
	overlay  lipgloss.Style
	frame    lipgloss.Style
	border   bool
	progress bool
	bar      progress.Model
}

func newTheme(fg lipgloss.TerminalColor, border, showProgress bool) theme {
	return theme{
		digits: lipgloss.NewStyle().Foreground(fg),
		overlay: lipgloss.NewStyle().
			Foreground(lipgloss.Color("15")).
			Background(lipgloss.Color("8")).
			Bold(true),
		frame: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(fg),
		border:   border,
		progress: showProgress,
		bar:      progress.New(progress.WithSolidFill(colorString(fg)), progress.WithoutPercentage()),
	}
}

func colorString(c lipgloss.TerminalColor) string {
	if lc, ok := c.(lipgloss.Color); ok {
		return string(lc)
	}
	return DefaultColor
}

// compose lays out one screen of width×height cells: the digits centred,
// an optional progress bar on the last inner row, the pause overlay on
// top, and an optional border around everything.
func compose(v domain.View, width, height int, th theme) string {
	w, h := width, height
	if th.border {
		w, h = w-2, h-2
	}
	if w <= 0 || h <= 0 {
		return ""
	}

	gridH := h
	if th.progress && h > 1 {
		gridH = h - 1
	}

	c := newCanvas(w, gridH)
	area := render.Rect{W: w, H: gridH}

	digits := render.Center(area, v.Width, len(v.Rows))
	for i, row := range v.Rows {
		c.put(digits.X, digits.Y+i, row, layerDigits)
	}

	if v.Paused {
		drawOverlay(c, area)
	}

	lines := c.lines(map[layer]lipgloss.Style{
		layerDigits:  th.digits,
		layerOverlay: th.overlay,
	})

	if gridH < h {
		bar := th.bar
		bar.Width = w
		lines = append(lines, bar.ViewAs(v.Progress()))
	}

	out := strings.Join(lines, "\n")
	if th.border {
		out = th.frame.Render(out)
	}
	return out
}

// drawOverlay paints the pause box centred in area over whatever is there.
func drawOverlay(c *canvas, area render.Rect) {
	b := lipgloss.ThickBorder()
	inner := len([]rune(pauseLabel))
	box := render.Center(area, inner+2, 3)

	c.clear(box, layerOverlay)
	c.put(box.X, box.Y, b.TopLeft+strings.Repeat(b.Top, inner)+b.TopRight, layerOverlay)
	c.put(box.X, box.Y+1, b.Left+pauseLabel+b.Right, layerOverlay)
	c.put(box.X, box.Y+2, b.BottomLeft+strings.Repeat(b.Bottom, inner)+b.BottomRight, layerOverlay)
}

// title is the terminal window title for v.
func title(v domain.View) string {
	switch {
	case v.Finished:
		return "cdown done"
	case v.Paused:
		return "cdown ⏸ " + v.Clock
	default:
		return "cdown " + v.Clock
	}
}
