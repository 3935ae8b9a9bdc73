package display

import (
	"regexp"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// DefaultColor is used when no color is configured or the name is unknown.
const DefaultColor = "lightblue"

// colorNames lists the accepted names in display order, each mapped to its
// ANSI color index.
var colorNames = []struct {
	name  string
	color lipgloss.Color
}{
	{"black", lipgloss.Color("0")},
	{"white", lipgloss.Color("15")},
	{"red", lipgloss.Color("1")},
	{"green", lipgloss.Color("2")},
	{"yellow", lipgloss.Color("3")},
	{"blue", lipgloss.Color("4")},
	{"magenta", lipgloss.Color("5")},
	{"cyan", lipgloss.Color("6")},
	{"darkgray", lipgloss.Color("8")},
	{"lightred", lipgloss.Color("9")},
	{"lightgreen", lipgloss.Color("10")},
	{"lightyellow", lipgloss.Color("11")},
	{"lightblue", lipgloss.Color("12")},
	{"lightmagenta", lipgloss.Color("13")},
	{"lightcyan", lipgloss.Color("14")},
}

var hexColor = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// ColorNames returns the accepted color names.
func ColorNames() []string {
	out := make([]string, len(colorNames))
	for i, c := range colorNames {
		out[i] = c.name
	}
	return out
}

// ParseColor resolves a color name (case-insensitive) or a #rrggbb value.
// Unknown input yields the default color and ok == false.
func ParseColor(s string) (c lipgloss.Color, ok bool) {
	s = strings.TrimSpace(s)
	if hexColor.MatchString(s) {
		return lipgloss.Color(strings.ToLower(s)), true
	}
	name := strings.ToLower(s)
	for _, nc := range colorNames {
		if nc.name == name {
			return nc.color, true
		}
	}
	return mustColor(DefaultColor), false
}

func mustColor(name string) lipgloss.Color {
	for _, nc := range colorNames {
		if nc.name == name {
			return nc.color
		}
	}
	panic("display: unknown built-in color " + name)
}
