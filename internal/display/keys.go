package display

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/hammamikhairi/cdown/internal/domain"
)

type keyMap struct {
	Quit  key.Binding
	Pause key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q/esc", "quit"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "pause/resume"),
		),
	}
}

// decode maps a Bubble Tea key message onto the countdown's keys.
func (km keyMap) decode(msg tea.KeyMsg) domain.Key {
	switch {
	case key.Matches(msg, km.Quit):
		return domain.KeyQuit
	case key.Matches(msg, km.Pause):
		return domain.KeyPause
	default:
		return domain.KeyOther
	}
}

// KeyHelp returns one "key  action" line per binding, for usage text.
func KeyHelp() string {
	km := defaultKeyMap()
	var b strings.Builder
	for _, kb := range []key.Binding{km.Pause, km.Quit} {
		h := kb.Help()
		b.WriteString("    ")
		b.WriteString(h.Key)
		b.WriteString(strings.Repeat(" ", max(1, 8-len(h.Key))))
		b.WriteString(h.Desc)
		b.WriteByte('\n')
	}
	return b.String()
}
