package tui

import (
	"github.com/alkime/frostslider/pkg/slider"
	"github.com/charmbracelet/bubbles/key"
)

// KeyMap defines the application key bindings on top of the slider's.
type KeyMap struct {
	Slider slider.KeyMap
	Help   key.Binding
	Quit   key.Binding
}

// DefaultKeyMap returns the default application key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Slider: slider.DefaultKeyMap(),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "toggle help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp returns the short help bindings.
func (k KeyMap) ShortHelp() []key.Binding {
	return append(k.Slider.ShortHelp(), k.Help, k.Quit)
}

// FullHelp returns the full help bindings.
func (k KeyMap) FullHelp() [][]key.Binding {
	return append(k.Slider.FullHelp(), []key.Binding{k.Help, k.Quit})
}
