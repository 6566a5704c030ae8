package slider

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the key bindings that move a slider.
type KeyMap struct {
	Increment key.Binding
	Decrement key.Binding
}

// DefaultKeyMap returns arrow-key bindings: right/up forward, left/down back.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Increment: key.NewBinding(
			key.WithKeys("right", "up"),
			key.WithHelp("→/↑", "increase"),
		),
		Decrement: key.NewBinding(
			key.WithKeys("left", "down"),
			key.WithHelp("←/↓", "decrease"),
		),
	}
}

// ShortHelp returns the short help bindings for the slider.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Increment, k.Decrement}
}

// FullHelp returns the full help bindings for the slider.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Increment, k.Decrement},
	}
}
