package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines the [key.Binding] mapping for the player. Letter commands
// are bound in both cases; arrows are symbolic keys, not character input.
type keyMap struct {
	playToggle  key.Binding
	seekBack    key.Binding
	seekForward key.Binding
	next        key.Binding
	previous    key.Binding
	quit        key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		playToggle:  key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "play/pause")),
		seekBack:    key.NewBinding(key.WithKeys("left"), key.WithHelp("←", "seek back")),
		seekForward: key.NewBinding(key.WithKeys("right"), key.WithHelp("→", "seek forward")),
		next:        key.NewBinding(key.WithKeys("n", "N"), key.WithHelp("n", "next")),
		previous:    key.NewBinding(key.WithKeys("p", "P"), key.WithHelp("p", "previous")),
		quit:        key.NewBinding(key.WithKeys("q", "Q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.playToggle, k.previous, k.next, k.quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.playToggle, k.seekBack, k.seekForward},
		{k.previous, k.next, k.quit},
	}
}
