package game

import "charm.land/bubbles/v2/key"

// Keys are the game screen bindings.
type Keys struct {
	Up      key.Binding
	Down    key.Binding
	Pick    key.Binding
	Choose  key.Binding
	Check   key.Binding
	Speak   key.Binding
	Quit    key.Binding
	Confirm key.Binding
	Cancel  key.Binding
}

// DefaultKeys returns the standard bindings.
func DefaultKeys() Keys {
	return Keys{
		Up:      key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑↓", "Move")),
		Down:    key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↑↓", "Move")),
		Pick:    key.NewBinding(key.WithKeys("1", "2", "3", "4"), key.WithHelp("1-4", "Choose")),
		Choose:  key.NewBinding(key.WithKeys("space"), key.WithHelp("Space", "Choose")),
		Check:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("Enter", "Check")),
		Speak:   key.NewBinding(key.WithKeys("s"), key.WithHelp("S", "Listen")),
		Quit:    key.NewBinding(key.WithKeys("esc"), key.WithHelp("Esc", "Quit")),
		Confirm: key.NewBinding(key.WithKeys("y", "Y"), key.WithHelp("Y", "End session")),
		Cancel:  key.NewBinding(key.WithKeys("n", "N", "esc"), key.WithHelp("N", "Keep going")),
	}
}
