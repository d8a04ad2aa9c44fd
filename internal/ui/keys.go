package ui

import (
	"github.com/charmbracelet/bubbles/key"

	"multiselect/multiselect"
)

// keyMap holds the host bindings. Everything else goes to the focused widget.
type keyMap struct {
	Next   key.Binding
	Prev   key.Binding
	Help   key.Binding
	Quit   key.Binding
	widget multiselect.KeyMap
}

func newKeyMap(widget multiselect.KeyMap) keyMap {
	return keyMap{
		Next: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next widget"),
		),
		Prev: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "previous widget"),
		),
		Help: key.NewBinding(
			key.WithKeys("f1"),
			key.WithHelp("f1", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
		widget: widget,
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return append([]key.Binding{k.Next}, append(k.widget.ShortHelp(), k.Help, k.Quit)...)
}

func (k keyMap) FullHelp() [][]key.Binding {
	return append([][]key.Binding{{k.Next, k.Prev}}, append(k.widget.FullHelp(), []key.Binding{k.Help, k.Quit})...)
}
