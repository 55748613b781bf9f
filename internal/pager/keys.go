package pager

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Quit       key.Binding
	CycleLevel key.Binding
	Top        key.Binding
	Bottom     key.Binding
	Help       key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c", "esc"),
			key.WithHelp("q", "quit"),
		),
		CycleLevel: key.NewBinding(
			key.WithKeys("l"),
			key.WithHelp("l", "cycle level"),
		),
		Top: key.NewBinding(
			key.WithKeys("g", "home"),
			key.WithHelp("g", "top"),
		),
		Bottom: key.NewBinding(
			key.WithKeys("G", "end"),
			key.WithHelp("G", "bottom"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
	}
}

func (k keyMap) bindings() []key.Binding {
	return []key.Binding{k.Quit, k.CycleLevel, k.Top, k.Bottom, k.Help}
}
