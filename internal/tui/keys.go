package tui

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/zenhabits/zenhabits/internal/tui/components/habitlist"
)

type KeyMap struct {
	Quit key.Binding
	Help key.Binding

	list habitlist.KeyMap
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		list: habitlist.DefaultKeyMap(),
	}
}

func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.list.Add, k.list.Toggle, k.list.Note, k.Help, k.Quit}
}

func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.list.Add, k.list.Toggle, k.list.Remove, k.list.Note},
		{k.Help, k.Quit},
	}
}
