package model

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the dashboard key bindings.
type KeyMap struct {
	Open key.Binding
	Log  key.Binding
	Help key.Binding
	Esc  key.Binding
	Quit key.Binding
}

// DialogKeyMap defines the key bindings of the schedule dialog.
type DialogKeyMap struct {
	NextPlan key.Binding
	Copy     key.Binding
	Done     key.Binding
}

// DefaultKeyMap returns the dashboard key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Open: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "open trains"),
		),
		Log: key.NewBinding(
			key.WithKeys("L"),
			key.WithHelp("L", "activity log"),
		),
		Help: key.NewBinding(
			key.WithKeys("h", "?"),
			key.WithHelp("h/?", "help"),
		),
		Esc: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "close overlay"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// DefaultDialogKeyMap returns the schedule dialog key bindings.
func DefaultDialogKeyMap() DialogKeyMap {
	return DialogKeyMap{
		NextPlan: key.NewBinding(
			key.WithKeys("n", "tab"),
			key.WithHelp("n/tab", "next trip"),
		),
		Copy: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "copy"),
		),
		Done: key.NewBinding(
			key.WithKeys("esc", "d"),
			key.WithHelp("esc/d", "done"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Open, k.Log, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Open, k.Quit}, {k.Log, k.Help, k.Esc}}
}

// ShortHelp implements help.KeyMap.
func (k DialogKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NextPlan, k.Copy, k.Done}
}

// FullHelp implements help.KeyMap.
func (k DialogKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}
