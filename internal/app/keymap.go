package app

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines all application keybindings.
type KeyMap struct {
	// Global
	Quit       key.Binding
	Help       key.Binding
	Search     key.Binding
	CopyState  key.Binding
	NextTheme  key.Binding
	ResetState key.Binding

	// Panels
	ToggleLeft   key.Binding
	ToggleRight  key.Binding
	ToggleTop    key.Binding
	ToggleBottom key.Binding
	CollapseAll  key.Binding
	ExpandAll    key.Binding
	OpenButton   key.Binding
}

// DefaultKeyMap returns the default keybinding configuration.
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
		Search: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "search"),
		),
		CopyState: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "copy layout"),
		),
		NextTheme: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "theme"),
		),
		ResetState: key.NewBinding(
			key.WithKeys("R"),
			key.WithHelp("R", "reset layout"),
		),
		ToggleLeft: key.NewBinding(
			key.WithKeys("h"),
			key.WithHelp("h", "left"),
		),
		ToggleRight: key.NewBinding(
			key.WithKeys("l"),
			key.WithHelp("l", "right"),
		),
		ToggleTop: key.NewBinding(
			key.WithKeys("k"),
			key.WithHelp("k", "top"),
		),
		ToggleBottom: key.NewBinding(
			key.WithKeys("j"),
			key.WithHelp("j", "bottom"),
		),
		CollapseAll: key.NewBinding(
			key.WithKeys("["),
			key.WithHelp("[", "collapse all"),
		),
		ExpandAll: key.NewBinding(
			key.WithKeys("]"),
			key.WithHelp("]", "expand all"),
		),
		OpenButton: key.NewBinding(
			key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9"),
			key.WithHelp("1-9", "open tab"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.ToggleLeft, k.ToggleRight, k.ToggleTop, k.ToggleBottom, k.Search, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Quit, k.Help, k.Search, k.CopyState, k.NextTheme, k.ResetState},
		{k.ToggleLeft, k.ToggleRight, k.ToggleTop, k.ToggleBottom, k.CollapseAll, k.ExpandAll, k.OpenButton},
	}
}
