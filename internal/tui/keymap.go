package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap lists the browser's key bindings. It implements help.KeyMap.
type KeyMap struct {
	Up       key.Binding
	Down     key.Binding
	Run      key.Binding
	RunAll   key.Binding
	SeedUp   key.Binding
	SeedDown key.Binding
	Focus    key.Binding
	PageUp   key.Binding
	PageDown key.Binding
	Help     key.Binding
	Quit     key.Binding
}

// DefaultKeyMap returns the default bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Run:      key.NewBinding(key.WithKeys("enter", "r"), key.WithHelp("enter", "run lesson")),
		RunAll:   key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "run all")),
		SeedUp:   key.NewBinding(key.WithKeys("+", "="), key.WithHelp("+", "seed+1")),
		SeedDown: key.NewBinding(key.WithKeys("-"), key.WithHelp("-", "seed-1")),
		Focus:    key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "switch pane")),
		PageUp:   key.NewBinding(key.WithKeys("pgup", "b"), key.WithHelp("pgup", "page up")),
		PageDown: key.NewBinding(key.WithKeys("pgdown", "f", " "), key.WithHelp("pgdn", "page down")),
		Help:     key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Run, k.RunAll, k.Focus, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.PageUp, k.PageDown},
		{k.Run, k.RunAll, k.SeedUp, k.SeedDown},
		{k.Focus, k.Help, k.Quit},
	}
}
