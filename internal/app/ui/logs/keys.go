package logs

import (
	"github.com/charmbracelet/bubbles/key"

	"dockhand/internal/app/ui/components"
)

// KeyMap defines the key bindings for the log viewer
type KeyMap struct {
	components.KeyMap
	Select        key.Binding
	ClearSelect   key.Binding
	CopySelection key.Binding
	CopyAll       key.Binding
	Wrap          key.Binding
	Autoscroll    key.Binding
	Search        key.Binding
	ClearLogs     key.Binding
	Apply         key.Binding
	Cancel        key.Binding
}

// DefaultKeyMap returns the default key bindings for the log viewer
func DefaultKeyMap() KeyMap {
	base := components.DefaultKeyMap()

	base.Up.SetHelp("↑/k", "line up")
	base.Down.SetHelp("↓/j", "line down")

	return KeyMap{
		KeyMap: base,
		Select: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "select"),
		),
		ClearSelect: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "clear selection"),
		),
		CopySelection: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "copy selection"),
		),
		CopyAll: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "copy all"),
		),
		Wrap: key.NewBinding(
			key.WithKeys("w"),
			key.WithHelp("w", "wrap"),
		),
		Autoscroll: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "autoscroll"),
		),
		Search: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "filter"),
		),
		ClearLogs: key.NewBinding(
			key.WithKeys("ctrl+r"),
			key.WithHelp("ctrl+r", "clear logs"),
		),
		Apply: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "apply"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "cancel"),
		),
	}
}

// ShortHelp returns keybindings for the mini help
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Select, k.CopySelection, k.CopyAll, k.Search, k.Wrap, k.Autoscroll, k.Quit}
}

// FullHelp returns keybindings for the expanded help
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.PageUp, k.PageDown, k.Top, k.Bottom},
		{k.Select, k.ClearSelect, k.CopySelection, k.CopyAll},
		{k.Search, k.Wrap, k.Autoscroll, k.ClearLogs, k.Quit, k.ForceQuit},
	}
}

// searchKeyMap is the help shown while the filter input has focus
type searchKeyMap struct {
	KeyMap
}

func (k searchKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Apply, k.Cancel, k.ForceQuit}
}

func (k searchKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}
