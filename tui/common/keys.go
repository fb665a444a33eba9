package common

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines shared key bindings across all pages.
type KeyMap struct {
	Quit      key.Binding
	Cycle     key.Binding // tab: focus next widget on the page
	Up        key.Binding
	Down      key.Binding
	Left      key.Binding
	Right     key.Binding
	Enter     key.Binding
	Back      key.Binding // esc: pop the page, or leave edit mode
	Submit    key.Binding // insert / ctrl+s: post the reply
	Editor    key.Binding // ctrl+e: compose in $EDITOR
	Backspace key.Binding
}

// DefaultKeyMap returns the default key bindings. Letter keys are left
// unbound so they can be typed into the reply buffer.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
		Cycle: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next pane"),
		),
		Up: key.NewBinding(
			key.WithKeys("up"),
			key.WithHelp("↑", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down"),
			key.WithHelp("↓", "down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left"),
			key.WithHelp("←", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right"),
			key.WithHelp("→", "right"),
		),
		Enter: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "open"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
		Submit: key.NewBinding(
			key.WithKeys("insert", "ctrl+s"),
			key.WithHelp("ins/ctrl+s", "send reply"),
		),
		Editor: key.NewBinding(
			key.WithKeys("ctrl+e"),
			key.WithHelp("ctrl+e", "reply ($EDITOR)"),
		),
		Backspace: key.NewBinding(
			key.WithKeys("backspace"),
			key.WithHelp("backspace", "delete line"),
		),
	}
}

// Keys is the process-wide key map.
var Keys = DefaultKeyMap()
