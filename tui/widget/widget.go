// Package widget contains the panes a page is built from. A widget owns its
// content, its selection and its scroll window; it reacts to keys only while
// focused and reports navigation as an action.Action.
package widget

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/borz-social/borz/tui/action"
)

// Widget is one pane of a page.
type Widget interface {
	Focus()
	Blur()
	Focused() bool

	// Update handles a key. It is a no-op returning a None action unless the
	// widget is focused.
	Update(msg tea.KeyMsg) action.Action

	// Resize fits the widget to an area of width x height cells, frame
	// included.
	Resize(width, height int)

	// View renders the widget into exactly width x height cells.
	View(width, height int) string
}

// listRows is the number of list rows inside a framed area.
func listRows(height int) int {
	return max(height-2, 0)
}

type focusable struct {
	focused bool
}

func (f *focusable) Focus()        { f.focused = true }
func (f *focusable) Blur()         { f.focused = false }
func (f *focusable) Focused() bool { return f.focused }
