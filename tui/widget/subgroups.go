package widget

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/borz-social/borz/domain"
	"github.com/borz-social/borz/tui/action"
	"github.com/borz-social/borz/tui/common"
	"github.com/borz-social/borz/tui/viewport"
)

// Subgroups lists the child groups of the group at path.
type Subgroups struct {
	focusable
	path   string
	groups []domain.Group
	scroll viewport.Scroller
}

// NewSubgroups returns a Subgroups widget for the group at path.
func NewSubgroups(path string, groups []domain.Group) *Subgroups {
	return &Subgroups{path: path, groups: groups}
}

// Selected returns the selected index.
func (w *Subgroups) Selected() int { return w.scroll.Selected }

func (w *Subgroups) Update(msg tea.KeyMsg) action.Action {
	if !w.focused {
		return action.Action{}
	}
	switch {
	case key.Matches(msg, common.Keys.Back):
		return action.Pop()
	case key.Matches(msg, common.Keys.Up):
		w.scroll.Up()
	case key.Matches(msg, common.Keys.Down):
		w.scroll.Down(len(w.groups))
	case key.Matches(msg, common.Keys.Enter):
		if len(w.groups) == 0 {
			break
		}
		g := w.groups[w.scroll.Selected]
		return action.PushGroup(g.ID, w.path+"/"+g.Name)
	}
	return action.Action{}
}

func (w *Subgroups) Resize(_, height int) {
	w.scroll.Recompute(len(w.groups), listRows(height))
}

func (w *Subgroups) View(width, height int) string {
	w.Resize(width, height)
	rows := make([]string, 0, w.scroll.Height())
	for i := w.scroll.Top; i < w.scroll.Bottom; i++ {
		row := common.TruncateLeft(w.path+"/"+w.groups[i].Name, width-2)
		if w.focused && i == w.scroll.Selected {
			row = common.SelectedStyle.Render(row)
		}
		rows = append(rows, row)
	}
	return common.Frame("Subgroups", rows, width, height, w.focused)
}
