package widget

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/borz-social/borz/domain"
	"github.com/borz-social/borz/tui/action"
	"github.com/borz-social/borz/tui/common"
	"github.com/borz-social/borz/tui/viewport"
)

const joinedLayout = "2 Jan 2006"

// User shows a profile's name and join date.
type User struct {
	focusable
	user domain.User
}

// NewUser returns a User widget for u.
func NewUser(u domain.User) *User {
	return &User{user: u}
}

func (w *User) Update(msg tea.KeyMsg) action.Action {
	return escOnly(w.focused, msg)
}

func (w *User) Resize(int, int) {}

func (w *User) View(width, height int) string {
	joined := "unknown"
	if !w.user.JoinedAt.IsZero() {
		joined = w.user.JoinedAt.Local().Format(joinedLayout)
	}
	lines := []string{
		"User " + common.AuthorStyle.Render(w.user.Username),
		"Joined " + common.TimestampStyle.Render(joined),
	}
	return common.Frame("User", lines, width, height, w.focused)
}

// Bio shows a profile's free text, wrapped to the pane and scrollable.
type Bio struct {
	focusable
	text   string
	lines  []string
	width  int
	scroll viewport.Scroller
}

// NewBio returns a Bio widget for text.
func NewBio(text string) *Bio {
	return &Bio{text: text}
}

func (w *Bio) Update(msg tea.KeyMsg) action.Action {
	if !w.focused {
		return action.Action{}
	}
	switch {
	case key.Matches(msg, common.Keys.Back):
		return action.Pop()
	case key.Matches(msg, common.Keys.Up):
		w.scroll.Up()
	case key.Matches(msg, common.Keys.Down):
		w.scroll.Down(len(w.lines))
	}
	return action.Action{}
}

func (w *Bio) Resize(width, height int) {
	if width != w.width || w.lines == nil {
		w.width = width
		w.lines = common.Wrap(w.text, width-2)
	}
	w.scroll.Recompute(len(w.lines), listRows(height))
}

func (w *Bio) View(width, height int) string {
	w.Resize(width, height)
	rows := make([]string, 0, w.scroll.Height())
	for i := w.scroll.Top; i < w.scroll.Bottom; i++ {
		row := w.lines[i]
		if w.focused && i == w.scroll.Selected {
			row = common.SelectedStyle.Render(row)
		}
		rows = append(rows, row)
	}
	return common.Frame("Bio", rows, width, height, w.focused)
}
