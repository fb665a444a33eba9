package widget

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/borz-social/borz/tui/action"
	"github.com/borz-social/borz/tui/common"
)

// Location shows where the page sits in the group tree.
type Location struct {
	focusable
	path string
}

// NewLocation returns a Location showing path.
func NewLocation(path string) *Location {
	return &Location{path: path}
}

func (w *Location) Path() string { return w.path }

func (w *Location) Update(msg tea.KeyMsg) action.Action {
	return escOnly(w.focused, msg)
}

func (w *Location) Resize(int, int) {}

func (w *Location) View(width, height int) string {
	return common.Frame("Location", []string{common.TruncateLeft(w.path, width-2)}, width, height, w.focused)
}

// Account shows who is logged in.
type Account struct {
	focusable
	username string
}

// NewAccount returns an Account for username.
func NewAccount(username string) *Account {
	return &Account{username: username}
}

func (w *Account) Update(msg tea.KeyMsg) action.Action {
	return escOnly(w.focused, msg)
}

func (w *Account) Resize(int, int) {}

func (w *Account) View(width, height int) string {
	line := "You are not logged in"
	if w.username != "" {
		line = "You are currently logged in as " + common.AuthorStyle.Render(w.username)
	}
	return common.Frame("Account", []string{line}, width, height, w.focused)
}

func escOnly(focused bool, msg tea.KeyMsg) action.Action {
	if focused && key.Matches(msg, common.Keys.Back) {
		return action.Pop()
	}
	return action.Action{}
}
