package widget

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/borz-social/borz/domain"
	"github.com/borz-social/borz/tui/action"
	"github.com/borz-social/borz/tui/common"
	"github.com/borz-social/borz/tui/viewport"
)

// Threads lists a group's threads in two columns, titles and authors.
// Left and Right pick the column Enter acts on.
type Threads struct {
	focusable
	path    string
	threads []domain.Thread
	onLeft  bool
	scroll  viewport.Scroller
}

// NewThreads returns a Threads widget for the group at path.
func NewThreads(path string, threads []domain.Thread) *Threads {
	return &Threads{path: path, threads: threads, onLeft: true}
}

// Selected returns the selected index.
func (w *Threads) Selected() int { return w.scroll.Selected }

// OnTitles reports whether the title column is active.
func (w *Threads) OnTitles() bool { return w.onLeft }

func (w *Threads) Update(msg tea.KeyMsg) action.Action {
	if !w.focused {
		return action.Action{}
	}
	switch {
	case key.Matches(msg, common.Keys.Back):
		return action.Pop()
	case key.Matches(msg, common.Keys.Up):
		w.scroll.Up()
	case key.Matches(msg, common.Keys.Down):
		w.scroll.Down(len(w.threads))
	case key.Matches(msg, common.Keys.Left):
		w.onLeft = true
	case key.Matches(msg, common.Keys.Right):
		w.onLeft = false
	case key.Matches(msg, common.Keys.Enter):
		if len(w.threads) == 0 {
			break
		}
		t := w.threads[w.scroll.Selected]
		if w.onLeft {
			return action.PushThread(t.ID, w.path+"/"+t.Title)
		}
		return action.PushUser(t.AuthorID)
	}
	return action.Action{}
}

func (w *Threads) Resize(_, height int) {
	w.scroll.Recompute(len(w.threads), listRows(height))
}

func columns(width int) (int, int) {
	left := width * 85 / 100
	return left, width - left
}

func (w *Threads) View(width, height int) string {
	w.Resize(width, height)
	lw, rw := columns(width)

	titles := make([]string, 0, w.scroll.Height())
	authors := make([]string, 0, w.scroll.Height())
	for i := w.scroll.Top; i < w.scroll.Bottom; i++ {
		t := w.threads[i]
		title := common.TruncateRight(t.Title, lw-2)
		author := common.TruncateRight(t.AuthorName, rw-2)
		if w.focused && i == w.scroll.Selected {
			if w.onLeft {
				title = common.SelectedStyle.Render(title)
			} else {
				author = common.SelectedStyle.Render(author)
			}
		}
		titles = append(titles, title)
		authors = append(authors, author)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top,
		common.Frame("Threads", titles, lw, height, w.focused),
		common.Frame("Authors", authors, rw, height, w.focused),
	)
}
