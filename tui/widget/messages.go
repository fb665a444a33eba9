package widget

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/borz-social/borz/domain"
	"github.com/borz-social/borz/tui/action"
	"github.com/borz-social/borz/tui/common"
	"github.com/borz-social/borz/tui/compose"
	"github.com/borz-social/borz/tui/viewport"
)

// messageChrome is the frame plus the author and "Message:" header rows.
const messageChrome = 4

// Messages shows a thread one message at a time. Moving right past the last
// message opens the reply buffer.
type Messages struct {
	focusable
	threadID string
	username string
	messages []domain.Message

	selected int
	scroll   viewport.Scroller
	lines    []string // selected message, wrapped to width
	width    int

	reply *compose.Buffer // nil while browsing
}

// NewMessages returns a Messages widget for a thread. username is shown as
// the author of the reply being written.
func NewMessages(threadID, username string, messages []domain.Message) *Messages {
	return &Messages{threadID: threadID, username: username, messages: messages}
}

// Editing reports whether the reply buffer is open.
func (w *Messages) Editing() bool { return w.reply != nil }

// SelectedMessage returns the index of the message on screen.
func (w *Messages) SelectedMessage() int { return w.selected }

// Reply returns the open reply buffer, or nil.
func (w *Messages) Reply() *compose.Buffer { return w.reply }

// SetDraft opens the reply buffer holding text.
func (w *Messages) SetDraft(text string) {
	w.startReply()
	w.reply.SetText(text)
}

func (w *Messages) startReply() {
	if w.reply == nil {
		w.reply = compose.NewBuffer()
		if w.width > 0 {
			w.reply.Resize(w.width)
		}
	}
}

func (w *Messages) stopReply() {
	w.reply = nil
	w.selectMessage(len(w.messages) - 1)
}

func (w *Messages) selectMessage(i int) {
	w.selected = max(i, 0)
	w.scroll = viewport.Scroller{}
	w.lines = nil
}

func (w *Messages) Update(msg tea.KeyMsg) action.Action {
	if !w.focused {
		return action.Action{}
	}
	if w.reply != nil {
		return w.updateReply(msg)
	}
	switch {
	case key.Matches(msg, common.Keys.Back):
		return action.Pop()
	case key.Matches(msg, common.Keys.Up):
		w.scroll.Up()
	case key.Matches(msg, common.Keys.Down):
		w.scroll.Down(len(w.lines))
	case key.Matches(msg, common.Keys.Left):
		if w.selected > 0 {
			w.selectMessage(w.selected - 1)
		}
	case key.Matches(msg, common.Keys.Right):
		if w.selected >= len(w.messages)-1 {
			w.startReply()
		} else {
			w.selectMessage(w.selected + 1)
		}
	}
	return action.Action{}
}

func (w *Messages) updateReply(msg tea.KeyMsg) action.Action {
	switch {
	case key.Matches(msg, common.Keys.Back), key.Matches(msg, common.Keys.Left):
		w.stopReply()
	case key.Matches(msg, common.Keys.Submit):
		text := w.reply.Text()
		if text == "" {
			break
		}
		w.stopReply()
		return action.Submit(w.threadID, text)
	case key.Matches(msg, common.Keys.Editor):
		return action.Editor(w.reply.Text())
	case key.Matches(msg, common.Keys.Up):
		w.reply.Up()
	case key.Matches(msg, common.Keys.Down):
		w.reply.Down()
	case key.Matches(msg, common.Keys.Enter):
		w.reply.Newline()
	case key.Matches(msg, common.Keys.Backspace):
		w.reply.Backspace()
	case msg.Type == tea.KeySpace:
		w.reply.InsertChar(' ')
	case msg.Type == tea.KeyRunes && !msg.Alt:
		for _, r := range msg.Runes {
			w.reply.InsertChar(r)
		}
	}
	return action.Action{}
}

func (w *Messages) Resize(width, height int) {
	if width != w.width || w.lines == nil {
		w.width = width
		w.lines = w.wrapSelected(width - 2)
	}
	if w.reply != nil {
		w.reply.Resize(width)
		return
	}
	w.scroll.Recompute(len(w.lines), max(height-messageChrome, 0))
}

func (w *Messages) wrapSelected(width int) []string {
	if w.selected >= len(w.messages) {
		return []string{}
	}
	var out []string
	for _, l := range w.messages[w.selected].Lines() {
		out = append(out, common.Wrap(l, width)...)
	}
	if out == nil {
		out = []string{}
	}
	return out
}

func (w *Messages) View(width, height int) string {
	w.Resize(width, height)
	rows := max(height-messageChrome, 0)

	if w.reply != nil {
		lines := []string{"Author: " + common.AuthorStyle.Render(w.username), "Message:"}
		lines = append(lines, w.reply.Render(rows, w.focused)...)
		return common.Frame("Reply", lines, width, height, w.focused)
	}

	var author string
	if w.selected < len(w.messages) {
		author = w.messages[w.selected].AuthorName
	}
	lines := []string{"Author: " + common.AuthorStyle.Render(author), "Message:"}
	for i := w.scroll.Top; i < w.scroll.Bottom; i++ {
		row := common.ContentStyle.Render(w.lines[i])
		if w.focused && i == w.scroll.Selected {
			row = common.SelectedStyle.Render(w.lines[i])
		}
		lines = append(lines, row)
	}
	title := "No messages"
	if len(w.messages) > 0 {
		title = fmt.Sprintf("Message %d / %d", w.selected+1, len(w.messages))
	}
	return common.Frame(title, lines, width, height, w.focused)
}
