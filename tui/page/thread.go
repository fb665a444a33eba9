package page

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/borz-social/borz/domain"
	"github.com/borz-social/borz/tui/action"
	"github.com/borz-social/borz/tui/widget"
)

var threadLayout = []int{10, 80, 10}

// ThreadPage shows a thread's messages and the reply buffer. Focus cycles
// Location, Messages, Account.
type ThreadPage struct {
	threadID string
	title    string
	username string
	location *widget.Location
	messages *widget.Messages
	account  *widget.Account
	active   slot
}

// NewThreadPage builds a page for content at path. Location starts focused.
func NewThreadPage(path, username string, content domain.ThreadContent) *ThreadPage {
	p := &ThreadPage{
		threadID: content.ID,
		title:    content.Title,
		username: username,
		location: widget.NewLocation(path),
		messages: widget.NewMessages(content.ID, username, content.Messages),
		account:  widget.NewAccount(username),
		active:   slotLocation,
	}
	p.location.Focus()
	return p
}

func (p *ThreadPage) page() {}

func (p *ThreadPage) Kind() action.PageKind { return action.ThreadPage }

func (p *ThreadPage) Path() string { return p.location.Path() }

// ThreadID returns the thread shown.
func (p *ThreadPage) ThreadID() string { return p.threadID }

// Title returns the thread's title.
func (p *ThreadPage) Title() string { return p.title }

// Messages returns the messages widget.
func (p *ThreadPage) Messages() *widget.Messages { return p.messages }

// Refreshed returns a fresh page for content that keeps this page's path
// and focus. Used after a reply is posted.
func (p *ThreadPage) Refreshed(content domain.ThreadContent) *ThreadPage {
	n := NewThreadPage(p.Path(), p.username, content)
	n.location.Blur()
	n.active = p.active
	n.widget(n.active).Focus()
	return n
}

func (p *ThreadPage) widget(s slot) widget.Widget {
	switch s {
	case slotLocation:
		return p.location
	case slotMessages:
		return p.messages
	case slotAccount:
		return p.account
	default:
		panic(illegal(action.ThreadPage, s))
	}
}

func (p *ThreadPage) next(s slot) slot {
	switch s {
	case slotLocation:
		return slotMessages
	case slotMessages:
		return slotAccount
	case slotAccount:
		return slotLocation
	default:
		panic(illegal(action.ThreadPage, s))
	}
}

func (p *ThreadPage) Focused() widget.Widget { return p.widget(p.active) }

func (p *ThreadPage) Update(msg tea.KeyMsg) action.Action {
	return route(msg, &p.active, p.widget, p.next)
}

func (p *ThreadPage) widgets() []widget.Widget {
	return []widget.Widget{p.location, p.messages, p.account}
}

func (p *ThreadPage) Resize(width, height int) {
	resize(width, height, p.widgets(), threadLayout...)
}

func (p *ThreadPage) View(width, height int) string {
	return render(width, height, p.widgets(), threadLayout...)
}
