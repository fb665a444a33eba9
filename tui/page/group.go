package page

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/borz-social/borz/domain"
	"github.com/borz-social/borz/tui/action"
	"github.com/borz-social/borz/tui/widget"
)

var groupLayout = []int{10, 60, 20, 10}

// GroupPage shows a group: its location, threads, subgroups and the
// account bar. Focus cycles Location, Threads, Subgroups, Account.
type GroupPage struct {
	nodeID    string
	location  *widget.Location
	threads   *widget.Threads
	subgroups *widget.Subgroups
	account   *widget.Account
	active    slot
}

// NewGroupPage builds a page for the group nodeID at path. Location starts
// focused.
func NewGroupPage(nodeID, path, username string, threads []domain.Thread, subgroups []domain.Group) *GroupPage {
	p := &GroupPage{
		nodeID:    nodeID,
		location:  widget.NewLocation(path),
		threads:   widget.NewThreads(path, threads),
		subgroups: widget.NewSubgroups(path, subgroups),
		account:   widget.NewAccount(username),
		active:    slotLocation,
	}
	p.location.Focus()
	return p
}

func (p *GroupPage) page() {}

func (p *GroupPage) Kind() action.PageKind { return action.GroupPage }

func (p *GroupPage) Path() string { return p.location.Path() }

// NodeID returns the group shown.
func (p *GroupPage) NodeID() string { return p.nodeID }

func (p *GroupPage) widget(s slot) widget.Widget {
	switch s {
	case slotLocation:
		return p.location
	case slotThreads:
		return p.threads
	case slotSubgroups:
		return p.subgroups
	case slotAccount:
		return p.account
	default:
		panic(illegal(action.GroupPage, s))
	}
}

func (p *GroupPage) next(s slot) slot {
	switch s {
	case slotLocation:
		return slotThreads
	case slotThreads:
		return slotSubgroups
	case slotSubgroups:
		return slotAccount
	case slotAccount:
		return slotLocation
	default:
		panic(illegal(action.GroupPage, s))
	}
}

func (p *GroupPage) Focused() widget.Widget { return p.widget(p.active) }

func (p *GroupPage) Update(msg tea.KeyMsg) action.Action {
	return route(msg, &p.active, p.widget, p.next)
}

func (p *GroupPage) widgets() []widget.Widget {
	return []widget.Widget{p.location, p.threads, p.subgroups, p.account}
}

func (p *GroupPage) Resize(width, height int) {
	resize(width, height, p.widgets(), groupLayout...)
}

func (p *GroupPage) View(width, height int) string {
	return render(width, height, p.widgets(), groupLayout...)
}
