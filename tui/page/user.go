package page

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/borz-social/borz/domain"
	"github.com/borz-social/borz/tui/action"
	"github.com/borz-social/borz/tui/widget"
)

var userLayout = []int{30, 70}

// UserPage shows a profile. Focus cycles User, Bio.
type UserPage struct {
	userID string
	user   *widget.User
	bio    *widget.Bio
	active slot
}

// NewUserPage builds a page for u. The User widget starts focused.
func NewUserPage(u domain.User) *UserPage {
	p := &UserPage{
		userID: u.ID,
		user:   widget.NewUser(u),
		bio:    widget.NewBio(u.Bio),
		active: slotUser,
	}
	p.user.Focus()
	return p
}

func (p *UserPage) page() {}

func (p *UserPage) Kind() action.PageKind { return action.UserPage }

func (p *UserPage) Path() string { return "" }

// UserID returns the profile shown.
func (p *UserPage) UserID() string { return p.userID }

func (p *UserPage) widget(s slot) widget.Widget {
	switch s {
	case slotUser:
		return p.user
	case slotBio:
		return p.bio
	default:
		panic(illegal(action.UserPage, s))
	}
}

func (p *UserPage) next(s slot) slot {
	switch s {
	case slotUser:
		return slotBio
	case slotBio:
		return slotUser
	default:
		panic(illegal(action.UserPage, s))
	}
}

func (p *UserPage) Focused() widget.Widget { return p.widget(p.active) }

func (p *UserPage) Update(msg tea.KeyMsg) action.Action {
	return route(msg, &p.active, p.widget, p.next)
}

func (p *UserPage) widgets() []widget.Widget {
	return []widget.Widget{p.user, p.bio}
}

func (p *UserPage) Resize(width, height int) {
	resize(width, height, p.widgets(), userLayout...)
}

func (p *UserPage) View(width, height int) string {
	return render(width, height, p.widgets(), userLayout...)
}
