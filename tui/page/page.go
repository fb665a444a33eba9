// Package page composes widgets into full-screen pages and keeps the stack
// of pages the user has navigated through.
package page

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/borz-social/borz/tui/action"
	"github.com/borz-social/borz/tui/common"
	"github.com/borz-social/borz/tui/widget"
)

// Page is one screen. The set of implementations is closed: *GroupPage,
// *ThreadPage and *UserPage.
type Page interface {
	Kind() action.PageKind

	// Path is the location shown for the page. Empty for user pages.
	Path() string

	// Update cycles focus on Tab and hands every other key to the focused
	// widget, returning that widget's action.
	Update(msg tea.KeyMsg) action.Action

	// Resize fits every widget to a screen of width x height.
	Resize(width, height int)

	View(width, height int) string

	// Focused returns the focused widget.
	Focused() widget.Widget

	page()
}

// slot names a widget position on a page.
type slot int

const (
	slotLocation slot = iota
	slotThreads
	slotSubgroups
	slotAccount
	slotMessages
	slotUser
	slotBio
)

func (s slot) String() string {
	switch s {
	case slotLocation:
		return "location"
	case slotThreads:
		return "threads"
	case slotSubgroups:
		return "subgroups"
	case slotAccount:
		return "account"
	case slotMessages:
		return "messages"
	case slotUser:
		return "user"
	case slotBio:
		return "bio"
	}
	return fmt.Sprintf("slot(%d)", int(s))
}

func illegal(kind action.PageKind, s slot) string {
	return fmt.Sprintf("page: %s page has no %s widget", kind, s)
}

// route applies msg to the page: Tab moves focus along next, anything else
// goes to the focused widget.
func route(msg tea.KeyMsg, active *slot, lookup func(slot) widget.Widget, next func(slot) slot) action.Action {
	if key.Matches(msg, common.Keys.Cycle) {
		from := *active
		to := next(from)
		lookup(from).Blur()
		lookup(to).Focus()
		*active = to
		return action.Action{}
	}
	return lookup(*active).Update(msg)
}

// layout splits height among widgets by percent, inside a one-cell margin.
// It returns the inner width and each widget's height.
func layout(width, height int, percents ...int) (int, []int) {
	innerW := max(width-2, 0)
	innerH := max(height-2, 0)
	heights := make([]int, len(percents))
	used, largest := 0, 0
	for i, p := range percents {
		heights[i] = innerH * p / 100
		used += heights[i]
		if p > percents[largest] {
			largest = i
		}
	}
	if len(heights) > 0 {
		heights[largest] += innerH - used
	}
	return innerW, heights
}

func render(width, height int, widgets []widget.Widget, percents ...int) string {
	innerW, heights := layout(width, height, percents...)
	parts := make([]string, 0, len(widgets))
	for i, w := range widgets {
		if heights[i] == 0 {
			continue
		}
		parts = append(parts, w.View(innerW, heights[i]))
	}
	body := lipgloss.JoinVertical(lipgloss.Left, parts...)
	return lipgloss.NewStyle().Padding(1).Render(body)
}

func resize(width, height int, widgets []widget.Widget, percents ...int) {
	innerW, heights := layout(width, height, percents...)
	for i, w := range widgets {
		w.Resize(innerW, heights[i])
	}
}
