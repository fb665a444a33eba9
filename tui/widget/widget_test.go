package widget

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/borz-social/borz/domain"
	"github.com/borz-social/borz/tui/action"
)

var (
	keyUp    = tea.KeyMsg{Type: tea.KeyUp}
	keyDown  = tea.KeyMsg{Type: tea.KeyDown}
	keyLeft  = tea.KeyMsg{Type: tea.KeyLeft}
	keyRight = tea.KeyMsg{Type: tea.KeyRight}
	keyEnter = tea.KeyMsg{Type: tea.KeyEnter}
	keyEsc   = tea.KeyMsg{Type: tea.KeyEsc}
	keyBksp  = tea.KeyMsg{Type: tea.KeyBackspace}
	keyIns   = tea.KeyMsg{Type: tea.KeyInsert}
	keyCtrlE = tea.KeyMsg{Type: tea.KeyCtrlE}
	keySpace = tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func assertSize(t *testing.T, out string, width, height int) {
	t.Helper()
	lines := strings.Split(out, "\n")
	require.Len(t, lines, height)
	for i, l := range lines {
		assert.Equal(t, width, ansi.StringWidth(l), "line %d: %q", i, ansi.Strip(l))
	}
}

func sampleThreads() []domain.Thread {
	return []domain.Thread{
		{ID: "t1", Title: "Welcome", AuthorID: "u1", AuthorName: "alice"},
		{ID: "t2", Title: "Rules", AuthorID: "u2", AuthorName: "bob"},
		{ID: "t3", Title: "Off topic", AuthorID: "u3", AuthorName: "carol"},
	}
}

func TestUnfocusedWidgetsIgnoreInput(t *testing.T) {
	widgets := []Widget{
		NewLocation("/Universe"),
		NewAccount("alice"),
		NewThreads("/Universe", sampleThreads()),
		NewSubgroups("/Universe", []domain.Group{{ID: "g", Name: "a"}}),
		NewMessages("t1", "alice", []domain.Message{{Content: "hi"}}),
		NewUser(domain.User{Username: "alice"}),
		NewBio("hello"),
	}
	for _, w := range widgets {
		w.Resize(40, 10)
		for _, k := range []tea.KeyMsg{keyEsc, keyEnter, keyDown, keyRight} {
			assert.True(t, w.Update(k).IsNone(), "%T handled %v while blurred", w, k)
		}
		w.Focus()
		assert.Equal(t, action.PopPage, w.Update(keyEsc).Kind, "%T should pop on esc", w)
		w.Blur()
		assert.False(t, w.Focused())
	}
}

func TestWidgetsRenderExactSize(t *testing.T) {
	long := strings.Repeat("word ", 40)
	widgets := []Widget{
		NewLocation("/Universe/" + long),
		NewAccount("alice"),
		NewThreads("/Universe", append(sampleThreads(), domain.Thread{Title: long, AuthorName: long})),
		NewSubgroups("/Universe", []domain.Group{{Name: long}}),
		NewMessages("t1", "alice", []domain.Message{{AuthorName: "bob", Content: long + "\n" + long}}),
		NewUser(domain.User{Username: "alice", JoinedAt: time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)}),
		NewBio(long),
	}
	for _, w := range widgets {
		w.Focus()
		assertSize(t, w.View(37, 6), 37, 6)
	}
}

func TestThreads_EnterOpensThreadOrAuthor(t *testing.T) {
	w := NewThreads("/Universe/Science", sampleThreads())
	w.Focus()
	w.Resize(80, 10)

	w.Update(keyDown)
	got := w.Update(keyEnter)
	assert.Equal(t, action.PushThread("t2", "/Universe/Science/Rules"), got)

	w.Update(keyRight)
	assert.False(t, w.OnTitles())
	assert.Equal(t, action.PushUser("u2"), w.Update(keyEnter))

	w.Update(keyLeft)
	assert.True(t, w.OnTitles())
}

func TestThreads_SelectionIsBounded(t *testing.T) {
	w := NewThreads("/Universe", sampleThreads())
	w.Focus()
	w.Resize(80, 4) // two visible rows

	for range 10 {
		w.Update(keyDown)
	}
	assert.Equal(t, 2, w.Selected())
	assert.Equal(t, 1, w.scroll.Top)

	for range 10 {
		w.Update(keyUp)
	}
	assert.Equal(t, 0, w.Selected())
	assert.Equal(t, 0, w.scroll.Top)
}

func TestThreads_EmptyListEnterIsNone(t *testing.T) {
	w := NewThreads("/Universe", nil)
	w.Focus()
	w.Resize(80, 10)
	w.Update(keyDown)
	assert.True(t, w.Update(keyEnter).IsNone())
	assertSize(t, w.View(40, 5), 40, 5)
}

func TestThreads_ViewMarksSelectedColumn(t *testing.T) {
	w := NewThreads("/Universe", sampleThreads())
	w.Focus()
	out := ansi.Strip(w.View(60, 6))
	assert.Contains(t, out, "Threads")
	assert.Contains(t, out, "Authors")
	assert.Contains(t, out, "Welcome")
	assert.Contains(t, out, "alice")
}

func TestSubgroups_DownDownEnterOpensThirdChild(t *testing.T) {
	groups := []domain.Group{{ID: "ga", Name: "a"}, {ID: "gb", Name: "b"}, {ID: "gc", Name: "c"}}
	w := NewSubgroups("/Universe/x", groups)
	w.Focus()
	w.Resize(40, 10)

	w.Update(keyDown)
	w.Update(keyDown)
	assert.Equal(t, action.PushGroup("gc", "/Universe/x/c"), w.Update(keyEnter))
}

func TestSubgroups_RowsAreLeftTruncated(t *testing.T) {
	w := NewSubgroups("/Universe/Science/Physics", []domain.Group{{ID: "q", Name: "Quantum"}})
	out := ansi.Strip(w.View(20, 3))
	lines := strings.Split(out, "\n")
	require.Len(t, lines, 3)
	assert.Contains(t, lines[1], "...")
	assert.Contains(t, lines[1], "Quantum")
}

func threadMessages() []domain.Message {
	return []domain.Message{
		{AuthorName: "alice", Content: "opening post\nsecond line"},
		{AuthorName: "bob", Content: "first reply"},
	}
}

func TestMessages_BrowseAndEnterReply(t *testing.T) {
	w := NewMessages("t1", "carol", threadMessages())
	w.Focus()
	w.Resize(40, 10)

	assert.Contains(t, ansi.Strip(w.View(40, 10)), "Message 1 / 2")
	w.Update(keyRight)
	assert.Equal(t, 1, w.SelectedMessage())
	assert.Contains(t, ansi.Strip(w.View(40, 10)), "bob")

	w.Update(keyLeft)
	assert.Equal(t, 0, w.SelectedMessage())
	w.Update(keyLeft)
	assert.Equal(t, 0, w.SelectedMessage())

	w.Update(keyRight)
	w.Update(keyRight)
	require.True(t, w.Editing())
	out := ansi.Strip(w.View(40, 10))
	assert.Contains(t, out, "Reply")
	assert.Contains(t, out, "carol")
}

func TestMessages_TypeAndSubmit(t *testing.T) {
	w := NewMessages("t1", "carol", threadMessages())
	w.Focus()
	w.Resize(40, 10)
	w.Update(keyRight)
	w.Update(keyRight)
	require.True(t, w.Editing())

	w.Update(runes("hello"))
	w.Update(keyEnter)
	w.Update(runes("wor"))
	w.Update(keySpace)
	w.Update(runes("ld"))

	got := w.Update(keyIns)
	assert.Equal(t, action.Submit("t1", "hello\nwor ld"), got)
	assert.False(t, w.Editing())
	assert.Equal(t, 1, w.SelectedMessage())
}

func TestMessages_EmptySubmitIsNone(t *testing.T) {
	w := NewMessages("t1", "carol", threadMessages()[:1])
	w.Focus()
	w.Update(keyRight)
	require.True(t, w.Editing())
	w.Update(keySpace)
	assert.True(t, w.Update(keyIns).IsNone())
	assert.True(t, w.Editing())
}

func TestMessages_BackspaceAndLeaveReply(t *testing.T) {
	w := NewMessages("t1", "carol", threadMessages())
	w.Focus()
	w.SetDraft("one\ntwo")
	require.True(t, w.Editing())

	w.Update(keyBksp)
	assert.Equal(t, []string{"one"}, w.Reply().Rows())

	assert.True(t, w.Update(keyEsc).IsNone(), "esc leaves reply mode instead of popping")
	assert.False(t, w.Editing())
	assert.Equal(t, 1, w.SelectedMessage())
	assert.Equal(t, action.PopPage, w.Update(keyEsc).Kind)
}

func TestMessages_CtrlEOpensEditorWithDraft(t *testing.T) {
	w := NewMessages("t1", "carol", threadMessages())
	w.Focus()
	w.SetDraft("draft text")
	assert.Equal(t, action.Editor("draft text"), w.Update(keyCtrlE))
}

func TestMessages_ScrollHeightLeavesRoomForHeader(t *testing.T) {
	var content []string
	for range 20 {
		content = append(content, "line")
	}
	w := NewMessages("t1", "carol", []domain.Message{{Content: strings.Join(content, "\n")}})
	w.Focus()
	w.Resize(40, 10)
	assert.Equal(t, 6, w.scroll.Height())

	for range 30 {
		w.Update(keyDown)
	}
	assert.Equal(t, 19, w.scroll.Selected)
	assert.Equal(t, 20, w.scroll.Bottom)
}

func TestMessages_ResizeTruncatesReply(t *testing.T) {
	w := NewMessages("t1", "carol", threadMessages())
	w.Focus()
	w.SetDraft("abcdefghij")
	w.Resize(6, 10)
	assert.Equal(t, []string{"abcd"}, w.Reply().Rows())
}

func TestMessages_EmptyThreadTitle(t *testing.T) {
	w := NewMessages("t1", "carol", nil)
	out := ansi.Strip(w.View(40, 8))
	assert.Contains(t, out, "No messages")
	assert.NotContains(t, out, "1 / 0")
	assertSize(t, w.View(40, 8), 40, 8)

	out = ansi.Strip(NewMessages("t1", "carol", threadMessages()).View(40, 8))
	assert.Contains(t, out, "Message 1 / ")
}

func TestAccount_ShowsUsername(t *testing.T) {
	assert.Contains(t, ansi.Strip(NewAccount("alice").View(60, 3)), "You are currently logged in as alice")
}

func TestUser_ShowsNameAndJoinDate(t *testing.T) {
	w := NewUser(domain.User{Username: "alice", JoinedAt: time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)})
	out := ansi.Strip(w.View(40, 5))
	assert.Contains(t, out, "User alice")
	assert.Contains(t, out, "Joined ")
	assert.Contains(t, ansi.Strip(NewUser(domain.User{}).View(40, 5)), "unknown")
}

func TestBio_WrapsAndScrolls(t *testing.T) {
	w := NewBio("one two three four five six seven eight nine ten")
	w.Focus()
	w.Resize(12, 4)
	require.Greater(t, len(w.lines), 2)
	for range 20 {
		w.Update(keyDown)
	}
	assert.Equal(t, len(w.lines)-1, w.scroll.Selected)
	assertSize(t, w.View(12, 4), 12, 4)
}
