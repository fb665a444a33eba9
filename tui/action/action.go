// Package action defines the deferred effects widgets hand back to the
// program after handling a key. Widgets mutate only their own state; the
// program applies the returned Action to the page stack and the network.
package action

import "fmt"

// Kind tags an Action.
type Kind int

const (
	None Kind = iota
	PopPage
	PushPage
	SubmitReply
	OpenEditor
)

func (k Kind) String() string {
	switch k {
	case None:
		return "none"
	case PopPage:
		return "pop"
	case PushPage:
		return "push"
	case SubmitReply:
		return "submit-reply"
	case OpenEditor:
		return "open-editor"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// PageKind names the page a PushPage action opens.
type PageKind int

const (
	GroupPage PageKind = iota
	ThreadPage
	UserPage
)

func (p PageKind) String() string {
	switch p {
	case GroupPage:
		return "group"
	case ThreadPage:
		return "thread"
	case UserPage:
		return "user"
	}
	return fmt.Sprintf("PageKind(%d)", int(p))
}

// Action is a one-shot effect. The zero value is None.
//
// PushPage uses Page, ID and Path. SubmitReply uses ID (the thread) and
// Text. OpenEditor uses Text as the editor's starting content.
type Action struct {
	Kind Kind
	Page PageKind
	ID   string
	Path string
	Text string
}

// Pop returns an action that closes the current page.
func Pop() Action { return Action{Kind: PopPage} }

// PushGroup opens the group nodeID, shown at path.
func PushGroup(nodeID, path string) Action {
	return Action{Kind: PushPage, Page: GroupPage, ID: nodeID, Path: path}
}

// PushThread opens the thread threadID, shown at path.
func PushThread(threadID, path string) Action {
	return Action{Kind: PushPage, Page: ThreadPage, ID: threadID, Path: path}
}

// PushUser opens the profile of userID.
func PushUser(userID string) Action {
	return Action{Kind: PushPage, Page: UserPage, ID: userID}
}

// Submit posts text as a reply to threadID.
func Submit(threadID, text string) Action {
	return Action{Kind: SubmitReply, ID: threadID, Text: text}
}

// Editor opens $EDITOR seeded with text.
func Editor(text string) Action {
	return Action{Kind: OpenEditor, Text: text}
}

// IsNone reports whether a has no effect.
func (a Action) IsNone() bool { return a.Kind == None }

func (a Action) String() string {
	switch a.Kind {
	case PushPage:
		return fmt.Sprintf("push %s %s %q", a.Page, a.ID, a.Path)
	case SubmitReply:
		return fmt.Sprintf("submit-reply %s (%d bytes)", a.ID, len(a.Text))
	}
	return a.Kind.String()
}
