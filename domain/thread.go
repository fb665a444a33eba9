package domain

import "strings"

// Message is a single post in a thread: the opening post or a reply.
type Message struct {
	AuthorID   string
	AuthorName string
	Content    string
}

// Lines splits the message content into display lines.
// An empty message still yields one (empty) line.
func (m Message) Lines() []string {
	return strings.Split(strings.ReplaceAll(m.Content, "\r\n", "\n"), "\n")
}

// ThreadContent is a thread with every message in posting order.
type ThreadContent struct {
	ID       string
	Title    string
	Messages []Message
}
