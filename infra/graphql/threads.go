package graphql

import (
	"context"
	"fmt"
	"strings"

	"github.com/borz-social/borz/domain"
)

// threadService implements app.ThreadService.
type threadService struct {
	client *Client
}

// NewThreadService creates a ThreadService backed by the GraphQL API.
func NewThreadService(client *Client) *threadService {
	return &threadService{client: client}
}

type gqlReply struct {
	Content string    `json:"content"`
	Author  gqlAuthor `json:"author"`
}

func (s *threadService) ThreadContent(ctx context.Context, threadID string) (domain.ThreadContent, error) {
	var data struct {
		Thread *struct {
			ID      string               `json:"id"`
			Title   string               `json:"title"`
			Content string               `json:"content"`
			Author  gqlAuthor            `json:"author"`
			Replies connection[gqlReply] `json:"replies"`
		} `json:"thread"`
	}
	if err := s.client.Query(ctx, "ThreadContentQuery", threadContentQuery, map[string]any{"id": threadID}, &data); err != nil {
		return domain.ThreadContent{}, fmt.Errorf("fetching thread: %w", err)
	}
	if data.Thread == nil {
		return domain.ThreadContent{}, fmt.Errorf("fetching thread %s: %w", threadID, domain.ErrNotFound)
	}

	th := data.Thread
	replies := th.Replies.nodes()
	messages := make([]domain.Message, 0, len(replies)+1)
	messages = append(messages, toMessage(gqlReply{Content: th.Content, Author: th.Author}))
	for _, r := range replies {
		messages = append(messages, toMessage(r))
	}
	return domain.ThreadContent{
		ID:       th.ID,
		Title:    sanitizeForTerminal(th.Title),
		Messages: messages,
	}, nil
}

func (s *threadService) Reply(ctx context.Context, threadID, content string) error {
	content = strings.TrimSpace(content)
	if content == "" {
		return domain.ErrEmptyReply
	}

	var data struct {
		ThreadUpdate mutationResult `json:"threadUpdate"`
	}
	vars := map[string]any{"id": threadID, "content": content}
	if err := s.client.Query(ctx, "ThreadUpdateMutation", threadUpdateMutation, vars, &data); err != nil {
		return fmt.Errorf("replying to thread: %w", err)
	}
	return data.ThreadUpdate.err("replying to thread")
}

func toMessage(r gqlReply) domain.Message {
	lines := strings.Split(r.Content, "\n")
	for i, l := range lines {
		lines[i] = sanitizeForTerminal(l)
	}
	return domain.Message{
		AuthorID:   r.Author.ID,
		AuthorName: sanitizeForTerminal(r.Author.Username),
		Content:    strings.Join(lines, "\n"),
	}
}
