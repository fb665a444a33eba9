package app

import (
	"context"

	"github.com/borz-social/borz/domain"
)

// ThreadService reads threads and posts replies to them.
type ThreadService interface {
	// ThreadContent returns a thread with all of its messages.
	ThreadContent(ctx context.Context, threadID string) (domain.ThreadContent, error)

	// Reply appends a message to a thread.
	Reply(ctx context.Context, threadID, content string) error
}
