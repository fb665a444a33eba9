package graphql

import (
	"context"
	"fmt"

	"github.com/borz-social/borz/domain"
)

// groupService implements app.GroupService.
type groupService struct {
	client *Client
}

// NewGroupService creates a GroupService backed by the GraphQL API.
func NewGroupService(client *Client) *groupService {
	return &groupService{client: client}
}

type gqlAuthor struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}

type gqlGroup struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type gqlThread struct {
	ID     string    `json:"id"`
	Title  string    `json:"title"`
	Author gqlAuthor `json:"author"`
}

func (s *groupService) Subgroups(ctx context.Context, nodeID string) ([]domain.Group, error) {
	var data struct {
		Subgroup *struct {
			ChildGroup connection[gqlGroup] `json:"childGroup"`
		} `json:"subgroup"`
	}
	if err := s.client.Query(ctx, "SubgroupsQuery", subgroupsQuery, map[string]any{"id": nodeID}, &data); err != nil {
		return nil, fmt.Errorf("fetching subgroups: %w", err)
	}
	if data.Subgroup == nil {
		return nil, fmt.Errorf("fetching subgroups of %s: %w", nodeID, domain.ErrNotFound)
	}

	nodes := data.Subgroup.ChildGroup.nodes()
	groups := make([]domain.Group, 0, len(nodes))
	for _, n := range nodes {
		groups = append(groups, domain.Group{ID: n.ID, Name: sanitizeForTerminal(n.Name)})
	}
	return groups, nil
}

func (s *groupService) Threads(ctx context.Context, nodeID string) ([]domain.Thread, error) {
	var data struct {
		Subgroup *struct {
			ThreadSet connection[gqlThread] `json:"threadSet"`
		} `json:"subgroup"`
	}
	if err := s.client.Query(ctx, "ThreadsQuery", threadsQuery, map[string]any{"id": nodeID}, &data); err != nil {
		return nil, fmt.Errorf("fetching threads: %w", err)
	}
	if data.Subgroup == nil {
		return nil, fmt.Errorf("fetching threads of %s: %w", nodeID, domain.ErrNotFound)
	}

	nodes := data.Subgroup.ThreadSet.nodes()
	threads := make([]domain.Thread, 0, len(nodes))
	for _, n := range nodes {
		threads = append(threads, domain.Thread{
			ID:         n.ID,
			Title:      sanitizeForTerminal(n.Title),
			AuthorID:   n.Author.ID,
			AuthorName: sanitizeForTerminal(n.Author.Username),
		})
	}
	return threads, nil
}
