package graphql

import (
	"context"
	"fmt"
	"time"

	"github.com/borz-social/borz/domain"
)

// userService implements app.UserService.
type userService struct {
	client *Client
}

// NewUserService creates a UserService backed by the GraphQL API.
func NewUserService(client *Client) *userService {
	return &userService{client: client}
}

func (s *userService) User(ctx context.Context, userID string) (domain.User, error) {
	var data struct {
		User *struct {
			ID         string `json:"id"`
			Username   string `json:"username"`
			DateJoined string `json:"dateJoined"`
			Bio        string `json:"bio"`
		} `json:"user"`
	}
	if err := s.client.Query(ctx, "UserQuery", userQuery, map[string]any{"id": userID}, &data); err != nil {
		return domain.User{}, fmt.Errorf("fetching user: %w", err)
	}
	if data.User == nil {
		return domain.User{}, fmt.Errorf("fetching user %s: %w", userID, domain.ErrNotFound)
	}

	joined, err := time.Parse(time.RFC3339, data.User.DateJoined)
	if err != nil && data.User.DateJoined != "" {
		s.client.log.Debug("unparsed join date", "user", data.User.ID, "date_joined", data.User.DateJoined, "error", err)
	}
	return domain.User{
		ID:       data.User.ID,
		Username: sanitizeForTerminal(data.User.Username),
		JoinedAt: joined,
		Bio:      sanitizeForTerminal(data.User.Bio),
	}, nil
}
