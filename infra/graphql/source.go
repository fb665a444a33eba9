package graphql

import "github.com/borz-social/borz/app"

var (
	_ app.DataSource     = (*Source)(nil)
	_ app.AccountService = (*accountService)(nil)
)

// Source bundles the group, thread and user services into one app.DataSource.
type Source struct {
	*groupService
	*threadService
	*userService
}

// NewSource creates a DataSource backed by client, which must carry tokens.
func NewSource(client *Client) *Source {
	return &Source{
		groupService:  NewGroupService(client),
		threadService: NewThreadService(client),
		userService:   NewUserService(client),
	}
}
