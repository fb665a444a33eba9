package app

import (
	"context"

	"github.com/borz-social/borz/domain"
)

// GroupService lists the children of a node in the group tree.
type GroupService interface {
	// Subgroups returns the child groups of nodeID.
	Subgroups(ctx context.Context, nodeID string) ([]domain.Group, error)

	// Threads returns the threads posted directly in nodeID.
	Threads(ctx context.Context, nodeID string) ([]domain.Thread, error)
}
