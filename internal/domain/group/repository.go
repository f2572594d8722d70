package group

import "context"

// Repository defines the storage contract for groups.
//
// GetByIDForUpdate exists for the capacity-sensitive operations: adding
// or assigning students and confirming a group must run inside a storage
// transaction holding a row lock on the group, so two concurrent calls
// cannot jointly exceed capacity (check-then-act race).
type Repository interface {
	// Create stores a new group.
	Create(ctx context.Context, g *Group) error

	// GetByID returns a group by ID.
	// Returns ErrGroupNotFound if no such group exists.
	GetByID(ctx context.Context, id string) (*Group, error)

	// GetByIDForUpdate returns a group by ID with a pessimistic row lock
	// held for the remainder of the enclosing transaction.
	GetByIDForUpdate(ctx context.Context, id string) (*Group, error)

	// Update persists changes to an existing group.
	// Returns ErrGroupNotFound if no such group exists.
	Update(ctx context.Context, g *Group) error

	// List returns groups with pagination, optionally filtered by
	// lifecycle state ("" for all) and teacher ("" for all).
	List(ctx context.Context, lifecycle Lifecycle, teacherID string, limit, offset int) ([]*Group, error)
}
