package summons

import "context"

// Filter narrows summons listings. Zero values mean "no filter".
type Filter struct {
	Type       Type
	Status     Status
	TeacherID  string
	GuardianID string
}

// Repository defines the storage contract for summonses.
type Repository interface {
	// Create stores a new summons with its participant sets.
	Create(ctx context.Context, s *Summons) error

	// GetByID returns a summons by ID.
	// Returns ErrSummonsNotFound if no such summons exists.
	GetByID(ctx context.Context, id string) (*Summons, error)

	// Update persists changes to an existing summons.
	// Returns ErrSummonsNotFound if no such summons exists.
	Update(ctx context.Context, s *Summons) error

	// List returns summonses matching the filter with pagination.
	List(ctx context.Context, filter Filter, limit, offset int) ([]*Summons, error)
}
