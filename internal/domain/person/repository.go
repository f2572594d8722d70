package person

import (
	"context"

	"github.com/academia-hub/academia-records-hub/internal/domain/shared"
)

// Repository defines the storage contract for people. Implementations
// live in infrastructure/persistence.
type Repository interface {
	// Create stores a new person.
	// Returns ErrEmailTaken if the email is already in use.
	Create(ctx context.Context, p *Person) error

	// GetByID returns a person by internal ID.
	// Returns ErrPersonNotFound if no such person exists.
	GetByID(ctx context.Context, id string) (*Person, error)

	// GetByEmail returns a person by normalized email.
	// Returns ErrPersonNotFound if no such person exists.
	GetByEmail(ctx context.Context, email shared.Email) (*Person, error)

	// Update persists changes to an existing person.
	// Returns ErrPersonNotFound if no such person exists.
	Update(ctx context.Context, p *Person) error

	// List returns people with pagination, optionally filtered by role.
	List(ctx context.Context, role Role, limit, offset int) ([]*Person, error)

	// ExistsByEmail checks whether any person uses the email.
	ExistsByEmail(ctx context.Context, email shared.Email) (bool, error)
}
