package assessment

import (
	"context"

	"github.com/academia-hub/academia-records-hub/internal/domain/shared"
)

// GradeRepository defines the storage contract for grades. Listing
// preserves insertion order; there is no re-sort contract.
type GradeRepository interface {
	// Create stores a new grade.
	Create(ctx context.Context, g *Grade) error

	// GetByID returns a grade by ID.
	// Returns ErrGradeNotFound if no such grade exists.
	GetByID(ctx context.Context, id string) (*Grade, error)

	// Update persists changes to an existing grade.
	// Returns ErrGradeNotFound if no such grade exists.
	Update(ctx context.Context, g *Grade) error

	// ListByStudent returns all grades of a student in insertion order.
	ListByStudent(ctx context.Context, studentID string) ([]*Grade, error)

	// ListByStudentAndPeriod returns the grades of a student for one
	// period, in insertion order.
	ListByStudentAndPeriod(ctx context.Context, studentID string, period shared.Period) ([]*Grade, error)
}

// AchievementRepository defines the storage contract for rubric items.
type AchievementRepository interface {
	// Create stores a new achievement.
	Create(ctx context.Context, a *Achievement) error

	// GetByID returns an achievement by ID.
	// Returns ErrAchievementNotFound if no such achievement exists.
	GetByID(ctx context.Context, id string) (*Achievement, error)

	// Update persists changes to an existing achievement.
	Update(ctx context.Context, a *Achievement) error

	// Delete removes an achievement.
	// Returns ErrAchievementNotFound if no such achievement exists.
	Delete(ctx context.Context, id string) error

	// List returns achievements, optionally filtered by category ("" for all).
	List(ctx context.Context, category Category) ([]*Achievement, error)
}

// ObservationRepository defines the storage contract for observations.
type ObservationRepository interface {
	// Create stores a new observation.
	Create(ctx context.Context, o *Observation) error

	// ListByStudent returns a student's observations, newest first.
	ListByStudent(ctx context.Context, studentID string) ([]*Observation, error)

	// ListByTeacher returns a teacher's observations, newest first.
	ListByTeacher(ctx context.Context, teacherID string) ([]*Observation, error)
}
