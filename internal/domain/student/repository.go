package student

import "context"

// Repository defines the storage contract for students. Group membership
// counts are always derived through CountByGroup rather than cached on
// the group record, so capacity checks never see a stale count.
type Repository interface {
	// Create stores a new student.
	Create(ctx context.Context, s *Student) error

	// GetByID returns a student by ID.
	// Returns ErrStudentNotFound if no such student exists.
	GetByID(ctx context.Context, id string) (*Student, error)

	// GetByIDs returns the students for the given ids, in input order.
	// Returns ErrStudentNotFound if any id does not resolve.
	GetByIDs(ctx context.Context, ids []string) ([]*Student, error)

	// Update persists changes to an existing student.
	// Returns ErrStudentNotFound if no such student exists.
	Update(ctx context.Context, s *Student) error

	// ListByGroup returns the students assigned to a group.
	ListByGroup(ctx context.Context, groupID string) ([]*Student, error)

	// ListByApplicant returns the prospect students of an application.
	ListByApplicant(ctx context.Context, applicantID string) ([]*Student, error)

	// ListByGuardian returns the students in a guardian's care.
	ListByGuardian(ctx context.Context, guardianID string) ([]*Student, error)

	// CountByGroup returns the number of students assigned to a group.
	CountByGroup(ctx context.Context, groupID string) (int, error)
}
