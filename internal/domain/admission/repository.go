package admission

import "context"

// Repository defines the storage contract for applicants.
type Repository interface {
	// Create stores a new applicant.
	Create(ctx context.Context, a *Applicant) error

	// GetByID returns an applicant by ID.
	// Returns ErrApplicantNotFound if no such applicant exists.
	GetByID(ctx context.Context, id string) (*Applicant, error)

	// GetByPersonID returns the applicant attached to a person account.
	// Returns ErrApplicantNotFound if the person has no application.
	GetByPersonID(ctx context.Context, personID string) (*Applicant, error)

	// Update persists changes to an existing applicant.
	// Returns ErrApplicantNotFound if no such applicant exists.
	Update(ctx context.Context, a *Applicant) error

	// List returns applicants with pagination, optionally filtered by state.
	List(ctx context.Context, state State, limit, offset int) ([]*Applicant, error)
}

// FormRepository defines the storage contract for pre-registration forms.
type FormRepository interface {
	// GetByApplicantID returns the form for an applicant.
	// Returns ErrFormNotFound if none has been submitted yet.
	GetByApplicantID(ctx context.Context, applicantID string) (*Form, error)

	// Save creates or updates the form for its applicant.
	Save(ctx context.Context, f *Form) error
}
