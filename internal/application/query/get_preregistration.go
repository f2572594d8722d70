package query

import (
	"context"
	"time"

	"github.com/academia-hub/academia-records-hub/internal/domain/admission"
	"github.com/academia-hub/academia-records-hub/internal/domain/shared"
)

// ══════════════════════════════════════════════════════════════════════════════
// GET PRE-REGISTRATION QUERY
// Returns the pre-registration form submitted for an applicant, combined
// with the applicant's current admission state.
// ══════════════════════════════════════════════════════════════════════════════

// GetPreregistrationQuery contains the lookup parameters.
type GetPreregistrationQuery struct {
	// ApplicantID - the application the form belongs to.
	ApplicantID string
}

// Validate checks the query parameters.
func (q *GetPreregistrationQuery) Validate() error {
	if q.ApplicantID == "" {
		return shared.NewDomainError("query", "GetPreregistration", shared.ErrEmptyValue, "applicant id is required")
	}
	return nil
}

// PreregistrationDTO is the read model of a pre-registration form.
type PreregistrationDTO struct {
	ID          string `json:"id"`
	ApplicantID string `json:"applicant_id"`

	GuardianName    string `json:"guardian_name"`
	GuardianSurname string `json:"guardian_surname,omitempty"`
	GuardianPhone   string `json:"guardian_phone,omitempty"`
	GuardianEmail   string `json:"guardian_email"`

	ChildName     string    `json:"child_name"`
	ChildSurname  string    `json:"child_surname,omitempty"`
	DesiredGrade  string    `json:"desired_grade,omitempty"`
	BirthDate     time.Time `json:"birth_date"`
	CivilRegistry string    `json:"civil_registry,omitempty"`

	Allergies         string `json:"allergies,omitempty"`
	MedicalConditions string `json:"medical_conditions,omitempty"`
	Medications       string `json:"medications,omitempty"`

	SubmittedAt time.Time `json:"submitted_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// GetPreregistrationResult contains the form and the admission state.
type GetPreregistrationResult struct {
	Form           PreregistrationDTO `json:"form"`
	AdmissionState string             `json:"admission_state"`
}

// GetPreregistrationHandler handles form lookups.
type GetPreregistrationHandler struct {
	applicantRepo admission.Repository
	formRepo      admission.FormRepository
}

// NewGetPreregistrationHandler creates a new GetPreregistrationHandler.
func NewGetPreregistrationHandler(applicantRepo admission.Repository, formRepo admission.FormRepository) *GetPreregistrationHandler {
	return &GetPreregistrationHandler{applicantRepo: applicantRepo, formRepo: formRepo}
}

// Handle executes the query.
func (h *GetPreregistrationHandler) Handle(ctx context.Context, q GetPreregistrationQuery) (*GetPreregistrationResult, error) {
	if err := q.Validate(); err != nil {
		return nil, err
	}

	applicant, err := h.applicantRepo.GetByID(ctx, q.ApplicantID)
	if err != nil {
		return nil, err
	}

	form, err := h.formRepo.GetByApplicantID(ctx, q.ApplicantID)
	if err != nil {
		return nil, err
	}

	return &GetPreregistrationResult{
		Form: PreregistrationDTO{
			ID:                form.ID,
			ApplicantID:       form.ApplicantID,
			GuardianName:      form.GuardianName,
			GuardianSurname:   form.GuardianSurname,
			GuardianPhone:     form.GuardianPhone,
			GuardianEmail:     form.GuardianEmail.String(),
			ChildName:         form.ChildName,
			ChildSurname:      form.ChildSurname,
			DesiredGrade:      form.DesiredGrade.String(),
			BirthDate:         form.BirthDate,
			CivilRegistry:     form.CivilRegistry,
			Allergies:         form.Allergies,
			MedicalConditions: form.MedicalConditions,
			Medications:       form.Medications,
			SubmittedAt:       form.CreatedAt,
			UpdatedAt:         form.UpdatedAt,
		},
		AdmissionState: string(applicant.State),
	}, nil
}
