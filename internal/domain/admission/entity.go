// Package admission contains the applicant admission pipeline: the
// admission state machine and the public pre-registration form.
package admission

import (
	"errors"
	"strings"
	"time"

	"github.com/academia-hub/academia-records-hub/internal/domain/shared"
)

// ══════════════════════════════════════════════════════════════════════════════
// ENUMS
// ══════════════════════════════════════════════════════════════════════════════

// State is the admission state of an applicant.
type State string

const (
	// StateUnreviewed - freshly created, nobody has looked at the file yet.
	StateUnreviewed State = "unreviewed"
	// StateReviewed - an administrator has reviewed the file.
	StateReviewed State = "reviewed"
	// StateAwaitingInterview - an interview has been scheduled.
	StateAwaitingInterview State = "awaiting_interview"
	// StateApproved - admission granted.
	StateApproved State = "approved"
	// StateRejected - admission denied.
	StateRejected State = "rejected"
)

// IsValid checks that the state is one of the five recognized values.
func (s State) IsValid() bool {
	switch s {
	case StateUnreviewed, StateReviewed, StateAwaitingInterview, StateApproved, StateRejected:
		return true
	default:
		return false
	}
}

// ParseState parses a string into a State, case-insensitively.
func ParseState(s string) (State, error) {
	st := State(strings.ToLower(strings.TrimSpace(s)))
	if !st.IsValid() {
		return "", ErrInvalidState
	}
	return st, nil
}

// ══════════════════════════════════════════════════════════════════════════════
// MAIN ENTITY: APPLICANT
// ══════════════════════════════════════════════════════════════════════════════

// Applicant wraps a person with the applicant role and tracks the
// admission pipeline. The prospective children are student records
// linked to the applicant until admission completes.
type Applicant struct {
	// ID is the internal unique identifier (UUID in string form).
	ID string

	// PersonID references the guardian account behind this application.
	PersonID string

	// State is the current admission state.
	State State

	// InterviewDate is set when an interview is scheduled. Transitions
	// to other states deliberately leave a previously set date in place.
	InterviewDate *time.Time

	// CreatedAt is when the application was created.
	CreatedAt time.Time

	// UpdatedAt is when the application was last modified.
	UpdatedAt time.Time
}

// ══════════════════════════════════════════════════════════════════════════════
// DOMAIN ERRORS
// ══════════════════════════════════════════════════════════════════════════════

var (
	// ErrInvalidState - the state name is not one of the five recognized values.
	ErrInvalidState = shared.NewDomainError("admission", "Validate", shared.ErrInvalidInput, "invalid admission state")

	// ErrApplicantNotFound - no applicant with the given id.
	ErrApplicantNotFound = shared.NewDomainError("admission", "Find", shared.ErrNotFound, "applicant not found")

	// ErrNoChildren - an application must include at least one child.
	ErrNoChildren = shared.NewDomainError("admission", "Create", shared.ErrInvalidInput, "at least one child required")

	// ErrFormNotFound - no pre-registration form for the applicant.
	ErrFormNotFound = shared.NewDomainError("admission", "FindForm", shared.ErrNotFound, "pre-registration form not found")
)

// ══════════════════════════════════════════════════════════════════════════════
// FACTORY & DOMAIN METHODS
// ══════════════════════════════════════════════════════════════════════════════

// NewApplicant creates an applicant in the unreviewed state.
func NewApplicant(id, personID string) (*Applicant, error) {
	if id == "" {
		return nil, errors.New("applicant id is required")
	}
	if personID == "" {
		return nil, errors.New("applicant person id is required")
	}

	now := time.Now().UTC()
	return &Applicant{
		ID:        id,
		PersonID:  personID,
		State:     StateUnreviewed,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// SetState moves the applicant to the named state. Any recognized state
// is accepted as a target; re-applying the current state is a no-op that
// still succeeds, so repeated calls are idempotent.
func (a *Applicant) SetState(s State) error {
	if !s.IsValid() {
		return ErrInvalidState
	}
	a.State = s
	a.UpdatedAt = time.Now().UTC()
	return nil
}

// ScheduleInterview stores the interview date and forces the state to
// awaiting_interview regardless of the current state. Scheduling is both
// a data update and a forced transition.
func (a *Applicant) ScheduleInterview(date time.Time) {
	a.State = StateAwaitingInterview
	a.InterviewDate = &date
	a.UpdatedAt = time.Now().UTC()
}

// ══════════════════════════════════════════════════════════════════════════════
// PRE-REGISTRATION FORM
// ══════════════════════════════════════════════════════════════════════════════

// Form holds the public pre-registration data an applicant submits:
// guardian contact details, the prospective child, and medical notes.
// One form exists per applicant and is updated in place on resubmission.
type Form struct {
	ID          string
	ApplicantID string

	// Guardian contact details.
	GuardianName    string
	GuardianSurname string
	GuardianPhone   string
	GuardianEmail   shared.Email

	// Prospective child.
	ChildName      string
	ChildSurname   string
	DesiredGrade   shared.GradeLevel
	BirthDate      time.Time
	CivilRegistry  string

	// Medical information.
	Allergies         string
	MedicalConditions string
	Medications       string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// GuardianFullName returns the guardian's combined display name, used to
// rename the person record when the form is saved.
func (f *Form) GuardianFullName() string {
	return strings.TrimSpace(f.GuardianName + " " + f.GuardianSurname)
}

// Validate checks the minimum data the form must carry.
func (f *Form) Validate() error {
	if f.ApplicantID == "" {
		return shared.NewDomainError("admission", "SaveForm", shared.ErrEmptyValue, "applicant id is required")
	}
	if strings.TrimSpace(f.GuardianName) == "" {
		return shared.NewDomainError("admission", "SaveForm", shared.ErrEmptyValue, "guardian name is required")
	}
	if strings.TrimSpace(f.ChildName) == "" {
		return shared.NewDomainError("admission", "SaveForm", shared.ErrEmptyValue, "child name is required")
	}
	if !f.GuardianEmail.Normalize().IsValid() {
		return shared.NewDomainError("admission", "SaveForm", shared.ErrInvalidFormat, "guardian email is invalid")
	}
	return nil
}
