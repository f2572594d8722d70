// Package student contains the child record model. A student is either a
// prospect linked to an applicant or an enrollee linked to a guardian
// (and optionally a group) - never both at once.
package student

import (
	"errors"
	"strings"
	"time"

	"github.com/academia-hub/academia-records-hub/internal/domain/shared"
)

// ══════════════════════════════════════════════════════════════════════════════
// ENUMS
// ══════════════════════════════════════════════════════════════════════════════

// Status is the lifecycle status of a student.
type Status string

const (
	// StatusActive - the student attends normally.
	StatusActive Status = "active"
	// StatusInactive - the student is temporarily not attending.
	StatusInactive Status = "inactive"
	// StatusWithdrawn - the student has left the institution.
	StatusWithdrawn Status = "withdrawn"
)

// IsValid checks that the status is one of the recognized values.
func (s Status) IsValid() bool {
	switch s {
	case StatusActive, StatusInactive, StatusWithdrawn:
		return true
	default:
		return false
	}
}

// ══════════════════════════════════════════════════════════════════════════════
// MAIN ENTITY: STUDENT
// ══════════════════════════════════════════════════════════════════════════════

// Student is a child record. Exactly one of the two link shapes applies
// at any time: {GuardianID, optionally GroupID} for enrollees, or
// {ApplicantID} for prospects.
type Student struct {
	// ID is the internal unique identifier (UUID in string form).
	ID string

	// Name and Surname of the child.
	Name    string
	Surname string

	// GradeLevel is the grade label the student attends or aspires to.
	GradeLevel shared.GradeLevel

	// CivilRegistry is the optional civil-registry document number.
	CivilRegistry string

	// Status is the lifecycle status.
	Status Status

	// GuardianID references the responsible person, empty for prospects.
	GuardianID string

	// GroupID references the assigned group, empty when unassigned.
	GroupID string

	// ApplicantID references the owning application, empty once enrolled.
	ApplicantID string

	// CreatedAt is when the record was created.
	CreatedAt time.Time

	// UpdatedAt is when the record was last modified.
	UpdatedAt time.Time
}

// ══════════════════════════════════════════════════════════════════════════════
// DOMAIN ERRORS
// ══════════════════════════════════════════════════════════════════════════════

var (
	// ErrStudentNotFound - no student with the given id.
	ErrStudentNotFound = shared.NewDomainError("student", "Find", shared.ErrNotFound, "student not found")

	// ErrInvalidName - name or surname missing.
	ErrInvalidName = shared.NewDomainError("student", "Validate", shared.ErrEmptyValue, "student name and surname are required")

	// ErrInvalidStatus - unrecognized lifecycle status.
	ErrInvalidStatus = shared.NewDomainError("student", "Validate", shared.ErrInvalidInput, "invalid student status")

	// ErrAlreadyGrouped - the student already belongs to a group.
	ErrAlreadyGrouped = shared.NewDomainError("student", "AssignGroup", shared.ErrInvalidState, "student is already assigned to a group")

	// ErrNoGuardian - a student without a guardian cannot join a group.
	ErrNoGuardian = shared.NewDomainError("student", "AssignGroup", shared.ErrInvalidState, "student has no guardian on record")

	// ErrStillProspect - a student still linked to an application cannot join a group.
	ErrStillProspect = shared.NewDomainError("student", "AssignGroup", shared.ErrInvalidState, "student is still linked to an application")
)

// ══════════════════════════════════════════════════════════════════════════════
// FACTORY & VALIDATION
// ══════════════════════════════════════════════════════════════════════════════

// NewStudentParams contains parameters for creating a new student.
type NewStudentParams struct {
	ID            string
	Name          string
	Surname       string
	GradeLevel    shared.GradeLevel
	CivilRegistry string

	// Exactly one of ApplicantID or GuardianID is set at creation.
	ApplicantID string
	GuardianID  string
}

// NewStudent creates a student with status Active and no group.
func NewStudent(params NewStudentParams) (*Student, error) {
	if params.ID == "" {
		return nil, errors.New("student id is required")
	}

	name := strings.TrimSpace(params.Name)
	surname := strings.TrimSpace(params.Surname)
	if name == "" || surname == "" {
		return nil, ErrInvalidName
	}

	if !params.GradeLevel.IsValid() {
		return nil, shared.NewDomainError("student", "Validate", shared.ErrInvalidInput, "invalid grade level")
	}

	if params.ApplicantID != "" && params.GuardianID != "" {
		return nil, shared.NewDomainError("student", "Create", shared.ErrInvalidEntity, "student cannot reference both an applicant and a guardian")
	}

	now := time.Now().UTC()
	return &Student{
		ID:            params.ID,
		Name:          name,
		Surname:       surname,
		GradeLevel:    params.GradeLevel,
		CivilRegistry: strings.TrimSpace(params.CivilRegistry),
		Status:        StatusActive,
		ApplicantID:   params.ApplicantID,
		GuardianID:    params.GuardianID,
		CreatedAt:     now,
		UpdatedAt:     now,
	}, nil
}

// ══════════════════════════════════════════════════════════════════════════════
// DOMAIN METHODS
// ══════════════════════════════════════════════════════════════════════════════

// FullName returns the combined display name.
func (s *Student) FullName() string {
	return s.Name + " " + s.Surname
}

// AssignGroup links the student to a group. A student joins a group only
// with a guardian on record and no outstanding application link.
func (s *Student) AssignGroup(groupID string) error {
	if s.GuardianID == "" {
		return ErrNoGuardian
	}
	if s.ApplicantID != "" {
		return ErrStillProspect
	}
	s.GroupID = groupID
	s.UpdatedAt = time.Now().UTC()
	return nil
}

// UnassignGroup clears the group reference unconditionally.
func (s *Student) UnassignGroup() {
	s.GroupID = ""
	s.UpdatedAt = time.Now().UTC()
}

// Enroll converts a prospect into an enrollee under the given guardian.
// The application link is dropped; group assignment happens separately.
func (s *Student) Enroll(guardianID string) error {
	if guardianID == "" {
		return shared.NewDomainError("student", "Enroll", shared.ErrEmptyValue, "guardian id is required")
	}
	s.GuardianID = guardianID
	s.ApplicantID = ""
	s.UpdatedAt = time.Now().UTC()
	return nil
}

// SetStatus updates the lifecycle status.
func (s *Student) SetStatus(status Status) error {
	if !status.IsValid() {
		return ErrInvalidStatus
	}
	s.Status = status
	s.UpdatedAt = time.Now().UTC()
	return nil
}
