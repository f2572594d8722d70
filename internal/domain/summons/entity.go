// Package summons contains the scheduled-meeting model with typed
// participant cardinality rules.
package summons

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/academia-hub/academia-records-hub/internal/domain/shared"
)

// ══════════════════════════════════════════════════════════════════════════════
// ENUMS
// ══════════════════════════════════════════════════════════════════════════════

// Type determines which participants a summons requires.
type Type string

const (
	// TypeIndividual - one guardian meets one teacher.
	TypeIndividual Type = "individual"
	// TypeGroup - several guardians meet one teacher.
	TypeGroup Type = "group"
	// TypeApplicantReview - an admission review with one applicant.
	TypeApplicantReview Type = "applicant_review"
)

// IsValid checks that the type is one of the recognized values.
func (t Type) IsValid() bool {
	switch t {
	case TypeIndividual, TypeGroup, TypeApplicantReview:
		return true
	default:
		return false
	}
}

// ParseType parses a string into a Type, case-insensitively.
func ParseType(s string) (Type, error) {
	t := Type(strings.ToLower(strings.TrimSpace(s)))
	if !t.IsValid() {
		return "", ErrInvalidType
	}
	return t, nil
}

// Status is the flat, caller-driven meeting status.
type Status string

const (
	// StatusPending - scheduled, not yet held.
	StatusPending Status = "pending"
	// StatusHeld - the meeting took place.
	StatusHeld Status = "held"
	// StatusCancelled - the meeting was called off.
	StatusCancelled Status = "cancelled"
	// StatusPostponed - the meeting was deferred.
	StatusPostponed Status = "postponed"
)

// IsValid checks that the status is one of the four recognized values.
func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusHeld, StatusCancelled, StatusPostponed:
		return true
	default:
		return false
	}
}

// ParseStatus parses a string into a Status, case-insensitively.
func ParseStatus(s string) (Status, error) {
	st := Status(strings.ToLower(strings.TrimSpace(s)))
	if !st.IsValid() {
		return "", ErrInvalidStatus
	}
	return st, nil
}

// ══════════════════════════════════════════════════════════════════════════════
// MAIN ENTITY: SUMMONS
// ══════════════════════════════════════════════════════════════════════════════

// Summons is a scheduled meeting with typed participant sets.
type Summons struct {
	// ID is the internal unique identifier (UUID in string form).
	ID string

	// Type determines the participant cardinality rules.
	Type Type

	// ScheduledAt is the meeting timestamp.
	ScheduledAt time.Time

	// Reason is the free-text motive for the meeting.
	Reason string

	// Status starts Pending and is overwritten by the caller.
	Status Status

	// Participant id sets, populated per the type rules.
	GuardianIDs  []string
	TeacherIDs   []string
	ApplicantIDs []string

	// CreatedAt is when the record was created.
	CreatedAt time.Time

	// UpdatedAt is when the record was last modified.
	UpdatedAt time.Time
}

// ══════════════════════════════════════════════════════════════════════════════
// DOMAIN ERRORS
// ══════════════════════════════════════════════════════════════════════════════

var (
	// ErrInvalidType - unrecognized summons type.
	ErrInvalidType = shared.NewDomainError("summons", "Validate", shared.ErrInvalidInput, "invalid summons type")

	// ErrInvalidStatus - unrecognized summons status.
	ErrInvalidStatus = shared.NewDomainError("summons", "Validate", shared.ErrInvalidInput, "invalid summons status")

	// ErrSummonsNotFound - no summons with the given id.
	ErrSummonsNotFound = shared.NewDomainError("summons", "Find", shared.ErrNotFound, "summons not found")

	// ErrEmptyReason - a summons needs a motive.
	ErrEmptyReason = shared.NewDomainError("summons", "Create", shared.ErrEmptyValue, "summons reason is required")
)

// cardinalityError builds the validation error naming the expected
// participant counts for a type.
func cardinalityError(t Type, expected string) error {
	return shared.NewDomainError("summons", "Create", shared.ErrInvalidInput,
		fmt.Sprintf("%s summons requires %s", t, expected))
}

// ══════════════════════════════════════════════════════════════════════════════
// FACTORY & VALIDATION
// ══════════════════════════════════════════════════════════════════════════════

// NewSummonsParams contains parameters for creating a summons.
type NewSummonsParams struct {
	ID           string
	Type         Type
	ScheduledAt  time.Time
	Reason       string
	GuardianIDs  []string
	TeacherIDs   []string
	ApplicantIDs []string
}

// NewSummons creates a pending summons after checking the participant
// cardinality rules for the type:
//
//	individual:       exactly 1 guardian, exactly 1 teacher, 0 applicants
//	group:            1+ guardians, exactly 1 teacher, 0 applicants
//	applicant_review: exactly 1 applicant, 0 guardians, 0 teachers
func NewSummons(params NewSummonsParams) (*Summons, error) {
	if params.ID == "" {
		return nil, errors.New("summons id is required")
	}
	if !params.Type.IsValid() {
		return nil, ErrInvalidType
	}
	if strings.TrimSpace(params.Reason) == "" {
		return nil, ErrEmptyReason
	}

	if err := validateCardinality(params.Type, len(params.GuardianIDs), len(params.TeacherIDs), len(params.ApplicantIDs)); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	return &Summons{
		ID:           params.ID,
		Type:         params.Type,
		ScheduledAt:  params.ScheduledAt,
		Reason:       strings.TrimSpace(params.Reason),
		Status:       StatusPending,
		GuardianIDs:  append([]string(nil), params.GuardianIDs...),
		TeacherIDs:   append([]string(nil), params.TeacherIDs...),
		ApplicantIDs: append([]string(nil), params.ApplicantIDs...),
		CreatedAt:    now,
		UpdatedAt:    now,
	}, nil
}

func validateCardinality(t Type, guardians, teachers, applicants int) error {
	switch t {
	case TypeIndividual:
		if guardians != 1 {
			return cardinalityError(t, "exactly 1 guardian")
		}
		if teachers != 1 {
			return cardinalityError(t, "exactly 1 teacher")
		}
		if applicants != 0 {
			return cardinalityError(t, "no applicants")
		}
	case TypeGroup:
		if guardians < 1 {
			return cardinalityError(t, "at least 1 guardian")
		}
		if teachers != 1 {
			return cardinalityError(t, "exactly 1 teacher")
		}
		if applicants != 0 {
			return cardinalityError(t, "no applicants")
		}
	case TypeApplicantReview:
		if applicants != 1 {
			return cardinalityError(t, "exactly 1 applicant")
		}
		if guardians != 0 || teachers != 0 {
			return cardinalityError(t, "no guardians or teachers")
		}
	}
	return nil
}

// ══════════════════════════════════════════════════════════════════════════════
// DOMAIN METHODS
// ══════════════════════════════════════════════════════════════════════════════

// SetStatus overwrites the status. Any recognized value is accepted;
// there are no transition restrictions beyond name validity.
func (s *Summons) SetStatus(status Status) error {
	if !status.IsValid() {
		return ErrInvalidStatus
	}
	s.Status = status
	s.UpdatedAt = time.Now().UTC()
	return nil
}
