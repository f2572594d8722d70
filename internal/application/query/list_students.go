package query

import (
	"context"

	"github.com/academia-hub/academia-records-hub/internal/domain/shared"
	"github.com/academia-hub/academia-records-hub/internal/domain/student"
)

// ══════════════════════════════════════════════════════════════════════════════
// LIST STUDENTS QUERY
// Lists students by guardian or by originating application. Exactly one
// scope must be given; an institution-wide dump is not a read model
// anyone needs.
// ══════════════════════════════════════════════════════════════════════════════

// ListStudentsQuery contains the listing parameters.
type ListStudentsQuery struct {
	// GuardianID - list the students in this guardian's care.
	GuardianID string

	// ApplicantID - list the prospect children of this application.
	ApplicantID string
}

// Validate checks that exactly one scope is set.
func (q *ListStudentsQuery) Validate() error {
	if q.GuardianID == "" && q.ApplicantID == "" {
		return shared.NewDomainError("query", "ListStudents", shared.ErrEmptyValue, "either guardian_id or applicant_id is required")
	}
	if q.GuardianID != "" && q.ApplicantID != "" {
		return shared.NewDomainError("query", "ListStudents", shared.ErrInvalidInput, "guardian_id and applicant_id are mutually exclusive")
	}
	return nil
}

// StudentDTO is the read model of a student.
type StudentDTO struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Surname       string `json:"surname"`
	GradeLevel    string `json:"grade_level"`
	CivilRegistry string `json:"civil_registry,omitempty"`
	Status        string `json:"status"`
	GuardianID    string `json:"guardian_id,omitempty"`
	GroupID       string `json:"group_id,omitempty"`
	ApplicantID   string `json:"applicant_id,omitempty"`
}

// ListStudentsResult contains the listing result.
type ListStudentsResult struct {
	Students []StudentDTO `json:"students"`
	Total    int          `json:"total"`
}

// ListStudentsHandler handles student listings.
type ListStudentsHandler struct {
	studentRepo student.Repository
}

// NewListStudentsHandler creates a new ListStudentsHandler.
func NewListStudentsHandler(studentRepo student.Repository) *ListStudentsHandler {
	return &ListStudentsHandler{studentRepo: studentRepo}
}

// Handle executes the query.
func (h *ListStudentsHandler) Handle(ctx context.Context, q ListStudentsQuery) (*ListStudentsResult, error) {
	if err := q.Validate(); err != nil {
		return nil, err
	}

	var students []*student.Student
	var err error
	if q.GuardianID != "" {
		students, err = h.studentRepo.ListByGuardian(ctx, q.GuardianID)
	} else {
		students, err = h.studentRepo.ListByApplicant(ctx, q.ApplicantID)
	}
	if err != nil {
		return nil, err
	}

	result := &ListStudentsResult{
		Students: make([]StudentDTO, len(students)),
		Total:    len(students),
	}
	for i, s := range students {
		result.Students[i] = StudentDTO{
			ID:            s.ID,
			Name:          s.Name,
			Surname:       s.Surname,
			GradeLevel:    s.GradeLevel.String(),
			CivilRegistry: s.CivilRegistry,
			Status:        string(s.Status),
			GuardianID:    s.GuardianID,
			GroupID:       s.GroupID,
			ApplicantID:   s.ApplicantID,
		}
	}
	return result, nil
}
