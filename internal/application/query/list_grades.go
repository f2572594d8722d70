// Package query contains read operations (CQRS - Queries).
package query

import (
	"context"
	"time"

	"github.com/academia-hub/academia-records-hub/internal/domain/assessment"
	"github.com/academia-hub/academia-records-hub/internal/domain/shared"
	"github.com/academia-hub/academia-records-hub/internal/domain/student"
)

// ══════════════════════════════════════════════════════════════════════════════
// LIST GRADES QUERY
// Returns the grades of one student, optionally narrowed to a single
// academic period. Order follows insertion order.
// ══════════════════════════════════════════════════════════════════════════════

// ListGradesQuery contains the listing parameters.
type ListGradesQuery struct {
	// StudentID - the student whose grades to list.
	StudentID string

	// Period - optional period filter (0 = all periods).
	Period int
}

// Validate checks the query parameters.
func (q *ListGradesQuery) Validate() error {
	if q.StudentID == "" {
		return shared.NewDomainError("query", "ListGrades", shared.ErrEmptyValue, "student id is required")
	}
	if q.Period < 0 {
		return assessment.ErrInvalidPeriod
	}
	return nil
}

// GradeDTO is the read model of a single grade.
type GradeDTO struct {
	ID            string    `json:"id"`
	Value         float64   `json:"value"`
	Period        int       `json:"period"`
	AchievementID string    `json:"achievement_id"`
	StudentID     string    `json:"student_id"`
	TeacherID     string    `json:"teacher_id"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// ListGradesResult contains the listing result.
type ListGradesResult struct {
	StudentID string     `json:"student_id"`
	Grades    []GradeDTO `json:"grades"`
	Total     int        `json:"total"`
}

// ListGradesHandler handles grade listings.
type ListGradesHandler struct {
	gradeRepo   assessment.GradeRepository
	studentRepo student.Repository
}

// NewListGradesHandler creates a new ListGradesHandler.
func NewListGradesHandler(gradeRepo assessment.GradeRepository, studentRepo student.Repository) *ListGradesHandler {
	return &ListGradesHandler{gradeRepo: gradeRepo, studentRepo: studentRepo}
}

// Handle executes the query.
func (h *ListGradesHandler) Handle(ctx context.Context, q ListGradesQuery) (*ListGradesResult, error) {
	if err := q.Validate(); err != nil {
		return nil, err
	}

	if _, err := h.studentRepo.GetByID(ctx, q.StudentID); err != nil {
		return nil, err
	}

	var grades []*assessment.Grade
	var err error
	if q.Period > 0 {
		grades, err = h.gradeRepo.ListByStudentAndPeriod(ctx, q.StudentID, shared.Period(q.Period))
	} else {
		grades, err = h.gradeRepo.ListByStudent(ctx, q.StudentID)
	}
	if err != nil {
		return nil, err
	}

	result := &ListGradesResult{
		StudentID: q.StudentID,
		Grades:    make([]GradeDTO, len(grades)),
		Total:     len(grades),
	}
	for i, g := range grades {
		result.Grades[i] = toGradeDTO(g)
	}
	return result, nil
}

func toGradeDTO(g *assessment.Grade) GradeDTO {
	return GradeDTO{
		ID:            g.ID,
		Value:         g.Value,
		Period:        g.Period.Int(),
		AchievementID: g.AchievementID,
		StudentID:     g.StudentID,
		TeacherID:     g.TeacherID,
		CreatedAt:     g.CreatedAt,
		UpdatedAt:     g.UpdatedAt,
	}
}
