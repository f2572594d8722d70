package query

import (
	"context"
	"time"

	"github.com/academia-hub/academia-records-hub/internal/domain/assessment"
	"github.com/academia-hub/academia-records-hub/internal/domain/shared"
)

// ══════════════════════════════════════════════════════════════════════════════
// LIST OBSERVATIONS QUERY
// Lists teacher observations for a student or authored by a teacher,
// newest first.
// ══════════════════════════════════════════════════════════════════════════════

// ListObservationsQuery contains the listing parameters.
type ListObservationsQuery struct {
	// StudentID - list observations about this student.
	StudentID string

	// TeacherID - list observations authored by this teacher.
	TeacherID string
}

// Validate checks that exactly one scope is set.
func (q *ListObservationsQuery) Validate() error {
	if q.StudentID == "" && q.TeacherID == "" {
		return shared.NewDomainError("query", "ListObservations", shared.ErrEmptyValue, "either student_id or teacher_id is required")
	}
	if q.StudentID != "" && q.TeacherID != "" {
		return shared.NewDomainError("query", "ListObservations", shared.ErrInvalidInput, "student_id and teacher_id are mutually exclusive")
	}
	return nil
}

// ObservationDTO is the read model of an observation.
type ObservationDTO struct {
	ID          string    `json:"id"`
	Date        time.Time `json:"date"`
	Description string    `json:"description"`
	Type        string    `json:"type"`
	StudentID   string    `json:"student_id"`
	TeacherID   string    `json:"teacher_id"`
	CreatedAt   time.Time `json:"created_at"`
}

// ListObservationsResult contains the listing result.
type ListObservationsResult struct {
	Observations []ObservationDTO `json:"observations"`
	Total        int              `json:"total"`
}

// ListObservationsHandler handles observation listings.
type ListObservationsHandler struct {
	observationRepo assessment.ObservationRepository
}

// NewListObservationsHandler creates a new ListObservationsHandler.
func NewListObservationsHandler(observationRepo assessment.ObservationRepository) *ListObservationsHandler {
	return &ListObservationsHandler{observationRepo: observationRepo}
}

// Handle executes the query.
func (h *ListObservationsHandler) Handle(ctx context.Context, q ListObservationsQuery) (*ListObservationsResult, error) {
	if err := q.Validate(); err != nil {
		return nil, err
	}

	var items []*assessment.Observation
	var err error
	if q.StudentID != "" {
		items, err = h.observationRepo.ListByStudent(ctx, q.StudentID)
	} else {
		items, err = h.observationRepo.ListByTeacher(ctx, q.TeacherID)
	}
	if err != nil {
		return nil, err
	}

	result := &ListObservationsResult{
		Observations: make([]ObservationDTO, len(items)),
		Total:        len(items),
	}
	for i, o := range items {
		result.Observations[i] = ObservationDTO{
			ID:          o.ID,
			Date:        o.Date,
			Description: o.Description,
			Type:        string(o.Type),
			StudentID:   o.StudentID,
			TeacherID:   o.TeacherID,
			CreatedAt:   o.CreatedAt,
		}
	}
	return result, nil
}
