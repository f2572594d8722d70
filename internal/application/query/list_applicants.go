package query

import (
	"context"
	"time"

	"github.com/academia-hub/academia-records-hub/internal/domain/admission"
)

// ══════════════════════════════════════════════════════════════════════════════
// LIST APPLICANTS QUERY
// Lists admission applicants, optionally narrowed to one review state,
// with pagination.
// ══════════════════════════════════════════════════════════════════════════════

// ListApplicantsQuery contains the listing parameters.
type ListApplicantsQuery struct {
	// State - optional review state filter ("" for all).
	State string

	// Limit - page size (default 50, max 200).
	Limit int

	// Offset - page offset.
	Offset int
}

// Validate checks and normalizes the query parameters.
func (q *ListApplicantsQuery) Validate() error {
	if q.State != "" {
		if _, err := admission.ParseState(q.State); err != nil {
			return err
		}
	}
	if q.Limit <= 0 {
		q.Limit = 50
	}
	if q.Limit > 200 {
		q.Limit = 200
	}
	if q.Offset < 0 {
		q.Offset = 0
	}
	return nil
}

// ApplicantDTO is the read model of an applicant.
type ApplicantDTO struct {
	ID            string     `json:"id"`
	PersonID      string     `json:"person_id"`
	State         string     `json:"state"`
	InterviewDate *time.Time `json:"interview_date,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

// ListApplicantsResult contains the listing result.
type ListApplicantsResult struct {
	Applicants []ApplicantDTO `json:"applicants"`
	Limit      int            `json:"limit"`
	Offset     int            `json:"offset"`
}

// ListApplicantsHandler handles applicant listings.
type ListApplicantsHandler struct {
	applicantRepo admission.Repository
}

// NewListApplicantsHandler creates a new ListApplicantsHandler.
func NewListApplicantsHandler(applicantRepo admission.Repository) *ListApplicantsHandler {
	return &ListApplicantsHandler{applicantRepo: applicantRepo}
}

// Handle executes the query.
func (h *ListApplicantsHandler) Handle(ctx context.Context, q ListApplicantsQuery) (*ListApplicantsResult, error) {
	if err := q.Validate(); err != nil {
		return nil, err
	}

	items, err := h.applicantRepo.List(ctx, admission.State(q.State), q.Limit, q.Offset)
	if err != nil {
		return nil, err
	}

	result := &ListApplicantsResult{
		Applicants: make([]ApplicantDTO, len(items)),
		Limit:      q.Limit,
		Offset:     q.Offset,
	}
	for i, a := range items {
		result.Applicants[i] = ApplicantDTO{
			ID:            a.ID,
			PersonID:      a.PersonID,
			State:         string(a.State),
			InterviewDate: a.InterviewDate,
			CreatedAt:     a.CreatedAt,
			UpdatedAt:     a.UpdatedAt,
		}
	}
	return result, nil
}
