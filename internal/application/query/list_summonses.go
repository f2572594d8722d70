package query

import (
	"context"
	"time"

	"github.com/academia-hub/academia-records-hub/internal/domain/summons"
)

// ══════════════════════════════════════════════════════════════════════════════
// LIST SUMMONSES QUERY
// Lists meeting summonses with optional type, status, and participant
// filters plus pagination.
// ══════════════════════════════════════════════════════════════════════════════

// ListSummonsesQuery contains the listing parameters. Empty filter
// fields mean "no filter".
type ListSummonsesQuery struct {
	// Type - optional type filter ("individual", "group", "applicant_review").
	Type string

	// Status - optional status filter.
	Status string

	// TeacherID - only summonses addressing this teacher.
	TeacherID string

	// GuardianID - only summonses addressing this guardian.
	GuardianID string

	// Limit - page size (default 50, max 200).
	Limit int

	// Offset - page offset.
	Offset int
}

// Validate checks and normalizes the query parameters.
func (q *ListSummonsesQuery) Validate() error {
	if q.Type != "" {
		if _, err := summons.ParseType(q.Type); err != nil {
			return err
		}
	}
	if q.Status != "" {
		if _, err := summons.ParseStatus(q.Status); err != nil {
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

// SummonsDTO is the read model of a summons.
type SummonsDTO struct {
	ID           string    `json:"id"`
	Type         string    `json:"type"`
	Status       string    `json:"status"`
	ScheduledAt  time.Time `json:"scheduled_at"`
	Reason       string    `json:"reason"`
	GuardianIDs  []string  `json:"guardian_ids,omitempty"`
	TeacherIDs   []string  `json:"teacher_ids,omitempty"`
	ApplicantIDs []string  `json:"applicant_ids,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// ListSummonsesResult contains the listing result.
type ListSummonsesResult struct {
	Summonses []SummonsDTO `json:"summonses"`
	Limit     int          `json:"limit"`
	Offset    int          `json:"offset"`
}

// ListSummonsesHandler handles summons listings.
type ListSummonsesHandler struct {
	summonsRepo summons.Repository
}

// NewListSummonsesHandler creates a new ListSummonsesHandler.
func NewListSummonsesHandler(summonsRepo summons.Repository) *ListSummonsesHandler {
	return &ListSummonsesHandler{summonsRepo: summonsRepo}
}

// Handle executes the query.
func (h *ListSummonsesHandler) Handle(ctx context.Context, q ListSummonsesQuery) (*ListSummonsesResult, error) {
	if err := q.Validate(); err != nil {
		return nil, err
	}

	filter := summons.Filter{
		Type:       summons.Type(q.Type),
		Status:     summons.Status(q.Status),
		TeacherID:  q.TeacherID,
		GuardianID: q.GuardianID,
	}

	items, err := h.summonsRepo.List(ctx, filter, q.Limit, q.Offset)
	if err != nil {
		return nil, err
	}

	result := &ListSummonsesResult{
		Summonses: make([]SummonsDTO, len(items)),
		Limit:     q.Limit,
		Offset:    q.Offset,
	}
	for i, s := range items {
		result.Summonses[i] = SummonsDTO{
			ID:           s.ID,
			Type:         string(s.Type),
			Status:       string(s.Status),
			ScheduledAt:  s.ScheduledAt,
			Reason:       s.Reason,
			GuardianIDs:  s.GuardianIDs,
			TeacherIDs:   s.TeacherIDs,
			ApplicantIDs: s.ApplicantIDs,
			CreatedAt:    s.CreatedAt,
			UpdatedAt:    s.UpdatedAt,
		}
	}
	return result, nil
}
