package query

import (
	"context"
	"time"

	"github.com/academia-hub/academia-records-hub/internal/domain/group"
)

// ══════════════════════════════════════════════════════════════════════════════
// LIST GROUPS QUERY
// Lists groups with optional lifecycle and teacher filters plus
// pagination.
// ══════════════════════════════════════════════════════════════════════════════

// ListGroupsQuery contains the listing parameters.
type ListGroupsQuery struct {
	// Lifecycle - optional lifecycle filter ("draft" or "active", "" for all).
	Lifecycle string

	// TeacherID - only groups directed by this teacher.
	TeacherID string

	// Limit - page size (default 50, max 200).
	Limit int

	// Offset - page offset.
	Offset int
}

// Validate checks and normalizes the query parameters.
func (q *ListGroupsQuery) Validate() error {
	if q.Lifecycle != "" && !group.Lifecycle(q.Lifecycle).IsValid() {
		return group.ErrInvalidLifecycle
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

// GroupDTO is the read model of a group.
type GroupDTO struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	GradeLevel string    `json:"grade_level"`
	Capacity   int       `json:"capacity"`
	Lifecycle  string    `json:"lifecycle"`
	TeacherID  string    `json:"teacher_id"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// ListGroupsResult contains the listing result.
type ListGroupsResult struct {
	Groups []GroupDTO `json:"groups"`
	Limit  int        `json:"limit"`
	Offset int        `json:"offset"`
}

// ListGroupsHandler handles group listings.
type ListGroupsHandler struct {
	groupRepo group.Repository
}

// NewListGroupsHandler creates a new ListGroupsHandler.
func NewListGroupsHandler(groupRepo group.Repository) *ListGroupsHandler {
	return &ListGroupsHandler{groupRepo: groupRepo}
}

// Handle executes the query.
func (h *ListGroupsHandler) Handle(ctx context.Context, q ListGroupsQuery) (*ListGroupsResult, error) {
	if err := q.Validate(); err != nil {
		return nil, err
	}

	items, err := h.groupRepo.List(ctx, group.Lifecycle(q.Lifecycle), q.TeacherID, q.Limit, q.Offset)
	if err != nil {
		return nil, err
	}

	result := &ListGroupsResult{
		Groups: make([]GroupDTO, len(items)),
		Limit:  q.Limit,
		Offset: q.Offset,
	}
	for i, g := range items {
		result.Groups[i] = GroupDTO{
			ID:         g.ID,
			Name:       g.Name,
			GradeLevel: g.GradeLevel.String(),
			Capacity:   g.Capacity,
			Lifecycle:  string(g.Lifecycle),
			TeacherID:  g.TeacherID,
			CreatedAt:  g.CreatedAt,
			UpdatedAt:  g.UpdatedAt,
		}
	}
	return result, nil
}
