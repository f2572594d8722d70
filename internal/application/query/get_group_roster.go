package query

import (
	"context"
	"time"

	"github.com/academia-hub/academia-records-hub/internal/domain/group"
	"github.com/academia-hub/academia-records-hub/internal/domain/shared"
	"github.com/academia-hub/academia-records-hub/internal/domain/student"
)

// ══════════════════════════════════════════════════════════════════════════════
// GET GROUP ROSTER QUERY
// Returns a group together with its assigned students and the remaining
// capacity. The enrolled count is always derived from the membership
// rows, never from a cached counter on the group.
// ══════════════════════════════════════════════════════════════════════════════

// GroupRosterCache caches assembled rosters. Implementations may be
// nil; the handler treats a missing cache as a pass-through.
type GroupRosterCache interface {
	// Get returns the cached roster for a group, if present.
	Get(ctx context.Context, groupID string) (*GetGroupRosterResult, bool)

	// Set stores a roster.
	Set(ctx context.Context, groupID string, roster *GetGroupRosterResult)

	// Invalidate drops the cached roster of a group.
	Invalidate(ctx context.Context, groupID string)
}

// GetGroupRosterQuery contains the roster parameters.
type GetGroupRosterQuery struct {
	// GroupID - the group whose roster to load.
	GroupID string
}

// Validate checks the query parameters.
func (q *GetGroupRosterQuery) Validate() error {
	if q.GroupID == "" {
		return shared.NewDomainError("query", "GetGroupRoster", shared.ErrEmptyValue, "group id is required")
	}
	return nil
}

// RosterStudentDTO is one student row on the roster.
type RosterStudentDTO struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Surname       string `json:"surname"`
	GradeLevel    string `json:"grade_level"`
	CivilRegistry string `json:"civil_registry,omitempty"`
	Status        string `json:"status"`
	GuardianID    string `json:"guardian_id,omitempty"`
}

// GetGroupRosterResult contains the assembled roster.
type GetGroupRosterResult struct {
	// GroupID - the group identifier.
	GroupID string `json:"group_id"`

	// Name - the group name.
	Name string `json:"name"`

	// GradeLevel - the group's grade label.
	GradeLevel string `json:"grade_level"`

	// Lifecycle - "draft" or "active".
	Lifecycle string `json:"lifecycle"`

	// TeacherID - the directing teacher.
	TeacherID string `json:"teacher_id"`

	// Capacity - maximum roster size.
	Capacity int `json:"capacity"`

	// Enrolled - current roster size.
	Enrolled int `json:"enrolled"`

	// Remaining - free seats left.
	Remaining int `json:"remaining"`

	// Students - the assigned students.
	Students []RosterStudentDTO `json:"students"`

	// GeneratedAt - build timestamp.
	GeneratedAt time.Time `json:"generated_at"`
}

// GetGroupRosterHandler handles roster requests.
type GetGroupRosterHandler struct {
	groupRepo   group.Repository
	studentRepo student.Repository
	cache       GroupRosterCache
}

// NewGetGroupRosterHandler creates a new GetGroupRosterHandler. The
// cache may be nil.
func NewGetGroupRosterHandler(
	groupRepo group.Repository,
	studentRepo student.Repository,
	cache GroupRosterCache,
) *GetGroupRosterHandler {
	return &GetGroupRosterHandler{
		groupRepo:   groupRepo,
		studentRepo: studentRepo,
		cache:       cache,
	}
}

// Handle executes the query.
func (h *GetGroupRosterHandler) Handle(ctx context.Context, q GetGroupRosterQuery) (*GetGroupRosterResult, error) {
	if err := q.Validate(); err != nil {
		return nil, err
	}

	if h.cache != nil {
		if roster, ok := h.cache.Get(ctx, q.GroupID); ok {
			return roster, nil
		}
	}

	g, err := h.groupRepo.GetByID(ctx, q.GroupID)
	if err != nil {
		return nil, err
	}

	students, err := h.studentRepo.ListByGroup(ctx, q.GroupID)
	if err != nil {
		return nil, err
	}

	result := &GetGroupRosterResult{
		GroupID:     g.ID,
		Name:        g.Name,
		GradeLevel:  g.GradeLevel.String(),
		Lifecycle:   string(g.Lifecycle),
		TeacherID:   g.TeacherID,
		Capacity:    g.Capacity,
		Enrolled:    len(students),
		Remaining:   g.Capacity - len(students),
		Students:    make([]RosterStudentDTO, len(students)),
		GeneratedAt: time.Now().UTC(),
	}
	for i, s := range students {
		result.Students[i] = RosterStudentDTO{
			ID:            s.ID,
			Name:          s.Name,
			Surname:       s.Surname,
			GradeLevel:    s.GradeLevel.String(),
			CivilRegistry: s.CivilRegistry,
			Status:        string(s.Status),
			GuardianID:    s.GuardianID,
		}
	}

	if h.cache != nil {
		h.cache.Set(ctx, q.GroupID, result)
	}
	return result, nil
}
