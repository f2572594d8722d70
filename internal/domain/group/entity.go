// Package group contains the classroom cohort model: a bounded-capacity
// group led by one teacher, moving one way from draft to active.
package group

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/academia-hub/academia-records-hub/internal/domain/shared"
)

// Capacity bounds for a group. The lower bound rules out empty cohorts,
// the upper bound is the room-size limit of the institution.
const (
	MinCapacity = 1
	MaxCapacity = 20
)

// ══════════════════════════════════════════════════════════════════════════════
// ENUMS
// ══════════════════════════════════════════════════════════════════════════════

// Lifecycle is the lifecycle state of a group.
type Lifecycle string

const (
	// LifecycleDraft - the group is being assembled and not yet in session.
	LifecycleDraft Lifecycle = "draft"
	// LifecycleActive - the group has been confirmed and is in session.
	LifecycleActive Lifecycle = "active"
)

// IsValid checks that the lifecycle is one of the recognized values.
func (l Lifecycle) IsValid() bool {
	return l == LifecycleDraft || l == LifecycleActive
}

// ══════════════════════════════════════════════════════════════════════════════
// MAIN ENTITY: GROUP
// ══════════════════════════════════════════════════════════════════════════════

// Group is a classroom cohort. Membership lives on the student records;
// the enrolled count is always derived from the store.
type Group struct {
	// ID is the internal unique identifier (UUID in string form).
	ID string

	// Name of the cohort, e.g. "Jardin A".
	Name string

	// GradeLevel is the grade label the cohort covers.
	GradeLevel shared.GradeLevel

	// Capacity is the maximum number of students, within [MinCapacity, MaxCapacity].
	Capacity int

	// Lifecycle is the current lifecycle state.
	Lifecycle Lifecycle

	// TeacherID references the person leading the group.
	TeacherID string

	// CreatedAt is when the record was created.
	CreatedAt time.Time

	// UpdatedAt is when the record was last modified.
	UpdatedAt time.Time
}

// ══════════════════════════════════════════════════════════════════════════════
// DOMAIN ERRORS
// ══════════════════════════════════════════════════════════════════════════════

var (
	// ErrGroupNotFound - no group with the given id.
	ErrGroupNotFound = shared.NewDomainError("group", "Find", shared.ErrNotFound, "group not found")

	// ErrInvalidCapacity - capacity outside the configured bounds.
	ErrInvalidCapacity = shared.NewDomainError("group", "Validate", shared.ErrValueOutOfRange,
		fmt.Sprintf("capacity must be between %d and %d", MinCapacity, MaxCapacity))

	// ErrInvalidLifecycle - unrecognized lifecycle value.
	ErrInvalidLifecycle = shared.NewDomainError("group", "Validate", shared.ErrInvalidInput, "invalid group lifecycle")

	// ErrInvalidName - group name missing or too long.
	ErrInvalidName = shared.NewDomainError("group", "Validate", shared.ErrEmptyValue, "group name must be 1-100 chars")

	// ErrEmptyGroup - an empty group cannot be confirmed.
	ErrEmptyGroup = shared.NewDomainError("group", "Confirm", shared.ErrInvalidState, "cannot confirm a group without students")

	// ErrGroupFull - the group is at capacity.
	ErrGroupFull = shared.NewDomainError("group", "AddStudent", shared.ErrCapacityReached, "group is at capacity")
)

// ══════════════════════════════════════════════════════════════════════════════
// FACTORY & VALIDATION
// ══════════════════════════════════════════════════════════════════════════════

// NewGroupParams contains parameters for creating a new group.
type NewGroupParams struct {
	ID         string
	Name       string
	GradeLevel shared.GradeLevel
	Capacity   int
	TeacherID  string
}

// NewGroup creates a group in the draft state with zero students.
func NewGroup(params NewGroupParams) (*Group, error) {
	if params.ID == "" {
		return nil, errors.New("group id is required")
	}

	name := strings.TrimSpace(params.Name)
	if len(name) == 0 || len(name) > 100 {
		return nil, ErrInvalidName
	}

	if !params.GradeLevel.IsValid() {
		return nil, shared.NewDomainError("group", "Validate", shared.ErrInvalidInput, "invalid grade level")
	}

	if params.Capacity < MinCapacity || params.Capacity > MaxCapacity {
		return nil, ErrInvalidCapacity
	}

	if params.TeacherID == "" {
		return nil, shared.NewDomainError("group", "Validate", shared.ErrEmptyValue, "teacher id is required")
	}

	now := time.Now().UTC()
	return &Group{
		ID:         params.ID,
		Name:       name,
		GradeLevel: params.GradeLevel,
		Capacity:   params.Capacity,
		Lifecycle:  LifecycleDraft,
		TeacherID:  params.TeacherID,
		CreatedAt:  now,
		UpdatedAt:  now,
	}, nil
}

// ══════════════════════════════════════════════════════════════════════════════
// DOMAIN METHODS
// ══════════════════════════════════════════════════════════════════════════════

// Confirm activates the group. The enrolled count is supplied by the
// caller from a derived store query; a group with zero students cannot
// be activated. The transition is one-way through this method.
func (g *Group) Confirm(enrolledCount int) error {
	if enrolledCount <= 0 {
		return ErrEmptyGroup
	}
	g.Lifecycle = LifecycleActive
	g.UpdatedAt = time.Now().UTC()
	return nil
}

// Retire soft-deletes the group by pushing it back to draft. Student
// eviction is the caller's responsibility before retiring.
func (g *Group) Retire() {
	g.Lifecycle = LifecycleDraft
	g.UpdatedAt = time.Now().UTC()
}

// HasRoomFor reports whether count more students fit under capacity
// given the current enrolled count.
func (g *Group) HasRoomFor(enrolledCount, count int) bool {
	return enrolledCount+count <= g.Capacity
}
