package command

import (
	"context"

	"github.com/google/uuid"

	"github.com/academia-hub/academia-records-hub/internal/domain/group"
	"github.com/academia-hub/academia-records-hub/internal/domain/person"
	"github.com/academia-hub/academia-records-hub/internal/domain/shared"
)

// ══════════════════════════════════════════════════════════════════════════════
// CREATE GROUP COMMAND
// Creates a draft cohort led by a teacher. The referenced person must
// hold the teacher role and the capacity must fall inside the bounds.
// ══════════════════════════════════════════════════════════════════════════════

// CreateGroupCommand contains the data to create a group.
type CreateGroupCommand struct {
	Name       string
	GradeLevel string
	Capacity   int
	TeacherID  string
}

// CreateGroupHandler handles the CreateGroupCommand.
type CreateGroupHandler struct {
	groupRepo  group.Repository
	personRepo person.Repository
	publisher  shared.EventPublisher
}

// NewCreateGroupHandler creates a new CreateGroupHandler.
func NewCreateGroupHandler(groupRepo group.Repository, personRepo person.Repository, publisher shared.EventPublisher) *CreateGroupHandler {
	return &CreateGroupHandler{groupRepo: groupRepo, personRepo: personRepo, publisher: publisher}
}

// Handle executes the group creation.
func (h *CreateGroupHandler) Handle(ctx context.Context, cmd CreateGroupCommand) (*group.Group, error) {
	teacher, err := h.personRepo.GetByID(ctx, cmd.TeacherID)
	if err != nil {
		return nil, err
	}
	if teacher.Role != person.RoleTeacher {
		return nil, person.ErrNotATeacher
	}

	g, err := group.NewGroup(group.NewGroupParams{
		ID:         uuid.NewString(),
		Name:       cmd.Name,
		GradeLevel: shared.GradeLevel(cmd.GradeLevel),
		Capacity:   cmd.Capacity,
		TeacherID:  teacher.ID,
	})
	if err != nil {
		return nil, err
	}

	if err := h.groupRepo.Create(ctx, g); err != nil {
		return nil, err
	}

	_ = h.publisher.Publish(shared.NewGenericEvent(shared.EventGroupCreated, g.ID, map[string]interface{}{
		"teacher_id": teacher.ID,
		"capacity":   g.Capacity,
	}))

	return g, nil
}
