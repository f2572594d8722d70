package command

import (
	"context"
	"fmt"

	"github.com/academia-hub/academia-records-hub/internal/domain/group"
	"github.com/academia-hub/academia-records-hub/internal/domain/shared"
	"github.com/academia-hub/academia-records-hub/internal/domain/student"
)

// ══════════════════════════════════════════════════════════════════════════════
// ADD STUDENT COMMAND
// Single-student, additive variant of AssignStudents. Fails when the
// group is at capacity or the student already belongs to a group.
// ══════════════════════════════════════════════════════════════════════════════

// AddStudentCommand names the group and the student to add.
type AddStudentCommand struct {
	GroupID   string
	StudentID string
}

// AddStudentHandler handles the AddStudentCommand.
type AddStudentHandler struct {
	groupRepo   group.Repository
	studentRepo student.Repository
	tx          shared.TxRunner
	publisher   shared.EventPublisher
}

// NewAddStudentHandler creates a new AddStudentHandler.
func NewAddStudentHandler(groupRepo group.Repository, studentRepo student.Repository, tx shared.TxRunner, publisher shared.EventPublisher) *AddStudentHandler {
	return &AddStudentHandler{groupRepo: groupRepo, studentRepo: studentRepo, tx: tx, publisher: publisher}
}

// Handle executes the addition.
func (h *AddStudentHandler) Handle(ctx context.Context, cmd AddStudentCommand) (*group.Group, error) {
	var g *group.Group

	err := h.tx.InTx(ctx, func(ctx context.Context) error {
		var err error
		g, err = h.groupRepo.GetByIDForUpdate(ctx, cmd.GroupID)
		if err != nil {
			return err
		}

		count, err := h.studentRepo.CountByGroup(ctx, g.ID)
		if err != nil {
			return err
		}
		if !g.HasRoomFor(count, 1) {
			return group.ErrGroupFull
		}

		s, err := h.studentRepo.GetByID(ctx, cmd.StudentID)
		if err != nil {
			return err
		}
		if s.GroupID != "" {
			return shared.NewDomainError("group", "AddStudent", shared.ErrInvalidState,
				fmt.Sprintf("student is already assigned to group %s", s.GroupID))
		}

		if err := s.AssignGroup(g.ID); err != nil {
			return err
		}
		return h.studentRepo.Update(ctx, s)
	})
	if err != nil {
		return nil, err
	}

	_ = h.publisher.Publish(shared.NewGenericEvent(shared.EventRosterChanged, g.ID, map[string]interface{}{
		"student_id": cmd.StudentID,
	}))

	return g, nil
}
