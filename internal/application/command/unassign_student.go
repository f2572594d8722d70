package command

import (
	"context"

	"github.com/academia-hub/academia-records-hub/internal/domain/shared"
	"github.com/academia-hub/academia-records-hub/internal/domain/student"
)

// ══════════════════════════════════════════════════════════════════════════════
// UNASSIGN STUDENT COMMAND
// Clears a student's group reference unconditionally.
// ══════════════════════════════════════════════════════════════════════════════

// UnassignStudentCommand names the student to unassign.
type UnassignStudentCommand struct {
	StudentID string
}

// UnassignStudentHandler handles the UnassignStudentCommand.
type UnassignStudentHandler struct {
	studentRepo student.Repository
	publisher   shared.EventPublisher
}

// NewUnassignStudentHandler creates a new UnassignStudentHandler.
func NewUnassignStudentHandler(studentRepo student.Repository, publisher shared.EventPublisher) *UnassignStudentHandler {
	return &UnassignStudentHandler{studentRepo: studentRepo, publisher: publisher}
}

// Handle executes the unassignment.
func (h *UnassignStudentHandler) Handle(ctx context.Context, cmd UnassignStudentCommand) (*student.Student, error) {
	s, err := h.studentRepo.GetByID(ctx, cmd.StudentID)
	if err != nil {
		return nil, err
	}

	groupID := s.GroupID
	s.UnassignGroup()
	if err := h.studentRepo.Update(ctx, s); err != nil {
		return nil, err
	}

	if groupID != "" {
		_ = h.publisher.Publish(shared.NewGenericEvent(shared.EventRosterChanged, groupID, map[string]interface{}{
			"student_id": s.ID,
		}))
	}

	return s, nil
}
