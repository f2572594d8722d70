package command

import (
	"context"

	"github.com/academia-hub/academia-records-hub/internal/domain/assessment"
	"github.com/academia-hub/academia-records-hub/internal/domain/person"
	"github.com/academia-hub/academia-records-hub/internal/domain/shared"
)

// ══════════════════════════════════════════════════════════════════════════════
// UPDATE GRADE COMMAND
// Revises a grade's value and period. Only the authoring teacher may do
// this; everything else about a grade is immutable after creation.
// ══════════════════════════════════════════════════════════════════════════════

// UpdateGradeCommand contains the revision data.
type UpdateGradeCommand struct {
	Caller  person.Caller
	GradeID string
	Value   float64
	Period  int
}

// UpdateGradeHandler handles the UpdateGradeCommand.
type UpdateGradeHandler struct {
	gradeRepo assessment.GradeRepository
	publisher shared.EventPublisher
}

// NewUpdateGradeHandler creates a new UpdateGradeHandler.
func NewUpdateGradeHandler(gradeRepo assessment.GradeRepository, publisher shared.EventPublisher) *UpdateGradeHandler {
	return &UpdateGradeHandler{gradeRepo: gradeRepo, publisher: publisher}
}

// Handle executes the grade revision.
func (h *UpdateGradeHandler) Handle(ctx context.Context, cmd UpdateGradeCommand) (*assessment.Grade, error) {
	g, err := h.gradeRepo.GetByID(ctx, cmd.GradeID)
	if err != nil {
		return nil, err
	}

	if err := g.Revise(cmd.Caller.PersonID, cmd.Value, shared.Period(cmd.Period)); err != nil {
		return nil, err
	}

	if err := h.gradeRepo.Update(ctx, g); err != nil {
		return nil, err
	}

	_ = h.publisher.Publish(shared.NewGenericEvent(shared.EventGradeUpdated, g.ID, map[string]interface{}{
		"student_id": g.StudentID,
		"value":      g.Value,
		"period":     g.Period.Int(),
	}))

	return g, nil
}
