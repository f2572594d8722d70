package command

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/academia-hub/academia-records-hub/internal/domain/assessment"
	"github.com/academia-hub/academia-records-hub/internal/domain/person"
	"github.com/academia-hub/academia-records-hub/internal/domain/shared"
	"github.com/academia-hub/academia-records-hub/internal/domain/student"
)

// ══════════════════════════════════════════════════════════════════════════════
// RECORD OBSERVATION COMMAND
// A teacher records a dated note about a student.
// ══════════════════════════════════════════════════════════════════════════════

// RecordObservationCommand contains the observation data.
type RecordObservationCommand struct {
	Caller      person.Caller
	StudentID   string
	Date        time.Time
	Description string
	Type        string
}

// RecordObservationHandler handles the RecordObservationCommand.
type RecordObservationHandler struct {
	observationRepo assessment.ObservationRepository
	studentRepo     student.Repository
	publisher       shared.EventPublisher
}

// NewRecordObservationHandler creates a new RecordObservationHandler.
func NewRecordObservationHandler(
	observationRepo assessment.ObservationRepository,
	studentRepo student.Repository,
	publisher shared.EventPublisher,
) *RecordObservationHandler {
	return &RecordObservationHandler{
		observationRepo: observationRepo,
		studentRepo:     studentRepo,
		publisher:       publisher,
	}
}

// Handle executes the observation recording.
func (h *RecordObservationHandler) Handle(ctx context.Context, cmd RecordObservationCommand) (*assessment.Observation, error) {
	if !cmd.Caller.IsTeacher() {
		return nil, assessment.ErrOnlyTeachers
	}

	if _, err := h.studentRepo.GetByID(ctx, cmd.StudentID); err != nil {
		return nil, err
	}

	o, err := assessment.NewObservation(
		uuid.NewString(),
		cmd.Date,
		cmd.Description,
		assessment.ObservationType(cmd.Type),
		cmd.StudentID,
		cmd.Caller.PersonID,
	)
	if err != nil {
		return nil, err
	}

	if err := h.observationRepo.Create(ctx, o); err != nil {
		return nil, err
	}

	_ = h.publisher.Publish(shared.NewGenericEvent(shared.EventObservationRecorded, o.ID, map[string]interface{}{
		"student_id": o.StudentID,
		"type":       string(o.Type),
	}))

	return o, nil
}
