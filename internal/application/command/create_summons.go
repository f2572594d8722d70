package command

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/academia-hub/academia-records-hub/internal/domain/admission"
	"github.com/academia-hub/academia-records-hub/internal/domain/person"
	"github.com/academia-hub/academia-records-hub/internal/domain/shared"
	"github.com/academia-hub/academia-records-hub/internal/domain/summons"
)

// ══════════════════════════════════════════════════════════════════════════════
// CREATE SUMMONS COMMAND
// Validates participant cardinality against the summons type, resolves
// every referenced participant, and stores the meeting as pending.
// Any unresolved id aborts creation.
// ══════════════════════════════════════════════════════════════════════════════

// CreateSummonsCommand contains the data to schedule a meeting.
type CreateSummonsCommand struct {
	Type         string
	ScheduledAt  time.Time
	Reason       string
	GuardianIDs  []string
	TeacherIDs   []string
	ApplicantIDs []string
}

// CreateSummonsHandler handles the CreateSummonsCommand.
type CreateSummonsHandler struct {
	summonsRepo   summons.Repository
	personRepo    person.Repository
	applicantRepo admission.Repository
	publisher     shared.EventPublisher
}

// NewCreateSummonsHandler creates a new CreateSummonsHandler.
func NewCreateSummonsHandler(
	summonsRepo summons.Repository,
	personRepo person.Repository,
	applicantRepo admission.Repository,
	publisher shared.EventPublisher,
) *CreateSummonsHandler {
	return &CreateSummonsHandler{
		summonsRepo:   summonsRepo,
		personRepo:    personRepo,
		applicantRepo: applicantRepo,
		publisher:     publisher,
	}
}

// Handle executes the summons creation.
func (h *CreateSummonsHandler) Handle(ctx context.Context, cmd CreateSummonsCommand) (*summons.Summons, error) {
	summonsType, err := summons.ParseType(cmd.Type)
	if err != nil {
		return nil, err
	}

	// Cardinality rules run before any participant resolution.
	s, err := summons.NewSummons(summons.NewSummonsParams{
		ID:           uuid.NewString(),
		Type:         summonsType,
		ScheduledAt:  cmd.ScheduledAt,
		Reason:       cmd.Reason,
		GuardianIDs:  cmd.GuardianIDs,
		TeacherIDs:   cmd.TeacherIDs,
		ApplicantIDs: cmd.ApplicantIDs,
	})
	if err != nil {
		return nil, err
	}

	for _, id := range s.GuardianIDs {
		if _, err := h.personRepo.GetByID(ctx, id); err != nil {
			return nil, err
		}
	}
	for _, id := range s.TeacherIDs {
		if _, err := h.personRepo.GetByID(ctx, id); err != nil {
			return nil, err
		}
	}
	for _, id := range s.ApplicantIDs {
		if _, err := h.applicantRepo.GetByID(ctx, id); err != nil {
			return nil, err
		}
	}

	if err := h.summonsRepo.Create(ctx, s); err != nil {
		return nil, err
	}

	_ = h.publisher.Publish(shared.NewGenericEvent(shared.EventSummonsCreated, s.ID, map[string]interface{}{
		"type": string(s.Type),
	}))

	return s, nil
}
