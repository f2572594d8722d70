package command

import (
	"context"
	"time"

	"github.com/academia-hub/academia-records-hub/internal/domain/admission"
	"github.com/academia-hub/academia-records-hub/internal/domain/shared"
)

// ══════════════════════════════════════════════════════════════════════════════
// SCHEDULE INTERVIEW COMMAND
// Stores the interview date and forces the applicant into the
// awaiting_interview state whatever the prior state was. Scheduling is
// both a data update and a forced transition.
// ══════════════════════════════════════════════════════════════════════════════

// ScheduleInterviewCommand names the applicant and the interview date.
type ScheduleInterviewCommand struct {
	ApplicantID string
	Date        time.Time
}

// ScheduleInterviewHandler handles the ScheduleInterviewCommand.
type ScheduleInterviewHandler struct {
	applicantRepo admission.Repository
	publisher     shared.EventPublisher
}

// NewScheduleInterviewHandler creates a new ScheduleInterviewHandler.
func NewScheduleInterviewHandler(applicantRepo admission.Repository, publisher shared.EventPublisher) *ScheduleInterviewHandler {
	return &ScheduleInterviewHandler{applicantRepo: applicantRepo, publisher: publisher}
}

// Handle executes the interview scheduling.
func (h *ScheduleInterviewHandler) Handle(ctx context.Context, cmd ScheduleInterviewCommand) (*admission.Applicant, error) {
	applicant, err := h.applicantRepo.GetByID(ctx, cmd.ApplicantID)
	if err != nil {
		return nil, err
	}

	applicant.ScheduleInterview(cmd.Date)

	if err := h.applicantRepo.Update(ctx, applicant); err != nil {
		return nil, err
	}

	_ = h.publisher.Publish(shared.NewGenericEvent(shared.EventInterviewScheduled, applicant.ID, map[string]interface{}{
		"date": cmd.Date.Format("2006-01-02"),
	}))

	return applicant, nil
}
