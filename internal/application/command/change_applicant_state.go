package command

import (
	"context"

	"github.com/academia-hub/academia-records-hub/internal/domain/admission"
	"github.com/academia-hub/academia-records-hub/internal/domain/shared"
)

// ══════════════════════════════════════════════════════════════════════════════
// CHANGE APPLICANT STATE COMMAND
// Moves an applicant to any recognized admission state. Repeating the
// current state is accepted without error.
// ══════════════════════════════════════════════════════════════════════════════

// ChangeApplicantStateCommand names the applicant and the target state.
type ChangeApplicantStateCommand struct {
	ApplicantID string
	NewState    string
}

// ChangeApplicantStateHandler handles the ChangeApplicantStateCommand.
type ChangeApplicantStateHandler struct {
	applicantRepo admission.Repository
	publisher     shared.EventPublisher
}

// NewChangeApplicantStateHandler creates a new ChangeApplicantStateHandler.
func NewChangeApplicantStateHandler(applicantRepo admission.Repository, publisher shared.EventPublisher) *ChangeApplicantStateHandler {
	return &ChangeApplicantStateHandler{applicantRepo: applicantRepo, publisher: publisher}
}

// Handle executes the state change. The applicant is resolved before
// the state name is parsed, so an unknown applicant reports not-found
// even when the state name is also bad.
func (h *ChangeApplicantStateHandler) Handle(ctx context.Context, cmd ChangeApplicantStateCommand) (*admission.Applicant, error) {
	applicant, err := h.applicantRepo.GetByID(ctx, cmd.ApplicantID)
	if err != nil {
		return nil, err
	}

	state, err := admission.ParseState(cmd.NewState)
	if err != nil {
		return nil, err
	}

	if err := applicant.SetState(state); err != nil {
		return nil, err
	}
	if err := h.applicantRepo.Update(ctx, applicant); err != nil {
		return nil, err
	}

	_ = h.publisher.Publish(shared.NewGenericEvent(shared.EventApplicantStateSet, applicant.ID, map[string]interface{}{
		"state": string(state),
	}))

	return applicant, nil
}
