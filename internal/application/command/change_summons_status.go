package command

import (
	"context"

	"github.com/academia-hub/academia-records-hub/internal/domain/shared"
	"github.com/academia-hub/academia-records-hub/internal/domain/summons"
)

// ══════════════════════════════════════════════════════════════════════════════
// CHANGE SUMMONS STATUS COMMAND
// Overwrites the meeting status with any recognized value.
// ══════════════════════════════════════════════════════════════════════════════

// ChangeSummonsStatusCommand names the summons and the new status.
type ChangeSummonsStatusCommand struct {
	SummonsID string
	NewStatus string
}

// ChangeSummonsStatusHandler handles the ChangeSummonsStatusCommand.
type ChangeSummonsStatusHandler struct {
	summonsRepo summons.Repository
	publisher   shared.EventPublisher
}

// NewChangeSummonsStatusHandler creates a new ChangeSummonsStatusHandler.
func NewChangeSummonsStatusHandler(summonsRepo summons.Repository, publisher shared.EventPublisher) *ChangeSummonsStatusHandler {
	return &ChangeSummonsStatusHandler{summonsRepo: summonsRepo, publisher: publisher}
}

// Handle executes the status change.
func (h *ChangeSummonsStatusHandler) Handle(ctx context.Context, cmd ChangeSummonsStatusCommand) (*summons.Summons, error) {
	status, err := summons.ParseStatus(cmd.NewStatus)
	if err != nil {
		return nil, err
	}

	s, err := h.summonsRepo.GetByID(ctx, cmd.SummonsID)
	if err != nil {
		return nil, err
	}

	if err := s.SetStatus(status); err != nil {
		return nil, err
	}
	if err := h.summonsRepo.Update(ctx, s); err != nil {
		return nil, err
	}

	_ = h.publisher.Publish(shared.NewGenericEvent(shared.EventSummonsStatusSet, s.ID, map[string]interface{}{
		"status": string(status),
	}))

	return s, nil
}
