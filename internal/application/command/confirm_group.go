package command

import (
	"context"

	"github.com/academia-hub/academia-records-hub/internal/domain/group"
	"github.com/academia-hub/academia-records-hub/internal/domain/shared"
	"github.com/academia-hub/academia-records-hub/internal/domain/student"
)

// ══════════════════════════════════════════════════════════════════════════════
// CONFIRM GROUP COMMAND
// Activates a non-empty cohort. Runs under the group row lock so that a
// concurrent eviction cannot slip between the count and the activation.
// ══════════════════════════════════════════════════════════════════════════════

// ConfirmGroupCommand names the group to activate.
type ConfirmGroupCommand struct {
	GroupID string
}

// ConfirmGroupHandler handles the ConfirmGroupCommand.
type ConfirmGroupHandler struct {
	groupRepo   group.Repository
	studentRepo student.Repository
	tx          shared.TxRunner
	publisher   shared.EventPublisher
}

// NewConfirmGroupHandler creates a new ConfirmGroupHandler.
func NewConfirmGroupHandler(groupRepo group.Repository, studentRepo student.Repository, tx shared.TxRunner, publisher shared.EventPublisher) *ConfirmGroupHandler {
	return &ConfirmGroupHandler{groupRepo: groupRepo, studentRepo: studentRepo, tx: tx, publisher: publisher}
}

// Handle executes the group confirmation.
func (h *ConfirmGroupHandler) Handle(ctx context.Context, cmd ConfirmGroupCommand) (*group.Group, error) {
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

		if err := g.Confirm(count); err != nil {
			return err
		}
		return h.groupRepo.Update(ctx, g)
	})
	if err != nil {
		return nil, err
	}

	_ = h.publisher.Publish(shared.NewGenericEvent(shared.EventGroupConfirmed, g.ID, nil))

	return g, nil
}
