package command

import (
	"context"

	"github.com/academia-hub/academia-records-hub/internal/domain/group"
	"github.com/academia-hub/academia-records-hub/internal/domain/shared"
	"github.com/academia-hub/academia-records-hub/internal/domain/student"
)

// ══════════════════════════════════════════════════════════════════════════════
// REMOVE GROUP COMMAND
// Soft delete: every student is evicted from the group, then the group
// falls back to draft. The record itself is kept.
// ══════════════════════════════════════════════════════════════════════════════

// RemoveGroupCommand names the group to retire.
type RemoveGroupCommand struct {
	GroupID string
}

// RemoveGroupHandler handles the RemoveGroupCommand.
type RemoveGroupHandler struct {
	groupRepo   group.Repository
	studentRepo student.Repository
	tx          shared.TxRunner
	publisher   shared.EventPublisher
}

// NewRemoveGroupHandler creates a new RemoveGroupHandler.
func NewRemoveGroupHandler(groupRepo group.Repository, studentRepo student.Repository, tx shared.TxRunner, publisher shared.EventPublisher) *RemoveGroupHandler {
	return &RemoveGroupHandler{groupRepo: groupRepo, studentRepo: studentRepo, tx: tx, publisher: publisher}
}

// Handle executes the soft delete.
func (h *RemoveGroupHandler) Handle(ctx context.Context, cmd RemoveGroupCommand) (*group.Group, error) {
	var g *group.Group

	err := h.tx.InTx(ctx, func(ctx context.Context) error {
		var err error
		g, err = h.groupRepo.GetByIDForUpdate(ctx, cmd.GroupID)
		if err != nil {
			return err
		}

		members, err := h.studentRepo.ListByGroup(ctx, g.ID)
		if err != nil {
			return err
		}
		for _, s := range members {
			s.UnassignGroup()
			if err := h.studentRepo.Update(ctx, s); err != nil {
				return err
			}
		}

		g.Retire()
		return h.groupRepo.Update(ctx, g)
	})
	if err != nil {
		return nil, err
	}

	_ = h.publisher.Publish(shared.NewGenericEvent(shared.EventGroupRetired, g.ID, nil))

	return g, nil
}
