package command

import (
	"context"
	"fmt"

	"github.com/academia-hub/academia-records-hub/internal/domain/group"
	"github.com/academia-hub/academia-records-hub/internal/domain/shared"
	"github.com/academia-hub/academia-records-hub/internal/domain/student"
)

// ══════════════════════════════════════════════════════════════════════════════
// ASSIGN STUDENTS COMMAND
// Replace-set semantics: the listed students become the full roster of
// the group. Currently assigned students missing from the list are
// unassigned first, then every listed student is (re)assigned. Any
// unresolved id aborts the whole operation. Runs under the group row
// lock so concurrent assignments cannot jointly exceed capacity.
// ══════════════════════════════════════════════════════════════════════════════

// AssignStudentsCommand names the group and the replacement roster.
type AssignStudentsCommand struct {
	GroupID    string
	StudentIDs []string
}

// AssignStudentsHandler handles the AssignStudentsCommand.
type AssignStudentsHandler struct {
	groupRepo   group.Repository
	studentRepo student.Repository
	tx          shared.TxRunner
	publisher   shared.EventPublisher
}

// NewAssignStudentsHandler creates a new AssignStudentsHandler.
func NewAssignStudentsHandler(groupRepo group.Repository, studentRepo student.Repository, tx shared.TxRunner, publisher shared.EventPublisher) *AssignStudentsHandler {
	return &AssignStudentsHandler{groupRepo: groupRepo, studentRepo: studentRepo, tx: tx, publisher: publisher}
}

// Handle executes the roster replacement.
func (h *AssignStudentsHandler) Handle(ctx context.Context, cmd AssignStudentsCommand) (*group.Group, error) {
	var g *group.Group

	err := h.tx.InTx(ctx, func(ctx context.Context) error {
		var err error
		g, err = h.groupRepo.GetByIDForUpdate(ctx, cmd.GroupID)
		if err != nil {
			return err
		}

		if len(cmd.StudentIDs) > g.Capacity {
			return shared.NewDomainError("group", "AssignStudents", shared.ErrCapacityReached,
				fmt.Sprintf("cannot assign %d students, capacity is %d", len(cmd.StudentIDs), g.Capacity))
		}

		// Resolve the whole replacement set before touching anything so
		// a missing id leaves the roster untouched.
		replacements, err := h.studentRepo.GetByIDs(ctx, cmd.StudentIDs)
		if err != nil {
			return err
		}

		keep := make(map[string]bool, len(cmd.StudentIDs))
		for _, id := range cmd.StudentIDs {
			keep[id] = true
		}

		current, err := h.studentRepo.ListByGroup(ctx, g.ID)
		if err != nil {
			return err
		}
		for _, s := range current {
			if keep[s.ID] {
				continue
			}
			s.UnassignGroup()
			if err := h.studentRepo.Update(ctx, s); err != nil {
				return err
			}
		}

		for _, s := range replacements {
			if s.GroupID == g.ID {
				continue
			}
			if err := s.AssignGroup(g.ID); err != nil {
				return err
			}
			if err := h.studentRepo.Update(ctx, s); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	_ = h.publisher.Publish(shared.NewGenericEvent(shared.EventRosterChanged, g.ID, map[string]interface{}{
		"size": len(cmd.StudentIDs),
	}))

	return g, nil
}
