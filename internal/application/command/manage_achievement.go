package command

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/academia-hub/academia-records-hub/internal/domain/assessment"
)

// ══════════════════════════════════════════════════════════════════════════════
// ACHIEVEMENT MANAGEMENT COMMANDS
// Rubric items are plain administrative records: create, update, delete.
// ══════════════════════════════════════════════════════════════════════════════

// CreateAchievementCommand contains the data to create a rubric item.
type CreateAchievementCommand struct {
	Name        string
	Description string
	Category    string
}

// UpdateAchievementCommand revises an existing rubric item.
type UpdateAchievementCommand struct {
	AchievementID string
	Name          string
	Description   string
	Category      string
}

// AchievementHandler handles rubric item commands.
type AchievementHandler struct {
	achievementRepo assessment.AchievementRepository
}

// NewAchievementHandler creates a new AchievementHandler.
func NewAchievementHandler(achievementRepo assessment.AchievementRepository) *AchievementHandler {
	return &AchievementHandler{achievementRepo: achievementRepo}
}

// Create stores a new active achievement.
func (h *AchievementHandler) Create(ctx context.Context, cmd CreateAchievementCommand) (*assessment.Achievement, error) {
	category, err := assessment.ParseCategory(cmd.Category)
	if err != nil {
		return nil, err
	}

	a, err := assessment.NewAchievement(uuid.NewString(), cmd.Name, cmd.Description, category)
	if err != nil {
		return nil, err
	}

	if err := h.achievementRepo.Create(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

// Update revises name, description, and category of an achievement.
func (h *AchievementHandler) Update(ctx context.Context, cmd UpdateAchievementCommand) (*assessment.Achievement, error) {
	a, err := h.achievementRepo.GetByID(ctx, cmd.AchievementID)
	if err != nil {
		return nil, err
	}

	category, err := assessment.ParseCategory(cmd.Category)
	if err != nil {
		return nil, err
	}

	a.Name = strings.TrimSpace(cmd.Name)
	a.Description = strings.TrimSpace(cmd.Description)
	a.Category = category

	if err := h.achievementRepo.Update(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

// Delete removes an achievement.
func (h *AchievementHandler) Delete(ctx context.Context, achievementID string) error {
	return h.achievementRepo.Delete(ctx, achievementID)
}
