package query

import (
	"context"

	"github.com/academia-hub/academia-records-hub/internal/domain/assessment"
)

// ══════════════════════════════════════════════════════════════════════════════
// LIST ACHIEVEMENTS QUERY
// Lists rubric achievements, optionally narrowed to one developmental
// category.
// ══════════════════════════════════════════════════════════════════════════════

// ListAchievementsQuery contains the listing parameters.
type ListAchievementsQuery struct {
	// Category - optional category filter ("" for all).
	Category string
}

// Validate checks the query parameters.
func (q *ListAchievementsQuery) Validate() error {
	if q.Category != "" {
		if _, err := assessment.ParseCategory(q.Category); err != nil {
			return err
		}
	}
	return nil
}

// AchievementDTO is the read model of a rubric achievement.
type AchievementDTO struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Category    string `json:"category"`
	Status      string `json:"status"`
}

// ListAchievementsResult contains the listing result.
type ListAchievementsResult struct {
	Achievements []AchievementDTO `json:"achievements"`
	Total        int              `json:"total"`
}

// ListAchievementsHandler handles achievement listings.
type ListAchievementsHandler struct {
	achievementRepo assessment.AchievementRepository
}

// NewListAchievementsHandler creates a new ListAchievementsHandler.
func NewListAchievementsHandler(achievementRepo assessment.AchievementRepository) *ListAchievementsHandler {
	return &ListAchievementsHandler{achievementRepo: achievementRepo}
}

// Handle executes the query.
func (h *ListAchievementsHandler) Handle(ctx context.Context, q ListAchievementsQuery) (*ListAchievementsResult, error) {
	if err := q.Validate(); err != nil {
		return nil, err
	}

	items, err := h.achievementRepo.List(ctx, assessment.Category(q.Category))
	if err != nil {
		return nil, err
	}

	result := &ListAchievementsResult{
		Achievements: make([]AchievementDTO, len(items)),
		Total:        len(items),
	}
	for i, a := range items {
		result.Achievements[i] = AchievementDTO{
			ID:          a.ID,
			Name:        a.Name,
			Description: a.Description,
			Category:    string(a.Category),
			Status:      string(a.Status),
		}
	}
	return result, nil
}
