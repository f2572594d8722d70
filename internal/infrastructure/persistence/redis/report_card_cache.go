package redis

import (
	"context"

	"github.com/academia-hub/academia-records-hub/internal/application/query"
	"github.com/academia-hub/academia-records-hub/internal/domain/shared"
)

// ══════════════════════════════════════════════════════════════════════════════
// REPORT CARD CACHE
// Implements query.ReportCardCache. Cache failures degrade to a rebuild,
// never to a request error.
// ══════════════════════════════════════════════════════════════════════════════

// ReportCardCache caches assembled report cards per student.
type ReportCardCache struct {
	cache *Cache
}

// NewReportCardCache creates a new ReportCardCache.
func NewReportCardCache(cache *Cache) *ReportCardCache {
	return &ReportCardCache{cache: cache}
}

// Get returns the cached report card for a student, if present.
func (c *ReportCardCache) Get(ctx context.Context, studentID string) (*query.GetReportCardResult, bool) {
	var card query.GetReportCardResult
	if err := c.cache.Get(ctx, ReportCardKey(studentID), &card); err != nil {
		return nil, false
	}
	return &card, true
}

// Set stores a report card.
func (c *ReportCardCache) Set(ctx context.Context, studentID string, card *query.GetReportCardResult) {
	_ = c.cache.Set(ctx, ReportCardKey(studentID), card, TTLReportCard)
}

// Invalidate drops the cached card of a student.
func (c *ReportCardCache) Invalidate(ctx context.Context, studentID string) {
	_ = c.cache.Delete(ctx, ReportCardKey(studentID))
}

// ══════════════════════════════════════════════════════════════════════════════
// EVENT-DRIVEN INVALIDATION
// ══════════════════════════════════════════════════════════════════════════════

// InvalidateOnGradeEvents returns an event handler that drops the cached
// report card of the student a grade event refers to. Subscribe it to
// the grade recorded and updated events.
func (c *ReportCardCache) InvalidateOnGradeEvents() shared.EventHandler {
	return func(event shared.Event) error {
		payload := event.Payload()
		studentID, _ := payload["student_id"].(string)
		if studentID == "" {
			return nil
		}
		c.Invalidate(context.Background(), studentID)
		return nil
	}
}
