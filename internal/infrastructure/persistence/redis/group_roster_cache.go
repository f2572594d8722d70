package redis

import (
	"context"

	"github.com/academia-hub/academia-records-hub/internal/application/query"
	"github.com/academia-hub/academia-records-hub/internal/domain/shared"
)

// ══════════════════════════════════════════════════════════════════════════════
// GROUP ROSTER CACHE
// Implements query.GroupRosterCache. Cache failures degrade to a rebuild,
// never to a request error.
// ══════════════════════════════════════════════════════════════════════════════

// GroupRosterCache caches assembled rosters per group.
type GroupRosterCache struct {
	cache *Cache
}

// NewGroupRosterCache creates a new GroupRosterCache.
func NewGroupRosterCache(cache *Cache) *GroupRosterCache {
	return &GroupRosterCache{cache: cache}
}

// Get returns the cached roster for a group, if present.
func (c *GroupRosterCache) Get(ctx context.Context, groupID string) (*query.GetGroupRosterResult, bool) {
	var roster query.GetGroupRosterResult
	if err := c.cache.Get(ctx, RosterKey(groupID), &roster); err != nil {
		return nil, false
	}
	return &roster, true
}

// Set stores a roster.
func (c *GroupRosterCache) Set(ctx context.Context, groupID string, roster *query.GetGroupRosterResult) {
	_ = c.cache.Set(ctx, RosterKey(groupID), roster, TTLRoster)
}

// Invalidate drops the cached roster of a group.
func (c *GroupRosterCache) Invalidate(ctx context.Context, groupID string) {
	_ = c.cache.Delete(ctx, RosterKey(groupID))
}

// ══════════════════════════════════════════════════════════════════════════════
// EVENT-DRIVEN INVALIDATION
// ══════════════════════════════════════════════════════════════════════════════

// InvalidateOnGroupEvents returns an event handler that drops the cached
// roster of the group an event refers to. Group events carry the group
// id as the aggregate id. Subscribe it to the roster changed, group
// confirmed, and group retired events; the latter two change the
// lifecycle shown on the roster.
func (c *GroupRosterCache) InvalidateOnGroupEvents() shared.EventHandler {
	return func(event shared.Event) error {
		groupID := event.AggregateID()
		if groupID == "" {
			return nil
		}
		c.Invalidate(context.Background(), groupID)
		return nil
	}
}
