// Package refcache holds the reference data a selection dialog preloads so
// live filtering never goes back to storage on a keystroke. A cache is built
// once when the dialog opens, read-only afterwards, and discarded when the
// dialog closes; it must not be rebuilt concurrently with reads.
package refcache

import (
	"context"

	"pmreport/internal/domain/report"
)

// Entry is the cached reference data of one selectable entity.
type Entry struct {
	ID                int     `json:"id"`
	Name              string  `json:"name"`
	Role              string  `json:"role,omitempty"`
	Status            string  `json:"status,omitempty"`
	ManagerID         int     `json:"managerId,omitempty"`
	OverdueTasks      int     `json:"overdueTasks"`
	OverdueMilestones int     `json:"overdueMilestones"`
	CompletionRate    float64 `json:"completionRate"`
}

// Label is the text the dialog list shows and the search filter matches.
func (e Entry) Label() string {
	if e.Role == "" {
		return e.Name
	}
	return e.Name + " (" + report.RoleLabel(e.Role) + ")"
}

type Cache struct {
	entries map[int]Entry
	order   []int
}

// Build warms the cache with one bulk fetch for the given report kind.
func Build(ctx context.Context, provider report.Provider, kind report.Kind) (*Cache, error) {
	rows, err := provider.ReferenceBulk(ctx, kind)
	if err != nil {
		return nil, err
	}

	cache := &Cache{entries: make(map[int]Entry, len(rows))}
	for _, row := range rows {
		if _, seen := cache.entries[row.ID]; !seen {
			cache.order = append(cache.order, row.ID)
		}
		cache.entries[row.ID] = Entry{
			ID:                row.ID,
			Name:              row.Name,
			Role:              row.Role,
			Status:            row.Status,
			ManagerID:         row.ManagerID,
			OverdueTasks:      row.OverdueTasks,
			OverdueMilestones: row.OverdueMilestones,
			CompletionRate:    row.CompletionRate,
		}
	}
	return cache, nil
}

func (c *Cache) Len() int {
	return len(c.order)
}

// Entries returns the cached entries in storage order.
func (c *Cache) Entries() []Entry {
	entries := make([]Entry, 0, len(c.order))
	for _, id := range c.order {
		entries = append(entries, c.entries[id])
	}
	return entries
}

// The lookups below answer in O(1) and return zero values for unknown ids: a
// transient mismatch between the candidate list and the cache must not crash
// the dialog.

func (c *Cache) StatusOf(id int) string {
	return c.entries[id].Status
}

func (c *Cache) ManagerOf(id int) int {
	return c.entries[id].ManagerID
}

func (c *Cache) OverdueTasksOf(id int) int {
	return c.entries[id].OverdueTasks
}

func (c *Cache) OverdueMilestonesOf(id int) int {
	return c.entries[id].OverdueMilestones
}

func (c *Cache) CompletionRateOf(id int) float64 {
	return c.entries[id].CompletionRate
}

func (c *Cache) RoleOf(id int) string {
	return c.entries[id].Role
}
