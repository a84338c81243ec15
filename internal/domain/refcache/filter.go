package refcache

import (
	"strings"

	"pmreport/internal/domain/report"
)

// Selection is the live state of a dialog's filter controls. An entry passes
// when it matches every active predicate.
type Selection struct {
	Search    string
	Status    string
	ManagerID *int
	Overdue   report.OverdueFilter
	MinRate   *float64
	MaxRate   *float64

	// Roles maps role display labels to their checkbox state. A nil map
	// means the dialog has no role filter; a non-nil map with no checked
	// role yields an empty result ("deselect all" means "show nothing").
	Roles map[string]bool
}

// Filter evaluates the selection against the cached entries, preserving
// storage order.
func (c *Cache) Filter(sel Selection) []Entry {
	search := strings.ToLower(strings.TrimSpace(sel.Search))

	var matched []Entry
	for _, id := range c.order {
		entry := c.entries[id]
		if !matchesSearch(entry, search) {
			continue
		}
		if sel.Status != "" && entry.Status != sel.Status {
			continue
		}
		if sel.ManagerID != nil && entry.ManagerID != *sel.ManagerID {
			continue
		}
		if !matchesOverdue(entry, sel.Overdue) {
			continue
		}
		if sel.MinRate != nil && entry.CompletionRate < *sel.MinRate {
			continue
		}
		if sel.MaxRate != nil && entry.CompletionRate > *sel.MaxRate {
			continue
		}
		if !matchesRole(entry, sel.Roles) {
			continue
		}
		matched = append(matched, entry)
	}
	return matched
}

func matchesSearch(entry Entry, search string) bool {
	if search == "" {
		return true
	}
	return strings.Contains(strings.ToLower(entry.Label()), search)
}

func matchesOverdue(entry Entry, filter report.OverdueFilter) bool {
	switch filter {
	case report.OverdueTasks:
		return entry.OverdueTasks > 0
	case report.OverdueMilestones:
		return entry.OverdueMilestones > 0
	case report.OverdueAny:
		return entry.OverdueTasks > 0 || entry.OverdueMilestones > 0
	default:
		return true
	}
}

func matchesRole(entry Entry, roles map[string]bool) bool {
	if roles == nil {
		return true
	}
	return roles[report.RoleLabel(entry.Role)]
}
