package refcache_test

import (
	"testing"

	"pmreport/internal/domain/refcache"
	"pmreport/internal/domain/report"
)

func filterIDs(entries []refcache.Entry) []int {
	ids := make([]int, 0, len(entries))
	for _, entry := range entries {
		ids = append(ids, entry.ID)
	}
	return ids
}

func assertIDs(t *testing.T, entries []refcache.Entry, want ...int) {
	t.Helper()
	got := filterIDs(entries)
	if len(got) != len(want) {
		t.Fatalf("expected ids %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected ids %v, got %v", want, got)
		}
	}
}

func TestFilterWithoutPredicatesReturnsEverything(t *testing.T) {
	cache := buildCache(t, projectRows())
	assertIDs(t, cache.Filter(refcache.Selection{}), 1, 2, 3)
}

func TestFilterSearchIsCaseInsensitiveSubstring(t *testing.T) {
	cache := buildCache(t, projectRows())
	assertIDs(t, cache.Filter(refcache.Selection{Search: "pOrT"}), 1)
	assertIDs(t, cache.Filter(refcache.Selection{Search: "  migracja "}), 2)

	if entries := cache.Filter(refcache.Selection{Search: "hurtownia"}); len(entries) != 0 {
		t.Fatalf("expected no matches, got %v", filterIDs(entries))
	}
}

func TestFilterSearchMatchesRoleLabel(t *testing.T) {
	cache := buildCache(t, []report.ReferenceRow{
		{ID: 1, Name: "Jan Kowalski", Role: "pracownik"},
		{ID: 2, Name: "Anna Nowak", Role: "projektManager"},
	})
	assertIDs(t, cache.Filter(refcache.Selection{Search: "projekt manager"}), 2)
}

func TestFilterByStatusAndManager(t *testing.T) {
	cache := buildCache(t, projectRows())

	assertIDs(t, cache.Filter(refcache.Selection{Status: "In Progress"}), 1, 3)

	manager := 2
	assertIDs(t, cache.Filter(refcache.Selection{ManagerID: &manager}), 1, 2)

	assertIDs(t, cache.Filter(refcache.Selection{Status: "In Progress", ManagerID: &manager}), 1)
}

func TestFilterOverdueVariants(t *testing.T) {
	cache := buildCache(t, projectRows())

	assertIDs(t, cache.Filter(refcache.Selection{Overdue: report.OverdueTasks}), 1)
	assertIDs(t, cache.Filter(refcache.Selection{Overdue: report.OverdueMilestones}), 3)
	// "any" is an OR over both counters.
	assertIDs(t, cache.Filter(refcache.Selection{Overdue: report.OverdueAny}), 1, 3)
}

func TestFilterRateBoundsAreInclusive(t *testing.T) {
	cache := buildCache(t, projectRows())

	min := 60.0
	assertIDs(t, cache.Filter(refcache.Selection{MinRate: &min}), 2, 3)

	max := 60.0
	assertIDs(t, cache.Filter(refcache.Selection{MaxRate: &max}), 1, 3)

	both := 60.0
	assertIDs(t, cache.Filter(refcache.Selection{MinRate: &both, MaxRate: &both}), 3)
}

func TestFilterRoles(t *testing.T) {
	cache := buildCache(t, []report.ReferenceRow{
		{ID: 1, Name: "Jan Kowalski", Role: "pracownik"},
		{ID: 2, Name: "Anna Nowak", Role: "projektManager"},
		{ID: 3, Name: "Piotr Wisniewski", Role: "teamLider"},
	})

	// Nil map means the dialog has no role filter at all.
	assertIDs(t, cache.Filter(refcache.Selection{}), 1, 2, 3)

	checked := map[string]bool{"Pracownik": true, "Team Lider": true}
	assertIDs(t, cache.Filter(refcache.Selection{Roles: checked}), 1, 3)

	// A present filter with nothing checked shows nothing.
	if entries := cache.Filter(refcache.Selection{Roles: map[string]bool{}}); len(entries) != 0 {
		t.Fatalf("expected empty result for all-unchecked roles, got %v", filterIDs(entries))
	}
}
