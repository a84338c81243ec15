package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pmreport/internal/domain/report"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "reports.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func seedTestData(t *testing.T, store *Store) {
	t.Helper()
	stmts := []string{
		`INSERT INTO roles (id, name) VALUES (1, 'programista'), (2, 'projektManager'), (3, 'tester')`,
		`INSERT INTO users (id, first_name, last_name, role_id) VALUES
      (1, 'Jan', 'Kowalski', 1),
      (2, 'Anna', 'Nowak', 2),
      (3, 'Piotr', 'Wisniewski', 3)`,
		`INSERT INTO teams (id, name, leader_id) VALUES (1, 'Backend', 2)`,
		`INSERT INTO team_members (team_id, user_id) VALUES (1, 1), (1, 3)`,
		`INSERT INTO projects (id, name, status, manager_id, progress) VALUES
      (1, 'Portal', 'In Progress', 2, 40),
      (2, 'Migracja', 'Closed', 2, 100)`,
		`INSERT INTO project_teams (project_id, team_id) VALUES (1, 1)`,
		`INSERT INTO milestones (id, project_id, name, progress, due_date, completed) VALUES
      (1, 1, 'Analiza', 100, '2020-01-01', 1),
      (2, 1, 'Wdrozenie', 20, '2020-06-01', 0)`,
		`INSERT INTO tasks (id, project_id, assignee_id, title, status, due_date) VALUES
      (1, 1, 1, 'Logowanie', 'completed', NULL),
      (2, 1, 1, 'Raporty', 'pending', '2020-03-01'),
      (3, 1, 3, 'Testy regresji', 'canceled', NULL),
      (4, 2, NULL, 'Eksport danych', 'completed', NULL)`,
	}
	for _, stmt := range stmts {
		_, err := store.db.Exec(stmt)
		require.NoError(t, err)
	}
}

func TestQueryOneEmployee(t *testing.T) {
	store := openTestStore(t)
	seedTestData(t, store)

	row, err := store.QueryOne(context.Background(), report.KindEmployeePerformance, 1, report.Criteria{})
	require.NoError(t, err)
	require.NotNil(t, row)

	assert.Equal(t, "Jan Kowalski", row.Name)
	require.NotNil(t, row.TeamLeader)
	assert.Equal(t, "Anna Nowak", *row.TeamLeader)
	assert.Equal(t, 2, row.TotalTasks)
	assert.Equal(t, 1, row.CompletedTasks)
	assert.Equal(t, 0, row.CanceledTasks)
	require.NotNil(t, row.CompletedTitles)
	assert.Equal(t, "Logowanie", *row.CompletedTitles)
	require.NotNil(t, row.CompletionRate)
	assert.InDelta(t, 50.0, *row.CompletionRate, 0.001)
}

func TestQueryOneMissingEntity(t *testing.T) {
	store := openTestStore(t)
	seedTestData(t, store)

	row, err := store.QueryOne(context.Background(), report.KindEmployeePerformance, 99, report.Criteria{})
	require.NoError(t, err)
	assert.Nil(t, row)
}

func TestQueryOneProjectProgress(t *testing.T) {
	store := openTestStore(t)
	seedTestData(t, store)

	row, err := store.QueryOne(context.Background(), report.KindProjectProgress, 1, report.Criteria{})
	require.NoError(t, err)
	require.NotNil(t, row)

	assert.Equal(t, "Portal", row.Name)
	require.NotNil(t, row.Manager)
	assert.Equal(t, "Anna Nowak", *row.Manager)
	require.NotNil(t, row.Status)
	assert.Equal(t, "In Progress", *row.Status)
	assert.Equal(t, 2, row.TotalMilestones)
	require.NotNil(t, row.MilestoneNames)
	assert.Contains(t, *row.MilestoneNames, "Analiza")
	assert.Contains(t, *row.MilestoneNames, "Wdrozenie")
	assert.Equal(t, 3, row.TotalTasks)
	assert.Equal(t, 1, row.CompletedTasks)
	assert.Equal(t, 1, row.CanceledTasks)
	require.NotNil(t, row.AvgMilestoneProgress)
	assert.InDelta(t, 60.0, *row.AvgMilestoneProgress, 0.001)
	require.NotNil(t, row.Teams)
	assert.Equal(t, "Backend", *row.Teams)
}

func TestQueryOneExecutiveOverviewWithOverdueFilter(t *testing.T) {
	store := openTestStore(t)
	seedTestData(t, store)

	// Project 1 has an overdue pending task and an overdue open milestone.
	row, err := store.QueryOne(context.Background(), report.KindExecutiveOverview, 1,
		report.Criteria{Overdue: report.OverdueAny})
	require.NoError(t, err)
	require.NotNil(t, row)
	assert.Equal(t, 1, row.OverdueTasks)
	assert.Equal(t, 1, row.OverdueMilestones)
	assert.Equal(t, 1, row.TeamsCount)
	assert.Equal(t, 2, row.EmployeesCount)

	// Project 2 has nothing overdue, so the same filter excludes it.
	row, err = store.QueryOne(context.Background(), report.KindExecutiveOverview, 2,
		report.Criteria{Overdue: report.OverdueAny})
	require.NoError(t, err)
	assert.Nil(t, row)
}

func TestQueryOneRateFilterExcludes(t *testing.T) {
	store := openTestStore(t)
	seedTestData(t, store)

	min := 80.0
	row, err := store.QueryOne(context.Background(), report.KindEmployeePerformance, 1,
		report.Criteria{MinRate: &min})
	require.NoError(t, err)
	assert.Nil(t, row)
}

func TestReferenceBulkEmployees(t *testing.T) {
	store := openTestStore(t)
	seedTestData(t, store)

	refs, err := store.ReferenceBulk(context.Background(), report.KindEmployeePerformance)
	require.NoError(t, err)
	require.Len(t, refs, 3)

	byID := map[int]report.ReferenceRow{}
	for _, ref := range refs {
		byID[ref.ID] = ref
	}
	assert.Equal(t, "Jan Kowalski", byID[1].Name)
	assert.Equal(t, "programista", byID[1].Role)
	assert.InDelta(t, 50.0, byID[1].CompletionRate, 0.001)
	assert.InDelta(t, 0.0, byID[2].CompletionRate, 0.001)
}

func TestReferenceBulkProjects(t *testing.T) {
	store := openTestStore(t)
	seedTestData(t, store)

	refs, err := store.ReferenceBulk(context.Background(), report.KindExecutiveOverview)
	require.NoError(t, err)
	require.Len(t, refs, 2)

	byID := map[int]report.ReferenceRow{}
	for _, ref := range refs {
		byID[ref.ID] = ref
	}
	assert.Equal(t, "In Progress", byID[1].Status)
	assert.Equal(t, 2, byID[1].ManagerID)
	assert.Equal(t, 1, byID[1].OverdueTasks)
	assert.Equal(t, 1, byID[1].OverdueMilestones)
	assert.Equal(t, 0, byID[2].OverdueTasks)
	assert.InDelta(t, 100.0, byID[2].CompletionRate, 0.001)
}

func TestCatalogQueries(t *testing.T) {
	store := openTestStore(t)
	seedTestData(t, store)

	roles, err := store.Roles(context.Background())
	require.NoError(t, err)
	require.Len(t, roles, 3)
	assert.Equal(t, "programista", roles[0].Name)

	statuses, err := store.Statuses(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"Closed", "In Progress"}, statuses)

	managers, err := store.Managers(context.Background())
	require.NoError(t, err)
	require.Len(t, managers, 1)
	assert.Equal(t, "Anna Nowak", managers[0].Name)
}
