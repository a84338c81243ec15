// Package postgres implements the report storage provider on a pgx pool,
// reading from the vw_* views created by the migrations.
package postgres

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"pmreport/internal/domain/report"
)

type Store struct {
	DB *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{DB: db}
}

func (s *Store) QueryOne(ctx context.Context, kind report.Kind, entityID int, criteria report.Criteria) (*report.Row, error) {
	query, args, err := report.BuildQuery(kind, entityID, criteria)
	if err != nil {
		return nil, err
	}

	row := s.DB.QueryRow(ctx, rewritePlaceholders(query), args...)
	out := &report.Row{}
	switch kind {
	case report.KindEmployeePerformance:
		err = row.Scan(&out.Name, &out.TeamLeader, &out.TotalTasks, &out.CompletedTasks,
			&out.CanceledTasks, &out.CompletedTitles, &out.PendingTitles, &out.CompletionRate)
	case report.KindProjectProgress:
		err = row.Scan(&out.Name, &out.Manager, &out.Status, &out.OverallProgress,
			&out.TotalMilestones, &out.MilestoneNames, &out.TotalTasks, &out.TaskTitles,
			&out.CompletedTasks, &out.CanceledTasks, &out.AvgMilestoneProgress,
			&out.Teams, &out.TeamLeaders)
	case report.KindExecutiveOverview:
		err = row.Scan(&out.Name, &out.Status, &out.OverallProgress, &out.Manager,
			&out.TeamsCount, &out.EmployeesCount, &out.TotalMilestones, &out.TotalTasks,
			&out.CompletedTasks, &out.CanceledTasks, &out.CompletionRate,
			&out.AvgMilestoneProgress, &out.OverdueMilestones, &out.OverdueTasks,
			&out.Teams, &out.TeamLeaders, &out.TaskTitles)
	default:
		return nil, report.ErrUnknownKind
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, &report.StorageError{Op: "query " + string(kind), Err: err}
	}
	return out, nil
}

func (s *Store) ReferenceBulk(ctx context.Context, kind report.Kind) ([]report.ReferenceRow, error) {
	if kind == report.KindEmployeePerformance {
		return s.employeeReference(ctx)
	}
	return s.projectReference(ctx)
}

func (s *Store) employeeReference(ctx context.Context) ([]report.ReferenceRow, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT u.id, u.first_name || ' ' || u.last_name, r.name,
           COALESCE(v.completion_rate, 0)
      FROM users u
      JOIN roles r ON r.id = u.role_id
      LEFT JOIN vw_employee_performance v ON v.user_id = u.id
  `)
	if err != nil {
		return nil, &report.StorageError{Op: "employee reference bulk", Err: err}
	}
	defer rows.Close()

	var out []report.ReferenceRow
	for rows.Next() {
		var ref report.ReferenceRow
		if err := rows.Scan(&ref.ID, &ref.Name, &ref.Role, &ref.CompletionRate); err != nil {
			return nil, &report.StorageError{Op: "scan employee reference", Err: err}
		}
		out = append(out, ref)
	}
	if err := rows.Err(); err != nil {
		return nil, &report.StorageError{Op: "employee reference bulk", Err: err}
	}
	return out, nil
}

func (s *Store) projectReference(ctx context.Context) ([]report.ReferenceRow, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT p.id, p.name, p.status, COALESCE(p.manager_id, 0),
           COALESCE(v.overdue_tasks, 0), COALESCE(v.overdue_milestones, 0),
           COALESCE(v.task_completion_rate, 0)
      FROM projects p
      LEFT JOIN vw_executive_overview v ON v.project_id = p.id
  `)
	if err != nil {
		return nil, &report.StorageError{Op: "project reference bulk", Err: err}
	}
	defer rows.Close()

	var out []report.ReferenceRow
	for rows.Next() {
		var ref report.ReferenceRow
		if err := rows.Scan(&ref.ID, &ref.Name, &ref.Status, &ref.ManagerID,
			&ref.OverdueTasks, &ref.OverdueMilestones, &ref.CompletionRate); err != nil {
			return nil, &report.StorageError{Op: "scan project reference", Err: err}
		}
		out = append(out, ref)
	}
	if err := rows.Err(); err != nil {
		return nil, &report.StorageError{Op: "project reference bulk", Err: err}
	}
	return out, nil
}

func (s *Store) Roles(ctx context.Context) ([]report.RoleRow, error) {
	rows, err := s.DB.Query(ctx, "SELECT id, name FROM roles ORDER BY id")
	if err != nil {
		return nil, &report.StorageError{Op: "query roles", Err: err}
	}
	defer rows.Close()

	var out []report.RoleRow
	for rows.Next() {
		var role report.RoleRow
		if err := rows.Scan(&role.ID, &role.Name); err != nil {
			return nil, &report.StorageError{Op: "scan role", Err: err}
		}
		out = append(out, role)
	}
	return out, rows.Err()
}

func (s *Store) Statuses(ctx context.Context) ([]string, error) {
	rows, err := s.DB.Query(ctx, "SELECT DISTINCT status FROM projects ORDER BY status")
	if err != nil {
		return nil, &report.StorageError{Op: "query statuses", Err: err}
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var status string
		if err := rows.Scan(&status); err != nil {
			return nil, &report.StorageError{Op: "scan status", Err: err}
		}
		out = append(out, status)
	}
	return out, rows.Err()
}

func (s *Store) Managers(ctx context.Context) ([]report.ManagerRow, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT u.id, u.first_name || ' ' || u.last_name
      FROM users u
      JOIN roles r ON r.id = u.role_id
     WHERE r.name = 'projektManager'
     ORDER BY u.id
  `)
	if err != nil {
		return nil, &report.StorageError{Op: "query managers", Err: err}
	}
	defer rows.Close()

	var out []report.ManagerRow
	for rows.Next() {
		var manager report.ManagerRow
		if err := rows.Scan(&manager.ID, &manager.Name); err != nil {
			return nil, &report.StorageError{Op: "scan manager", Err: err}
		}
		out = append(out, manager)
	}
	return out, rows.Err()
}

// rewritePlaceholders converts the builder's `?` placeholders to pgx's
// positional `$n` form. Generated queries contain no literal question marks.
func rewritePlaceholders(query string) string {
	var b strings.Builder
	b.Grow(len(query) + 8)
	n := 0
	for _, ch := range query {
		if ch == '?' {
			n++
			b.WriteByte('$')
			b.WriteString(strconv.Itoa(n))
			continue
		}
		b.WriteRune(ch)
	}
	return b.String()
}
