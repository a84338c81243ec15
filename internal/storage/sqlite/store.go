// Package sqlite implements the report storage provider on a single local
// database file via database/sql and the modernc.org driver. It is meant for
// the CLI and for development setups without a postgres instance.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	_ "modernc.org/sqlite"

	"pmreport/internal/domain/report"
)

type Store struct {
	db *sql.DB
}

// Open opens (or creates) the database file and applies the embedded schema.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}
	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enable foreign keys: %w", err)
	}
	for _, stmt := range schemaStatements {
		if _, err := db.Exec(stmt); err != nil {
			db.Close()
			return nil, fmt.Errorf("apply schema: %w", err)
		}
	}
	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) QueryOne(ctx context.Context, kind report.Kind, entityID int, criteria report.Criteria) (*report.Row, error) {
	query, args, err := report.BuildQuery(kind, entityID, criteria)
	if err != nil {
		return nil, err
	}

	row := s.db.QueryRowContext(ctx, query, args...)
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
	if errors.Is(err, sql.ErrNoRows) {
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
	rows, err := s.db.QueryContext(ctx, `
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
	rows, err := s.db.QueryContext(ctx, `
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
	rows, err := s.db.QueryContext(ctx, "SELECT id, name FROM roles ORDER BY id")
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
	rows, err := s.db.QueryContext(ctx, "SELECT DISTINCT status FROM projects ORDER BY status")
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
	rows, err := s.db.QueryContext(ctx, `
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
