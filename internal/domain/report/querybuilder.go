package report

import "strings"

// Base templates always filter by a single entity id; the assembler issues
// one query per requested entity, which keeps row mapping independent of
// IN-list handling. Placeholders are `?`-style; providers rewrite them to
// their dialect.
var baseQueries = map[Kind]string{
	KindEmployeePerformance: `SELECT employee, team_leader, total_tasks, completed, canceled,
       completed_tasks_titles, pending_tasks_titles, completion_rate
  FROM vw_employee_performance
 WHERE user_id = ?`,
	KindProjectProgress: `SELECT project, manager, status, overall_progress, total_milestones,
       milestone_names, total_tasks, task_titles, completed_tasks,
       canceled_tasks, avg_milestone_progress, involved_teams, team_leaders
  FROM vw_project_progress
 WHERE project_id = ?`,
	KindExecutiveOverview: `SELECT project, project_status, project_progress, project_manager,
       teams_involved, employees_assigned, milestones, total_tasks,
       tasks_done, tasks_canceled, task_completion_rate,
       avg_milestone_progress, overdue_milestones, overdue_tasks,
       involved_teams, team_leaders, task_titles
  FROM vw_executive_overview
 WHERE project_id = ?`,
}

// filterColumns maps each criterion to its view column per kind. An empty
// column means the kind does not support that criterion.
type filterSet struct {
	status            string
	manager           string
	overdueTasks      string
	overdueMilestones string
	rate              string
}

var filterColumns = map[Kind]filterSet{
	KindEmployeePerformance: {
		rate: "completion_rate",
	},
	KindProjectProgress: {
		status:  "status",
		manager: "manager_id",
		rate:    "task_completion_rate",
	},
	KindExecutiveOverview: {
		status:            "project_status",
		manager:           "manager_id",
		overdueTasks:      "overdue_tasks",
		overdueMilestones: "overdue_milestones",
		rate:              "task_completion_rate",
	},
}

// BuildQuery turns (kind, criteria) into a query template and its ordered
// bind parameters. Present criteria append exactly one clause and one
// parameter each, in the fixed order status, managerId, overdue, minRate,
// maxRate; absent criteria contribute neither.
func BuildQuery(kind Kind, entityID int, criteria Criteria) (string, []any, error) {
	if err := criteria.Validate(kind); err != nil {
		return "", nil, err
	}

	query := baseQueries[kind]
	args := []any{entityID}
	cols := filterColumns[kind]

	if criteria.Status != "" {
		query += " AND " + cols.status + " = ?"
		args = append(args, criteria.Status)
	}
	if criteria.ManagerID != nil {
		query += " AND " + cols.manager + " = ?"
		args = append(args, *criteria.ManagerID)
	}
	switch criteria.Overdue {
	case OverdueTasks:
		query += " AND " + cols.overdueTasks + " > ?"
		args = append(args, 0)
	case OverdueMilestones:
		query += " AND " + cols.overdueMilestones + " > ?"
		args = append(args, 0)
	case OverdueAny:
		// "any delay" is an OR over both counters; summing keeps the
		// one-clause one-parameter shape.
		query += " AND (" + cols.overdueTasks + " + " + cols.overdueMilestones + ") > ?"
		args = append(args, 0)
	}
	if criteria.MinRate != nil {
		query += " AND " + cols.rate + " >= ?"
		args = append(args, *criteria.MinRate)
	}
	if criteria.MaxRate != nil {
		query += " AND " + cols.rate + " <= ?"
		args = append(args, *criteria.MaxRate)
	}

	if strings.Count(query, "?") != len(args) {
		return "", nil, ErrParamMismatch
	}
	return query, args, nil
}
