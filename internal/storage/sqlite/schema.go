package sqlite

// Schema bootstrap for the local single-file mode. Statements are applied in
// order on open; everything is IF NOT EXISTS so reopening a database is a
// no-op.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS roles (
    id   INTEGER PRIMARY KEY,
    name TEXT NOT NULL UNIQUE
  )`,
	`CREATE TABLE IF NOT EXISTS users (
    id         INTEGER PRIMARY KEY,
    first_name TEXT NOT NULL,
    last_name  TEXT NOT NULL,
    role_id    INTEGER NOT NULL REFERENCES roles(id)
  )`,
	`CREATE TABLE IF NOT EXISTS teams (
    id        INTEGER PRIMARY KEY,
    name      TEXT NOT NULL,
    leader_id INTEGER REFERENCES users(id)
  )`,
	`CREATE TABLE IF NOT EXISTS team_members (
    team_id INTEGER NOT NULL REFERENCES teams(id),
    user_id INTEGER NOT NULL REFERENCES users(id),
    PRIMARY KEY (team_id, user_id)
  )`,
	`CREATE TABLE IF NOT EXISTS projects (
    id         INTEGER PRIMARY KEY,
    name       TEXT NOT NULL,
    status     TEXT NOT NULL,
    manager_id INTEGER REFERENCES users(id),
    progress   REAL NOT NULL DEFAULT 0
  )`,
	`CREATE TABLE IF NOT EXISTS project_teams (
    project_id INTEGER NOT NULL REFERENCES projects(id),
    team_id    INTEGER NOT NULL REFERENCES teams(id),
    PRIMARY KEY (project_id, team_id)
  )`,
	`CREATE TABLE IF NOT EXISTS milestones (
    id         INTEGER PRIMARY KEY,
    project_id INTEGER NOT NULL REFERENCES projects(id),
    name       TEXT NOT NULL,
    progress   REAL NOT NULL DEFAULT 0,
    due_date   TEXT,
    completed  INTEGER NOT NULL DEFAULT 0
  )`,
	`CREATE TABLE IF NOT EXISTS tasks (
    id          INTEGER PRIMARY KEY,
    project_id  INTEGER REFERENCES projects(id),
    assignee_id INTEGER REFERENCES users(id),
    title       TEXT NOT NULL,
    status      TEXT NOT NULL DEFAULT 'pending',
    due_date    TEXT
  )`,
	`CREATE VIEW IF NOT EXISTS vw_employee_performance AS
  SELECT
    u.id AS user_id,
    u.first_name || ' ' || u.last_name AS employee,
    (SELECT lu.first_name || ' ' || lu.last_name
       FROM team_members tm
       JOIN teams t ON t.id = tm.team_id
       JOIN users lu ON lu.id = t.leader_id
      WHERE tm.user_id = u.id
      LIMIT 1) AS team_leader,
    COUNT(k.id) AS total_tasks,
    COALESCE(SUM(CASE WHEN k.status = 'completed' THEN 1 ELSE 0 END), 0) AS completed,
    COALESCE(SUM(CASE WHEN k.status = 'canceled' THEN 1 ELSE 0 END), 0) AS canceled,
    GROUP_CONCAT(CASE WHEN k.status = 'completed' THEN k.title END, ', ') AS completed_tasks_titles,
    GROUP_CONCAT(CASE WHEN k.status NOT IN ('completed', 'canceled') THEN k.title END, ', ') AS pending_tasks_titles,
    CASE WHEN COUNT(k.id) = 0 THEN 0
         ELSE ROUND(SUM(CASE WHEN k.status = 'completed' THEN 1 ELSE 0 END) * 100.0 / COUNT(k.id), 2)
    END AS completion_rate
  FROM users u
  LEFT JOIN tasks k ON k.assignee_id = u.id
  GROUP BY u.id`,
	`CREATE VIEW IF NOT EXISTS vw_project_progress AS
  SELECT
    p.id AS project_id,
    p.name AS project,
    (SELECT mu.first_name || ' ' || mu.last_name FROM users mu WHERE mu.id = p.manager_id) AS manager,
    p.manager_id AS manager_id,
    p.status AS status,
    p.progress AS overall_progress,
    (SELECT COUNT(1) FROM milestones m WHERE m.project_id = p.id) AS total_milestones,
    (SELECT GROUP_CONCAT(m.name, ', ') FROM milestones m WHERE m.project_id = p.id) AS milestone_names,
    (SELECT COUNT(1) FROM tasks k WHERE k.project_id = p.id) AS total_tasks,
    (SELECT GROUP_CONCAT(k.title, ', ') FROM tasks k WHERE k.project_id = p.id) AS task_titles,
    (SELECT COUNT(1) FROM tasks k WHERE k.project_id = p.id AND k.status = 'completed') AS completed_tasks,
    (SELECT COUNT(1) FROM tasks k WHERE k.project_id = p.id AND k.status = 'canceled') AS canceled_tasks,
    (SELECT ROUND(AVG(m.progress), 2) FROM milestones m WHERE m.project_id = p.id) AS avg_milestone_progress,
    (SELECT CASE WHEN COUNT(1) = 0 THEN 0
                 ELSE ROUND(SUM(CASE WHEN k.status = 'completed' THEN 1 ELSE 0 END) * 100.0 / COUNT(1), 2)
            END
       FROM tasks k WHERE k.project_id = p.id) AS task_completion_rate,
    (SELECT GROUP_CONCAT(t.name, ', ')
       FROM project_teams pt JOIN teams t ON t.id = pt.team_id
      WHERE pt.project_id = p.id) AS involved_teams,
    (SELECT GROUP_CONCAT(lu.first_name || ' ' || lu.last_name, ', ')
       FROM project_teams pt
       JOIN teams t ON t.id = pt.team_id
       JOIN users lu ON lu.id = t.leader_id
      WHERE pt.project_id = p.id) AS team_leaders
  FROM projects p`,
	`CREATE VIEW IF NOT EXISTS vw_executive_overview AS
  SELECT
    p.id AS project_id,
    p.name AS project,
    p.status AS project_status,
    p.progress AS project_progress,
    (SELECT mu.first_name || ' ' || mu.last_name FROM users mu WHERE mu.id = p.manager_id) AS project_manager,
    p.manager_id AS manager_id,
    (SELECT COUNT(1) FROM project_teams pt WHERE pt.project_id = p.id) AS teams_involved,
    (SELECT COUNT(DISTINCT tm.user_id)
       FROM project_teams pt JOIN team_members tm ON tm.team_id = pt.team_id
      WHERE pt.project_id = p.id) AS employees_assigned,
    (SELECT COUNT(1) FROM milestones m WHERE m.project_id = p.id) AS milestones,
    (SELECT COUNT(1) FROM tasks k WHERE k.project_id = p.id) AS total_tasks,
    (SELECT COUNT(1) FROM tasks k WHERE k.project_id = p.id AND k.status = 'completed') AS tasks_done,
    (SELECT COUNT(1) FROM tasks k WHERE k.project_id = p.id AND k.status = 'canceled') AS tasks_canceled,
    (SELECT CASE WHEN COUNT(1) = 0 THEN 0
                 ELSE ROUND(SUM(CASE WHEN k.status = 'completed' THEN 1 ELSE 0 END) * 100.0 / COUNT(1), 2)
            END
       FROM tasks k WHERE k.project_id = p.id) AS task_completion_rate,
    (SELECT ROUND(AVG(m.progress), 2) FROM milestones m WHERE m.project_id = p.id) AS avg_milestone_progress,
    (SELECT COUNT(1) FROM milestones m
      WHERE m.project_id = p.id AND m.completed = 0
        AND m.due_date IS NOT NULL AND m.due_date < date('now')) AS overdue_milestones,
    (SELECT COUNT(1) FROM tasks k
      WHERE k.project_id = p.id AND k.status NOT IN ('completed', 'canceled')
        AND k.due_date IS NOT NULL AND k.due_date < date('now')) AS overdue_tasks,
    (SELECT GROUP_CONCAT(t.name, ', ')
       FROM project_teams pt JOIN teams t ON t.id = pt.team_id
      WHERE pt.project_id = p.id) AS involved_teams,
    (SELECT GROUP_CONCAT(lu.first_name || ' ' || lu.last_name, ', ')
       FROM project_teams pt
       JOIN teams t ON t.id = pt.team_id
       JOIN users lu ON lu.id = t.leader_id
      WHERE pt.project_id = p.id) AS team_leaders,
    (SELECT GROUP_CONCAT(k.title, ', ') FROM tasks k WHERE k.project_id = p.id) AS task_titles
  FROM projects p`,
}
