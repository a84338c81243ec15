package report

import "context"

// Row is the raw result of one per-entity report query. Optional textual and
// numeric columns stay as pointers so the null policy is applied in one
// place when the row is mapped to a typed record.
//
// The struct is the superset of the three view layouts; each kind's query
// fills only its own columns.
type Row struct {
	Name string

	// employee performance
	TeamLeader      *string
	CompletedTitles *string
	PendingTitles   *string

	// project progress / executive overview
	Manager              *string
	Status               *string
	OverallProgress      *float64
	TotalMilestones      int
	MilestoneNames       *string
	AvgMilestoneProgress *float64
	TeamsCount           int
	EmployeesCount       int
	OverdueTasks         int
	OverdueMilestones    int
	Teams                *string
	TeamLeaders          *string
	TaskTitles           *string

	// shared
	TotalTasks     int
	CompletedTasks int
	CanceledTasks  int
	CompletionRate *float64
}

// ReferenceRow is one entry of the bulk reference fetch used to warm a
// selection dialog's cache.
type ReferenceRow struct {
	ID                int
	Name              string
	Role              string
	Status            string
	ManagerID         int
	OverdueTasks      int
	OverdueMilestones int
	CompletionRate    float64
}

type RoleRow struct {
	ID   int
	Name string
}

type ManagerRow struct {
	ID   int
	Name string
}

// Provider is the storage collaborator. Implementations execute the query
// templates produced by BuildQuery and return rows in storage order; they
// must return (nil, nil) from QueryOne when no row matches.
type Provider interface {
	QueryOne(ctx context.Context, kind Kind, entityID int, criteria Criteria) (*Row, error)
	ReferenceBulk(ctx context.Context, kind Kind) ([]ReferenceRow, error)
	Roles(ctx context.Context) ([]RoleRow, error)
	Statuses(ctx context.Context) ([]string, error)
	Managers(ctx context.Context) ([]ManagerRow, error)
}
