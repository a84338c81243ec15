package report

import "strings"

// OverdueFilter narrows project-kind reports to entities with overdue work.
// The three checkbox states of the selection dialogs are mutually exclusive,
// so they are modelled as one enum instead of independent booleans.
type OverdueFilter int

const (
	OverdueNone OverdueFilter = iota
	OverdueTasks
	OverdueMilestones
	OverdueAny
)

// ParseOverdueFilter accepts the wire spelling ("", "none", "tasks",
// "milestones", "any").
func ParseOverdueFilter(raw string) (OverdueFilter, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "", "none":
		return OverdueNone, nil
	case "tasks":
		return OverdueTasks, nil
	case "milestones":
		return OverdueMilestones, nil
	case "any":
		return OverdueAny, nil
	default:
		return OverdueNone, &ValidationError{Field: "overdue", Reason: "must be one of none, tasks, milestones, any"}
	}
}

func (f OverdueFilter) String() string {
	switch f {
	case OverdueTasks:
		return "tasks"
	case OverdueMilestones:
		return "milestones"
	case OverdueAny:
		return "any"
	default:
		return "none"
	}
}

// Criteria is the immutable set of optional filter predicates attached to a
// report request. The zero value means "no filter".
type Criteria struct {
	Status    string
	ManagerID *int
	Overdue   OverdueFilter
	MinRate   *float64
	MaxRate   *float64
}

// Empty reports whether no predicate is active.
func (c Criteria) Empty() bool {
	return c.Status == "" && c.ManagerID == nil && c.Overdue == OverdueNone &&
		c.MinRate == nil && c.MaxRate == nil
}

// Validate checks numeric bounds and per-kind filter support. It never
// clamps or corrects a value; a violation names the offending field.
func (c Criteria) Validate(kind Kind) error {
	if !kind.Valid() {
		return ErrUnknownKind
	}
	if c.MinRate != nil && (*c.MinRate < 0 || *c.MinRate > 100) {
		return &ValidationError{Field: "minRate", Reason: "must be between 0 and 100"}
	}
	if c.MaxRate != nil && (*c.MaxRate < 0 || *c.MaxRate > 100) {
		return &ValidationError{Field: "maxRate", Reason: "must be between 0 and 100"}
	}
	if c.MinRate != nil && c.MaxRate != nil && *c.MinRate > *c.MaxRate {
		return &ValidationError{Field: "minRate", Reason: "must not be greater than maxRate"}
	}

	cols := filterColumns[kind]
	if c.Status != "" && cols.status == "" {
		return &ValidationError{Field: "status", Reason: "not supported for report kind " + string(kind)}
	}
	if c.ManagerID != nil && cols.manager == "" {
		return &ValidationError{Field: "managerId", Reason: "not supported for report kind " + string(kind)}
	}
	if c.Overdue != OverdueNone && cols.overdueTasks == "" {
		return &ValidationError{Field: "overdue", Reason: "not supported for report kind " + string(kind)}
	}
	if (c.MinRate != nil || c.MaxRate != nil) && cols.rate == "" {
		return &ValidationError{Field: "minRate", Reason: "not supported for report kind " + string(kind)}
	}
	return nil
}
