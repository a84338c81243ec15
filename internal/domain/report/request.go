package report

import (
	"path/filepath"
	"strings"
	"time"
)

// TimestampLayout is the format used for subtitles and generated file names.
const TimestampLayout = "2006-01-02_15-04-05"

// Request describes one report generation. It is constructed once per user
// action, consumed once, and never mutated.
type Request struct {
	Kind      Kind
	EntityIDs []int
	Criteria  Criteria
	FileName  string
	Directory string
}

func (r Request) Validate() error {
	if !r.Kind.Valid() {
		return ErrUnknownKind
	}
	if len(r.EntityIDs) == 0 {
		return ErrNoEntities
	}
	return r.Criteria.Validate(r.Kind)
}

// OutputFileName resolves the file name: the custom name with a ".pdf"
// suffix when provided, otherwise the kind's prefix plus a timestamp.
func (r Request) OutputFileName(now time.Time) string {
	name := strings.TrimSpace(r.FileName)
	if name != "" {
		return name + ".pdf"
	}
	return r.Kind.FilePrefix() + "_" + now.Format(TimestampLayout) + ".pdf"
}

// OutputPath joins the request directory (or the caller's default when the
// request has none) with the resolved file name.
func (r Request) OutputPath(defaultDir string, now time.Time) string {
	dir := strings.TrimSpace(r.Directory)
	if dir == "" {
		dir = defaultDir
	}
	return filepath.Join(dir, r.OutputFileName(now))
}
