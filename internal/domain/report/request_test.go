package report_test

import (
	"path/filepath"
	"testing"
	"time"

	"pmreport/internal/domain/report"
)

func TestOutputFileNameWithCustomName(t *testing.T) {
	req := report.Request{Kind: report.KindEmployeePerformance, FileName: " kwartalny "}
	if name := req.OutputFileName(fixedNow()); name != "kwartalny.pdf" {
		t.Fatalf("expected kwartalny.pdf, got %q", name)
	}
}

func TestOutputFileNameDefaultsToPrefixAndTimestamp(t *testing.T) {
	cases := map[report.Kind]string{
		report.KindEmployeePerformance: "Raport_Wydajności_2026-03-14_09-30-15.pdf",
		report.KindProjectProgress:     "Raport_postepu_projektu_2026-03-14_09-30-15.pdf",
		report.KindExecutiveOverview:   "Raport_zarzadczy_2026-03-14_09-30-15.pdf",
	}
	for kind, want := range cases {
		req := report.Request{Kind: kind}
		if name := req.OutputFileName(fixedNow()); name != want {
			t.Fatalf("kind %s: expected %q, got %q", kind, want, name)
		}
	}
}

func TestOutputPathPrefersRequestDirectory(t *testing.T) {
	req := report.Request{Kind: report.KindProjectProgress, FileName: "raport", Directory: "/data/exports"}
	want := filepath.Join("/data/exports", "raport.pdf")
	if path := req.OutputPath("/default", fixedNow()); path != want {
		t.Fatalf("expected %q, got %q", want, path)
	}

	req.Directory = "  "
	want = filepath.Join("/default", "raport.pdf")
	if path := req.OutputPath("/default", fixedNow()); path != want {
		t.Fatalf("expected fallback to default dir, got %q", path)
	}
}

func TestRequestValidate(t *testing.T) {
	valid := report.Request{Kind: report.KindProjectProgress, EntityIDs: []int{1}}
	if err := valid.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := (report.Request{Kind: "weird", EntityIDs: []int{1}}).Validate(); err != report.ErrUnknownKind {
		t.Fatalf("expected ErrUnknownKind, got %v", err)
	}
	if err := (report.Request{Kind: report.KindProjectProgress}).Validate(); err != report.ErrNoEntities {
		t.Fatalf("expected ErrNoEntities, got %v", err)
	}
}

func TestParseKind(t *testing.T) {
	kind, err := report.ParseKind(" Employee_Performance ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if kind != report.KindEmployeePerformance {
		t.Fatalf("expected employee kind, got %v", kind)
	}

	if _, err := report.ParseKind("timesheet"); err != report.ErrUnknownKind {
		t.Fatalf("expected ErrUnknownKind, got %v", err)
	}
}

func TestTimestampLayoutIsFileSystemSafe(t *testing.T) {
	stamp := time.Date(2026, time.December, 31, 23, 59, 59, 0, time.UTC).Format(report.TimestampLayout)
	if stamp != "2026-12-31_23-59-59" {
		t.Fatalf("unexpected timestamp %q", stamp)
	}
}
