package report_test

import (
	"testing"

	"pmreport/internal/domain/report"
)

func TestRoleLabelRoundTrip(t *testing.T) {
	cases := map[string]string{
		"teamLider":      "Team Lider",
		"projektManager": "Projekt Manager",
		"pracownik":      "Pracownik",
		"prezes":         "Prezes",
	}
	for name, label := range cases {
		if got := report.RoleLabel(name); got != label {
			t.Fatalf("RoleLabel(%q): expected %q, got %q", name, label, got)
		}
		if got := report.RoleName(label); got != name {
			t.Fatalf("RoleName(%q): expected %q, got %q", label, name, got)
		}
	}
}

func TestUnknownRolePassesThrough(t *testing.T) {
	if got := report.RoleLabel("analityk"); got != "analityk" {
		t.Fatalf("expected passthrough, got %q", got)
	}
	if got := report.RoleName("Analityk"); got != "Analityk" {
		t.Fatalf("expected passthrough, got %q", got)
	}
}
