package config

import "testing"

func validConfig() Config {
	return Config{
		Addr:           ":8080",
		SQLitePath:     "reports.db",
		OutputDir:      "storage/reports",
		PDFOrientation: "P",
	}
}

func TestValidateAcceptsSingleBackend(t *testing.T) {
	if err := validConfig().Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	cfg := validConfig()
	cfg.SQLitePath = ""
	cfg.DatabaseURL = "postgres://localhost/reports"
	if err := cfg.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidateRejectsNoBackend(t *testing.T) {
	cfg := validConfig()
	cfg.SQLitePath = " "
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error when no backend is configured")
	}
}

func TestValidateRejectsBothBackends(t *testing.T) {
	cfg := validConfig()
	cfg.DatabaseURL = "postgres://localhost/reports"
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error when both backends are configured")
	}
}

func TestValidateRejectsBadOrientation(t *testing.T) {
	cfg := validConfig()
	cfg.PDFOrientation = "portrait"
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for unknown orientation")
	}
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("APP_ADDR", "")
	t.Setenv("PDF_PAGE_SIZE", "")
	t.Setenv("PDF_ORIENTATION", "")
	t.Setenv("REPORT_OUTPUT_DIR", "")

	cfg := Load()
	if cfg.Addr != ":8080" {
		t.Fatalf("unexpected default addr %q", cfg.Addr)
	}
	if cfg.PDFPageSize != "A4" || cfg.PDFOrientation != "P" {
		t.Fatalf("unexpected PDF defaults %q/%q", cfg.PDFPageSize, cfg.PDFOrientation)
	}
	if cfg.OutputDir == "" {
		t.Fatal("expected a default output directory")
	}
}
