package report_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"pmreport/internal/domain/document"
	"pmreport/internal/domain/report"
)

type captureRenderer struct {
	doc  *document.Document
	path string
	err  error
}

func (r *captureRenderer) Render(doc *document.Document, path string) error {
	r.doc = doc
	r.path = path
	return r.err
}

func TestServiceGenerateResolvesPathAndRenders(t *testing.T) {
	provider := &fakeProvider{rows: map[int]*report.Row{1: employeeTestRow("Jan Kowalski")}}
	renderer := &captureRenderer{}
	outputDir := filepath.Join(t.TempDir(), "reports")

	service := report.NewService(provider, renderer, outputDir)
	service.Now = fixedNow

	path, err := service.Generate(context.Background(), report.Request{
		Kind:      report.KindEmployeePerformance,
		EntityIDs: []int{1},
	})
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}

	want := filepath.Join(outputDir, "Raport_Wydajności_2026-03-14_09-30-15.pdf")
	if path != want {
		t.Fatalf("expected path %q, got %q", want, path)
	}
	if renderer.path != want {
		t.Fatalf("renderer received path %q", renderer.path)
	}
	if renderer.doc == nil || len(renderer.doc.Blocks) == 0 {
		t.Fatal("renderer received no document")
	}
	if _, err := os.Stat(outputDir); err != nil {
		t.Fatalf("expected output directory to exist: %v", err)
	}
}

func TestServiceGenerateStopsBeforeRenderOnValidationError(t *testing.T) {
	renderer := &captureRenderer{}
	service := report.NewService(&fakeProvider{}, renderer, t.TempDir())

	_, err := service.Generate(context.Background(), report.Request{Kind: "unknown", EntityIDs: []int{1}})
	if !errors.Is(err, report.ErrUnknownKind) {
		t.Fatalf("expected ErrUnknownKind, got %v", err)
	}
	if renderer.doc != nil {
		t.Fatal("renderer must not run for invalid requests")
	}
}

func TestServiceGeneratePropagatesRenderError(t *testing.T) {
	provider := &fakeProvider{rows: map[int]*report.Row{1: employeeTestRow("Jan Kowalski")}}
	renderer := &captureRenderer{err: &report.RenderingError{Path: "x", Err: errors.New("disk full")}}
	service := report.NewService(provider, renderer, t.TempDir())

	_, err := service.Generate(context.Background(), report.Request{
		Kind:      report.KindEmployeePerformance,
		EntityIDs: []int{1},
	})
	var renderErr *report.RenderingError
	if !errors.As(err, &renderErr) {
		t.Fatalf("expected rendering error, got %v", err)
	}
}
