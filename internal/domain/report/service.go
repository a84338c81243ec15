package report

import (
	"context"
	"os"
	"path/filepath"
	"time"

	"pmreport/internal/domain/document"
)

// Renderer is the document rendering backend. The engine hands over the
// finished block sequence and an output path; page geometry, fonts and
// colors are the renderer's own configuration.
type Renderer interface {
	Render(doc *document.Document, path string) error
}

// Service orchestrates validate -> assemble -> render for one request.
type Service struct {
	Provider  Provider
	Renderer  Renderer
	OutputDir string
	Now       func() time.Time
}

func NewService(provider Provider, renderer Renderer, outputDir string) *Service {
	return &Service{Provider: provider, Renderer: renderer, OutputDir: outputDir}
}

func (s *Service) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// Generate produces the report file and returns its path. Validation and
// storage errors surface before anything is written; a rendering failure is
// terminal with no retry or fallback location.
func (s *Service) Generate(ctx context.Context, req Request) (string, error) {
	now := s.now()
	assembler := &Assembler{Provider: s.Provider, Now: func() time.Time { return now }}

	doc, err := assembler.Assemble(ctx, req)
	if err != nil {
		return "", err
	}

	path := req.OutputPath(s.OutputDir, now)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", &RenderingError{Path: path, Err: err}
	}
	if err := s.Renderer.Render(doc, path); err != nil {
		return "", err
	}
	return path, nil
}
