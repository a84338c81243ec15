// Package pdf renders a block document to a PDF file with gofpdf.
package pdf

import (
	"github.com/jung-kurt/gofpdf"

	"pmreport/internal/domain/document"
	"pmreport/internal/domain/report"
)

// Config is the caller-owned rendering configuration: acquired once per
// process and passed in, never a package-level cache.
type Config struct {
	Orientation string
	PageSize    string
	FontFamily  string
	MarginMM    float64
}

func (c Config) withDefaults() Config {
	if c.Orientation == "" {
		c.Orientation = "P"
	}
	if c.PageSize == "" {
		c.PageSize = "A4"
	}
	if c.FontFamily == "" {
		c.FontFamily = "Helvetica"
	}
	if c.MarginMM == 0 {
		c.MarginMM = 15
	}
	return c
}

type Renderer struct {
	cfg Config
}

func New(cfg Config) *Renderer {
	return &Renderer{cfg: cfg.withDefaults()}
}

const (
	labelColWidth = 60
	rowHeight     = 8
)

// Render writes the document to path. Block order is preserved verbatim; a
// SectionBreak starts a new page.
func (r *Renderer) Render(doc *document.Document, path string) error {
	pdf := gofpdf.New(r.cfg.Orientation, "mm", r.cfg.PageSize, "")
	pdf.SetMargins(r.cfg.MarginMM, r.cfg.MarginMM, r.cfg.MarginMM)
	pdf.SetAutoPageBreak(true, r.cfg.MarginMM)
	// Polish labels need a cp1250 translation on the core fonts.
	tr := pdf.UnicodeTranslatorFromDescriptor("cp1250")
	pdf.AddPage()

	pageWidth, _ := pdf.GetPageSize()
	usableWidth := pageWidth - 2*r.cfg.MarginMM

	for _, block := range doc.Blocks {
		switch b := block.(type) {
		case document.Title:
			pdf.SetFont(r.cfg.FontFamily, "B", 20)
			pdf.CellFormat(usableWidth, 12, tr(b.Text), "", 1, "C", false, 0, "")
			pdf.Ln(2)
		case document.Subtitle:
			pdf.SetFont(r.cfg.FontFamily, "I", 10)
			pdf.CellFormat(usableWidth, 6, tr(b.Text), "", 1, "C", false, 0, "")
			pdf.Ln(6)
		case document.Heading:
			pdf.SetFont(r.cfg.FontFamily, "B", 16)
			pdf.CellFormat(usableWidth, 10, tr(b.Text), "", 1, "L", false, 0, "")
			pdf.Ln(2)
		case document.KeyValueTable:
			r.renderTable(pdf, tr, b, usableWidth)
			pdf.Ln(6)
		case document.Paragraph:
			if b.Label != "" {
				pdf.SetFont(r.cfg.FontFamily, "B", 12)
				pdf.CellFormat(usableWidth, 7, tr(b.Label), "", 1, "L", false, 0, "")
			}
			pdf.SetFont(r.cfg.FontFamily, "", 11)
			pdf.MultiCell(usableWidth, 6, tr(b.Text), "", "L", false)
			pdf.Ln(4)
		case document.SectionBreak:
			pdf.AddPage()
		}
	}

	if err := pdf.OutputFileAndClose(path); err != nil {
		return &report.RenderingError{Path: path, Err: err}
	}
	return nil
}

func (r *Renderer) renderTable(pdf *gofpdf.Fpdf, tr func(string) string, table document.KeyValueTable, usableWidth float64) {
	valueWidth := usableWidth - labelColWidth
	pdf.SetFillColor(230, 230, 230)
	for _, row := range table.Rows {
		pdf.SetFont(r.cfg.FontFamily, "B", 11)
		pdf.CellFormat(labelColWidth, rowHeight, tr(row.Label), "1", 0, "L", row.Zebra, 0, "")
		pdf.SetFont(r.cfg.FontFamily, "", 11)
		pdf.CellFormat(valueWidth, rowHeight, tr(row.Value), "1", 1, "L", row.Zebra, 0, "")
	}
}
