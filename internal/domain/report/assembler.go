package report

import (
	"context"
	"time"

	"pmreport/internal/domain/document"
)

// Assembler turns a Request into a block document. It runs one query per
// requested entity, preserving the input order verbatim, and fails fast on
// the first storage error so a multi-entity report never misrepresents
// completeness.
type Assembler struct {
	Provider Provider
	Now      func() time.Time
}

func NewAssembler(provider Provider) *Assembler {
	return &Assembler{Provider: provider}
}

func (a *Assembler) now() time.Time {
	if a.Now != nil {
		return a.Now()
	}
	return time.Now()
}

func (a *Assembler) Assemble(ctx context.Context, req Request) (*document.Document, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	batched := len(req.EntityIDs) > 1
	doc := document.New()
	doc.Append(
		document.Title{Text: req.Kind.Title(batched)},
		document.Subtitle{Text: "Wygenerowano: " + a.now().Format(TimestampLayout)},
	)

	rendered := 0
	for _, entityID := range req.EntityIDs {
		row, err := a.Provider.QueryOne(ctx, req.Kind, entityID, req.Criteria)
		if err != nil {
			return nil, wrapStorageError(err)
		}
		if row == nil {
			// No row for this entity is a normal outcome; skip it without
			// emitting an empty section.
			continue
		}

		if rendered > 0 {
			doc.Append(document.SectionBreak{})
		}
		if batched {
			doc.Append(document.Heading{Text: req.Kind.Heading() + ": " + row.Name})
		}
		doc.Append(entityBlocks(req.Kind, row)...)
		rendered++
	}

	if rendered == 0 {
		doc.Append(document.Paragraph{Text: req.Kind.Fallback()})
	}
	return doc, nil
}

func entityBlocks(kind Kind, row *Row) []document.Block {
	switch kind {
	case KindEmployeePerformance:
		return newEmployeePerformance(row).blocks()
	case KindProjectProgress:
		return newProjectProgress(row).blocks()
	default:
		return newExecutiveOverview(row).blocks()
	}
}

func wrapStorageError(err error) error {
	switch err.(type) {
	case *StorageError, *ValidationError:
		return err
	}
	return &StorageError{Op: "query report row", Err: err}
}
