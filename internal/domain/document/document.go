// Package document defines the renderer-agnostic block model a report is
// assembled into. A Document is produced once and never mutated afterwards;
// the rendering backend consumes the block sequence in order.
package document

// Block is one abstract unit of report content.
type Block interface {
	isBlock()
}

// Title is the report headline, rendered centered and prominent.
type Title struct {
	Text string
}

// Subtitle carries the generation timestamp line under the title.
type Subtitle struct {
	Text string
}

// Heading names one entity's section when a report batches several entities.
type Heading struct {
	Text string
}

// Row is one label/value pair of a KeyValueTable. Zebra marks rows the
// renderer should shade.
type Row struct {
	Label string
	Value string
	Zebra bool
}

// KeyValueTable is the fixed, ordered attribute table of one entity.
type KeyValueTable struct {
	Rows []Row
}

// Paragraph is a narrative text section. Label, when set, is rendered as a
// bold lead-in line above the text.
type Paragraph struct {
	Label string
	Text  string
}

// SectionBreak separates entity sections; the PDF backend maps it to a page
// break.
type SectionBreak struct{}

func (Title) isBlock()         {}
func (Subtitle) isBlock()      {}
func (Heading) isBlock()       {}
func (KeyValueTable) isBlock() {}
func (Paragraph) isBlock()     {}
func (SectionBreak) isBlock()  {}

// Document is an ordered block sequence.
type Document struct {
	Blocks []Block
}

func New() *Document {
	return &Document{}
}

func (d *Document) Append(blocks ...Block) {
	d.Blocks = append(d.Blocks, blocks...)
}

// Tables returns every KeyValueTable in document order.
func (d *Document) Tables() []KeyValueTable {
	var tables []KeyValueTable
	for _, block := range d.Blocks {
		if table, ok := block.(KeyValueTable); ok {
			tables = append(tables, table)
		}
	}
	return tables
}
