package drawio

import (
	"bytes"
	"fmt"

	"github.com/google/uuid"
)

// Display flags for the mxGraphModel wrapper. These are fixed defaults
// from the interchange format, not computed values.
const (
	pageDX       = 2037
	pageDY       = 830
	pageGrid     = 1
	pageGridSize = 10
	pageGuides   = 1
	pageTooltips = 1
	pageConnect  = 1
	pageArrows   = 1
	pageFold     = 1
	pageScale    = 1
	pageWidth    = 850
	pageHeight   = 1100
	pageMath     = 0
	pageShadow   = 0
)

// Page is one tab of a document: an ordered sequence of cells wrapped in
// the diagram → mxGraphModel → root element chain. Z-order is insertion
// order. Every page implicitly owns the two structural cells "0" (root)
// and "1" (default layer); they are emitted first and never exposed.
type Page struct {
	Name string

	id    string
	doc   *Document // back-reference for lookups, not ownership
	cells []*Cell
}

// NewPage creates a page for the given document. The page is not added to
// the document; call [Document.AddPage]. An empty name defaults to
// "Page-N" based on the document's current page count.
func NewPage(doc *Document, name string) *Page {
	if name == "" {
		n := 1
		if doc != nil {
			n = len(doc.pages) + 1
		}
		name = fmt.Sprintf("Page-%d", n)
	}
	return &Page{Name: name, id: uuid.NewString(), doc: doc}
}

// ID returns the generated page identifier.
func (p *Page) ID() string {
	return p.id
}

// AddCell appends a cell to the page. Identifier uniqueness is not checked
// here; the document validates it during serialization.
func (p *Page) AddCell(c *Cell) {
	p.cells = append(p.cells, c)
}

// RemoveCell removes a cell by identity. Removing a cell that is not on
// the page is a programming error and fails with a [NotFoundError].
func (p *Page) RemoveCell(c *Cell) error {
	for i, existing := range p.cells {
		if existing == c {
			p.cells = append(p.cells[:i], p.cells[i+1:]...)
			return nil
		}
	}
	return &NotFoundError{Kind: "cell", ID: c.ID}
}

// Cells returns the user cells in insertion order. Structural cells are
// not included.
func (p *Page) Cells() []*Cell {
	out := make([]*Cell, len(p.cells))
	copy(out, p.cells)
	return out
}

// writeXML emits the page's three nested wrapper elements and all cells.
// num is the 1-based position of the page within its document.
func (p *Page) writeXML(buf *bytes.Buffer, num int) error {
	fmt.Fprintf(buf, `  <diagram name="%s" id="%s">`, Escape(p.Name), Escape(p.id))
	buf.WriteByte('\n')
	fmt.Fprintf(buf,
		`    <mxGraphModel dx="%d" dy="%d" grid="%d" gridSize="%d" guides="%d" toolTips="%d" connect="%d" arrows="%d" fold="%d" page="%d" pageScale="%d" pageWidth="%d" pageHeight="%d" math="%d" shadow="%d">`,
		pageDX, pageDY, pageGrid, pageGridSize, pageGuides, pageTooltips,
		pageConnect, pageArrows, pageFold, num, pageScale, pageWidth,
		pageHeight, pageMath, pageShadow)
	buf.WriteByte('\n')
	buf.WriteString("      <root>\n")

	// The two mandatory structural cells, always first and in this order.
	buf.WriteString(`        <mxCell id="0" />`)
	buf.WriteByte('\n')
	buf.WriteString(`        <mxCell id="1" parent="0" />`)
	buf.WriteByte('\n')

	for _, c := range p.cells {
		if err := c.writeXML(buf, "        "); err != nil {
			return err
		}
		buf.WriteByte('\n')
	}

	buf.WriteString("      </root>\n")
	buf.WriteString("    </mxGraphModel>\n")
	buf.WriteString("  </diagram>")
	return nil
}
