package drawio

import (
	"bytes"
	"fmt"

	"github.com/odtools/oddraw/pkg/errors"
)

// LayerID is the identifier of the default layer cell every page contains.
// User cells parent to it unless told otherwise.
const LayerID = "1"

// Cell is one visible shape in the interchange file: an mxCell element
// with identity, style, geometry and a parent reference.
type Cell struct {
	ID       string
	Value    string // display text, escaped at serialization
	Style    *Style
	Geometry Geometry
	Parent   string // parent cell id, defaults to the page layer
}

// NewCell constructs a cell. An empty parent defaults to the page's layer
// cell ("1"). Identifier validity is judged at serialization time, where
// the owning document has global visibility; an empty id is accepted here
// and rejected there.
func NewCell(id, value string, style *Style, geom Geometry, parent string) *Cell {
	if parent == "" {
		parent = LayerID
	}
	if style == nil {
		style = NewStyle("")
	}
	return &Cell{ID: id, Value: value, Style: style, Geometry: geom, Parent: parent}
}

// writeXML emits the mxCell element with its nested geometry. The style
// string is encoded first and then escaped as attribute content, so style
// values may contain characters outside the style grammar without
// producing malformed XML.
func (c *Cell) writeXML(buf *bytes.Buffer, indent string) error {
	if c.ID == "" {
		return errors.New(errors.ErrCodeInvalidInput, "cell has empty identifier")
	}

	style, err := c.Style.Encode()
	if err != nil {
		return err
	}

	fmt.Fprintf(buf, `%s<mxCell id="%s" value="%s" style="%s" vertex="1" parent="%s">`,
		indent, Escape(c.ID), Escape(c.Value), Escape(style), Escape(c.Parent))
	buf.WriteByte('\n')
	c.Geometry.writeXML(buf, indent+"  ")
	buf.WriteByte('\n')
	fmt.Fprintf(buf, "%s</mxCell>", indent)
	return nil
}
