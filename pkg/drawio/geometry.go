package drawio

import (
	"bytes"
	"fmt"
	"strconv"
)

// Geometry is the position and size of a cell. Negative and fractional
// values are permitted; the format performs no range validation.
type Geometry struct {
	X, Y          float64
	Width, Height float64
}

// writeXML emits the self-closing mxGeometry element. The fixed
// as="geometry" attribute marks this as the geometry sub-element of the
// owning cell, as mandated by the format.
func (g Geometry) writeXML(buf *bytes.Buffer, indent string) {
	fmt.Fprintf(buf, `%s<mxGeometry x="%s" y="%s" width="%s" height="%s" as="geometry" />`,
		indent, formatNum(g.X), formatNum(g.Y), formatNum(g.Width), formatNum(g.Height))
}

// formatNum renders a float in its natural decimal form ("10", "10.5").
func formatNum(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func formatInt(i int) string {
	return strconv.Itoa(i)
}
