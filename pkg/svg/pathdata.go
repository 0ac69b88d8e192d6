package svg

import (
	"bytes"

	"github.com/jozzs/svgcast/pkg/geom"
)

// pathData converts a path into its move/line instruction string. The
// first logical point emits "M{x} {y}", every following point "L{x} {y}",
// with no separator between instructions. A closed path walks one extra
// logical point that wraps back to point 0, producing the segment that
// returns to the start. An empty path yields an empty string.
func pathData(p *geom.Path2, bounds geom.Bounds, decimals int) string {
	if len(p.Points) == 0 {
		return ""
	}

	logical := len(p.Points)
	if p.Closed {
		logical++
	}

	var buf bytes.Buffer
	buf.Grow(logical * 16)
	for i := 0; i < logical; i++ {
		idx := i
		if idx >= len(p.Points) {
			idx -= len(p.Points)
		}
		d := devicePoint(p.Points[idx], bounds, decimals)
		if i == 0 {
			buf.WriteByte('M')
		} else {
			buf.WriteByte('L')
		}
		buf.WriteString(fmtNum(d.X))
		buf.WriteByte(' ')
		buf.WriteString(fmtNum(d.Y))
	}
	return buf.String()
}
