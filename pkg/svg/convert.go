package svg

import (
	"bytes"
	"fmt"

	"github.com/jozzs/svgcast/pkg/geom"
)

// convertGeom2 converts a filled region into a single group node holding
// one path whose "d" attribute concatenates the instruction strings of
// every outline. The region color, when present, is propagated onto new
// path values (the shared input is never mutated) and attached as an
// even-odd fill.
func convertGeom2(g *geom.Geom2, bounds geom.Bounds, decimals int) *Elem {
	var combined bytes.Buffer
	for _, outline := range g.Outlines() {
		path := geom.NewPath2(outline, true)
		if g.Color != nil {
			path = path.WithColor(*g.Color)
		}
		combined.WriteString(pathData(path, bounds, decimals))
	}

	path := NewElem("path").SetAttr("d", combined.String())
	if g.Color != nil {
		path.SetAttr("fill-rule", "evenodd")
		path.SetAttr("fill", rgbString(*g.Color))
	}
	return NewElem("g").Append(path)
}

// convertPath2 converts a path object into a group node holding its own
// path node. A colored path is stroked with unit width.
func convertPath2(p *geom.Path2, bounds geom.Bounds, decimals int) *Elem {
	path := NewElem("path").SetAttr("d", pathData(p, bounds, decimals))
	if p.Color != nil {
		path.SetAttr("stroke", rgbString(*p.Color))
		path.SetAttr("stroke-width", "1")
	}
	return NewElem("g").Append(path)
}

// rgbString renders a color as an rgb() function value. Every channel is
// scaled from [0,1] to [0,255] — including alpha, which therefore exceeds
// the range rgb() defines for its fourth argument. Documents already in
// the wild carry this form, so it is kept as-is.
func rgbString(c geom.RGBA) string {
	return fmt.Sprintf("rgb(%s,%s,%s,%s)",
		fmtNum(c.R*255), fmtNum(c.G*255), fmtNum(c.B*255), fmtNum(c.A*255))
}
