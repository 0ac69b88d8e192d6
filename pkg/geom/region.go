package geom

// Geom2 is a filled planar region bounded by zero or more polygonal
// outlines. Outlines include holes and islands; no winding convention is
// imposed here, the consumer decides the fill rule.
type Geom2 struct {
	outlines [][]Vec2
	Color    *RGBA // optional fill color applied to the whole region, nil when unstyled
}

// NewGeom2 creates a region from its boundary outlines.
func NewGeom2(outlines [][]Vec2) *Geom2 {
	return &Geom2{outlines: outlines}
}

// Outlines decomposes the region into its boundary polylines, one point
// slice per outline. Every outline is implicitly closed.
func (g *Geom2) Outlines() [][]Vec2 {
	return g.outlines
}

// WithColor returns a copy of the region carrying the given color. The
// receiver is left untouched.
func (g *Geom2) WithColor(c RGBA) *Geom2 {
	out := *g
	out.Color = &c
	return &out
}
