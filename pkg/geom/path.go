package geom

// Path2 is an ordered point sequence, open or closed. A closed path's last
// rendered segment returns to its first point; the point slice does not
// repeat the first point at the end.
type Path2 struct {
	Points []Vec2
	Closed bool
	Color  *RGBA // optional stroke/fill color, nil when unstyled
}

// NewPath2 creates a path from points. The slice is used as-is; callers
// that reuse their slice should copy first.
func NewPath2(points []Vec2, closed bool) *Path2 {
	return &Path2{Points: points, Closed: closed}
}

// WithColor returns a copy of the path carrying the given color. The
// receiver is left untouched, so shared inputs are never mutated.
func (p *Path2) WithColor(c RGBA) *Path2 {
	out := *p
	out.Color = &c
	return &out
}
