package geom

// Vec2 is a point in the source (model) coordinate system, Y increasing
// upward.
type Vec2 struct {
	X, Y float64
}

// Vec3 is a three-coordinate point. Bounds measurement tracks three
// coordinates even for planar geometry, with Z fixed at zero.
type Vec3 struct {
	X, Y, Z float64
}

// RGBA is a color with all channels as floats in [0,1].
type RGBA struct {
	R, G, B, A float64
}

// Shape is the closed set of geometry kinds. It is sealed: only types in
// this package implement it, so consumers can switch exhaustively over
// *Path2, *Geom2, and *Geom3.
type Shape interface {
	isShape()
}

func (*Path2) isShape() {}
func (*Geom2) isShape() {}
func (*Geom3) isShape() {}

// Flatten normalizes arbitrarily nested groupings into a flat object
// sequence. Elements that are []any slices are expanded recursively; all
// other elements pass through unchanged, preserving order.
func Flatten(objects ...any) []any {
	flat := make([]any, 0, len(objects))
	for _, obj := range objects {
		if group, ok := obj.([]any); ok {
			flat = append(flat, Flatten(group...)...)
			continue
		}
		flat = append(flat, obj)
	}
	return flat
}
