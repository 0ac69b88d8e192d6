package geom

// Bounds is an axis-aligned bounding box given by its minimum and maximum
// corners. Three coordinates are tracked even for planar geometry.
type Bounds struct {
	Min, Max Vec3
}

// Measure computes the bounds of a single shape. A shape with no points
// (an empty path, or a region with no outlines) measures as a degenerate
// box at the origin. Solids measure as degenerate too; callers are
// expected to filter them out before measuring.
func Measure(s Shape) Bounds {
	switch s := s.(type) {
	case *Path2:
		return boundsOf(s.Points)
	case *Geom2:
		var all []Vec2
		for _, outline := range s.Outlines() {
			all = append(all, outline...)
		}
		return boundsOf(all)
	case *Geom3:
		return Bounds{}
	}
	return Bounds{}
}

// MeasureAll returns one bounds pair per shape, in input order.
func MeasureAll(shapes []Shape) []Bounds {
	out := make([]Bounds, len(shapes))
	for i, s := range shapes {
		out[i] = Measure(s)
	}
	return out
}

func boundsOf(points []Vec2) Bounds {
	if len(points) == 0 {
		return Bounds{}
	}
	b := Bounds{
		Min: Vec3{X: points[0].X, Y: points[0].Y},
		Max: Vec3{X: points[0].X, Y: points[0].Y},
	}
	for _, p := range points[1:] {
		if p.X < b.Min.X {
			b.Min.X = p.X
		}
		if p.Y < b.Min.Y {
			b.Min.Y = p.Y
		}
		if p.X > b.Max.X {
			b.Max.X = p.X
		}
		if p.Y > b.Max.Y {
			b.Max.Y = p.Y
		}
	}
	return b
}
