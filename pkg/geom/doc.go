// Package geom provides the 2D geometry primitives consumed by the SVG
// serialization pipeline.
//
// # Overview
//
// Two convertible shape kinds exist: [Path2], an open or closed ordered
// point sequence, and [Geom2], a filled region owning zero or more boundary
// outlines (holes and islands alike). Both may carry an optional [RGBA]
// color. [Geom3] stands in for solid geometry that cannot be serialized to
// a planar document; it exists so mixed inputs can be detected and reported.
//
// Shape kinds form a closed set: the [Shape] interface is sealed, so
// classification sites can switch exhaustively over the variants.
//
// # Basic Usage
//
// Construct shapes with [NewPath2] and [NewGeom2], attach colors with the
// WithColor methods (which return new values, never mutating the receiver),
// and measure extents with [Measure]:
//
//	p := geom.NewPath2([]geom.Vec2{{X: 0, Y: 0}, {X: 10, Y: 0}}, false)
//	p = p.WithColor(geom.RGBA{R: 1, A: 1})
//	b := geom.Measure(p)
//
// [Flatten] normalizes arbitrarily nested groupings ([]any trees) into the
// flat object sequence the serializer expects.
package geom
