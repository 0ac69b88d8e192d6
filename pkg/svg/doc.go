// Package svg converts in-memory 2D geometry into an SVG document.
//
// # Overview
//
// The conversion is a one-shot, pure, synchronous transformation: geometry
// objects in, a markup document out. Nothing is rendered, rasterized, or
// persisted, and no state survives a call, so [Serialize] may be invoked
// concurrently for independent inputs.
//
// The pipeline runs strictly one direction:
//
//	raw objects → classify → aggregate bounds → per-object convert → assemble
//
// Regions ([geom.Geom2]) become one group holding a single path whose "d"
// attribute concatenates every outline, filled with the region color using
// the even-odd rule. Paths ([geom.Path2]) become one group per object with
// an optional stroke. Everything is emitted as straight line segments; there
// are no curve primitives.
//
// Source geometry uses a Y-up convention; the document uses Y-down. Points
// are translated against the aggregate bounds and reflected into device
// space, then rounded half-away-from-zero at the configured precision.
//
// # Basic Usage
//
//	region := geom.NewGeom2(outlines).WithColor(geom.RGBA{R: 1, A: 1})
//	doc, err := svg.Serialize(svg.Options{Unit: "mm"}, region)
//	if err != nil {
//	    return err
//	}
//	os.WriteFile("out.svg", doc, 0644)
//
// Inputs that are neither regions nor paths are skipped with a warning; if
// no input is convertible at all, Serialize fails with an
// UNSUPPORTED_INPUT error.
package svg
