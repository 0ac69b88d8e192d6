package svg

import (
	"bytes"
	"fmt"
	"time"

	"github.com/jozzs/svgcast/pkg/errors"
	"github.com/jozzs/svgcast/pkg/geom"
	"github.com/jozzs/svgcast/pkg/observability"
)

// MimeType is the media type of produced documents.
const MimeType = "image/svg+xml"

// docHeader precedes the serialized element tree in every document.
const docHeader = `<?xml version="1.0" encoding="UTF-8"?>
<!DOCTYPE svg PUBLIC "-//W3C//DTD SVG 1.1//EN" "http://www.w3.org/Graphics/SVG/1.1/DTD/svg11.dtd">
<!-- Generated by svgcast -->
`

// Serialize converts geometry objects into a single SVG document.
//
// Inputs may be arbitrarily nested []any groupings; they are flattened
// first. Objects that are neither *geom.Geom2 nor *geom.Path2 are skipped
// with a warning on the configured logger. If nothing is convertible,
// Serialize returns an UNSUPPORTED_INPUT error.
//
// The call is pure and synchronous: equal inputs and options produce
// byte-identical documents, and concurrent calls do not interfere.
func Serialize(opts Options, objects ...any) ([]byte, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}

	flat := geom.Flatten(objects...)
	shapes, skipped := filter2D(flat)
	if len(shapes) == 0 {
		return nil, errors.New(errors.ErrCodeUnsupportedInput, "only 2D geometry can be serialized")
	}
	if skipped > 0 {
		opts.Logger.Warnf("%d objects could not be serialized", skipped)
	}

	start := time.Now()
	observability.Serializer().OnSerializeStart(len(shapes))
	opts.status(0)

	bounds, hasBounds := measure(shapes)

	var width, height float64
	if hasBounds {
		width = roundTo(bounds.Max.X-bounds.Min.X, opts.Decimals)
		height = roundTo(bounds.Max.Y-bounds.Min.Y, opts.Decimals)
	}

	root := NewElem("svg").
		SetAttr("width", fmtNum(width)+opts.Unit).
		SetAttr("height", fmtNum(height)+opts.Unit).
		SetAttr("viewBox", fmt.Sprintf("0 0 %s %s", fmtNum(width), fmtNum(height))).
		SetAttr("version", "1.1").
		SetAttr("baseProfile", "tiny").
		SetAttr("xmlns", "http://www.w3.org/2000/svg")

	if hasBounds {
		for i, shape := range shapes {
			root.Append(convertShape(shape, bounds, opts.Decimals))
			opts.status(float64(i+1) / float64(len(shapes)) * 100)
		}
	}

	var buf bytes.Buffer
	buf.WriteString(docHeader)
	root.write(&buf, 0)

	opts.status(100)
	observability.Serializer().OnSerializeComplete(len(shapes), time.Since(start), nil)
	return buf.Bytes(), nil
}

// filter2D keeps the convertible 2D shapes from a flattened object
// sequence and counts everything else, solids included.
func filter2D(objects []any) (shapes []geom.Shape, skipped int) {
	shapes = make([]geom.Shape, 0, len(objects))
	for _, obj := range objects {
		switch s := obj.(type) {
		case *geom.Geom2:
			shapes = append(shapes, s)
		case *geom.Path2:
			shapes = append(shapes, s)
		default:
			skipped++
		}
	}
	return shapes, skipped
}

// measure computes the aggregate bounds of the convertible set. The false
// return covers the empty set; the classifier precludes it, but document
// assembly degrades to a 0x0 childless document rather than failing.
func measure(shapes []geom.Shape) (geom.Bounds, bool) {
	if len(shapes) == 0 {
		return geom.Bounds{}, false
	}
	return aggregateBounds(shapes), true
}

// convertShape dispatches on the closed shape set.
func convertShape(s geom.Shape, bounds geom.Bounds, decimals int) *Elem {
	switch s := s.(type) {
	case *geom.Geom2:
		return convertGeom2(s, bounds, decimals)
	case *geom.Path2:
		return convertPath2(s, bounds, decimals)
	case *geom.Geom3:
		// Unreachable: solids never pass classification.
		return NewElem("g")
	}
	return NewElem("g")
}
