package sceneio

import (
	"encoding/json"
	"io"
	"os"

	"github.com/jozzs/svgcast/pkg/errors"
	"github.com/jozzs/svgcast/pkg/geom"
)

// WriteScene encodes geometry objects as a JSON scene and writes it to w.
// The output can be re-imported with [ReadScene] for round-trip processing.
// Objects that are not geometry are rejected with INVALID_SCENE.
func WriteScene(w io.Writer, objects ...any) error {
	sc := scene{Shapes: make([]shape, 0, len(objects))}
	for i, obj := range objects {
		s, err := encodeShape(obj)
		if err != nil {
			return errors.Wrap(errors.ErrCodeInvalidScene, err, "object %d", i)
		}
		sc.Shapes = append(sc.Shapes, s)
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(sc); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "encode scene")
	}
	return nil
}

// WriteSceneFile writes geometry objects to a JSON scene file at path.
// This is a convenience wrapper around [WriteScene] for file-based output.
func WriteSceneFile(path string, objects ...any) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "create %s", path)
	}
	defer f.Close()
	return WriteScene(f, objects...)
}

func encodeShape(obj any) (shape, error) {
	switch o := obj.(type) {
	case *geom.Geom2:
		outlines := make([][][2]float64, len(o.Outlines()))
		for i, outline := range o.Outlines() {
			outlines[i] = encodePoints(outline)
		}
		return shape{Kind: "region", Outlines: outlines, Color: encodeColor(o.Color)}, nil
	case *geom.Path2:
		return shape{
			Kind:   "path",
			Points: encodePoints(o.Points),
			Closed: o.Closed,
			Color:  encodeColor(o.Color),
		}, nil
	case *geom.Geom3:
		return shape{Kind: "mesh", Name: o.Name}, nil
	}
	return shape{}, errors.New(errors.ErrCodeInvalidScene, "unsupported object type %T", obj)
}

func encodePoints(points []geom.Vec2) [][2]float64 {
	raw := make([][2]float64, len(points))
	for i, p := range points {
		raw[i] = [2]float64{p.X, p.Y}
	}
	return raw
}

func encodeColor(c *geom.RGBA) []float64 {
	if c == nil {
		return nil
	}
	return []float64{c.R, c.G, c.B, c.A}
}
