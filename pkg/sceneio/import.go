package sceneio

import (
	"encoding/json"
	"io"
	"os"

	"github.com/jozzs/svgcast/pkg/errors"
	"github.com/jozzs/svgcast/pkg/geom"
)

type scene struct {
	Shapes []shape `json:"shapes"`
}

type shape struct {
	Kind     string         `json:"kind"`
	Outlines [][][2]float64 `json:"outlines,omitempty"`
	Points   [][2]float64   `json:"points,omitempty"`
	Closed   bool           `json:"closed,omitempty"`
	Color    []float64      `json:"color,omitempty"`
	Name     string         `json:"name,omitempty"`
}

// ReadScene decodes a JSON scene from r into geometry objects.
//
// Region and path shapes decode to *geom.Geom2 and *geom.Path2. Mesh and
// unknown kinds decode to *geom.Geom3 placeholders, which the serializer
// skips with a warning. ReadScene does not close r.
func ReadScene(r io.Reader) ([]any, error) {
	var sc scene
	if err := json.NewDecoder(r).Decode(&sc); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidScene, err, "decode scene")
	}

	objects := make([]any, 0, len(sc.Shapes))
	for i, s := range sc.Shapes {
		obj, err := decodeShape(s)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidScene, err, "shape %d", i)
		}
		objects = append(objects, obj)
	}
	return objects, nil
}

// ReadSceneFile reads a JSON scene file at path and returns the decoded
// objects. A missing file carries the FILE_NOT_FOUND code so callers can
// distinguish it from a malformed scene.
func ReadSceneFile(path string) ([]any, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "scene file %s", path)
		}
		return nil, errors.Wrap(errors.ErrCodeInvalidScene, err, "open %s", path)
	}
	defer f.Close()
	return ReadScene(f)
}

func decodeShape(s shape) (any, error) {
	color, err := decodeColor(s.Color)
	if err != nil {
		return nil, err
	}

	switch s.Kind {
	case "region":
		outlines := make([][]geom.Vec2, len(s.Outlines))
		for i, o := range s.Outlines {
			outlines[i] = decodePoints(o)
		}
		g := geom.NewGeom2(outlines)
		if color != nil {
			g = g.WithColor(*color)
		}
		return g, nil
	case "path":
		p := geom.NewPath2(decodePoints(s.Points), s.Closed)
		if color != nil {
			p = p.WithColor(*color)
		}
		return p, nil
	case "":
		return nil, errors.New(errors.ErrCodeInvalidScene, "missing kind")
	default:
		// Mesh and anything else becomes a non-convertible placeholder.
		name := s.Name
		if name == "" {
			name = s.Kind
		}
		return &geom.Geom3{Name: name}, nil
	}
}

func decodePoints(raw [][2]float64) []geom.Vec2 {
	points := make([]geom.Vec2, len(raw))
	for i, p := range raw {
		points[i] = geom.Vec2{X: p[0], Y: p[1]}
	}
	return points
}

func decodeColor(raw []float64) (*geom.RGBA, error) {
	if raw == nil {
		return nil, nil
	}
	if len(raw) != 4 {
		return nil, errors.New(errors.ErrCodeInvalidScene, "color has %d channels, want 4", len(raw))
	}
	return &geom.RGBA{R: raw[0], G: raw[1], B: raw[2], A: raw[3]}, nil
}
