package svg

import (
	"bytes"
	"strconv"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/jozzs/svgcast/pkg/errors"
	"github.com/jozzs/svgcast/pkg/geom"
)

func square10() *geom.Geom2 {
	return geom.NewGeom2([][]geom.Vec2{{
		{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}, {X: 0, Y: 10},
	}})
}

func TestSerializeRegion(t *testing.T) {
	region := square10().WithColor(geom.RGBA{R: 1, G: 0, B: 0, A: 1})

	doc, err := Serialize(Options{Unit: "mm", Decimals: 10000}, region)
	if err != nil {
		t.Fatalf("Serialize: %v", err)
	}

	want := `<?xml version="1.0" encoding="UTF-8"?>
<!DOCTYPE svg PUBLIC "-//W3C//DTD SVG 1.1//EN" "http://www.w3.org/Graphics/SVG/1.1/DTD/svg11.dtd">
<!-- Generated by svgcast -->
<svg width="10mm" height="10mm" viewBox="0 0 10 10" version="1.1" baseProfile="tiny" xmlns="http://www.w3.org/2000/svg">
  <g>
    <path d="M0 10L-10 10L-10 0L0 0L0 10" fill-rule="evenodd" fill="rgb(255,0,0,255)"/>
  </g>
</svg>
`
	if string(doc) != want {
		t.Errorf("document =\n%s\nwant\n%s", doc, want)
	}
}

func TestSerializeUnsupportedInput(t *testing.T) {
	tests := []struct {
		name    string
		objects []any
	}{
		{name: "NoObjects", objects: nil},
		{name: "OnlySolids", objects: []any{&geom.Geom3{Name: "cube"}}},
		{name: "OnlyUnknown", objects: []any{42, "not geometry"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Serialize(Options{}, tt.objects...)
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !errors.Is(err, errors.ErrCodeUnsupportedInput) {
				t.Errorf("error code = %v, want UNSUPPORTED_INPUT", errors.GetCode(err))
			}
			if msg := errors.UserMessage(err); msg != "only 2D geometry can be serialized" {
				t.Errorf("message = %q", msg)
			}
		})
	}
}

func TestSerializePartialInputWarns(t *testing.T) {
	var logBuf bytes.Buffer
	logger := log.NewWithOptions(&logBuf, log.Options{})

	doc, err := Serialize(Options{Logger: logger}, square10(), &geom.Geom3{Name: "cube"})
	if err != nil {
		t.Fatalf("Serialize: %v", err)
	}

	if got := strings.Count(string(doc), "<g>"); got != 1 {
		t.Errorf("group count = %d, want 1 (solid must be skipped)", got)
	}
	if !strings.Contains(logBuf.String(), "1 objects could not be serialized") {
		t.Errorf("warning not logged, got %q", logBuf.String())
	}
}

func TestSerializeUncoloredPaths(t *testing.T) {
	p1 := geom.NewPath2([]geom.Vec2{{X: 5, Y: 5}, {X: 6, Y: 5}}, false)
	p2 := geom.NewPath2([]geom.Vec2{{X: 5, Y: 6}, {X: 6, Y: 6}}, false)

	doc, err := Serialize(Options{}, p1, p2)
	if err != nil {
		t.Fatalf("Serialize: %v", err)
	}
	s := string(doc)

	if got := strings.Count(s, "<g>"); got != 2 {
		t.Errorf("group count = %d, want 2", got)
	}
	if strings.Contains(s, "stroke") {
		t.Error("uncolored paths must not carry stroke attributes")
	}

	// Two objects trigger the seeded aggregate: even though both paths
	// live in [5,6]x[5,6], the document spans from the origin.
	if !strings.Contains(s, `width="6mm"`) || !strings.Contains(s, `height="6mm"`) {
		t.Errorf("document does not include the origin-seeded aggregate: %s", s)
	}
}

func TestSerializeSingleObjectBounds(t *testing.T) {
	// A single object's bounds are used unmodified, without the origin
	// seed that multi-object aggregation introduces.
	p := geom.NewPath2([]geom.Vec2{{X: 5, Y: 5}, {X: 6, Y: 5}}, false)

	doc, err := Serialize(Options{}, p)
	if err != nil {
		t.Fatalf("Serialize: %v", err)
	}
	s := string(doc)

	if !strings.Contains(s, `width="1mm"`) {
		t.Errorf("width not derived from unmodified single-object bounds: %s", s)
	}
	if !strings.Contains(s, `viewBox="0 0 1 0"`) {
		t.Errorf("viewBox = %s", s)
	}
	if !strings.Contains(s, `d="M0 0L-1 0"`) {
		t.Errorf("d = %s", s)
	}
}

func TestSerializeColoredPathStroke(t *testing.T) {
	p := geom.NewPath2([]geom.Vec2{{X: 0, Y: 0}, {X: -4, Y: 0}}, false).
		WithColor(geom.RGBA{R: 0, G: 0.5, B: 1, A: 1})

	doc, err := Serialize(Options{}, p)
	if err != nil {
		t.Fatalf("Serialize: %v", err)
	}
	s := string(doc)

	if !strings.Contains(s, `stroke="rgb(0,127.5,255,255)"`) {
		t.Errorf("stroke missing or wrong: %s", s)
	}
	if !strings.Contains(s, `stroke-width="1"`) {
		t.Errorf("stroke-width missing: %s", s)
	}
	if strings.Contains(s, "fill") {
		t.Error("path objects must not carry fill attributes")
	}
}

func TestSerializeRegionWithoutOutlines(t *testing.T) {
	// Malformed geometry degrades to an empty instruction string rather
	// than erroring.
	doc, err := Serialize(Options{}, geom.NewGeom2(nil))
	if err != nil {
		t.Fatalf("Serialize: %v", err)
	}
	if !strings.Contains(string(doc), `<path d=""/>`) {
		t.Errorf("document = %s", doc)
	}
}

func TestSerializeIdempotent(t *testing.T) {
	region := square10().WithColor(geom.RGBA{R: 1, A: 1})
	opts := Options{Unit: "in", Decimals: 100}

	first, err := Serialize(opts, region)
	if err != nil {
		t.Fatalf("first Serialize: %v", err)
	}
	second, err := Serialize(opts, region)
	if err != nil {
		t.Fatalf("second Serialize: %v", err)
	}

	if !bytes.Equal(first, second) {
		t.Error("serializing the same input twice must be byte-identical")
	}
}

func TestSerializeProgress(t *testing.T) {
	var calls []float64
	opts := Options{Status: func(p float64) { calls = append(calls, p) }}

	_, err := Serialize(opts, square10(), geom.NewPath2([]geom.Vec2{{X: 1, Y: 1}}, false))
	if err != nil {
		t.Fatalf("Serialize: %v", err)
	}

	// 0 up front, one call per object, 100 after assembly.
	want := []float64{0, 50, 100, 100}
	if len(calls) != len(want) {
		t.Fatalf("progress calls = %v, want %v", calls, want)
	}
	for i := range want {
		if calls[i] != want[i] {
			t.Errorf("call %d = %v, want %v", i, calls[i], want[i])
		}
	}
}

func TestSerializeNestedGroupings(t *testing.T) {
	inner := []any{geom.NewPath2([]geom.Vec2{{X: 1, Y: 1}, {X: 2, Y: 2}}, false)}
	outer := []any{square10(), inner}

	doc, err := Serialize(Options{}, outer)
	if err != nil {
		t.Fatalf("Serialize: %v", err)
	}
	if got := strings.Count(string(doc), "<g>"); got != 2 {
		t.Errorf("group count = %d, want 2 after flattening", got)
	}
}

func TestSerializeOptionValidation(t *testing.T) {
	p := geom.NewPath2([]geom.Vec2{{X: 0, Y: 0}}, false)

	t.Run("InvalidUnit", func(t *testing.T) {
		_, err := Serialize(Options{Unit: "furlong"}, p)
		if !errors.Is(err, errors.ErrCodeInvalidUnit) {
			t.Errorf("error = %v, want INVALID_UNIT", err)
		}
	})

	t.Run("NegativeDecimals", func(t *testing.T) {
		_, err := Serialize(Options{Decimals: -1}, p)
		if !errors.Is(err, errors.ErrCodeInvalidDecimals) {
			t.Errorf("error = %v, want INVALID_DECIMALS", err)
		}
	})

	t.Run("DefaultUnit", func(t *testing.T) {
		doc, err := Serialize(Options{}, p)
		if err != nil {
			t.Fatalf("Serialize: %v", err)
		}
		if !strings.Contains(string(doc), `width="0mm"`) {
			t.Errorf("default unit not applied: %s", doc)
		}
	})
}

// parseD splits an instruction string back into device points.
func parseD(t *testing.T, d string) []geom.Vec2 {
	t.Helper()
	var points []geom.Vec2
	for _, tok := range strings.Split(strings.ReplaceAll(d[1:], "L", "\n"), "\n") {
		fields := strings.Fields(tok)
		if len(fields) != 2 {
			t.Fatalf("malformed instruction token %q in %q", tok, d)
		}
		x, err := strconv.ParseFloat(fields[0], 64)
		if err != nil {
			t.Fatal(err)
		}
		y, err := strconv.ParseFloat(fields[1], 64)
		if err != nil {
			t.Fatal(err)
		}
		points = append(points, geom.Vec2{X: x, Y: y})
	}
	return points
}

func TestPathDataRoundTrip(t *testing.T) {
	points := []geom.Vec2{{X: 1, Y: 2}, {X: 4, Y: 2}, {X: 4, Y: 6}}
	path := geom.NewPath2(points, true)
	bounds := geom.Measure(path)

	d := pathData(path, bounds, 10000)
	device := parseD(t, d)

	if len(device) != len(points)+1 {
		t.Fatalf("logical points = %d, want %d", len(device), len(points)+1)
	}

	// Un-reflect and un-translate to recover the (rounded) originals.
	for i, dp := range device {
		orig := points[i%len(points)]
		x := bounds.Min.X - dp.X
		y := bounds.Max.Y - dp.Y
		if x != orig.X || y != orig.Y {
			t.Errorf("point %d: recovered (%v,%v), want %+v", i, x, y, orig)
		}
	}
}
