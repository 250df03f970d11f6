package svgpoly

import (
	"fmt"
	"image"
	"image/color"
	"io"
	"math"
	"os"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
	"golang.org/x/image/math/fixed"
)

// internalSize is the length, in fixed point units, of the
// longest side of the image while flattening curves.
const internalSize = 4096

// LoadOptions controls how an SVG image is reduced to polygons.
type LoadOptions struct {
	// ErrorMode determines if unsupported SVG elements are ignored,
	// logged as warnings, or reported as errors.
	ErrorMode oksvg.ErrorMode

	// MinSpacing, if positive, simplifies every segment
	// so that consecutive points are at least that far apart
	// (in document units).
	MinSpacing float64
}

// Load parses an SVG image and returns its polygon decomposition,
// in drawing order. Curves are flattened by rasterx.
// A filled shape is returned as its outline, one closed segment per
// subpath; a shape which is only stroked is returned as its
// center line, which is what the pen should follow.
func Load(r io.Reader, opts LoadOptions) (*Document, error) {
	icon, err := oksvg.ReadIconStream(r, opts.ErrorMode)
	if err != nil {
		return nil, fmt.Errorf("parsing svg: %w", err)
	}

	// work with a power of two scale, so that coordinates
	// are kept exact as often as possible
	scale := 1.
	w, h := icon.ViewBox.W, icon.ViewBox.H
	if w > 0 && h > 0 {
		scale = math.Exp2(math.Floor(math.Log2(internalSize / math.Max(w, h))))
		icon.Transform = rasterx.Identity.Scale(scale, scale).Translate(-icon.ViewBox.X, -icon.ViewBox.Y)
	}

	tr := &tracer{unit: 1 / scale}
	dasher := rasterx.NewDasher(int(w*scale)+1, int(h*scale)+1, tr)
	doc := &Document{}
	for i := range icon.SVGPaths {
		doc.Segments = append(doc.Segments, tr.trace(&icon.SVGPaths[i], dasher, icon.Transform)...)
	}

	if opts.MinSpacing > 0 {
		for i := range doc.Segments {
			doc.Segments[i].Simplify(opts.MinSpacing)
		}
	}
	if len(doc.Segments) == 0 {
		return nil, fmt.Errorf("no drawable paths: %w", ErrDegenerateGeometry)
	}
	return doc, nil
}

// LoadFile reads the SVG image from the named file. See Load.
func LoadFile(path string, opts LoadOptions) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Load(f, opts)
}

var _ rasterx.Scanner = (*tracer)(nil) // assert interface conformance

// tracer is a rasterx.Scanner which, instead of
// filling pixels, records the outlines it is given.
// rasterx has already flattened the curves at this point.
//
// oksvg draws a path in two passes, each one starting with Clear:
// the fill pass sets the winding rule, the stroke pass does not.
type tracer struct {
	unit float64 // document units per internal unit

	fill      bool // the current pass is a fill
	rings     [][]Point
	extent    fixed.Rectangle26_6
	hasExtent bool
	paint     interface{} // color.Color or rasterx.ColorFunc

	passes []pass
}

// pass is the result of one Draw call.
type pass struct {
	fill  bool
	rings [][]Point
	paint interface{}
}

// trace returns the segments of one SVG element.
func (t *tracer) trace(svgp *oksvg.SvgPath, d *rasterx.Dasher, m rasterx.Matrix2D) []Segment {
	t.passes = nil
	svgp.DrawTransformed(d, 1, m)

	var (
		fill, stroke       pass
		hasFill, hasStroke bool
	)
	for _, p := range t.passes {
		if p.fill {
			fill, hasFill = p, true
		} else {
			stroke, hasStroke = p, true
		}
	}
	if hasFill { // the stroke follows the same outline
		return t.segments(fill.rings, fill.paint, nil)
	}
	if !hasStroke {
		return nil
	}

	// the stroker only outputs the border of the line:
	// fill a copy of the path instead to get its center line
	center := *svgp
	center.SetFillColor(color.Black)
	center.SetLineColor(nil)
	t.passes = nil
	center.DrawTransformed(d, 1, m)
	if len(t.passes) == 0 {
		return nil
	}
	return t.segments(t.passes[0].rings, stroke.paint, closedSubpaths(svgp.Path))
}

// segments converts the rings of a pass. When `closed` is not nil,
// the rings are the center lines of the subpaths, and the closing
// line added by the filler is removed from the open ones.
func (t *tracer) segments(rings [][]Point, paint interface{}, closed []bool) []Segment {
	var out []Segment
	for i, ring := range rings {
		if len(ring) == 0 {
			continue
		}
		seg := Segment{
			FillColor: colorAt(paint, ring[0]),
			Closed:    len(ring) > 2 && ring[0] == ring[len(ring)-1],
		}
		if closed != nil && i < len(closed) && !closed[i] {
			if len(ring) > 1 && ring[0] == ring[len(ring)-1] {
				ring = ring[:len(ring)-1]
			}
			seg.Closed = false
		}
		seg.Points = make([]Point, len(ring))
		for j, p := range ring {
			seg.Points[j] = p.Mul(t.unit)
		}
		out = append(out, seg)
	}
	return out
}

func fixedTof(a fixed.Point26_6) Point {
	return Point{float64(a.X) / 64, float64(a.Y) / 64}
}

func (t *tracer) extend(a fixed.Point26_6) {
	if !t.hasExtent {
		t.extent = fixed.Rectangle26_6{Min: a, Max: a}
		t.hasExtent = true
		return
	}
	if a.X < t.extent.Min.X {
		t.extent.Min.X = a.X
	}
	if a.Y < t.extent.Min.Y {
		t.extent.Min.Y = a.Y
	}
	if a.X > t.extent.Max.X {
		t.extent.Max.X = a.X
	}
	if a.Y > t.extent.Max.Y {
		t.extent.Max.Y = a.Y
	}
}

func (t *tracer) Start(a fixed.Point26_6) {
	t.rings = append(t.rings, []Point{fixedTof(a)})
	t.extend(a)
}

func (t *tracer) Line(b fixed.Point26_6) {
	if len(t.rings) == 0 {
		t.Start(b)
		return
	}
	ring := &t.rings[len(t.rings)-1]
	p := fixedTof(b)
	if (*ring)[len(*ring)-1] == p {
		return // rasterx may repeat the current point
	}
	*ring = append(*ring, p)
	t.extend(b)
}

// Draw ends the current pass.
func (t *tracer) Draw() {
	t.passes = append(t.passes, pass{fill: t.fill, rings: t.rings, paint: t.paint})
	t.rings = nil
}

// colorAt resolves `paint` at `p`, in internal units.
func colorAt(paint interface{}, p Point) colorful.Color {
	var c color.Color
	switch paint := paint.(type) {
	case color.Color:
		c = paint
	case rasterx.ColorFunc:
		c = paint(int(p.X), int(p.Y))
	default:
		return colorful.Color{} // black
	}
	out, ok := colorful.MakeColor(c)
	if !ok { // fully transparent
		return colorful.Color{}
	}
	return out
}

func (t *tracer) GetPathExtent() fixed.Rectangle26_6 { return t.extent }

func (t *tracer) SetBounds(w, h int) {}

func (t *tracer) SetColor(clr interface{}) { t.paint = clr }

func (t *tracer) SetWinding(useNonZeroWinding bool) { t.fill = true }

func (t *tracer) Clear() {
	t.fill = false
	t.rings = nil
	t.extent = fixed.Rectangle26_6{}
	t.hasExtent = false
	t.paint = nil
}

func (t *tracer) SetClip(rect image.Rectangle) {}

// subpaths records, for each subpath, if it ends
// where it started.
type subpaths struct {
	closed      []bool
	first, last fixed.Point26_6
}

// closedSubpaths walks `p` and reports which of its subpaths are closed,
// either explicitly or by coming back to their start.
func closedSubpaths(p rasterx.Path) []bool {
	var s subpaths
	p.AddTo(&s)
	return s.closed
}

func (s *subpaths) Start(a fixed.Point26_6) {
	s.closed = append(s.closed, false)
	s.first, s.last = a, a
}

func (s *subpaths) Line(b fixed.Point26_6) { s.last = b }

func (s *subpaths) QuadBezier(b, c fixed.Point26_6) { s.last = c }

func (s *subpaths) CubeBezier(b, c, d fixed.Point26_6) { s.last = d }

func (s *subpaths) Stop(closeLoop bool) {
	if len(s.closed) == 0 {
		return
	}
	if closeLoop || s.last == s.first {
		s.closed[len(s.closed)-1] = true
	}
}
