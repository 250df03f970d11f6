package svgpoly

import (
	"fmt"
	"math"
)

// Document is the ordered list of segments of an image.
// The order is the drawing order.
type Document struct {
	Segments []Segment

	scale      float64 // last factor applied by Fit
	resolution float64
}

// Bounds returns the box enclosing all the segments.
func (d *Document) Bounds() Bounds {
	b := EmptyBounds()
	for _, s := range d.Segments {
		b = b.Union(s.Bounds())
	}
	return b
}

// Size returns the width and height of the artwork.
func (d *Document) Size() Point { return d.Bounds().Size() }

// NumPoints returns the total number of points.
func (d *Document) NumPoints() int {
	n := 0
	for _, s := range d.Segments {
		n += len(s.Points)
	}
	return n
}

// Fitted returns true once Fit has succeeded.
func (d *Document) Fitted() bool { return d.scale != 0 }

// Scale returns the factor applied by the last successful Fit, or 0.
func (d *Document) Scale() float64 { return d.scale }

// Resolution returns the pixel resolution given to the last
// successful Fit, in output units.
func (d *Document) Resolution() float64 { return d.resolution }

// Fit scales the document so that it fits inside a box of size `target`,
// preserving its aspect ratio, with the top left corner of the artwork
// moved to the origin. The points are modified in place and the applied
// scale factor is returned.
//
// `resolution` is the smallest feature size, in output units. It does not
// change the geometry but is kept to size a drawing marker (see Resolution).
//
// Nothing is modified when an error is returned.
func (d *Document) Fit(target Point, resolution float64) (float64, error) {
	if !positive(target.X) || !positive(target.Y) {
		return 0, fmt.Errorf("target size %s: %w", target, ErrInvalidArgument)
	}
	if !positive(resolution) {
		return 0, fmt.Errorf("pixel resolution %g: %w", resolution, ErrInvalidArgument)
	}

	bounds := d.Bounds()
	if bounds.Empty() {
		return 0, fmt.Errorf("document has no points: %w", ErrDegenerateGeometry)
	}
	if !bounds.Min.finite() || !bounds.Max.finite() {
		return 0, fmt.Errorf("artwork bounds %s %s: %w", bounds.Min, bounds.Max, ErrDegenerateGeometry)
	}
	source := bounds.Size()
	if source.X == 0 || source.Y == 0 {
		return 0, fmt.Errorf("artwork size %s: %w", source, ErrDegenerateGeometry)
	}

	// the binding axis is the one which would overflow first
	scale := math.Min(target.X/source.X, target.Y/source.Y)
	if !positive(scale) {
		return 0, fmt.Errorf("scale factor %g: %w", scale, ErrDegenerateGeometry)
	}
	for i := range d.Segments {
		pts := d.Segments[i].Points
		for j, p := range pts {
			p = p.Sub(bounds.Min).Mul(scale)
			// rounding may overshoot the binding axis
			pts[j] = Point{math.Min(p.X, target.X), math.Min(p.Y, target.Y)}
		}
	}
	d.scale, d.resolution = scale, resolution
	return scale, nil
}
