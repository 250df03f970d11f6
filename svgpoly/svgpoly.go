// Provides a polygon representation of SVG images,
// suited to drive a pen: every filled or stroked shape
// is reduced to an ordered list of points, which
// can then be scaled to a drawing surface and consumed
// by a toolpath generator.
// See Load to build a Document from an SVG file and
// Document.Fit to scale it.
package svgpoly

import (
	"fmt"
	"math"
)

// Point is a 2D coordinate, in document units
// before fitting, and in output units (usually mm) after.
type Point struct {
	X, Y float64
}

// DefaultTangent is used as direction for paths
// collapsing to a single location.
var DefaultTangent = Point{1, 0}

func (p Point) Add(q Point) Point { return Point{p.X + q.X, p.Y + q.Y} }

func (p Point) Sub(q Point) Point { return Point{p.X - q.X, p.Y - q.Y} }

func (p Point) Mul(f float64) Point { return Point{p.X * f, p.Y * f} }

// Len returns the euclidean norm of the vector p
func (p Point) Len() float64 { return math.Hypot(p.X, p.Y) }

// Normalize returns the unit vector with the direction of p.
// The boolean is false for the null vector, in which case
// the returned point must not be used.
func (p Point) Normalize() (Point, bool) {
	l := p.Len()
	if l == 0 || math.IsNaN(l) || math.IsInf(l, 0) {
		return Point{}, false
	}
	return Point{p.X / l, p.Y / l}, true
}

// Angle returns the angle (in radians) between the X axis and
// the vector p, in [-Pi, Pi].
func (p Point) Angle() float64 { return math.Atan2(p.Y, p.X) }

func (p Point) finite() bool {
	return !math.IsNaN(p.X) && !math.IsNaN(p.Y) && !math.IsInf(p.X, 0) && !math.IsInf(p.Y, 0)
}

func (p Point) String() string {
	return fmt.Sprintf("(%g, %g)", p.X, p.Y)
}
