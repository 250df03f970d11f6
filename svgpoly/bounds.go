package svgpoly

import "math"

// Bounds is an axis aligned bounding box.
// The zero value is the box reduced to the origin;
// use EmptyBounds to start an accumulation.
type Bounds struct {
	Min, Max Point
}

// EmptyBounds returns a box containing no point, so that
// any Extend or Union replaces it.
func EmptyBounds() Bounds {
	return Bounds{
		Min: Point{math.Inf(1), math.Inf(1)},
		Max: Point{math.Inf(-1), math.Inf(-1)},
	}
}

// Empty returns true if no point was ever added to b.
func (b Bounds) Empty() bool { return b.Min.X > b.Max.X || b.Min.Y > b.Max.Y }

func (b Bounds) W() float64 { return b.Max.X - b.Min.X }

func (b Bounds) H() float64 { return b.Max.Y - b.Min.Y }

// Size returns the width and height of the box,
// or (0, 0) for an empty box.
func (b Bounds) Size() Point {
	if b.Empty() {
		return Point{}
	}
	return Point{b.W(), b.H()}
}

// Extend returns the smallest box containing b and p
func (b Bounds) Extend(p Point) Bounds {
	return Bounds{
		Min: Point{math.Min(b.Min.X, p.X), math.Min(b.Min.Y, p.Y)},
		Max: Point{math.Max(b.Max.X, p.X), math.Max(b.Max.Y, p.Y)},
	}
}

// Union returns the smallest box containing b and other
func (b Bounds) Union(other Bounds) Bounds {
	if other.Empty() {
		return b
	}
	return b.Extend(other.Min).Extend(other.Max)
}

// Contains checks if p is inside b, borders included,
// allowing an absolute tolerance of eps.
func (b Bounds) Contains(p Point, eps float64) bool {
	return p.X >= b.Min.X-eps && p.X <= b.Max.X+eps &&
		p.Y >= b.Min.Y-eps && p.Y <= b.Max.Y+eps
}
