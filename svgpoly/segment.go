package svgpoly

import (
	"github.com/lucasb-eyer/go-colorful"
)

// Segment is one polygon of the artwork: an ordered list
// of points, drawn with a single color.
type Segment struct {
	Points    []Point
	FillColor colorful.Color
	Closed    bool // the last point joins the first one
}

// Len returns the number of points of the segment.
func (s Segment) Len() int { return len(s.Points) }

// At returns the i-th point. It panics if i is out of range.
func (s Segment) At(i int) Point { return s.Points[i] }

// Tangent returns the unit direction of travel at the i-th point.
//
// It is the direction towards the next point different from
// s.Points[i]. When there is none (last point or trailing duplicates),
// the direction coming from the closest previous distinct point is used instead.
// A segment collapsed to one location returns DefaultTangent.
func (s Segment) Tangent(i int) Point {
	p := s.Points[i]
	for j := i + 1; j < len(s.Points); j++ {
		if d, ok := s.Points[j].Sub(p).Normalize(); ok {
			return d
		}
	}
	for j := i - 1; j >= 0; j-- {
		if d, ok := p.Sub(s.Points[j]).Normalize(); ok {
			return d
		}
	}
	return DefaultTangent
}

// Bounds returns the bounding box of the points
func (s Segment) Bounds() Bounds {
	b := EmptyBounds()
	for _, p := range s.Points {
		b = b.Extend(p)
	}
	return b
}

// Size returns the width and height of the bounding box.
func (s Segment) Size() Point { return s.Bounds().Size() }

// Simplify removes the points closer than minSpacing from the
// previously kept point. The first and last points are always kept,
// so that the extent of the path is preserved.
func (s *Segment) Simplify(minSpacing float64) {
	if len(s.Points) < 3 || minSpacing <= 0 {
		return
	}
	last := s.Points[len(s.Points)-1]
	kept := s.Points[:1]
	for _, p := range s.Points[1 : len(s.Points)-1] {
		if p.Sub(kept[len(kept)-1]).Len() >= minSpacing {
			kept = append(kept, p)
		}
	}
	// the last point may end up too close to the previous one:
	// the latter is dropped to keep the exact end of the path
	if len(kept) > 1 && last.Sub(kept[len(kept)-1]).Len() < minSpacing {
		kept = kept[:len(kept)-1]
	}
	s.Points = append(kept, last)
}
