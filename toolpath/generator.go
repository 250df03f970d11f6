// Implements the conversion of a fitted polygon document
// into the ordered list of poses of a pen mounted on a robot.
// The robot itself is not known by this package: the caller provides
// the orientation of the tool, captured once at the home position,
// and consumes the commands through a Sink.
package toolpath

import (
	"fmt"
	"iter"
	"math"
	"slices"

	"github.com/benoitkugler/svgpen/svgpoly"
)

// Generator produces the motion commands drawing a document.
type Generator struct {
	// Base is the orientation shared by every pose of the drawing.
	// Its translation should be zero (see BaseOrientation).
	Base Pose

	// Home is the rest pose, reached once all the segments are drawn.
	Home Pose

	// Approach is the distance, along the tool Z axis,
	// used when lifting the pen between segments.
	Approach float64
}

// NewGenerator checks that `approach` is a positive distance.
func NewGenerator(base, home Pose, approach float64) (*Generator, error) {
	g := &Generator{Base: base, Home: home, Approach: approach}
	if err := g.checkApproach(); err != nil {
		return nil, err
	}
	return g, nil
}

func (g *Generator) checkApproach() error {
	if !(g.Approach > 0) || math.IsInf(g.Approach, 1) {
		return fmt.Errorf("approach distance %g: %w", g.Approach, svgpoly.ErrInvalidArgument)
	}
	return nil
}

// Check returns an error if `doc` can't be drawn:
// every segment must have at least one point.
func (g *Generator) Check(doc *svgpoly.Document) error {
	if err := g.checkApproach(); err != nil {
		return err
	}
	if doc == nil {
		return fmt.Errorf("nil document: %w", svgpoly.ErrInvalidArgument)
	}
	for i, s := range doc.Segments {
		if len(s.Points) == 0 {
			return fmt.Errorf("segment %d: %w", i, svgpoly.ErrEmptyPath)
		}
	}
	return nil
}

// Commands validates `doc` and returns the sequence of commands drawing it.
// The sequence is computed lazily and may be iterated several times,
// always yielding the same commands. `doc` must not be modified meanwhile.
//
// For each segment, the sequence is made of one Approach, one Trace per point
// and one Retract; a final Home command ends the drawing.
// When an error is returned, no command is produced at all.
func (g *Generator) Commands(doc *svgpoly.Document) (iter.Seq[Command], error) {
	if err := g.Check(doc); err != nil {
		return nil, err
	}
	return func(yield func(Command) bool) {
		for i := range doc.Segments {
			if !g.segment(i, &doc.Segments[i], yield) {
				return
			}
		}
		yield(Home{Pose: g.Home})
	}, nil
}

// Generate is the eager version of Commands.
func (g *Generator) Generate(doc *svgpoly.Document) ([]Command, error) {
	seq, err := g.Commands(doc)
	if err != nil {
		return nil, err
	}
	return slices.Collect(seq), nil
}

// vertexPose moves the base orientation in the drawing plane.
func (g *Generator) vertexPose(p svgpoly.Point) Pose {
	return Compose(Translate(p.X, p.Y, 0), g.Base)
}

func (g *Generator) segment(index int, seg *svgpoly.Segment, yield func(Command) bool) bool {
	pose := g.vertexPose(seg.Points[0])
	if !yield(Approach{Pose: Compose(pose, Translate(0, 0, -g.Approach)), Segment: index}) {
		return false
	}
	for i, p := range seg.Points {
		pose = g.vertexPose(p)
		dir := seg.Tangent(i)
		cmd := Trace{
			Pose:      pose,
			Color:     seg.FillColor,
			Tangent:   PoseFor(p, dir),
			Direction: dir,
			Segment:   index,
			Index:     i,
		}
		if !yield(cmd) {
			return false
		}
	}
	return yield(Retract{Pose: Compose(pose, Translate(0, 0, g.Approach)), Segment: index})
}

// Count returns the number of commands produced for `doc`,
// or 0 for a nil document, which is rejected by the generator.
func Count(doc *svgpoly.Document) int {
	if doc == nil {
		return 0
	}
	n := 1 // home
	for _, s := range doc.Segments {
		n += len(s.Points) + 2
	}
	return n
}
