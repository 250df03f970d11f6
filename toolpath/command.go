package toolpath

import (
	"fmt"

	"github.com/benoitkugler/svgpen/svgpoly"
	"github.com/lucasb-eyer/go-colorful"
)

// Command is one motion of the pen. It is one of
// Approach, Trace, Retract or Home.
type Command interface {
	// Target returns the pose to move to.
	Target() Pose

	isCommand()
}

// Approach moves the pen, up, above the start of a segment.
type Approach struct {
	Pose    Pose
	Segment int // index in the document
}

// Trace moves the pen, down, to a vertex of a segment.
type Trace struct {
	Pose  Pose
	Color colorful.Color // the segment color

	// Tangent is the pose of the mark left at this vertex,
	// in the drawing plane, rotated along Direction.
	Tangent   Pose
	Direction svgpoly.Point

	Segment int // index in the document
	Index   int // index of the vertex in the segment
}

// Retract moves the pen away from the end of a segment.
type Retract struct {
	Pose    Pose
	Segment int
}

// Home moves back to the rest position, once the drawing is done.
type Home struct {
	Pose Pose
}

func (c Approach) Target() Pose { return c.Pose }
func (c Trace) Target() Pose    { return c.Pose }
func (c Retract) Target() Pose  { return c.Pose }
func (c Home) Target() Pose     { return c.Pose }

func (Approach) isCommand() {}
func (Trace) isCommand()    {}
func (Retract) isCommand()  {}
func (Home) isCommand()     {}

func (c Approach) String() string { return fmt.Sprintf("approach #%d %s", c.Segment, c.Pose) }

func (c Trace) String() string {
	return fmt.Sprintf("trace #%d.%d %s %s", c.Segment, c.Index, c.Pose, c.Color.Hex())
}

func (c Retract) String() string { return fmt.Sprintf("retract #%d %s", c.Segment, c.Pose) }

func (c Home) String() string { return fmt.Sprintf("home %s", c.Pose) }
