package toolpath

import (
	"fmt"
	"math"

	"github.com/benoitkugler/svgpen/svgpoly"
	"github.com/go-gl/mathgl/mgl64"
)

// Pose is a rigid transformation (position and orientation)
// in 3D space, relative to a reference frame.
// The zero value is not a valid pose: use Identity.
type Pose struct {
	m mgl64.Mat4
}

// Identity returns the pose of the reference frame itself.
func Identity() Pose { return Pose{mgl64.Ident4()} }

// Translate returns a pure translation.
func Translate(x, y, z float64) Pose { return Pose{mgl64.Translate3D(x, y, z)} }

// RotateZ returns a pure rotation of `angle` radians around the Z axis.
func RotateZ(angle float64) Pose { return Pose{mgl64.HomogRotate3DZ(angle)} }

// FromMat4 wraps a homogeneous matrix, as returned by a robot
// forward kinematics for instance.
func FromMat4(m mgl64.Mat4) Pose { return Pose{m} }

// Compose chains the poses from left to right: each pose
// is expressed in the frame defined by the previous ones.
// Compose() is the identity.
func Compose(poses ...Pose) Pose {
	m := mgl64.Ident4()
	for _, p := range poses {
		m = m.Mul4(p.m)
	}
	return Pose{m}
}

// Invert returns the pose q such that Compose(p, q) is the identity.
func (p Pose) Invert() Pose { return Pose{p.m.Inv()} }

// Position returns the translation part of the pose.
func (p Pose) Position() mgl64.Vec3 { return p.m.Col(3).Vec3() }

// Orientation returns the pose with its translation removed.
func (p Pose) Orientation() Pose {
	m := p.m
	m.SetCol(3, mgl64.Vec4{0, 0, 0, 1})
	return Pose{m}
}

// Angle returns the rotation around the Z axis, in radians.
// It is only meaningful for poses whose Z axis is vertical.
func (p Pose) Angle() float64 { return math.Atan2(p.m.At(1, 0), p.m.At(0, 0)) }

// Mat4 returns the underlying homogeneous matrix.
func (p Pose) Mat4() mgl64.Mat4 { return p.m }

// ApproxEqual compares each matrix coefficient with an absolute tolerance.
func (p Pose) ApproxEqual(q Pose, eps float64) bool {
	return p.m.ApproxEqualThreshold(q.m, eps)
}

func (p Pose) String() string {
	pos := p.Position()
	return fmt.Sprintf("[%.3f %.3f %.3f] rz=%.2f°", pos.X(), pos.Y(), pos.Z(), mgl64.RadToDeg(p.Angle()))
}

// BaseOrientation computes the orientation of the tool relative to the
// drawing frame, for a robot whose flange is at `flange` (in world
// coordinates) when holding the tool `tool` (relative to the flange),
// the drawing surface being located at `frame`.
// The translation is discarded so that the result only captures the
// attitude of the pen, to be reused for every point of the drawing.
func BaseOrientation(frame, flange, tool Pose) Pose {
	return Compose(frame.Invert(), flange, tool).Orientation()
}

// PoseFor returns the pose of a mark drawn at `p`, rotated
// along the local direction `tangent`.
func PoseFor(p, tangent svgpoly.Point) Pose {
	return Compose(Translate(p.X, p.Y, 0), RotateZ(tangent.Angle()))
}
