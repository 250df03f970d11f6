package toolpath

import (
	"math"
	"testing"

	"github.com/benoitkugler/svgpen/svgpoly"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
)

const eps = 1e-9

func assertPosition(t *testing.T, want mgl64.Vec3, p Pose) {
	t.Helper()
	assert.True(t, p.Position().ApproxEqualThreshold(want, eps), "expected position %v, got %s", want, p)
}

func TestComposeAndInvert(t *testing.T) {
	p := Compose(Translate(1, 2, 3), RotateZ(math.Pi/2))
	assertPosition(t, mgl64.Vec3{1, 2, 3}, p)
	assert.InDelta(t, math.Pi/2, p.Angle(), eps)

	// the translation is expressed in the rotated frame
	q := Compose(p, Translate(1, 0, 0))
	assertPosition(t, mgl64.Vec3{1, 3, 3}, q)

	assert.True(t, Compose(q, q.Invert()).ApproxEqual(Identity(), eps))
	assert.True(t, Compose(q.Invert(), q).ApproxEqual(Identity(), eps))
	assert.True(t, Compose().ApproxEqual(Identity(), 0))
}

func TestOrientation(t *testing.T) {
	p := Compose(Translate(4, 5, 6), RotateZ(0.5))
	o := p.Orientation()
	assertPosition(t, mgl64.Vec3{}, o)
	assert.InDelta(t, 0.5, o.Angle(), eps)
	assert.True(t, RotateZ(0.5).ApproxEqual(o, eps))
}

func TestBaseOrientation(t *testing.T) {
	frame := Compose(Translate(100, 0, 0), RotateZ(0.2))
	flange := Compose(Translate(100, 50, 200), RotateZ(0.5))
	tool := Translate(0, 0, 50)

	base := BaseOrientation(frame, flange, tool)
	assertPosition(t, mgl64.Vec3{}, base)
	assert.InDelta(t, 0.3, base.Angle(), eps)
}

func TestPoseFor(t *testing.T) {
	p := PoseFor(svgpoly.Point{X: 10, Y: 0}, svgpoly.Point{X: 0, Y: 1})
	assertPosition(t, mgl64.Vec3{10, 0, 0}, p)
	assert.InDelta(t, math.Pi/2, p.Angle(), eps)

	p = PoseFor(svgpoly.Point{X: 0, Y: 0}, svgpoly.Point{X: 1, Y: 0})
	assert.True(t, p.ApproxEqual(Identity(), eps))

	p = PoseFor(svgpoly.Point{X: 3, Y: 3}, svgpoly.Point{X: -1, Y: 0})
	assert.InDelta(t, math.Pi, math.Abs(p.Angle()), eps)
}

func TestFromMat4(t *testing.T) {
	m := mgl64.Translate3D(1, 2, 3)
	p := FromMat4(m)
	assert.Equal(t, m, p.Mat4())
	assert.Contains(t, p.String(), "[1.000 2.000 3.000]")
}
