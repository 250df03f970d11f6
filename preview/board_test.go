package preview

import (
	"bytes"
	"context"
	"errors"
	"image/color"
	"image/png"
	"math"
	"testing"

	"github.com/benoitkugler/svgpen/svgpoly"
	"github.com/benoitkugler/svgpen/toolpath"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	red   = color.RGBA{R: 0xff, A: 0xff}
	white = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
)

func TestStamp(t *testing.T) {
	b, err := NewBoard(svgpoly.Point{X: 10, Y: 10}, 10, 2)
	require.NoError(t, err)
	require.Equal(t, 100, b.Image().Bounds().Dx())
	assert.Equal(t, white, b.Image().RGBAAt(50, 50))

	p := svgpoly.Point{X: 5, Y: 5}
	tr := toolpath.Trace{
		Pose:    toolpath.Translate(5, 5, 0),
		Tangent: toolpath.PoseFor(p, svgpoly.Point{X: 1, Y: 1}),
		Color:   colorful.Color{R: 1},
	}
	ctx := context.Background()
	require.NoError(t, b.Send(ctx, tr))
	require.NoError(t, b.Send(ctx, toolpath.Approach{Pose: toolpath.Translate(1, 1, 0)}))
	require.NoError(t, b.Send(ctx, toolpath.Home{Pose: toolpath.Identity()}))

	assert.Equal(t, 1, b.Marks())
	assert.Equal(t, red, b.Image().RGBAAt(50, 50))
	// the mark is rotated by 45°: its corners are cut
	assert.Equal(t, white, b.Image().RGBAAt(41, 41))
	assert.Equal(t, red, b.Image().RGBAAt(50, 37))
	assert.Equal(t, white, b.Image().RGBAAt(10, 10))
}

func TestSquareDrawing(t *testing.T) {
	doc := &svgpoly.Document{Segments: []svgpoly.Segment{{
		Points:    []svgpoly.Point{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}, {X: 0, Y: 10}},
		FillColor: colorful.Color{R: 1},
	}}}
	gen, err := toolpath.NewGenerator(toolpath.Identity(), toolpath.Identity(), 1)
	require.NoError(t, err)
	seq, err := gen.Commands(doc)
	require.NoError(t, err)

	b, err := NewBoard(svgpoly.Point{X: 10, Y: 10}, 10, 2)
	require.NoError(t, err)
	require.NoError(t, toolpath.Dispatch(context.Background(), seq, b))

	assert.Equal(t, 4, b.Marks())
	for _, px := range [][2]int{{3, 3}, {96, 3}, {96, 96}, {3, 96}} {
		assert.Equal(t, red, b.Image().RGBAAt(px[0], px[1]), "pixel %v", px)
	}
	assert.Equal(t, white, b.Image().RGBAAt(50, 50))

	var buf bytes.Buffer
	require.NoError(t, b.WritePNG(&buf))
	img, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, b.Image().Bounds(), img.Bounds())
}

func TestNewBoardErrors(t *testing.T) {
	for _, args := range [][3]float64{
		{0, 10, 1},
		{10, 10, -1},
		{10, math.Inf(1), 1},
		{10, 10, math.NaN()},
	} {
		_, err := NewBoard(svgpoly.Point{X: args[0], Y: args[1]}, 1, args[2])
		assert.True(t, errors.Is(err, svgpoly.ErrInvalidArgument), "%v", args)
	}
}
