// Implements a raster backend showing what the pen
// would draw, by wrapping rasterx.
package preview

import (
	"context"
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"io"
	"math"

	"github.com/benoitkugler/svgpen/svgpoly"
	"github.com/benoitkugler/svgpen/toolpath"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/srwiley/rasterx"
)

var _ toolpath.Sink = (*Board)(nil) // assert interface conformance

// Board is a toolpath.Sink stamping a square mark
// at each vertex reached by the pen.
type Board struct {
	img    *image.RGBA
	filler *rasterx.Filler

	pxPerUnit float64
	marker    float64 // side of a mark, in drawing units
	marks     int
}

// NewBoard returns a white board of `size` drawing units,
// rendered with `pxPerUnit` pixels per unit.
// `marker` is usually the resolution of the fitted document.
func NewBoard(size svgpoly.Point, pxPerUnit, marker float64) (*Board, error) {
	for _, v := range [...]float64{size.X, size.Y, pxPerUnit, marker} {
		if !(v > 0) || math.IsInf(v, 1) {
			return nil, fmt.Errorf("board setting %g: %w", v, svgpoly.ErrInvalidArgument)
		}
	}
	w, h := int(math.Ceil(size.X*pxPerUnit)), int(math.Ceil(size.Y*pxPerUnit))
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), image.White, image.Point{}, draw.Src)

	scanner := rasterx.NewScannerGV(w, h, img, img.Bounds())
	return &Board{
		img:       img,
		filler:    rasterx.NewFiller(w, h, scanner),
		pxPerUnit: pxPerUnit,
		marker:    marker,
	}, nil
}

// Send implements toolpath.Sink. Only Trace commands
// leave a mark.
func (b *Board) Send(ctx context.Context, c toolpath.Command) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if tr, ok := c.(toolpath.Trace); ok {
		b.stamp(tr)
	}
	return nil
}

func (b *Board) stamp(tr toolpath.Trace) {
	h := b.marker / 2
	m := tr.Tangent.Mat4()
	b.filler.Clear()
	b.filler.SetColor(tr.Color)
	for i, corner := range [4]mgl64.Vec4{{-h, -h, 0, 1}, {h, -h, 0, 1}, {h, h, 0, 1}, {-h, h, 0, 1}} {
		p := m.Mul4x1(corner)
		fp := rasterx.ToFixedP(p.X()*b.pxPerUnit, p.Y()*b.pxPerUnit)
		if i == 0 {
			b.filler.Start(fp)
		} else {
			b.filler.Line(fp)
		}
	}
	b.filler.Stop(true)
	b.filler.Draw()
	b.marks++
}

// Marks returns the number of marks stamped so far.
func (b *Board) Marks() int { return b.marks }

// Image returns the board, which is modified by
// subsequent calls to Send.
func (b *Board) Image() *image.RGBA { return b.img }

// WritePNG encodes the board.
func (b *Board) WritePNG(w io.Writer) error { return png.Encode(w, b.img) }
