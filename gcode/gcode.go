// Implements the conversion of the motion commands of a drawing
// into G-code, suitable for a pen plotter or a laser engraver.
//
// The pen is lowered with M3 and raised with M5; only the
// X and Y coordinates of the poses are used.
package gcode

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/benoitkugler/svgpen/toolpath"
	"github.com/lucasb-eyer/go-colorful"
)

var _ toolpath.Sink = (*Writer)(nil) // assert interface conformance

// Config controls the generated G-code.
type Config struct {
	PenDown    int // spindle value (S) used when lowering the pen
	FeedRate   int // speed while drawing (G1)
	TravelRate int // speed while moving with the pen up (G0)
	Precision  int // number of decimals of the coordinates
}

// DefaultConfig returns the settings of a typical hobby plotter.
func DefaultConfig() Config {
	return Config{PenDown: 1000, FeedRate: 1500, TravelRate: 3000, Precision: 3}
}

// Writer is a toolpath.Sink emitting G-code.
// Errors are sticky: once a write failed, every subsequent
// call returns the same error.
type Writer struct {
	w   *bufio.Writer
	cfg Config
	err error

	penDown bool

	color    colorful.Color // of the last segment
	hasColor bool
}

// NewWriter returns a buffered writer. If `cfg` is nil,
// DefaultConfig is used.
// Flush must be called once the drawing is done.
func NewWriter(w io.Writer, cfg *Config) *Writer {
	out := &Writer{w: bufio.NewWriter(w), cfg: DefaultConfig()}
	if cfg != nil {
		out.cfg = *cfg
	}
	if out.cfg.Precision < 0 {
		out.cfg.Precision = 0
	}
	return out
}

func (w *Writer) printf(format string, args ...interface{}) {
	if w.err != nil {
		return
	}
	_, w.err = fmt.Fprintf(w.w, format, args...)
}

// coord formats v, without negative zeros.
func (w *Writer) coord(v float64) string {
	s := strconv.FormatFloat(v, 'f', w.cfg.Precision, 64)
	if strings.Trim(s, "-0.") == "" {
		return strings.TrimPrefix(s, "-")
	}
	return s
}

func (w *Writer) penUp() {
	w.printf("M5\n")
	w.penDown = false
}

// Preamble selects millimeters and absolute positioning,
// and sets the move speeds.
func (w *Writer) Preamble() {
	w.printf("G21\nG90\n")
	w.penUp()
	w.printf("G0 F%d\nG1 F%d\n", w.cfg.TravelRate, w.cfg.FeedRate)
}

// Send implements toolpath.Sink.
func (w *Writer) Send(ctx context.Context, c toolpath.Command) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	pos := c.Target().Position()
	x, y := w.coord(pos.X()), w.coord(pos.Y())
	switch c := c.(type) {
	case toolpath.Approach:
		w.penUp()
		w.printf("G0 X%s Y%s\n", x, y)
	case toolpath.Trace:
		if !w.penDown {
			if !w.hasColor || w.color != c.Color {
				w.printf("; color %s\n", c.Color.Hex())
				w.color, w.hasColor = c.Color, true
			}
			w.printf("M3 S%d\n", w.cfg.PenDown)
			w.penDown = true
		}
		w.printf("G1 X%s Y%s\n", x, y)
	case toolpath.Retract:
		w.penUp()
	case toolpath.Home:
		if w.penDown {
			w.penUp()
		}
		w.printf("G0 X%s Y%s\n", x, y)
	}
	return w.err
}

// Postamble raises the pen and ends the program.
func (w *Writer) Postamble() {
	w.penUp()
	w.printf("M2\n")
}

// Flush writes the buffered data to the underlying writer.
func (w *Writer) Flush() error {
	if w.err != nil {
		return w.err
	}
	return w.w.Flush()
}
