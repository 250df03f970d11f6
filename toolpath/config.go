package toolpath

import (
	"fmt"
	"iter"
	"math"

	"github.com/benoitkugler/svgpen/svgpoly"
)

// Config groups the parameters of a drawing run.
// All the distances are in output units (usually mm).
type Config struct {
	TargetWidth, TargetHeight float64 // size of the drawing surface

	// PixelResolution is the smallest feature size, used
	// to size the marks left by the pen.
	PixelResolution float64

	// Approach is the pen clearance for the moves between segments.
	Approach float64
}

// DefaultConfig returns the settings of a 500 x 1000 mm board,
// drawn with a 10 mm pen, lifted by 100 mm between paths.
func DefaultConfig() Config {
	return Config{
		TargetWidth:     500,
		TargetHeight:    1000,
		PixelResolution: 10,
		Approach:        100,
	}
}

// Target returns the size of the drawing surface.
func (cfg Config) Target() svgpoly.Point {
	return svgpoly.Point{X: cfg.TargetWidth, Y: cfg.TargetHeight}
}

// Validate checks that all the parameters are positive.
func (cfg Config) Validate() error {
	for _, v := range [...]struct {
		name  string
		value float64
	}{
		{"target width", cfg.TargetWidth},
		{"target height", cfg.TargetHeight},
		{"pixel resolution", cfg.PixelResolution},
		{"approach distance", cfg.Approach},
	} {
		if !(v.value > 0) || math.IsInf(v.value, 1) {
			return fmt.Errorf("%s %g: %w", v.name, v.value, svgpoly.ErrInvalidArgument)
		}
	}
	return nil
}

// Prepare fits `doc` to the drawing surface and returns the commands
// drawing it, with the scale factor applied.
// Every check is done before `doc` is modified, so that a
// failed preparation leaves it untouched.
func Prepare(doc *svgpoly.Document, cfg Config, base, home Pose) (iter.Seq[Command], float64, error) {
	if err := cfg.Validate(); err != nil {
		return nil, 0, err
	}
	gen, err := NewGenerator(base, home, cfg.Approach)
	if err != nil {
		return nil, 0, err
	}
	if err = gen.Check(doc); err != nil {
		return nil, 0, err
	}
	scale, err := doc.Fit(cfg.Target(), cfg.PixelResolution)
	if err != nil {
		return nil, 0, err
	}
	seq, err := gen.Commands(doc)
	if err != nil {
		return nil, 0, err
	}
	return seq, scale, nil
}
