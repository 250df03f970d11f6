package svgpoly

import (
	"errors"
	"math"
)

var (
	// ErrInvalidArgument is returned for non positive sizes,
	// resolutions or distances.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrDegenerateGeometry is returned when the artwork has
	// a zero width or height, or has no drawable path at all.
	ErrDegenerateGeometry = errors.New("degenerate geometry")

	// ErrEmptyPath is returned when a segment without points
	// reaches the toolpath generator.
	ErrEmptyPath = errors.New("empty path")
)

// positive returns true for strictly positive, finite values.
func positive(v float64) bool {
	return v > 0 && !math.IsInf(v, 1)
}
