package toolpath

import (
	"errors"
	"math"
	"slices"
	"testing"

	"github.com/benoitkugler/svgpen/svgpoly"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigValidate(t *testing.T) {
	assert.NoError(t, DefaultConfig().Validate())
	assert.Equal(t, svgpoly.Point{X: 500, Y: 1000}, DefaultConfig().Target())

	for _, tt := range []struct {
		name   string
		modify func(*Config)
	}{
		{"target width", func(c *Config) { c.TargetWidth = 0 }},
		{"target height", func(c *Config) { c.TargetHeight = math.Inf(1) }},
		{"pixel resolution", func(c *Config) { c.PixelResolution = -2 }},
		{"approach distance", func(c *Config) { c.Approach = math.NaN() }},
	} {
		cfg := DefaultConfig()
		tt.modify(&cfg)
		err := cfg.Validate()
		assert.True(t, errors.Is(err, svgpoly.ErrInvalidArgument), tt.name)
		assert.Contains(t, err.Error(), tt.name)
	}
}

func TestPrepare(t *testing.T) {
	doc := squareDocument()
	cfg := Config{TargetWidth: 100, TargetHeight: 200, PixelResolution: 2, Approach: 5}
	seq, scale, err := Prepare(doc, cfg, Identity(), Identity())
	require.NoError(t, err)
	assert.Equal(t, 10., scale)
	assert.True(t, doc.Fitted())
	assert.Equal(t, 2., doc.Resolution())

	cmds := slices.Collect(seq)
	require.Len(t, cmds, 7)
	assertPosition(t, mgl64.Vec3{100, 100, 0}, cmds[3].Target())
}

func TestPrepareAtomic(t *testing.T) {
	doc := squareDocument()
	doc.Segments = append(doc.Segments, svgpoly.Segment{})
	before := slices.Clone(doc.Segments[0].Points)

	seq, _, err := Prepare(doc, DefaultConfig(), Identity(), Identity())
	assert.Nil(t, seq)
	assert.True(t, errors.Is(err, svgpoly.ErrEmptyPath))
	assert.False(t, doc.Fitted())
	assert.Equal(t, before, doc.Segments[0].Points)

	cfg := DefaultConfig()
	cfg.Approach = 0
	_, _, err = Prepare(squareDocument(), cfg, Identity(), Identity())
	assert.True(t, errors.Is(err, svgpoly.ErrInvalidArgument))

	_, _, err = Prepare(&svgpoly.Document{}, DefaultConfig(), Identity(), Identity())
	assert.True(t, errors.Is(err, svgpoly.ErrDegenerateGeometry))
}
