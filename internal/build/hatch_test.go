package build

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHatchSpacingFromMultiplier(t *testing.T) {
	h := HatchSettings{Enabled: true, SpacingMultiplier: 1}
	assert.InDelta(t, 0.1, h.SpacingFor(100), 1e-6)
	assert.InDelta(t, 0.05, h.SpacingFor(50), 1e-6)
	assert.InDelta(t, 0.2, h.SpacingFor(200), 1e-6)

	h.SpacingMultiplier = 2
	assert.InDelta(t, 0.2, h.SpacingFor(100), 1e-6)

	// Explicit spacing wins over the multiplier.
	h.Spacing = 1.5
	assert.InDelta(t, 1.5, h.SpacingFor(100), 1e-6)

	// No usable spacing configured.
	assert.Zero(t, HatchSettings{}.SpacingFor(100))
	assert.Zero(t, HatchSettings{SpacingMultiplier: 1}.SpacingFor(0))
}

func TestHatchDisabled(t *testing.T) {
	step := Step{Shape: ShapeSquare, Dims: Dims{Size: 10}}
	assert.Empty(t, step.HatchLines(100))
}

func TestHatchSquareLinear(t *testing.T) {
	step := Step{
		Shape: ShapeSquare,
		Dims:  Dims{Size: 10},
		Hatch: HatchSettings{Enabled: true, Pattern: HatchLinear, Spacing: 1, Angle: 0},
	}
	lines := step.HatchLines(100)
	// 10 chords at 1 mm spacing fit across the 10 mm square.
	require.Len(t, lines, 10)
	for _, ln := range lines {
		assert.InDelta(t, -5, ln.X1, 1e-4)
		assert.InDelta(t, 5, ln.X2, 1e-4)
		assert.InDelta(t, ln.Y1, ln.Y2, 1e-4) // horizontal at angle 0
		assert.Less(t, ln.Y1, float32(5))
		assert.Greater(t, ln.Y1, float32(-5))
	}
}

func TestHatchCircleChords(t *testing.T) {
	step := Step{
		Shape: ShapeCircle,
		Dims:  Dims{Diameter: 10},
		Hatch: HatchSettings{Enabled: true, Pattern: HatchLinear, Spacing: 1, Angle: 45},
	}
	lines := step.HatchLines(100)
	require.NotEmpty(t, lines)
	for _, ln := range lines {
		// Both endpoints on the circle of radius 5.
		assert.InDelta(t, 25, ln.X1*ln.X1+ln.Y1*ln.Y1, 1e-3)
		assert.InDelta(t, 25, ln.X2*ln.X2+ln.Y2*ln.Y2, 1e-3)
	}
}

func TestHatchCrosshatchDoubles(t *testing.T) {
	step := Step{
		Shape: ShapeRectangle,
		Dims:  Dims{Width: 15, Length: 20},
		Hatch: HatchSettings{Enabled: true, Pattern: HatchLinear, Spacing: 2, Angle: 0},
	}
	linear := len(step.HatchLines(100))
	step.Hatch.Pattern = HatchCrosshatch
	cross := step.HatchLines(100)
	assert.Greater(t, len(cross), linear)
	for _, ln := range cross {
		assert.GreaterOrEqual(t, ln.X1, float32(-7.5-1e-4))
		assert.LessOrEqual(t, ln.X2, float32(7.5+1e-4))
		assert.GreaterOrEqual(t, ln.Y1, float32(-10-1e-4))
		assert.LessOrEqual(t, ln.Y2, float32(10+1e-4))
	}
}

func TestHatchOffsetsApplied(t *testing.T) {
	step := Step{
		Shape:   ShapeSquare,
		Dims:    Dims{Size: 10},
		XOffset: 10,
		YOffset: 5,
		Hatch:   HatchSettings{Enabled: true, Pattern: HatchLinear, Spacing: 1, Angle: 0},
	}
	for _, ln := range step.HatchLines(100) {
		assert.InDelta(t, 5, ln.X1, 1e-4)
		assert.InDelta(t, 15, ln.X2, 1e-4)
		assert.Less(t, ln.Y1, float32(10))
		assert.Greater(t, ln.Y1, float32(0))
	}
}

func TestHatchMultiplierChangesLineCount(t *testing.T) {
	step := Step{
		Shape: ShapeSquare,
		Dims:  Dims{Size: 10},
		Hatch: HatchSettings{Enabled: true, Pattern: HatchLinear, Angle: 0, SpacingMultiplier: 0.5},
	}
	dense := len(step.HatchLines(100))
	step.Hatch.SpacingMultiplier = 2
	sparse := len(step.HatchLines(100))
	assert.Greater(t, dense, sparse)
	assert.Positive(t, sparse)
}

func TestHatchEllipseInsideBounds(t *testing.T) {
	step := Step{
		Shape: ShapeEllipse,
		Dims:  Dims{Width: 12, Length: 18},
		Hatch: HatchSettings{Enabled: true, Pattern: HatchLinear, Spacing: 1.5, Angle: 30},
	}
	lines := step.HatchLines(100)
	require.NotEmpty(t, lines)
	for _, ln := range lines {
		for _, p := range [][2]float32{{ln.X1, ln.Y1}, {ln.X2, ln.Y2}} {
			x, y := p[0]/6, p[1]/9
			assert.InDelta(t, 1, x*x+y*y, 1e-3)
		}
	}
}
