package app

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"buildstudio/internal/build"
)

func TestToStepSquare(t *testing.T) {
	f := stepForm{
		Shape: build.ShapeSquare,
		DimA:  "12.5",
		Reps:  "3",
		XOff:  "-5",
		YOff:  "2.5",
		Layer: "10",
	}
	s, err := f.toStep()
	require.NoError(t, err)
	assert.Equal(t, build.ShapeSquare, s.Shape)
	assert.Equal(t, float32(12.5), s.Dims.Size)
	assert.Equal(t, 3, s.Repetitions)
	assert.Equal(t, float32(-5), s.XOffset)
	assert.Equal(t, float32(2.5), s.YOffset)
	assert.Equal(t, 10, s.StartingLayer)
	assert.False(t, s.Hatch.Enabled)
}

func TestToStepRectangleNeedsLength(t *testing.T) {
	f := stepForm{Shape: build.ShapeRectangle, DimA: "10", DimB: "", Reps: "1", XOff: "0", YOff: "0", Layer: "0"}
	_, err := f.toStep()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "length")

	f.DimB = "20"
	s, err := f.toStep()
	require.NoError(t, err)
	assert.Equal(t, float32(10), s.Dims.Width)
	assert.Equal(t, float32(20), s.Dims.Length)
}

func TestToStepCircleDiameter(t *testing.T) {
	f := stepForm{Shape: build.ShapeCircle, DimA: "30", Reps: "1", XOff: "0", YOff: "0", Layer: "0"}
	s, err := f.toStep()
	require.NoError(t, err)
	assert.Equal(t, float32(30), s.Dims.Diameter)
}

func TestToStepRejectsBadInput(t *testing.T) {
	base := stepForm{Shape: build.ShapeSquare, DimA: "10", Reps: "1", XOff: "0", YOff: "0", Layer: "0"}

	f := base
	f.DimA = "-1"
	_, err := f.toStep()
	assert.Error(t, err, "negative dimension")

	f = base
	f.DimA = "abc"
	_, err = f.toStep()
	assert.Error(t, err, "non-numeric dimension")

	f = base
	f.Reps = "0"
	_, err = f.toStep()
	assert.Error(t, err, "zero repetitions")

	f = base
	f.Layer = "-1"
	_, err = f.toStep()
	assert.Error(t, err, "negative layer")

	f = base
	f.XOff = "east"
	_, err = f.toStep()
	assert.Error(t, err, "non-numeric offset")
}

func TestToStepHatchValidation(t *testing.T) {
	f := stepForm{
		Shape: build.ShapeSquare, DimA: "10", Reps: "1", XOff: "0", YOff: "0", Layer: "0",
		HatchOn: true, Pattern: build.HatchLinear,
		Spacing: "0", Mult: "0", Angle: "45",
	}
	_, err := f.toStep()
	require.Error(t, err, "no spacing source at all")

	f.Mult = "2"
	s, err := f.toStep()
	require.NoError(t, err)
	assert.True(t, s.Hatch.Enabled)
	assert.Equal(t, float32(2), s.Hatch.SpacingMultiplier)
	assert.Equal(t, float32(45), s.Hatch.Angle)
}

func TestToStepHatchEmptyFieldsMeanZero(t *testing.T) {
	f := stepForm{
		Shape: build.ShapeSquare, DimA: "10", Reps: "1", XOff: "0", YOff: "0", Layer: "0",
		HatchOn: true, Pattern: build.HatchCrosshatch,
		Spacing: "0.5", Mult: "", Angle: "0",
	}
	s, err := f.toStep()
	require.NoError(t, err)
	assert.Equal(t, float32(0.5), s.Hatch.Spacing)
	assert.Zero(t, s.Hatch.SpacingMultiplier)
}

func TestFormFromStepRoundTrip(t *testing.T) {
	orig := build.Step{
		Shape:         build.ShapeEllipse,
		Dims:          build.Dims{Width: 8, Length: 14},
		Repetitions:   4,
		XOffset:       -10,
		YOffset:       5,
		StartingLayer: 2,
		Hatch: build.HatchSettings{
			Enabled: true,
			Pattern: build.HatchCrosshatch,
			Spacing: 0.25,
			Angle:   30,
		},
	}
	got, err := formFromStep(orig).toStep()
	require.NoError(t, err)
	assert.Equal(t, orig, got)
}

func TestFormFromStepDefaultsPattern(t *testing.T) {
	f := formFromStep(build.Step{Shape: build.ShapeSquare, Dims: build.Dims{Size: 5}, Repetitions: 1})
	assert.Equal(t, build.HatchLinear, f.Pattern, "pattern button must never start blank")
}

func TestNextShapeCycles(t *testing.T) {
	seen := map[build.Shape]bool{}
	s := build.Shapes[0]
	for range build.Shapes {
		seen[s] = true
		s = nextShape(s)
	}
	assert.Equal(t, build.Shapes[0], s, "full cycle returns to start")
	assert.Len(t, seen, len(build.Shapes))
}

func TestNextPatternFlips(t *testing.T) {
	assert.Equal(t, build.HatchCrosshatch, nextPattern(build.HatchLinear))
	assert.Equal(t, build.HatchLinear, nextPattern(build.HatchCrosshatch))
}

func TestRecoaterFromFields(t *testing.T) {
	r, err := recoaterFromFields("10", "15.5", "2", "1", "3")
	require.NoError(t, err)
	assert.Equal(t, float32(10), r.AdvanceVelocity)
	assert.Equal(t, float32(15.5), r.RetractVelocity)
	assert.Equal(t, float32(2), r.DwellTime)
	assert.Equal(t, 1, r.FullRepeats)
	assert.Equal(t, 3, r.CycleRepeats)

	_, err = recoaterFromFields("0", "15", "2", "1", "1")
	assert.Error(t, err, "zero advance velocity")

	_, err = recoaterFromFields("10", "15", "-1", "1", "1")
	assert.Error(t, err, "negative dwell")

	_, err = recoaterFromFields("10", "15", "2", "0", "1")
	assert.Error(t, err, "zero repeats")

	_, err = recoaterFromFields("10", "fast", "2", "1", "1")
	assert.Error(t, err, "non-numeric velocity")
}

func TestFmtFloat(t *testing.T) {
	assert.Equal(t, "100", fmtFloat(100))
	assert.Equal(t, "0.1", fmtFloat(0.1))
	assert.Equal(t, "-5.25", fmtFloat(-5.25))
}

func TestCapitalize(t *testing.T) {
	assert.Equal(t, "Crosshatch", capitalize("crosshatch"))
	assert.Equal(t, "", capitalize(""))
}
