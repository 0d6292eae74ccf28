package app

import (
	"fmt"
	"strconv"
	"strings"

	"buildstudio/internal/build"
)

// stepForm is the raw state of the add/edit step dialog. Field values stay
// strings until OK so the user can type freely; toStep is the validation
// boundary.
type stepForm struct {
	Shape   build.Shape
	DimA    string // size, width, or diameter depending on shape
	DimB    string // length for rectangle/ellipse
	Reps    string
	XOff    string
	YOff    string
	Layer   string
	HatchOn bool
	Pattern build.HatchPattern
	Spacing string
	Mult    string
	Angle   string
}

// formFromStep prefills the dialog from an existing step.
func formFromStep(s build.Step) stepForm {
	f := stepForm{
		Shape:   s.Shape,
		Reps:    strconv.Itoa(s.Repetitions),
		XOff:    fmtFloat(s.XOffset),
		YOff:    fmtFloat(s.YOffset),
		Layer:   strconv.Itoa(s.StartingLayer),
		HatchOn: s.Hatch.Enabled,
		Pattern: s.Hatch.Pattern,
		Spacing: fmtFloat(s.Hatch.Spacing),
		Mult:    fmtFloat(s.Hatch.SpacingMultiplier),
		Angle:   fmtFloat(s.Hatch.Angle),
	}
	if f.Pattern == "" {
		f.Pattern = build.HatchLinear
	}
	switch s.Shape {
	case build.ShapeSquare:
		f.DimA = fmtFloat(s.Dims.Size)
	case build.ShapeCircle:
		f.DimA = fmtFloat(s.Dims.Diameter)
	default:
		f.DimA = fmtFloat(s.Dims.Width)
		f.DimB = fmtFloat(s.Dims.Length)
	}
	return f
}

// defaultStepForm is the state for a freshly opened add dialog.
func defaultStepForm() stepForm {
	return formFromStep(build.Step{
		Shape:       build.ShapeSquare,
		Dims:        build.Dims{Size: 10},
		Repetitions: 1,
	})
}

// toStep validates the form and builds the step. The error message is shown
// verbatim in the dialog.
func (f stepForm) toStep() (build.Step, error) {
	s := build.Step{Shape: f.Shape}

	a, err := parsePositiveFloat(f.DimA)
	if err != nil {
		return build.Step{}, fmt.Errorf("dimension must be a positive number")
	}
	switch f.Shape {
	case build.ShapeSquare:
		s.Dims.Size = a
	case build.ShapeCircle:
		s.Dims.Diameter = a
	case build.ShapeRectangle, build.ShapeEllipse:
		b, err := parsePositiveFloat(f.DimB)
		if err != nil {
			return build.Step{}, fmt.Errorf("length must be a positive number")
		}
		s.Dims.Width = a
		s.Dims.Length = b
	default:
		return build.Step{}, fmt.Errorf("unknown shape %q", f.Shape)
	}

	reps, err := strconv.Atoi(strings.TrimSpace(f.Reps))
	if err != nil || reps < 1 {
		return build.Step{}, fmt.Errorf("repetitions must be a whole number of at least 1")
	}
	s.Repetitions = reps

	if s.XOffset, err = parseFloatField(f.XOff); err != nil {
		return build.Step{}, fmt.Errorf("X offset must be a number")
	}
	if s.YOffset, err = parseFloatField(f.YOff); err != nil {
		return build.Step{}, fmt.Errorf("Y offset must be a number")
	}

	layer, err := strconv.Atoi(strings.TrimSpace(f.Layer))
	if err != nil || layer < 0 {
		return build.Step{}, fmt.Errorf("starting layer must be a whole number of 0 or more")
	}
	s.StartingLayer = layer

	if !f.HatchOn {
		return s, nil
	}
	h := build.HatchSettings{Enabled: true, Pattern: f.Pattern}
	if h.Spacing, err = parseNonNegativeFloat(f.Spacing); err != nil {
		return build.Step{}, fmt.Errorf("hatch spacing must be 0 or a positive number")
	}
	if h.SpacingMultiplier, err = parseNonNegativeFloat(f.Mult); err != nil {
		return build.Step{}, fmt.Errorf("spot multiplier must be 0 or a positive number")
	}
	if h.Spacing == 0 && h.SpacingMultiplier == 0 {
		return build.Step{}, fmt.Errorf("set a hatch spacing or a spot multiplier")
	}
	if h.Angle, err = parseFloatField(f.Angle); err != nil {
		return build.Step{}, fmt.Errorf("hatch angle must be a number")
	}
	s.Hatch = h
	return s, nil
}

func parseFloatField(s string) (float32, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 32)
	if err != nil {
		return 0, err
	}
	return float32(v), nil
}

func parsePositiveFloat(s string) (float32, error) {
	v, err := parseFloatField(s)
	if err != nil {
		return 0, err
	}
	if v <= 0 {
		return 0, fmt.Errorf("must be positive, got %g", v)
	}
	return v, nil
}

func parseNonNegativeFloat(s string) (float32, error) {
	if strings.TrimSpace(s) == "" {
		return 0, nil
	}
	v, err := parseFloatField(s)
	if err != nil {
		return 0, err
	}
	if v < 0 {
		return 0, fmt.Errorf("must not be negative, got %g", v)
	}
	return v, nil
}

func fmtFloat(v float32) string {
	return strconv.FormatFloat(float64(v), 'g', -1, 32)
}

// nextShape cycles through the shape choices in form order.
func nextShape(s build.Shape) build.Shape {
	for i, sh := range build.Shapes {
		if sh == s {
			return build.Shapes[(i+1)%len(build.Shapes)]
		}
	}
	return build.Shapes[0]
}

// nextPattern flips between the two hatch patterns.
func nextPattern(p build.HatchPattern) build.HatchPattern {
	if p == build.HatchLinear {
		return build.HatchCrosshatch
	}
	return build.HatchLinear
}
