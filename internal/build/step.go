package build

import (
	"fmt"
	"strconv"
	"strings"
)

// Shape is the footprint of a build step on the platform.
type Shape string

const (
	ShapeSquare    Shape = "square"
	ShapeRectangle Shape = "rectangle"
	ShapeCircle    Shape = "circle"
	ShapeEllipse   Shape = "ellipse"
)

// Shapes lists all footprint types in the order they appear in the step form.
var Shapes = []Shape{ShapeSquare, ShapeRectangle, ShapeCircle, ShapeEllipse}

// Dims holds footprint dimensions in mm. Which fields are meaningful depends on
// the shape: Size for square, Width/Length for rectangle and ellipse, Diameter
// for circle. Unused fields are zero.
type Dims struct {
	Size     float32
	Width    float32
	Length   float32
	Diameter float32
}

// Footprint returns the axis-aligned extent (w, l) of the shape in mm before
// any rotation or offset.
func (d Dims) Footprint(shape Shape) (w, l float32) {
	switch shape {
	case ShapeSquare:
		return d.Size, d.Size
	case ShapeRectangle, ShapeEllipse:
		return d.Width, d.Length
	case ShapeCircle:
		return d.Diameter, d.Diameter
	}
	return 0, 0
}

// Step is one entry in the build sequence: a shape repeated over a number of
// layers at an XY offset on the platform, optionally starting above the plate.
// Identity is positional; steps carry no ID.
type Step struct {
	Shape         Shape
	Dims          Dims
	Repetitions   int
	XOffset       float32 // mm
	YOffset       float32 // mm
	StartingLayer int     // 0 = on the plate
	Hatch         HatchSettings
}

// Height returns the total build height of the step in mm for the given layer
// height.
func (s Step) Height(layerHeight float32) float32 {
	return float32(s.Repetitions) * layerHeight
}

// formatDims renders the dimension part of the step label, e.g. "10x10mm",
// "Ø25mm", or "12x18mm ellipse".
func (s Step) formatDims() string {
	switch s.Shape {
	case ShapeSquare:
		return fmt.Sprintf("%gx%gmm", s.Dims.Size, s.Dims.Size)
	case ShapeRectangle:
		return fmt.Sprintf("%gx%gmm", s.Dims.Width, s.Dims.Length)
	case ShapeCircle:
		return fmt.Sprintf("Ø%gmm", s.Dims.Diameter)
	case ShapeEllipse:
		return fmt.Sprintf("%gx%gmm ellipse", s.Dims.Width, s.Dims.Length)
	}
	return ""
}

// Label renders the step as one list line, e.g.
// "Square | 10x10mm | 3 Reps | @(2.5,3.0) | Layer 5 | Hatch linear 2x 45°".
// The Layer part is present only when StartingLayer > 0, the Hatch part only
// when hatching is enabled. ParseLabel reverses this format.
func (s Step) Label() string {
	name := strings.ToUpper(string(s.Shape[:1])) + string(s.Shape[1:])
	parts := []string{
		name,
		s.formatDims(),
		fmt.Sprintf("%d Reps", s.Repetitions),
		fmt.Sprintf("@(%.1f,%.1f)", s.XOffset, s.YOffset),
	}
	if s.StartingLayer > 0 {
		parts = append(parts, fmt.Sprintf("Layer %d", s.StartingLayer))
	}
	if s.Hatch.Enabled {
		parts = append(parts, s.Hatch.label())
	}
	return strings.Join(parts, " | ")
}

// ParseLabel parses a list line produced by Label back into a Step.
func ParseLabel(text string) (Step, error) {
	parts := strings.Split(text, " | ")
	if len(parts) < 4 {
		return Step{}, fmt.Errorf("step label %q: want at least 4 fields, got %d", text, len(parts))
	}
	var s Step
	s.Shape = Shape(strings.ToLower(parts[0]))
	switch s.Shape {
	case ShapeSquare, ShapeRectangle, ShapeCircle, ShapeEllipse:
	default:
		return Step{}, fmt.Errorf("step label %q: unknown shape %q", text, parts[0])
	}
	if err := s.parseDims(parts[1]); err != nil {
		return Step{}, fmt.Errorf("step label %q: %w", text, err)
	}
	reps, err := strconv.Atoi(strings.TrimSuffix(parts[2], " Reps"))
	if err != nil {
		return Step{}, fmt.Errorf("step label %q: bad repetitions %q", text, parts[2])
	}
	s.Repetitions = reps
	if err := s.parseOffset(parts[3]); err != nil {
		return Step{}, fmt.Errorf("step label %q: %w", text, err)
	}
	for _, p := range parts[4:] {
		switch {
		case strings.HasPrefix(p, "Layer "):
			n, err := strconv.Atoi(strings.TrimPrefix(p, "Layer "))
			if err != nil {
				return Step{}, fmt.Errorf("step label %q: bad layer %q", text, p)
			}
			s.StartingLayer = n
		case strings.HasPrefix(p, "Hatch "):
			h, err := parseHatchLabel(p)
			if err != nil {
				return Step{}, fmt.Errorf("step label %q: %w", text, err)
			}
			s.Hatch = h
		}
	}
	return s, nil
}

func (s *Step) parseDims(text string) error {
	switch s.Shape {
	case ShapeCircle:
		d, err := parseMM(strings.TrimPrefix(text, "Ø"))
		if err != nil {
			return fmt.Errorf("bad diameter %q", text)
		}
		s.Dims.Diameter = d
		return nil
	case ShapeEllipse:
		text = strings.TrimSuffix(text, " ellipse")
		fallthrough
	default:
		dims := strings.SplitN(strings.TrimSuffix(text, "mm"), "x", 2)
		if len(dims) != 2 {
			return fmt.Errorf("bad dimensions %q", text)
		}
		w, err1 := parseFloat(dims[0])
		l, err2 := parseFloat(dims[1])
		if err1 != nil || err2 != nil {
			return fmt.Errorf("bad dimensions %q", text)
		}
		if s.Shape == ShapeSquare {
			s.Dims.Size = w
		} else {
			s.Dims.Width = w
			s.Dims.Length = l
		}
		return nil
	}
}

func (s *Step) parseOffset(text string) error {
	if !strings.HasPrefix(text, "@(") || !strings.HasSuffix(text, ")") {
		return fmt.Errorf("bad offset %q", text)
	}
	coords := strings.SplitN(text[2:len(text)-1], ",", 2)
	if len(coords) != 2 {
		return fmt.Errorf("bad offset %q", text)
	}
	x, err1 := parseFloat(coords[0])
	y, err2 := parseFloat(coords[1])
	if err1 != nil || err2 != nil {
		return fmt.Errorf("bad offset %q", text)
	}
	s.XOffset, s.YOffset = x, y
	return nil
}

func parseMM(s string) (float32, error) {
	return parseFloat(strings.TrimSuffix(s, "mm"))
}

func parseFloat(s string) (float32, error) {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 32)
	return float32(f), err
}
