package build

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/chewxy/math32"
)

// HatchPattern selects how scan lines fill a step's footprint.
type HatchPattern string

const (
	HatchLinear     HatchPattern = "linear"
	HatchCrosshatch HatchPattern = "crosshatch"
)

// HatchSettings controls scan-line generation for one step. Spacing is used
// directly when positive; otherwise the spacing is SpacingMultiplier times the
// beam spot size. Angle rotates the scan direction counter-clockwise, in
// degrees.
type HatchSettings struct {
	Enabled           bool
	Pattern           HatchPattern
	Spacing           float32 // mm; 0 = derive from spot size
	SpacingMultiplier float32 // × spot size, used when Spacing == 0
	Angle             float32 // degrees
}

// SpacingFor returns the effective line spacing in mm for the given beam spot
// size in microns. Returns 0 when no usable spacing is configured.
func (h HatchSettings) SpacingFor(spotSizeMicrons float32) float32 {
	if h.Spacing > 0 {
		return h.Spacing
	}
	if h.SpacingMultiplier > 0 && spotSizeMicrons > 0 {
		return spotSizeMicrons / 1000 * h.SpacingMultiplier
	}
	return 0
}

// label renders the hatch part of a step label, e.g. "Hatch linear 2x 45°" for
// multiplier spacing or "Hatch crosshatch 2mm 0°" for explicit spacing.
func (h HatchSettings) label() string {
	spacing := fmt.Sprintf("%gx", h.SpacingMultiplier)
	if h.Spacing > 0 {
		spacing = fmt.Sprintf("%gmm", h.Spacing)
	}
	return fmt.Sprintf("Hatch %s %s %g°", h.Pattern, spacing, h.Angle)
}

func parseHatchLabel(text string) (HatchSettings, error) {
	fields := strings.Fields(strings.TrimPrefix(text, "Hatch "))
	if len(fields) != 3 {
		return HatchSettings{}, fmt.Errorf("bad hatch %q", text)
	}
	h := HatchSettings{Enabled: true, Pattern: HatchPattern(fields[0])}
	if h.Pattern != HatchLinear && h.Pattern != HatchCrosshatch {
		return HatchSettings{}, fmt.Errorf("unknown hatch pattern %q", fields[0])
	}
	switch {
	case strings.HasSuffix(fields[1], "mm"):
		v, err := parseFloat(strings.TrimSuffix(fields[1], "mm"))
		if err != nil {
			return HatchSettings{}, fmt.Errorf("bad hatch spacing %q", fields[1])
		}
		h.Spacing = v
	case strings.HasSuffix(fields[1], "x"):
		v, err := parseFloat(strings.TrimSuffix(fields[1], "x"))
		if err != nil {
			return HatchSettings{}, fmt.Errorf("bad hatch multiplier %q", fields[1])
		}
		h.SpacingMultiplier = v
	default:
		return HatchSettings{}, fmt.Errorf("bad hatch spacing %q", fields[1])
	}
	angle, err := strconv.ParseFloat(strings.TrimSuffix(fields[2], "°"), 32)
	if err != nil {
		return HatchSettings{}, fmt.Errorf("bad hatch angle %q", fields[2])
	}
	h.Angle = float32(angle)
	return h, nil
}

// HatchLine is one scan segment on the platform, in mm, offsets applied.
type HatchLine struct {
	X1, Y1, X2, Y2 float32
}

// HatchLines generates the scan lines filling the step's footprint. Lines run
// along the hatch angle, spaced per SpacingFor, clipped to the shape outline
// and shifted by the step's XY offset. Crosshatch adds a second pass rotated
// 90°. Disabled hatching or unusable spacing yields nil.
func (s Step) HatchLines(spotSizeMicrons float32) []HatchLine {
	if !s.Hatch.Enabled {
		return nil
	}
	spacing := s.Hatch.SpacingFor(spotSizeMicrons)
	if spacing <= 0 {
		return nil
	}
	angles := []float32{s.Hatch.Angle}
	if s.Hatch.Pattern == HatchCrosshatch {
		angles = append(angles, s.Hatch.Angle+90)
	}
	var lines []HatchLine
	for _, deg := range angles {
		lines = append(lines, s.hatchPass(deg, spacing)...)
	}
	return lines
}

// hatchPass generates one family of parallel chords at the given angle.
func (s Step) hatchPass(angleDeg, spacing float32) []HatchLine {
	theta := angleDeg * math32.Pi / 180
	dx, dy := math32.Cos(theta), math32.Sin(theta) // scan direction
	nx, ny := -dy, dx                              // normal, line offset direction

	w, l := s.Dims.Footprint(s.Shape)
	if w <= 0 || l <= 0 {
		return nil
	}
	// Cover the footprint's bounding radius; per-line clipping discards
	// offsets that miss the outline.
	reach := math32.Hypot(w, l) / 2

	var lines []HatchLine
	for t := -reach + spacing/2; t < reach; t += spacing {
		px, py := nx*t, ny*t // a point on the chord
		u1, u2, ok := s.chordSpan(px, py, dx, dy)
		if !ok {
			continue
		}
		lines = append(lines, HatchLine{
			X1: px + dx*u1 + s.XOffset,
			Y1: py + dy*u1 + s.YOffset,
			X2: px + dx*u2 + s.XOffset,
			Y2: py + dy*u2 + s.YOffset,
		})
	}
	return lines
}

// chordSpan intersects the line p + u*d with the shape outline centered at the
// origin and returns the parameter range inside the shape.
func (s Step) chordSpan(px, py, dx, dy float32) (u1, u2 float32, ok bool) {
	w, l := s.Dims.Footprint(s.Shape)
	switch s.Shape {
	case ShapeSquare, ShapeRectangle:
		return clipToRect(px, py, dx, dy, w/2, l/2)
	case ShapeCircle, ShapeEllipse:
		return clipToEllipse(px, py, dx, dy, w/2, l/2)
	}
	return 0, 0, false
}

// clipToRect clips the infinite line p + u*d against |x| <= hw, |y| <= hl
// (Liang-Barsky on one axis at a time).
func clipToRect(px, py, dx, dy, hw, hl float32) (float32, float32, bool) {
	lo, hi := math32.Inf(-1), math32.Inf(1)
	clip := func(p, d, min, max float32) bool {
		if d == 0 {
			return p >= min && p <= max
		}
		a, b := (min-p)/d, (max-p)/d
		if a > b {
			a, b = b, a
		}
		if a > lo {
			lo = a
		}
		if b < hi {
			hi = b
		}
		return lo < hi
	}
	if !clip(px, dx, -hw, hw) || !clip(py, dy, -hl, hl) {
		return 0, 0, false
	}
	if math32.IsInf(lo, -1) || math32.IsInf(hi, 1) {
		return 0, 0, false
	}
	return lo, hi, true
}

// clipToEllipse intersects the line p + u*d with (x/a)² + (y/b)² = 1.
func clipToEllipse(px, py, dx, dy, a, b float32) (float32, float32, bool) {
	qa := (dx*dx)/(a*a) + (dy*dy)/(b*b)
	qb := 2 * ((px*dx)/(a*a) + (py*dy)/(b*b))
	qc := (px*px)/(a*a) + (py*py)/(b*b) - 1
	disc := qb*qb - 4*qa*qc
	if disc <= 0 || qa == 0 {
		return 0, 0, false
	}
	root := math32.Sqrt(disc)
	return (-qb - root) / (2 * qa), (-qb + root) / (2 * qa), true
}
