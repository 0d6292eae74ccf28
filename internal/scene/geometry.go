package scene

import (
	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"

	"buildstudio/internal/build"
)

// Build volume bounds in machine coordinates (mm, Z up).
const (
	VolumeMinX = -60
	VolumeMaxX = 60
	VolumeMinY = -60
	VolumeMaxY = 60
	VolumeMinZ = 0
	VolumeMaxZ = 120
)

// Fixed camera pose: orbit angles in degrees and distance from the volume
// center.
const (
	CameraElevation = 20
	CameraAzimuth   = 45
	cameraDistance  = 340
)

const (
	axisLength    = 60 // mm
	arrowHeadLen  = 8  // mm
	boundsDashLen = 4  // mm
	boundsGapLen  = 3  // mm
)

var (
	platformColor = rl.NewColor(190, 190, 190, 160)
	boundsColor   = rl.NewColor(40, 40, 40, 200)
	axisXColor    = rl.NewColor(220, 60, 60, 255)
	axisYColor    = rl.NewColor(60, 200, 60, 255)
	axisZColor    = rl.NewColor(60, 90, 220, 255)
)

// stepColors cycle per step for the build preview overlay.
var stepColors = []rl.Color{
	rl.Gold,
	rl.NewColor(144, 238, 144, 255), // light green
	rl.NewColor(173, 216, 230, 255), // light blue
	rl.NewColor(240, 128, 128, 255), // light coral
	rl.NewColor(221, 160, 221, 255), // plum
	rl.Orange,
}

// vec maps machine coordinates (X, Y on the platform, Z up) to raylib world
// coordinates (Y up, platform on the XZ plane).
func vec(x, y, z float32) rl.Vector3 {
	return rl.NewVector3(x, z, y)
}

// Line is one colored segment in world coordinates.
type Line struct {
	From, To rl.Vector3
	Color    rl.Color
}

// Quad is a filled planar quadrilateral, corners in order.
type Quad struct {
	A, B, C, D rl.Vector3
	Color      rl.Color
}

// Arrow points from Start to End; the head is drawn at End.
type Arrow struct {
	Start, End rl.Vector3
	Color      rl.Color
}

// Geometry is the static scene: the platform plate, the three coordinate
// arrows, and the dashed build-volume box. It is a pure function of the
// constants above; Build always returns the same value.
type Geometry struct {
	Platform Quad
	Axes     [3]Arrow
	Bounds   []Line
}

// Build computes the static scene geometry.
func Build() Geometry {
	g := Geometry{
		Platform: Quad{
			A:     vec(VolumeMinX, VolumeMinY, 0),
			B:     vec(VolumeMaxX, VolumeMinY, 0),
			C:     vec(VolumeMaxX, VolumeMaxY, 0),
			D:     vec(VolumeMinX, VolumeMaxY, 0),
			Color: platformColor,
		},
		Axes: [3]Arrow{
			{Start: vec(0, 0, 0), End: vec(axisLength, 0, 0), Color: axisXColor},
			{Start: vec(0, 0, 0), End: vec(0, axisLength, 0), Color: axisYColor},
			{Start: vec(0, 0, 0), End: vec(0, 0, axisLength), Color: axisZColor},
		},
	}
	for _, e := range volumeEdges() {
		g.Bounds = append(g.Bounds, dashedSegments(e[0], e[1], boundsDashLen, boundsGapLen, boundsColor)...)
	}
	return g
}

// volumeEdges returns the 12 edges of the build-volume box in world
// coordinates.
func volumeEdges() [12][2]rl.Vector3 {
	corner := func(x, y, z float32) rl.Vector3 { return vec(x, y, z) }
	var (
		a = corner(VolumeMinX, VolumeMinY, VolumeMinZ)
		b = corner(VolumeMaxX, VolumeMinY, VolumeMinZ)
		c = corner(VolumeMaxX, VolumeMaxY, VolumeMinZ)
		d = corner(VolumeMinX, VolumeMaxY, VolumeMinZ)
		e = corner(VolumeMinX, VolumeMinY, VolumeMaxZ)
		f = corner(VolumeMaxX, VolumeMinY, VolumeMaxZ)
		g = corner(VolumeMaxX, VolumeMaxY, VolumeMaxZ)
		h = corner(VolumeMinX, VolumeMaxY, VolumeMaxZ)
	)
	return [12][2]rl.Vector3{
		{a, b}, {b, c}, {c, d}, {d, a}, // bottom
		{e, f}, {f, g}, {g, h}, {h, e}, // top
		{a, e}, {b, f}, {c, g}, {d, h}, // verticals
	}
}

// dashedSegments splits the segment from..to into dash/gap pieces. The final
// dash is truncated at the endpoint.
func dashedSegments(from, to rl.Vector3, dash, gap float32, color rl.Color) []Line {
	dx := to.X - from.X
	dy := to.Y - from.Y
	dz := to.Z - from.Z
	length := math32.Sqrt(dx*dx + dy*dy + dz*dz)
	if length == 0 || dash <= 0 {
		return nil
	}
	at := func(t float32) rl.Vector3 {
		return rl.NewVector3(from.X+dx*t, from.Y+dy*t, from.Z+dz*t)
	}
	var out []Line
	for start := float32(0); start < length; start += dash + gap {
		end := start + dash
		if end > length {
			end = length
		}
		out = append(out, Line{From: at(start / length), To: at(end / length), Color: color})
	}
	return out
}

// CameraPose returns the fixed camera position and target in world
// coordinates: an orbit at CameraElevation/CameraAzimuth around the center of
// the build volume.
func CameraPose() (position, target rl.Vector3) {
	target = vec(0, 0, (VolumeMinZ+VolumeMaxZ)/2)
	el := float32(CameraElevation) * math32.Pi / 180
	az := float32(CameraAzimuth) * math32.Pi / 180
	offset := vec(
		cameraDistance*math32.Cos(el)*math32.Cos(az),
		cameraDistance*math32.Cos(el)*math32.Sin(az),
		cameraDistance*math32.Sin(el),
	)
	position = rl.NewVector3(target.X+offset.X, target.Y+offset.Y, target.Z+offset.Z)
	return position, target
}

// Solid is one slab of a build step in the preview overlay: a layer-thick box
// or disc in world coordinates.
type Solid struct {
	Shape  build.Shape
	Center rl.Vector3
	Size   rl.Vector3 // X and Z = footprint, Y = layer thickness
	Color  rl.Color
}

// Overlay is the build-step preview drawn on top of the static scene.
type Overlay struct {
	Solids  []Solid
	Hatches []Line
}

// BuildOverlay converts the current sequence into preview geometry: one slab
// per repetition, stacked from each step's starting layer, colored per step,
// plus the step's hatch lines drawn on its top surface.
func BuildOverlay(steps []build.Step, layerHeight, spotSizeMicrons float32) Overlay {
	var o Overlay
	if layerHeight <= 0 {
		return o
	}
	for i, step := range steps {
		color := stepColors[i%len(stepColors)]
		w, l := step.Dims.Footprint(step.Shape)
		if w <= 0 || l <= 0 || step.Repetitions < 1 {
			continue
		}
		base := float32(step.StartingLayer) * layerHeight
		for rep := 0; rep < step.Repetitions; rep++ {
			z := base + (float32(rep)+0.5)*layerHeight
			o.Solids = append(o.Solids, Solid{
				Shape:  step.Shape,
				Center: vec(step.XOffset, step.YOffset, z),
				Size:   rl.NewVector3(w, layerHeight, l),
				Color:  color,
			})
		}
		top := base + step.Height(layerHeight)
		for _, hl := range step.HatchLines(spotSizeMicrons) {
			o.Hatches = append(o.Hatches, Line{
				From:  vec(hl.X1, hl.Y1, top),
				To:    vec(hl.X2, hl.Y2, top),
				Color: rl.DarkGray,
			})
		}
	}
	return o
}
