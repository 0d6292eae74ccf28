// Package scene draws the build-volume viewport: the platform plate at Z=0,
// coordinate arrows from the origin, the dashed build-volume box, and the
// preview of the current build sequence. The static part is computed once
// from constants, so every frame renders the identical image.
package scene

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"buildstudio/internal/build"
)

const (
	arrowShaftRadius = 0.8
	arrowHeadRadius  = 2.2
	cylinderSlices   = 24
)

// Scene owns the fixed camera and the geometry it draws. The overlay is
// replaced through SetOverlay whenever the sequence or layer height changes;
// the scene itself never reads the sequence store.
type Scene struct {
	Camera  rl.Camera3D
	geom    Geometry
	overlay Overlay
}

// New returns a scene with the fixed orbit camera (elevation 20°, azimuth 45°)
// aimed at the center of the build volume, and the static geometry built.
func New() *Scene {
	s := &Scene{geom: Build()}
	pos, target := CameraPose()
	s.Camera.Position = pos
	s.Camera.Target = target
	s.Camera.Up = rl.NewVector3(0, 1, 0)
	s.Camera.Fovy = 30
	s.Camera.Projection = rl.CameraPerspective
	return s
}

// SetOverlay replaces the build-step preview.
func (s *Scene) SetOverlay(o Overlay) {
	s.overlay = o
}

// Draw renders the scene inside BeginMode3D/EndMode3D. Call once per frame
// after ClearBackground and before any 2D widgets.
func (s *Scene) Draw() {
	rl.BeginMode3D(s.Camera)
	s.drawPlatform()
	for _, solid := range s.overlay.Solids {
		drawSolid(solid)
	}
	for _, ln := range s.overlay.Hatches {
		rl.DrawLine3D(ln.From, ln.To, ln.Color)
	}
	for _, ln := range s.geom.Bounds {
		rl.DrawLine3D(ln.From, ln.To, ln.Color)
	}
	for _, a := range s.geom.Axes {
		drawArrow(a)
	}
	rl.EndMode3D()
}

// drawPlatform fills the platform quad. Backface culling is off so the plate
// is visible from below as well.
func (s *Scene) drawPlatform() {
	q := s.geom.Platform
	rl.DisableBackfaceCulling()
	rl.DrawTriangle3D(q.A, q.B, q.C, q.Color)
	rl.DrawTriangle3D(q.A, q.C, q.D, q.Color)
	rl.EnableBackfaceCulling()
}

// drawArrow draws the shaft as a thin cylinder and the head as a cone ending
// at the arrow tip.
func drawArrow(a Arrow) {
	dir := rl.Vector3Subtract(a.End, a.Start)
	length := rl.Vector3Length(dir)
	if length <= arrowHeadLen {
		rl.DrawLine3D(a.Start, a.End, a.Color)
		return
	}
	dir = rl.Vector3Scale(dir, 1/length)
	headStart := rl.Vector3Add(a.Start, rl.Vector3Scale(dir, length-arrowHeadLen))
	rl.DrawCylinderEx(a.Start, headStart, arrowShaftRadius, arrowShaftRadius, cylinderSlices, a.Color)
	rl.DrawCylinderEx(headStart, a.End, arrowHeadRadius, 0, cylinderSlices, a.Color)
}

// drawSolid draws one preview slab: a box for square/rectangle footprints, a
// disc for circle/ellipse. Ellipses reuse the cylinder scaled on one axis.
func drawSolid(solid Solid) {
	switch solid.Shape {
	case build.ShapeCircle:
		bottom := rl.NewVector3(solid.Center.X, solid.Center.Y-solid.Size.Y/2, solid.Center.Z)
		top := rl.NewVector3(solid.Center.X, solid.Center.Y+solid.Size.Y/2, solid.Center.Z)
		r := solid.Size.X / 2
		rl.DrawCylinderEx(bottom, top, r, r, cylinderSlices, solid.Color)
	case build.ShapeEllipse:
		r := solid.Size.X / 2
		if solid.Size.Z > solid.Size.X {
			r = solid.Size.Z / 2
		}
		rl.PushMatrix()
		rl.Translatef(solid.Center.X, solid.Center.Y, solid.Center.Z)
		rl.Scalef(solid.Size.X/(2*r), 1, solid.Size.Z/(2*r))
		bottom := rl.NewVector3(0, -solid.Size.Y/2, 0)
		top := rl.NewVector3(0, solid.Size.Y/2, 0)
		rl.DrawCylinderEx(bottom, top, r, r, cylinderSlices, solid.Color)
		rl.PopMatrix()
	default:
		rl.DrawCube(solid.Center, solid.Size.X, solid.Size.Y, solid.Size.Z, solid.Color)
		rl.DrawCubeWires(solid.Center, solid.Size.X, solid.Size.Y, solid.Size.Z, rl.NewColor(30, 30, 30, 120))
	}
}
