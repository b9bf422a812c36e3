package gui

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/san-kum/dcmlab/internal/geometry"
)

var (
	colArmature   = rl.NewColor(180, 180, 180, 255)
	colShaft      = rl.NewColor(90, 90, 90, 255)
	colNorth      = rl.NewColor(235, 80, 80, 255)
	colSouth      = rl.NewColor(80, 120, 235, 255)
	colField      = rl.NewColor(120, 200, 255, 160)
	colCommutator = rl.NewColor(212, 175, 55, 255)
	colBrush      = rl.NewColor(255, 140, 0, 255)
	colVelocity   = rl.NewColor(80, 220, 120, 255)
	colEMF        = rl.NewColor(240, 220, 80, 255)
	colCurrent    = rl.NewColor(80, 220, 120, 255)
	colForce      = rl.NewColor(230, 100, 230, 255)
)

func toWorld(v geometry.Vec3) rl.Vector3 {
	// Machine Z (rotation axis) maps to screen-up Y.
	return rl.NewVector3(
		float32(v.X*worldScale),
		float32(v.Z*worldScale),
		float32(v.Y*worldScale),
	)
}

// drawFrame paints every primitive of a frame.
func drawFrame(f *geometry.Frame) {
	for _, l := range f.Lines {
		rl.DrawLine3D(toWorld(l.A), toWorld(l.B), lineColor(l))
	}
	for _, a := range f.Arrows {
		col := arrowColor(a.Part)
		rl.DrawLine3D(toWorld(a.From), toWorld(a.To), col)
		drawArrowHead(a, col)
	}
}

func lineColor(l geometry.Line) rl.Color {
	switch l.Part {
	case geometry.PartArmature:
		return colArmature
	case geometry.PartShaft:
		return colShaft
	case geometry.PartPoleNorth:
		return colNorth
	case geometry.PartPoleSouth:
		return colSouth
	case geometry.PartField:
		return colField
	case geometry.PartCommutator:
		return colCommutator
	case geometry.PartBrush:
		return colBrush
	case geometry.PartConductor:
		return conductorColor(l.Weight)
	}
	return colArmature
}

// conductorColor maps the signed shading weight onto a red-blue
// diverging scale; the sign flip between modes reverses the scale.
func conductorColor(w float64) rl.Color {
	t := (w + 1) / 2 // [-1,1] -> [0,1]
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	r := uint8(80 + t*175)
	b := uint8(255 - t*175)
	return rl.NewColor(r, 80, b, 255)
}

func arrowColor(p geometry.Part) rl.Color {
	switch p {
	case geometry.PartVelocity:
		return colVelocity
	case geometry.PartEMF:
		return colEMF
	case geometry.PartCurrent:
		return colCurrent
	case geometry.PartForce:
		return colForce
	case geometry.PartField:
		return colField
	}
	return colArmature
}

func drawArrowHead(a geometry.Arrow, col rl.Color) {
	dir := a.To.Sub(a.From).Normalize()
	perp := geometry.Vec3{-dir.Y, dir.X, 0}
	if perp.Length() == 0 {
		perp = geometry.Vec3{1, 0, 0}
	}
	perp = perp.Normalize()

	size := a.To.Sub(a.From).Length() * 0.3
	back := a.To.Sub(dir.Scale(size))
	rl.DrawLine3D(toWorld(a.To), toWorld(back.Add(perp.Scale(size*0.5))), col)
	rl.DrawLine3D(toWorld(a.To), toWorld(back.Sub(perp.Scale(size*0.5))), col)
}
