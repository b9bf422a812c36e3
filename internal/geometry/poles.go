package geometry

import (
	"math"

	"github.com/san-kum/dcmlab/internal/machine"
)

const (
	poleInnerRadius = 1.3 * machine.Radius
	poleOuterRadius = 1.7 * machine.Radius
	poleHalfAngle   = 0.28
	labelRadius     = 1.95 * machine.Radius

	fieldLinesPerPole = 5
	fieldLinePoints   = 10
	fieldLineSpread   = 0.12
	fieldLineSweep    = 0.6
)

// poleAngle returns the angular position of pole k. The stator poles
// are fixed; only armature parts rotate with theta.
func poleAngle(k int) float64 {
	return 2 * math.Pi * float64(k) / float64(2*machine.PolePairs)
}

// poleIsNorth alternates polarity by index parity.
func poleIsNorth(k int) bool { return k%2 == 0 }

// buildPoles emits 2*polePairs prisms centered at 1.5r, alternating
// North and South, each with a polarity label outside the prism.
func buildPoles(f *Frame) {
	half := machine.ArmatureLength / 2
	for k := 0; k < 2*machine.PolePairs; k++ {
		a := poleAngle(k)
		part := PartPoleSouth
		text := "S"
		if poleIsNorth(k) {
			part = PartPoleNorth
			text = "N"
		}
		addPrism(f, a-poleHalfAngle, a+poleHalfAngle, poleInnerRadius, poleOuterRadius, -half, half, part)
		f.label(cyl(a, labelRadius, 0), text, part)
	}
}

// addPrism emits the 12 edges of a curved quadrilateral prism bounded
// by two angles, two radii, and two axial planes.
func addPrism(f *Frame, a0, a1, r0, r1, z0, z1 float64, p Part) {
	c := [8]Vec3{
		cyl(a0, r0, z0), cyl(a1, r0, z0), cyl(a1, r1, z0), cyl(a0, r1, z0),
		cyl(a0, r0, z1), cyl(a1, r0, z1), cyl(a1, r1, z1), cyl(a0, r1, z1),
	}
	edges := [12][2]int{
		{0, 1}, {1, 2}, {2, 3}, {3, 0},
		{4, 5}, {5, 6}, {6, 7}, {7, 4},
		{0, 4}, {1, 5}, {2, 6}, {3, 7},
	}
	for _, e := range edges {
		f.line(c[e[0]], c[e[1]], p)
	}
}

// buildFieldLines emits 5 decorative flux curves per pole. Each is a
// parametric spiral from the pole face toward the armature surface;
// the angular sweep grows with flux density and the traversal
// direction follows polarity (flux exits North, enters South).
func buildFieldLines(f *Frame, flux float64) {
	reach := flux / machine.MaxFlux
	for k := 0; k < 2*machine.PolePairs; k++ {
		a := poleAngle(k)
		north := poleIsNorth(k)
		for j := 0; j < fieldLinesPerPole; j++ {
			base := a + fieldLineSpread*(float64(j)-float64(fieldLinesPerPole-1)/2)
			pts := fieldLinePath(base, reach, north)
			for i := 1; i < len(pts); i++ {
				f.line(pts[i-1], pts[i], PartField)
			}
			// Arrowhead at the traversal end shows flux direction.
			f.arrow(pts[len(pts)-2], pts[len(pts)-1], PartField)
		}
	}
}

// fieldLinePath samples the spiral. Points always run from the pole
// face inward; for South poles the slice is reversed so the drawn
// direction points into the pole.
func fieldLinePath(base, reach float64, north bool) []Vec3 {
	pts := make([]Vec3, 0, fieldLinePoints)
	for i := 0; i < fieldLinePoints; i++ {
		t := float64(i) / float64(fieldLinePoints-1) * reach
		rad := poleInnerRadius - t*(poleInnerRadius-1.02*machine.Radius)
		ang := base + fieldLineSweep*t
		pts = append(pts, cyl(ang, rad, 0))
	}
	if !north {
		for i, j := 0, len(pts)-1; i < j; i, j = i+1, j-1 {
			pts[i], pts[j] = pts[j], pts[i]
		}
	}
	return pts
}
