package geometry

import (
	"math"

	"github.com/san-kum/dcmlab/internal/machine"
)

const (
	ringSegments  = 24
	armatureRings = 5
	longitudinals = 12

	shaftRadius   = 0.015
	shaftOverhang = 0.08
)

// buildArmature emits the wireframe cylinder for the rotating core.
// Fixed radius and length; the core surface itself does not show the
// rotation, the conductors and commutator do.
func buildArmature(f *Frame) {
	r := machine.Radius
	half := machine.ArmatureLength / 2

	for k := 0; k < armatureRings; k++ {
		z := -half + machine.ArmatureLength*float64(k)/float64(armatureRings-1)
		addRing(f, r, z, PartArmature)
	}
	for k := 0; k < longitudinals; k++ {
		ang := 2 * math.Pi * float64(k) / float64(longitudinals)
		f.line(cyl(ang, r, -half), cyl(ang, r, half), PartArmature)
	}
}

// buildShaft emits the thin cylinder along the rotation axis. It is
// longer than the armature so it pokes out of both faces.
func buildShaft(f *Frame) {
	half := machine.ArmatureLength/2 + shaftOverhang
	addRing(f, shaftRadius, -half, PartShaft)
	addRing(f, shaftRadius, half, PartShaft)
	for k := 0; k < 4; k++ {
		ang := 2 * math.Pi * float64(k) / 4
		f.line(cyl(ang, shaftRadius, -half), cyl(ang, shaftRadius, half), PartShaft)
	}
}

func addRing(f *Frame, rad, z float64, p Part) {
	for k := 0; k < ringSegments; k++ {
		a0 := 2 * math.Pi * float64(k) / ringSegments
		a1 := 2 * math.Pi * float64(k+1) / ringSegments
		f.line(cyl(a0, rad, z), cyl(a1, rad, z), p)
	}
}
