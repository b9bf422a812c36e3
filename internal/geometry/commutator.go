package geometry

import (
	"math"

	"github.com/san-kum/dcmlab/internal/machine"
)

const (
	commutatorRadius = 0.7 * machine.Radius
	commutatorGap    = 0.06 // angular gap between segments, radians
	commutatorWidth  = 0.04 // axial band width
	commutatorOffset = 0.02 // clearance from the armature face

	// Brush contact discretization. These two are cosmetic tuning
	// knobs of the visualization, not physics: the window decides how
	// close to the commutation angle a segment must sit to show a
	// brush, and the sample index picks which point along the segment
	// arc is tested.
	brushWindow      = 0.2
	brushSampleCount = 8
	brushSampleIndex = 5
)

// buildCommutator emits the segmented contact ring beyond the lower
// armature face. The ring rotates in lockstep with theta. A brush
// contact is drawn for every segment whose sampled angle sits within
// brushWindow of a commutation point (angle mod 2*pi/polePairs near
// zero) - the position where the connected conductor's current
// reverses.
func buildCommutator(f *Frame, theta float64) {
	z1 := -machine.ArmatureLength/2 - commutatorOffset
	z0 := z1 - commutatorWidth
	span := 2 * math.Pi / float64(machine.CommutatorSegments)

	for s := 0; s < machine.CommutatorSegments; s++ {
		a0 := theta + float64(s)*span + commutatorGap/2
		a1 := theta + float64(s+1)*span - commutatorGap/2
		addArc(f, commutatorRadius, a0, a1, z0, PartCommutator)
		addArc(f, commutatorRadius, a0, a1, z1, PartCommutator)
		f.line(cyl(a0, commutatorRadius, z0), cyl(a0, commutatorRadius, z1), PartCommutator)
		f.line(cyl(a1, commutatorRadius, z0), cyl(a1, commutatorRadius, z1), PartCommutator)

		if sample := segmentSampleAngle(a0, a1); atCommutationPoint(sample) {
			addBrush(f, sample, z0, z1)
		}
	}
}

// segmentSampleAngle returns the tested angle for a segment, sampled
// at brushSampleIndex of brushSampleCount evenly spaced arc points.
func segmentSampleAngle(a0, a1 float64) float64 {
	return a0 + (a1-a0)*float64(brushSampleIndex)/float64(brushSampleCount-1)
}

// atCommutationPoint reports whether an angle falls inside the brush
// window around a commutation position.
func atCommutationPoint(ang float64) bool {
	period := 2 * math.Pi / machine.PolePairs
	m := math.Mod(ang, period)
	if m < 0 {
		m += period
	}
	return m < brushWindow || period-m < brushWindow
}

// addBrush emits a small radial contact block at the sampled angle.
func addBrush(f *Frame, ang, z0, z1 float64) {
	inner := cyl(ang, commutatorRadius, (z0+z1)/2)
	outer := cyl(ang, commutatorRadius+0.03, (z0+z1)/2)
	f.line(inner, outer, PartBrush)
	f.line(cyl(ang, commutatorRadius+0.03, z0), cyl(ang, commutatorRadius+0.03, z1), PartBrush)
}

func addArc(f *Frame, rad, a0, a1, z float64, p Part) {
	const steps = 6
	for k := 0; k < steps; k++ {
		b0 := a0 + (a1-a0)*float64(k)/steps
		b1 := a0 + (a1-a0)*float64(k+1)/steps
		f.line(cyl(b0, rad, z), cyl(b1, rad, z), p)
	}
}
