package geometry

import (
	"math"

	"github.com/san-kum/dcmlab/internal/machine"
)

const (
	// ConductorBars is the number of representative bars drawn around
	// the armature; the electrical equations use the full conductor
	// count.
	ConductorBars = 8

	// ReferenceCurrent normalizes conductor shading: 5 A maps to full
	// scale.
	ReferenceCurrent = 5.0

	// ArrowLength is the fixed display length of direction vectors.
	// They are geometric annotations, not magnitude-scaled.
	ArrowLength = 0.2
)

// buildConductors emits the representative conductor bars and, when
// enabled, the two tangential direction arrows per bar. Each bar is a
// diametral winding approximation: angle a on the bottom face to a+pi
// on the top face.
func buildConductors(f *Frame, s *machine.State, theta float64) {
	half := machine.ArmatureLength / 2
	w := conductorWeight(s)
	for i := 0; i < ConductorBars; i++ {
		a := theta + 2*math.Pi*float64(i)/ConductorBars
		bottom := cyl(a, machine.Radius, -half)
		top := cyl(a+math.Pi, machine.Radius, half)
		f.Lines = append(f.Lines, Line{A: bottom, B: top, Part: PartConductor, Weight: w})

		if s.ShowVectors {
			addDirectionVectors(f, s.Mode(), bottom)
		}
	}
}

// conductorWeight is the signed shading for the diverging color scale:
// |I|/5A clamped to [0,1], with the sign flipped in motor mode so the
// scale direction reverses with the mode.
func conductorWeight(s *machine.State) float64 {
	w := s.ArmatureCurrent() / ReferenceCurrent
	if w > 1 {
		w = 1
	}
	if s.Mode() == machine.Motor {
		return -w
	}
	return w
}

// addDirectionVectors draws the Fleming's-rule arrow pair at a
// conductor position. With B along the cylinder axis, both arrows are
// tangential: (-y, x, 0) and (y, -x, 0), unit-normalized and scaled to
// ArrowLength. Generator mode labels them velocity and EMF (right
// hand); motor mode labels them current and force (left hand).
func addDirectionVectors(f *Frame, mode machine.Mode, at Vec3) {
	forward := Vec3{-at.Y, at.X, 0}.Normalize().Scale(ArrowLength)
	reverse := Vec3{at.Y, -at.X, 0}.Normalize().Scale(ArrowLength)

	if mode == machine.Generator {
		f.arrow(at, at.Add(forward), PartVelocity)
		f.arrow(at, at.Add(reverse), PartEMF)
	} else {
		f.arrow(at, at.Add(forward), PartCurrent)
		f.arrow(at, at.Add(reverse), PartForce)
	}
}
