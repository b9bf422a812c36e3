package geometry

import "github.com/san-kum/dcmlab/internal/machine"

// Part tags a primitive with the machine part it belongs to, so each
// renderer can pick its own color or glyph per part.
type Part int

const (
	PartArmature Part = iota
	PartShaft
	PartPoleNorth
	PartPoleSouth
	PartField
	PartCommutator
	PartBrush
	PartConductor
	PartVelocity // generator: conductor velocity arrow
	PartEMF      // generator: induced EMF arrow
	PartCurrent  // motor: conductor current arrow
	PartForce    // motor: force arrow
)

// Line is a straight segment. Weight carries the signed conductor
// shading in [-1, 1]: magnitude is |I| normalized against the 5 A
// reference, sign flips between generator and motor so the diverging
// color scale reverses with the mode. Zero for non-conductor parts.
type Line struct {
	A, B   Vec3
	Part   Part
	Weight float64
}

// Arrow is a direction annotation with a head at To.
type Arrow struct {
	From, To Vec3
	Part     Part
}

// Label is a text marker anchored in 3D.
type Label struct {
	Pos  Vec3
	Text string
	Part Part
}

// Frame is the complete geometry for one animation tick. It has no
// identity across ticks: Build produces a fresh one each frame and the
// renderer discards it after drawing.
type Frame struct {
	Lines  []Line
	Arrows []Arrow
	Labels []Label
}

func (f *Frame) line(a, b Vec3, p Part)        { f.Lines = append(f.Lines, Line{A: a, B: b, Part: p}) }
func (f *Frame) arrow(from, to Vec3, p Part)   { f.Arrows = append(f.Arrows, Arrow{from, to, p}) }
func (f *Frame) label(at Vec3, s string, p Part) {
	f.Labels = append(f.Labels, Label{at, s, p})
}

// Build produces the machine geometry for rotation angle theta. The
// result is deterministic in (state, theta); nothing is cached between
// calls.
func Build(s *machine.State, theta float64) *Frame {
	f := &Frame{}
	buildArmature(f)
	buildShaft(f)
	buildPoles(f)
	if s.ShowField {
		buildFieldLines(f, s.FluxDensity())
	}
	if s.ShowCommutator {
		buildCommutator(f, theta)
	}
	buildConductors(f, s, theta)
	return f
}
