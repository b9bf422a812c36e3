// Package curves produces the analytic operating curves shown next to
// the 3D scene: EMF against speed and torque against current. Both are
// pure functions of the machine state, independent of the animation
// angle, and are recomputed on every parameter edit.
package curves

import (
	"fmt"

	"github.com/san-kum/dcmlab/internal/machine"
)

// DefaultPoints is the sweep resolution used by the UI panels.
const DefaultPoints = 100

// Curve is one parametric sweep plus the highlighted operating point.
type Curve struct {
	Title  string
	XLabel string
	YLabel string
	X, Y   []float64

	// Marker is the machine's current operating point on this curve.
	MarkerX, MarkerY float64
	Annotation       string
}

// SpeedSweep sweeps speed over its full slider range with every other
// parameter pinned at the current state, yielding the EMF line.
func SpeedSweep(s *machine.State, n int) Curve {
	if n < 2 {
		n = DefaultPoints
	}
	c := Curve{
		Title:  "EMF vs speed",
		XLabel: "speed (rad/s)",
		YLabel: "EMF (V)",
		X:      make([]float64, n),
		Y:      make([]float64, n),
	}
	for i := 0; i < n; i++ {
		w := machine.MinSpeed + (machine.MaxSpeed-machine.MinSpeed)*float64(i)/float64(n-1)
		c.X[i] = w
		c.Y[i] = machine.EMFAt(s, w)
	}
	c.MarkerX = s.Speed()
	c.MarkerY = machine.EMFAt(s, s.Speed())
	c.Annotation = fmt.Sprintf("(%.1f rad/s, %.2f V)", c.MarkerX, c.MarkerY)
	return c
}

// CurrentSweep sweeps armature current over its range, yielding the
// torque line.
func CurrentSweep(s *machine.State, n int) Curve {
	if n < 2 {
		n = DefaultPoints
	}
	c := Curve{
		Title:  "torque vs current",
		XLabel: "current (A)",
		YLabel: "torque (N.m)",
		X:      make([]float64, n),
		Y:      make([]float64, n),
	}
	for i := 0; i < n; i++ {
		a := machine.MinCurrent + (machine.MaxCurrent-machine.MinCurrent)*float64(i)/float64(n-1)
		c.X[i] = a
		c.Y[i] = machine.TorqueAt(s, a)
	}
	c.MarkerX = s.ArmatureCurrent()
	c.MarkerY = machine.TorqueAt(s, s.ArmatureCurrent())
	c.Annotation = fmt.Sprintf("(%.2f A, %.2f N.m)", c.MarkerX, c.MarkerY)
	return c
}

// Both returns the two panel curves for the current state.
func Both(s *machine.State, n int) (Curve, Curve) {
	return SpeedSweep(s, n), CurrentSweep(s, n)
}
