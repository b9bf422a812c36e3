package curves

import (
	"math"
	"strings"
	"testing"

	"github.com/san-kum/dcmlab/internal/machine"
)

func TestSpeedSweepLinearIncreasing(t *testing.T) {
	s := machine.NewState()
	c := SpeedSweep(s, 100)

	if len(c.X) != 100 || len(c.Y) != 100 {
		t.Fatalf("expected 100 points, got %d/%d", len(c.X), len(c.Y))
	}
	if c.X[0] != machine.MinSpeed || c.X[99] != machine.MaxSpeed {
		t.Errorf("sweep should cover [%f, %f], got [%f, %f]",
			machine.MinSpeed, machine.MaxSpeed, c.X[0], c.X[99])
	}

	// Strictly increasing, constant slope.
	slope := (c.Y[1] - c.Y[0]) / (c.X[1] - c.X[0])
	for i := 1; i < len(c.Y); i++ {
		if c.Y[i] <= c.Y[i-1] {
			t.Fatalf("EMF not strictly increasing at %d", i)
		}
		s2 := (c.Y[i] - c.Y[i-1]) / (c.X[i] - c.X[i-1])
		if math.Abs(s2-slope) > 1e-9 {
			t.Fatalf("EMF curve not linear at %d: slope %f vs %f", i, s2, slope)
		}
	}
}

func TestCurrentSweepLinearIncreasing(t *testing.T) {
	s := machine.NewState()
	c := CurrentSweep(s, 100)

	if c.X[0] != machine.MinCurrent || c.X[99] != machine.MaxCurrent {
		t.Errorf("sweep bounds wrong: [%f, %f]", c.X[0], c.X[99])
	}
	for i := 1; i < len(c.Y); i++ {
		if c.Y[i] <= c.Y[i-1] {
			t.Fatalf("torque not strictly increasing at %d", i)
		}
	}
}

func TestMarkerOnCurve(t *testing.T) {
	s := machine.NewState()
	s.SetSpeed(10)
	s.SetFluxDensity(0.5)
	s.SetArmatureCurrent(2)

	sp, cu := Both(s, 50)
	if sp.MarkerX != 10 || sp.MarkerY != 15.0 {
		t.Errorf("speed marker: got (%f, %f), want (10, 15)", sp.MarkerX, sp.MarkerY)
	}
	if cu.MarkerX != 2 || cu.MarkerY != 3.0 {
		t.Errorf("current marker: got (%f, %f), want (2, 3)", cu.MarkerX, cu.MarkerY)
	}
	if !strings.Contains(sp.Annotation, "15.00 V") {
		t.Errorf("annotation missing value: %q", sp.Annotation)
	}
}

func TestSweepIgnoresTheta(t *testing.T) {
	// Curves depend on state only; two calls always agree.
	s := machine.NewState()
	a := SpeedSweep(s, 20)
	b := SpeedSweep(s, 20)
	for i := range a.Y {
		if a.Y[i] != b.Y[i] {
			t.Fatal("sweep must be a pure function of state")
		}
	}
}

func TestDefaultPointsFallback(t *testing.T) {
	s := machine.NewState()
	c := SpeedSweep(s, 0)
	if len(c.X) != DefaultPoints {
		t.Errorf("expected %d points fallback, got %d", DefaultPoints, len(c.X))
	}
}
