package gui

import (
	"testing"

	"github.com/san-kum/dcmlab/internal/machine"
)

type recordedHum struct {
	calls     int
	lastSpeed float64
	lastAmps  float64
}

func (r *recordedHum) Update(s *machine.State) {
	r.calls++
	r.lastSpeed = s.Speed()
	r.lastAmps = s.ArmatureCurrent()
}

func TestHumFedOnAttach(t *testing.T) {
	rec := &recordedHum{}
	NewApp(machine.NewState()).WithHum(rec)
	if rec.calls == 0 {
		t.Fatal("hum not fed the launch state")
	}
}

func TestHumTracksParameterNudges(t *testing.T) {
	s := machine.NewState()
	rec := &recordedHum{}
	a := NewApp(s).WithHum(rec)

	before := rec.calls
	a.Selected = 1 // speed
	a.nudgeParam(1)
	if rec.calls <= before {
		t.Fatal("speed nudge did not reach the hum")
	}
	if rec.lastSpeed != s.Speed() {
		t.Errorf("hum saw speed %v, state has %v", rec.lastSpeed, s.Speed())
	}

	before = rec.calls
	a.Selected = 2 // current
	a.nudgeParam(-1)
	if rec.calls <= before {
		t.Fatal("current nudge did not reach the hum")
	}
	if rec.lastAmps != s.ArmatureCurrent() {
		t.Errorf("hum saw current %v, state has %v", rec.lastAmps, s.ArmatureCurrent())
	}
}

func TestResetRestoresLaunchState(t *testing.T) {
	s := machine.NewState()
	s.SetFluxDensity(1.2)
	s.SetSpeed(30)
	a := NewApp(s)

	a.Selected = 0
	a.nudgeParam(1)
	a.Theta = 1.5
	if a.State.FluxDensity() == 1.2 {
		t.Fatal("nudge did not move flux")
	}

	a.reset()
	if got := a.State.FluxDensity(); got != 1.2 {
		t.Errorf("flux after reset = %v, want the launch value 1.2", got)
	}
	if got := a.State.Speed(); got != 30 {
		t.Errorf("speed after reset = %v, want the launch value 30", got)
	}
	if a.Theta != 0 {
		t.Errorf("theta after reset = %v, want 0", a.Theta)
	}
}
