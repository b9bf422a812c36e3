package machine

import (
	"errors"
	"testing"
)

func TestNewStateDefaults(t *testing.T) {
	s := NewState()

	if s.FluxDensity() != 0.5 {
		t.Errorf("expected flux 0.5, got %f", s.FluxDensity())
	}
	if s.Speed() != 10.0 {
		t.Errorf("expected speed 10, got %f", s.Speed())
	}
	if s.ArmatureCurrent() != 2.0 {
		t.Errorf("expected current 2, got %f", s.ArmatureCurrent())
	}
	if s.Mode() != Generator {
		t.Error("expected generator mode at startup")
	}
	if !s.ShowField || !s.ShowVectors || !s.ShowCommutator {
		t.Error("expected all display layers on at startup")
	}
}

func TestSettersClamp(t *testing.T) {
	tests := []struct {
		name     string
		set      func(*State, float64)
		get      func(*State) float64
		in, want float64
	}{
		{"flux below", (*State).SetFluxDensity, (*State).FluxDensity, -1.0, MinFlux},
		{"flux above", (*State).SetFluxDensity, (*State).FluxDensity, 99.0, MaxFlux},
		{"flux inside", (*State).SetFluxDensity, (*State).FluxDensity, 1.2, 1.2},
		{"speed below", (*State).SetSpeed, (*State).Speed, 0.0, MinSpeed},
		{"speed above", (*State).SetSpeed, (*State).Speed, 500.0, MaxSpeed},
		{"current below", (*State).SetArmatureCurrent, (*State).ArmatureCurrent, 0.0, MinCurrent},
		{"current above", (*State).SetArmatureCurrent, (*State).ArmatureCurrent, 11.0, MaxCurrent},
	}

	for _, tt := range tests {
		s := NewState()
		tt.set(s, tt.in)
		if got := tt.get(s); got != tt.want {
			t.Errorf("%s: expected %f, got %f", tt.name, tt.want, got)
		}
	}
}

func TestToggleMode(t *testing.T) {
	s := NewState()
	s.ToggleMode()
	if s.Mode() != Motor {
		t.Error("expected motor after toggle")
	}
	s.ToggleMode()
	if s.Mode() != Generator {
		t.Error("expected generator after second toggle")
	}
}

func TestParseMode(t *testing.T) {
	if m, err := ParseMode("motor"); err != nil || m != Motor {
		t.Errorf("parse motor: got %v, %v", m, err)
	}
	if m, err := ParseMode("generator"); err != nil || m != Generator {
		t.Errorf("parse generator: got %v, %v", m, err)
	}
	if _, err := ParseMode("dynamo"); !errors.Is(err, ErrUnknownMode) {
		t.Errorf("expected ErrUnknownMode, got %v", err)
	}
}

func TestSetParam(t *testing.T) {
	s := NewState()
	if err := s.SetParam("flux", 1.0); err != nil {
		t.Fatalf("set flux: %v", err)
	}
	if s.FluxDensity() != 1.0 {
		t.Errorf("expected flux 1.0, got %f", s.FluxDensity())
	}

	if err := s.SetParam("speed", 9999); err != nil {
		t.Fatalf("set speed: %v", err)
	}
	if s.Speed() != MaxSpeed {
		t.Error("SetParam should clamp like the typed setter")
	}

	if err := s.SetParam("windage", 1.0); !errors.Is(err, ErrUnknownParam) {
		t.Errorf("expected ErrUnknownParam, got %v", err)
	}
}

func TestGetParamsRoundTrip(t *testing.T) {
	s := NewState()
	params := s.GetParams()
	for name, val := range params {
		lo, hi, err := ParamRange(name)
		if err != nil {
			t.Fatalf("range for %s: %v", name, err)
		}
		if val < lo || val > hi {
			t.Errorf("default %s=%f outside [%f, %f]", name, val, lo, hi)
		}
	}
}

func TestCloneIsIndependent(t *testing.T) {
	s := NewState()
	c := s.Clone()
	c.SetSpeed(40)
	if s.Speed() == 40 {
		t.Error("mutating a clone must not touch the original")
	}
}
