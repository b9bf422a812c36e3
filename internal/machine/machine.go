package machine

import (
	"errors"
	"fmt"
)

// Domain errors for machine parameter handling.
var (
	// ErrUnknownParam indicates a parameter name with no matching field.
	ErrUnknownParam = errors.New("machine: unknown parameter")

	// ErrUnknownMode indicates a mode string outside {generator, motor}.
	ErrUnknownMode = errors.New("machine: unknown mode")
)

// Mode selects which side of the machine is being demonstrated.
type Mode int

const (
	Generator Mode = iota
	Motor
)

func (m Mode) String() string {
	if m == Motor {
		return "motor"
	}
	return "generator"
}

// ParseMode converts a mode name into a Mode value.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "generator", "gen":
		return Generator, nil
	case "motor", "mot":
		return Motor, nil
	}
	return Generator, fmt.Errorf("%w: %q", ErrUnknownMode, s)
}

// Parameter ranges. Every slider-bound field stays inside its range at
// all times; setters clamp rather than reject.
const (
	MinFlux    = 0.1
	MaxFlux    = 1.5
	MinSpeed   = 1.0
	MaxSpeed   = 50.0
	MinCurrent = 0.1
	MaxCurrent = 10.0
)

// Fixed machine geometry. Never changes after construction.
const (
	PolePairs          = 2
	Conductors         = 100
	ArmatureLength     = 0.3
	Radius             = 0.1
	CommutatorSegments = 16
)

// State holds the adjustable operating point of the machine plus the
// display toggles. Geometry constants live at package level; the whole
// render path is a pure function of (State, theta).
type State struct {
	fluxDensity     float64
	speed           float64
	armatureCurrent float64
	mode            Mode

	ShowField      bool
	ShowVectors    bool
	ShowCommutator bool
}

// NewState returns the startup operating point: B=0.5 T, omega=10 rad/s,
// I=2 A, generator mode, all display layers on.
func NewState() *State {
	return &State{
		fluxDensity:     0.5,
		speed:           10.0,
		armatureCurrent: 2.0,
		mode:            Generator,
		ShowField:       true,
		ShowVectors:     true,
		ShowCommutator:  true,
	}
}

func clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

func (s *State) FluxDensity() float64     { return s.fluxDensity }
func (s *State) Speed() float64           { return s.speed }
func (s *State) ArmatureCurrent() float64 { return s.armatureCurrent }
func (s *State) Mode() Mode               { return s.mode }

func (s *State) SetFluxDensity(b float64) { s.fluxDensity = clamp(b, MinFlux, MaxFlux) }
func (s *State) SetSpeed(w float64)       { s.speed = clamp(w, MinSpeed, MaxSpeed) }
func (s *State) SetArmatureCurrent(i float64) {
	s.armatureCurrent = clamp(i, MinCurrent, MaxCurrent)
}
func (s *State) SetMode(m Mode) { s.mode = m }

// ToggleMode swaps generator and motor.
func (s *State) ToggleMode() {
	if s.mode == Generator {
		s.mode = Motor
	} else {
		s.mode = Generator
	}
}

// GetParams exposes the tunable parameters for the generic TUI/GUI
// parameter loop.
func (s *State) GetParams() map[string]float64 {
	return map[string]float64{
		"flux":    s.fluxDensity,
		"speed":   s.speed,
		"current": s.armatureCurrent,
	}
}

// SetParam sets a parameter by name, clamping to its range.
func (s *State) SetParam(name string, value float64) error {
	switch name {
	case "flux":
		s.SetFluxDensity(value)
	case "speed":
		s.SetSpeed(value)
	case "current":
		s.SetArmatureCurrent(value)
	default:
		return fmt.Errorf("%w: %s", ErrUnknownParam, name)
	}
	return nil
}

// ParamRange reports the admissible range for a named parameter.
func ParamRange(name string) (lo, hi float64, err error) {
	switch name {
	case "flux":
		return MinFlux, MaxFlux, nil
	case "speed":
		return MinSpeed, MaxSpeed, nil
	case "current":
		return MinCurrent, MaxCurrent, nil
	}
	return 0, 0, fmt.Errorf("%w: %s", ErrUnknownParam, name)
}

// Clone returns an independent copy, so renderers can hold a snapshot.
func (s *State) Clone() *State {
	c := *s
	return &c
}
