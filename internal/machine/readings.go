package machine

import "fmt"

// Reading holds the closed-form electrical outputs for one operating
// point. Independent of rotation angle; recomputed on every parameter
// edit, never cached.
type Reading struct {
	EMF    float64
	Torque float64
	Power  float64
}

// Compute evaluates the idealized lumped-parameter machine equations:
//
//	EMF    = B * L * (omega * r) * N
//	Torque = B * L * I * N * r
//	Power  = EMF * I      (generator)
//	       = Torque*omega (motor)
//
// No saturation, commutation ripple, or armature reaction.
func Compute(s *State) Reading {
	r := Reading{
		EMF:    s.fluxDensity * ArmatureLength * (s.speed * Radius) * Conductors,
		Torque: s.fluxDensity * ArmatureLength * s.armatureCurrent * Conductors * Radius,
	}
	if s.mode == Generator {
		r.Power = r.EMF * s.armatureCurrent
	} else {
		r.Power = r.Torque * s.speed
	}
	return r
}

// EMFAt evaluates the EMF equation at an arbitrary speed with the other
// parameters taken from the state. Used by the analytic speed sweep.
func EMFAt(s *State, speed float64) float64 {
	return s.fluxDensity * ArmatureLength * (speed * Radius) * Conductors
}

// TorqueAt evaluates the torque equation at an arbitrary current.
func TorqueAt(s *State, current float64) float64 {
	return s.fluxDensity * ArmatureLength * current * Conductors * Radius
}

// EquationText renders the active equation with numbers substituted,
// for the metrics panel.
func (r Reading) EquationText(s *State) string {
	if s.mode == Generator {
		return fmt.Sprintf(
			"E = B*L*v*N = %.2f * %.2f * (%.1f*%.2f) * %d = %.2f V\nP = E*I = %.2f * %.2f = %.2f W",
			s.fluxDensity, ArmatureLength, s.speed, Radius, Conductors, r.EMF,
			r.EMF, s.armatureCurrent, r.Power)
	}
	return fmt.Sprintf(
		"T = B*L*I*N*r = %.2f * %.2f * %.2f * %d * %.2f = %.2f N.m\nP = T*w = %.2f * %.1f = %.2f W",
		s.fluxDensity, ArmatureLength, s.armatureCurrent, Conductors, Radius, r.Torque,
		r.Torque, s.speed, r.Power)
}
