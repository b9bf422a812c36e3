package main

import (
	"testing"

	"github.com/spf13/cobra"

	"github.com/san-kum/dcmlab/internal/config"
)

// newTestCmd registers the same flag set the real subcommands carry.
func newTestCmd(t *testing.T, args ...string) *cobra.Command {
	t.Helper()
	cmd := &cobra.Command{Use: "test"}
	addStateFlags(cmd)
	cmd.Flags().IntVar(&points, "points", config.DefaultPoints, "")
	if err := cmd.ParseFlags(args); err != nil {
		t.Fatalf("ParseFlags(%v): %v", args, err)
	}
	return cmd
}

func TestPointsFlagSetsSweepResolution(t *testing.T) {
	cmd := newTestCmd(t, "--points", "10")
	_, cfg, err := buildState(cmd)
	if err != nil {
		t.Fatalf("buildState: %v", err)
	}
	if cfg.SweepPoints != 10 {
		t.Errorf("SweepPoints = %d, want 10", cfg.SweepPoints)
	}
}

func TestPointsDefaultWhenUnset(t *testing.T) {
	cmd := newTestCmd(t)
	_, cfg, err := buildState(cmd)
	if err != nil {
		t.Fatalf("buildState: %v", err)
	}
	if cfg.SweepPoints != config.DefaultPoints {
		t.Errorf("SweepPoints = %d, want %d", cfg.SweepPoints, config.DefaultPoints)
	}
}

func TestPointsFlagOverridesPreset(t *testing.T) {
	cmd := newTestCmd(t, "--preset", "fast-spin", "--points", "25")
	s, cfg, err := buildState(cmd)
	if err != nil {
		t.Fatalf("buildState: %v", err)
	}
	if cfg.SweepPoints != 25 {
		t.Errorf("SweepPoints = %d, want 25 (flag over preset)", cfg.SweepPoints)
	}
	if got := s.Speed(); got != 45 {
		t.Errorf("Speed = %v, want the preset's 45", got)
	}
}

func TestFlagOverridesPresetParameter(t *testing.T) {
	cmd := newTestCmd(t, "--preset", "high-flux", "--flux", "0.9")
	s, _, err := buildState(cmd)
	if err != nil {
		t.Fatalf("buildState: %v", err)
	}
	if got := s.FluxDensity(); got != 0.9 {
		t.Errorf("FluxDensity = %v, want the flag's 0.9", got)
	}
}

func TestFlagOverrideLeavesPresetTableIntact(t *testing.T) {
	cmd := newTestCmd(t, "--preset", "nominal", "--points", "7", "--flux", "1.1")
	if _, _, err := buildState(cmd); err != nil {
		t.Fatalf("buildState: %v", err)
	}
	p := config.GetPreset("nominal")
	if p.SweepPoints != config.DefaultPoints || p.FluxDensity != 0.5 {
		t.Errorf("preset mutated: points=%d flux=%v", p.SweepPoints, p.FluxDensity)
	}
}

func TestUnknownPresetRejected(t *testing.T) {
	cmd := newTestCmd(t, "--preset", "overdrive")
	if _, _, err := buildState(cmd); err == nil {
		t.Error("expected error for unknown preset")
	}
}
