package config

import (
	"path/filepath"
	"testing"

	"github.com/san-kum/dcmlab/internal/machine"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Mode != "generator" {
		t.Errorf("expected generator mode, got %s", cfg.Mode)
	}
	if cfg.FrameMs <= 0 {
		t.Error("frame interval should be positive")
	}
	if cfg.SweepPoints < 2 {
		t.Error("sweep needs at least two points")
	}
	if !cfg.ShowField || !cfg.ShowVectors || !cfg.ShowCommutator {
		t.Error("all display layers should default on")
	}
}

func TestApply(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Mode = "motor"
	cfg.ArmatureCurrent = 8

	s, err := cfg.Apply()
	if err != nil {
		t.Fatalf("apply: %v", err)
	}
	if s.Mode() != machine.Motor {
		t.Error("expected motor mode")
	}
	if s.ArmatureCurrent() != 8 {
		t.Errorf("expected current 8, got %f", s.ArmatureCurrent())
	}
}

func TestApplyClampsOutOfRange(t *testing.T) {
	cfg := DefaultConfig()
	cfg.FluxDensity = 99
	cfg.Speed = -3

	s, err := cfg.Apply()
	if err != nil {
		t.Fatalf("apply: %v", err)
	}
	if s.FluxDensity() != machine.MaxFlux {
		t.Errorf("flux should clamp to %f, got %f", machine.MaxFlux, s.FluxDensity())
	}
	if s.Speed() != machine.MinSpeed {
		t.Errorf("speed should clamp to %f, got %f", machine.MinSpeed, s.Speed())
	}
}

func TestApplyBadMode(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Mode = "alternator"
	if _, err := cfg.Apply(); err == nil {
		t.Error("expected error for unknown mode")
	}
}

func TestGetPreset(t *testing.T) {
	cfg := GetPreset("heavy-load")
	if cfg == nil {
		t.Fatal("expected preset, got nil")
	}
	if cfg.Mode != "motor" || cfg.ArmatureCurrent != 8 {
		t.Errorf("heavy-load preset wrong: %+v", cfg)
	}

	if GetPreset("nonexistent") != nil {
		t.Error("expected nil for unknown preset")
	}
}

func TestListPresets(t *testing.T) {
	names := ListPresets()
	if len(names) == 0 {
		t.Fatal("expected presets")
	}
	for i := 1; i < len(names); i++ {
		if names[i-1] >= names[i] {
			t.Error("preset names should be sorted")
		}
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "machine.yaml")

	cfg := DefaultConfig()
	cfg.Speed = 33
	cfg.ShowField = false
	if err := Save(path, cfg); err != nil {
		t.Fatalf("save: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if loaded.Speed != 33 {
		t.Errorf("expected speed 33, got %f", loaded.Speed)
	}
	if loaded.ShowField {
		t.Error("show_field should round-trip false")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}
