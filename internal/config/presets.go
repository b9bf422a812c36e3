package config

import "sort"

// Presets are named startup operating points. Toggles and timing stay
// at their defaults unless a preset overrides them.
var Presets = map[string]*Config{
	"nominal": {
		FluxDensity: 0.5, Speed: 10, ArmatureCurrent: 2, Mode: "generator",
		ShowField: true, ShowVectors: true, ShowCommutator: true,
		FrameMs: DefaultFrameMs, SweepPoints: DefaultPoints,
	},
	"high-flux": {
		FluxDensity: 1.4, Speed: 10, ArmatureCurrent: 2, Mode: "generator",
		ShowField: true, ShowVectors: true, ShowCommutator: true,
		FrameMs: DefaultFrameMs, SweepPoints: DefaultPoints,
	},
	"fast-spin": {
		FluxDensity: 0.5, Speed: 45, ArmatureCurrent: 2, Mode: "generator",
		ShowField: false, ShowVectors: true, ShowCommutator: true,
		FrameMs: DefaultFrameMs, SweepPoints: DefaultPoints,
	},
	"heavy-load": {
		FluxDensity: 0.8, Speed: 15, ArmatureCurrent: 8, Mode: "motor",
		ShowField: true, ShowVectors: true, ShowCommutator: true,
		FrameMs: DefaultFrameMs, SweepPoints: DefaultPoints,
	},
	"crawl": {
		FluxDensity: 1.0, Speed: 2, ArmatureCurrent: 1, Mode: "motor",
		ShowField: true, ShowVectors: true, ShowCommutator: true,
		FrameMs: DefaultFrameMs, SweepPoints: DefaultPoints,
	},
}

// GetPreset returns the named preset, or nil if unknown.
func GetPreset(name string) *Config {
	return Presets[name]
}

// ListPresets returns the preset names, sorted.
func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
