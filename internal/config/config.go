package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/dcmlab/internal/machine"
)

const (
	DefaultFlux    = 0.5
	DefaultSpeed   = 10.0
	DefaultCurrent = 2.0
	DefaultFrameMs = 50
	DefaultPoints  = 100
)

// Config is the yaml-loadable launch configuration. Values outside the
// machine ranges are clamped when applied, never rejected.
type Config struct {
	FluxDensity     float64 `yaml:"flux_density"`
	Speed           float64 `yaml:"speed"`
	ArmatureCurrent float64 `yaml:"armature_current"`
	Mode            string  `yaml:"mode"`
	ShowField       bool    `yaml:"show_field"`
	ShowVectors     bool    `yaml:"show_vectors"`
	ShowCommutator  bool    `yaml:"show_commutator"`
	FrameMs         int     `yaml:"frame_ms"`
	SweepPoints     int     `yaml:"sweep_points"`
	Hum             bool    `yaml:"hum"`
}

func DefaultConfig() *Config {
	return &Config{
		FluxDensity:     DefaultFlux,
		Speed:           DefaultSpeed,
		ArmatureCurrent: DefaultCurrent,
		Mode:            machine.Generator.String(),
		ShowField:       true,
		ShowVectors:     true,
		ShowCommutator:  true,
		FrameMs:         DefaultFrameMs,
		SweepPoints:     DefaultPoints,
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Apply builds a machine state from the config. Clamping happens in
// the setters, so a hand-edited file cannot put the machine outside
// its contract.
func (c *Config) Apply() (*machine.State, error) {
	mode, err := machine.ParseMode(c.Mode)
	if err != nil {
		return nil, err
	}
	s := machine.NewState()
	s.SetFluxDensity(c.FluxDensity)
	s.SetSpeed(c.Speed)
	s.SetArmatureCurrent(c.ArmatureCurrent)
	s.SetMode(mode)
	s.ShowField = c.ShowField
	s.ShowVectors = c.ShowVectors
	s.ShowCommutator = c.ShowCommutator
	return s, nil
}
