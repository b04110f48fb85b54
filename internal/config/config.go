package config

import (
	"os"

	"github.com/san-kum/springlab/internal/oscillator"
	"gopkg.in/yaml.v3"
)

// Slider ranges exposed by the interactive UI.
const (
	MinTimeScale = 0.1
	MaxTimeScale = 2.0
	MinMass      = 0.1
	MaxMass      = 5.0
	MinStiffness = 1.0
	MaxStiffness = 30.0
	MinDamping   = 0.0
	MaxDamping   = 2.0
)

type Config struct {
	Dt        float64      `yaml:"dt"`
	Duration  float64      `yaml:"duration"`
	MaxPoints int          `yaml:"max_points"`
	MaxTime   float64      `yaml:"max_time"`
	Initial   InitialState `yaml:"initial"`
	Params    ParamsConfig `yaml:"params"`
}

type InitialState struct {
	Position float64 `yaml:"position"`
	Velocity float64 `yaml:"velocity"`
}

type ParamsConfig struct {
	Mass      float64 `yaml:"mass"`
	Stiffness float64 `yaml:"stiffness"`
	Damping   float64 `yaml:"damping"`
	TimeScale float64 `yaml:"timescale"`
}

func DefaultConfig() *Config {
	return &Config{
		Dt:        oscillator.DefaultDt,
		Duration:  oscillator.DefaultMaxTime,
		MaxPoints: oscillator.DefaultMaxPoints,
		MaxTime:   oscillator.DefaultMaxTime,
		Initial: InitialState{
			Position: oscillator.DefaultPosition,
		},
		Params: ParamsConfig{
			Mass:      oscillator.DefaultMass,
			Stiffness: oscillator.DefaultStiffness,
			Damping:   oscillator.DefaultDamping,
			TimeScale: oscillator.DefaultTimeScale,
		},
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

// Oscillator translates the file config into the core controller config.
func (c *Config) Oscillator() oscillator.Config {
	return oscillator.Config{
		Dt:              c.Dt,
		MaxPoints:       c.MaxPoints,
		MaxTime:         c.MaxTime,
		InitialPosition: c.Initial.Position,
		InitialVelocity: c.Initial.Velocity,
		Params: oscillator.Params{
			Mass:      c.Params.Mass,
			Stiffness: c.Params.Stiffness,
			Damping:   c.Params.Damping,
			TimeScale: c.Params.TimeScale,
		},
	}
}
