package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/pdelab/internal/pde"
)

const (
	DefaultAlpha   = 0.01
	DefaultLength  = 1.0
	DefaultNx      = 100
	DefaultNt      = 100
	DefaultHorizon = 1.0
	DefaultTerms   = 20
)

type Config struct {
	Equation   string  `yaml:"equation"`
	Alpha      float64 `yaml:"alpha"`
	Length     float64 `yaml:"length"`
	Initial    string  `yaml:"initial"`
	Boundary   string  `yaml:"boundary"`
	LeftValue  float64 `yaml:"left_value"`
	RightValue float64 `yaml:"right_value"`
	Nx         int     `yaml:"nx"`
	Nt         int     `yaml:"nt"`
	Horizon    float64 `yaml:"horizon"`
	Terms      int     `yaml:"terms"`
}

func DefaultConfig() *Config {
	return &Config{
		Equation: "heat",
		Alpha:    DefaultAlpha,
		Length:   DefaultLength,
		Initial:  "sinusoidal",
		Boundary: "dirichlet",
		Nx:       DefaultNx,
		Nt:       DefaultNt,
		Horizon:  DefaultHorizon,
		Terms:    DefaultTerms,
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

// ToEquation maps the string-keyed file fields onto the closed enums,
// surfacing a parameter error for any unrecognized tag.
func (c *Config) ToEquation() (*pde.Equation, error) {
	kind, err := pde.ParseKind(c.Equation)
	if err != nil {
		return nil, err
	}
	ic, err := pde.ParseInitialCondition(c.Initial)
	if err != nil {
		return nil, err
	}
	bc, err := pde.ParseBoundaryCondition(c.Boundary)
	if err != nil {
		return nil, err
	}
	return pde.New(kind, c.Alpha, c.Length, ic, bc,
		pde.WithBoundaryValues(c.LeftValue, c.RightValue))
}
