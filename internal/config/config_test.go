package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/san-kum/pdelab/internal/pde"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Equation != "heat" {
		t.Errorf("expected equation heat, got %s", cfg.Equation)
	}
	if cfg.Alpha <= 0 {
		t.Error("alpha should be positive")
	}
	if cfg.Nx < 2 || cfg.Nt < 2 {
		t.Error("grid defaults should satisfy the solver minimum")
	}
	if cfg.Horizon <= 0 {
		t.Error("horizon should be positive")
	}
}

func TestToEquation(t *testing.T) {
	eq, err := DefaultConfig().ToEquation()
	if err != nil {
		t.Fatalf("ToEquation failed: %v", err)
	}
	if eq.Kind() != pde.Heat || eq.Initial() != pde.Sinusoidal || eq.Boundary() != pde.Dirichlet {
		t.Errorf("unexpected equation %s", eq)
	}
}

func TestToEquation_BadTags(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"unknown equation", func(c *Config) { c.Equation = "laplace" }},
		{"unknown initial", func(c *Config) { c.Initial = "sawtooth" }},
		{"unknown boundary", func(c *Config) { c.Boundary = "periodic" }},
		{"bad alpha", func(c *Config) { c.Alpha = -1 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			if _, err := cfg.ToEquation(); !errors.Is(err, pde.ErrInvalidParameter) {
				t.Errorf("ToEquation error = %v, want ErrInvalidParameter", err)
			}
		})
	}
}

func TestLoadSave_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.yaml")

	cfg := DefaultConfig()
	cfg.Equation = "burgers"
	cfg.Alpha = 0.05
	cfg.Nx = 80
	if err := Save(path, cfg); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if loaded.Equation != "burgers" || loaded.Alpha != 0.05 || loaded.Nx != 80 {
		t.Errorf("round trip lost fields: %+v", loaded)
	}
	// Unset fields keep their defaults.
	if loaded.Nt != DefaultNt || loaded.Horizon != DefaultHorizon {
		t.Errorf("defaults not preserved: %+v", loaded)
	}
}

func TestLoad_PartialFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "partial.yaml")
	if err := os.WriteFile(path, []byte("equation: burgers\nnx: 64\n"), 0644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Equation != "burgers" || cfg.Nx != 64 {
		t.Errorf("file fields not applied: %+v", cfg)
	}
	if cfg.Alpha != DefaultAlpha || cfg.Boundary != "dirichlet" {
		t.Errorf("unset fields should default: %+v", cfg)
	}
}

func TestGetPreset(t *testing.T) {
	cfg := GetPreset("heat", "canonical")
	if cfg == nil {
		t.Fatal("expected preset, got nil")
	}
	if cfg.Nx != 50 || cfg.Nt != 50 {
		t.Errorf("expected 50x50 grid, got %dx%d", cfg.Nx, cfg.Nt)
	}
}

func TestGetPreset_NotFound(t *testing.T) {
	if cfg := GetPreset("heat", "nonexistent"); cfg != nil {
		t.Error("expected nil for nonexistent preset")
	}
	if cfg := GetPreset("nonexistent", "canonical"); cfg != nil {
		t.Error("expected nil for nonexistent equation")
	}
}

func TestListPresets(t *testing.T) {
	if presets := ListPresets("heat"); len(presets) == 0 {
		t.Error("expected presets for heat")
	}
	if presets := ListPresets("burgers"); len(presets) == 0 {
		t.Error("expected presets for burgers")
	}
	if presets := ListPresets("nonexistent"); presets != nil {
		t.Error("expected nil for nonexistent equation")
	}
}

func TestPresets_AllParse(t *testing.T) {
	for equation, group := range Presets {
		for name, cfg := range group {
			if _, err := cfg.ToEquation(); err != nil {
				t.Errorf("preset %s/%s does not parse: %v", equation, name, err)
			}
			if cfg.Nx < 2 || cfg.Nt < 2 || cfg.Horizon <= 0 {
				t.Errorf("preset %s/%s has an unusable grid", equation, name)
			}
		}
	}
}
