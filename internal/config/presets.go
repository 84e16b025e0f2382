package config

var Presets = map[string]map[string]*Config{
	"heat": {
		"canonical": {
			Equation: "heat", Alpha: 0.01, Length: 1.0,
			Initial: "sinusoidal", Boundary: "dirichlet",
			Nx: 50, Nt: 50, Horizon: 1.0, Terms: 20,
		},
		"fine": {
			Equation: "heat", Alpha: 0.01, Length: 1.0,
			Initial: "sinusoidal", Boundary: "dirichlet",
			Nx: 200, Nt: 4000, Horizon: 1.0, Terms: 50,
		},
		"unstable": {
			Equation: "heat", Alpha: 0.01, Length: 1.0,
			Initial: "sinusoidal", Boundary: "dirichlet",
			Nx: 100, Nt: 100, Horizon: 1.0, Terms: 20,
		},
		"gaussian-pulse": {
			Equation: "heat", Alpha: 0.01, Length: 1.0,
			Initial: "gaussian", Boundary: "dirichlet",
			Nx: 100, Nt: 2000, Horizon: 1.0, Terms: 50,
		},
		"step-relax": {
			Equation: "heat", Alpha: 0.01, Length: 1.0,
			Initial: "step", Boundary: "neumann",
			Nx: 100, Nt: 2000, Horizon: 1.0, Terms: 20,
		},
	},
	"burgers": {
		"gentle": {
			Equation: "burgers", Alpha: 0.01, Length: 1.0,
			Initial: "sinusoidal", Boundary: "dirichlet",
			Nx: 50, Nt: 200, Horizon: 0.5,
		},
		"viscous": {
			Equation: "burgers", Alpha: 0.1, Length: 1.0,
			Initial: "sinusoidal", Boundary: "dirichlet",
			Nx: 50, Nt: 500, Horizon: 0.5,
		},
		"shock": {
			Equation: "burgers", Alpha: 0.003, Length: 1.0,
			Initial: "sinusoidal", Boundary: "dirichlet",
			Nx: 200, Nt: 2000, Horizon: 0.8,
		},
	},
}

func GetPreset(equation, preset string) *Config {
	equationPresets, ok := Presets[equation]
	if !ok {
		return nil
	}
	cfg, ok := equationPresets[preset]
	if !ok {
		return nil
	}
	return cfg
}

func ListPresets(equation string) []string {
	equationPresets, ok := Presets[equation]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(equationPresets))
	for name := range equationPresets {
		names = append(names, name)
	}
	return names
}
