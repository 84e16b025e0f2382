// Package batch runs scripted solver sequences loaded from YAML
// scenario files, and parameter sweeps across a coefficient range.
package batch

import (
	"context"
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/pdelab/internal/bench"
	"github.com/san-kum/pdelab/internal/compare"
	"github.com/san-kum/pdelab/internal/config"
	"github.com/san-kum/pdelab/internal/metrics"
	"github.com/san-kum/pdelab/internal/pde"
	"github.com/san-kum/pdelab/internal/store"
)

// Scenario defines a scripted solver sequence.
type Scenario struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Steps       []Step `yaml:"steps"`
}

// Step is a single run in a scenario. Fields left out of the YAML fall
// back to the config defaults, so steps only spell out what they change.
type Step struct {
	Name        string        `yaml:"name"`
	Solver      string        `yaml:"solver"`
	Config      config.Config `yaml:",inline"`
	CompareWith string        `yaml:"compare_with"`
	Save        bool          `yaml:"save"`
}

func (s *Step) UnmarshalYAML(value *yaml.Node) error {
	type rawStep Step
	raw := rawStep{Solver: "fdm", Config: *config.DefaultConfig()}
	if err := value.Decode(&raw); err != nil {
		return err
	}
	*s = Step(raw)
	return nil
}

// LoadScenario loads a scenario from a YAML file.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var scenario Scenario
	if err := yaml.Unmarshal(data, &scenario); err != nil {
		return nil, err
	}

	return &scenario, nil
}

// StepResult pairs a step's solution with its optional comparison
// report and store run ID.
type StepResult struct {
	Name   string
	RunID  string
	Result *pde.SolveResult
	Report *pde.ComparisonResult
}

// RunScenario executes all steps in order. A step may reference an
// earlier step by name through compare_with; its report then lands in
// the step's result. Passing a nil store disables saving.
func RunScenario(ctx context.Context, scenario *Scenario, st *store.Store) ([]StepResult, error) {
	registry := bench.NewRegistry()
	results := make([]StepResult, 0, len(scenario.Steps))
	byName := make(map[string]*pde.SolveResult)

	for i, step := range scenario.Steps {
		if err := ctx.Err(); err != nil {
			return results, err
		}
		fmt.Printf("Running step %d/%d: %s\n", i+1, len(scenario.Steps), step.Name)

		eq, err := step.Config.ToEquation()
		if err != nil {
			return results, fmt.Errorf("step %d: %w", i+1, err)
		}

		solver, err := registry.Get(step.Solver, step.Config.Terms)
		if err != nil {
			return results, fmt.Errorf("step %d: %w", i+1, err)
		}

		res, err := solver.Solve(eq, step.Config.Nx, step.Config.Nt, step.Config.Horizon)
		if err != nil {
			return results, fmt.Errorf("step %d run: %w", i+1, err)
		}

		sr := StepResult{Name: step.Name, Result: res}

		if step.CompareWith != "" {
			prev, ok := byName[step.CompareWith]
			if !ok {
				return results, fmt.Errorf("step %d: compare_with %q does not name an earlier step", i+1, step.CompareWith)
			}
			report, err := compare.Compare(prev, res)
			if err != nil {
				return results, fmt.Errorf("step %d compare: %w", i+1, err)
			}
			sr.Report = report
		}

		if step.Save && st != nil {
			id, err := st.Save(step.Solver, step.Config.Terms, res)
			if err != nil {
				return results, fmt.Errorf("step %d save: %w", i+1, err)
			}
			sr.RunID = id
		}

		if step.Name != "" {
			byName[step.Name] = res
		}
		results = append(results, sr)
	}

	return results, nil
}

// Sweep varies one equation parameter across a range, solving the
// numeric scheme at every point and scoring it against the reference
// solution where one exists.
type Sweep struct {
	Param  string
	Min    float64
	Max    float64
	Points int
	Config *config.Config
}

// SweepPoint holds the scores for one parameter value. MaxError is NaN
// when no reference solution covers the configuration.
type SweepPoint struct {
	Value       float64
	MaxError    float64
	FinalEnergy float64
	Stable      bool
}

// RunSweep executes a parameter sweep.
func RunSweep(ctx context.Context, sweep *Sweep) ([]SweepPoint, error) {
	if sweep.Points < 2 {
		return nil, fmt.Errorf("batch: %w: sweep needs at least two points", pde.ErrInvalidParameter)
	}
	if !(sweep.Max > sweep.Min) {
		return nil, fmt.Errorf("batch: %w: sweep range [%g, %g] is empty", pde.ErrInvalidParameter, sweep.Min, sweep.Max)
	}

	registry := bench.NewRegistry()
	results := make([]SweepPoint, 0, sweep.Points)
	paramStep := (sweep.Max - sweep.Min) / float64(sweep.Points-1)

	for i := 0; i < sweep.Points; i++ {
		if err := ctx.Err(); err != nil {
			return results, err
		}
		val := sweep.Min + float64(i)*paramStep

		cfg := *sweep.Config
		switch sweep.Param {
		case "alpha":
			cfg.Alpha = val
		case "length":
			cfg.Length = val
		case "horizon":
			cfg.Horizon = val
		default:
			return nil, fmt.Errorf("batch: %w: unknown sweep parameter %q", pde.ErrInvalidParameter, sweep.Param)
		}

		eq, err := cfg.ToEquation()
		if err != nil {
			return results, err
		}

		numeric, err := registry.Get("fdm", 0)
		if err != nil {
			return results, err
		}
		res, err := numeric.Solve(eq, cfg.Nx, cfg.Nt, cfg.Horizon)
		if err != nil {
			return results, err
		}

		point := SweepPoint{
			Value:       val,
			MaxError:    math.NaN(),
			FinalEnergy: metrics.Summarize(res.Field.Final(), res.Grid).Energy,
			Stable:      res.Stability() == nil,
		}

		reference, err := registry.Get("analytic", cfg.Terms)
		if err != nil {
			return results, err
		}
		if ref, err := reference.Solve(eq, cfg.Nx, cfg.Nt, cfg.Horizon); err == nil {
			report, err := compare.Compare(ref, res)
			if err != nil {
				return results, err
			}
			point.MaxError = report.MaxError
		}

		results = append(results, point)
		fmt.Printf("Sweep %d/%d: %s=%.4f\n", i+1, sweep.Points, sweep.Param, val)
	}

	return results, nil
}
