// Package analytic evaluates closed-form and truncated-series reference
// solutions on a full space-time grid.
//
// The heat equation under homogeneous Dirichlet boundaries admits a Fourier
// sine series; the canonical sinusoidal initial profile collapses to a single
// mode and is special-cased for machine-precision accuracy. Other boundary
// families need a different eigenbasis and are rejected with
// [pde.ErrUnsupportedConfig].
package analytic

import (
	"fmt"
	"math"
	"time"

	"github.com/san-kum/pdelab/internal/pde"
)

// DefaultTerms is the series truncation used when none is configured.
const DefaultTerms = 20

// Solver produces reference solutions for supported configurations.
// The zero value uses DefaultTerms; a Solver is safe for concurrent use.
type Solver struct {
	// Terms is the number of Fourier modes retained for non-canonical
	// initial profiles. More terms reduce truncation error for smooth
	// data; Gibbs oscillation near a step profile is expected.
	Terms int
}

// New returns a series solver with the default truncation.
func New() *Solver {
	return &Solver{Terms: DefaultTerms}
}

func (s *Solver) Name() string { return "analytic" }

// Solve evaluates the reference solution for eq on an nx-by-nt grid over
// [0, horizon]. It fails with pde.ErrUnsupportedConfig when no closed form
// or series basis exists for the configuration.
func (s *Solver) Solve(eq *pde.Equation, nx, nt int, horizon float64) (*pde.SolveResult, error) {
	if err := pde.ValidateRun(eq, nx, nt, horizon); err != nil {
		return nil, err
	}
	if eq.Boundary() != pde.Dirichlet {
		return nil, fmt.Errorf("analytic: %w: %s boundaries need a non-sine eigenbasis",
			pde.ErrUnsupportedConfig, eq.Boundary())
	}

	grid, err := pde.NewUniformGrid(eq.Length(), horizon, nx, nt)
	if err != nil {
		return nil, err
	}

	start := time.Now()

	var field pde.Field
	switch eq.Kind() {
	case pde.Heat:
		field = s.solveHeat(eq, grid)
	case pde.Burgers:
		if eq.Initial() != pde.Sinusoidal {
			return nil, fmt.Errorf("analytic: %w: burgers reference exists only for the sinusoidal profile",
				pde.ErrUnsupportedConfig)
		}
		field = solveBurgersReference(eq, grid)
	default:
		return nil, fmt.Errorf("analytic: %w: equation kind %s",
			pde.ErrUnsupportedConfig, eq.Kind())
	}

	return &pde.SolveResult{
		Field:    field,
		Grid:     grid,
		Equation: eq,
		WallTime: time.Since(start),
	}, nil
}

// solveHeat superposes decaying sine modes. The sinusoidal initial profile
// is exactly the first eigenfunction, so its field is evaluated directly
// instead of through numerical projection.
func (s *Solver) solveHeat(eq *pde.Equation, grid *pde.Grid) pde.Field {
	x, t := grid.X(), grid.T()
	alpha, length := eq.Coefficient(), eq.Length()
	field := pde.NewField(grid.Nt(), grid.Nx())

	if eq.Initial() == pde.Sinusoidal {
		k := math.Pi / length
		lambda := k * k
		for i, tv := range t {
			decay := math.Exp(-alpha * lambda * tv)
			for j, xv := range x {
				field[i][j] = math.Sin(k*xv) * decay
			}
		}
		return field
	}

	terms := s.Terms
	if terms <= 0 {
		terms = DefaultTerms
	}
	modes := projectModes(eq, grid, terms)

	for i, tv := range t {
		row := field[i]
		for _, m := range modes {
			decay := m.coeff * math.Exp(-alpha*m.lambda*tv)
			if decay == 0 {
				continue
			}
			for j := range row {
				row[j] += decay * m.sin[j]
			}
		}
	}
	return field
}

// solveBurgersReference returns the decaying-sine reference profile used to
// sanity-check the viscous Burgers stencil near t=0. It is not an exact
// Cole-Hopf solution.
func solveBurgersReference(eq *pde.Equation, grid *pde.Grid) pde.Field {
	x, t := grid.X(), grid.T()
	length := eq.Length()
	field := pde.NewField(grid.Nt(), grid.Nx())

	for i, tv := range t {
		decay := math.Exp(-tv)
		for j, xv := range x {
			field[i][j] = math.Sin(math.Pi*xv/length) * decay
		}
	}
	return field
}
