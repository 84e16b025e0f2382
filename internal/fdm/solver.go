// Package fdm advances one-dimensional PDEs with the explicit
// forward-time-centered-space stencil, enforcing the boundary policy
// after every step and surfacing a stability advisory when the step
// sizes violate the explicit-scheme limit.
package fdm

import (
	"time"

	"github.com/san-kum/pdelab/internal/pde"
)

// StabilityLimit is the largest diffusion number the explicit scheme
// tolerates for the heat equation.
const StabilityLimit = 0.5

type Solver struct{}

func New() *Solver {
	return &Solver{}
}

func (s *Solver) Name() string { return "fdm" }

// Solve integrates eq forward on an nx-by-nt grid over [0, horizon].
// A diffusion number above StabilityLimit does not abort the run; the
// advisory is attached to the result and stepping proceeds, since an
// unstable field can still be useful for qualitative inspection.
func (s *Solver) Solve(eq *pde.Equation, nx, nt int, horizon float64) (*pde.SolveResult, error) {
	if err := pde.ValidateRun(eq, nx, nt, horizon); err != nil {
		return nil, err
	}
	grid, err := pde.NewUniformGrid(eq.Length(), horizon, nx, nt)
	if err != nil {
		return nil, err
	}
	step, err := stencilFor(eq, grid)
	if err != nil {
		return nil, err
	}

	var warnings []error
	r := eq.Coefficient() * grid.Dt() / (grid.Dx() * grid.Dx())
	if r > StabilityLimit {
		warnings = append(warnings, &pde.StabilityWarning{R: r, Limit: StabilityLimit})
	}

	field := pde.NewField(nt, nx)
	copy(field[0], eq.InitialRow(grid.X()))

	start := time.Now()
	for n := 0; n < nt-1; n++ {
		step(field[n+1], field[n])
		applyBoundary(eq, field[n+1])
	}

	return &pde.SolveResult{
		Field:    field,
		Grid:     grid,
		Equation: eq,
		WallTime: time.Since(start),
		Warnings: warnings,
	}, nil
}
