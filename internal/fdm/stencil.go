package fdm

import (
	"github.com/san-kum/pdelab/internal/pde"
)

// stepFunc writes the interior of next from prev. End cells are left
// untouched; applyBoundary overwrites them afterwards.
type stepFunc func(next, prev []float64)

func stencilFor(eq *pde.Equation, grid *pde.Grid) (stepFunc, error) {
	switch eq.Kind() {
	case pde.Heat:
		r := eq.Coefficient() * grid.Dt() / (grid.Dx() * grid.Dx())
		return heatStencil(r), nil
	case pde.Burgers:
		return burgersStencil(eq.Coefficient(), grid.Dt(), grid.Dx()), nil
	default:
		return nil, &pde.ParameterError{Param: "kind", Reason: "no stencil for this equation"}
	}
}

// heatStencil is the classic FTCS diffusion update
// u[i] += r*(u[i+1] - 2u[i] + u[i-1]).
func heatStencil(r float64) stepFunc {
	return func(next, prev []float64) {
		for i := 1; i < len(prev)-1; i++ {
			next[i] = prev[i] + r*(prev[i+1]-2*prev[i]+prev[i-1])
		}
	}
}

// burgersStencil treats advection with a centered difference and diffusion
// with the standard second difference. No flux limiting: steep gradients at
// low viscosity can oscillate, which is accepted behavior for this scheme.
func burgersStencil(nu, dt, dx float64) stepFunc {
	advect := dt / (2 * dx)
	diffuse := nu * dt / (dx * dx)
	return func(next, prev []float64) {
		for i := 1; i < len(prev)-1; i++ {
			ux := prev[i+1] - prev[i-1]
			uxx := prev[i+1] - 2*prev[i] + prev[i-1]
			next[i] = prev[i] - advect*prev[i]*ux + diffuse*uxx
		}
	}
}
