// Package analysis runs refinement and regularity studies on top of
// the solvers: empirical convergence order against the series
// reference and total-variation diagnostics for shock-prone runs.
package analysis

import (
	"context"
	"fmt"
	"math"
	"sync"

	"github.com/san-kum/pdelab/internal/analytic"
	"github.com/san-kum/pdelab/internal/compare"
	"github.com/san-kum/pdelab/internal/fdm"
	"github.com/san-kum/pdelab/internal/pde"
)

// TargetDiffusionNumber paces refinement runs: dt is chosen so the
// diffusion number stays here, inside the explicit stability region.
// Tying dt to dx^2 makes both truncation terms shrink at second order
// in dx, which is what the fitted slope measures.
const TargetDiffusionNumber = 0.4

// ReferenceTerms is the series truncation used for the study reference,
// deliberately above the solver default so truncation error stays well
// below the discretization error being measured.
const ReferenceTerms = 64

type ConvergencePoint struct {
	Nx       int
	Nt       int
	Dx       float64
	MaxError float64
	RMSE     float64
}

type ConvergenceReport struct {
	Points        []ConvergencePoint
	ObservedOrder float64
}

// Convergence solves eq with the explicit scheme at each spatial
// resolution, measures the error against the series reference on the
// same grid, and fits the observed order of accuracy.
//
// Only the heat equation has a trustworthy reference, so other kinds
// are rejected. Resolutions run concurrently; the first failure wins.
func Convergence(ctx context.Context, eq *pde.Equation, resolutions []int, horizon float64) (*ConvergenceReport, error) {
	if eq == nil {
		return nil, &pde.ParameterError{Param: "equation", Reason: "must not be nil"}
	}
	if eq.Kind() != pde.Heat {
		return nil, fmt.Errorf("analysis: %w: convergence study needs the heat-equation reference",
			pde.ErrUnsupportedConfig)
	}
	if len(resolutions) < 2 {
		return nil, &pde.ParameterError{Param: "resolutions", Reason: "need at least 2 refinement levels"}
	}
	for _, nx := range resolutions {
		if nx < 2 {
			return nil, &pde.ParameterError{Param: "resolutions", Reason: fmt.Sprintf("resolution %d below minimum 2", nx)}
		}
	}

	points := make([]ConvergencePoint, len(resolutions))
	errs := make([]error, len(resolutions))

	var wg sync.WaitGroup
	for i, nx := range resolutions {
		wg.Add(1)
		go func(idx, nx int) {
			defer wg.Done()
			if err := ctx.Err(); err != nil {
				errs[idx] = err
				return
			}
			points[idx], errs[idx] = refine(eq, nx, horizon)
		}(i, nx)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	return &ConvergenceReport{
		Points:        points,
		ObservedOrder: observedOrder(points),
	}, nil
}

func refine(eq *pde.Equation, nx int, horizon float64) (ConvergencePoint, error) {
	dx := eq.Length() / float64(nx-1)
	dtTarget := TargetDiffusionNumber * dx * dx / eq.Coefficient()
	nt := int(math.Ceil(horizon/dtTarget)) + 1
	if nt < 2 {
		nt = 2
	}

	numeric, err := fdm.New().Solve(eq, nx, nt, horizon)
	if err != nil {
		return ConvergencePoint{}, err
	}
	ref := &analytic.Solver{Terms: ReferenceTerms}
	reference, err := ref.Solve(eq, nx, nt, horizon)
	if err != nil {
		return ConvergencePoint{}, err
	}

	rep, err := compare.Compare(numeric, reference)
	if err != nil {
		return ConvergencePoint{}, err
	}
	return ConvergencePoint{
		Nx:       nx,
		Nt:       nt,
		Dx:       dx,
		MaxError: rep.MaxError,
		RMSE:     rep.RMSE,
	}, nil
}

// observedOrder least-squares fits log(error) against log(dx); the
// slope is the empirical order of accuracy. Points with zero error are
// skipped, and fewer than two usable points yield 0.
func observedOrder(points []ConvergencePoint) float64 {
	var sx, sy, sxx, sxy float64
	n := 0
	for _, p := range points {
		if p.MaxError <= 0 || p.Dx <= 0 {
			continue
		}
		lx, ly := math.Log(p.Dx), math.Log(p.MaxError)
		sx += lx
		sy += ly
		sxx += lx * lx
		sxy += lx * ly
		n++
	}
	if n < 2 {
		return 0
	}
	fn := float64(n)
	denom := fn*sxx - sx*sx
	if denom == 0 {
		return 0
	}
	return (fn*sxy - sx*sy) / denom
}
