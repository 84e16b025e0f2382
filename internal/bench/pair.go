package bench

import (
	"context"
	"sync"

	"github.com/san-kum/pdelab/internal/analytic"
	"github.com/san-kum/pdelab/internal/compare"
	"github.com/san-kum/pdelab/internal/fdm"
	"github.com/san-kum/pdelab/internal/pde"
)

// PairConfig describes one reference/numeric pairing. The two solvers
// may run on different grids; the comparison reconciles them.
type PairConfig struct {
	Equation *pde.Equation
	NxRef    int
	NtRef    int
	NxNum    int
	NtNum    int
	Horizon  float64
	Terms    int
}

type PairResult struct {
	Reference *pde.SolveResult
	Numeric   *pde.SolveResult
	Report    *pde.ComparisonResult
}

// RunPair solves the reference and numeric sides concurrently and
// reconciles their final rows. The solvers share only the immutable
// equation, so no coordination is needed beyond joining both runs.
func RunPair(ctx context.Context, cfg PairConfig) (*PairResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var (
		wg      sync.WaitGroup
		results [2]*pde.SolveResult
		errs    [2]error
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		s := analytic.New()
		if cfg.Terms > 0 {
			s.Terms = cfg.Terms
		}
		results[0], errs[0] = s.Solve(cfg.Equation, cfg.NxRef, cfg.NtRef, cfg.Horizon)
	}()
	go func() {
		defer wg.Done()
		results[1], errs[1] = fdm.New().Solve(cfg.Equation, cfg.NxNum, cfg.NtNum, cfg.Horizon)
	}()
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	report, err := compare.Compare(results[0], results[1])
	if err != nil {
		return nil, err
	}

	return &PairResult{
		Reference: results[0],
		Numeric:   results[1],
		Report:    report,
	}, nil
}
