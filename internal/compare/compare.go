// Package compare reconciles two solution fields that may have been
// computed on different spatial grids and reports pointwise and
// aggregate error metrics between their final-time rows.
package compare

import (
	"fmt"
	"math"

	"github.com/san-kum/pdelab/internal/pde"
)

// Tolerances for deciding that two grids are numerically identical.
const (
	absTol = 1e-8
	relTol = 1e-5
)

// Compare builds an error report between the final-time rows of a and b.
// Numerically equal grids are compared directly with no interpolation
// error. Otherwise both rows are interpolated onto a common uniform grid
// of max(nx1, nx2) points spanning the domain of a. Neither input is
// mutated.
func Compare(a, b *pde.SolveResult) (*pde.ComparisonResult, error) {
	if err := checkComplete("first", a); err != nil {
		return nil, err
	}
	if err := checkComplete("second", b); err != nil {
		return nil, err
	}

	xa, xb := a.Grid.X(), b.Grid.X()
	ua, ub := a.Field.Final(), b.Field.Final()

	res := &pde.ComparisonResult{}
	if allClose(xa, xb) {
		res.GridsMatched = true
		res.CommonGrid = append([]float64(nil), xa...)
		res.PointwiseError = pointwiseAbs(ua, ub)
	} else {
		n := a.Grid.Nx()
		if b.Grid.Nx() > n {
			n = b.Grid.Nx()
		}
		common := pde.Linspace(0, a.Equation.Length(), n)
		ra := interpRow(common, xa, ua)
		rb := interpRow(common, xb, ub)
		res.CommonGrid = common
		res.PointwiseError = pointwiseAbs(ra, rb)
	}

	res.MaxError, res.MeanError, res.RMSE = aggregate(res.PointwiseError)
	return res, nil
}

// checkComplete rejects a result that cannot be compared. which names
// the argument position in the error message.
func checkComplete(which string, r *pde.SolveResult) error {
	switch {
	case r == nil:
		return fmt.Errorf("compare: %w: %s result is nil", pde.ErrIncompleteData, which)
	case len(r.Field) == 0 || len(r.Field.Final()) == 0:
		return fmt.Errorf("compare: %w: %s result has an empty field", pde.ErrIncompleteData, which)
	case r.Grid == nil || r.Grid.Nx() == 0:
		return fmt.Errorf("compare: %w: %s result has no grid", pde.ErrIncompleteData, which)
	case len(r.Field.Final()) != r.Grid.Nx():
		return fmt.Errorf("compare: %w: %s result field width %d does not match grid width %d",
			pde.ErrIncompleteData, which, len(r.Field.Final()), r.Grid.Nx())
	case r.Equation == nil:
		return fmt.Errorf("compare: %w: %s result has no equation", pde.ErrIncompleteData, which)
	}
	return nil
}

func pointwiseAbs(a, b []float64) []float64 {
	diff := make([]float64, len(a))
	for i := range a {
		diff[i] = math.Abs(a[i] - b[i])
	}
	return diff
}

func aggregate(diff []float64) (max, mean, rmse float64) {
	var sum, sumSq float64
	for _, d := range diff {
		if d > max {
			max = d
		}
		sum += d
		sumSq += d * d
	}
	n := float64(len(diff))
	return max, sum / n, math.Sqrt(sumSq / n)
}
