package pde

import (
	"errors"
	"math"
	"time"
)

// Field is the solution array u[time][space]. Row 0 is the initial
// condition; the last row is the solution at the final time.
type Field [][]float64

// NewField allocates an nt-by-nx field of zeros.
func NewField(nt, nx int) Field {
	f := make(Field, nt)
	for i := range f {
		f[i] = make([]float64, nx)
	}
	return f
}

// Final returns the last row, or nil for an empty field.
func (f Field) Final() []float64 {
	if len(f) == 0 {
		return nil
	}
	return f[len(f)-1]
}

// IsValid reports whether the field is free of NaN and Inf entries.
func (f Field) IsValid() bool {
	for _, row := range f {
		for _, v := range row {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return false
			}
		}
	}
	return true
}

// Clone deep-copies the field.
func (f Field) Clone() Field {
	c := make(Field, len(f))
	for i, row := range f {
		c[i] = make([]float64, len(row))
		copy(c[i], row)
	}
	return c
}

// SolveResult is the unit exchanged between a solver and its consumers.
// Warnings carries non-fatal advisories (currently only *StabilityWarning);
// a result with warnings is still complete and usable.
type SolveResult struct {
	Field    Field
	Grid     *Grid
	Equation *Equation
	WallTime time.Duration
	Warnings []error
}

// Stability returns the stability warning attached to the result, or nil.
func (r *SolveResult) Stability() *StabilityWarning {
	for _, w := range r.Warnings {
		var sw *StabilityWarning
		if errors.As(w, &sw) {
			return sw
		}
	}
	return nil
}

// ComparisonResult reports the pointwise and aggregate error between two
// solve results, reconciled onto a common spatial grid. It is recomputed
// on every comparison and never persisted.
type ComparisonResult struct {
	CommonGrid     []float64
	PointwiseError []float64
	GridsMatched   bool
	MaxError       float64
	MeanError      float64
	RMSE           float64
}

// Solver is implemented by both solution strategies so they can be run
// interchangeably. Solve blocks until the full field is computed.
type Solver interface {
	Name() string
	Solve(eq *Equation, nx, nt int, horizon float64) (*SolveResult, error)
}
