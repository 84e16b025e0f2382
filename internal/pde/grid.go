package pde

import (
	"fmt"
	"math"
)

// Grid holds the uniform space and time coordinates a solution is
// sampled on. Both axes include their endpoints: x spans [0, L] with nx
// points, t spans [0, T] with nt points. A Grid is never mutated after
// construction.
type Grid struct {
	x  []float64
	t  []float64
	dx float64
	dt float64
}

// NewUniformGrid builds the grid for a domain of the given length and
// time horizon.
func NewUniformGrid(length, horizon float64, nx, nt int) (*Grid, error) {
	if math.IsNaN(length) || length <= 0 {
		return nil, &ParameterError{Param: "length", Reason: fmt.Sprintf("domain length must be positive, got %v", length)}
	}
	if math.IsNaN(horizon) || horizon <= 0 {
		return nil, &ParameterError{Param: "horizon", Reason: fmt.Sprintf("final time must be positive, got %v", horizon)}
	}
	if nx < 2 {
		return nil, &ParameterError{Param: "nx", Reason: fmt.Sprintf("need at least 2 spatial points, got %d", nx)}
	}
	if nt < 2 {
		return nil, &ParameterError{Param: "nt", Reason: fmt.Sprintf("need at least 2 time points, got %d", nt)}
	}
	return &Grid{
		x:  Linspace(0, length, nx),
		t:  Linspace(0, horizon, nt),
		dx: length / float64(nx-1),
		dt: horizon / float64(nt-1),
	}, nil
}

// X returns the spatial coordinates. Callers must not modify it.
func (g *Grid) X() []float64 { return g.x }

// T returns the time coordinates. Callers must not modify it.
func (g *Grid) T() []float64 { return g.t }

func (g *Grid) Nx() int     { return len(g.x) }
func (g *Grid) Nt() int     { return len(g.t) }
func (g *Grid) Dx() float64 { return g.dx }
func (g *Grid) Dt() float64 { return g.dt }

// Horizon returns the final time T.
func (g *Grid) Horizon() float64 { return g.t[len(g.t)-1] }

// Integrate computes the trapezoid-rule integral of values over the
// spatial axis. values must have length Nx().
func (g *Grid) Integrate(values []float64) float64 {
	sum := 0.0
	for i := 0; i+1 < len(values); i++ {
		sum += (values[i] + values[i+1]) / 2 * g.dx
	}
	return sum
}

// ValidateRun checks the common solve inputs shared by both solvers.
// Every violation is reported before any allocation happens.
func ValidateRun(eq *Equation, nx, nt int, horizon float64) error {
	if eq == nil {
		return &ParameterError{Param: "equation", Reason: "must not be nil"}
	}
	if nx < 2 {
		return &ParameterError{Param: "nx", Reason: fmt.Sprintf("need at least 2 spatial points, got %d", nx)}
	}
	if nt < 2 {
		return &ParameterError{Param: "nt", Reason: fmt.Sprintf("need at least 2 time points, got %d", nt)}
	}
	if math.IsNaN(horizon) || horizon <= 0 {
		return &ParameterError{Param: "horizon", Reason: fmt.Sprintf("final time must be positive, got %v", horizon)}
	}
	return nil
}

// Linspace returns n evenly spaced points from start to stop inclusive.
// The endpoint is set exactly so grids built from the same parameters
// compare equal.
func Linspace(start, stop float64, n int) []float64 {
	pts := make([]float64, n)
	step := (stop - start) / float64(n-1)
	for i := range pts {
		pts[i] = start + float64(i)*step
	}
	pts[n-1] = stop
	return pts
}
