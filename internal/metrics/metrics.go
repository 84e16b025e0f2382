// Package metrics condenses solution rows and fields into the scalar
// quantities shown alongside a run: extrema, mean, L2 norm, and the
// discrete field energy.
package metrics

import (
	"math"

	"github.com/san-kum/pdelab/internal/pde"
)

// Summary condenses one spatial row of a solution field.
type Summary struct {
	Max    float64
	Min    float64
	Mean   float64
	L2     float64
	Energy float64
}

// Summarize computes the summary of row, which must be sampled on the
// spatial axis of grid. Energy is the trapezoid integral of u^2 over
// the domain and L2 its square root.
func Summarize(row []float64, grid *pde.Grid) Summary {
	if len(row) == 0 {
		return Summary{}
	}

	s := Summary{Max: math.Inf(-1), Min: math.Inf(1)}
	sum := 0.0
	squares := make([]float64, len(row))
	for i, v := range row {
		s.Max = math.Max(s.Max, v)
		s.Min = math.Min(s.Min, v)
		sum += v
		squares[i] = v * v
	}
	s.Mean = sum / float64(len(row))
	s.Energy = grid.Integrate(squares)
	s.L2 = math.Sqrt(s.Energy)
	return s
}

// EnergyHistory returns the field energy of every time row, in order.
// Diffusion dissipates energy, so for a stable heat run the series is
// non-increasing.
func EnergyHistory(field pde.Field, grid *pde.Grid) []float64 {
	history := make([]float64, len(field))
	squares := make([]float64, grid.Nx())
	for i, row := range field {
		for j, v := range row {
			squares[j] = v * v
		}
		history[i] = grid.Integrate(squares)
	}
	return history
}
