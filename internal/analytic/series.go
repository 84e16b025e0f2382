package analytic

import (
	"math"

	"github.com/san-kum/pdelab/internal/pde"
)

// mode is one retained term of the sine series: its Fourier coefficient,
// eigenvalue, and the eigenfunction sampled on the spatial grid.
type mode struct {
	coeff  float64
	lambda float64
	sin    []float64
}

// projectModes computes the leading Fourier sine coefficients of the initial
// profile by trapezoid projection onto sin(n*pi*x/L), reusing the sampled
// eigenfunctions for later superposition.
func projectModes(eq *pde.Equation, grid *pde.Grid, terms int) []mode {
	x := grid.X()
	length := eq.Length()

	initial := eq.InitialRow(x)
	integrand := make([]float64, len(x))

	modes := make([]mode, 0, terms)
	for n := 1; n <= terms; n++ {
		k := float64(n) * math.Pi / length
		table := make([]float64, len(x))
		for j, xv := range x {
			table[j] = math.Sin(k * xv)
		}

		for j := range integrand {
			integrand[j] = initial[j] * table[j]
		}
		coeff := 2.0 / length * grid.Integrate(integrand)

		modes = append(modes, mode{
			coeff:  coeff,
			lambda: k * k,
			sin:    table,
		})
	}
	return modes
}
