package analysis

import "github.com/san-kum/pdelab/internal/pde"

// TotalVariation returns the sum of |u[i+1]-u[i]| across a row. The
// explicit advective stencil is not variation-diminishing, so a growing
// series flags the oscillation that precedes shock breakdown.
func TotalVariation(row []float64) float64 {
	tv := 0.0
	for i := 0; i+1 < len(row); i++ {
		d := row[i+1] - row[i]
		if d < 0 {
			d = -d
		}
		tv += d
	}
	return tv
}

// VariationHistory returns the total variation of every time row.
func VariationHistory(field pde.Field) []float64 {
	history := make([]float64, len(field))
	for i, row := range field {
		history[i] = TotalVariation(row)
	}
	return history
}

// OscillationRatio compares the final total variation to the initial
// one. Values well above 1 indicate the scheme has begun to oscillate.
func OscillationRatio(field pde.Field) float64 {
	if len(field) == 0 {
		return 0
	}
	tv0 := TotalVariation(field[0])
	if tv0 == 0 {
		return 0
	}
	return TotalVariation(field.Final()) / tv0
}
