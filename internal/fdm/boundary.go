package fdm

import (
	"github.com/san-kum/pdelab/internal/pde"
)

// applyBoundary overwrites the end cells of a freshly computed row.
// Dirichlet pins the configured values exactly; Neumann copies the nearest
// interior neighbor as a zero-flux approximation; Mixed pins the left end
// and copies the right.
func applyBoundary(eq *pde.Equation, row []float64) {
	last := len(row) - 1
	left, right := eq.BoundaryValues()

	switch eq.Boundary() {
	case pde.Neumann:
		row[0] = row[1]
		row[last] = row[last-1]
	case pde.Mixed:
		row[0] = left
		row[last] = row[last-1]
	default:
		row[0] = left
		row[last] = right
	}
}
