package fdm

import (
	"testing"

	"github.com/san-kum/pdelab/internal/pde"
)

func TestApplyBoundary(t *testing.T) {
	tests := []struct {
		name string
		bc   pde.BoundaryCondition
		opts []pde.Option
		row  []float64
		want []float64
	}{
		{
			name: "dirichlet pins zeros",
			bc:   pde.Dirichlet,
			row:  []float64{9, 2, 3, 9},
			want: []float64{0, 2, 3, 0},
		},
		{
			name: "dirichlet pins configured values",
			bc:   pde.Dirichlet,
			opts: []pde.Option{pde.WithBoundaryValues(1.5, -2)},
			row:  []float64{9, 2, 3, 9},
			want: []float64{1.5, 2, 3, -2},
		},
		{
			name: "neumann copies neighbors",
			bc:   pde.Neumann,
			row:  []float64{9, 2, 3, 9},
			want: []float64{2, 2, 3, 3},
		},
		{
			name: "mixed pins left copies right",
			bc:   pde.Mixed,
			row:  []float64{9, 2, 3, 9},
			want: []float64{0, 2, 3, 3},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			eq, err := pde.New(pde.Heat, 0.01, 1.0, pde.Sinusoidal, tt.bc, tt.opts...)
			if err != nil {
				t.Fatalf("New failed: %v", err)
			}

			row := make([]float64, len(tt.row))
			copy(row, tt.row)
			applyBoundary(eq, row)

			for i := range row {
				if row[i] != tt.want[i] {
					t.Errorf("row[%d] = %v, want %v", i, row[i], tt.want[i])
				}
			}
		})
	}
}

func TestSolve_NeumannEndsTrackInterior(t *testing.T) {
	eq, err := pde.New(pde.Heat, 0.01, 1.0, pde.Gaussian, pde.Neumann)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	res, err := New().Solve(eq, 50, 100, 1.0)
	if err != nil {
		t.Fatalf("Solve failed: %v", err)
	}

	for n := 1; n < res.Grid.Nt(); n++ {
		row := res.Field[n]
		if row[0] != row[1] || row[49] != row[48] {
			t.Fatalf("zero-flux ends broken at row %d", n)
		}
	}
}
