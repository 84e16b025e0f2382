package metrics

import (
	"math"
	"testing"

	"github.com/san-kum/pdelab/internal/fdm"
	"github.com/san-kum/pdelab/internal/pde"
)

func TestSummarize(t *testing.T) {
	grid, err := pde.NewUniformGrid(1.0, 1.0, 1001, 2)
	if err != nil {
		t.Fatalf("NewUniformGrid failed: %v", err)
	}

	row := make([]float64, grid.Nx())
	for i, x := range grid.X() {
		row[i] = math.Sin(math.Pi * x)
	}

	s := Summarize(row, grid)
	if math.Abs(s.Max-1.0) > 1e-6 {
		t.Errorf("Max = %v, want 1", s.Max)
	}
	if math.Abs(s.Min) > 1e-12 {
		t.Errorf("Min = %v, want 0", s.Min)
	}
	// Mean of sin over [0,1] sampled uniformly approaches 2/pi.
	if math.Abs(s.Mean-2/math.Pi) > 1e-3 {
		t.Errorf("Mean = %v, want ~%v", s.Mean, 2/math.Pi)
	}
	// Integral of sin^2 over [0,1] is 1/2.
	if math.Abs(s.Energy-0.5) > 1e-5 {
		t.Errorf("Energy = %v, want 0.5", s.Energy)
	}
	if math.Abs(s.L2-math.Sqrt(0.5)) > 1e-5 {
		t.Errorf("L2 = %v, want sqrt(0.5)", s.L2)
	}
}

func TestSummarize_Empty(t *testing.T) {
	grid, _ := pde.NewUniformGrid(1.0, 1.0, 2, 2)
	s := Summarize(nil, grid)
	if s != (Summary{}) {
		t.Errorf("Summarize(nil) = %+v, want zero summary", s)
	}
}

func TestEnergyHistory_Dissipates(t *testing.T) {
	res, err := fdm.New().Solve(pde.DefaultHeat(), 50, 50, 1.0)
	if err != nil {
		t.Fatalf("Solve failed: %v", err)
	}

	history := EnergyHistory(res.Field, res.Grid)
	if len(history) != 50 {
		t.Fatalf("history length = %d, want 50", len(history))
	}
	for i := 1; i < len(history); i++ {
		if history[i] > history[i-1]+1e-12 {
			t.Fatalf("energy grew at row %d: %v -> %v", i, history[i-1], history[i])
		}
	}
	if history[0] < 0.4 || history[0] > 0.6 {
		t.Errorf("initial energy = %v, want near 0.5", history[0])
	}
}
