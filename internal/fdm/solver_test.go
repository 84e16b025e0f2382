package fdm

import (
	"errors"
	"math"
	"testing"

	"github.com/san-kum/pdelab/internal/pde"
)

func TestSolve_StableHeatRun(t *testing.T) {
	// nx=50, nt=50, T=1 gives r = 0.01*49 = 0.49, just under the limit.
	res, err := New().Solve(pde.DefaultHeat(), 50, 50, 1.0)
	if err != nil {
		t.Fatalf("Solve failed: %v", err)
	}

	if !res.Field.IsValid() {
		t.Fatal("stable run produced NaN or Inf")
	}
	if res.Stability() != nil {
		t.Errorf("unexpected stability warning at r=0.49: %v", res.Stability())
	}
	if res.WallTime < 0 {
		t.Errorf("WallTime = %v, want non-negative", res.WallTime)
	}

	// Amplitude decays monotonically for pure diffusion.
	peak := func(row []float64) float64 {
		m := 0.0
		for _, v := range row {
			if v > m {
				m = v
			}
		}
		return m
	}
	if p0, pT := peak(res.Field[0]), peak(res.Field.Final()); pT >= p0 {
		t.Errorf("peak grew from %v to %v under diffusion", p0, pT)
	}
}

func TestSolve_MatchesClosedForm(t *testing.T) {
	eq := pde.DefaultHeat()
	res, err := New().Solve(eq, 50, 50, 1.0)
	if err != nil {
		t.Fatalf("Solve failed: %v", err)
	}

	// First-order-in-time scheme at r=0.49 stays within ~1e-3 of the
	// single-mode decay over this horizon.
	worst := 0.0
	for j, xv := range res.Grid.X() {
		exact := math.Sin(math.Pi*xv) * math.Exp(-0.01*math.Pi*math.Pi)
		if d := math.Abs(res.Field.Final()[j] - exact); d > worst {
			worst = d
		}
	}
	if worst > 0.01 {
		t.Errorf("max deviation from closed form = %v, want < 0.01", worst)
	}
}

func TestSolve_StabilityAdvisory(t *testing.T) {
	// nx=100, nt=100, T=1 gives r = 0.01*99 = 0.99, well past the limit.
	res, err := New().Solve(pde.DefaultHeat(), 100, 100, 1.0)
	if err != nil {
		t.Fatalf("Solve failed: %v", err)
	}

	w := res.Stability()
	if w == nil {
		t.Fatal("expected stability warning at r=0.99")
	}
	if math.Abs(w.R-0.99) > 1e-9 {
		t.Errorf("warning R = %v, want 0.99", w.R)
	}
	if w.Limit != StabilityLimit {
		t.Errorf("warning limit = %v, want %v", w.Limit, StabilityLimit)
	}
	if len(res.Field) != 100 {
		t.Error("advisory must not abort the run")
	}
}

func TestSolve_Idempotent(t *testing.T) {
	s := New()
	a, err := s.Solve(pde.DefaultHeat(), 60, 80, 1.0)
	if err != nil {
		t.Fatalf("first Solve failed: %v", err)
	}
	b, err := s.Solve(pde.DefaultHeat(), 60, 80, 1.0)
	if err != nil {
		t.Fatalf("second Solve failed: %v", err)
	}

	for i := range a.Field {
		for j := range a.Field[i] {
			if a.Field[i][j] != b.Field[i][j] {
				t.Fatalf("reruns differ at (%d,%d): %v vs %v",
					i, j, a.Field[i][j], b.Field[i][j])
			}
		}
	}
}

func TestSolve_InitialRowIsProfile(t *testing.T) {
	eq, err := pde.New(pde.Heat, 0.01, 1.0, pde.Step, pde.Dirichlet)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	res, err := New().Solve(eq, 50, 200, 0.2)
	if err != nil {
		t.Fatalf("Solve failed: %v", err)
	}

	// Row 0 is the raw profile; boundary policy only touches later rows.
	for j, xv := range res.Grid.X() {
		if res.Field[0][j] != eq.InitialValue(xv) {
			t.Fatalf("row 0 deviates from profile at j=%d", j)
		}
	}
	if res.Field[0][0] != 1.0 {
		t.Error("step profile should start at 1 on the left end")
	}
	if res.Field[1][0] != 0.0 {
		t.Error("dirichlet should pin the left end from row 1 on")
	}
}

func TestSolve_BurgersDecays(t *testing.T) {
	eq, err := pde.New(pde.Burgers, 0.01, 1.0, pde.Sinusoidal, pde.Dirichlet)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	// Small dt: diffusion number ~0.06 and advective CFL ~0.12.
	res, err := New().Solve(eq, 50, 200, 0.5)
	if err != nil {
		t.Fatalf("Solve failed: %v", err)
	}

	if !res.Field.IsValid() {
		t.Fatal("burgers run produced NaN or Inf")
	}
	max0, maxT := 0.0, 0.0
	for _, v := range res.Field[0] {
		max0 = math.Max(max0, math.Abs(v))
	}
	for _, v := range res.Field.Final() {
		maxT = math.Max(maxT, math.Abs(v))
	}
	if maxT >= max0 {
		t.Errorf("viscous amplitude grew: %v -> %v", max0, maxT)
	}
}

func TestSolve_InvalidInputs(t *testing.T) {
	s := New()

	tests := []struct {
		name    string
		eq      *pde.Equation
		nx, nt  int
		horizon float64
	}{
		{"nil equation", nil, 50, 50, 1.0},
		{"nx too small", pde.DefaultHeat(), 1, 50, 1.0},
		{"nt too small", pde.DefaultHeat(), 50, 1, 1.0},
		{"zero horizon", pde.DefaultHeat(), 50, 50, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := s.Solve(tt.eq, tt.nx, tt.nt, tt.horizon); !errors.Is(err, pde.ErrInvalidParameter) {
				t.Errorf("Solve error = %v, want ErrInvalidParameter", err)
			}
		})
	}
}
