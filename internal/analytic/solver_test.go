package analytic

import (
	"errors"
	"math"
	"testing"

	"github.com/san-kum/pdelab/internal/pde"
)

func TestSolve_CanonicalHeat(t *testing.T) {
	s := New()
	res, err := s.Solve(pde.DefaultHeat(), 50, 50, 1.0)
	if err != nil {
		t.Fatalf("Solve failed: %v", err)
	}

	if len(res.Field) != 50 || len(res.Field[0]) != 50 {
		t.Fatalf("field shape = %dx%d, want 50x50", len(res.Field), len(res.Field[0]))
	}
	if !res.Field.IsValid() {
		t.Fatal("field contains NaN or Inf")
	}

	// Single-mode decay: peak amplitude at T=1 is exp(-alpha*pi^2).
	want := math.Exp(-0.01 * math.Pi * math.Pi)
	got := 0.0
	for _, v := range res.Field.Final() {
		if v > got {
			got = v
		}
	}
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("final peak = %v, want %v", got, want)
	}

	// Row 0 reproduces the initial profile exactly.
	for j, xv := range res.Grid.X() {
		if math.Abs(res.Field[0][j]-math.Sin(math.Pi*xv)) > 1e-12 {
			t.Fatalf("row 0 deviates from sin(pi x) at j=%d", j)
		}
	}

	if res.WallTime < 0 {
		t.Errorf("WallTime = %v, want non-negative", res.WallTime)
	}
}

func TestSolve_EndpointsVanish(t *testing.T) {
	s := New()
	res, err := s.Solve(pde.DefaultHeat(), 80, 40, 0.5)
	if err != nil {
		t.Fatalf("Solve failed: %v", err)
	}
	for i := range res.Field {
		if math.Abs(res.Field[i][0]) > 1e-12 || math.Abs(res.Field[i][79]) > 1e-12 {
			t.Fatalf("boundary not homogeneous at row %d: %v, %v",
				i, res.Field[i][0], res.Field[i][79])
		}
	}
}

func TestSolve_SeriesConvergence(t *testing.T) {
	eq, err := pde.New(pde.Heat, 0.01, 1.0, pde.Gaussian, pde.Dirichlet)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	// Reconstruction error of the initial row must shrink as terms grow.
	maxErr := func(terms int) float64 {
		s := &Solver{Terms: terms}
		res, err := s.Solve(eq, 200, 2, 0.1)
		if err != nil {
			t.Fatalf("Solve(terms=%d) failed: %v", terms, err)
		}
		worst := 0.0
		for j, xv := range res.Grid.X() {
			if d := math.Abs(res.Field[0][j] - eq.InitialValue(xv)); d > worst {
				worst = d
			}
		}
		return worst
	}

	e5, e20, e50 := maxErr(5), maxErr(20), maxErr(50)
	if !(e50 <= e20 && e20 <= e5) {
		t.Errorf("truncation error not decreasing: %v, %v, %v", e5, e20, e50)
	}
	if e50 > 0.05 {
		t.Errorf("50-term gaussian reconstruction error = %v, too large", e50)
	}
}

func TestSolve_RejectsNonDirichlet(t *testing.T) {
	tests := []struct {
		name string
		bc   pde.BoundaryCondition
	}{
		{"neumann", pde.Neumann},
		{"mixed", pde.Mixed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			eq, err := pde.New(pde.Heat, 0.01, 1.0, pde.Sinusoidal, tt.bc)
			if err != nil {
				t.Fatalf("New failed: %v", err)
			}
			_, err = New().Solve(eq, 50, 50, 1.0)
			if !errors.Is(err, pde.ErrUnsupportedConfig) {
				t.Errorf("Solve error = %v, want ErrUnsupportedConfig", err)
			}
		})
	}
}

func TestSolve_BurgersReference(t *testing.T) {
	eq, err := pde.New(pde.Burgers, 0.01, 1.0, pde.Sinusoidal, pde.Dirichlet)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	res, err := New().Solve(eq, 50, 50, 1.0)
	if err != nil {
		t.Fatalf("Solve failed: %v", err)
	}

	// Reference profile decays like exp(-t) independent of viscosity.
	mid := 24 // x = 24/49, near the crest
	x := res.Grid.X()[mid]
	tv := res.Grid.T()[30]
	want := math.Sin(math.Pi*x) * math.Exp(-tv)
	if math.Abs(res.Field[30][mid]-want) > 1e-12 {
		t.Errorf("reference value = %v, want %v", res.Field[30][mid], want)
	}

	gauss, _ := pde.New(pde.Burgers, 0.01, 1.0, pde.Gaussian, pde.Dirichlet)
	if _, err := New().Solve(gauss, 50, 50, 1.0); !errors.Is(err, pde.ErrUnsupportedConfig) {
		t.Errorf("gaussian burgers error = %v, want ErrUnsupportedConfig", err)
	}
}

func TestSolve_Deterministic(t *testing.T) {
	s := New()
	a, err := s.Solve(pde.DefaultHeat(), 40, 30, 1.0)
	if err != nil {
		t.Fatalf("first Solve failed: %v", err)
	}
	b, err := s.Solve(pde.DefaultHeat(), 40, 30, 1.0)
	if err != nil {
		t.Fatalf("second Solve failed: %v", err)
	}

	for i := range a.Field {
		for j := range a.Field[i] {
			if a.Field[i][j] != b.Field[i][j] {
				t.Fatalf("reruns differ at (%d,%d)", i, j)
			}
		}
	}
}

func TestSolve_InvalidInputs(t *testing.T) {
	s := New()
	if _, err := s.Solve(nil, 50, 50, 1.0); !errors.Is(err, pde.ErrInvalidParameter) {
		t.Errorf("nil equation error = %v, want ErrInvalidParameter", err)
	}
	if _, err := s.Solve(pde.DefaultHeat(), 1, 50, 1.0); !errors.Is(err, pde.ErrInvalidParameter) {
		t.Errorf("nx=1 error = %v, want ErrInvalidParameter", err)
	}
	if _, err := s.Solve(pde.DefaultHeat(), 50, 50, -1.0); !errors.Is(err, pde.ErrInvalidParameter) {
		t.Errorf("negative horizon error = %v, want ErrInvalidParameter", err)
	}
}
