package pde

import (
	"errors"
	"math"
	"testing"
	"time"
)

func TestField_IsValid(t *testing.T) {
	tests := []struct {
		name  string
		field Field
		valid bool
	}{
		{"clean field", Field{{0, 1, 0}, {0, 0.5, 0}}, true},
		{"empty field is vacuously clean", Field{}, true},
		{"NaN entry", Field{{0, math.NaN(), 0}}, false},
		{"positive infinity", Field{{0, math.Inf(1), 0}}, false},
		{"negative infinity", Field{{math.Inf(-1), 0, 0}}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.field.IsValid(); got != tt.valid {
				t.Errorf("IsValid() = %v, want %v", got, tt.valid)
			}
		})
	}
}

func TestField_Final(t *testing.T) {
	f := NewField(3, 4)
	f[2][1] = 7.0

	final := f.Final()
	if len(final) != 4 {
		t.Fatalf("Final() length = %d, want 4", len(final))
	}
	if final[1] != 7.0 {
		t.Errorf("Final()[1] = %v, want 7", final[1])
	}

	var empty Field
	if empty.Final() != nil {
		t.Error("Final() on empty field should be nil")
	}
}

func TestField_Clone(t *testing.T) {
	f := Field{{1, 2}, {3, 4}}
	c := f.Clone()

	c[0][0] = 99
	if f[0][0] != 1 {
		t.Error("Clone shares backing storage with original")
	}
	if c[1][1] != 4 {
		t.Errorf("clone value = %v, want 4", c[1][1])
	}
}

func TestSolveResult_Stability(t *testing.T) {
	res := &SolveResult{
		WallTime: 5 * time.Millisecond,
		Warnings: []error{&StabilityWarning{R: 0.99, Limit: 0.5}},
	}

	w := res.Stability()
	if w == nil {
		t.Fatal("Stability() = nil, want warning")
	}
	if math.Abs(w.R-0.99) > 1e-12 {
		t.Errorf("warning R = %v, want 0.99", w.R)
	}

	clean := &SolveResult{}
	if clean.Stability() != nil {
		t.Error("Stability() on clean result should be nil")
	}
}

func TestStabilityWarning_Message(t *testing.T) {
	w := &StabilityWarning{R: 0.9901, Limit: 0.5}
	msg := w.Error()
	if msg == "" {
		t.Fatal("empty warning message")
	}
	// The message carries the computed diffusion number for operators.
	want := "pde: diffusion number r=0.9901 exceeds stability limit 0.50; solution may oscillate or diverge"
	if msg != want {
		t.Errorf("Error() = %q, want %q", msg, want)
	}
}

func TestParameterError_Unwrap(t *testing.T) {
	var err error = &ParameterError{Param: "nx", Reason: "must be at least 2"}
	if err.Error() == "" {
		t.Fatal("empty error message")
	}
	if !errors.Is(err, ErrInvalidParameter) {
		t.Error("ParameterError should unwrap to ErrInvalidParameter")
	}

	var pe *ParameterError
	if !errors.As(err, &pe) || pe.Param != "nx" {
		t.Errorf("errors.As gave %+v, want Param=nx", pe)
	}
}
