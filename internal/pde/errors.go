package pde

import (
	"errors"
	"fmt"
)

// Domain errors for solve and compare operations.
var (
	// ErrInvalidParameter indicates a malformed or out-of-range input,
	// detected before any computation begins.
	ErrInvalidParameter = errors.New("pde: invalid parameter")

	// ErrUnsupportedConfig indicates a well-defined but unimplemented
	// combination, such as a non-Dirichlet analytical request.
	ErrUnsupportedConfig = errors.New("pde: unsupported configuration")

	// ErrIncompleteData indicates a comparison was requested with a
	// missing or empty solve result.
	ErrIncompleteData = errors.New("pde: incomplete comparison input")
)

// ParameterError wraps ErrInvalidParameter with the offending parameter.
type ParameterError struct {
	Param  string
	Reason string
}

func (e *ParameterError) Error() string {
	return fmt.Sprintf("pde: invalid parameter %s: %s", e.Param, e.Reason)
}

func (e *ParameterError) Unwrap() error {
	return ErrInvalidParameter
}

// StabilityWarning is a non-fatal advisory raised when the diffusion
// number r = coeff*dt/dx^2 exceeds the explicit-scheme limit. The solve
// still runs to completion; the warning travels in SolveResult.Warnings.
type StabilityWarning struct {
	R     float64
	Limit float64
}

func (w *StabilityWarning) Error() string {
	return fmt.Sprintf("pde: diffusion number r=%.4f exceeds stability limit %.2f; solution may oscillate or diverge", w.R, w.Limit)
}
