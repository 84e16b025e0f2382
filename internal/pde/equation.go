package pde

import (
	"fmt"
	"math"
)

// Kind selects the governing equation.
type Kind int

const (
	// Heat is the diffusion equation u_t = alpha * u_xx.
	Heat Kind = iota
	// Burgers is the viscous Burgers equation u_t + u*u_x = nu * u_xx.
	Burgers
)

func (k Kind) String() string {
	switch k {
	case Heat:
		return "heat"
	case Burgers:
		return "burgers"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// ParseKind maps a config/CLI name to a Kind.
func ParseKind(s string) (Kind, error) {
	switch s {
	case "heat":
		return Heat, nil
	case "burgers":
		return Burgers, nil
	default:
		return 0, &ParameterError{Param: "equation", Reason: fmt.Sprintf("unknown kind %q (want heat or burgers)", s)}
	}
}

// InitialCondition selects one of the built-in initial profiles.
type InitialCondition int

const (
	// Sinusoidal is sin(pi*x/L), the canonical single-mode profile.
	Sinusoidal InitialCondition = iota
	// Gaussian is exp(-100*(x-L/2)^2), a narrow centered pulse.
	Gaussian
	// Step is 1 for x < L/2 and 0 otherwise.
	Step
)

func (ic InitialCondition) String() string {
	switch ic {
	case Sinusoidal:
		return "sinusoidal"
	case Gaussian:
		return "gaussian"
	case Step:
		return "step"
	default:
		return fmt.Sprintf("InitialCondition(%d)", int(ic))
	}
}

// ParseInitialCondition maps a config/CLI name to an InitialCondition.
func ParseInitialCondition(s string) (InitialCondition, error) {
	switch s {
	case "sinusoidal":
		return Sinusoidal, nil
	case "gaussian":
		return Gaussian, nil
	case "step":
		return Step, nil
	default:
		return 0, &ParameterError{Param: "initial", Reason: fmt.Sprintf("unknown initial condition %q (want sinusoidal, gaussian or step)", s)}
	}
}

// BoundaryCondition selects the policy enforced at the domain ends.
type BoundaryCondition int

const (
	// Dirichlet pins both ends to fixed values.
	Dirichlet BoundaryCondition = iota
	// Neumann copies each end from its interior neighbor (zero flux).
	Neumann
	// Mixed pins the left end and applies zero flux on the right.
	Mixed
)

func (bc BoundaryCondition) String() string {
	switch bc {
	case Dirichlet:
		return "dirichlet"
	case Neumann:
		return "neumann"
	case Mixed:
		return "mixed"
	default:
		return fmt.Sprintf("BoundaryCondition(%d)", int(bc))
	}
}

// ParseBoundaryCondition maps a config/CLI name to a BoundaryCondition.
func ParseBoundaryCondition(s string) (BoundaryCondition, error) {
	switch s {
	case "dirichlet":
		return Dirichlet, nil
	case "neumann":
		return Neumann, nil
	case "mixed":
		return Mixed, nil
	default:
		return 0, &ParameterError{Param: "boundary", Reason: fmt.Sprintf("unknown boundary condition %q (want dirichlet, neumann or mixed)", s)}
	}
}

// Equation is an immutable description of one PDE problem: the governing
// equation, its coefficient (diffusivity for heat, viscosity for Burgers),
// the domain [0, L] and the chosen initial/boundary conditions. It carries
// no solution state; both solvers read it and never write it.
type Equation struct {
	kind   Kind
	coeff  float64
	length float64
	ic     InitialCondition
	bc     BoundaryCondition
	left   float64
	right  float64
}

// Option adjusts optional Equation settings at construction time.
type Option func(*Equation)

// WithBoundaryValues sets the values Dirichlet ends are pinned to.
// Both default to zero.
func WithBoundaryValues(left, right float64) Option {
	return func(e *Equation) {
		e.left = left
		e.right = right
	}
}

// New validates and builds an Equation. It fails with ErrInvalidParameter
// when the coefficient or domain length is not strictly positive, or when
// a condition tag is outside the enumerated values.
func New(kind Kind, coeff, length float64, ic InitialCondition, bc BoundaryCondition, opts ...Option) (*Equation, error) {
	if kind != Heat && kind != Burgers {
		return nil, &ParameterError{Param: "kind", Reason: fmt.Sprintf("unrecognized equation kind %d", int(kind))}
	}
	if coeff <= 0 || math.IsNaN(coeff) || math.IsInf(coeff, 0) {
		return nil, &ParameterError{Param: "coefficient", Reason: fmt.Sprintf("must be strictly positive, got %v", coeff)}
	}
	if length <= 0 || math.IsNaN(length) || math.IsInf(length, 0) {
		return nil, &ParameterError{Param: "length", Reason: fmt.Sprintf("must be strictly positive, got %v", length)}
	}
	if ic != Sinusoidal && ic != Gaussian && ic != Step {
		return nil, &ParameterError{Param: "initial", Reason: fmt.Sprintf("unrecognized initial condition %d", int(ic))}
	}
	if bc != Dirichlet && bc != Neumann && bc != Mixed {
		return nil, &ParameterError{Param: "boundary", Reason: fmt.Sprintf("unrecognized boundary condition %d", int(bc))}
	}

	eq := &Equation{kind: kind, coeff: coeff, length: length, ic: ic, bc: bc}
	for _, opt := range opts {
		opt(eq)
	}
	return eq, nil
}

// DefaultHeat returns the canonical configuration: heat equation with
// alpha=0.01 on [0,1], sinusoidal initial data and Dirichlet boundaries.
func DefaultHeat() *Equation {
	return &Equation{kind: Heat, coeff: 0.01, length: 1.0, ic: Sinusoidal, bc: Dirichlet}
}

func (e *Equation) Kind() Kind                  { return e.kind }
func (e *Equation) Coefficient() float64        { return e.coeff }
func (e *Equation) Length() float64             { return e.length }
func (e *Equation) Initial() InitialCondition   { return e.ic }
func (e *Equation) Boundary() BoundaryCondition { return e.bc }

// BoundaryValues returns the fixed values used by Dirichlet ends.
func (e *Equation) BoundaryValues() (left, right float64) {
	return e.left, e.right
}

// InitialValue evaluates the initial profile at one coordinate.
func (e *Equation) InitialValue(x float64) float64 {
	switch e.ic {
	case Gaussian:
		d := x - e.length/2
		return math.Exp(-100 * d * d)
	case Step:
		if x < e.length/2 {
			return 1.0
		}
		return 0.0
	default:
		return math.Sin(math.Pi * x / e.length)
	}
}

// InitialRow samples the initial profile on a set of coordinates.
func (e *Equation) InitialRow(x []float64) []float64 {
	row := make([]float64, len(x))
	for i, xi := range x {
		row[i] = e.InitialValue(xi)
	}
	return row
}

func (e *Equation) String() string {
	return fmt.Sprintf("%s(coeff=%g, L=%g, %s, %s)", e.kind, e.coeff, e.length, e.ic, e.bc)
}
