// Package bench exposes the solvers behind a name registry and runs
// matched reference/numeric pairs for side-by-side comparison.
package bench

import (
	"fmt"
	"sort"

	"github.com/san-kum/pdelab/internal/analytic"
	"github.com/san-kum/pdelab/internal/fdm"
	"github.com/san-kum/pdelab/internal/pde"
)

type Registry struct {
	solvers map[string]func(terms int) pde.Solver
}

func NewRegistry() *Registry {
	r := &Registry{solvers: make(map[string]func(int) pde.Solver)}

	r.solvers["analytic"] = func(terms int) pde.Solver {
		s := analytic.New()
		if terms > 0 {
			s.Terms = terms
		}
		return s
	}
	r.solvers["fdm"] = func(int) pde.Solver { return fdm.New() }

	return r
}

// Get builds the named solver. terms tunes the series truncation and is
// ignored by solvers that have no such knob.
func (r *Registry) Get(name string, terms int) (pde.Solver, error) {
	fn, ok := r.solvers[name]
	if !ok {
		return nil, fmt.Errorf("unknown solver: %s", name)
	}
	return fn(terms), nil
}

func (r *Registry) List() []string {
	names := make([]string, 0, len(r.solvers))
	for name := range r.solvers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
