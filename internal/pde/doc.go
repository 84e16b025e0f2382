// Package pde provides the core types shared by the 1-D PDE solvers.
//
// The package defines the equation description and the value types that
// flow between the solvers and their consumers:
//
//   - [Equation]: immutable description of a heat or Burgers problem
//   - [Grid]: uniform space-time grid the solution is sampled on
//   - [Field]: the u[time][space] solution array
//   - [SolveResult]: field + grid + equation + wall time, one per solve
//   - [Solver]: interface both solution strategies implement
//
// # Example
//
//	eq := pde.DefaultHeat()
//	res, _ := fdm.New().Solve(eq, 100, 100, 1.0)
//	fmt.Println(res.Field.Final())
//
// # Thread Safety
//
// Every solve call allocates its own result; nothing is shared between
// calls, so the two solvers may run concurrently on the same Equation.
package pde
