// Package analysis provides solution-quality diagnostics for solved
// fields.
//
// The package includes tools for judging whether a numerical run can be
// trusted:
//
//   - [Convergence]: grid-refinement study with observed order estimate
//   - [VariationHistory]: total variation of every time row
//   - [OscillationRatio]: final-to-initial variation growth
//   - [HighModeFraction]: share of spectral energy near the grid scale
//
// # Instability Detection
//
// An explicit run past its stability limit shows up in two ways: total
// variation grows instead of decaying, and spectral energy piles into
// the alternating gridscale mode:
//
//	if analysis.OscillationRatio(res.Field) > 1 {
//	    // Oscillations are growing; shrink the time step.
//	}
package analysis
