// Package viz provides terminal-based playback of solved fields.
//
// The package implements a read-only TUI using the Bubble Tea framework:
//
//   - [Model]: playback application over a precomputed solution
//   - [Canvas]: Braille-based pixel canvas for high-fidelity rendering
//
// # Key Bindings
//
//	Space - Pause/Resume playback
//	R     - Restart from the initial profile
//	O     - Toggle the reference overlay
//	?     - Show help overlay
//	[]/   - Scrub backward/forward one row
//	+/-   - Double/halve playback speed
//
// Playback never recomputes anything. The solver runs once up front and
// the TUI walks the stored time rows, so scrubbing is free in both
// directions.
package viz
