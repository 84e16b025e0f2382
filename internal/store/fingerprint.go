package store

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"github.com/san-kum/pdelab/internal/pde"
)

// Fingerprint derives a stable cache key from everything that determines
// a solve's output: solver, series truncation, equation parameters, and
// grid shape. Identical inputs always fingerprint identically, so a hit
// means the stored field can stand in for a fresh run.
func Fingerprint(solver string, terms int, eq *pde.Equation, nx, nt int, horizon float64) string {
	left, right := eq.BoundaryValues()
	key := fmt.Sprintf("%s|%d|%s|%g|%g|%s|%s|%g|%g|%d|%d|%g",
		solver, terms,
		eq.Kind(), eq.Coefficient(), eq.Length(),
		eq.Initial(), eq.Boundary(), left, right,
		nx, nt, horizon)

	sum := sha256.Sum256([]byte(key))
	return hex.EncodeToString(sum[:8])
}
