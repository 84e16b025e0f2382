package compare

import "math"

// allClose reports whether a and b agree elementwise within
// absTol + relTol*|b|. Slices of different lengths never match.
func allClose(a, b []float64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if math.Abs(a[i]-b[i]) > absTol+relTol*math.Abs(b[i]) {
			return false
		}
	}
	return true
}

// interpRow samples the piecewise-linear function (xp, fp) at every
// point of xs. Points outside [xp[0], xp[last]] clamp to the end values.
// xp must be strictly increasing.
func interpRow(xs, xp, fp []float64) []float64 {
	out := make([]float64, len(xs))
	for i, x := range xs {
		out[i] = interpolate(x, xp, fp)
	}
	return out
}

func interpolate(x float64, xp, fp []float64) float64 {
	last := len(xp) - 1
	if x <= xp[0] {
		return fp[0]
	}
	if x >= xp[last] {
		return fp[last]
	}

	lo, hi := 0, last
	for hi-lo > 1 {
		mid := (lo + hi) / 2
		if xp[mid] <= x {
			lo = mid
		} else {
			hi = mid
		}
	}
	frac := (x - xp[lo]) / (xp[hi] - xp[lo])
	return fp[lo] + frac*(fp[hi]-fp[lo])
}
