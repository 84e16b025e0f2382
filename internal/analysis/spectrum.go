package analysis

import (
	"math"
	"math/cmplx"
)

// fft is a recursive radix-2 transform. Inputs are zero-padded by the
// callers, so the power-of-two precondition always holds.
func fft(data []float64) []complex128 {
	n := len(data)
	if n <= 1 {
		result := make([]complex128, n)
		for i := range data {
			result[i] = complex(data[i], 0)
		}
		return result
	}

	even := make([]float64, n/2)
	odd := make([]float64, n/2)
	for i := 0; i < n/2; i++ {
		even[i] = data[2*i]
		odd[i] = data[2*i+1]
	}

	feven := fft(even)
	fodd := fft(odd)

	result := make([]complex128, n)
	for k := 0; k < n/2; k++ {
		w := cmplx.Exp(complex(0, -2*math.Pi*float64(k)/float64(n)))
		result[k] = feven[k] + w*fodd[k]
		result[k+n/2] = feven[k] - w*fodd[k]
	}
	return result
}

func padToPowerOfTwo(u []float64) []float64 {
	n := 1
	for n < len(u) {
		n *= 2
	}
	if n == len(u) {
		return u
	}
	padded := make([]float64, n)
	copy(padded, u)
	return padded
}

// Spectrum returns the one-sided magnitude spectrum of a spatial
// profile, zero-padded to a power of two. Bin k holds the amplitude of
// roughly k full waves across the padded window; the Nyquist bin is
// included because the gridscale mode lands exactly there.
func Spectrum(u []float64) []float64 {
	if len(u) == 0 {
		return nil
	}
	f := fft(padToPowerOfTwo(u))
	ps := make([]float64, len(f)/2+1)
	for i := range ps {
		ps[i] = cmplx.Abs(f[i])
	}
	return ps
}

// HighModeFraction reports the share of spectral energy in the upper
// half of the band, ignoring the mean. Diffusion drives it toward zero
// because high modes decay fastest; a run of the explicit scheme past
// its stability limit drives it toward one as the alternating gridscale
// mode grows.
func HighModeFraction(u []float64) float64 {
	if len(u) < 4 {
		return 0
	}
	f := fft(padToPowerOfTwo(u))
	n := len(f)
	var high, total float64
	for k := 1; k < n; k++ {
		p := cmplx.Abs(f[k])
		p *= p
		total += p
		if k >= n/4 && k <= 3*n/4 {
			high += p
		}
	}
	if total == 0 {
		return 0
	}
	return high / total
}
