package dsp

import (
	"fmt"
	"math"
	"math/cmplx"
)

// Butterworth designs a digital low-pass filter of the given order and
// normalized cutoff wn (1 is Nyquist). The coefficients equal those of
// scipy.signal.butter(order, wn): analog prototype, pre-warped frequency
// scaling, bilinear transform, then expansion to polynomials. a[0] is 1.
func Butterworth(order int, wn float64) (b, a []float64, err error) {
	if order < 1 {
		return nil, nil, fmt.Errorf("filter order %d must be positive", order)
	}
	if !(wn > 0 && wn < 1) {
		return nil, nil, fmt.Errorf("normalized cutoff %g must be in (0, 1)", wn)
	}

	const fs = 2.0
	warped := 2 * fs * math.Tan(math.Pi*wn/fs)

	poles := make([]complex128, order)
	for i := range poles {
		m := float64(-order + 1 + 2*i)
		poles[i] = -cmplx.Exp(complex(0, math.Pi*m/float64(2*order)))
	}

	// lp2lp
	gain := math.Pow(warped, float64(order))
	for i := range poles {
		poles[i] *= complex(warped, 0)
	}

	// bilinear: every analog zero at infinity maps to z = -1
	const fs2 = 2 * fs
	den := complex(1, 0)
	zPoles := make([]complex128, order)
	for i, p := range poles {
		zPoles[i] = (fs2 + p) / (fs2 - p)
		den *= fs2 - p
	}
	gain *= real(1 / den)

	zeros := make([]complex128, order)
	for i := range zeros {
		zeros[i] = -1
	}

	bc := poly(zeros)
	ac := poly(zPoles)
	b = make([]float64, len(bc))
	a = make([]float64, len(ac))
	for i := range bc {
		b[i] = gain * real(bc[i])
		a[i] = real(ac[i])
	}
	return b, a, nil
}

// poly expands the monic polynomial with the given roots, highest power first.
func poly(roots []complex128) []complex128 {
	c := []complex128{1}
	for _, r := range roots {
		next := make([]complex128, len(c)+1)
		for i, v := range c {
			next[i] += v
			next[i+1] -= v * r
		}
		c = next
	}
	return c
}

// LFilter applies the rational transfer function b/a to x in direct form II
// transposed with zero initial conditions, like scipy.signal.lfilter.
func LFilter(b, a, x []float64) []float64 {
	n := len(a)
	if len(b) > n {
		n = len(b)
	}
	bn := make([]float64, n)
	an := make([]float64, n)
	copy(bn, b)
	copy(an, a)
	if an[0] != 1 {
		for i := range bn {
			bn[i] /= a[0]
		}
		for i := range an {
			an[i] /= a[0]
		}
	}

	y := make([]float64, len(x))
	z := make([]float64, n)
	for i, xi := range x {
		yi := bn[0]*xi + z[0]
		for k := 1; k < n; k++ {
			z[k-1] = bn[k]*xi + z[k] - an[k]*yi
		}
		y[i] = yi
	}
	return y
}
