// Package envelope builds gain curves that fade a buffer in and out, so a
// sample can loop without a click at its boundaries.
package envelope

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-vecmath"
)

var errMismatchedLength = errors.New("envelope: samples and gains must have same length")

// Ramp returns m values evenly spaced from `from` to `to`, both inclusive.
// A single-value ramp holds only `from`.
func Ramp(m int, from, to float64) []float64 {
	if m <= 0 {
		return nil
	}
	out := make([]float64, m)
	if m == 1 {
		out[0] = from
		return out
	}
	step := (to - from) / float64(m-1)
	for i := range out {
		out[i] = from + step*float64(i)
	}
	out[m-1] = to
	return out
}

// Fade returns n gains that are 1 except for a linear 0→1 ramp over the first
// fadeSamples and a linear 1→0 ramp over the last fadeSamples.
//
// When the ramps overlap (fadeSamples > n/2) the fade-out is written last and
// wins. Ramp positions that fall outside the buffer are dropped, with the
// fade-in anchored at the start and the fade-out anchored at the end.
func Fade(n, fadeSamples int) ([]float64, error) {
	if n < 0 {
		return nil, fmt.Errorf("envelope: length must be >= 0: %d", n)
	}
	if fadeSamples < 0 {
		return nil, fmt.Errorf("envelope: fade length must be >= 0: %d", fadeSamples)
	}

	gains := make([]float64, n)
	for i := range gains {
		gains[i] = 1
	}

	for i, g := range Ramp(fadeSamples, 0, 1) {
		if i >= n {
			break
		}
		gains[i] = g
	}

	offset := n - fadeSamples
	for i, g := range Ramp(fadeSamples, 1, 0) {
		if idx := offset + i; idx >= 0 {
			gains[idx] = g
		}
	}

	return gains, nil
}

// Apply multiplies buf by gains in place.
func Apply(buf, gains []float64) error {
	if len(buf) != len(gains) {
		return fmt.Errorf("%w: %d != %d", errMismatchedLength, len(buf), len(gains))
	}
	vecmath.MulBlockInPlace(buf, gains)
	return nil
}
