package spectrum

import (
	"fmt"
	"math"
)

// BinFrequencies returns the center frequency in Hz of each DFT bin of an
// n-point transform, in standard FFT order: 0, positive frequencies, then
// negative frequencies ascending towards -fs/n.
func BinFrequencies(n int, sampleRate float64) []float64 {
	if n <= 0 {
		return nil
	}
	out := make([]float64, n)
	res := sampleRate / float64(n)
	half := (n - 1) / 2
	for k := range out {
		if k <= half {
			out[k] = float64(k) * res
		} else {
			out[k] = float64(k-n) * res
		}
	}
	return out
}

// PinkFilter returns per-bin gains of 1/sqrt(|f|), which turns white noise
// into noise with a 1/f power spectrum. The DC bin has no finite gain and is
// left at unity.
func PinkFilter(n int, sampleRate float64) []float64 {
	freqs := BinFrequencies(n, sampleRate)
	for k, f := range freqs {
		if f == 0 {
			freqs[k] = 1
			continue
		}
		freqs[k] = 1 / math.Sqrt(math.Abs(f))
	}
	return freqs
}

// Shape multiplies the spectrum of x by gains and returns the real part of
// the inverse transform. The imaginary residue of the round trip is dropped.
func Shape(x, gains []float64) ([]float64, error) {
	return ShapeWithBackend(BackendAlgoFFT, x, gains)
}

// ShapeWithBackend is Shape computed by the given FFT backend.
func ShapeWithBackend(backend Backend, x, gains []float64) ([]float64, error) {
	if len(x) != len(gains) {
		return nil, fmt.Errorf("%w: signal=%d gains=%d", errMismatchedLength, len(x), len(gains))
	}
	if len(x) == 0 {
		return []float64{}, nil
	}

	tr, err := NewTransformWithBackend(len(x), backend)
	if err != nil {
		return nil, err
	}
	return ShapeWith(tr, x, gains)
}

// ShapeWith is Shape using a prepared transform.
func ShapeWith(tr *Transform, x, gains []float64) ([]float64, error) {
	n := tr.Len()
	if len(x) != n || len(gains) != n {
		return nil, fmt.Errorf("%w: signal=%d gains=%d n=%d", errMismatchedLength, len(x), len(gains), n)
	}

	buf := make([]complex128, n)
	bins := make([]complex128, n)
	for i, v := range x {
		buf[i] = complex(v, 0)
	}

	if err := tr.Forward(bins, buf); err != nil {
		return nil, err
	}
	for k, g := range gains {
		bins[k] *= complex(g, 0)
	}
	if err := tr.Inverse(buf, bins); err != nil {
		return nil, err
	}

	out := make([]float64, n)
	for i, c := range buf {
		out[i] = real(c)
	}
	return out, nil
}
