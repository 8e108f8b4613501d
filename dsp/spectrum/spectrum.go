package spectrum

import (
	"fmt"

	"github.com/cwbudde/algo-vecmath"
)

// Power returns |X[k]|^2 for each complex spectrum bin.
func Power(in []complex128) []float64 {
	if len(in) == 0 {
		return nil
	}

	out := make([]float64, len(in))
	re := make([]float64, len(in))
	im := make([]float64, len(in))
	for i, c := range in {
		re[i] = real(c)
		im[i] = imag(c)
	}

	vecmath.Power(out, re, im)
	return out
}

// Centroid returns the power-weighted mean frequency of x over the positive
// half of its spectrum, in Hz. A silent or empty signal has centroid 0.
func Centroid(x []float64, sampleRate float64) (float64, error) {
	if sampleRate <= 0 {
		return 0, fmt.Errorf("spectrum: sample rate must be > 0: %f", sampleRate)
	}
	if len(x) < 2 {
		return 0, nil
	}

	tr, err := NewTransform(len(x))
	if err != nil {
		return 0, err
	}

	buf := make([]complex128, len(x))
	bins := make([]complex128, len(x))
	for i, v := range x {
		buf[i] = complex(v, 0)
	}
	if err := tr.Forward(bins, buf); err != nil {
		return 0, err
	}

	half := len(x)/2 + 1
	power := Power(bins[:half])
	freqs := BinFrequencies(len(x), sampleRate)

	var num, den float64
	for k, p := range power {
		f := freqs[k]
		if f < 0 {
			// Nyquist bin of an even-length transform.
			f = -f
		}
		num += f * p
		den += p
	}
	if den == 0 {
		return 0, nil
	}
	return num / den, nil
}
