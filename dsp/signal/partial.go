package signal

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-vecmath"
)

// Partial is an exponentially decaying sinusoid:
// Amplitude * sin(2*pi*Freq*t) * exp(-Decay*t).
type Partial struct {
	Freq      float64 // Hz
	Amplitude float64
	Decay     float64 // 1/s
}

// At evaluates the partial at time t (seconds).
func (p Partial) At(t float64) float64 {
	return p.Amplitude * math.Sin(2*math.Pi*p.Freq*t) * math.Exp(-p.Decay*t)
}

// DampedSine renders p over the time axis t.
func DampedSine(p Partial, t []float64) []float64 {
	out := make([]float64, len(t))
	for i, ti := range t {
		out[i] = p.At(ti)
	}
	return out
}

// AddPartials accumulates every partial, evaluated on t, into dst.
func AddPartials(dst, t []float64, partials ...Partial) error {
	if len(dst) != len(t) {
		return fmt.Errorf("partials: dst and time axis must have same length: %d != %d", len(dst), len(t))
	}
	for _, p := range partials {
		vecmath.AddBlockInPlace(dst, DampedSine(p, t))
	}
	return nil
}
