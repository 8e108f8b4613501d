// Package quantize converts floating-point samples to fixed-point PCM.
//
// Conversion is a direct scale, clip and truncate. No dither or noise shaping
// is applied.
package quantize

import (
	"math"

	"github.com/notceiph/whisprin/dsp/core"
)

const (
	// Int16Scale maps a full-scale float sample (1.0) to the int16 maximum.
	Int16Scale = math.MaxInt16

	int16Lo = math.MinInt16
	int16Hi = math.MaxInt16
)

// Int16Sample scales x by 32767, clips to [-32768, 32767] and truncates
// toward zero. NaN maps to 0.
func Int16Sample(x float64) int16 {
	if math.IsNaN(x) {
		return 0
	}
	return int16(core.Clamp(x*Int16Scale, int16Lo, int16Hi))
}

// Int16 quantizes every sample of src.
func Int16(src []float64) []int16 {
	out := make([]int16, len(src))
	for i, v := range src {
		out[i] = Int16Sample(v)
	}
	return out
}

// Clipped counts the samples of src that Int16 would saturate.
func Clipped(src []float64) int {
	n := 0
	for _, v := range src {
		s := v * Int16Scale
		if s > int16Hi || s < int16Lo {
			n++
		}
	}
	return n
}
