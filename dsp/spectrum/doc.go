// Package spectrum provides frequency-domain shaping of real signals.
//
// Transforms are planned by algo-fft by default. go-dsp's Bluestein FFT can
// be selected instead with NewTransformWithBackend or ShapeWithBackend.
// Buffers are never zero-padded, so shaping is always a circular per-bin
// filter over exactly the input length.
package spectrum
