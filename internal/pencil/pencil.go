// Package pencil synthesizes the pencil-on-paper scratch loop: pink noise for
// the paper texture, two damped partials for the graphite tap, a short fade
// at both ends so the loop is seamless, then 16-bit quantization.
package pencil

import (
	"fmt"
	"math/rand/v2"

	"github.com/notceiph/whisprin/dsp/core"
	"github.com/notceiph/whisprin/dsp/envelope"
	"github.com/notceiph/whisprin/dsp/quantize"
	"github.com/notceiph/whisprin/dsp/signal"
	"github.com/notceiph/whisprin/dsp/spectrum"
)

const (
	// NoiseStdDev is the standard deviation of the white noise source.
	NoiseStdDev = 0.1
	// NoisePeak is the absolute peak the pink noise is normalized to.
	NoisePeak = 0.3
	// FadeSeconds is the length of the fade at each end of the loop.
	FadeSeconds = 0.05
)

// Partials are the tap components added on top of the noise.
var Partials = []signal.Partial{
	{Freq: 2000, Amplitude: 0.1, Decay: 5},
	{Freq: 3000, Amplitude: 0.05, Decay: 8},
}

// Result holds the rendered loop and the intermediate buffers it came from.
type Result struct {
	Config   core.ProcessorConfig
	Samples  []int16
	Signal   []float64 // faded signal before quantization
	Envelope []float64
	Clipped  int // samples saturated by quantization
	Backend  spectrum.Backend
}

// Duration returns the rendered length in seconds.
func (r Result) Duration() float64 {
	return float64(len(r.Samples)) / r.Config.SampleRate
}

type options struct {
	coreOpts []core.ProcessorOption
	sigOpts  []signal.Option
	backend  spectrum.Backend
}

// Option configures Generate.
type Option func(*options)

// WithSampleRate overrides the default 44100 Hz.
func WithSampleRate(sampleRate float64) Option {
	return func(o *options) { o.coreOpts = append(o.coreOpts, core.WithSampleRate(sampleRate)) }
}

// WithDuration overrides the default 0.5 s.
func WithDuration(seconds float64) Option {
	return func(o *options) { o.coreOpts = append(o.coreOpts, core.WithDuration(seconds)) }
}

// WithSeed makes the noise, and so the whole render, reproducible.
func WithSeed(seed uint64) Option {
	return func(o *options) { o.sigOpts = append(o.sigOpts, signal.WithSeed(seed)) }
}

// WithRand injects the noise source.
func WithRand(rng *rand.Rand) Option {
	return func(o *options) { o.sigOpts = append(o.sigOpts, signal.WithRand(rng)) }
}

// WithFFTBackend selects the FFT implementation used for pink shaping.
func WithFFTBackend(backend spectrum.Backend) Option {
	return func(o *options) { o.backend = backend }
}

// Generate renders one loop.
func Generate(opts ...Option) (Result, error) {
	o := options{backend: spectrum.BackendAlgoFFT}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	gen := signal.NewGeneratorWithOptions(o.coreOpts, o.sigOpts...)
	cfg := gen.Config()

	n, err := cfg.SampleCount()
	if err != nil {
		return Result{}, err
	}

	t, err := gen.TimeAxis(n)
	if err != nil {
		return Result{}, err
	}

	sound, err := pinkNoise(gen, n, o.backend)
	if err != nil {
		return Result{}, err
	}

	if err := signal.AddPartials(sound, t, Partials...); err != nil {
		return Result{}, err
	}

	env, err := envelope.Fade(n, cfg.SamplesFor(FadeSeconds))
	if err != nil {
		return Result{}, err
	}
	if err := envelope.Apply(sound, env); err != nil {
		return Result{}, err
	}

	return Result{
		Config:   cfg,
		Samples:  quantize.Int16(sound),
		Signal:   sound,
		Envelope: env,
		Clipped:  quantize.Clipped(sound),
		Backend:  o.backend,
	}, nil
}

// PinkNoise draws n samples of Gaussian white noise from gen, tilts them to a
// 1/f spectrum and normalizes the result to NoisePeak.
func PinkNoise(gen *signal.Generator, n int) ([]float64, error) {
	return pinkNoise(gen, n, spectrum.BackendAlgoFFT)
}

func pinkNoise(gen *signal.Generator, n int, backend spectrum.Backend) ([]float64, error) {
	white, err := gen.GaussianNoise(NoiseStdDev, n)
	if err != nil {
		return nil, err
	}

	pink, err := spectrum.ShapeWithBackend(backend, white, spectrum.PinkFilter(n, gen.Config().SampleRate))
	if err != nil {
		return nil, err
	}

	out, err := signal.Normalize(pink, NoisePeak)
	if err != nil {
		return nil, fmt.Errorf("pencil: normalize pink noise: %w", err)
	}
	return out, nil
}
