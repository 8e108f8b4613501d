package signal

import (
	"errors"
	"fmt"
	"math"
	"math/rand/v2"

	"github.com/cwbudde/algo-vecmath"

	"github.com/notceiph/whisprin/dsp/core"
)

// ErrSilentBuffer is returned by Normalize when every sample is zero and no
// peak exists to scale against.
var ErrSilentBuffer = errors.New("signal: cannot normalize an all-zero buffer")

// Generator renders signals on the time grid of a shared configuration.
type Generator struct {
	cfg core.ProcessorConfig
	rng *rand.Rand
}

// Option configures a Generator.
type Option func(*Generator)

// WithSeed pins the noise source to a deterministic PCG stream.
func WithSeed(seed uint64) Option {
	return func(g *Generator) {
		g.rng = rand.New(rand.NewPCG(seed, seed))
	}
}

// WithRand injects the random source used for noise generation.
func WithRand(rng *rand.Rand) Option {
	return func(g *Generator) {
		if rng != nil {
			g.rng = rng
		}
	}
}

// NewGenerator creates a configured signal generator with a randomly seeded
// noise source.
func NewGenerator(opts ...core.ProcessorOption) *Generator {
	return NewGeneratorWithOptions(opts)
}

// NewGeneratorWithOptions creates a configured signal generator with signal-specific options.
func NewGeneratorWithOptions(coreOpts []core.ProcessorOption, opts ...Option) *Generator {
	g := &Generator{
		cfg: core.ApplyProcessorOptions(coreOpts...),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(g)
		}
	}
	if g.rng == nil {
		g.rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return g
}

// Config returns the generator processor configuration.
func (g *Generator) Config() core.ProcessorConfig {
	return g.cfg
}

// TimeAxis returns samples evenly spaced instants covering [0, Duration),
// excluding the end point.
func (g *Generator) TimeAxis(samples int) ([]float64, error) {
	if samples < 0 {
		return nil, fmt.Errorf("time axis samples must be >= 0: %d", samples)
	}
	out := make([]float64, samples)
	if samples == 0 {
		return out, nil
	}
	step := g.cfg.Duration / float64(samples)
	for i := range out {
		out[i] = step * float64(i)
	}
	return out, nil
}

// GaussianNoise draws zero-mean normally distributed white noise.
func (g *Generator) GaussianNoise(stddev float64, samples int) ([]float64, error) {
	if samples < 0 {
		return nil, fmt.Errorf("noise samples must be >= 0: %d", samples)
	}
	if stddev < 0 || math.IsNaN(stddev) {
		return nil, fmt.Errorf("noise stddev must be >= 0: %f", stddev)
	}
	out := make([]float64, samples)
	for i := range out {
		out[i] = g.rng.NormFloat64() * stddev
	}
	return out, nil
}

// Normalize scales data to target peak amplitude and returns a new slice.
// An empty input yields an empty output.
func Normalize(data []float64, targetPeak float64) ([]float64, error) {
	if targetPeak < 0 {
		return nil, fmt.Errorf("normalize target peak must be >= 0: %f", targetPeak)
	}

	out := make([]float64, len(data))
	if len(data) == 0 {
		return out, nil
	}

	maxAbs := vecmath.MaxAbs(data)
	if maxAbs == 0 {
		return nil, ErrSilentBuffer
	}
	if math.IsNaN(maxAbs) || math.IsInf(maxAbs, 0) {
		return nil, fmt.Errorf("normalize input peak is not finite: %f", maxAbs)
	}

	vecmath.ScaleBlock(out, data, targetPeak/maxAbs)
	return out, nil
}
