package core

import (
	"fmt"
	"math"
)

// ProcessorConfig defines the render settings shared by the generator stages.
type ProcessorConfig struct {
	SampleRate float64
	Duration   float64 // seconds
}

// ProcessorOption mutates a ProcessorConfig.
type ProcessorOption func(*ProcessorConfig)

// DefaultProcessorConfig returns the settings of the pencil loop asset.
func DefaultProcessorConfig() ProcessorConfig {
	return ProcessorConfig{
		SampleRate: 44100,
		Duration:   0.5,
	}
}

// WithSampleRate sets the render sample rate.
func WithSampleRate(sampleRate float64) ProcessorOption {
	return func(cfg *ProcessorConfig) {
		if sampleRate > 0 {
			cfg.SampleRate = sampleRate
		}
	}
}

// WithDuration sets the render length in seconds. Zero is accepted and
// yields an empty buffer.
func WithDuration(seconds float64) ProcessorOption {
	return func(cfg *ProcessorConfig) {
		if seconds >= 0 {
			cfg.Duration = seconds
		}
	}
}

// ApplyProcessorOptions applies zero or more options to the default config.
func ApplyProcessorOptions(opts ...ProcessorOption) ProcessorConfig {
	cfg := DefaultProcessorConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

// Validate reports whether the config describes a renderable buffer.
func (c ProcessorConfig) Validate() error {
	if c.SampleRate <= 0 || math.IsNaN(c.SampleRate) || math.IsInf(c.SampleRate, 0) {
		return fmt.Errorf("core: sample rate must be > 0 and finite: %f", c.SampleRate)
	}
	if c.Duration < 0 || math.IsNaN(c.Duration) || math.IsInf(c.Duration, 0) {
		return fmt.Errorf("core: duration must be >= 0 and finite: %f", c.Duration)
	}
	return nil
}

// SampleCount returns floor(Duration * SampleRate).
func (c ProcessorConfig) SampleCount() (int, error) {
	if err := c.Validate(); err != nil {
		return 0, err
	}
	return int(math.Floor(c.Duration * c.SampleRate)), nil
}

// SamplesFor converts a length in seconds to the nearest whole sample count.
func (c ProcessorConfig) SamplesFor(seconds float64) int {
	return int(math.Round(seconds * c.SampleRate))
}
