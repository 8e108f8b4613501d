// Command pencilgen renders the pencil-on-paper scratch loop used as a
// placeholder sound asset and writes it as a mono 16-bit WAV file.
//
// Usage:
//
//	pencilgen [--config pencil.yaml]
//
// Parameters come from built-in defaults (0.5 s at 44100 Hz, written to
// ../src/Artisense.UI/Assets/pencil_loop.wav), the optional YAML file and
// PENCIL_* environment variables:
//
//	PENCIL_DURATION     length in seconds
//	PENCIL_SAMPLE_RATE  sample rate in Hz
//	PENCIL_OUTPUT_DIR   directory of the output file
//	PENCIL_FILE_NAME    output file name
//	PENCIL_SEED         fixed noise seed for reproducible output
//	PENCIL_FFT_BACKEND  algo-fft (default) or go-dsp
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/dustin/go-humanize"
	"github.com/spf13/pflag"

	"github.com/notceiph/whisprin/dsp/spectrum"
	"github.com/notceiph/whisprin/internal/config"
	"github.com/notceiph/whisprin/internal/pencil"
	"github.com/notceiph/whisprin/internal/wavfile"
)

func main() {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "2006-01-02 15:04:05",
		Level:           log.InfoLevel,
	})

	if err := run(os.Args[1:], logger); err != nil {
		logger.Fatal("Failed to generate pencil loop", "error", err)
	}
}

func run(args []string, logger *log.Logger) error {
	flagSet := pflag.NewFlagSet("pencilgen", pflag.ContinueOnError)
	configPath := flagSet.StringP("config", "c", "", "optional YAML config file")
	verbose := flagSet.BoolP("verbose", "v", false, "log render details")

	if err := flagSet.Parse(args); err != nil {
		return fmt.Errorf("failed to parse flags: %w", err)
	}
	if *verbose {
		logger.SetLevel(log.DebugLevel)
	}

	cm, err := config.NewConfigManager(*configPath)
	if err != nil {
		return err
	}
	c := cm.GetConfig()
	if err := c.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	logger.Info("Generating pencil sound...")
	logger.Debug("Configuration loaded",
		"config_file", cm.ConfigFile(),
		"duration", c.Duration,
		"sample_rate", c.SampleRate,
		"seeded", c.Seeded,
		"fft_backend", c.FFTBackend,
	)

	backend, err := spectrum.ParseBackend(c.FFTBackend)
	if err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	opts := []pencil.Option{
		pencil.WithDuration(c.Duration),
		pencil.WithSampleRate(float64(c.SampleRate)),
		pencil.WithFFTBackend(backend),
	}
	if c.Seeded {
		opts = append(opts, pencil.WithSeed(c.Seed))
	}

	res, err := pencil.Generate(opts...)
	if err != nil {
		return err
	}

	if logger.GetLevel() <= log.DebugLevel {
		logRender(logger, res)
	}

	path := c.OutputPath()
	size, err := wavfile.WriteFile(path, c.SampleRate, res.Samples)
	if err != nil {
		return err
	}

	logger.Info("Generated", "path", path)
	logger.Info("Duration", "seconds", fmt.Sprintf("%.2f", res.Duration()))
	logger.Info("Sample rate", "hz", c.SampleRate)
	logger.Info("File size", "bytes", size, "human", humanize.Bytes(uint64(size)))

	return nil
}

func logRender(logger *log.Logger, res pencil.Result) {
	fields := []any{"samples", len(res.Samples), "clipped", res.Clipped, "fft", res.Backend}

	centroid, err := spectrum.Centroid(res.Signal, res.Config.SampleRate)
	if err != nil {
		logger.Warn("Spectral centroid unavailable", "error", err)
	} else {
		fields = append(fields, "centroid_hz", fmt.Sprintf("%.0f", centroid))
	}

	logger.Debug("Rendered loop", fields...)
}
